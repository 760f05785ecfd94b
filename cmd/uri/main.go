// Command uri splits and decodes RFC 3986 URIs.
package main

import (
	"io"
	"log/slog"
	"os"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/uriparse/internal/errorutil"
	"github.com/ghettovoice/uriparse/internal/log"
)

func main() {
	os.Exit(exitCode(newRootCmd().Execute()))
}

// exitCode maps malformed input to 2 and any other failure to 1.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errorutil.IsGrammarErr(err):
		return 2
	default:
		return 1
	}
}

type rootOptions struct {
	logLevel  string
	logFormat string
}

func (o *rootOptions) logger(w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}

	switch o.logFormat {
	case "console":
		return log.NewConsole(w, lvl), nil
	case "dev":
		return log.NewDev(w, lvl), nil
	default:
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown log format %q", o.logFormat))
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "uri",
		Short:        "Split and decode RFC 3986 URIs",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "console", "log format (console, dev)")

	rootCmd.AddCommand(newSplitCmd(opts))
	rootCmd.AddCommand(newDecodeCmd(opts))

	return rootCmd
}
