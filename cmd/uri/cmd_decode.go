package main

import (
	"fmt"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/uriparse/internal/errorutil"
	"github.com/ghettovoice/uriparse/uri"
)

func newDecodeCmd(root *rootOptions) *cobra.Command {
	var (
		plusAsSpace bool
		bufferSize  int
	)

	cmd := &cobra.Command{
		Use:   "decode [text...]",
		Short: "Percent-decode text",
		Long: `Percent-decode every argument, or every line of stdin if there are none.

Decoding fails if a result does not fit into --buffer-size bytes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bufferSize < 0 {
				return errtrace.Wrap(errorutil.NewInvalidArgumentError("negative buffer size %d", bufferSize))
			}
			logger, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return errtrace.Wrap(err)
			}

			buf := make([]byte, bufferSize)
			return errtrace.Wrap(eachInput(args, cmd.InOrStdin(), func(s string) error {
				n, status := uri.Decode(buf, []byte(s), plusAsSpace)
				logger.Debug("decoded", "input", s, "status", status.String(), "length", n)
				if status != uri.Success {
					return errtrace.Wrap(errorutil.Errorf("decode %q: result does not fit into %d bytes", s, bufferSize))
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n", buf[:n])
				return errtrace.Wrap(err)
			}))
		},
	}

	cmd.Flags().BoolVar(&plusAsSpace, "plus-as-space", false, `decode "+" as a space`)
	cmd.Flags().IntVar(&bufferSize, "buffer-size", 2048, "size of the decode buffer in bytes")

	return cmd
}
