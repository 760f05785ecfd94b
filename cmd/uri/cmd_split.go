package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/uriparse/dns"
	"github.com/ghettovoice/uriparse/internal/errorutil"
	"github.com/ghettovoice/uriparse/uri"
)

type splitOptions struct {
	path        bool
	query       bool
	decode      bool
	plusAsSpace bool
	strictHost  bool
	itemSep     string
	keySep      string
	json        bool
	resolve     bool
	nameserver  string
	timeout     time.Duration
}

func newSplitCmd(root *rootOptions) *cobra.Command {
	var opts splitOptions

	cmd := &cobra.Command{
		Use:   "split [uri...]",
		Short: "Split URIs into their components",
		Long: `Split every argument, or every line of stdin if there are none, into its components.

By default the input is a full URI. Use --path or --query for an isolated path or query.
Components are printed as they are recognized, so path segments come before the path
and query items after the query.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			itemSep, err := separator("item-sep", opts.itemSep)
			if err != nil {
				return errtrace.Wrap(err)
			}
			keySep, err := separator("key-sep", opts.keySep)
			if err != nil {
				return errtrace.Wrap(err)
			}
			logger, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return errtrace.Wrap(err)
			}

			sp := &splitter{
				opts:     opts,
				resolver: &dns.Resolver{NameServer: opts.nameserver, Timeout: opts.timeout},
				out:      cmd.OutOrStdout(),
				split: uri.SplitOptions{
					Decode:                opts.decode,
					PlusAsSpace:           opts.plusAsSpace,
					StrictHost:            opts.strictHost,
					QueryItemSeparator:    itemSep,
					QueryItemKeySeparator: keySep,
					Logger:                logger,
				},
			}
			return errtrace.Wrap(eachInput(args, cmd.InOrStdin(), func(s string) error {
				return errtrace.Wrap(sp.run(cmd.Context(), s))
			}))
		},
	}

	cmd.Flags().BoolVarP(&opts.path, "path", "p", false, "parse the input as a path")
	cmd.Flags().BoolVarP(&opts.query, "query", "q", false, "parse the input as a query")
	cmd.MarkFlagsMutuallyExclusive("path", "query")
	cmd.Flags().BoolVarP(&opts.decode, "decode", "d", false, "percent-decode components")
	cmd.Flags().BoolVar(&opts.plusAsSpace, "plus-as-space", false, `decode "+" as a space`)
	cmd.Flags().BoolVar(&opts.strictHost, "strict-host", false, "validate IP hosts with the exact RFC 3986 grammar")
	cmd.Flags().StringVar(&opts.itemSep, "item-sep", "&", "query item separator")
	cmd.Flags().StringVar(&opts.keySep, "key-sep", "=", "query item key separator")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print components as JSON")
	cmd.Flags().BoolVar(&opts.resolve, "resolve", false, "resolve the host to transport addresses")
	cmd.Flags().StringVar(&opts.nameserver, "nameserver", "", "DNS server address, defaults to the first one of /etc/resolv.conf")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 5*time.Second, "DNS query timeout")

	return cmd
}

func separator(name, s string) (byte, error) {
	if len(s) != 1 {
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError("--%s must be a single byte, got %q", name, s))
	}
	return s[0], nil
}

type splitter struct {
	opts     splitOptions
	split    uri.SplitOptions
	resolver *dns.Resolver
	out      io.Writer
}

func (sp *splitter) run(ctx context.Context, s string) error {
	if sp.opts.json {
		return errtrace.Wrap(sp.printJSON(ctx, s))
	}

	pr := &printer{w: sp.out}
	var status uri.Status
	switch st := printerSettings(&sp.split); {
	case sp.opts.path:
		status = uri.ParsePath(s, st, pr)
	case sp.opts.query:
		status = uri.ParseQuery(s, st, pr)
	default:
		status = uri.ParseFullURI(s, st, pr)
	}
	switch status {
	case uri.Canceled:
		return errtrace.Wrap(pr.err)
	case uri.Error:
		return errtrace.Wrap(errorutil.NewWrapperError(uri.ErrMalformedInput, "%q", s))
	}

	if !sp.resolving() {
		return nil
	}
	parts, err := uri.Split(s, &sp.split)
	if err != nil {
		return errtrace.Wrap(err)
	}
	addrs, err := sp.resolver.ResolveURI(ctx, parts)
	if err != nil {
		return errtrace.Wrap(err)
	}
	for i, addr := range addrs {
		if _, err := fmt.Fprintf(sp.out, "addr[%d]: %s\n", i, addr); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func (sp *splitter) resolving() bool { return sp.opts.resolve && !sp.opts.path && !sp.opts.query }

func (sp *splitter) printJSON(ctx context.Context, s string) error {
	var (
		parts *uri.Parts
		err   error
	)
	switch {
	case sp.opts.path:
		parts, err = uri.SplitPath(s, &sp.split)
	case sp.opts.query:
		parts, err = uri.SplitQuery(s, &sp.split)
	default:
		parts, err = uri.Split(s, &sp.split)
	}
	if err != nil {
		return errtrace.Wrap(err)
	}

	res := newSplitResult(s, parts)
	if sp.resolving() {
		addrs, err := sp.resolver.ResolveURI(ctx, parts)
		if err != nil {
			return errtrace.Wrap(err)
		}
		for _, addr := range addrs {
			res.Addrs = append(res.Addrs, addr.String())
		}
	}

	enc := json.NewEncoder(sp.out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return errtrace.Wrap(enc.Encode(res))
}

// printer writes components as they are recognized.
// The segment and item counters belong to a single parse call.
type printer struct {
	w    io.Writer
	seg  int
	item int
	err  error
}

// printf stops the parse once a write fails.
func (p *printer) printf(format string, args ...any) bool {
	_, p.err = fmt.Fprintf(p.w, format, args...)
	return p.err == nil
}

func (p *printer) printItem(format string, args ...any) bool {
	i := p.item
	p.item++
	return p.printf("query[%d]: "+format+"\n", append([]any{i}, args...)...)
}

func spanPrinter(name string) uri.Hook[*printer] {
	return func(p *printer, b []byte) bool { return p.printf("%s: %s\n", name, b) }
}

func printerSettings(o *uri.SplitOptions) *uri.Settings[*printer] {
	return &uri.Settings[*printer]{
		Scheme:   spanPrinter("scheme"),
		Userinfo: spanPrinter("userinfo"),
		Host:     spanPrinter("host"),
		Port:     spanPrinter("port"),
		Path:     spanPrinter("path"),
		Query:    spanPrinter("query"),
		Fragment: spanPrinter("fragment"),
		PathSegment: func(p *printer, b []byte) bool {
			i := p.seg
			p.seg++
			return p.printf("path[%d]: %s\n", i, b)
		},
		QueryNullItem: func(p *printer, k []byte) bool {
			return p.printItem("%s (null)", k)
		},
		QueryIntItem: func(p *printer, k []byte, v int64) bool {
			return p.printItem("%s = %d (int)", k, v)
		},
		QueryRealItem: func(p *printer, k []byte, v float64) bool {
			return p.printItem("%s = %g (real)", k, v)
		},
		QueryTextItem: func(p *printer, k, v []byte) bool {
			return p.printItem("%s = %q (text)", k, v)
		},
		QueryItemSeparator:    o.QueryItemSeparator,
		QueryItemKeySeparator: o.QueryItemKeySeparator,
		Decode:                o.Decode,
		PlusAsSpace:           o.PlusAsSpace,
		StrictHost:            o.StrictHost,
		Logger:                o.Logger,
	}
}

type splitResult struct {
	Input    string      `json:"input"`
	Scheme   string      `json:"scheme,omitempty"`
	Userinfo *string     `json:"userinfo,omitempty"`
	Host     *string     `json:"host,omitempty"`
	Port     *string     `json:"port,omitempty"`
	Path     string      `json:"path"`
	Segments []string    `json:"segments,omitempty"`
	Query    *string     `json:"query,omitempty"`
	Items    []splitItem `json:"items,omitempty"`
	Fragment *string     `json:"fragment,omitempty"`
	Addrs    []string    `json:"addrs,omitempty"`
}

type splitItem struct {
	Key   string `json:"key"`
	Kind  string `json:"kind"`
	Value any    `json:"value,omitempty"`
}

func optional(ok bool, s string) *string {
	if !ok {
		return nil
	}
	return &s
}

func newSplitResult(in string, p *uri.Parts) *splitResult {
	res := &splitResult{
		Input:    in,
		Scheme:   p.Scheme,
		Userinfo: optional(p.HasUserinfo, p.Userinfo),
		Host:     optional(p.HasAuthority, p.Host),
		Port:     optional(p.HasPort, p.Port),
		Path:     p.Path,
		Segments: p.Segments,
		Query:    optional(p.HasQuery, p.Query),
		Fragment: optional(p.HasFragment, p.Fragment),
	}
	for _, it := range p.Items {
		item := splitItem{Key: it.Key, Kind: it.Value.Kind.String()}
		switch it.Value.Kind {
		case uri.IntValue:
			item.Value = it.Value.Int
		case uri.RealValue:
			item.Value = it.Value.Real
		case uri.TextValue:
			item.Value = it.Value.Text
		}
		res.Items = append(res.Items, item)
	}
	return res
}
