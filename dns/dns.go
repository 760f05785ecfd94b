// Package dns resolves the host of a URI to transport addresses.
package dns

//go:generate go tool errtrace -w .

import (
	"cmp"
	"context"
	"net"
	"net/netip"
	"slices"
	"strconv"
	"strings"
	"time"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/uriparse/internal/errorutil"
	"github.com/ghettovoice/uriparse/uri"
)

// ErrNoHost is returned by [Resolver.ResolveURI] for URIs without a host.
const ErrNoHost errorutil.Error = "URI has no host"

// Resolver queries a DNS server directly.
type Resolver struct {
	// NameServer specifies the DNS server address (e.g., "8.8.8.8:53").
	// If empty, the first server of /etc/resolv.conf is used.
	NameServer string
	// Timeout specifies the timeout for DNS queries.
	// If zero, defaults to 5 seconds.
	Timeout time.Duration
}

// LookupHost returns the IPv4 and IPv6 addresses of host.
// IP addresses, bracketed or not, are returned as is.
func (r *Resolver) LookupHost(ctx context.Context, host string) ([]netip.Addr, error) {
	if addr, err := netip.ParseAddr(strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")); err == nil {
		return []netip.Addr{addr}, nil
	}

	nameserver, err := r.nameserver()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	var (
		addrs []netip.Addr
		errs  []error
	)
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		rrs, err := r.exchange(ctx, nameserver, host, qtype)
		if err != nil {
			errs = append(errs, err)
			if errorutil.IsTimeoutErr(err) {
				break
			}
			continue
		}
		for _, rr := range rrs {
			switch rr := rr.(type) {
			case *dns.A:
				if addr, ok := netip.AddrFromSlice(rr.A.To4()); ok {
					addrs = append(addrs, addr)
				}
			case *dns.AAAA:
				if addr, ok := netip.AddrFromSlice(rr.AAAA); ok {
					addrs = append(addrs, addr)
				}
			}
		}
	}

	if len(addrs) > 0 {
		return addrs, nil
	}
	if err := errorutil.JoinPrefix("lookup "+host, errs...); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return nil, errtrace.Wrap(&net.DNSError{
		Err:        "no such host",
		Name:       host,
		IsNotFound: true,
	})
}

// SRV represents a SRV DNS record as defined in RFC 2782.
type SRV struct {
	Target   string
	Port     uint16
	Priority uint16
	Weight   uint16
}

// LookupSRV queries SRV records of _service._proto.host.
// If both service and proto are empty, host is queried directly.
// Returns records sorted by Priority (ascending), then by Weight (descending).
func (r *Resolver) LookupSRV(ctx context.Context, service, proto, host string) ([]*SRV, error) {
	name := host
	if service != "" || proto != "" {
		name = "_" + service + "._" + proto + "." + host
	}

	nameserver, err := r.nameserver()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	rrs, err := r.exchange(ctx, nameserver, name, dns.TypeSRV)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	recs := make([]*SRV, 0, len(rrs))
	for _, ans := range rrs {
		if rr, ok := ans.(*dns.SRV); ok {
			recs = append(recs, &SRV{
				Target:   rr.Target,
				Port:     rr.Port,
				Priority: rr.Priority,
				Weight:   rr.Weight,
			})
		}
	}

	slices.SortStableFunc(recs, func(a, b *SRV) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(b.Weight, a.Weight)
	})

	return recs, nil
}

// ResolveURI returns the transport addresses of the URI split into p.
//
// An explicit port is used with every address of the host.
// Otherwise the SRV records of _scheme._tcp.host are followed, and if there are none,
// the addresses of the host are returned with port 0.
func (r *Resolver) ResolveURI(ctx context.Context, p *uri.Parts) ([]netip.AddrPort, error) {
	if p == nil || !p.HasAuthority || p.Host == "" {
		return nil, errtrace.Wrap(ErrNoHost)
	}
	host := uri.Unescape(p.Host, false)

	if p.HasPort && p.Port != "" {
		port, err := strconv.ParseUint(p.Port, 10, 16)
		if err != nil {
			return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid port %q", p.Port))
		}
		return errtrace.Wrap2(r.lookupAddrPorts(ctx, host, uint16(port)))
	}

	if p.Scheme != "" {
		if _, err := netip.ParseAddr(strings.Trim(host, "[]")); err != nil {
			srvs, err := r.LookupSRV(ctx, strings.ToLower(p.Scheme), "tcp", host)
			if err == nil && len(srvs) > 0 {
				var (
					out  []netip.AddrPort
					errs []error
				)
				for _, srv := range srvs {
					aps, err := r.lookupAddrPorts(ctx, srv.Target, srv.Port)
					if err != nil {
						errs = append(errs, err)
						continue
					}
					out = append(out, aps...)
				}
				if len(out) > 0 {
					return out, nil
				}
				return nil, errtrace.Wrap(errorutil.JoinPrefix("resolve "+host, errs...))
			}
		}
	}

	return errtrace.Wrap2(r.lookupAddrPorts(ctx, host, 0))
}

func (r *Resolver) lookupAddrPorts(ctx context.Context, host string, port uint16) ([]netip.AddrPort, error) {
	addrs, err := r.LookupHost(ctx, host)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	aps := make([]netip.AddrPort, len(addrs))
	for i, addr := range addrs {
		aps[i] = netip.AddrPortFrom(addr, port)
	}
	return aps, nil
}

func (r *Resolver) exchange(ctx context.Context, nameserver, name string, qtype uint16) ([]dns.RR, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(name), qtype)
	m.RecursionDesired = true

	client := &dns.Client{Timeout: r.timeout()}
	resp, _, err := client.ExchangeContext(ctx, m, nameserver)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	if resp.Rcode != dns.RcodeSuccess {
		return nil, errtrace.Wrap(&net.DNSError{
			Err:        dns.RcodeToString[resp.Rcode],
			Name:       name,
			IsNotFound: resp.Rcode == dns.RcodeNameError,
		})
	}
	return resp.Answer, nil
}

func (r *Resolver) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return 5 * time.Second
}

func (r *Resolver) nameserver() (string, error) {
	if r.NameServer != "" {
		if _, _, err := net.SplitHostPort(r.NameServer); err != nil {
			return net.JoinHostPort(r.NameServer, "53"), nil //nolint:nilerr
		}
		return r.NameServer, nil
	}

	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if len(conf.Servers) == 0 {
		return "", errtrace.Wrap(&net.DNSError{
			Err:  "no DNS servers configured",
			Name: "resolv.conf",
		})
	}

	return net.JoinHostPort(conf.Servers[0], conf.Port), nil
}

var defResolver = &Resolver{}

func DefaultResolver() *Resolver { return defResolver }

func LookupHost(ctx context.Context, host string) ([]netip.Addr, error) {
	return errtrace.Wrap2(defResolver.LookupHost(ctx, host))
}

func LookupSRV(ctx context.Context, service, proto, host string) ([]*SRV, error) {
	return errtrace.Wrap2(defResolver.LookupSRV(ctx, service, proto, host))
}

func ResolveURI(ctx context.Context, p *uri.Parts) ([]netip.AddrPort, error) {
	return errtrace.Wrap2(defResolver.ResolveURI(ctx, p))
}
