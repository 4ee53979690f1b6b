package resolve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/miekg/dns"

	"github.com/cnaize/bouncer/src/core/filter"
)

const (
	defaultDNSPort = "53"
	clientTimeout  = 3 * time.Second
)

var _ filter.NameResolver = (*DNS)(nil)

// DNS resolves hostnames against a single UDP server. NXDOMAIN fails
// with filter.ErrHostNotFound.
type DNS struct {
	server string
	client *dns.Client
}

func NewDNS(server string) *DNS {
	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, defaultDNSPort)
	}

	return &DNS{
		server: server,
		client: &dns.Client{
			Net:     "udp",
			Timeout: clientTimeout,
		},
	}
}

func (r *DNS) Resolve(ctx context.Context, hostname string) ([]netip.Addr, error) {
	var addrs []netip.Addr
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		req := new(dns.Msg)
		req.SetQuestion(dns.Fqdn(hostname), qtype)

		resp, _, err := r.client.ExchangeContext(ctx, req, r.server)
		if err != nil {
			return nil, fmt.Errorf("%s: exchange: %w", hostname, err)
		}

		if resp.Rcode == dns.RcodeNameError {
			return nil, fmt.Errorf("%s: %w", hostname, filter.ErrHostNotFound)
		}
		if resp.Rcode != dns.RcodeSuccess {
			return nil, fmt.Errorf("%s: rcode %s", hostname, dns.RcodeToString[resp.Rcode])
		}

		for _, rr := range resp.Answer {
			switch answer := rr.(type) {
			case *dns.A:
				if ip4 := answer.A.To4(); ip4 != nil {
					addrs = append(addrs, netip.AddrFrom4([4]byte(ip4)))
				}
			case *dns.AAAA:
				if addr, ok := netip.AddrFromSlice(answer.AAAA); ok {
					addrs = append(addrs, addr)
				}
			}
		}
	}

	return addrs, nil
}

var _ filter.NameResolver = (*System)(nil)

// System resolves hostnames through the operating system resolver.
type System struct {
	resolver *net.Resolver
}

func NewSystem() *System {
	return &System{
		resolver: net.DefaultResolver,
	}
}

func (r *System) Resolve(ctx context.Context, hostname string) ([]netip.Addr, error) {
	addrs, err := r.resolver.LookupNetIP(ctx, "ip", hostname)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return nil, fmt.Errorf("%s: %w", hostname, filter.ErrHostNotFound)
		}

		return nil, fmt.Errorf("%s: lookup: %w", hostname, err)
	}

	for i, addr := range addrs {
		addrs[i] = addr.Unmap()
	}

	return addrs, nil
}
