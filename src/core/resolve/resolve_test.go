package resolve

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnaize/bouncer/src/core/filter"
)

// runDNSServer serves canned answers on a loopback udp socket.
func runDNSServer(t *testing.T, records map[string][]string) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	mux := dns.NewServeMux()
	mux.HandleFunc(".", func(w dns.ResponseWriter, req *dns.Msg) {
		resp := new(dns.Msg)
		resp.SetReply(req)

		question := req.Question[0]
		answers, found := records[question.Name]
		if !found {
			resp.Rcode = dns.RcodeNameError
			w.WriteMsg(resp)
			return
		}

		for _, answer := range answers {
			addr := netip.MustParseAddr(answer)
			hdr := dns.RR_Header{
				Name:   question.Name,
				Rrtype: question.Qtype,
				Class:  dns.ClassINET,
				Ttl:    60,
			}
			switch {
			case addr.Is4() && question.Qtype == dns.TypeA:
				resp.Answer = append(resp.Answer, &dns.A{Hdr: hdr, A: net.IP(addr.AsSlice())})
			case addr.Is6() && question.Qtype == dns.TypeAAAA:
				resp.Answer = append(resp.Answer, &dns.AAAA{Hdr: hdr, AAAA: net.IP(addr.AsSlice())})
			}
		}

		w.WriteMsg(resp)
	})

	srv := &dns.Server{PacketConn: pc, Handler: mux}
	go srv.ActivateAndServe()
	t.Cleanup(func() { srv.Shutdown() })

	return pc.LocalAddr().String()
}

func TestDNS_Resolve(t *testing.T) {
	t.Parallel()

	addr := runDNSServer(t, map[string][]string{
		"bad.example.com.": {"10.0.0.1", "2001:db8::1"},
	})

	addrs, err := NewDNS(addr).Resolve(context.Background(), "bad.example.com")
	require.NoError(t, err)
	assert.ElementsMatch(t, []netip.Addr{
		netip.MustParseAddr("10.0.0.1"),
		netip.MustParseAddr("2001:db8::1"),
	}, addrs)
}

func TestDNS_ResolveNotFound(t *testing.T) {
	t.Parallel()

	addr := runDNSServer(t, nil)

	_, err := NewDNS(addr).Resolve(context.Background(), "missing.example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, filter.ErrHostNotFound))
}

func TestSystem_ResolveNotFound(t *testing.T) {
	t.Parallel()

	_, err := NewSystem().Resolve(context.Background(), "host.invalid")
	require.Error(t, err)
}
