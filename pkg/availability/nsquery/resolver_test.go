package nsquery_test

import (
	"context"
	"net"
	"testing"
	"time"

	"hunter/pkg/availability/nsquery"
	"hunter/pkg/serrors"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"
)

// startDNS runs a local UDP DNS server answering with the given handler and
// returns its address.
func startDNS(t *testing.T, handler dns.HandlerFunc) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := &dns.Server{PacketConn: pc, Handler: handler}
	go func() {
		_ = srv.ActivateAndServe()
	}()
	t.Cleanup(func() {
		_ = srv.Shutdown()
	})

	return pc.LocalAddr().String()
}

func answer(req *dns.Msg, rcode int, hosts ...string) *dns.Msg {
	m := new(dns.Msg)
	m.SetRcode(req, rcode)
	for _, h := range hosts {
		m.Answer = append(m.Answer, &dns.NS{
			Hdr: dns.RR_Header{
				Name:   req.Question[0].Name,
				Rrtype: dns.TypeNS,
				Class:  dns.ClassINET,
				Ttl:    300,
			},
			Ns: h,
		})
	}

	return m
}

func TestLookupNS_Delegated(t *testing.T) {
	addr := startDNS(t, func(w dns.ResponseWriter, req *dns.Msg) {
		_ = w.WriteMsg(answer(req, dns.RcodeSuccess, "ns1.example.net.", "ns2.example.net."))
	})

	r := nsquery.New([]string{addr}, time.Second)
	hosts, err := r.LookupNS(context.Background(), "taken.com")
	require.NoError(t, err)
	require.Equal(t, []string{"ns1.example.net.", "ns2.example.net."}, hosts)
}

func TestLookupNS_NXDomain(t *testing.T) {
	addr := startDNS(t, func(w dns.ResponseWriter, req *dns.Msg) {
		_ = w.WriteMsg(answer(req, dns.RcodeNameError))
	})

	r := nsquery.New([]string{addr}, time.Second)
	_, err := r.LookupNS(context.Background(), "free.app")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestLookupNS_NoData(t *testing.T) {
	addr := startDNS(t, func(w dns.ResponseWriter, req *dns.Msg) {
		_ = w.WriteMsg(answer(req, dns.RcodeSuccess))
	})

	r := nsquery.New([]string{addr}, time.Second)
	_, err := r.LookupNS(context.Background(), "empty.ai")
	require.ErrorIs(t, err, serrors.ErrNoData)
}

func TestLookupNS_ServerFailure(t *testing.T) {
	addr := startDNS(t, func(w dns.ResponseWriter, req *dns.Msg) {
		_ = w.WriteMsg(answer(req, dns.RcodeServerFailure))
	})

	r := nsquery.New([]string{addr}, time.Second)
	_, err := r.LookupNS(context.Background(), "flaky.so")
	require.Error(t, err)
	require.NotErrorIs(t, err, serrors.ErrNotFound)
	require.NotErrorIs(t, err, serrors.ErrNoData)
}

func TestLookupNS_FallsThroughDeadServer(t *testing.T) {
	live := startDNS(t, func(w dns.ResponseWriter, req *dns.Msg) {
		_ = w.WriteMsg(answer(req, dns.RcodeSuccess, "ns1.example.net."))
	})

	// 127.0.0.1:9 is discard; the query times out and the live server answers.
	r := nsquery.New([]string{"127.0.0.1:9", live}, 250*time.Millisecond)
	hosts, err := r.LookupNS(context.Background(), "taken.com")
	require.NoError(t, err)
	require.Len(t, hosts, 1)
}
