// Package nsquery resolves a domain's delegated nameservers. It is the
// fallback registration signal: a delegated name is registered, an NXDOMAIN
// or empty NS answer points at an unregistered one.
package nsquery

import (
	"context"
	"fmt"
	"net"
	"time"

	"hunter/pkg/serrors"

	"github.com/miekg/dns"
)

// DefaultServers are public resolvers tried in order when no server list is
// configured and /etc/resolv.conf yields nothing.
var DefaultServers = []string{ //nolint: gochecknoglobals
	"8.8.8.8:53", // Google
	"1.1.1.1:53", // Cloudflare
}

// Resolver performs NS lookups against a fixed list of recursive resolvers.
type Resolver struct {
	client  *dns.Client
	servers []string
}

// New constructs a Resolver querying the given servers in order. When no
// servers are configured, the system resolvers from /etc/resolv.conf are
// used, falling back to DefaultServers.
func New(servers []string, timeout time.Duration) *Resolver {
	if len(servers) == 0 {
		servers = systemServers()
	}
	if len(servers) == 0 {
		servers = DefaultServers
	}

	return &Resolver{
		client:  &dns.Client{Timeout: timeout},
		servers: servers,
	}
}

// systemServers reads the resolvers configured for this host.
func systemServers() []string {
	config, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(config.Servers) == 0 {
		return nil
	}

	port := config.Port
	if port == "" {
		port = "53"
	}
	servers := make([]string, 0, len(config.Servers))
	for _, s := range config.Servers {
		servers = append(servers, net.JoinHostPort(s, port))
	}

	return servers
}

// LookupNS returns the delegated nameserver hosts for fqdn. NXDOMAIN maps to
// serrors.ErrNotFound and a successful answer without NS records maps to
// serrors.ErrNoData; both mean no delegation exists. Transport failures and
// unexpected response codes are ordinary errors.
func (r *Resolver) LookupNS(ctx context.Context, fqdn string) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(fqdn), dns.TypeNS)
	msg.RecursionDesired = true

	var lastErr error
	for _, server := range r.servers {
		resp, _, err := r.client.ExchangeContext(ctx, msg, server)
		if err != nil {
			lastErr = err

			continue
		}

		switch resp.Rcode {
		case dns.RcodeNameError:
			return nil, serrors.With(serrors.ErrNotFound, "%s does not exist", fqdn)
		case dns.RcodeSuccess:
			var hosts []string
			for _, ans := range resp.Answer {
				if ns, ok := ans.(*dns.NS); ok {
					hosts = append(hosts, ns.Ns)
				}
			}
			if len(hosts) == 0 {
				return nil, serrors.With(serrors.ErrNoData, "%s has no NS records", fqdn)
			}

			return hosts, nil
		default:
			lastErr = fmt.Errorf("server %s answered rcode %s", server, dns.RcodeToString[resp.Rcode])
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no nameservers configured")
	}

	return nil, fmt.Errorf("could not query NS for %s: %w", fqdn, lastErr)
}
