package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/miekg/dns"
)

type resolver interface {
	resolve(ctx context.Context, target string) (string, error)
}

// dnsResolver resolves CNAME targets through a single upstream resolver.
// Timeout bounds each exchange.
type dnsResolver struct {
	addr   string
	client *dns.Client
}

func newDNSResolver(addr string, timeout time.Duration) *dnsResolver {
	return &dnsResolver{
		addr:   addr,
		client: &dns.Client{Timeout: timeout},
	}
}

// resolve follows at most one CNAME answer set for target, then returns the
// first IPv4 address the final name resolves to. A missing or empty CNAME
// answer leaves the target unchanged; a failed or empty A answer is an error.
func (r *dnsResolver) resolve(ctx context.Context, target string) (string, error) {
	name := dns.Fqdn(strings.ToLower(strings.TrimSpace(target)))

	q := new(dns.Msg)
	q.SetQuestion(name, dns.TypeCNAME)
	resp, _, err := r.client.ExchangeContext(ctx, q, r.addr)
	if err != nil {
		return "", fmt.Errorf("%w %s: CNAME lookup: %v", errUnresolvable, target, err)
	}
	if resp.Rcode == dns.RcodeSuccess {
		for _, rr := range resp.Answer {
			if cname, ok := rr.(*dns.CNAME); ok {
				name = dns.Fqdn(strings.ToLower(cname.Target))
			}
		}
	}

	q = new(dns.Msg)
	q.SetQuestion(name, dns.TypeA)
	resp, _, err = r.client.ExchangeContext(ctx, q, r.addr)
	if err != nil {
		return "", fmt.Errorf("%w %s: A lookup: %v", errUnresolvable, target, err)
	}
	if resp.Rcode == dns.RcodeNameError {
		return "", fmt.Errorf("%w %s: no such domain", errUnresolvable, target)
	}

	for _, rr := range resp.Answer {
		if a, ok := rr.(*dns.A); ok && a.A.To4() != nil {
			return a.A.String(), nil
		}
	}

	return "", fmt.Errorf("%w %s: no A answer", errUnresolvable, target)
}
