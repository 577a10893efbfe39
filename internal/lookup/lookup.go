// Package lookup resolves the address currently published in DNS for
// a hostname and IP family.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"

	"github.com/miekg/dns"

	"ddnsc/pkg/publicip/ipversion"
)

type Resolver struct {
	client     Client
	nameserver string
}

func New(settings Settings) (resolver *Resolver, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	return &Resolver{
		client:     &dns.Client{Timeout: settings.Timeout},
		nameserver: *settings.Nameserver,
	}, nil
}

var (
	ErrRcodeNotSuccess = errors.New("response code is not successful")
	ErrNoAnswerForType = errors.New("no answer found for record type")
	ErrIPMalformed     = errors.New("IP address malformed")
)

// Published returns the first A or AAAA answer published for the
// hostname, matching the requested IP version. Callers treat any
// error, including a missing record, as "no address published".
func (r *Resolver) Published(ctx context.Context, hostname string,
	version ipversion.IPVersion) (addr netip.Addr, err error) {
	recordType := dns.TypeA
	if version == ipversion.IP6 {
		recordType = dns.TypeAAAA
	}

	message := new(dns.Msg)
	message.SetQuestion(dns.Fqdn(hostname), recordType)

	response, _, err := r.client.ExchangeContext(ctx, message, r.nameserver)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("exchanging DNS message: %w", err)
	}

	if response.Rcode != dns.RcodeSuccess {
		return netip.Addr{}, fmt.Errorf("%w: %s for %s %s",
			ErrRcodeNotSuccess, dns.RcodeToString[response.Rcode],
			hostname, version.RecordType())
	}

	for _, rr := range response.Answer {
		var ip net.IP
		switch record := rr.(type) {
		case *dns.A:
			ip = record.A
		case *dns.AAAA:
			ip = record.AAAA
		default: // CNAMEs and other records in the answer chain
			continue
		}

		addr, ok := netip.AddrFromSlice(ip)
		if !ok {
			return netip.Addr{}, fmt.Errorf("%w: %s", ErrIPMalformed, ip)
		}
		return addr.Unmap(), nil
	}

	return netip.Addr{}, fmt.Errorf("%w: %s for %s",
		ErrNoAnswerForType, version.RecordType(), hostname)
}
