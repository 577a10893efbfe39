package lookup

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

type Settings struct {
	// Nameserver is the address of the nameserver to query,
	// defaulting to the first resolv.conf nameserver.
	Nameserver *string
	Timeout    time.Duration
}

func (s *Settings) SetDefaults() {
	s.Nameserver = gosettings.DefaultPointer(s.Nameserver, systemNameserver())
	const defaultTimeout = 5 * time.Second
	s.Timeout = gosettings.DefaultNumber(s.Timeout, defaultTimeout)
}

func (s Settings) MergeWith(other Settings) (merged Settings) {
	merged.Nameserver = gosettings.MergeWithPointer(s.Nameserver, other.Nameserver)
	merged.Timeout = gosettings.MergeWithNumber(s.Timeout, other.Timeout)
	return merged
}

var (
	ErrNameserverNotValid = errors.New("nameserver address is not valid")
	ErrTimeoutTooLow      = errors.New("timeout is too low")
)

func (s Settings) Validate() (err error) {
	_, _, err = net.SplitHostPort(*s.Nameserver)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNameserverNotValid, err)
	}

	const minTimeout = 10 * time.Millisecond
	if s.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTimeoutTooLow, s.Timeout, minTimeout)
	}

	return nil
}

func (s Settings) String() string {
	return s.ToLinesNode().String()
}

func (s Settings) ToLinesNode() *gotree.Node {
	node := gotree.New("DNS lookup")
	node.Appendf("Nameserver: %s", *s.Nameserver)
	node.Appendf("Timeout: %s", s.Timeout)
	return node
}

func systemNameserver() string {
	const fallback = "1.1.1.1:53"
	config, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(config.Servers) == 0 {
		return fallback
	}
	return net.JoinHostPort(config.Servers[0], config.Port)
}
