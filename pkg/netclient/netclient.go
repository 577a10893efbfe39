// Package netclient creates HTTP clients constrained to a single
// IP address family transport.
package netclient

import (
	"context"
	"net"
	"net/http"
	"time"

	"ddnsc/pkg/publicip/ipversion"
)

// NewFamilyClient returns an HTTP client dialing exclusively over the
// given IP version's transport, so the remote end sees a connection
// of that family regardless of what the resolver would prefer.
func NewFamilyClient(version ipversion.IPVersion, timeout time.Duration) *http.Client {
	network := "tcp4"
	if version == ipversion.IP6 {
		network = "tcp6"
	}

	dialer := &net.Dialer{Timeout: timeout}
	transport := &http.Transport{
		DialContext: func(ctx context.Context, _, address string) (net.Conn, error) {
			return dialer.DialContext(ctx, network, address)
		},
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
