package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/netip"
	"strings"

	"ddnsc/pkg/publicip/ipversion"
)

var (
	ErrHTTPStatusNotValid = errors.New("HTTP status is not valid")
	ErrIPMalformed        = errors.New("IP address malformed")
	ErrIPVersionMismatch  = errors.New("IP address family mismatch")
)

func fetch(ctx context.Context, client *nethttp.Client, url string,
	version ipversion.IPVersion) (publicIP netip.Addr, err error) {
	request, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, url, nil)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("creating request: %w", err)
	}

	response, err := client.Do(request)
	if err != nil {
		return netip.Addr{}, err
	}
	defer response.Body.Close()

	if response.StatusCode < nethttp.StatusOK ||
		response.StatusCode >= nethttp.StatusMultipleChoices {
		return netip.Addr{}, fmt.Errorf("%w: %d", ErrHTTPStatusNotValid, response.StatusCode)
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("reading response body: %w", err)
	}

	s := strings.TrimSpace(string(b))
	publicIP, err = netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrIPMalformed, err)
	}

	publicIP = publicIP.Unmap()
	switch version {
	case ipversion.IP4:
		if !publicIP.Is4() {
			return netip.Addr{}, fmt.Errorf("%w: %s is not IPv4", ErrIPVersionMismatch, publicIP)
		}
	case ipversion.IP6:
		if publicIP.Is4() {
			return netip.Addr{}, fmt.Errorf("%w: %s is not IPv6", ErrIPVersionMismatch, publicIP)
		}
	}

	return publicIP, nil
}
