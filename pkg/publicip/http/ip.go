package http

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	nethttp "net/http"
	"net/netip"
	"strings"

	"ddnsc/pkg/publicip/ipversion"
)

var ErrProvidersExhausted = errors.New("all public IP echo providers failed")

// IP returns the public IP address of the requested version.
// The echo service URLs are tried in a fresh random order and the
// first valid answer wins, so the load is spread across services and
// no single one is depended upon.
func (f *Fetcher) IP(ctx context.Context, version ipversion.IPVersion) (
	publicIP netip.Addr, err error) {
	urls, client := f.urls4, f.client4
	if version == ipversion.IP6 {
		urls, client = f.urls6, f.client6
	}

	attemptErrors := make([]string, 0, len(urls))
	for _, i := range rand.Perm(len(urls)) {
		publicIP, err = f.tryURL(ctx, client, urls[i], version)
		if err != nil {
			attemptErrors = append(attemptErrors, err.Error()+" ("+urls[i]+")")
			continue
		}
		return publicIP, nil
	}

	return netip.Addr{}, fmt.Errorf("%w: %s",
		ErrProvidersExhausted, strings.Join(attemptErrors, ", "))
}

func (f *Fetcher) tryURL(ctx context.Context, client *nethttp.Client,
	url string, version ipversion.IPVersion) (publicIP netip.Addr, err error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	return fetch(ctx, client, url, version)
}
