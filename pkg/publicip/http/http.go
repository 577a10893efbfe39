// Package http finds the host's public IP address by querying
// IP echo HTTP services.
package http

import (
	nethttp "net/http"
	"time"

	"ddnsc/pkg/netclient"
	"ddnsc/pkg/publicip/ipversion"
)

type Fetcher struct {
	client4 *nethttp.Client
	client6 *nethttp.Client
	timeout time.Duration
	urls4   []string
	urls6   []string
}

// New creates a fetcher which tries echo services in a random order,
// each over a transport forced to the requested IP family.
func New(options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	return &Fetcher{
		client4: netclient.NewFamilyClient(ipversion.IP4, settings.timeout),
		client6: netclient.NewFamilyClient(ipversion.IP6, settings.timeout),
		timeout: settings.timeout,
		urls4:   providersToURLs(settings.providersIP4, ipversion.IP4),
		urls6:   providersToURLs(settings.providersIP6, ipversion.IP6),
	}, nil
}

func providersToURLs(providers []Provider, version ipversion.IPVersion) (urls []string) {
	urls = make([]string, len(providers))
	for i, provider := range providers {
		urls[i], _ = provider.url(version)
	}
	return urls
}
