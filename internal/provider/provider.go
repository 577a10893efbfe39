// Package provider contains the DDNS provider protocol adapters.
package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"

	"ddnsc/internal/config/settings"
	"ddnsc/internal/provider/providers/cloudflare"
	"ddnsc/internal/provider/providers/dyndns"
	"ddnsc/internal/provider/providers/he"
)

// Provider pushes an address update to a DDNS service.
type Provider interface {
	String() string
	Hostname() string
	// Update publishes ip for the provider's hostname. An invalid ip
	// asks the provider to detect the address from the connecting
	// socket, which only the dyn protocol family supports; the given
	// client must then be constrained to the matching IP family
	// transport.
	Update(ctx context.Context, client *http.Client, ip netip.Addr) error
}

type InfoLogger interface {
	Infof(format string, args ...interface{})
}

// New builds the provider matching the validated settings.
func New(ps settings.Provider, logger InfoLogger) (p Provider, err error) {
	switch ps.API {
	case settings.APIDyn:
		endpointURL, err := url.Parse(*ps.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("parsing endpoint URL: %w", err)
		}
		return dyndns.New(dyndns.Settings{
			Endpoint:    endpointURL,
			Method:      ps.Method,
			Username:    *ps.Username,
			Password:    *ps.Password,
			Hostname:    ps.Hostname,
			ExtraParams: mapToValues(ps.ExtraParams),
		})
	case settings.APIHE:
		return he.New(ps.Hostname, *ps.Password, mapToValues(ps.ExtraParams))
	case settings.APICloudflare:
		return cloudflare.New(cloudflare.Settings{
			Hostname:    ps.Hostname,
			Token:       *ps.Password,
			ExtraFields: ps.ExtraParams,
			Logger:      logger,
		})
	default:
		return nil, fmt.Errorf("%w: %s", settings.ErrAPIUnknown, ps.API)
	}
}

func mapToValues(params map[string]string) url.Values {
	if len(params) == 0 {
		return nil
	}
	values := make(url.Values, len(params))
	for key, value := range params {
		values.Set(key, value)
	}
	return values
}
