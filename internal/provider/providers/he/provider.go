// Package he configures the dyn protocol adapter for Hurricane
// Electric's dns.he.net service, which authenticates with the
// hostname itself as the username.
package he

import (
	"fmt"
	"net/http"
	"net/url"

	"ddnsc/internal/provider/providers/dyndns"
)

const endpoint = "https://dyn.dns.he.net/nic/update"

func New(hostname, password string, extraParams url.Values) (p *dyndns.Provider, err error) {
	endpointURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoint URL: %w", err)
	}

	return dyndns.New(dyndns.Settings{
		Endpoint:    endpointURL,
		Method:      http.MethodGet,
		Username:    hostname,
		Password:    password,
		Hostname:    hostname,
		ExtraParams: extraParams,
	})
}
