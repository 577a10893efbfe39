// Package dyndns implements the de facto standard dyn-style DDNS
// update protocol: a single authenticated GET or POST carrying
// hostname and myip parameters, answered by a textual status.
package dyndns

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"net/url"
	"strings"

	"ddnsc/internal/provider/errors"
	"ddnsc/internal/provider/headers"
	"ddnsc/internal/provider/utils"
)

type Provider struct {
	endpoint    *url.URL
	method      string
	username    string
	password    string
	hostname    string
	extraParams url.Values
}

type Settings struct {
	Endpoint *url.URL
	// Method is either GET or POST.
	Method   string
	Username string
	Password string
	Hostname string
	// ExtraParams are provider specific parameters merged into the
	// update request. They are copied so later mutations by the
	// caller cannot leak into requests.
	ExtraParams url.Values
}

func New(settings Settings) (p *Provider, err error) {
	err = validateSettings(settings)
	if err != nil {
		return nil, err
	}

	return &Provider{
		endpoint:    settings.Endpoint,
		method:      settings.Method,
		username:    settings.Username,
		password:    settings.Password,
		hostname:    settings.Hostname,
		extraParams: cloneValues(settings.ExtraParams),
	}, nil
}

func validateSettings(settings Settings) (err error) {
	switch {
	case settings.Endpoint == nil, settings.Endpoint.String() == "":
		return fmt.Errorf("%w", errors.ErrEndpointNotSet)
	case settings.Endpoint.Scheme != "https":
		return fmt.Errorf("%w: scheme %q", errors.ErrEndpointNotHTTPS, settings.Endpoint.Scheme)
	case settings.Username == "":
		return fmt.Errorf("%w", errors.ErrUsernameNotSet)
	case settings.Password == "":
		return fmt.Errorf("%w", errors.ErrPasswordNotSet)
	case settings.Hostname == "":
		return fmt.Errorf("%w", errors.ErrHostnameNotSet)
	case settings.Method != http.MethodGet && settings.Method != http.MethodPost:
		return fmt.Errorf("%w: %q must be GET or POST", errors.ErrMethodNotValid, settings.Method)
	}

	err = utils.CheckHostname(settings.Hostname)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrHostnameNotValid, err)
	}
	return nil
}

func cloneValues(values url.Values) (cloned url.Values) {
	cloned = make(url.Values, len(values))
	for key, keyValues := range values {
		cloned[key] = append([]string(nil), keyValues...)
	}
	return cloned
}

func (p *Provider) String() string {
	return fmt.Sprintf("dyn protocol provider at %s for %s", p.endpoint.Host, p.hostname)
}

func (p *Provider) Hostname() string {
	return p.hostname
}

// Update sends a single dyn protocol update. An invalid ip omits the
// myip parameter so the provider detects the address from the
// connecting socket.
func (p *Provider) Update(ctx context.Context, client *http.Client, ip netip.Addr) (err error) {
	values := cloneValues(p.extraParams)
	values.Set("hostname", p.hostname)
	if ip.IsValid() {
		values.Set("myip", ip.String())
	}

	request, err := p.buildRequest(ctx, values)
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}

	response, err := client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrUnmarshalResponse, err)
	}
	s := strings.TrimSpace(string(b))

	if response.StatusCode < http.StatusOK ||
		response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %d: %s",
			errors.ErrHTTPStatusNotValid, response.StatusCode, utils.ToSingleLine(s))
	}

	// Wire contract fixed by the remote providers: the body's leading
	// token signals the result.
	switch {
	case strings.HasPrefix(s, "good "):
		return nil
	case strings.HasPrefix(s, "nochg "): // no change needed is a success
		return nil
	default:
		return fmt.Errorf("%w: %s", errors.ErrUnknownResponse, utils.ToSingleLine(s))
	}
}

func (p *Provider) buildRequest(ctx context.Context, values url.Values) (
	request *http.Request, err error) {
	u := *p.endpoint

	var body io.Reader
	switch p.method {
	case http.MethodGet:
		query := u.Query()
		for key, keyValues := range values {
			for _, value := range keyValues {
				query.Add(key, value)
			}
		}
		u.RawQuery = query.Encode()
	case http.MethodPost:
		body = strings.NewReader(values.Encode())
	}

	request, err = http.NewRequestWithContext(ctx, p.method, u.String(), body)
	if err != nil {
		return nil, err
	}

	headers.SetUserAgent(request)
	if p.method == http.MethodPost {
		headers.SetContentType(request, "application/x-www-form-urlencoded")
	}
	request.SetBasicAuth(p.username, p.password)
	return request, nil
}
