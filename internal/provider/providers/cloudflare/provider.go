// Package cloudflare implements the Cloudflare v4 REST update flow:
// find the zone by walking the hostname's label suffixes, find the
// record by exact name and type, then patch the record content.
package cloudflare

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"ddnsc/internal/provider/errors"
	"ddnsc/internal/provider/headers"
	"ddnsc/internal/provider/utils"
)

const defaultBaseURL = "https://api.cloudflare.com/client/v4"

type Provider struct {
	hostname    string
	token       string
	extraFields map[string]string
	baseURL     *url.URL
	logger      InfoLogger
}

type InfoLogger interface {
	Infof(format string, args ...interface{})
}

type Settings struct {
	Hostname string
	Token    string
	// ExtraFields are provider specific JSON fields merged into the
	// record patch body, for example proxied or ttl.
	ExtraFields map[string]string
	// BaseURL defaults to the public Cloudflare API and is only
	// changed in tests.
	BaseURL *url.URL
	Logger  InfoLogger
}

func New(settings Settings) (p *Provider, err error) {
	switch {
	case settings.Hostname == "":
		return nil, fmt.Errorf("%w", errors.ErrHostnameNotSet)
	case settings.Token == "":
		return nil, fmt.Errorf("%w", errors.ErrTokenNotSet)
	}

	err = utils.CheckHostname(settings.Hostname)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrHostnameNotValid, err)
	}

	baseURL := settings.BaseURL
	if baseURL == nil {
		baseURL, err = url.Parse(defaultBaseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing base URL: %w", err)
		}
	}

	logger := settings.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	extraFields := make(map[string]string, len(settings.ExtraFields))
	for key, value := range settings.ExtraFields {
		extraFields[key] = value
	}

	return &Provider{
		hostname:    settings.Hostname,
		token:       settings.Token,
		extraFields: extraFields,
		baseURL:     baseURL,
		logger:      logger,
	}, nil
}

func (p *Provider) String() string {
	return fmt.Sprintf("cloudflare provider for %s", p.hostname)
}

func (p *Provider) Hostname() string {
	return p.hostname
}

func (p *Provider) setHeaders(request *http.Request) {
	headers.SetUserAgent(request)
	headers.SetContentType(request, "application/json")
	headers.SetAccept(request, "application/json")
	headers.SetAuthBearer(request, p.token)
}

func (p *Provider) endpoint(pathSuffix string) (u url.URL) {
	u = *p.baseURL
	u.Path += pathSuffix
	return u
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func joinAPIErrors(apiErrors []apiError) string {
	parts := make([]string, len(apiErrors))
	for i, apiError := range apiErrors {
		parts[i] = fmt.Sprintf("error %d: %s", apiError.Code, apiError.Message)
	}
	return strings.Join(parts, "; ")
}

type noopLogger struct{}

func (noopLogger) Infof(string, ...interface{}) {}
