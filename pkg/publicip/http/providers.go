package http

import (
	"errors"
	"fmt"
	"strings"

	"ddnsc/pkg/publicip/ipversion"
)

type Provider string

const (
	Ipify     Provider = "ipify"
	Icanhazip Provider = "icanhazip"
	Ident     Provider = "ident"
	Nnev      Provider = "nnev"
	Wtfismyip Provider = "wtfismyip"
	Seeip     Provider = "seeip"
)

func ListProviders() []Provider {
	return []Provider{
		Ipify,
		Icanhazip,
		Ident,
		Nnev,
		Wtfismyip,
		Seeip,
	}
}

func ListProvidersForVersion(version ipversion.IPVersion) (providers []Provider) {
	for _, provider := range ListProviders() {
		if provider.SupportsVersion(version) {
			providers = append(providers, provider)
		}
	}
	return providers
}

var (
	ErrUnknownProvider   = errors.New("unknown public IP echo HTTP provider")
	ErrProviderIPVersion = errors.New("provider does not support IP version")
)

func ValidateProvider(provider Provider, version ipversion.IPVersion) error {
	if strings.HasPrefix(string(provider), "url:https://") { // custom HTTP url
		return nil
	}

	for _, possible := range ListProviders() {
		if provider == possible {
			_, ok := provider.url(version)
			if !ok {
				return fmt.Errorf("%w: %q for version %s",
					ErrProviderIPVersion, provider, version)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

func (provider Provider) url(version ipversion.IPVersion) (url string, ok bool) {
	switch version {
	case ipversion.IP4:
		switch provider {
		case Ipify:
			url = "https://api.ipify.org"
		case Icanhazip:
			url = "https://ipv4.icanhazip.com"
		case Ident:
			url = "https://v4.ident.me"
		case Nnev:
			url = "https://ip4.nnev.de"
		case Wtfismyip:
			url = "https://ipv4.wtfismyip.com/text"
		case Seeip:
			url = "https://ipv4.seeip.org"
		}
	case ipversion.IP6:
		switch provider {
		case Ipify:
			url = "https://api6.ipify.org"
		case Icanhazip:
			url = "https://ipv6.icanhazip.com"
		case Ident:
			url = "https://v6.ident.me"
		case Nnev:
			url = "https://ip6.nnev.de"
		case Wtfismyip:
			url = "https://ipv6.wtfismyip.com/text"
		case Seeip:
			url = "https://ipv6.seeip.org"
		}
	}

	// Custom URL?
	if s := string(provider); strings.HasPrefix(s, "url:") {
		url = strings.TrimPrefix(s, "url:")
	}

	if url == "" {
		return "", false
	}
	return url, true
}

func (provider Provider) SupportsVersion(version ipversion.IPVersion) bool {
	_, ok := provider.url(version)
	return ok
}
