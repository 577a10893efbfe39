package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"

	publiciphttp "ddnsc/pkg/publicip/http"
	"ddnsc/pkg/publicip/ipversion"
)

const all = "all"

type PubIP struct {
	// UseProviderIP lets the provider detect the address from the
	// connecting socket instead of discovering it locally.
	UseProviderIP *bool
	// UseLocalIP discovers the address from the local interfaces
	// instead of external echo services.
	UseLocalIP        *bool
	HTTPIPv4Providers []string
	HTTPIPv6Providers []string
	// FetchTimeout bounds each echo service attempt.
	FetchTimeout time.Duration
}

func (p *PubIP) setDefaults() {
	p.UseProviderIP = gosettings.DefaultPointer(p.UseProviderIP, false)
	p.UseLocalIP = gosettings.DefaultPointer(p.UseLocalIP, false)
	p.HTTPIPv4Providers = gosettings.DefaultSlice(p.HTTPIPv4Providers, []string{all})
	p.HTTPIPv6Providers = gosettings.DefaultSlice(p.HTTPIPv6Providers, []string{all})
	const defaultFetchTimeout = 20 * time.Second
	p.FetchTimeout = gosettings.DefaultNumber(p.FetchTimeout, defaultFetchTimeout)
}

func (p PubIP) mergeWith(other PubIP) (merged PubIP) {
	merged.UseProviderIP = gosettings.MergeWithPointer(p.UseProviderIP, other.UseProviderIP)
	merged.UseLocalIP = gosettings.MergeWithPointer(p.UseLocalIP, other.UseLocalIP)
	merged.HTTPIPv4Providers = gosettings.MergeWithSlice(p.HTTPIPv4Providers, other.HTTPIPv4Providers)
	merged.HTTPIPv6Providers = gosettings.MergeWithSlice(p.HTTPIPv6Providers, other.HTTPIPv6Providers)
	merged.FetchTimeout = gosettings.MergeWithNumber(p.FetchTimeout, other.FetchTimeout)
	return merged
}

var ErrIPSourcesMutuallyExclusive = errors.New(
	"provider detected IP and local IP cannot both be enabled")

func (p PubIP) Validate() (err error) {
	if *p.UseProviderIP && *p.UseLocalIP {
		return fmt.Errorf("%w", ErrIPSourcesMutuallyExclusive)
	}

	err = validateHTTPProviders(p.HTTPIPv4Providers, ipversion.IP4)
	if err != nil {
		return fmt.Errorf("HTTP IPv4 providers: %w", err)
	}
	err = validateHTTPProviders(p.HTTPIPv6Providers, ipversion.IP6)
	if err != nil {
		return fmt.Errorf("HTTP IPv6 providers: %w", err)
	}

	return nil
}

func validateHTTPProviders(providers []string, version ipversion.IPVersion) (err error) {
	for _, provider := range providers {
		if provider == all {
			continue
		}
		err = publiciphttp.ValidateProvider(publiciphttp.Provider(provider), version)
		if err != nil {
			return err
		}
	}
	return nil
}

// ToHTTPOptions assumes the settings have been validated.
func (p PubIP) ToHTTPOptions() (options []publiciphttp.Option) {
	providersIP4 := stringsToHTTPProviders(p.HTTPIPv4Providers, ipversion.IP4)
	providersIP6 := stringsToHTTPProviders(p.HTTPIPv6Providers, ipversion.IP6)
	return []publiciphttp.Option{
		publiciphttp.SetProvidersIP4(providersIP4[0], providersIP4[1:]...),
		publiciphttp.SetProvidersIP6(providersIP6[0], providersIP6[1:]...),
		publiciphttp.SetTimeout(p.FetchTimeout),
	}
}

func stringsToHTTPProviders(providers []string, version ipversion.IPVersion) (
	httpProviders []publiciphttp.Provider) {
	for _, provider := range providers {
		if provider == all {
			return publiciphttp.ListProvidersForVersion(version)
		}
	}
	httpProviders = make([]publiciphttp.Provider, len(providers))
	for i, provider := range providers {
		httpProviders[i] = publiciphttp.Provider(provider)
	}
	return httpProviders
}

func (p PubIP) String() string {
	return p.toLinesNode().String()
}

func (p PubIP) toLinesNode() *gotree.Node {
	node := gotree.New("Public IP discovery")
	node.Appendf("Let the provider detect the IP: %s", gosettings.BoolToYesNo(p.UseProviderIP))
	node.Appendf("Use the local interface IP: %s", gosettings.BoolToYesNo(p.UseLocalIP))
	node.Appendf("Echo service timeout: %s", p.FetchTimeout)

	childNode := node.Appendf("HTTP IPv4 providers")
	for _, provider := range p.HTTPIPv4Providers {
		childNode.Appendf(provider)
	}
	childNode = node.Appendf("HTTP IPv6 providers")
	for _, provider := range p.HTTPIPv6Providers {
		childNode.Appendf(provider)
	}
	return node
}
