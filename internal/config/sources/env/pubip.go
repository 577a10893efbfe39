package env

import (
	"ddnsc/internal/config/settings"
)

func (s *Source) readPubIP() (settings settings.PubIP, err error) {
	settings.UseProviderIP, err = s.env.BoolPtr("USE_PROVIDER_IP")
	if err != nil {
		return settings, err
	}

	settings.UseLocalIP, err = s.env.BoolPtr("USE_LOCAL_IP")
	if err != nil {
		return settings, err
	}

	settings.HTTPIPv4Providers = s.env.CSV("PUBLICIPV4_HTTP_PROVIDERS")
	settings.HTTPIPv6Providers = s.env.CSV("PUBLICIPV6_HTTP_PROVIDERS")

	settings.FetchTimeout, err = s.env.Duration("PUBLICIP_FETCH_TIMEOUT")
	if err != nil {
		return settings, err
	}

	return settings, nil
}
