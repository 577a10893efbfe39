package flags

import (
	"ddnsc/internal/config/settings"
)

func (s *Source) readPubIP() (settings settings.PubIP) {
	settings.UseProviderIP = s.bool("use-provider-ip")
	settings.UseLocalIP = s.bool("use-local-ip")
	settings.HTTPIPv4Providers = s.stringSlice("ipv4-providers")
	settings.HTTPIPv6Providers = s.stringSlice("ipv6-providers")
	settings.FetchTimeout = s.duration("fetch-timeout")
	return settings
}
