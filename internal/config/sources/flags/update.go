package flags

import (
	"ddnsc/internal/config/settings"
)

func (s *Source) readUpdate() (settings settings.Update) {
	settings.IPv4 = s.bool("ipv4")
	settings.IPv6 = s.bool("ipv6")
	settings.Force = s.bool("force")
	settings.OverrideIP = s.string("ip")
	return settings
}
