package env

import (
	"ddnsc/internal/config/settings"
)

func (s *Source) readUpdate() (settings settings.Update, err error) {
	settings.IPv4, err = s.env.BoolPtr("IPV4")
	if err != nil {
		return settings, err
	}

	settings.IPv6, err = s.env.BoolPtr("IPV6")
	if err != nil {
		return settings, err
	}

	settings.Force, err = s.env.BoolPtr("FORCE")
	if err != nil {
		return settings, err
	}

	settings.OverrideIP = s.env.Get("IP")

	return settings, nil
}
