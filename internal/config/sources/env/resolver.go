package env

import (
	"ddnsc/internal/lookup"
)

func (s *Source) readResolver() (settings lookup.Settings, err error) {
	settings.Nameserver = s.env.Get("RESOLVER_ADDRESS")
	settings.Timeout, err = s.env.Duration("RESOLVER_TIMEOUT")
	return settings, err
}
