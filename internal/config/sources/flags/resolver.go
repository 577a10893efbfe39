package flags

import (
	"ddnsc/internal/lookup"
)

func (s *Source) readResolver() (settings lookup.Settings) {
	settings.Nameserver = s.string("resolver")
	settings.Timeout = s.duration("resolver-timeout")
	return settings
}
