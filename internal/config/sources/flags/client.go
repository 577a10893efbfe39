package flags

import (
	"ddnsc/internal/config/settings"
)

func (s *Source) readClient() (settings settings.Client) {
	settings.Timeout = s.duration("http-timeout")
	return settings
}
