package flags

import (
	"ddnsc/internal/shoutrrr"
)

func (s *Source) readShoutrrr() (settings shoutrrr.Settings) {
	settings.Addresses = s.stringSlice("notify")
	if title := s.string("notify-title"); title != nil {
		settings.DefaultTitle = *title
	}
	return settings
}
