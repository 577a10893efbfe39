package env

import (
	"github.com/qdm12/gosettings/sources/env"

	"ddnsc/internal/shoutrrr"
)

func (s *Source) readShoutrrr() (settings shoutrrr.Settings) {
	settings.Addresses = s.env.CSV("SHOUTRRR_ADDRESSES", env.ForceLowercase(false))
	settings.DefaultTitle = s.env.String("SHOUTRRR_DEFAULT_TITLE", env.ForceLowercase(false))
	return settings
}
