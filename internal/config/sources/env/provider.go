package env

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qdm12/gosettings/sources/env"

	"ddnsc/internal/config/settings"
)

func (s *Source) readProvider() (settings settings.Provider, err error) {
	settings.API = s.env.String("API")
	settings.Endpoint = s.env.Get("ENDPOINT_URL", env.ForceLowercase(false))
	settings.Method = strings.ToUpper(s.env.String("UPDATE_METHOD"))
	settings.Hostname = s.env.String("HOSTNAME")
	settings.Username = s.env.Get("USERNAME", env.ForceLowercase(false))
	settings.Password = s.env.Get("PASSWORD", env.ForceLowercase(false))

	settings.ExtraParams, err = readExtraParams(
		s.env.CSV("EXTRA_PARAMS", env.ForceLowercase(false)))
	if err != nil {
		return settings, fmt.Errorf("environment variable EXTRA_PARAMS: %w", err)
	}

	return settings, nil
}

var ErrExtraParamNotValid = errors.New("extra parameter is not valid")

func readExtraParams(pairs []string) (params map[string]string, err error) {
	if pairs == nil {
		return nil, nil
	}

	params = make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q is not formatted as key=value",
				ErrExtraParamNotValid, pair)
		}
		params[key] = value
	}
	return params, nil
}
