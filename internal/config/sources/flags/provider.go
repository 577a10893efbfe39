package flags

import (
	"errors"
	"fmt"
	"strings"

	"ddnsc/internal/config/settings"
)

func (s *Source) readProvider() (settings settings.Provider, err error) {
	if api := s.string("api"); api != nil {
		settings.API = *api
	}
	settings.Endpoint = s.string("url")
	if method := s.string("method"); method != nil {
		settings.Method = strings.ToUpper(*method)
	}
	if hostname := s.string("hostname"); hostname != nil {
		settings.Hostname = *hostname
	}
	settings.Username = s.string("username")
	settings.Password = s.string("password")

	settings.ExtraParams, err = readExtraParams(s.stringSlice("extra-param"))
	if err != nil {
		return settings, fmt.Errorf("flag --extra-param: %w", err)
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
