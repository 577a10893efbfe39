// Package env reads settings from environment variables.
package env

import (
	"fmt"
	"os"

	"github.com/qdm12/gosettings/sources/env"

	"ddnsc/internal/config/settings"
)

type Source struct {
	env env.Env
}

func New() *Source {
	noDeprecatedKeys := func(deprecatedKey, currentKey string) {}
	return &Source{
		env: *env.New(os.Environ(), noDeprecatedKeys),
	}
}

func (s *Source) Read() (settings settings.Settings, err error) {
	settings.Client, err = s.readClient()
	if err != nil {
		return settings, fmt.Errorf("reading client settings: %w", err)
	}

	settings.Update, err = s.readUpdate()
	if err != nil {
		return settings, fmt.Errorf("reading update settings: %w", err)
	}

	settings.PubIP, err = s.readPubIP()
	if err != nil {
		return settings, fmt.Errorf("reading public IP settings: %w", err)
	}

	settings.Provider, err = s.readProvider()
	if err != nil {
		return settings, fmt.Errorf("reading provider settings: %w", err)
	}

	settings.Resolver, err = s.readResolver()
	if err != nil {
		return settings, fmt.Errorf("reading resolver settings: %w", err)
	}

	settings.Logger, err = s.readLogger()
	if err != nil {
		return settings, fmt.Errorf("reading logger settings: %w", err)
	}

	settings.Shoutrrr = s.readShoutrrr()

	return settings, nil
}
