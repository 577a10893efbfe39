// Package flags reads settings from command line flags.
package flags

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"ddnsc/internal/config/settings"
)

type Source struct {
	flagSet *pflag.FlagSet
}

func New(flagSet *pflag.FlagSet) *Source {
	return &Source{
		flagSet: flagSet,
	}
}

// Register defines every flag on the given flag set. Flags left at
// their default are ignored when reading, so their zero defaults
// never override other sources.
func Register(flagSet *pflag.FlagSet) {
	flagSet.String("api", "", "provider API to use, one of dyndns, he or cloudflare")
	flagSet.String("hostname", "", "hostname to update the record of")
	flagSet.String("username", "", "provider account username")
	flagSet.String("password", "", "provider account password or API token")
	flagSet.String("url", "", "update endpoint URL for the dyndns API")
	flagSet.String("method", "", "HTTP method for the dyndns API, GET or POST")
	flagSet.StringSlice("extra-param", nil, "extra key=value parameter to send, repeatable")

	flagSet.Bool("ipv4", false, "update the A record")
	flagSet.Bool("ipv6", false, "update the AAAA record")
	flagSet.Bool("force", false, "update even when the published record matches")
	flagSet.String("ip", "", "publish this address instead of discovering it")

	flagSet.Bool("use-provider-ip", false, "let the provider detect the address")
	flagSet.Bool("use-local-ip", false, "use the local interface address")
	flagSet.StringSlice("ipv4-providers", nil, "echo services to use for IPv4 discovery")
	flagSet.StringSlice("ipv6-providers", nil, "echo services to use for IPv6 discovery")
	flagSet.Duration("fetch-timeout", 0, "timeout for each echo service attempt")

	flagSet.Duration("http-timeout", 0, "timeout for provider HTTP requests")
	flagSet.String("resolver", "", "nameserver address to check published records with")
	flagSet.Duration("resolver-timeout", 0, "timeout for each published record query")

	flagSet.String("log-level", "", "log level, one of debug, info, warning or error")
	flagSet.Bool("log-caller", false, "log the caller file and function")

	flagSet.StringSlice("notify", nil, "shoutrrr address to notify, repeatable")
	flagSet.String("notify-title", "", "title for notifications")
}

func (s *Source) Read() (settings settings.Settings, err error) {
	settings.Provider, err = s.readProvider()
	if err != nil {
		return settings, fmt.Errorf("reading provider settings: %w", err)
	}

	settings.Update = s.readUpdate()
	settings.PubIP = s.readPubIP()
	settings.Client = s.readClient()
	settings.Resolver = s.readResolver()

	settings.Logger, err = s.readLogger()
	if err != nil {
		return settings, fmt.Errorf("reading logger settings: %w", err)
	}

	settings.Shoutrrr = s.readShoutrrr()

	return settings, nil
}

// string returns nil when the flag was not set on the command line.
func (s *Source) string(name string) *string {
	if !s.flagSet.Changed(name) {
		return nil
	}
	value, _ := s.flagSet.GetString(name)
	return &value
}

func (s *Source) bool(name string) *bool {
	if !s.flagSet.Changed(name) {
		return nil
	}
	value, _ := s.flagSet.GetBool(name)
	return &value
}

func (s *Source) duration(name string) time.Duration {
	if !s.flagSet.Changed(name) {
		return 0
	}
	value, _ := s.flagSet.GetDuration(name)
	return value
}

func (s *Source) stringSlice(name string) []string {
	if !s.flagSet.Changed(name) {
		return nil
	}
	value, _ := s.flagSet.GetStringSlice(name)
	return value
}
