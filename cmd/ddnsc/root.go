package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ddnsc/internal/config/settings"
	"ddnsc/internal/config/sources/env"
	"ddnsc/internal/config/sources/flags"
	"ddnsc/internal/decision"
	"ddnsc/internal/lookup"
	"ddnsc/internal/models"
	"ddnsc/internal/provider"
	"ddnsc/internal/shoutrrr"
	"ddnsc/internal/update"
	"ddnsc/pkg/netclient"
	publiciphttp "ddnsc/pkg/publicip/http"
	"ddnsc/pkg/publicip/ipversion"
	"ddnsc/pkg/publicip/local"
)

func newRootCmd(logger *log.Logger, buildInfo models.BuildInformation) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ddnsc",
		Short: "Update a dynamic DNS record once and exit",
		Long: `ddnsc discovers the host's public IP address, compares it with the
address currently published in DNS and, when they differ, pushes an
update to the configured DNS provider. It exits with a non zero code
when any update fails.

Settings are read from command line flags first and environment
variables second, for example --hostname or HOSTNAME.`,
		Version:       buildInfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.Flags(), logger, buildInfo)
		},
	}
	flags.Register(cmd.Flags())
	return cmd
}

var ErrUpdatesFailed = errors.New("updates failed")

func run(ctx context.Context, flagSet *pflag.FlagSet,
	logger *log.Logger, buildInfo models.BuildInformation) (err error) {
	printSplash(buildInfo)

	config, err := readConfig(flagSet, logger)
	if err != nil {
		return err
	}

	shoutrrrSettings := config.Shoutrrr
	shoutrrrSettings.Logger = logger.New(log.SetComponent("shoutrrr"))
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	client := &http.Client{Timeout: config.Client.Timeout}
	defer client.CloseIdleConnections()
	client4 := netclient.NewFamilyClient(ipversion.IP4, config.Client.Timeout)
	defer client4.CloseIdleConnections()
	client6 := netclient.NewFamilyClient(ipversion.IP6, config.Client.Timeout)
	defer client6.CloseIdleConnections()

	resolver, err := lookup.New(config.Resolver)
	if err != nil {
		return fmt.Errorf("creating resolver: %w", err)
	}

	webFetcher, err := publiciphttp.New(config.PubIP.ToHTTPOptions()...)
	if err != nil {
		return fmt.Errorf("creating public IP fetcher: %w", err)
	}
	localFetcher := local.New()

	providerLogger := logger.New(log.SetComponent(config.Provider.API))
	ddnsProvider, err := provider.New(config.Provider, providerLogger)
	if err != nil {
		return fmt.Errorf("creating provider: %w", err)
	}

	engine := decision.NewEngine(decision.Settings{
		Hostname:           config.Provider.Hostname,
		UseProviderIP:      *config.PubIP.UseProviderIP,
		UseLocalIP:         *config.PubIP.UseLocalIP,
		Force:              *config.Update.Force,
		ProviderAutoDetect: config.Provider.AutoDetectCapable(),
	}, resolver, localFetcher, webFetcher, logger)

	runner := update.NewRunner(update.Settings{
		IPv4:       *config.Update.IPv4,
		IPv6:       *config.Update.IPv6,
		OverrideIP: config.Update.OverrideAddr(),
	}, engine, ddnsProvider, client, client4, client6, logger, shoutrrrClient)

	failures := runner.Run(ctx)
	if failures > 0 {
		return fmt.Errorf("%w: %d for %s", ErrUpdatesFailed, failures, ddnsProvider)
	}

	return nil
}

func readConfig(flagSet *pflag.FlagSet, logger *log.Logger) (
	config settings.Settings, err error) {
	flagSettings, err := flags.New(flagSet).Read()
	if err != nil {
		return config, fmt.Errorf("reading flags: %w", err)
	}

	envSettings, err := env.New().Read()
	if err != nil {
		return config, fmt.Errorf("reading environment variables: %w", err)
	}

	config = flagSettings.MergeWith(envSettings)
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Debug(config.String())

	return config, nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "ddnsc",
		Repository: "ddnsc",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}
