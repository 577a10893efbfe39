// Package update drives the per-family decisions and turns them into
// provider update calls, counting failures without short-circuiting.
package update

import (
	"context"
	"fmt"
	"net/http"
	"net/netip"

	"ddnsc/internal/decision"
	"ddnsc/internal/provider"
	"ddnsc/pkg/publicip/ipversion"
)

type Decider interface {
	Decide(ctx context.Context, version ipversion.IPVersion) decision.Decision
	DecideOverride(ctx context.Context, address netip.Addr) decision.Decision
}

type Notifier interface {
	Notify(message string)
}

type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type Settings struct {
	IPv4 bool
	IPv6 bool
	// OverrideIP, when valid, is published as-is and disables both
	// per-family flows.
	OverrideIP netip.Addr
}

type Runner struct {
	settings Settings
	decider  Decider
	provider provider.Provider
	// client serves explicit-address updates; client4 and client6 are
	// constrained to one family transport and serve provider
	// autodetect updates, so the provider sees a connection of the
	// matching family.
	client   *http.Client
	client4  *http.Client
	client6  *http.Client
	logger   Logger
	notifier Notifier
}

func NewRunner(settings Settings, decider Decider, p provider.Provider,
	client, client4, client6 *http.Client, logger Logger, notifier Notifier) *Runner {
	return &Runner{
		settings: settings,
		decider:  decider,
		provider: p,
		client:   client,
		client4:  client4,
		client6:  client6,
		logger:   logger,
		notifier: notifier,
	}
}

// Run executes every independently decided update and returns the
// number of failures. All operations are always attempted, a failed
// one never aborts the rest.
func (r *Runner) Run(ctx context.Context) (failures uint) {
	if r.settings.OverrideIP.IsValid() {
		d := r.decider.DecideOverride(ctx, r.settings.OverrideIP)
		return r.act(ctx, d, versionOf(r.settings.OverrideIP))
	}

	if r.settings.IPv4 {
		d := r.decider.Decide(ctx, ipversion.IP4)
		failures += r.act(ctx, d, ipversion.IP4)
	}
	if r.settings.IPv6 {
		d := r.decider.Decide(ctx, ipversion.IP6)
		failures += r.act(ctx, d, ipversion.IP6)
	}
	return failures
}

func (r *Runner) act(ctx context.Context, d decision.Decision,
	version ipversion.IPVersion) (failures uint) {
	hostname := r.provider.Hostname()

	switch d.Outcome {
	case decision.OutcomeSkip:
		r.logger.Infof("%s %s: no update needed: %s", hostname, version, d.Reason)
		return 0
	case decision.OutcomeFail:
		r.logger.Errorf("%s %s: %s", hostname, version, d.Reason)
		r.notifier.Notify(fmt.Sprintf("%s %s update failed: %s", hostname, version, d.Reason))
		return 1
	}

	r.logger.Debugf("%s %s: updating: %s", hostname, version, d.Reason)

	client := r.client
	address := d.Address
	if d.Outcome == decision.OutcomeUpdateAutoDetect {
		address = netip.Addr{}
		client = r.client4
		if version == ipversion.IP6 {
			client = r.client6
		}
	}

	err := r.provider.Update(ctx, client, address)
	if err != nil {
		r.logger.Errorf("%s %s: update failed: %s", hostname, version, err)
		r.notifier.Notify(fmt.Sprintf("%s %s update failed: %s", hostname, version, err))
		return 1
	}

	message := fmt.Sprintf("%s %s updated successfully", hostname, version)
	if address.IsValid() {
		message = fmt.Sprintf("%s %s updated to %s", hostname, version, address)
	}
	r.logger.Infof("%s", message)
	r.notifier.Notify(message)
	return 0
}

func versionOf(address netip.Addr) ipversion.IPVersion {
	if address.Is6() && !address.Is4() {
		return ipversion.IP6
	}
	return ipversion.IP4
}
