package decision

import (
	"context"
	"fmt"
	"net/netip"

	"ddnsc/pkg/publicip/ipversion"
)

//go:generate mockgen -destination=mock_decision/interfaces.go -package=mock_decision ddnsc/internal/decision Snapshotter,IPFetcher

// Snapshotter returns the address currently published in DNS for the
// hostname and IP version, or an error when none can be determined.
type Snapshotter interface {
	Published(ctx context.Context, hostname string,
		version ipversion.IPVersion) (addr netip.Addr, err error)
}

// IPFetcher discovers the host's current address for an IP version.
type IPFetcher interface {
	IP(ctx context.Context, version ipversion.IPVersion) (addr netip.Addr, err error)
}

type DebugLogger interface {
	Debugf(format string, args ...interface{})
}

type Settings struct {
	Hostname string
	// UseProviderIP defers address detection to the provider, which
	// only dyn-style providers support.
	UseProviderIP bool
	// UseLocalIP discovers the address from the local interfaces
	// instead of external echo services.
	UseLocalIP bool
	// Force requests an update even when the published address is
	// already current.
	Force bool
	// ProviderAutoDetect indicates the selected provider can detect
	// the caller address itself.
	ProviderAutoDetect bool
}

type Engine struct {
	settings Settings
	snapshot Snapshotter
	local    IPFetcher
	web      IPFetcher
	logger   DebugLogger
}

func NewEngine(settings Settings, snapshot Snapshotter,
	local, web IPFetcher, logger DebugLogger) *Engine {
	return &Engine{
		settings: settings,
		snapshot: snapshot,
		local:    local,
		web:      web,
		logger:   logger,
	}
}

// Decide produces the update decision for one IP version. A failed
// discovery yields OutcomeFail and never an error, so one family's
// failure cannot abort the other's processing.
func (e *Engine) Decide(ctx context.Context, version ipversion.IPVersion) (d Decision) {
	published := e.published(ctx, version)

	if e.settings.UseProviderIP && e.settings.ProviderAutoDetect {
		return Decision{
			Outcome: OutcomeUpdateAutoDetect,
			Reason:  "letting the provider detect the address",
		}
	}

	source := e.web
	if e.settings.UseLocalIP {
		source = e.local
	}

	current, err := source.IP(ctx, version)
	if err != nil {
		return Decision{
			Outcome: OutcomeFail,
			Reason: fmt.Sprintf("could not determine the current %s address: %s",
				version, err),
		}
	}

	return e.compare(current, published)
}

// DecideOverride produces the decision for an explicitly supplied
// address, which is compared against both families' published
// addresses. The address is validated by configuration beforehand.
func (e *Engine) DecideOverride(ctx context.Context, address netip.Addr) (d Decision) {
	published4 := e.published(ctx, ipversion.IP4)
	published6 := e.published(ctx, ipversion.IP6)

	if !e.settings.Force &&
		(equalAddr(address, published4) || equalAddr(address, published6)) {
		return Decision{
			Outcome: OutcomeSkip,
			Reason:  fmt.Sprintf("%s is already published for %s", address, e.settings.Hostname),
		}
	}

	return Decision{
		Outcome: OutcomeUpdate,
		Address: address,
		Reason:  fmt.Sprintf("publishing explicitly supplied address %s", address),
	}
}

func (e *Engine) compare(current, published netip.Addr) Decision {
	if equalAddr(current, published) {
		if e.settings.Force {
			return Decision{
				Outcome: OutcomeUpdate,
				Address: current,
				Reason:  fmt.Sprintf("%s is already published but the update is forced", current),
			}
		}
		return Decision{
			Outcome: OutcomeSkip,
			Reason:  fmt.Sprintf("%s is already published", current),
		}
	}

	reason := fmt.Sprintf("address changed from %s to %s", published, current)
	if !published.IsValid() {
		reason = fmt.Sprintf("no address is published yet, publishing %s", current)
	}
	return Decision{
		Outcome: OutcomeUpdate,
		Address: current,
		Reason:  reason,
	}
}

// published collapses all lookup failures to an invalid address.
func (e *Engine) published(ctx context.Context, version ipversion.IPVersion) netip.Addr {
	addr, err := e.snapshot.Published(ctx, e.settings.Hostname, version)
	if err != nil {
		e.logger.Debugf("no %s address found for %s: %s",
			version, e.settings.Hostname, err)
		return netip.Addr{}
	}
	return addr
}

func equalAddr(a, b netip.Addr) bool {
	return a.IsValid() && b.IsValid() && a.Compare(b) == 0
}
