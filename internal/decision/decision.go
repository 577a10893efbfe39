// Package decision decides, per IP family, whether a DDNS update is
// needed by comparing the freshly discovered address with the one
// published in DNS.
package decision

import "net/netip"

type Outcome uint8

const (
	// OutcomeSkip means the published address is already up to date.
	OutcomeSkip Outcome = iota
	// OutcomeUpdate means Address must be pushed to the provider.
	OutcomeUpdate
	// OutcomeUpdateAutoDetect means an update must be pushed letting
	// the provider detect the address from the connecting socket.
	OutcomeUpdateAutoDetect
	// OutcomeFail means the current address could not be determined.
	OutcomeFail
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkip:
		return "skip"
	case OutcomeUpdate:
		return "update"
	case OutcomeUpdateAutoDetect:
		return "update with provider detected address"
	case OutcomeFail:
		return "fail"
	default:
		return "outcome?"
	}
}

type Decision struct {
	Outcome Outcome
	// Address is only set for OutcomeUpdate.
	Address netip.Addr
	Reason  string
}
