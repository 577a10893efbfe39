package settings

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

type Update struct {
	IPv4 *bool
	IPv6 *bool
	// Force publishes the address even when it matches the
	// published record.
	Force *bool
	// OverrideIP is published as-is instead of any discovered
	// address, and disables the per-family runs.
	OverrideIP *string
}

func (u *Update) setDefaults() {
	u.IPv4 = gosettings.DefaultPointer(u.IPv4, true)
	u.IPv6 = gosettings.DefaultPointer(u.IPv6, false)
	u.Force = gosettings.DefaultPointer(u.Force, false)
	u.OverrideIP = gosettings.DefaultPointer(u.OverrideIP, "")
}

func (u Update) mergeWith(other Update) (merged Update) {
	merged.IPv4 = gosettings.MergeWithPointer(u.IPv4, other.IPv4)
	merged.IPv6 = gosettings.MergeWithPointer(u.IPv6, other.IPv6)
	merged.Force = gosettings.MergeWithPointer(u.Force, other.Force)
	merged.OverrideIP = gosettings.MergeWithPointer(u.OverrideIP, other.OverrideIP)
	return merged
}

var (
	ErrNoIPVersionEnabled = errors.New("no IP version enabled")
	ErrOverrideIPNotValid = errors.New("override IP address is not valid")
)

func (u Update) Validate() (err error) {
	if !*u.IPv4 && !*u.IPv6 && *u.OverrideIP == "" {
		return fmt.Errorf("%w", ErrNoIPVersionEnabled)
	}

	if *u.OverrideIP != "" {
		_, err = netip.ParseAddr(*u.OverrideIP)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOverrideIPNotValid, err)
		}
	}

	return nil
}

// OverrideAddr assumes the settings have been validated. It returns
// the zero value when no override is set.
func (u Update) OverrideAddr() netip.Addr {
	if *u.OverrideIP == "" {
		return netip.Addr{}
	}
	address, _ := netip.ParseAddr(*u.OverrideIP)
	return address.Unmap()
}

func (u Update) String() string {
	return u.toLinesNode().String()
}

func (u Update) toLinesNode() *gotree.Node {
	node := gotree.New("Update")
	if *u.OverrideIP != "" {
		node.Appendf("Override IP: %s", *u.OverrideIP)
		return node
	}
	node.Appendf("IPv4: %s", gosettings.BoolToYesNo(u.IPv4))
	node.Appendf("IPv6: %s", gosettings.BoolToYesNo(u.IPv6))
	node.Appendf("Force: %s", gosettings.BoolToYesNo(u.Force))
	return node
}
