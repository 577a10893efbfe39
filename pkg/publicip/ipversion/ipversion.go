// Package ipversion defines the IP address families the client
// operates on.
package ipversion

type IPVersion uint8

const (
	IP4 IPVersion = iota
	IP6
)

func (v IPVersion) String() string {
	switch v {
	case IP4:
		return "ipv4"
	case IP6:
		return "ipv6"
	default:
		return "ip?"
	}
}

// RecordType returns the DNS record type matching the IP version,
// "A" for IPv4 and "AAAA" for IPv6.
func (v IPVersion) RecordType() string {
	if v == IP6 {
		return "AAAA"
	}
	return "A"
}
