// Package local finds the host's outbound-facing IP address without
// any network traffic, by connecting a UDP socket to a fixed
// documentation-range address and reading back the source address the
// kernel selected for it.
package local

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"syscall"

	"ddnsc/pkg/publicip/ipversion"
)

// Documentation-range destinations (RFC 5737, RFC 3849): never routed,
// only used to make the kernel pick an outbound source address.
const (
	probeAddr4 = "192.0.2.1:53"
	probeAddr6 = "[2001:db8::1]:53"
)

type Fetcher struct {
	dialer *net.Dialer
}

func New() *Fetcher {
	return &Fetcher{
		dialer: &net.Dialer{
			Control: func(network, _ string, c syscall.RawConn) error {
				return preferPublicSource(network, c)
			},
		},
	}
}

var (
	ErrLocalAddrNotUDP   = errors.New("local address is not a UDP address")
	ErrIPMalformed       = errors.New("IP address malformed")
	ErrIPVersionMismatch = errors.New("IP address family mismatch")
)

// IP returns the local address the kernel would use to reach the
// Internet over the given IP version. The socket is connectionless so
// no packet is ever sent, and it is closed on every path.
func (f *Fetcher) IP(ctx context.Context, version ipversion.IPVersion) (
	addr netip.Addr, err error) {
	network, probeAddress := "udp4", probeAddr4
	if version == ipversion.IP6 {
		network, probeAddress = "udp6", probeAddr6
	}

	conn, err := f.dialer.DialContext(ctx, network, probeAddress)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("dialing %s probe address: %w", version, err)
	}
	defer conn.Close()

	localAddr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return netip.Addr{}, fmt.Errorf("%w: %s", ErrLocalAddrNotUDP, conn.LocalAddr())
	}

	return addrFromIP(localAddr.IP, version)
}

func addrFromIP(ip net.IP, version ipversion.IPVersion) (addr netip.Addr, err error) {
	addr, ok := netip.AddrFromSlice(ip)
	if !ok {
		return netip.Addr{}, fmt.Errorf("%w: %s", ErrIPMalformed, ip)
	}

	addr = addr.Unmap()
	switch version {
	case ipversion.IP4:
		if !addr.Is4() {
			return netip.Addr{}, fmt.Errorf("%w: %s is not IPv4", ErrIPVersionMismatch, addr)
		}
	case ipversion.IP6:
		if addr.Is4() {
			return netip.Addr{}, fmt.Errorf("%w: %s is not IPv6", ErrIPVersionMismatch, addr)
		}
	}

	return addr, nil
}
