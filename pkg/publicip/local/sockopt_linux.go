//go:build linux

package local

import (
	"errors"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// IPV6_PREFER_SRC_PUBLIC from the Linux kernel's include/uapi/linux/in6.h;
// golang.org/x/sys/unix does not define it for Linux.
const ipv6PreferSrcPublic = 0x0002

// preferPublicSource asks the kernel to select a public IPv6 source
// address instead of a temporary privacy address (RFC 5014), so the
// discovered address stays stable across privacy extension rotations.
func preferPublicSource(network string, c syscall.RawConn) error {
	if !strings.HasPrefix(network, "udp6") {
		return nil
	}

	var sockoptErr error
	err := c.Control(func(fd uintptr) {
		sockoptErr = unix.SetsockoptInt(int(fd), unix.IPPROTO_IPV6,
			unix.IPV6_ADDR_PREFERENCES, ipv6PreferSrcPublic)
	})
	if err != nil {
		return err
	}

	// Older kernels do not know this option.
	if sockoptErr != nil && !errors.Is(sockoptErr, unix.ENOPROTOOPT) {
		return sockoptErr
	}
	return nil
}
