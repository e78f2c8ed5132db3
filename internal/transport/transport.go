// Package transport classifies HTTP client failures shared by the service clients.
package transport

import (
	"errors"
	"net"
	"os"
	"syscall"
)

// IsUnreachable reports whether err means the remote endpoint could not be reached at all,
// as opposed to a request that reached the service and failed there.
func IsUnreachable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EHOSTUNREACH) || errors.Is(err, syscall.ENETUNREACH) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	var syscallErr *os.SyscallError
	if errors.As(err, &syscallErr) && syscallErr.Syscall == "connect" {
		return true
	}
	return false
}
