// Package netutil provides the network helpers qpad and qpactl share: error
// classification for bind and dial failures, and port pre-binding for the
// qpad API listener.
package netutil

import (
	"errors"
	"net"
	"syscall"
)

// IsAddressInUseError reports whether err is an "address already in use"
// bind failure. Uses type checks rather than string matching.
func IsAddressInUseError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.EADDRINUSE)
	}
	return false
}

// IsConnectionRefusedError reports whether err is a refused dial, which for
// qpactl means qpad is not running at the configured address.
func IsConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return false
}
