package netutil

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// DefaultMaxPortAttempts bounds the fallback port search.
const DefaultMaxPortAttempts = 100

// AddressInUseError wraps a bind failure on a busy port.
type AddressInUseError struct {
	Port    int
	Address string
	Err     error
}

func (e *AddressInUseError) Error() string {
	return fmt.Sprintf("port %d is already in use on %s", e.Port, e.Address)
}

func (e *AddressInUseError) Unwrap() error {
	return e.Err
}

// PortBinder reserves ports by binding listeners and handing them to the
// server, so no other process can take the port between check and use.
type PortBinder struct {
	// MaxAttempts bounds BindTCPWithFallback; DefaultMaxPortAttempts when zero.
	MaxAttempts int
}

// NewPortBinder creates a PortBinder with the default search limit.
func NewPortBinder() *PortBinder {
	return &PortBinder{MaxAttempts: DefaultMaxPortAttempts}
}

// BindTCP binds a TCP listener to address:port.
func (pb *PortBinder) BindTCP(address string, port int) (net.Listener, error) {
	addr := net.JoinHostPort(address, strconv.Itoa(port))

	// Force IPv4 for consistent behavior across platforms
	listener, err := net.Listen("tcp4", addr)
	if err != nil {
		if IsAddressInUseError(err) {
			return nil, &AddressInUseError{Port: port, Address: address, Err: err}
		}
		return nil, fmt.Errorf("failed to bind TCP to %s: %w", addr, err)
	}

	return listener, nil
}

// BindTCPWithFallback binds preferredPort, or the next free port after it
// when it is busy. Returns the listener and the port actually bound.
func (pb *PortBinder) BindTCPWithFallback(address string, preferredPort int) (net.Listener, int, error) {
	maxAttempts := pb.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxPortAttempts
	}

	for port := preferredPort; port < preferredPort+maxAttempts && port <= 65535; port++ {
		listener, err := pb.BindTCP(address, port)
		if err != nil {
			var addrInUseErr *AddressInUseError
			if errors.As(err, &addrInUseErr) {
				continue
			}
			return nil, 0, fmt.Errorf("failed to bind TCP starting from port %d: %w", preferredPort, err)
		}
		return listener, port, nil
	}

	return nil, 0, fmt.Errorf("no available TCP port found in range %d-%d on %s",
		preferredPort, preferredPort+maxAttempts-1, address)
}

// ListenerPort returns the TCP port a listener is bound to.
func ListenerPort(listener net.Listener) (int, error) {
	tcpAddr, ok := listener.Addr().(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("listener is not a TCP listener: %T", listener.Addr())
	}
	return tcpAddr.Port, nil
}
