package netutil

import (
	"errors"
	"net"
	"testing"
)

// TestBindTCP tests binding and the address-in-use classification
func TestBindTCP(t *testing.T) {
	pb := NewPortBinder()

	first, err := pb.BindTCP("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("BindTCP() error = %v", err)
	}
	defer first.Close()

	port, err := ListenerPort(first)
	if err != nil {
		t.Fatalf("ListenerPort() error = %v", err)
	}
	if port == 0 {
		t.Fatal("ListenerPort() returned 0 for a bound listener")
	}

	_, err = pb.BindTCP("127.0.0.1", port)
	var inUse *AddressInUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("BindTCP() on busy port error = %v, want *AddressInUseError", err)
	}
	if inUse.Port != port {
		t.Errorf("AddressInUseError.Port = %d, want %d", inUse.Port, port)
	}
	if !IsAddressInUseError(err) {
		t.Error("IsAddressInUseError() = false for a busy port")
	}
}

// TestBindTCPWithFallback tests that a busy preferred port moves to the next one
func TestBindTCPWithFallback(t *testing.T) {
	pb := NewPortBinder()

	busy, err := pb.BindTCP("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("BindTCP() error = %v", err)
	}
	defer busy.Close()
	busyPort, _ := ListenerPort(busy)

	listener, port, err := pb.BindTCPWithFallback("127.0.0.1", busyPort)
	if err != nil {
		t.Fatalf("BindTCPWithFallback() error = %v", err)
	}
	defer listener.Close()

	if port == busyPort {
		t.Errorf("BindTCPWithFallback() returned busy port %d", port)
	}
	if got, _ := ListenerPort(listener); got != port {
		t.Errorf("listener port = %d, reported %d", got, port)
	}
}

// TestIsConnectionRefusedError tests dial failure classification
func TestIsConnectionRefusedError(t *testing.T) {
	l, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	addr := l.Addr().String()
	l.Close()

	_, err = net.Dial("tcp4", addr)
	if err == nil {
		t.Skip("port was reused before dial")
	}
	if !IsConnectionRefusedError(err) {
		t.Errorf("IsConnectionRefusedError(%v) = false", err)
	}
	if IsConnectionRefusedError(errors.New("other")) {
		t.Error("IsConnectionRefusedError() = true for a plain error")
	}
}
