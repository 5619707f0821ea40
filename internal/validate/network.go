// Package validate provides input validation for qpa configuration and table data.
//
// Validation is built on the go-playground/validator library so that flag values,
// config file values and API request bodies are checked with the same tag rules.
//
// VALIDATION COVERAGE:
//   - Addresses: "host:port" endpoints for the qpad API and the qpactl client
//   - Factors: speed-up factor bounds and range checks
//   - Columns: table header names (non-empty, unique)
package validate

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
}

// NetworkAddress is a validated "host:port" endpoint.
type NetworkAddress struct {
	Host string `validate:"required,ip"`
	Port int    `validate:"required,min=1,max=65535"`
}

// String returns the address in "host:port" form.
func (na NetworkAddress) String() string {
	return net.JoinHostPort(na.Host, strconv.Itoa(na.Port))
}

// ParseBindAddress parses and validates a "host:port" address string. The host
// must be an IP literal and the port explicit (1-65535).
func ParseBindAddress(addr string) (*NetworkAddress, error) {
	if addr == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address format '%s': %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port '%s': %w", portStr, err)
	}

	netAddr := &NetworkAddress{
		Host: host,
		Port: port,
	}

	if err := validate.Struct(netAddr); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return netAddr, nil
}

// ValidateField validates a single value against validator tag rules.
//
// Example: ValidateField(100.0, "gt=0,lte=1000000")
func ValidateField(value any, tag string) error {
	return validate.Var(value, tag)
}

// ValidateStruct validates a struct using its `validate` tags.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}
