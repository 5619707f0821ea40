// Package utils provides small helpers shared by qpa components.
package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// IDLength is the length of every generated ID in hex characters.
const IDLength = 12

// GenerateID returns a random 12-character hex identifier, used to correlate
// API requests with their log lines.
//
// Returns format: "a1b2c3d4e5f6"
func GenerateID() (string, error) {
	bytes := make([]byte, IDLength/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// IsValidID reports whether id looks like a client-supplied request ID worth
// echoing: 1-64 characters from [A-Za-z0-9-_].
func IsValidID(id string) bool {
	if id == "" || len(id) > 64 {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
