// Package utils provides utility functions for the qpactl CLI.
// This file contains logging setup and Resty logger integration utilities.
package utils

import (
	"os"

	"github.com/concave-dev/qpa/cmd/qpactl/config"
	"github.com/concave-dev/qpa/internal/logging"
)

// RestyLogger implements resty.Logger and routes client logs through structured logging
type RestyLogger struct{}

// Errorf routes error messages through structured logging.
func (s RestyLogger) Errorf(format string, v ...interface{}) {
	logging.Error(format, v...)
}

// Warnf routes warning messages through structured logging.
func (s RestyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn(format, v...)
}

// Debugf routes debug messages through structured logging.
func (s RestyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug(format, v...)
}

// SetupLogging configures CLI logging behavior based on environment and config.
// DEBUG=true shows everything, --verbose shows the configured level, otherwise
// only errors reach the terminal.
func SetupLogging() {
	switch {
	case os.Getenv("DEBUG") == "true":
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
	case config.Global.Verbose:
		logging.RestoreOutput()
		logging.SetLevel(config.Global.LogLevel)
	default:
		logging.SetLevel(config.Global.LogLevel)
		logging.SuppressOutput()
	}
}
