// Package config provides configuration management for the qpactl CLI.
package config

import (
	"fmt"
	"strings"

	fileconfig "github.com/concave-dev/qpa/internal/config"
	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/validate"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags loads the config file and validates all global flags
// before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := LoadConfigFile(cmd); err != nil {
		return err
	}

	if err := ValidateAPIAddress(); err != nil {
		return err
	}

	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return err
	}

	if Global.Timeout < 1 {
		return fmt.Errorf("timeout must be at least 1 second, got: %d", Global.Timeout)
	}

	return nil
}

// LoadConfigFile reads --config and applies its global values to flags the
// user did not set. Without --config an empty file is used.
func LoadConfigFile(cmd *cobra.Command) error {
	if Global.ConfigFile == "" {
		Global.File = &fileconfig.File{}
		return nil
	}

	f, err := fileconfig.Load(Global.ConfigFile)
	if err != nil {
		return err
	}
	Global.File = f

	if f.API != "" && !flagChanged(cmd, "api") {
		Global.APIAddr = f.API
	}
	if f.LogLevel != "" && !flagChanged(cmd, "log-level") {
		Global.LogLevel = strings.ToUpper(f.LogLevel)
	}
	return nil
}

// flagChanged reports whether the named persistent or local flag was set.
func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil {
		return false
	}
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Changed
	}
	return false
}

// ValidateAPIAddress validates the --api flag when a daemon is targeted
func ValidateAPIAddress() error {
	if Global.APIAddr == "" {
		return nil
	}

	netAddr, err := validate.ParseBindAddress(Global.APIAddr)
	if err != nil {
		logging.Error("Invalid API address '%s': %v", Global.APIAddr, err)
		return fmt.Errorf("invalid API address - expected format: host:port (e.g., 127.0.0.1:8080)")
	}

	// Reject unroutable 0.0.0.0 target for client connections
	if netAddr.Host == "0.0.0.0" {
		logging.Error("Unroutable API address '0.0.0.0:%d' - cannot connect to 0.0.0.0", netAddr.Port)
		return fmt.Errorf("unroutable API address - use 127.0.0.1 or a specific IP address")
	}

	return nil
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[Global.Output] {
		logging.Error("Invalid output format '%s' - valid formats are: table, json", Global.Output)
		return fmt.Errorf("invalid output format - valid: table, json")
	}
	return nil
}
