package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	fileconfig "github.com/concave-dev/qpa/internal/config"
	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/validate"
)

// InitializeConfig applies environment overrides before validation.
func InitializeConfig() {
	if os.Getenv("DEBUG") == "true" {
		Global.LogLevel = "DEBUG"
		logging.Info("DEBUG environment variable detected, setting log level to DEBUG")
	}

	if Global.MaxPorts == 0 {
		Global.MaxPorts = DefaultMaxPorts
	}
	if maxPortsEnv := os.Getenv("MAX_PORTS"); maxPortsEnv != "" {
		if maxPorts, err := strconv.Atoi(maxPortsEnv); err == nil {
			Global.MaxPorts = maxPorts
			logging.Info("MAX_PORTS environment variable detected, setting max ports to %d", maxPorts)
		} else {
			logging.Warn("Invalid MAX_PORTS environment variable '%s', using default: %d", maxPortsEnv, Global.MaxPorts)
		}
	}

	if Global.MaxBodyBytes == 0 {
		Global.MaxBodyBytes = DefaultMaxBody
	}
}

// ApplyConfigFile fills every value the user did not set on the command
// line from the YAML file named by --config.
func ApplyConfigFile() error {
	if Global.ConfigFile == "" {
		return nil
	}

	f, err := fileconfig.Load(Global.ConfigFile)
	if err != nil {
		return err
	}

	if f.MinFactor != nil && !Global.minFactorExplicitlySet {
		Global.MinFactor = *f.MinFactor
	}
	if f.MaxFactor != nil && !Global.maxFactorExplicitlySet {
		Global.MaxFactor = *f.MaxFactor
	}
	if f.LogLevel != "" && !Global.logLevelExplicitlySet {
		Global.LogLevel = strings.ToUpper(f.LogLevel)
	}
	if f.Workers != 0 && !Global.workersExplicitlySet {
		Global.Workers = f.Workers
	}
	if f.API != "" && !Global.apiAddrExplicitlySet {
		Global.APIAddr = f.API
		Global.apiAddrExplicitlySet = true
	}

	logging.Info("Applied config file %s", Global.ConfigFile)
	return nil
}

// ValidateConfig validates and normalizes the daemon configuration.
func ValidateConfig() error {
	if Global.MaxPorts < 1 || Global.MaxPorts > 10000 {
		logging.Error("Invalid max-ports value: %d (must be between 1 and 10000)", Global.MaxPorts)
		return fmt.Errorf("max-ports must be between 1 and 10000, got: %d", Global.MaxPorts)
	}

	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return err
	}

	apiNetAddr, err := validate.ParseBindAddress(Global.APIAddr)
	if err != nil {
		logging.Error("Invalid API address '%s': %v", Global.APIAddr, err)
		return fmt.Errorf("invalid API address: %w", err)
	}
	Global.APIAddr = apiNetAddr.Host
	Global.APIPort = apiNetAddr.Port

	if err := validate.ValidateFactorBounds(Global.MinFactor, Global.MaxFactor); err != nil {
		logging.Error("Invalid factor bounds: %v", err)
		return err
	}

	if err := validate.ValidatePositiveTimeout(Global.CacheTTL, "cache-ttl"); err != nil {
		return err
	}

	if Global.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got: %d", Global.Workers)
	}

	if Global.MaxBodyBytes <= 0 {
		return fmt.Errorf("max-body must be positive, got: %d", Global.MaxBodyBytes)
	}

	return nil
}
