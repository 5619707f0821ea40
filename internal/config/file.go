package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/rescale"
	"github.com/concave-dev/qpa/internal/validate"
)

// File is the optional YAML config file. Pointer fields distinguish "not set"
// from zero values so flags can fall back to the file only when unset.
//
//	factor: 250
//	min_factor: 1
//	max_factor: 1000000
//	input: data/input/input.csv
//	output_dir: data/output
//	save_old: true
//	policy: skip
//	workers: 4
//	title: Quantum Brute-Force Durations
//	api: 127.0.0.1:8080
//	log_level: DEBUG
type File struct {
	Factor    *float64 `yaml:"factor"`
	MinFactor *float64 `yaml:"min_factor"`
	MaxFactor *float64 `yaml:"max_factor"`
	Input     string   `yaml:"input"`
	OutputDir string   `yaml:"output_dir"`
	SaveOld   *bool    `yaml:"save_old"`
	Policy    string   `yaml:"policy"`
	Workers   int      `yaml:"workers"`
	Title     string   `yaml:"title"`
	API       string   `yaml:"api"`
	LogLevel  string   `yaml:"log_level"`
}

// LoadError reports a config file that could not be loaded.
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("config")
	if e.File != "" {
		b.WriteString(" ")
		b.WriteString(e.File)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Parse decodes and validates a config file body. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}
	if err := f.Validate(); err != nil {
		return nil, &LoadError{Message: "invalid value", Cause: err}
	}
	return &f, nil
}

// Load reads the config file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	f, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}

	logging.Debug("Loaded config file %s", path)
	return f, nil
}

// LoadOptional is Load that treats a missing file as an empty config.
func LoadOptional(path string) (*File, error) {
	f, err := Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return &File{}, nil
	}
	return f, err
}

// Validate checks every value that is set.
func (f *File) Validate() error {
	if f.MinFactor != nil || f.MaxFactor != nil {
		min, max := f.Bounds(rescale.MinFactor, rescale.MaxFactor)
		if err := validate.ValidateFactorBounds(min, max); err != nil {
			return err
		}
	}
	if f.Factor != nil {
		min, max := f.Bounds(rescale.MinFactor, rescale.MaxFactor)
		if err := validate.ValidateFactor(*f.Factor, min, max); err != nil {
			return err
		}
	}
	if f.Policy != "" && f.Policy != "strict" && f.Policy != "skip" {
		return fmt.Errorf("policy must be strict or skip, got '%s'", f.Policy)
	}
	if f.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", f.Workers)
	}
	if f.LogLevel != "" {
		if err := logging.ValidateLogLevel(strings.ToUpper(f.LogLevel)); err != nil {
			return err
		}
	}
	if f.API != "" {
		if _, err := validate.ParseBindAddress(f.API); err != nil {
			return fmt.Errorf("invalid api address: %w", err)
		}
	}
	return nil
}

// Bounds returns the configured factor bounds, using the given defaults for
// unset ends.
func (f *File) Bounds(defaultMin, defaultMax float64) (float64, float64) {
	min, max := defaultMin, defaultMax
	if f.MinFactor != nil {
		min = *f.MinFactor
	}
	if f.MaxFactor != nil {
		max = *f.MaxFactor
	}
	return min, max
}
