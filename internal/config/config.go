// Package config loads roster settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"

	"github.com/roach88/roster/internal/employee"
)

// DefaultPath is the config file looked up in the working directory when
// no path is given.
const DefaultPath = "roster.yaml"

// Config holds every roster setting.
type Config struct {
	// Database is the SQLite file holding the durable slot.
	Database string `yaml:"database"`

	// Key is the slot key holding the serialized roster.
	Key string `yaml:"key"`

	// Seed selects the records used when the slot is empty: "none" or
	// "sample".
	Seed string `yaml:"seed"`

	// DefaultCurrency is used by add when no currency is given.
	DefaultCurrency string `yaml:"default_currency"`

	// RequirePhoto makes a photo mandatory when adding or editing. On by
	// default; set require_photo: false to allow records without one.
	RequirePhoto bool `yaml:"require_photo"`

	// ExportFile is the default CSV export path.
	ExportFile string `yaml:"export_file"`
}

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Database:        "roster.db",
		Key:             "employees",
		Seed:            string(employee.SeedNone),
		DefaultCurrency: employee.DefaultCurrency,
		RequirePhoto:    true,
		ExportFile:      "employees.csv",
	}
}

// Load reads a YAML config file over the defaults.
// Unknown fields are rejected so typos surface instead of being ignored.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// LoadOptional loads path if it exists and returns the defaults otherwise.
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.Database == "" {
		return errors.New("database is required")
	}
	if c.Key == "" {
		return errors.New("key is required")
	}
	if _, err := employee.ParseSeedPolicy(c.Seed); err != nil {
		return err
	}
	if !currencyPattern.MatchString(c.DefaultCurrency) {
		return fmt.Errorf("default_currency %q must be a three-letter ISO 4217 code", c.DefaultCurrency)
	}
	if _, err := currency.ParseISO(c.DefaultCurrency); err != nil {
		return fmt.Errorf("default_currency %q is not an ISO 4217 code: %w", c.DefaultCurrency, err)
	}
	if c.ExportFile == "" {
		return errors.New("export_file is required")
	}
	return nil
}

// SeedRecords returns the records selected by the seed policy.
func (c Config) SeedRecords() []employee.Employee {
	p, err := employee.ParseSeedPolicy(c.Seed)
	if err != nil {
		return nil
	}
	return p.Records()
}
