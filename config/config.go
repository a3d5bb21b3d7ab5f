package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/dcshock/enumreg/enum"
	"github.com/dcshock/enumreg/enumconf"
)

// Options configures an enum registry and its config I/O. In YAML:
//
//	app_type: snmp
//	max_major: 5
//	max_minor: 32
//	line_width: 2048
//	list_capacity: 0
//	max_names: 0
//	watch:
//	  debounce: 500ms
//	log:
//	  level: debug
//	  development: true
type Options struct {
	// AppType selects the handler namespace and the store bucket for generated lines.
	AppType string `yaml:"app_type" envconfig:"APP_TYPE"`

	// Table bounds for (major, minor) lists.
	MaxMajor uint `yaml:"max_major" envconfig:"MAX_MAJOR"`
	MaxMinor uint `yaml:"max_minor" envconfig:"MAX_MINOR"`

	// LineWidth bounds generated "enum" lines.
	LineWidth int `yaml:"line_width" envconfig:"LINE_WIDTH"`

	// Optional limits; 0 means unlimited.
	ListCapacity int `yaml:"list_capacity" envconfig:"LIST_CAPACITY"`
	MaxNames     int `yaml:"max_names" envconfig:"MAX_NAMES"`

	Watch WatchConfig `yaml:"watch"`
	Log   LogConfig   `yaml:"log"`
}

// WatchConfig controls file watching in enumctl.
type WatchConfig struct {
	Debounce Duration `yaml:"debounce" envconfig:"DEBOUNCE"`
}

// LogConfig selects the zap logger built by NewLogger.
type LogConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL"`
	Development bool   `yaml:"development" envconfig:"DEV"`
}

// EnvPrefix prefixes every environment override, e.g. ENUMREG_MAX_MAJOR.
const EnvPrefix = "ENUMREG"

// Defaults returns the options used when nothing is configured.
func Defaults() Options {
	return Options{
		AppType:   "snmp",
		MaxMajor:  enum.DefaultMaxMajor,
		MaxMinor:  enum.DefaultMaxMinor,
		LineWidth: enumconf.DefaultLineWidth,
		Watch:     WatchConfig{Debounce: Duration(500 * time.Millisecond)},
		Log:       LogConfig{Level: "info"},
	}
}

// ParseOptions parses YAML bytes over Defaults.
func ParseOptions(data []byte) (*Options, error) {
	opts := Defaults()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// LoadOptions reads options from a YAML file (if path is non-empty) and then
// applies ENUMREG_* environment overrides.
func LoadOptions(path string) (*Options, error) {
	opts := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read options: %w", err)
		}
		parsed, err := ParseOptions(data)
		if err != nil {
			return nil, fmt.Errorf("parse options %s: %w", path, err)
		}
		opts = *parsed
	}
	if err := envconfig.Process(EnvPrefix, &opts); err != nil {
		return nil, fmt.Errorf("failed to load env overrides: %w", err)
	}
	return &opts, nil
}

// RegistryOptions translates o into enum.Registry options.
func (o Options) RegistryOptions() []enum.Option {
	return []enum.Option{
		enum.WithBounds(o.MaxMajor, o.MaxMinor),
		enum.WithListCapacity(o.ListCapacity),
		enum.WithMaxNames(o.MaxNames),
	}
}

// Duration is a time.Duration that unmarshals from YAML and env strings (e.g. "500ms", "2s").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.Decode(s)
}

// Decode implements envconfig.Decoder.
func (d *Duration) Decode(s string) error {
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the standard time.Duration.
func (d Duration) Duration() time.Duration { return time.Duration(d) }
