// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/H0llyW00dzZ/syscall-lab/src/internal/helper/posix"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

const (
	// FileEnv names the configuration file when no path is given.
	FileEnv = "SYSCALL_LAB_CONFIG_FILE"
	// ColorEnv overrides [Reporter.Color].
	ColorEnv = "SYSCALL_LAB_COLOR"
	// DumpCoreEnv switches on [Reporter.DumpCore]. It is the same toggle the
	// diagnostic reporter reads.
	DumpCoreEnv = "EF_DUMPCORE"
)

// Color modes.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Defaults.
const (
	DefaultCapacity = 512
	DefaultReadSize = 1024
	DefaultTermSize = 100
)

// ErrInvalid is wrapped by every schema violation.
var ErrInvalid = errors.New("invalid configuration")

//go:embed schema.json
var schema string

// configFormat represents supported configuration file formats.
type configFormat int

const (
	configFormatJSON configFormat = iota
	configFormatYAML
	configFormatTOML
)

// Reporter holds the diagnostic reporter settings.
type Reporter struct {
	// Capacity bounds the user text and each whole diagnostic line in bytes.
	Capacity int `json:"capacity" yaml:"capacity" toml:"capacity"`
	// Color is one of auto, on or off.
	Color string `json:"color" yaml:"color" toml:"color"`
	// DumpCore makes aborting diagnostics dump core even without EF_DUMPCORE.
	DumpCore bool `json:"dumpCore" yaml:"dumpCore" toml:"dumpCore"`
}

// IO holds default buffer sizes for the file commands.
type IO struct {
	ReadSize int `json:"readSize" yaml:"readSize" toml:"readSize"`
	TermSize int `json:"termSize" yaml:"termSize" toml:"termSize"`
}

// Output holds result rendering settings.
type Output struct {
	// JSON switches command results to JSON lines.
	JSON bool `json:"json" yaml:"json" toml:"json"`
}

// Config is the full syscall-lab configuration.
type Config struct {
	Reporter Reporter `json:"reporter" yaml:"reporter" toml:"reporter"`
	IO       IO       `json:"io" yaml:"io" toml:"io"`
	Output   Output   `json:"output" yaml:"output" toml:"output"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Reporter: Reporter{Capacity: DefaultCapacity, Color: ColorAuto},
		IO:       IO{ReadSize: DefaultReadSize, TermSize: DefaultTermSize},
	}
}

// detectConfigFormat picks the format from the file extension, ignoring case.
// Unknown extensions are read as JSON.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	case ".toml":
		return configFormatTOML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig decodes data over config, leaving absent keys untouched.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	case configFormatTOML:
		if _, err := toml.Decode(string(data), config); err != nil {
			return fmt.Errorf("failed to parse TOML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load builds the configuration from defaults, the file at configPath (or
// the one named by SYSCALL_LAB_CONFIG_FILE when configPath is empty) and the
// environment, then validates it.
//
// With neither a path nor the environment variable set, Load returns the
// defaults plus environment overrides.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		configPath = os.Getenv(FileEnv)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}
	}

	if v := strings.TrimSpace(os.Getenv(ColorEnv)); v != "" {
		config.Reporter.Color = strings.ToLower(v)
	}
	if posix.EnvEnabled(DumpCoreEnv) {
		config.Reporter.DumpCore = true
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks c against the embedded schema. All violations are joined
// into one error wrapping [ErrInvalid].
func (c *Config) Validate() error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(c),
	)
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
