// =============================================================================
// Customs Describer - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file and
// applies defaults for anything left unset. A missing file at the default
// location is not an error: the defaults describe a working setup.
//
// The classification credential is never stored in this file. It is read
// from the environment (see CredentialEnv) by the command layer and passed
// to the classifier explicitly.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultEndpoint is the production classification GraphQL endpoint.
	DefaultEndpoint = "https://classify-gpt3.prod.us-east-2.zdops.net/graphql"

	// DefaultOutputSuffix is inserted before the extension of derived output paths.
	DefaultOutputSuffix = "-with-descriptions"

	// DefaultDescriptionColumn is the column appended to the output.
	DefaultDescriptionColumn = "Optimized Goods Description"

	// DefaultCredentialEnv names the environment variable holding the token.
	DefaultCredentialEnv = "CREDENTIAL_TOKEN"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// CLASSIFICATION SERVICE
	// =========================================================================

	// Endpoint is the URL the classification mutation is posted to.
	Endpoint string `yaml:"endpoint"`

	// Timeout bounds the classification request. Zero leaves the transport
	// default in place (no timeout).
	Timeout time.Duration `yaml:"timeout"`

	// UserAgent is sent with the classification request when set.
	UserAgent string `yaml:"user_agent"`

	// CredentialEnv is the environment variable holding the credential token.
	// Default: "CREDENTIAL_TOKEN"
	CredentialEnv string `yaml:"credential_env"`

	// =========================================================================
	// FILE SETTINGS
	// =========================================================================

	// DefaultInput is used by 'describe' and 'validate' when no input
	// argument is given.
	DefaultInput string `yaml:"default_input"`

	// DefaultOutput is used by 'describe' when --output is not given.
	// Empty means "derive from the input path".
	DefaultOutput string `yaml:"default_output"`

	// Overwrite allows replacing an existing explicit output file.
	Overwrite bool `yaml:"overwrite"`

	// OutputSuffix is inserted before the extension of derived output paths.
	// Default: "-with-descriptions"
	OutputSuffix string `yaml:"output_suffix"`

	// DescriptionColumn is the header of the appended column.
	// Default: "Optimized Goods Description"
	DescriptionColumn string `yaml:"description_column"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" or "json".
	// Default: "text"
	LogFormat string `yaml:"log_format"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - required: When false, a missing file yields the defaults.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read or parsed, or fails validation.
func Load(configPath string, required bool) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML document, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.CredentialEnv == "" {
		cfg.CredentialEnv = DefaultCredentialEnv
	}
	if cfg.OutputSuffix == "" {
		cfg.OutputSuffix = DefaultOutputSuffix
	}
	if cfg.DescriptionColumn == "" {
		cfg.DescriptionColumn = DefaultDescriptionColumn
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
}

// validate checks the configuration for values that cannot work.
func validate(cfg *Config) error {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint must have a host, got %q", cfg.Endpoint)
	}

	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", cfg.LogFormat)
	}

	return nil
}

// =============================================================================
// CREDENTIAL
// =============================================================================

// Credential returns the token from the configured environment variable.
func (c *Config) Credential() (string, error) {
	token := strings.TrimSpace(os.Getenv(c.CredentialEnv))
	if token == "" {
		return "", fmt.Errorf("credential token is required (set %s in the environment or a .env file)", c.CredentialEnv)
	}
	return token, nil
}
