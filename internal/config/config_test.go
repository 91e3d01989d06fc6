package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should return defaults when an optional file is missing", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"), false)
		require.NoError(t, err)
		assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
		assert.Equal(t, DefaultOutputSuffix, cfg.OutputSuffix)
		assert.Equal(t, DefaultDescriptionColumn, cfg.DescriptionColumn)
		assert.Equal(t, DefaultCredentialEnv, cfg.CredentialEnv)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Zero(t, cfg.Timeout)
	})

	t.Run("Should fail when a required file is missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "config.yaml"), true)
		assert.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("Should read values from YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		yamlDoc := "endpoint: http://localhost:8080/graphql\n" +
			"timeout: 90s\n" +
			"default_input: catalog.csv\n" +
			"output_suffix: -described\n" +
			"log_format: json\n"
		require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))

		cfg, err := Load(path, true)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/graphql", cfg.Endpoint)
		assert.Equal(t, 90*time.Second, cfg.Timeout)
		assert.Equal(t, "catalog.csv", cfg.DefaultInput)
		assert.Equal(t, "-described", cfg.OutputSuffix)
		assert.Equal(t, "json", cfg.LogFormat)
	})
}

func TestParse(t *testing.T) {
	t.Run("Should reject a non-http endpoint", func(t *testing.T) {
		_, err := Parse([]byte("endpoint: ftp://example.com/graphql\n"))
		assert.ErrorContains(t, err, "endpoint scheme must be http or https")
	})

	t.Run("Should reject an unknown log format", func(t *testing.T) {
		_, err := Parse([]byte("log_format: xml\n"))
		assert.ErrorContains(t, err, "log_format")
	})

	t.Run("Should reject malformed YAML", func(t *testing.T) {
		_, err := Parse([]byte("endpoint: [unterminated\n"))
		assert.ErrorContains(t, err, "failed to parse config file")
	})
}

func TestCredential(t *testing.T) {
	t.Run("Should read the token from the configured variable", func(t *testing.T) {
		t.Setenv("DESCRIBER_TEST_TOKEN", "secret")
		cfg := Default()
		cfg.CredentialEnv = "DESCRIBER_TEST_TOKEN"

		token, err := cfg.Credential()
		require.NoError(t, err)
		assert.Equal(t, "secret", token)
	})

	t.Run("Should fail when the variable is empty", func(t *testing.T) {
		t.Setenv("DESCRIBER_TEST_TOKEN", "")
		cfg := Default()
		cfg.CredentialEnv = "DESCRIBER_TEST_TOKEN"

		_, err := cfg.Credential()
		assert.ErrorContains(t, err, "DESCRIBER_TEST_TOKEN")
	})
}
