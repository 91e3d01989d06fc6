package logger

import (
	"bytes"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	t.Run("Should map known names", func(t *testing.T) {
		assert.Equal(t, charmlog.DebugLevel, ParseLevel("DEBUG"))
		assert.Equal(t, charmlog.WarnLevel, ParseLevel("warning"))
		assert.Equal(t, charmlog.ErrorLevel, ParseLevel("error"))
	})

	t.Run("Should default to info", func(t *testing.T) {
		assert.Equal(t, charmlog.InfoLevel, ParseLevel("chatty"))
	})
}

func TestNew(t *testing.T) {
	t.Run("Should filter below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(Config{Level: "warn", Output: &buf})

		log.Info("hidden")
		log.Warn("shown", "rows", 3)

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
		assert.Contains(t, buf.String(), "rows=3")
	})

	t.Run("Should emit JSON when asked", func(t *testing.T) {
		var buf bytes.Buffer
		New(Config{JSON: true, Output: &buf}).Info("hello", "schema", "board-output")

		assert.Contains(t, buf.String(), `"msg":"hello"`)
		assert.Contains(t, buf.String(), `"schema":"board-output"`)
	})
}
