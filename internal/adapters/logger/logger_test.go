package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/decider/internal/adapters/logger"
	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Info("info line")
	l.Warn("warn line")
	l.Debug("hidden")

	assert.Equal(t, "info line\n! warn line\n", buf.String())

	buf.Reset()
	l.SetDebug(true)
	l.Debug("shown")
	assert.Equal(t, "○ shown\n", buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	err := zerr.With(zerr.Wrap(domain.ErrUnresolvable, "cannot add cat/one"), "failures", "cat/two:0")
	l.Error(err)

	want := "✗ Error: cannot add cat/one\n" +
		"       failures: cat/two:0\n" +
		"\n" +
		"  Caused by:\n" +
		"    → targets cannot be resolved\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_NilError(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	l.SetJSON(true)

	l.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	l.SetJSON(true)
	l.SetJSON(false)
	l.Info("back to pretty")

	assert.Equal(t, "back to pretty\n", buf.String())
}
