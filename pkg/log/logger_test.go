package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestWithComponentAddsFields(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, Service: "test-svc"})
	t.Cleanup(func() { Configure(Config{}) })

	l := WithComponent("store")
	l.Info().Msg("hello")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "store", entry["component"])
	assert.Equal(t, "test-svc", entry["service"])
	assert.Equal(t, "hello", entry["message"])
}

func TestConfigureLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "warn", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	l := Base()
	l.Debug().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func TestDeriveRunsBuilder(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	l := Derive(func(c *zerolog.Context) {
		*c = c.Str("store", "counter")
	})
	l.Info().Msg("x")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "counter", entry["store"])
}
