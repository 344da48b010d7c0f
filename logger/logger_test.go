package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewDefaultsToInfoOnUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("not-a-level", false, &buf)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.Bytes())

	log.Info().Msg("visible")
	entry := logLine(t, &buf)
	assert.Equal(t, "visible", entry["message"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("error", false, &buf)

	log.Info().Msg("dropped")
	log.Warn().Msg("dropped too")
	assert.Empty(t, buf.Bytes())

	log.Error().Msg("kept")
	entry := logLine(t, &buf)
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "error", entry["level"])
}

func TestEventFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("debug", false, &buf)

	log.Info().
		Str("direction", "outbound").
		Int("status", 200).
		Int64("count", 3).
		Dur("elapsed", 1500*time.Millisecond).
		Err(errors.New("boom")).
		Msg("request done")

	entry := logLine(t, &buf)
	assert.Equal(t, "outbound", entry["direction"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, float64(3), entry["count"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "request done", entry["message"])
	assert.NotEmpty(t, entry["time"])
}

func TestMsgf(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("info", false, &buf)

	log.Warn().Msgf("retry %d of %d", 1, 1)

	entry := logLine(t, &buf)
	assert.Equal(t, "retry 1 of 1", entry["message"])
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("info", false, &buf)

	child := log.WithFields(map[string]any{"component": "netservice"})
	child.Info().Msg("hello")

	entry := logLine(t, &buf)
	assert.Equal(t, "netservice", entry["component"])
}

func TestPrettyOutputIsNotJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("info", true, &buf)

	log.Info().Msg("pretty line")

	var entry map[string]any
	assert.Error(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, buf.String(), "pretty line")
}
