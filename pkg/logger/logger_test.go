package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, getLoggerLevel("INFO"))
	assert.Equal(t, slog.LevelError, getLoggerLevel("error"))
	assert.Equal(t, slog.LevelDebug, getLoggerLevel("verbose"))
}

func TestWithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, &Config{Level: "info"}).With("component", "discord")

	log.Debug("hidden")
	log.Info("hello", "user", "kiwi")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "discord", record["component"])
	assert.Equal(t, "kiwi", record["user"])
}
