package log_test

import (
	"bytes"
	"strings"
	"testing"

	"bennypowers.dev/sasseval/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(nil)

	t.Run("Info level logs Info, Warn, Error but not Debug", func(t *testing.T) {
		buf.Reset()
		log.SetLevel(log.LevelInfo)

		log.Debug("debug message")
		log.Info("info message")
		log.Warn("warn message")
		log.Error("error message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.Contains(t, output, "info message")
		assert.Contains(t, output, "warn message")
		assert.Contains(t, output, "error message")
	})

	t.Run("Error level only logs Error", func(t *testing.T) {
		buf.Reset()
		log.SetLevel(log.LevelError)

		log.Debug("debug message")
		log.Info("info message")
		log.Warn("warn message")
		log.Error("error message")

		output := buf.String()
		assert.NotContains(t, output, "info message")
		assert.NotContains(t, output, "warn message")
		assert.Contains(t, output, "error message")
	})
}

func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetLevel(log.LevelDebug)
	defer log.SetOutput(nil)

	t.Run("messages carry prefix and level", func(t *testing.T) {
		buf.Reset()
		log.Warn("bad %s", "unit")
		assert.Equal(t, "[SASS] WARN: bad unit\n", buf.String())
	})

	t.Run("each message is one line", func(t *testing.T) {
		buf.Reset()
		log.Info("message 1")
		log.Debug("message 2")

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "INFO: message 1")
		assert.Contains(t, lines[1], "DEBUG: message 2")
	})

	t.Run("percent signs in arguments survive", func(t *testing.T) {
		buf.Reset()
		log.Info("%s", "lighten(red, 150%)")
		assert.Contains(t, buf.String(), "lighten(red, 150%)")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.LevelDebug, false},
		{"INFO", log.LevelInfo, false},
		{"", log.LevelInfo, false},
		{"warning", log.LevelWarn, false},
		{"error", log.LevelError, false},
		{"verbose", log.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := log.ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnabled(t *testing.T) {
	original := log.GetLevel()
	defer log.SetLevel(original)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(nil)

	log.SetLevel(log.LevelWarn)
	assert.False(t, log.Enabled(log.LevelDebug))
	assert.True(t, log.Enabled(log.LevelError))
	assert.Equal(t, log.LevelWarn, log.GetLevel())
}
