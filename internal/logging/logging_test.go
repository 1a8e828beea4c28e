package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want zerolog.Level
	}{
		{name: "", want: zerolog.InfoLevel},
		{name: "info", want: zerolog.InfoLevel},
		{name: "debug", want: zerolog.DebugLevel},
		{name: "warn", want: zerolog.WarnLevel},
		{name: "error", want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := ParseLevel("loud")
	assert.EqualError(t, err, `unknown log level "loud"`)
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "records.log")

	logger, closeLog, err := New(Options{File: path, Level: "info"})
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("department", "Sales").Msg("employee added")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"department":"Sales"`)
	assert.Contains(t, string(data), `"message":"employee added"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewVerboseWritesToStderr(t *testing.T) {
	var stderr bytes.Buffer

	logger, closeLog, err := New(Options{Level: "error", Verbose: true, Stderr: &stderr})
	require.NoError(t, err)
	defer closeLog()

	logger.Debug().Msg("menu drawn")

	assert.Contains(t, stderr.String(), "menu drawn")
}

func TestNewDiscardsByDefault(t *testing.T) {
	logger, closeLog, err := New(Options{})
	require.NoError(t, err)
	defer closeLog()

	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, closeLog, err := New(Options{Level: "chatty"})
	require.Error(t, err)
	assert.NoError(t, closeLog())
}
