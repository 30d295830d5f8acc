package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		" info ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range tests {
		assert.Equal(t, want, ParseLevel(raw), "raw=%q", raw)
	}
}

func TestSetRawLevel(t *testing.T) {
	SetRawLevel("error")
	assert.Equal(t, slog.LevelError, levelVar.Level())
	SetLevel(slog.LevelInfo)
	assert.Equal(t, slog.LevelInfo, levelVar.Level())
}
