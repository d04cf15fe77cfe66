package logging

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug").Level())
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn").Level())
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("").Level())
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose").Level())
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tandem.log")

	log, err := New(Options{
		Level:  "info",
		Format: FormatProduction,
		File:   path,
		App:    "tandem",
	})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("server launched", zap.Int("pid", 42))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))

	assert.Equal(t, "server launched", entry["msg"])
	assert.Equal(t, "tandem", entry["app"])
	assert.Equal(t, float64(42), entry["pid"])
}

func TestLoggerContext(t *testing.T) {
	_, err := LoggerFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoLoggerInContext)

	log := zap.NewNop()
	ctx := ContextWithLogger(context.Background(), log)

	got, err := LoggerFromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, log, got)
}

func TestNamedLogger(t *testing.T) {
	log, err := New(Options{})
	require.NoError(t, err)

	assert.Equal(t, "desktop", NamedLogger("desktop")(log).Name())
}
