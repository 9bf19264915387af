package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newWithStdout(Config{Env: "production", Level: "warn"}, &buf)

	l.Info().Msg("descartado")
	l.Warn().Str("k", "v").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "descartado")
	assert.Contains(t, out, `"k":"v"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestNew_ArchivoRotado(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")
	var buf bytes.Buffer
	l := newWithStdout(Config{Env: "production", File: path}, &buf)
	l.Info().Msg("a disco")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "a disco")
	assert.Contains(t, buf.String(), "a disco")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}
