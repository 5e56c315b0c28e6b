package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("warn", &buf)

	l.Debug("debug", nil)
	l.Info("info", nil)
	l.Warn("aviso", map[string]interface{}{"id": "1"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "WARN", entry.Level)
	assert.Equal(t, "aviso", entry.Message)
	assert.Equal(t, "1", entry.Fields["id"])
}

func TestLogger_ErrorCarriesCause(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("debug", &buf)

	l.Error("falha no banco", errors.New("connection refused"))

	var entry LogEntry
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "connection refused", entry.Error)
}

func TestLogger_FatalExits(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("info", &buf)
	code := -1
	l.exit = func(c int) { code = c }

	l.Fatal("encerrando", errors.New("boom"))

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), `"FATAL"`)
}

func TestLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("verbose", &buf)

	l.Debug("escondido", nil)
	l.Info("visível", nil)

	assert.NotContains(t, buf.String(), "escondido")
	assert.Contains(t, buf.String(), "visível")
}
