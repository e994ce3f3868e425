package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langmap/internal/logger"
)

func TestSetupLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	l := logger.Setup(&buf, "warn", "json")
	l.Info("hidden")
	l.Warn("geometry_load_failed", "path", "world.json")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "geometry_load_failed", rec["msg"])
	assert.Equal(t, "world.json", rec["path"])
	assert.Same(t, l, logger.L())
}

func TestSetupText(t *testing.T) {
	var buf bytes.Buffer
	logger.Setup(&buf, "", "").Debug("hidden")
	logger.L().Info("ready", "features", 3)
	assert.Contains(t, buf.String(), "msg=ready features=3")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestOpen(t *testing.T) {
	w, err := logger.Open("")
	require.NoError(t, err)
	_, err = w.Write([]byte("x"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	p := filepath.Join(t.TempDir(), "langmap.log")
	w, err = logger.Open(p)
	require.NoError(t, err)
	logger.Setup(w, "info", "text").Info("started")
	require.NoError(t, w.Close())
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "msg=started")

	_, err = logger.Open(filepath.Join(t.TempDir(), "no", "such", "dir.log"))
	assert.Error(t, err)
}
