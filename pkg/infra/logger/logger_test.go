package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOG_DIR", dir)
	t.Setenv("LOG_LEVEL", "debug")

	log, closeFn, err := NewLogger("trustdesk")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("pii_found", []string{"email"}).Info("payload prepared")
	closeFn()

	content, err := os.ReadFile(filepath.Join(dir, "trustdesk.log"))
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(content), &line))
	assert.Equal(t, "payload prepared", line["msg"])
	assert.Equal(t, "info", line["level"])
	assert.Contains(t, line, "time")
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, logrus.InfoLevel, levelFromEnv())

	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, logrus.WarnLevel, levelFromEnv())

	t.Setenv("LOG_LEVEL", "verbose")
	assert.Equal(t, logrus.InfoLevel, levelFromEnv())
}

func TestAsyncFileWriter_CloseTwice(t *testing.T) {
	w, err := NewAsyncFileWriter(filepath.Join(t.TempDir(), "x.log"), 64)
	require.NoError(t, err)

	_, err = w.Write([]byte("line\n"))
	require.NoError(t, err)
	w.Close()
	w.Close()
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAsyncConsoleHook_DrainsOnClose(t *testing.T) {
	out := &syncBuffer{}
	hook := newAsyncConsoleHook(out, 16)

	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	log.AddHook(hook)
	log.Info("first")
	log.Info("second")
	hook.Close()

	assert.Equal(t, 2, strings.Count(out.String(), "msg="))
}
