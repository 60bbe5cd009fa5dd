package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	l.Info().Msg("被过滤")
	l.Warn().Str("book_uid", "b-1").Msg("查询较慢")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "b-1", entry["book_uid"])
	assert.Equal(t, "查询较慢", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)

	l.Debug().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNew_Caller(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{EnableCaller: true}, &buf)
	require.NoError(t, err)

	l.Info().Msg("x")
	assert.Contains(t, buf.String(), "logger_test.go")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLevel("ERROR")
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookrec.log")
	require.NoError(t, Init(Options{Level: "info", Output: path}))
	t.Cleanup(func() {
		_ = Init(Options{Output: "stderr"})
	})

	Get().Info().Msg("写入文件")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "写入文件")
}

func TestInit_InvalidLevel(t *testing.T) {
	assert.Error(t, Init(Options{Level: "loud"}))
}
