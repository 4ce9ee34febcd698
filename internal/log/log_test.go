package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: LevelWarn, Output: &buf})
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "key", "j")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "key=j")
	assert.Regexp(t, `session=[0-9a-f-]{36} `, out)
	assert.False(t, l.Enabled(LevelInfo))
	assert.True(t, l.Enabled(LevelError))
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: LevelDebug, Output: &buf})
	require.NoError(t, err)

	l.WithComponent("resolver").WithField("mode", "normal").Debug("fired")

	out := buf.String()
	assert.Contains(t, out, "component=resolver")
	assert.Contains(t, out, "mode=normal")
}

func TestDerivedLoggerKeepsLevelAndSession(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: LevelWarn, Output: &buf})
	require.NoError(t, err)

	child := l.WithComponent("app")
	child.Info("hidden")
	child.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "session=")
}

func TestLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chord.log")
	l, err := New(Config{Level: LevelInfo, File: path})
	require.NoError(t, err)

	l.Info("started")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "msg=started"))
}

func TestLoggerFileError(t *testing.T) {
	_, err := New(Config{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}

func TestNull(t *testing.T) {
	l := Null()
	l.Error("nothing")
	assert.NoError(t, l.Close())
	assert.False(t, l.Enabled(LevelError))
}
