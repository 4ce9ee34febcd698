package buffer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{""}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank last line", "a\n\n", []string{"a", ""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"only newline", "\n", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Read(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Lines())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "new.txt"))
	require.NoError(t, err)
	assert.True(t, b.IsEmpty())
}

func TestLoadDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	require.Error(t, err)

	var fe *FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, dir, fe.Path)
}

func TestSaveJoinsWithNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	b := FromLines([]string{"one", "two", ""})

	require.NoError(t, b.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestSaveFailure(t *testing.T) {
	err := New().Save(filepath.Join(t.TempDir(), "missing", "out.txt"))

	var fe *FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "create", fe.Op)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRoundTrip(t *testing.T) {
	contents := []string{
		"",
		"single line",
		"first\nsecond\nthird",
		"  indented\n\tTabbed\n\nblank above",
		"unicode: héllo wörld",
	}
	for _, content := range contents {
		path := filepath.Join(t.TempDir(), "doc.txt")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		b, err := Load(path)
		require.NoError(t, err)
		require.NoError(t, b.Save(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, content, string(data))
	}
}

func TestRoundTripDropsTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0o600))

	b, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, b.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", string(data))
}
