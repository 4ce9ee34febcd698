package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/chord/internal/input/mode"
)

func TestCommandLineEditing(t *testing.T) {
	h := newHarness(t, "")

	h.keys(":wq<BS>x")
	assert.Equal(t, "wx", h.editor.Command())

	h.keys("<BS><BS><BS>")
	assert.Empty(t, h.editor.Command())
	assert.Equal(t, mode.Command, h.editor.Mode())
}

func TestEmptyCommandReturnsToNormal(t *testing.T) {
	h := newHarness(t, "")

	h.keys(":<CR>")
	assert.Equal(t, mode.Normal, h.editor.Mode())
	assert.Empty(t, h.editor.Banner())
}

func TestCommandQuit(t *testing.T) {
	h := newHarness(t, "")

	h.keys(":q<CR>")
	assert.True(t, h.editor.Stopped())
	assert.Equal(t, mode.Normal, h.editor.Mode())
}

func TestCommandUnknownIsIgnored(t *testing.T) {
	h := newHarness(t, "")

	h.keys(":frobnicate<CR>")
	assert.False(t, h.editor.Stopped())
	assert.Empty(t, h.editor.Banner())
	assert.Equal(t, mode.Normal, h.editor.Mode())
}

func TestCommandWriteWithoutFilename(t *testing.T) {
	h := newHarness(t, "text")

	h.keys(":w<CR>")
	assert.Contains(t, h.editor.Banner(), ErrNoFilename.Error())
	assert.Equal(t, mode.Command, h.editor.Mode(), "a failing command stays in Command mode")
	assert.Empty(t, h.editor.Command())

	err := h.editor.runCommand("wq")
	require.ErrorIs(t, err, ErrNoFilename)
	assert.False(t, h.editor.Stopped())
}

func TestCommandEditWithoutFilename(t *testing.T) {
	h := newHarness(t, "text")

	err := h.editor.runCommand("e")
	require.ErrorIs(t, err, ErrNoFilename)
	assert.Equal(t, []string{"text"}, h.lines())
}

func TestCommandWriteAndEdit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	h := newHarness(t, "one", "two")

	h.keys(":w " + path + "<CR>")
	require.Empty(t, h.editor.Banner())
	assert.Equal(t, mode.Normal, h.editor.Mode())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", string(data))
	assert.Equal(t, path, h.editor.Document().Path)
	assert.False(t, h.editor.Document().IsModified())

	h.keys("Ax<Esc>:w<CR>")
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "onex\ntwo", string(data), "w falls back to the associated file")

	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(other, []byte("a\nb\nc\n"), 0o600))

	h.keys("j")
	h.keys(":e " + other + "<CR>")
	assert.Equal(t, []string{"a", "b", "c"}, h.lines())
	assert.Equal(t, other, h.editor.Document().Path)
	h.assertPos(0, 0)
}

func TestCommandEditMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	h := newHarness(t, "old")

	h.keys(":e " + path + "<CR>")
	assert.Empty(t, h.editor.Banner())
	assert.Equal(t, []string{""}, h.lines())
	assert.Equal(t, path, h.editor.Document().Path)

	h.keys("ihello<Esc>:wq<CR>")
	assert.True(t, h.editor.Stopped())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestCommandWriteFailure(t *testing.T) {
	dir := t.TempDir()
	h := newHarness(t, "text")

	h.keys(":w " + dir + "<CR>")
	assert.NotEmpty(t, h.editor.Banner())
	assert.False(t, h.editor.Stopped())
	assert.Empty(t, h.editor.Document().Path)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.txt")
	content := "first\n  second\n\nlast"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	h := newHarness(t)
	require.NoError(t, h.editor.Load(path))
	require.NoError(t, h.editor.Save(""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}
