package keymap

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/chord/internal/input/key"
	"github.com/dshills/chord/internal/input/mode"
)

const tomlBindings = `
[[bindings]]
modes = "n"
keys = "<C-s>"
action = "command.execute"
description = "Save"

[[bindings]]
modes = "ni"
keys = "<F2>"
action = "mode.normal"
`

const yamlBindings = `
bindings:
  - modes: n
    keys: "<C-s>"
    action: command.execute
    description: Save
  - modes: ni
    keys: "<F2>"
    action: mode.normal
`

func TestLoadReader(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"toml", FormatTOML, tomlBindings},
		{"yaml", FormatYAML, yamlBindings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bindings, err := LoadReader(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)
			require.Len(t, bindings, 2)

			assert.Equal(t, Binding{Modes: "n", Keys: "<C-s>", Action: "command.execute", Description: "Save"}, bindings[0])
			assert.Equal(t, "ni", bindings[1].Modes)

			km := New()
			require.NoError(t, km.BindAll(bindings))
			action, ok := km.Lookup(mode.Insert, key.MustParseSequence("<F2>"))
			assert.True(t, ok)
			assert.Equal(t, "mode.normal", action)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlBindings), 0o644))

	bindings, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, bindings, 2)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadFileUnknownFormat(t *testing.T) {
	_, err := LoadFile("keys.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadReaderInvalidBinding(t *testing.T) {
	input := `
[[bindings]]
modes = "n"
keys = "<Bogus>"
action = "x"
`
	_, err := LoadReader(strings.NewReader(input), FormatTOML)
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, key.ErrUnknownKey)
	assert.Contains(t, perr.Error(), "binding 1")
}

func TestLoadReaderSyntaxError(t *testing.T) {
	_, err := LoadReader(strings.NewReader("[[bindings]\nmodes = "), FormatTOML)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Positive(t, perr.Line)
}

func TestLoadReaderUnknownField(t *testing.T) {
	input := "bindings:\n  - modes: n\n    keys: j\n    action: down\n    when: always\n"
	_, err := LoadReader(strings.NewReader(input), FormatYAML)
	assert.Error(t, err)
}

func TestLoadReaderEmptyYAML(t *testing.T) {
	bindings, err := LoadReader(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, bindings)
}

func TestEncodeThenLoad(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, format, DefaultBindings()))

		got, err := LoadReader(&buf, format)
		require.NoError(t, err)
		assert.Equal(t, DefaultBindings(), got, "format %s", format)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.toml", FormatTOML, false},
		{"a.TOML", FormatTOML, false},
		{"a.yaml", FormatYAML, false},
		{"dir/a.yml", FormatYAML, false},
		{"a.json", "", true},
		{"a", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
