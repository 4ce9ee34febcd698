package keymap

import (
	"errors"
	"fmt"

	"github.com/dshills/chord/internal/input/key"
	"github.com/dshills/chord/internal/input/mode"
)

// Binding errors
var (
	ErrEmptySequence = errors.New("empty key sequence")
	ErrEmptyAction   = errors.New("empty action")
	ErrNoModes       = errors.New("mode selector names no mode")
)

// Binding represents a single key-to-action mapping in the binding language.
type Binding struct {
	// Modes is a mode selector over {n, v, c, i}, e.g. "n" or "ic".
	Modes string `toml:"modes" yaml:"modes"`

	// Keys is the key sequence that triggers this binding.
	// Examples: "j", "gg", "<C-w><C-q>", "<Esc>"
	Keys string `toml:"keys" yaml:"keys"`

	// Action is the name of the action to execute.
	// Examples: "cursor.down", "mode.insert", "editor.quit"
	Action string `toml:"action" yaml:"action"`

	// Description provides documentation for the binding.
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
}

// NewBinding creates a new binding.
func NewBinding(modes, keys, action string) Binding {
	return Binding{
		Modes:  modes,
		Keys:   keys,
		Action: action,
	}
}

// ParsedBinding is a binding with its selector and sequence resolved.
type ParsedBinding struct {
	Binding
	Modes    []mode.Mode
	Sequence []key.Event
}

// Parse resolves the mode selector and key sequence of the binding.
func (b Binding) Parse() (ParsedBinding, error) {
	if b.Action == "" {
		return ParsedBinding{}, fmt.Errorf("binding %q: %w", b.Keys, ErrEmptyAction)
	}

	modes := mode.ParseModes(b.Modes)
	if len(modes) == 0 {
		return ParsedBinding{}, fmt.Errorf("binding %q (%q): %w", b.Keys, b.Modes, ErrNoModes)
	}

	seq, err := key.ParseSequence(b.Keys)
	if err != nil {
		return ParsedBinding{}, fmt.Errorf("binding %q: %w", b.Keys, err)
	}

	return ParsedBinding{
		Binding:  b,
		Modes:    modes,
		Sequence: seq,
	}, nil
}

// Entry describes one bound sequence of a mode, as listed by Keymap.Bindings.
type Entry struct {
	Mode     mode.Mode
	Sequence []key.Event
	Action   string
}

// Keys returns the entry's sequence in binding notation.
func (e Entry) Keys() string {
	return key.FormatSequence(e.Sequence)
}
