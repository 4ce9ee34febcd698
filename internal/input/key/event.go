package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single chord: one key press with its modifiers.
//
// Event is comparable and is used directly as a trie edge, so two events
// are the same chord exactly when they are ==. Construct events through
// NewRuneEvent/NewSpecialEvent, which normalize Shift on runes.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
// Shift is folded into the rune ('a'+Shift becomes 'A') and Control
// combinations use the lowercase letter, matching what terminals report.
func NewRuneEvent(r rune, mods Modifier) Event {
	if mods.HasShift() {
		r = unicode.ToUpper(r)
		mods = mods.Without(ModShift)
	}
	if mods.HasCtrl() {
		r = unicode.ToLower(r)
	}
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if Ctrl or Alt is held. These are the chords
// that never fall through to text insertion.
func (e Event) IsModified() bool {
	return e.Modifiers.Has(ModCtrl | ModAlt)
}

// Digit returns the decimal value of an unmodified digit rune.
func (e Event) Digit() (int, bool) {
	if e.Key != KeyRune || e.Modifiers != ModNone {
		return 0, false
	}
	if e.Rune < '0' || e.Rune > '9' {
		return 0, false
	}
	return int(e.Rune - '0'), true
}

// String returns the event in the notation accepted by ParseSequence.
// Examples: "a", "G", "<C-w>", "<CR>", "<Space>", "<S-Tab>"
func (e Event) String() string {
	if e.Key == KeyRune && e.Modifiers == ModNone {
		switch e.Rune {
		case ' ':
			return "<Space>"
		case '<':
			return "<<>"
		}
		return string(e.Rune)
	}

	var name string
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	} else {
		name = e.Key.String()
	}

	if mods := e.Modifiers.ShortString(); mods != "" {
		return "<" + mods + "-" + name + ">"
	}
	return "<" + name + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.ShortString())
}

// FormatSequence renders a sequence back into binding notation.
func FormatSequence(seq []Event) string {
	var sb strings.Builder
	for _, e := range seq {
		sb.WriteString(e.String())
	}
	return sb.String()
}
