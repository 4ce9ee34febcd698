package mode

// Mode identifies the active editing mode.
type Mode uint8

const (
	// Normal is the navigation and command mode.
	Normal Mode = iota

	// Command edits the ex-style command line.
	Command

	// Insert inserts typed text into the buffer.
	Insert

	// Visual is reserved. No default binding enters it.
	Visual
)

// All lists every mode in declaration order.
var All = []Mode{Normal, Command, Insert, Visual}

// Count is the number of modes; per-mode tables are indexed by Mode.
const Count = int(Visual) + 1

// Standard mode names.
const (
	NameNormal  = "normal"
	NameCommand = "command"
	NameInsert  = "insert"
	NameVisual  = "visual"
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Normal:
		return NameNormal
	case Command:
		return NameCommand
	case Insert:
		return NameInsert
	case Visual:
		return NameVisual
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m <= Visual
}

// CursorStyle returns the cursor shape for this mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case Insert, Command:
		return CursorBar
	default:
		return CursorBlock
	}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor.
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor.
	CursorBar
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	default:
		return "unknown"
	}
}

// selectorChars maps the single-letter selectors of the binding language.
var selectorChars = map[rune]Mode{
	'n': Normal,
	'v': Visual,
	'c': Command,
	'i': Insert,
}

// ParseModes converts a mode selector such as "nvci" or "ic" into modes.
// Unrecognized characters are ignored and duplicates collapse, so the
// result may be empty. Modes are returned in declaration order.
func ParseModes(selector string) []Mode {
	var seen [Count]bool
	for _, r := range selector {
		if m, ok := selectorChars[r]; ok {
			seen[m] = true
		}
	}

	modes := make([]Mode, 0, Count)
	for _, m := range All {
		if seen[m] {
			modes = append(modes, m)
		}
	}
	return modes
}
