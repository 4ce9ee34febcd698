package key

import (
	"fmt"
	"strconv"
	"strings"
)

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyRune is used for character keys (letters, numbers, punctuation, space).
	// The actual character is stored in Event.Rune.
	KeyRune

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyF1 is the first function key. F<n> is KeyF1+n-1, see FunctionKey.
	KeyF1
)

// MaxFunctionKey is the highest function key number the terminal layer reports.
const MaxFunctionKey = 64

// FunctionKey returns the Key for F<n>, or KeyNone when n is out of range.
func FunctionKey(n int) Key {
	if n < 1 || n > MaxFunctionKey {
		return KeyNone
	}
	return KeyF1 + Key(n-1)
}

// FunctionNumber returns n for F<n>, or 0 for other keys.
func (k Key) FunctionNumber() int {
	if !k.IsFunctionKey() {
		return 0
	}
	return int(k-KeyF1) + 1
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "CR"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "BS"
	case KeyDelete:
		return "Del"
	case KeyInsert:
		return "Insert"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	}
	if k.IsFunctionKey() {
		return "F" + strconv.Itoa(k.FunctionNumber())
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsFunctionKey returns true if this is a function key.
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k < KeyF1+MaxFunctionKey
}

// keyNameMap maps key names (lowercase) to Key values.
// "space" is absent on purpose: <Space> is the ' ' rune.
var keyNameMap = map[string]Key{
	"bs":       KeyBackspace,
	"tab":      KeyTab,
	"cr":       KeyEnter,
	"enter":    KeyEnter,
	"return":   KeyEnter,
	"esc":      KeyEscape,
	"up":       KeyUp,
	"down":     KeyDown,
	"left":     KeyLeft,
	"right":    KeyRight,
	"insert":   KeyInsert,
	"del":      KeyDelete,
	"home":     KeyHome,
	"end":      KeyEnd,
	"pageup":   KeyPageUp,
	"pagedown": KeyPageDown,
}

// KeyFromName returns the Key for a given name (case-insensitive),
// including function keys written as F<n>.
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	if len(name) > 1 && name[0] == 'f' {
		n, err := strconv.Atoi(name[1:])
		if err == nil {
			return FunctionKey(n)
		}
	}
	return KeyNone
}
