package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrUnknownKey       = errors.New("unknown key name")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// ParseError reports where a sequence string failed to parse.
type ParseError struct {
	Spec   string
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("key sequence %q at offset %d: %v", e.Spec, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseSequence parses a binding sequence string into chords.
//
// Ordinary characters are literal unmodified key presses. A bracketed
// token <...> names a key, optionally prefixed by C-, S- or A-:
//
//	"gg"          g, g
//	"<C-w><C-q>"  Ctrl+w, Ctrl+q
//	"<Esc>"       Escape
//	"<S-Tab>"     Shift+Tab
//	"<F5>"        function key 5
//	"<C-x>"       Ctrl+x
func ParseSequence(s string) ([]Event, error) {
	if s == "" {
		return nil, &ParseError{Spec: s, Err: ErrEmptySpec}
	}

	seq := make([]Event, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] != '<' {
			r, size := utf8.DecodeRuneInString(s[i:])
			seq = append(seq, NewRuneEvent(r, ModNone))
			i += size
			continue
		}

		// The closing bracket is searched from i+2 so that "<>>" names '>'.
		end := -1
		if i+2 <= len(s) {
			if j := strings.IndexByte(s[i+2:], '>'); j >= 0 {
				end = i + 2 + j
			}
		}
		if end < 0 {
			return nil, &ParseError{Spec: s, Offset: i, Err: ErrUnmatchedBracket}
		}

		ev, err := ParseKey(s[i+1 : end])
		if err != nil {
			return nil, &ParseError{Spec: s, Offset: i, Err: err}
		}
		seq = append(seq, ev)
		i = end + 1
	}

	return seq, nil
}

// MustParseSequence parses a sequence string and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(s string) []Event {
	seq, err := ParseSequence(s)
	if err != nil {
		panic(err.Error())
	}
	return seq
}

// ParseKey parses the inside of a bracketed token, e.g. "C-w" or "PageUp".
func ParseKey(name string) (Event, error) {
	if name == "" {
		return Event{}, ErrEmptySpec
	}

	var mods Modifier
	for len(name) > 2 && name[1] == '-' {
		mod, ok := modifierFromPrefix(name[0])
		if !ok {
			break
		}
		mods = mods.With(mod)
		name = name[2:]
	}

	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return NewRuneEvent(r, mods), nil
	}

	if strings.EqualFold(name, "space") {
		return NewRuneEvent(' ', mods), nil
	}

	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	return Event{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}
