package keymap

import (
	"strconv"
	"time"

	"github.com/dshills/chord/internal/input/key"
	"github.com/dshills/chord/internal/input/mode"
)

// DefaultTimeout is how long a pending sequence waits for its next chord
// before it is force-resolved.
const DefaultTimeout = 1000 * time.Millisecond

// MaxRepeat caps the repeat prefix; further digits saturate.
const MaxRepeat = 99999

// Runner executes a named action once.
type Runner interface {
	Run(action string) error
}

// Host is the editor as seen by the resolver: it reports the active mode
// and executes actions. Actions may change the mode.
type Host interface {
	Runner
	Mode() mode.Mode
}

// Resolver walks a Keymap one event at a time.
//
// It keeps a pointer into the trie of the mode in which the pending
// sequence started, the repeat prefix typed so far, and the time the last
// event was consumed. It is owned by the main loop and not safe for
// concurrent use.
type Resolver struct {
	keymap  *Keymap
	host    Host
	timeout time.Duration

	// pointer is the current node; root means nothing is pending.
	pointer int
	mode    mode.Mode

	// repeat is the accumulated count; 0 means none was typed.
	repeat int

	// countModes are the modes in which digits build the repeat prefix.
	countModes [mode.Count]bool

	lastKey time.Time
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithTimeout sets the pending-sequence timeout.
func WithTimeout(d time.Duration) ResolverOption {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// NewResolver creates a resolver over km executing actions on host.
func NewResolver(km *Keymap, host Host, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		keymap:  km,
		host:    host,
		timeout: DefaultTimeout,
	}
	r.countModes[mode.Normal] = true
	r.countModes[mode.Visual] = true
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Traverse advances the pointer by ev. It returns true when ev does not
// extend the current node; the pointer is then left where it was.
//
// An unmatched unmodified digit typed while nothing is pending is consumed
// into the repeat prefix instead. Only Normal and Visual take counts: in
// Insert and Command a digit is text, so it stays unresolved and reaches
// the fallback.
func (r *Resolver) Traverse(m mode.Mode, ev key.Event) (unresolved bool) {
	if r.pointer == root {
		r.mode = m
	}

	if next, ok := r.keymap.child(r.mode, r.pointer, ev); ok {
		r.pointer = next
		return false
	}

	if r.pointer == root && r.countModes[r.mode] {
		if d, ok := ev.Digit(); ok {
			r.repeat = min(r.repeat*10+d, MaxRepeat)
			return false
		}
	}

	return true
}

// IsLeaf reports whether the pointer sits on a node that cannot be
// extended. It is false while nothing is pending.
func (r *Resolver) IsLeaf() bool {
	return r.pointer != root && !r.keymap.hasChildren(r.mode, r.pointer)
}

// Action returns the action bound at the pointer, if any.
func (r *Resolver) Action() (string, bool) {
	if r.pointer == root {
		return "", false
	}
	action := r.keymap.actionAt(r.mode, r.pointer)
	return action, action != ""
}

// Pending reports whether a sequence is in progress.
func (r *Resolver) Pending() bool {
	return r.pointer != root
}

// PendingKeys returns the chords of the pending sequence in notation,
// e.g. "3g" while waiting for the second g of "3gg".
func (r *Resolver) PendingKeys() string {
	if r.pointer == root && r.repeat == 0 {
		return ""
	}

	var prefix string
	if r.repeat > 0 {
		prefix = strconv.Itoa(r.repeat)
	}
	if r.pointer == root {
		return prefix
	}

	// Recover the path by searching the trie; sequences are short.
	var path []key.Event
	var find func(n int, acc []key.Event) bool
	find = func(n int, acc []key.Event) bool {
		if n == r.pointer {
			path = append([]key.Event(nil), acc...)
			return true
		}
		for ev, next := range r.keymap.tries[r.mode][n].children {
			if find(next, append(acc, ev)) {
				return true
			}
		}
		return false
	}
	find(root, nil)
	return prefix + key.FormatSequence(path)
}

// ExecuteAndClear runs the action at the pointer, if any, once per repeat
// (default 1), stopping at the first error. The pointer returns to the
// root in every case. The repeat prefix is consumed only when an action
// runs.
func (r *Resolver) ExecuteAndClear() error {
	action, ok := r.Action()
	r.pointer = root
	if !ok {
		return nil
	}

	n := r.repeat
	if n == 0 {
		n = 1
	}
	r.repeat = 0

	for i := 0; i < n; i++ {
		if err := r.host.Run(action); err != nil {
			return err
		}
	}
	return nil
}

// Tick force-resolves a pending sequence once more than the timeout has
// elapsed since the last consumed event. It reports whether it did.
func (r *Resolver) Tick(now time.Time) (bool, error) {
	if !r.Pending() || now.Sub(r.lastKey) <= r.timeout {
		return false, nil
	}
	return true, r.ExecuteAndClear()
}

// Feed resolves one incoming event:
//
//  1. a pending sequence older than the timeout is force-resolved;
//  2. ev is traversed; on a dead end the pending node is force-resolved
//     and ev is traversed again from the root;
//  3. a pointer on a leaf fires immediately.
//
// When ev is still unresolved and carries neither Ctrl nor Alt it is
// returned with ok set, for the mode's text-edit fallback. The mode is
// re-read from the host after each action since actions may switch it.
func (r *Resolver) Feed(ev key.Event, now time.Time) (fallback key.Event, ok bool, err error) {
	if _, err := r.Tick(now); err != nil {
		return key.Event{}, false, err
	}

	unresolved := r.Traverse(r.host.Mode(), ev)
	if unresolved {
		if err := r.ExecuteAndClear(); err != nil {
			return key.Event{}, false, err
		}
		unresolved = r.Traverse(r.host.Mode(), ev)
	}

	if r.IsLeaf() {
		if err := r.ExecuteAndClear(); err != nil {
			return key.Event{}, false, err
		}
	}

	r.lastKey = now

	if unresolved && !ev.IsModified() {
		return ev, true, nil
	}
	return key.Event{}, false, nil
}

// Reset drops any pending sequence and repeat prefix without running
// anything.
func (r *Resolver) Reset() {
	r.pointer = root
	r.repeat = 0
}
