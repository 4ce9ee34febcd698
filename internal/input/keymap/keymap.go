package keymap

import (
	"fmt"
	"sort"

	"github.com/dshills/chord/internal/input/key"
	"github.com/dshills/chord/internal/input/mode"
)

// root is the index of every trie's root node.
const root = 0

// node is one trie node. A node may hold an action and children at the
// same time; reaching it then only fires on a dead end or a timeout.
type node struct {
	children map[key.Event]int
	action   string
}

// trie is an arena of nodes addressed by index.
type trie []node

// Keymap holds one trie per mode mapping key sequences to action names.
//
// A Keymap is populated at startup. Bindings added later apply from the
// next sequence on; adding them while a sequence is pending is not
// supported. The Resolver walks it one event at a time.
type Keymap struct {
	tries [mode.Count]trie
}

// New creates an empty keymap with a root node for every mode.
func New() *Keymap {
	k := &Keymap{}
	for i := range k.tries {
		k.tries[i] = trie{{children: make(map[key.Event]int)}}
	}
	return k
}

// AddBinding inserts seq into the trie of each mode in modes. A later
// binding for an identical (mode, sequence) pair overwrites the earlier
// action.
func (k *Keymap) AddBinding(modes []mode.Mode, seq []key.Event, action string) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	if action == "" {
		return fmt.Errorf("sequence %q: %w", key.FormatSequence(seq), ErrEmptyAction)
	}

	for _, m := range modes {
		if !m.Valid() {
			return fmt.Errorf("unknown mode: %d", m)
		}
		k.insert(m, seq, action)
	}
	return nil
}

// Bind parses b and adds it.
func (k *Keymap) Bind(b Binding) error {
	pb, err := b.Parse()
	if err != nil {
		return err
	}
	return k.AddBinding(pb.Modes, pb.Sequence, pb.Action)
}

// BindAll adds bindings in order, stopping at the first invalid one.
func (k *Keymap) BindAll(bindings []Binding) error {
	for _, b := range bindings {
		if err := k.Bind(b); err != nil {
			return err
		}
	}
	return nil
}

func (k *Keymap) insert(m mode.Mode, seq []key.Event, action string) {
	t := k.tries[m]
	cur := root
	for _, ev := range seq {
		next, ok := t[cur].children[ev]
		if !ok {
			t = append(t, node{children: make(map[key.Event]int)})
			next = len(t) - 1
			t[cur].children[ev] = next
		}
		cur = next
	}
	t[cur].action = action
	k.tries[m] = t
}

// child returns the node reached from n by ev in mode m.
func (k *Keymap) child(m mode.Mode, n int, ev key.Event) (int, bool) {
	next, ok := k.tries[m][n].children[ev]
	return next, ok
}

// hasChildren reports whether node n of mode m can be extended.
func (k *Keymap) hasChildren(m mode.Mode, n int) bool {
	return len(k.tries[m][n].children) > 0
}

// actionAt returns the action bound at node n of mode m, or "".
func (k *Keymap) actionAt(m mode.Mode, n int) string {
	return k.tries[m][n].action
}

// Lookup returns the action bound to exactly seq in mode m.
func (k *Keymap) Lookup(m mode.Mode, seq []key.Event) (string, bool) {
	if !m.Valid() || len(seq) == 0 {
		return "", false
	}
	cur := root
	for _, ev := range seq {
		next, ok := k.child(m, cur, ev)
		if !ok {
			return "", false
		}
		cur = next
	}
	action := k.actionAt(m, cur)
	return action, action != ""
}

// Size returns the number of bound sequences in mode m.
func (k *Keymap) Size(m mode.Mode) int {
	if !m.Valid() {
		return 0
	}
	n := 0
	for _, nd := range k.tries[m] {
		if nd.action != "" {
			n++
		}
	}
	return n
}

// Bindings lists every bound sequence of mode m, sorted by key notation.
func (k *Keymap) Bindings(m mode.Mode) []Entry {
	if !m.Valid() {
		return nil
	}

	var entries []Entry
	var walk func(n int, prefix []key.Event)
	walk = func(n int, prefix []key.Event) {
		nd := k.tries[m][n]
		if nd.action != "" {
			seq := make([]key.Event, len(prefix))
			copy(seq, prefix)
			entries = append(entries, Entry{Mode: m, Sequence: seq, Action: nd.action})
		}
		for ev, next := range nd.children {
			walk(next, append(prefix, ev))
		}
	}
	walk(root, nil)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Keys() < entries[j].Keys()
	})
	return entries
}

// Actions returns the distinct action names bound in any mode.
func (k *Keymap) Actions() []string {
	seen := make(map[string]bool)
	for _, t := range k.tries {
		for _, nd := range t {
			if nd.action != "" {
				seen[nd.action] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
