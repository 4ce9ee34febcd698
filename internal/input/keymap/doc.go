// Package keymap maps key sequences to action names and resolves them.
//
// # Trie
//
// A Keymap holds one trie per mode. Each trie is an arena of nodes
// addressed by index with node 0 as the root; a node maps single chords
// to child nodes and may carry an action name. A node may carry an action
// and have children at once ("g" bound while "gg" also exists).
//
// Action names are handles into the editor's action registry; the trie
// never holds behavior itself.
//
// # Resolution
//
// The Resolver consumes one event at a time. A pending prefix is flushed
// when the next chord cannot extend it (a dead end) or when it has waited
// longer than the timeout (one second by default), and a sequence that
// cannot be extended fires immediately. Unbound digits typed in Normal
// mode accumulate into a repeat prefix:
//
//	km := keymap.New()
//	_ = km.BindAll(keymap.DefaultBindings())
//	r := keymap.NewResolver(km, editor)
//
//	ev, ok, err := r.Feed(event, time.Now())
//	if ok {
//	    // ev is unresolved text input for the mode's fallback
//	}
//
// # Override Files
//
// Bindings may be added or replaced from a TOML or YAML file:
//
//	[[bindings]]
//	modes = "n"
//	keys = "<C-s>"
//	action = "file.save"
package keymap
