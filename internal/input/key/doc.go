// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift)
//   - Event: A single chord, comparable so it can key a trie edge
//
// # Sequence Strings
//
// Bindings are written as sequence strings. Plain characters are literal
// unmodified presses; bracketed tokens name special keys:
//
//   - Literal chords: "gg", "dd", "$", "G"
//   - Named keys: "<Esc>", "<CR>", "<BS>", "<Space>", "<F5>", "<PageUp>"
//   - With modifiers: "<C-w>", "<A-x>", "<S-Tab>", "<C-w><C-q>"
//
// An unknown key name is an error; the editor treats it as fatal while
// building its keymap.
package key
