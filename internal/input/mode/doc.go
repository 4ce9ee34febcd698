// Package mode defines the editor's modes and tracks the active one.
//
// Exactly one mode is active at a time:
//   - Normal: navigation and commands
//   - Command: editing the ":" command line
//   - Insert: text input
//   - Visual: reserved, nothing binds to it by default
//
// Mode transitions are side effects of resolved actions. The Manager
// records the transition and notifies registered callbacks.
//
// # Mode Selectors
//
// Bindings name the modes they apply to with a selector string over the
// alphabet {n, v, c, i}:
//
//	ParseModes("n")    // Normal
//	ParseModes("ic")   // Command, Insert
//	ParseModes("nvci") // every mode
package mode
