// Package config provides the configuration system for chord.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment (CHORD_*)   │
//	├─────────────────────────────┤
//	│  2. Config File             │  ← $XDG_CONFIG_HOME/chord/config.{yaml,toml}
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Environment names are the dotted key upper-cased with dots replaced by
// underscores, so input.key_timeout is CHORD_INPUT_KEY_TIMEOUT.
//
// # Basic Usage
//
//	cfg, err := config.Load(config.Options{File: path})
//	if err != nil {
//	    return err
//	}
//	timeout := cfg.Input.KeyTimeout
package config
