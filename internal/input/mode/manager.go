package mode

import "fmt"

// Manager tracks the active mode and notifies listeners of transitions.
//
// Manager is owned by the editor's main loop and is not safe for
// concurrent use.
type Manager struct {
	// current is the active mode.
	current Mode

	// callbacks are notified on mode changes.
	callbacks []ChangeCallback
}

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// NewManager creates a manager starting in Normal mode.
func NewManager() *Manager {
	return &Manager{current: Normal}
}

// Current returns the active mode.
func (m *Manager) Current() Mode {
	return m.current
}

// Switch makes "to" the active mode. Switching to the active mode is a no-op
// and does not notify callbacks.
func (m *Manager) Switch(to Mode) error {
	if !to.Valid() {
		return fmt.Errorf("unknown mode: %d", to)
	}
	if to == m.current {
		return nil
	}

	from := m.current
	m.current = to

	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
	return nil
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}
