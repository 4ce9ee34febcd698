package backend

import (
	"fmt"
	"sync"
)

// Guard owns an initialized backend and restores the terminal exactly once.
//
// Acquire it at startup and defer Release; Release is idempotent so the
// normal return path, an early error return and a recovered panic can all
// call it.
type Guard struct {
	backend Backend
	once    sync.Once
}

// Acquire initializes b and returns a guard over it.
func Acquire(b Backend) (*Guard, error) {
	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	return &Guard{backend: b}, nil
}

// Backend returns the guarded backend.
func (g *Guard) Backend() Backend {
	return g.backend
}

// Release shuts the backend down. Calls after the first are no-ops.
func (g *Guard) Release() {
	if g == nil {
		return
	}
	g.once.Do(g.backend.Shutdown)
}
