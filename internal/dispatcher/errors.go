package dispatcher

import (
	"errors"
	"fmt"
)

// Dispatcher errors.
var (
	// ErrNoHandler indicates no handler was found for an action.
	ErrNoHandler = errors.New("dispatcher: no handler for action")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")

	// ErrInvalidAction indicates the action name is empty.
	ErrInvalidAction = errors.New("dispatcher: invalid action")
)

// PanicError reports a panic recovered while running a handler.
type PanicError struct {
	Action string
	Value  any
	Stack  []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panic for %s: %v", e.Action, e.Value)
}

// Is matches ErrPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrPanic
}
