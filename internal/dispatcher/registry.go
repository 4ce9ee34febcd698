package dispatcher

import (
	"sync"
)

// Handler executes one action against a target.
type Handler[T any] interface {
	Handle(target T) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc[T any] func(target T) error

// Handle calls f(target).
func (f HandlerFunc[T]) Handle(target T) error {
	return f(target)
}

// Registry manages handler registration by exact action name.
type Registry[T any] struct {
	mu       sync.RWMutex
	handlers map[string]Handler[T]
}

// NewRegistry creates a new handler registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		handlers: make(map[string]Handler[T]),
	}
}

// Register binds a handler to an action name, replacing any previous one.
func (r *Registry[T]) Register(actionName string, h Handler[T]) error {
	if actionName == "" || h == nil {
		return ErrInvalidAction
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[actionName] = h
	return nil
}

// RegisterFunc binds a function to an action name.
func (r *Registry[T]) RegisterFunc(actionName string, f func(T) error) error {
	if f == nil {
		return ErrInvalidAction
	}
	return r.Register(actionName, HandlerFunc[T](f))
}

// Get returns the handler for an action, or nil.
func (r *Registry[T]) Get(actionName string) Handler[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handlers[actionName]
}

// Has returns true if a handler is registered for the action.
func (r *Registry[T]) Has(actionName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[actionName]
	return ok
}

// Count returns the number of registered actions.
func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}
