// Package dispatcher routes named actions to handlers.
//
// Key bindings store action names, never functions. A Registry maps each
// name to a Handler and a Dispatcher runs the handler for a name against
// a fixed target, usually the editor.
//
// # Handler Execution
//
// When an action is dispatched:
//
//  1. The registry is asked for the handler bound to the name
//  2. The handler is executed against the target, with panic recovery
//     when enabled
//  3. Metrics are recorded (if enabled)
//
// An unknown name yields ErrNoHandler. A recovered panic yields a
// *PanicError that matches ErrPanic and carries the goroutine stack.
//
// # Validation
//
// Validate checks a list of names against the registry so that bindings
// naming an unregistered action are rejected at startup rather than when
// the key is first pressed.
package dispatcher
