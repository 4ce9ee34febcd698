package dispatcher

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/dshills/chord/internal/log"
)

// Config configures a Dispatcher.
type Config struct {
	// RecoverPanics turns handler panics into *PanicError values.
	RecoverPanics bool

	// EnableMetrics records per-action counts and durations.
	EnableMetrics bool

	// Logger receives dispatch failures. Nil discards them.
	Logger *log.Logger
}

// DefaultConfig returns the configuration used by the editor.
func DefaultConfig() Config {
	return Config{
		RecoverPanics: true,
		EnableMetrics: true,
	}
}

// Dispatcher runs registered handlers against a fixed target.
type Dispatcher[T any] struct {
	registry *Registry[T]
	target   T
	config   Config
	metrics  *Metrics
	logger   *log.Logger
}

// New creates a dispatcher running handlers from registry on target.
func New[T any](registry *Registry[T], target T, config Config) *Dispatcher[T] {
	d := &Dispatcher[T]{
		registry: registry,
		target:   target,
		config:   config,
		logger:   config.Logger,
	}
	if d.logger == nil {
		d.logger = log.Null()
	}
	d.logger = d.logger.WithComponent("dispatcher")
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	d.logger.Debug("dispatcher created", "actions", registry.Count(), "metrics", config.EnableMetrics)
	return d
}

// Registry returns the handler registry.
func (d *Dispatcher[T]) Registry() *Registry[T] {
	return d.registry
}

// Metrics returns the metrics collector, or nil if disabled.
func (d *Dispatcher[T]) Metrics() *Metrics {
	return d.metrics
}

// Run executes the handler bound to actionName once.
func (d *Dispatcher[T]) Run(actionName string) error {
	h := d.registry.Get(actionName)
	if h == nil {
		d.logger.Warn("no handler", "action", actionName)
		return fmt.Errorf("%w: %s", ErrNoHandler, actionName)
	}

	start := time.Now()

	var err error
	if d.config.RecoverPanics {
		err = d.executeWithRecovery(actionName, h)
	} else {
		err = h.Handle(d.target)
	}

	if err != nil {
		d.logger.Debug("action failed", "action", actionName, "error", err)
	}
	if d.metrics != nil {
		d.metrics.RecordDispatch(actionName, time.Since(start), err)
	}
	return err
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher[T]) executeWithRecovery(actionName string, h Handler[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			err = &PanicError{Action: actionName, Value: r, Stack: stack[:n]}
			d.logger.Error("handler panic", "action", actionName, "panic", r)

			if d.metrics != nil {
				d.metrics.RecordPanic(actionName)
			}
		}
	}()

	return h.Handle(d.target)
}

// Validate reports every name in actionNames that has no handler.
func (d *Dispatcher[T]) Validate(actionNames []string) error {
	var errs []error
	for _, name := range actionNames {
		if !d.registry.Has(name) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrNoHandler, name))
		}
	}
	return errors.Join(errs...)
}
