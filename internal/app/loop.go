package app

import (
	"context"
	"runtime"
	"time"

	"github.com/dshills/chord/internal/input/key"
	"github.com/dshills/chord/internal/log"
	"github.com/dshills/chord/internal/renderer/backend"
)

// Step performs one loop iteration without blocking: it force-resolves a
// timed-out sequence, then handles at most one queued event.
func (e *Editor) Step() error {
	now := e.clock()

	fired, err := e.resolver.Tick(now)
	if fired {
		e.dirty = true
	}
	if err != nil {
		return err
	}

	ev, ok := e.queue.TryPop()
	if !ok {
		return nil
	}
	e.dirty = true

	switch ev.Type {
	case backend.EventResize:
		e.Resize(ev.Width, ev.Height)
		return nil
	case backend.EventKey:
		return e.HandleKey(ev.Key, now)
	default:
		return nil
	}
}

// HandleKey resolves one key and applies the mode fallback when no
// binding consumed it.
func (e *Editor) HandleKey(ev key.Event, now time.Time) error {
	fb, ok, err := e.resolver.Feed(ev, now)
	if err != nil {
		return err
	}
	if ok {
		return e.fallback(fb)
	}
	return nil
}

// Loop runs until an action stops the editor or ctx is cancelled. Errors
// from actions are shown on the banner. The queue is closed on return,
// which stops the input source.
func (e *Editor) Loop(ctx context.Context) error {
	defer e.queue.Close()

	e.logger.Info("editor started", "file", e.doc.Name(), "scratch", e.doc.IsScratch())
	defer e.logStats()

	for !e.Stopped() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := e.Step(); err != nil {
			e.reportError(err)
		}

		if e.Dirty() {
			e.Render()
		} else {
			runtime.Gosched()
		}
	}

	e.logger.Info("editor stopped")
	return nil
}

// reportError puts err on the banner.
func (e *Editor) reportError(err error) {
	e.logger.Warn("action failed", "error", err)
	e.SetBanner(err.Error())
}

// logStats logs the session's dispatch metrics. Actions that failed are
// logged at warn level with their last error.
func (e *Editor) logStats() {
	m := e.dispatcher.Metrics()
	if m == nil {
		return
	}
	e.logger.Debug("dispatch stats",
		"dispatches", m.TotalDispatches(),
		"errors", m.TotalErrors(),
		"panics", m.TotalPanics(),
		"avg", m.AverageDuration(),
		"frames", e.renderer.FrameCount(),
	)
	for _, am := range m.Failed() {
		e.logger.Warn("action errors", "action", am.Name, "errors", am.ErrorCount, "last", am.LastError)
	}
	if !e.logger.Enabled(log.LevelDebug) {
		return
	}
	for _, am := range m.TopActions(5) {
		e.logger.Debug("action stats", "action", am.Name, "count", am.DispatchCount)
	}
}
