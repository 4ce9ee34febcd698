// Package app provides the editor state and the main loop that coordinates
// input resolution, actions and rendering.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/chord/internal/config"
	"github.com/dshills/chord/internal/dispatcher"
	"github.com/dshills/chord/internal/engine/buffer"
	"github.com/dshills/chord/internal/engine/cursor"
	"github.com/dshills/chord/internal/input/keymap"
	"github.com/dshills/chord/internal/input/mode"
	"github.com/dshills/chord/internal/input/source"
	"github.com/dshills/chord/internal/log"
	"github.com/dshills/chord/internal/renderer"
	"github.com/dshills/chord/internal/renderer/backend"
	"github.com/dshills/chord/internal/renderer/gutter"
	"github.com/dshills/chord/internal/renderer/viewport"
)

// Clock returns the current time. Tests substitute a fake one to drive
// sequence timeouts.
type Clock func() time.Time

// Options configures the editor.
type Options struct {
	// Backend is the display the editor draws onto. Required.
	Backend backend.Backend

	// Config holds the settings. Nil means config.Defaults().
	Config *config.Config

	// Logger receives editor logs. Nil discards them.
	Logger *log.Logger

	// Keymap holds the bindings. Nil means DefaultBindings only.
	Keymap *keymap.Keymap

	// File is loaded on startup when non-empty.
	File string

	// Queue is the event queue fed by the input source. Nil creates one
	// sized by Config.Input.QueueSize.
	Queue *source.Queue

	// Clock defaults to time.Now.
	Clock Clock
}

// Editor owns all mutable editor state. It is driven by a single goroutine
// and is not safe for concurrent use.
type Editor struct {
	doc      *Document
	cursor   cursor.Cursor
	viewport *viewport.Viewport
	modes    *mode.Manager

	command string
	banner  string
	dirty   bool
	stop    bool

	keymap     *keymap.Keymap
	resolver   *keymap.Resolver
	dispatcher *dispatcher.Dispatcher[*Editor]
	queue      *source.Queue

	backend  backend.Backend
	renderer *renderer.Renderer
	gutter   *gutter.Gutter

	clock  Clock
	logger *log.Logger
}

// New creates an editor from opts.
func New(opts Options) (*Editor, error) {
	if opts.Backend == nil {
		return nil, &InitError{Component: "backend", Err: errors.New("no backend")}
	}

	cfg := config.Defaults()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	e := &Editor{
		modes:   mode.NewManager(),
		queue:   opts.Queue,
		backend: opts.Backend,
		clock:   opts.Clock,
		logger:  opts.Logger,
		keymap:  opts.Keymap,
		dirty:   true,
	}
	if e.logger == nil {
		e.logger = log.Null()
	}
	e.logger = e.logger.WithComponent("editor")
	if e.clock == nil {
		e.clock = time.Now
	}
	if e.queue == nil {
		e.queue = source.NewQueue(cfg.Input.QueueSize)
	}

	if e.keymap == nil {
		e.keymap = keymap.New()
		if err := e.keymap.BindAll(keymap.DefaultBindings()); err != nil {
			return nil, &InitError{Component: "keymap", Err: err}
		}
	}

	dc := dispatcher.DefaultConfig()
	dc.Logger = e.logger
	e.dispatcher = dispatcher.New(newActionRegistry(), e, dc)
	if err := e.dispatcher.Validate(e.keymap.Actions()); err != nil {
		return nil, &InitError{Component: "keymap", Err: fmt.Errorf("%w: %w", ErrUnknownAction, err)}
	}

	e.resolver = keymap.NewResolver(e.keymap, e, keymap.WithTimeout(cfg.Input.KeyTimeout))

	e.gutter = gutter.New(cfg.GutterConfig())
	e.renderer = renderer.New(e.backend, e.gutter, renderer.WithBannerColor(cfg.BannerColor()))

	width, height := e.backend.Size()
	e.viewport = viewport.New(width, height, e.gutter.Width())

	e.modes.OnChange(e.onModeChange)

	e.doc = NewScratchDocument()
	if opts.File != "" {
		if err := e.Load(opts.File); err != nil {
			// The name stays associated so :w can still create the file.
			e.doc.Path = opts.File
			e.SetBanner(err.Error())
		}
	}

	e.logger.Debug("editor created", "file", opts.File, "width", width, "height", height)
	return e, nil
}

// Mode returns the active mode.
func (e *Editor) Mode() mode.Mode {
	return e.modes.Current()
}

// Run executes the named action once.
func (e *Editor) Run(action string) error {
	return e.dispatcher.Run(action)
}

// SetMode switches the active mode.
func (e *Editor) SetMode(m mode.Mode) error {
	return e.modes.Switch(m)
}

// onModeChange keeps the command line empty outside Command mode and the
// cursor visible when the prompt row appears or disappears.
func (e *Editor) onModeChange(from, to mode.Mode) {
	if from == mode.Command {
		e.command = ""
	}
	e.follow()
	e.dirty = true
	e.logger.Debug("mode changed", "from", from, "to", to)
}

// Document returns the edited document.
func (e *Editor) Document() *Document {
	return e.doc
}

// Buffer returns the edited buffer.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.doc.Buffer
}

// Cursor returns the cursor position.
func (e *Editor) Cursor() cursor.Cursor {
	return e.cursor
}

// Viewport returns the viewport.
func (e *Editor) Viewport() *viewport.Viewport {
	return e.viewport
}

// Keymap returns the bindings. Bindings added later take effect on the
// next key.
func (e *Editor) Keymap() *keymap.Keymap {
	return e.keymap
}

// Queue returns the event queue the input source should feed.
func (e *Editor) Queue() *source.Queue {
	return e.queue
}

// Command returns the command line being edited.
func (e *Editor) Command() string {
	return e.command
}

// Banner returns the message shown below the text, or "".
func (e *Editor) Banner() string {
	return e.banner
}

// SetBanner shows msg until it is cleared. Multi-line messages take one
// row per line.
func (e *Editor) SetBanner(msg string) {
	e.banner = msg
	e.follow()
	e.dirty = true
}

// ClearBanner removes the banner.
func (e *Editor) ClearBanner() {
	e.SetBanner("")
}

// Stop ends the main loop at its next iteration.
func (e *Editor) Stop() {
	e.stop = true
}

// Stopped reports whether Stop was called.
func (e *Editor) Stopped() bool {
	return e.stop
}

// Dirty reports whether a redraw is pending.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// MoveBy moves the cursor relative to its position and scrolls to it.
func (e *Editor) MoveBy(dx, dy int) {
	e.cursor.MoveBy(dx, dy, e.doc.Buffer)
	e.follow()
}

// MoveX moves the cursor to column col of its row and scrolls to it.
func (e *Editor) MoveX(col int) {
	e.cursor.MoveX(col, e.doc.Buffer)
	e.follow()
}

// MoveY moves the cursor to row and scrolls to it.
func (e *Editor) MoveY(row int) {
	e.cursor.MoveY(row, e.doc.Buffer)
	e.follow()
}

// follow scrolls the viewport so the cursor is inside the text window.
// The gutter is resized first since a change in line count can widen it.
func (e *Editor) follow() {
	if e.viewport == nil {
		return
	}
	e.renderer.Fit(e.doc.Buffer, e.viewport)
	reserved := renderer.Reserved(e.banner, e.Mode())
	e.viewport.Follow(e.cursor.Col, e.cursor.Row, reserved)
}

// Resize adapts the viewport to a new terminal size.
func (e *Editor) Resize(width, height int) {
	e.viewport.Resize(width, height)
	e.follow()
	e.dirty = true
}

// Load replaces the document with the contents of path. A missing file
// gives an empty document associated with path.
func (e *Editor) Load(path string) error {
	doc, err := OpenDocument(path)
	if err != nil {
		e.logger.Warn("load failed", "path", path, "error", err)
		return err
	}

	e.doc = doc
	e.cursor = cursor.Cursor{}
	e.resolver.Reset()
	e.viewport.SetOffset(0, 0)
	e.follow()
	e.dirty = true
	e.logger.Info("loaded", "path", path, "lines", doc.Buffer.Len())
	return nil
}

// Save writes the document to path, or to its associated file when path
// is empty.
func (e *Editor) Save(path string) error {
	if err := e.doc.SaveAs(path); err != nil {
		if errors.Is(err, ErrNoFilename) {
			return NewOperationError("write", "", err)
		}
		e.logger.Warn("save failed", "path", path, "error", err)
		return err
	}
	e.logger.Info("saved", "path", e.doc.Path, "lines", e.doc.Buffer.Len())
	return nil
}

// View returns everything the next frame shows.
func (e *Editor) View() renderer.View {
	return renderer.View{
		Lines:     e.doc.Buffer,
		Viewport:  e.viewport,
		CursorCol: e.cursor.Col,
		CursorRow: e.cursor.Row,
		Mode:      e.Mode(),
		Command:   e.command,
		Banner:    e.banner,
		Pending:   e.resolver.PendingKeys(),
	}
}

// Render draws a frame and clears the dirty flag.
func (e *Editor) Render() {
	e.renderer.Render(e.View())
	e.dirty = false
}
