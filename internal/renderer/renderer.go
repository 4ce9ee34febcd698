package renderer

import (
	"github.com/dshills/chord/internal/input/mode"
	"github.com/dshills/chord/internal/renderer/backend"
	"github.com/dshills/chord/internal/renderer/core"
	"github.com/dshills/chord/internal/renderer/gutter"
	"github.com/dshills/chord/internal/renderer/statusline"
	"github.com/dshills/chord/internal/renderer/viewport"
)

// Options configures the renderer.
type Options struct {
	GutterStyle core.Style
	FillerStyle core.Style
	BannerStyle core.Style
}

// DefaultOptions returns the default styles.
func DefaultOptions() Options {
	return Options{
		GutterStyle: core.DefaultStyle().Dim(),
		FillerStyle: core.NewStyle(core.ColorGray),
		BannerStyle: core.NewStyle(core.ColorRed).Italic(),
	}
}

// Option configures a Renderer.
type Option func(*Options)

// WithBannerColor sets the banner foreground.
func WithBannerColor(c core.Color) Option {
	return func(o *Options) {
		o.BannerStyle = o.BannerStyle.WithForeground(c)
	}
}

// Renderer draws frames onto a backend.
type Renderer struct {
	backend backend.Backend
	gutter  *gutter.Gutter
	status  *statusline.StatusLine
	opts    Options

	frameCount uint64
}

// New creates a renderer drawing onto b.
func New(b backend.Backend, g *gutter.Gutter, opts ...Option) *Renderer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	status := statusline.New()
	status.SetBannerStyle(o.BannerStyle)
	return &Renderer{
		backend: b,
		gutter:  g,
		status:  status,
		opts:    o,
	}
}

// Fit widens the gutter when lines has more line numbers than its
// configured width holds, and gives vp the resulting gutter width.
func (r *Renderer) Fit(lines Lines, vp *viewport.Viewport) {
	r.gutter.Fit(lines.Len())
	vp.SetGutterWidth(r.gutter.Width())
}

// FrameCount returns how many frames have been drawn.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// Render draws one frame of v and flushes it.
func (r *Renderer) Render(v View) {
	r.Fit(v.Lines, v.Viewport)
	width, height := v.Viewport.Width(), v.Viewport.Height()

	r.backend.Clear()

	rows := v.Viewport.TextRows(v.Reserved())
	_, offsetY := v.Viewport.Offset()
	for y := 0; y < rows && y < height; y++ {
		row := offsetY + y
		if row < v.Lines.Len() {
			r.renderLine(v, row, y, width)
		} else {
			r.drawText(0, y, width, r.gutter.Filler(), r.opts.FillerStyle)
		}
	}

	r.status.Resize(width)
	r.status.SetBanner(v.Banner)
	r.status.SetCommandMode(v.Mode == mode.Command, v.Command)
	cx, cy, onPrompt := r.status.Render(r.backend, rows)
	r.status.RenderPending(r.backend, height-1, v.Pending)

	r.renderCursor(v, rows, cx, cy, onPrompt)

	r.backend.Show()
	r.frameCount++
}

// renderLine draws the gutter and visible slice of one buffer row.
func (r *Renderer) renderLine(v View, row, y, width int) {
	x := r.drawText(0, y, width, r.gutter.Format(row, v.CursorRow), r.opts.GutterStyle)

	offsetX, _ := v.Viewport.Offset()
	line := v.Lines.Line(row)
	if offsetX >= len(line) {
		return
	}
	end := min(offsetX+v.Viewport.TextColumns(), len(line))
	r.drawText(x, y, width, line[offsetX:end], core.DefaultStyle())
}

// drawText writes s from column x, clipped at width, and returns the
// column after the last cell written.
func (r *Renderer) drawText(x, y, width int, s string, style core.Style) int {
	for _, ch := range s {
		if x >= width {
			break
		}
		r.backend.SetCell(x, y, core.NewStyledCell(ch, style))
		x++
	}
	return x
}

// renderCursor places the terminal cursor for the active mode.
func (r *Renderer) renderCursor(v View, rows, promptX, promptY int, onPrompt bool) {
	r.backend.SetCursorStyle(cursorStyle(v.Mode))

	if onPrompt {
		r.backend.ShowCursor(promptX, promptY)
		return
	}

	x, y := v.Viewport.BufferToScreen(v.CursorCol, v.CursorRow)
	if y < 0 || y >= rows || x < v.Viewport.GutterWidth() || x >= v.Viewport.Width() {
		r.backend.HideCursor()
		return
	}
	r.backend.ShowCursor(x, y)
}

func cursorStyle(m mode.Mode) backend.CursorStyle {
	if m.CursorStyle() == mode.CursorBar {
		return backend.CursorBar
	}
	return backend.CursorBlock
}
