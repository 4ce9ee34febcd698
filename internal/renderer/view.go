package renderer

import (
	"github.com/dshills/chord/internal/input/mode"
	"github.com/dshills/chord/internal/renderer/statusline"
	"github.com/dshills/chord/internal/renderer/viewport"
)

// Lines provides read access to buffer content.
// *buffer.Buffer satisfies it.
type Lines interface {
	// Len returns the number of lines.
	Len() int

	// Line returns the text of a line (0-indexed).
	Line(row int) string
}

// View is everything one frame shows.
type View struct {
	Lines    Lines
	Viewport *viewport.Viewport

	// CursorCol and CursorRow are the buffer position of the cursor.
	CursorCol int
	CursorRow int

	Mode    mode.Mode
	Command string
	Banner  string

	// Pending is the typed part of an unfinished key sequence, including
	// a repeat count. It is shown at the right end of the last row.
	Pending string
}

// Reserved returns the rows below the text window taken by the banner
// and the command prompt.
func (v View) Reserved() int {
	return Reserved(v.Banner, v.Mode)
}

// Reserved returns the rows below the text window taken by banner and,
// in Command mode, the prompt.
func Reserved(banner string, m mode.Mode) int {
	return statusline.Rows(banner, m == mode.Command)
}
