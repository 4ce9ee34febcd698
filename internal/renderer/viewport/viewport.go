// Package viewport tracks which part of the buffer is on screen.
//
// The text window is the terminal minus the gutter columns on the left
// and any rows reserved at the bottom for the banner and command prompt.
// Follow shifts the offset by the smallest amount that keeps the cursor
// inside that window; each axis scrolls independently.
package viewport

// Viewport represents the visible portion of the buffer.
type Viewport struct {
	// Position in buffer (first visible row and column)
	offsetX int
	offsetY int

	// Size in screen cells
	width  int
	height int

	gutter int
}

// New creates a viewport for a terminal of the given size with gutter
// columns reserved on the left.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func New(width, height, gutter int) *Viewport {
	v := &Viewport{gutter: max(gutter, 0)}
	v.Resize(width, height)
	return v
}

// Width returns the terminal width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the terminal height.
func (v *Viewport) Height() int {
	return v.height
}

// GutterWidth returns the number of columns left of the text.
func (v *Viewport) GutterWidth() int {
	return v.gutter
}

// SetGutterWidth changes the number of columns left of the text.
func (v *Viewport) SetGutterWidth(gutter int) {
	v.gutter = max(gutter, 0)
}

// Offset returns the first visible column and row.
func (v *Viewport) Offset() (x, y int) {
	return v.offsetX, v.offsetY
}

// SetOffset sets the scroll position. Negative values become 0.
func (v *Viewport) SetOffset(x, y int) {
	v.offsetX = max(x, 0)
	v.offsetY = max(y, 0)
}

// Resize updates the terminal size.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// TextRows returns how many buffer rows fit above reserved rows.
// At least one row is always available.
func (v *Viewport) TextRows(reserved int) int {
	return max(v.height-max(reserved, 0), 1)
}

// TextColumns returns how many buffer columns fit right of the gutter.
func (v *Viewport) TextColumns() int {
	return max(v.width-v.gutter, 1)
}

// Follow scrolls minimally so that (col, row) is inside the text window.
// It reports whether the offset changed.
func (v *Viewport) Follow(col, row, reserved int) bool {
	x, y := v.offsetX, v.offsetY

	rows := v.TextRows(reserved)
	if row < v.offsetY {
		v.offsetY = row
	} else if row >= v.offsetY+rows {
		v.offsetY = row - rows + 1
	}

	cols := v.TextColumns()
	if col < v.offsetX {
		v.offsetX = col
	} else if col >= v.offsetX+cols {
		v.offsetX = col - cols + 1
	}

	v.offsetX = max(v.offsetX, 0)
	v.offsetY = max(v.offsetY, 0)
	return x != v.offsetX || y != v.offsetY
}

// BufferToScreen converts buffer coordinates to a terminal cell,
// accounting for the offset and the gutter.
func (v *Viewport) BufferToScreen(col, row int) (x, y int) {
	return col - v.offsetX + v.gutter, row - v.offsetY
}
