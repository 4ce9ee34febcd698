package cursor

import (
	"fmt"
	"unicode/utf8"
)

// Lines is the view of a buffer a cursor is clamped against.
// *buffer.Buffer satisfies it.
type Lines interface {
	Len() int
	Line(row int) string
}

// Cursor is a byte-column position in a line buffer. Columns always sit
// on the first byte of a UTF-8 sequence or one past the end of the line.
type Cursor struct {
	Col    int
	Row    int
	MaxCol int
}

// MoveBy shifts the cursor by (dx, dy), saturating at zero. A nonzero dx
// sets the sticky column to the new column; a column inside a multi-byte
// rune moves on to the next rune boundary in the direction of dx.
func (c *Cursor) MoveBy(dx, dy int, lines Lines) {
	if dy != 0 {
		c.Row = saturatingAdd(c.Row, dy)
	}
	if dx != 0 {
		c.clampRow(lines)
		c.MaxCol = snap(lines.Line(c.Row), saturatingAdd(c.Col, dx), dx > 0)
	}
	c.Clamp(lines)
}

// MoveX jumps to column col and makes it the sticky column. A column
// inside a multi-byte rune becomes the start of that rune.
func (c *Cursor) MoveX(col int, lines Lines) {
	c.clampRow(lines)
	c.MaxCol = snap(lines.Line(c.Row), max(col, 0), false)
	c.Clamp(lines)
}

// MoveY jumps to row. The sticky column is kept.
func (c *Cursor) MoveY(row int, lines Lines) {
	c.Row = max(row, 0)
	c.Clamp(lines)
}

// Clamp pulls the cursor back inside lines.
func (c *Cursor) Clamp(lines Lines) {
	c.clampRow(lines)
	line := lines.Line(c.Row)
	c.Col = snap(line, max(min(c.MaxCol, len(line)), 0), false)
}

func (c *Cursor) clampRow(lines Lines) {
	n := lines.Len()
	if c.Row >= n {
		c.Row = max(n-1, 0)
	}
	if c.Row < 0 {
		c.Row = 0
	}
}

// snap moves col off a UTF-8 continuation byte of line, forward or back.
// Columns at or past the end of line are returned unchanged.
func snap(line string, col int, forward bool) int {
	for col > 0 && col < len(line) && !utf8.RuneStart(line[col]) {
		if forward {
			col++
		} else {
			col--
		}
	}
	return col
}

// String returns "row:col" with 1-based numbers.
func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Row+1, c.Col+1)
}

func saturatingAdd(pos, delta int) int {
	if delta < 0 && -delta > pos {
		return 0
	}
	return pos + delta
}
