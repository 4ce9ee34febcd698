// Package cursor provides the editor cursor and its sticky column.
//
// A Cursor holds a live position (Col, Row) and a preferred column,
// MaxCol. Horizontal moves and absolute column jumps set MaxCol; vertical
// moves leave it alone, so moving through a short line and back onto a
// long one returns to the column the user was on.
//
// After every move the position is clamped against the lines it moves
// over: Row into [0, Len()-1] and Col into [0, min(MaxCol, len(Line(Row)))].
// Columns are byte offsets, but never land inside a multi-byte rune:
// horizontal moves step over the whole rune and every other move falls
// back to its first byte.
package cursor
