package buffer

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by buffer operations.
var (
	ErrRowOutOfRange    = errors.New("row out of range")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrNoNextLine       = errors.New("no next line")
)

// Buffer is an ordered, never empty, list of lines.
type Buffer struct {
	lines []string
}

// New creates a buffer holding a single empty line.
func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// FromLines creates a buffer from lines. An empty slice yields one empty line.
func FromLines(lines []string) *Buffer {
	if len(lines) == 0 {
		return New()
	}
	cp := make([]string, len(lines))
	copy(cp, lines)
	return &Buffer{lines: cp}
}

// FromString splits s on "\n" into lines.
func FromString(s string) *Buffer {
	return FromLines(splitLines(s))
}

// Len returns the number of lines. It is always at least 1.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// LineLen returns the byte length of row, or 0 when row is out of range.
func (b *Buffer) LineLen(row int) int {
	return len(b.Line(row))
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	cp := make([]string, len(b.lines))
	copy(cp, b.lines)
	return cp
}

// Text returns the lines joined with "\n".
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// IsEmpty reports whether the buffer is a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && b.lines[0] == ""
}

func (b *Buffer) checkRow(row int) error {
	if row < 0 || row >= len(b.lines) {
		return fmt.Errorf("%w: %d of %d", ErrRowOutOfRange, row, len(b.lines))
	}
	return nil
}

func (b *Buffer) checkPos(row, col int) error {
	if err := b.checkRow(row); err != nil {
		return err
	}
	if col < 0 || col > len(b.lines[row]) {
		return fmt.Errorf("%w: %d:%d", ErrColumnOutOfRange, row, col)
	}
	return nil
}

// Insert inserts text at (row, col). text must not contain newlines;
// use Split to break a line.
func (b *Buffer) Insert(row, col int, text string) error {
	if err := b.checkPos(row, col); err != nil {
		return err
	}
	line := b.lines[row]
	b.lines[row] = line[:col] + text + line[col:]
	return nil
}

// Split breaks row at col. The tail becomes a new line below.
func (b *Buffer) Split(row, col int) error {
	if err := b.checkPos(row, col); err != nil {
		return err
	}
	line := b.lines[row]
	b.lines[row] = line[:col]
	b.insertLine(row+1, line[col:])
	return nil
}

// JoinNext appends row+1 onto row and removes row+1.
func (b *Buffer) JoinNext(row int) error {
	if err := b.checkRow(row); err != nil {
		return err
	}
	if row+1 >= len(b.lines) {
		return ErrNoNextLine
	}
	b.lines[row] += b.lines[row+1]
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	return nil
}

// Delete removes the bytes [start, end) of row.
func (b *Buffer) Delete(row, start, end int) error {
	if err := b.checkPos(row, start); err != nil {
		return err
	}
	if err := b.checkPos(row, end); err != nil {
		return err
	}
	if end < start {
		return fmt.Errorf("%w: [%d, %d)", ErrRangeInvalid, start, end)
	}
	line := b.lines[row]
	b.lines[row] = line[:start] + line[end:]
	return nil
}

// InsertLine inserts text as a new line at row. row may equal Len().
func (b *Buffer) InsertLine(row int, text string) error {
	if row < 0 || row > len(b.lines) {
		return fmt.Errorf("%w: %d of %d", ErrRowOutOfRange, row, len(b.lines))
	}
	b.insertLine(row, text)
	return nil
}

func (b *Buffer) insertLine(row int, text string) {
	b.lines = append(b.lines, "")
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = text
}

// DeleteLine removes row. Deleting the only line leaves one empty line.
func (b *Buffer) DeleteLine(row int) error {
	if err := b.checkRow(row); err != nil {
		return err
	}
	if len(b.lines) == 1 {
		b.lines[0] = ""
		return nil
	}
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return nil
}

// FirstNonBlank returns the column of the first byte of row that is not
// a space or tab, or the line length when there is none.
func (b *Buffer) FirstNonBlank(row int) int {
	line := b.Line(row)
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i
		}
	}
	return len(line)
}
