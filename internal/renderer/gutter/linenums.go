package gutter

import (
	"fmt"
	"strconv"
	"strings"
)

// LineNumberMode defines how line numbers are displayed.
type LineNumberMode uint8

const (
	// LineNumberHybrid shows absolute for current line, relative for others.
	LineNumberHybrid LineNumberMode = iota

	// LineNumberAbsolute shows absolute line numbers (1, 2, 3, ...).
	LineNumberAbsolute

	// LineNumberRelative shows relative line numbers from cursor.
	LineNumberRelative
)

// String returns the mode name used in configuration.
func (m LineNumberMode) String() string {
	switch m {
	case LineNumberHybrid:
		return "hybrid"
	case LineNumberAbsolute:
		return "absolute"
	case LineNumberRelative:
		return "relative"
	default:
		return "unknown"
	}
}

// ParseLineNumberMode parses a mode name.
func ParseLineNumberMode(s string) (LineNumberMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hybrid":
		return LineNumberHybrid, nil
	case "absolute":
		return LineNumberAbsolute, nil
	case "relative":
		return LineNumberRelative, nil
	default:
		return 0, fmt.Errorf("unknown line number mode %q", s)
	}
}

// Number returns the number shown for row when the cursor is on cursorRow.
// Rows are 0-based.
func (m LineNumberMode) Number(row, cursorRow int) int {
	switch m {
	case LineNumberAbsolute:
		return row + 1
	case LineNumberRelative:
		return absDiff(row, cursorRow)
	default:
		if row == cursorRow {
			return row + 1
		}
		return absDiff(row, cursorRow)
	}
}

// absDiff returns the absolute difference between two ints.
func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// PadLeft pads a string with spaces on the left to the specified width.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// Digits returns the number of decimal digits of n, at least 1.
func Digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// FormatNumber right-justifies n in width columns.
func FormatNumber(n, width int) string {
	return PadLeft(strconv.Itoa(n), width)
}
