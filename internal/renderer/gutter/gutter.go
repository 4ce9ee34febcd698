// Package gutter formats the line number column left of the text.
//
// Each gutter cell is a right-justified number followed by a two-space
// separator. In the default hybrid mode the cursor row shows its 1-based
// line number and every other row shows its distance from the cursor.
// Rows past the end of the buffer show the filler glyph instead.
package gutter

// Separator is printed between the number and the text.
const Separator = "  "

// Defaults for Config.
const (
	DefaultNumberWidth = 4
	DefaultFiller      = "~"
)

// Config holds gutter configuration.
type Config struct {
	// Mode selects absolute, relative or hybrid numbering.
	Mode LineNumberMode

	// NumberWidth is the column count the number is justified in.
	NumberWidth int

	// Filler marks rows past the end of the buffer.
	Filler string
}

// DefaultConfig returns the default gutter configuration.
func DefaultConfig() Config {
	return Config{
		Mode:        LineNumberHybrid,
		NumberWidth: DefaultNumberWidth,
		Filler:      DefaultFiller,
	}
}

// Gutter renders gutter cells.
type Gutter struct {
	config Config

	// width is the number column in use: the configured width, widened
	// by Fit when line numbers need more digits.
	width int
}

// New creates a gutter. Zero fields of cfg take their defaults.
func New(cfg Config) *Gutter {
	if cfg.NumberWidth <= 0 {
		cfg.NumberWidth = DefaultNumberWidth
	}
	if cfg.Filler == "" {
		cfg.Filler = DefaultFiller
	}
	return &Gutter{config: cfg, width: cfg.NumberWidth}
}

// Config returns the gutter configuration.
func (g *Gutter) Config() Config {
	return g.config
}

// Width returns the total gutter width including the separator.
func (g *Gutter) Width() int {
	return g.width + len(Separator)
}

// Fit sizes the number column for a buffer of lines lines: the configured
// width, or more when the largest line number needs more digits. It
// reports whether the width changed.
func (g *Gutter) Fit(lines int) bool {
	w := max(g.config.NumberWidth, Digits(lines))
	if w == g.width {
		return false
	}
	g.width = w
	return true
}

// Format returns the gutter cell for row with the cursor on cursorRow.
func (g *Gutter) Format(row, cursorRow int) string {
	return FormatNumber(g.config.Mode.Number(row, cursorRow), g.width) + Separator
}

// Filler returns the gutter cell for a row past the end of the buffer.
func (g *Gutter) Filler() string {
	return PadLeft(g.config.Filler, g.width) + Separator
}
