// Package statusline provides the banner and command line UI components.
package statusline

import (
	"strings"

	"github.com/dshills/chord/internal/renderer/backend"
	"github.com/dshills/chord/internal/renderer/core"
)

// StatusLine renders the rows below the text window: the banner, one
// row per message line, and the command prompt while in Command mode.
type StatusLine struct {
	// Message display
	banner      []string
	bannerStyle core.Style

	// Command line state
	commandActive bool   // In command mode
	commandPrompt rune   // Prompt character (usually ':')
	commandBuffer string // Command being typed
	commandStyle  core.Style

	// Dimensions
	width int
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{
		commandPrompt: ':',
		bannerStyle:   core.NewStyle(core.ColorRed).Italic(),
		commandStyle:  core.DefaultStyle().Bold(),
	}
}

// SetBannerStyle sets the style of banner rows.
func (s *StatusLine) SetBannerStyle(style core.Style) {
	s.bannerStyle = style
}

// SetBanner displays msg, one row per line. An empty msg clears it.
func (s *StatusLine) SetBanner(msg string) {
	if msg == "" {
		s.banner = nil
		return
	}
	s.banner = strings.Split(msg, "\n")
}

// SetCommandMode activates command line display.
func (s *StatusLine) SetCommandMode(active bool, buffer string) {
	s.commandActive = active
	s.commandBuffer = buffer
	if !active {
		s.commandBuffer = ""
	}
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Rows returns how many rows a banner and an optional prompt reserve.
func Rows(banner string, command bool) int {
	n := 0
	if banner != "" {
		n = strings.Count(banner, "\n") + 1
	}
	if command {
		n++
	}
	return n
}

// Render draws the status line starting at row top. When the command
// line is active it returns the cursor cell after the typed text.
func (s *StatusLine) Render(b backend.Backend, top int) (cursorX, cursorY int, ok bool) {
	row := top
	for _, line := range s.banner {
		s.renderLine(b, row, line, s.bannerStyle)
		row++
	}

	if !s.commandActive {
		return 0, 0, false
	}
	s.renderLine(b, row, string(s.commandPrompt)+s.commandBuffer, s.commandStyle)
	return len(s.commandBuffer) + 1, row, true
}

// RenderPending draws keys right-aligned on row, over whatever the row
// holds. Nothing is drawn for an empty keys.
func (s *StatusLine) RenderPending(b backend.Backend, row int, keys string) {
	if keys == "" {
		return
	}
	runes := []rune(keys)
	x := max(s.width-len(runes), 0)
	for _, r := range runes {
		if x >= s.width {
			break
		}
		b.SetCell(x, row, core.NewStyledCell(r, s.commandStyle))
		x++
	}
}

// renderLine clears row and draws text in style.
func (s *StatusLine) renderLine(b backend.Backend, row int, text string, style core.Style) {
	empty := core.EmptyCell()
	for x := 0; x < s.width; x++ {
		b.SetCell(x, row, empty)
	}

	col := 0
	for _, r := range text {
		if col >= s.width {
			break
		}
		b.SetCell(col, row, core.NewStyledCell(r, style))
		col++
	}
}
