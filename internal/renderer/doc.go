// Package renderer paints the editor onto a terminal backend.
//
// A frame is drawn top to bottom:
//
//	┌──────────────────────────────┐
//	│ gutter │ text rows           │  viewport.TextRows(reserved)
//	│   ~    │ filler rows         │
//	├──────────────────────────────┤
//	│ banner rows (italic)         │  statusline
//	│ :command (bold)              │
//	└──────────────────────────────┘
//
// The editor hands the renderer a View snapshot whenever it is dirty;
// the renderer never reads editor state on its own.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, gutter.New(gutter.DefaultConfig()))
//	r.Render(view)
package renderer
