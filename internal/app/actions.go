package app

import (
	"unicode/utf8"

	"github.com/dshills/chord/internal/dispatcher"
	"github.com/dshills/chord/internal/input/keymap"
	"github.com/dshills/chord/internal/input/mode"
)

// builtinActions maps every action name the default bindings use to its
// implementation.
var builtinActions = map[string]func(*Editor) error{
	keymap.ActionMoveLeft:        func(e *Editor) error { e.MoveBy(-1, 0); return nil },
	keymap.ActionMoveDown:        func(e *Editor) error { e.MoveBy(0, 1); return nil },
	keymap.ActionMoveUp:          func(e *Editor) error { e.MoveBy(0, -1); return nil },
	keymap.ActionMoveRight:       func(e *Editor) error { e.MoveBy(1, 0); return nil },
	keymap.ActionMoveLineEnd:     moveLineEnd,
	keymap.ActionFirstNonBlank:   moveFirstNonBlank,
	keymap.ActionMoveFirstLine:   func(e *Editor) error { e.MoveY(0); return nil },
	keymap.ActionMoveLastLine:    func(e *Editor) error { e.MoveY(e.doc.Buffer.Len() - 1); return nil },
	keymap.ActionModeNormal:      enterNormal,
	keymap.ActionModeInsert:      func(e *Editor) error { return e.SetMode(mode.Insert) },
	keymap.ActionModeAppend:      appendAfterCursor,
	keymap.ActionModeAppendEnd:   appendLineEnd,
	keymap.ActionModeInsertStart: insertLineStart,
	keymap.ActionModeCommand:     enterCommand,
	keymap.ActionOpenLineBelow:   openLineBelow,
	keymap.ActionOpenLineAbove:   openLineAbove,
	keymap.ActionDeleteChar:      deleteChar,
	keymap.ActionDeleteLine:      deleteLine,
	keymap.ActionBannerClear:     func(e *Editor) error { e.ClearBanner(); return nil },
	keymap.ActionCommandExecute:  (*Editor).executeCommand,
	keymap.ActionQuit:            func(e *Editor) error { e.Stop(); return nil },
}

// newActionRegistry returns a registry holding the builtin actions.
func newActionRegistry() *dispatcher.Registry[*Editor] {
	r := dispatcher.NewRegistry[*Editor]()
	for name, fn := range builtinActions {
		// Names and functions are static and non-empty.
		_ = r.RegisterFunc(name, fn)
	}
	return r
}

// moveLineEnd puts the cursor on the last rune of the line, or column 0
// on an empty line.
func moveLineEnd(e *Editor) error {
	n := e.doc.Buffer.LineLen(e.cursor.Row)
	e.MoveX(max(n-1, 0))
	return nil
}

// moveFirstNonBlank leaves the cursor alone on blank lines.
func moveFirstNonBlank(e *Editor) error {
	row := e.cursor.Row
	col := e.doc.Buffer.FirstNonBlank(row)
	if col < e.doc.Buffer.LineLen(row) {
		e.MoveX(col)
	}
	return nil
}

// enterNormal also drops a half-typed count or sequence.
func enterNormal(e *Editor) error {
	e.command = ""
	e.resolver.Reset()
	return e.SetMode(mode.Normal)
}

func enterCommand(e *Editor) error {
	e.command = ""
	return e.SetMode(mode.Command)
}

func appendAfterCursor(e *Editor) error {
	e.MoveBy(1, 0)
	return e.SetMode(mode.Insert)
}

func appendLineEnd(e *Editor) error {
	e.MoveX(e.doc.Buffer.LineLen(e.cursor.Row))
	return e.SetMode(mode.Insert)
}

func insertLineStart(e *Editor) error {
	e.MoveX(e.doc.Buffer.FirstNonBlank(e.cursor.Row))
	return e.SetMode(mode.Insert)
}

func openLineBelow(e *Editor) error {
	if err := e.doc.Buffer.InsertLine(e.cursor.Row+1, ""); err != nil {
		return err
	}
	e.doc.SetModified(true)
	e.MoveBy(0, 1)
	return e.SetMode(mode.Insert)
}

func openLineAbove(e *Editor) error {
	if err := e.doc.Buffer.InsertLine(e.cursor.Row, ""); err != nil {
		return err
	}
	e.doc.SetModified(true)
	e.MoveBy(0, 0)
	return e.SetMode(mode.Insert)
}

// deleteChar removes the character under the cursor. It does nothing at
// the end of a line.
func deleteChar(e *Editor) error {
	row, col := e.cursor.Row, e.cursor.Col
	line := e.doc.Buffer.Line(row)
	if col >= len(line) {
		return nil
	}
	_, size := utf8.DecodeRuneInString(line[col:])
	if err := e.doc.Buffer.Delete(row, col, col+size); err != nil {
		return err
	}
	e.doc.SetModified(true)
	e.MoveBy(0, 0)
	return nil
}

func deleteLine(e *Editor) error {
	if err := e.doc.Buffer.DeleteLine(e.cursor.Row); err != nil {
		return err
	}
	e.doc.SetModified(true)
	e.MoveBy(0, 0)
	return nil
}
