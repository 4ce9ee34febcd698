package app

import (
	"unicode/utf8"

	"github.com/dshills/chord/internal/input/key"
	"github.com/dshills/chord/internal/input/mode"
)

// fallback handles a key no binding consumed. Only Command and Insert
// mode edit text; elsewhere the key is dropped.
func (e *Editor) fallback(ev key.Event) error {
	switch e.Mode() {
	case mode.Command:
		e.editCommand(ev)
		return nil
	case mode.Insert:
		return e.editText(ev)
	default:
		return nil
	}
}

// editCommand edits the command line.
func (e *Editor) editCommand(ev key.Event) {
	switch {
	case ev.IsChar():
		e.command += string(ev.Rune)
	case ev.Key == key.KeyBackspace:
		_, size := utf8.DecodeLastRuneInString(e.command)
		e.command = e.command[:len(e.command)-size]
	}
}

// editText applies a text edit at the cursor.
func (e *Editor) editText(ev key.Event) error {
	switch {
	case ev.IsChar():
		return e.insertRune(ev.Rune)
	case ev.Key == key.KeyEnter:
		return e.splitLine()
	case ev.Key == key.KeyBackspace:
		return e.backspace()
	case ev.Key == key.KeyDelete:
		return e.deleteForward()
	default:
		return nil
	}
}

func (e *Editor) insertRune(r rune) error {
	text := string(r)
	if err := e.doc.Buffer.Insert(e.cursor.Row, e.cursor.Col, text); err != nil {
		return err
	}
	e.doc.SetModified(true)
	e.MoveBy(len(text), 0)
	return nil
}

// splitLine breaks the line at the cursor and moves to the start of the
// new line.
func (e *Editor) splitLine() error {
	row := e.cursor.Row
	if err := e.doc.Buffer.Split(row, e.cursor.Col); err != nil {
		return err
	}
	e.doc.SetModified(true)
	e.MoveY(row + 1)
	e.MoveX(0)
	return nil
}

// backspace removes the character before the cursor. At column 0 it joins
// the line onto the previous one and leaves the cursor at the join point.
func (e *Editor) backspace() error {
	b := e.doc.Buffer
	row, col := e.cursor.Row, e.cursor.Col

	if col > 0 {
		_, size := utf8.DecodeLastRuneInString(b.Line(row)[:col])
		if err := b.Delete(row, col-size, col); err != nil {
			return err
		}
		e.doc.SetModified(true)
		e.MoveBy(-size, 0)
		return nil
	}

	if row == 0 {
		return nil
	}
	join := b.LineLen(row - 1)
	if err := b.JoinNext(row - 1); err != nil {
		return err
	}
	e.doc.SetModified(true)
	e.MoveY(row - 1)
	e.MoveX(join)
	return nil
}

// deleteForward removes the character at the cursor. At the end of a line
// it joins the next line onto this one.
func (e *Editor) deleteForward() error {
	b := e.doc.Buffer
	row, col := e.cursor.Row, e.cursor.Col
	line := b.Line(row)

	if col < len(line) {
		_, size := utf8.DecodeRuneInString(line[col:])
		if err := b.Delete(row, col, col+size); err != nil {
			return err
		}
		e.doc.SetModified(true)
		return nil
	}

	if row+1 >= b.Len() {
		return nil
	}
	if err := b.JoinNext(row); err != nil {
		return err
	}
	e.doc.SetModified(true)
	return nil
}
