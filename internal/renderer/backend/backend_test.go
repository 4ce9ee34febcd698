package backend

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/chord/internal/input/key"
	"github.com/dshills/chord/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	_ = b.Init()

	cell := core.NewStyledCell('X', core.DefaultStyle().WithForeground(core.ColorRed))
	b.SetCell(10, 5, cell)

	got := b.GetCell(10, 5)
	if !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	empty := b.GetCell(-1, 0)
	if !empty.Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendClearAndRow(t *testing.T) {
	b := NewNullBackend(10, 3)
	_ = b.Init()

	for i, r := range "hello" {
		b.SetCell(i, 1, core.NewCell(r))
	}
	if got := b.Row(1); got != "hello" {
		t.Errorf("Row(1) = %q, want %q", got, "hello")
	}

	b.Clear()
	if got := b.Row(1); got != "" {
		t.Errorf("Row(1) after Clear = %q, want empty", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.ShowCursor(3, 4)
	b.SetCursorStyle(CursorBar)

	x, y, visible := b.CursorPosition()
	if x != 3 || y != 4 || !visible {
		t.Errorf("CursorPosition() = (%d, %d, %v), want (3, 4, true)", x, y, visible)
	}
	if b.CursorStyleValue() != CursorBar {
		t.Errorf("CursorStyleValue() = %v, want %v", b.CursorStyleValue(), CursorBar)
	}

	b.HideCursor()
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendPollEvent(t *testing.T) {
	b := NewNullBackend(80, 24)

	if _, ok := b.PollEvent(time.Millisecond); ok {
		t.Error("PollEvent on an empty queue should time out")
	}

	want := KeyEvent(key.NewRuneEvent('a', key.ModNone))
	b.PostEvent(want)

	got, ok := b.PollEvent(time.Second)
	if !ok {
		t.Fatal("PollEvent should return the posted event")
	}
	if got != want {
		t.Errorf("PollEvent() = %+v, want %+v", got, want)
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Resize(100, 30)

	if w, h := b.Size(); w != 100 || h != 30 {
		t.Errorf("Size() = (%d, %d), want (100, 30)", w, h)
	}

	ev, ok := b.PollEvent(time.Second)
	if !ok || ev.Type != EventResize || ev.Width != 100 || ev.Height != 30 {
		t.Errorf("resize event = %+v, %v", ev, ok)
	}
}

func TestGuardReleasesOnce(t *testing.T) {
	b := NewNullBackend(80, 24)

	g, err := Acquire(b)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if g.Backend() != b {
		t.Error("Backend() should return the guarded backend")
	}

	g.Release()
	g.Release()
	if b.ShutdownCount() != 1 {
		t.Errorf("ShutdownCount() = %d, want 1", b.ShutdownCount())
	}

	var nilGuard *Guard
	nilGuard.Release()
}

func TestGuardReleasesOnPanic(t *testing.T) {
	b := NewNullBackend(80, 24)

	func() {
		defer func() { _ = recover() }()

		g, err := Acquire(b)
		if err != nil {
			t.Fatalf("Acquire() error = %v", err)
		}
		defer g.Release()

		panic("boom")
	}()

	if b.ShutdownCount() != 1 {
		t.Errorf("ShutdownCount() = %d after panic, want 1", b.ShutdownCount())
	}
}

type failingBackend struct {
	*NullBackend
}

func (failingBackend) Init() error { return errors.New("no tty") }

func TestAcquireFailure(t *testing.T) {
	g, err := Acquire(failingBackend{NewNullBackend(1, 1)})
	if err == nil {
		t.Fatal("Acquire should fail when Init fails")
	}
	if g != nil {
		t.Error("guard should be nil on failure")
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), key.NewRuneEvent('a', key.ModNone)},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), key.NewRuneEvent('A', key.ModNone)},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), key.NewRuneEvent('x', key.ModAlt)},
		{"meta rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModMeta), key.NewRuneEvent('x', key.ModAlt)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEnter, key.ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEscape, key.ModNone)},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyTab, key.ModNone)},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyTab, key.ModShift)},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyBackspace, key.ModNone)},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyDelete, key.ModNone)},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyUp, key.ModNone)},
		{"f5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), key.NewSpecialEvent(key.FunctionKey(5), key.ModNone)},
		{"ctrl-w", tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl), key.NewRuneEvent('w', key.ModCtrl)},
		{"ctrl-rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModCtrl), key.NewRuneEvent('q', key.ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKey(tt.ev)
			if !ok {
				t.Fatalf("convertKey(%s) not decoded", tt.name)
			}
			if got != tt.want {
				t.Errorf("convertKey(%s) = %#v, want %#v", tt.name, got, tt.want)
			}
		})
	}
}

func TestConvertStyle(t *testing.T) {
	s := convertStyle(core.NewStyle(core.ColorRed).Italic().Bold())
	fg, _, attrs := s.Decompose()

	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("foreground = %v, want red", fg)
	}
	if attrs&tcell.AttrItalic == 0 || attrs&tcell.AttrBold == 0 {
		t.Errorf("attributes = %v, want bold|italic", attrs)
	}

	if convertStyle(core.DefaultStyle()) != tcell.StyleDefault {
		t.Error("default style should map to tcell.StyleDefault")
	}
}

func TestTerminalSimulation(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	term := NewTerminalWithScreen(screen)

	g, err := Acquire(term)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	defer g.Release()

	screen.SetSize(20, 5)
	term.SetCell(0, 0, core.NewCell('x'))
	term.Show()

	mainc, _, _, _ := screen.GetContent(0, 0) //nolint:staticcheck // GetContent is the correct API
	if mainc != 'x' {
		t.Errorf("cell (0,0) = %q, want 'x'", mainc)
	}

	screen.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ev, ok := term.PollEvent(50 * time.Millisecond)
		if !ok || ev.Type != EventKey {
			continue
		}
		if ev.Key != key.NewRuneEvent('j', key.ModNone) {
			t.Errorf("key = %#v, want j", ev.Key)
		}
		return
	}
	t.Fatal("injected key was not delivered")
}
