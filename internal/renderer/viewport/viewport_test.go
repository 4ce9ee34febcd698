package viewport

import (
	"testing"

	"pgregory.net/rapid"
)

func TestNew(t *testing.T) {
	v := New(80, 24, 6)

	if v.Width() != 80 || v.Height() != 24 {
		t.Errorf("size = (%d, %d), want (80, 24)", v.Width(), v.Height())
	}
	if v.GutterWidth() != 6 {
		t.Errorf("GutterWidth() = %d, want 6", v.GutterWidth())
	}
	if x, y := v.Offset(); x != 0 || y != 0 {
		t.Errorf("Offset() = (%d, %d), want origin", x, y)
	}
	if v.TextColumns() != 74 {
		t.Errorf("TextColumns() = %d, want 74", v.TextColumns())
	}
}

func TestResizeClampsToOne(t *testing.T) {
	v := New(0, -3, 6)
	if v.Width() != 1 || v.Height() != 1 {
		t.Errorf("size = (%d, %d), want (1, 1)", v.Width(), v.Height())
	}
	if v.TextRows(5) != 1 || v.TextColumns() != 1 {
		t.Error("text window should never be smaller than one cell")
	}
}

func TestFollowVertical(t *testing.T) {
	tests := []struct {
		name     string
		startY   int
		row      int
		reserved int
		wantY    int
		moved    bool
	}{
		{"visible", 0, 5, 0, 0, false},
		{"last visible row", 0, 9, 0, 0, false},
		{"one below", 0, 10, 0, 1, true},
		{"far below", 0, 50, 0, 41, true},
		{"above", 20, 3, 0, 3, true},
		{"reserved rows shrink window", 0, 8, 2, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(40, 10, 6)
			v.SetOffset(0, tt.startY)

			moved := v.Follow(0, tt.row, tt.reserved)
			if _, y := v.Offset(); y != tt.wantY {
				t.Errorf("offsetY = %d, want %d", y, tt.wantY)
			}
			if moved != tt.moved {
				t.Errorf("Follow() = %v, want %v", moved, tt.moved)
			}
		})
	}
}

func TestFollowHorizontal(t *testing.T) {
	v := New(16, 10, 6) // 10 text columns

	v.Follow(9, 0, 0)
	if x, _ := v.Offset(); x != 0 {
		t.Errorf("offsetX = %d, want 0", x)
	}

	v.Follow(10, 0, 0)
	if x, _ := v.Offset(); x != 1 {
		t.Errorf("offsetX = %d, want 1", x)
	}

	v.Follow(0, 0, 0)
	if x, _ := v.Offset(); x != 0 {
		t.Errorf("offsetX = %d, want 0 after moving back", x)
	}
}

func TestFollowAxesIndependent(t *testing.T) {
	v := New(16, 10, 6)
	v.Follow(30, 0, 0)
	v.Follow(30, 40, 0)

	x, y := v.Offset()
	if x != 21 || y != 31 {
		t.Errorf("Offset() = (%d, %d), want (21, 31)", x, y)
	}
}

func TestBufferToScreen(t *testing.T) {
	v := New(80, 24, 6)
	v.SetOffset(2, 10)

	x, y := v.BufferToScreen(5, 12)
	if x != 9 || y != 2 {
		t.Errorf("BufferToScreen(5, 12) = (%d, %d), want (9, 2)", x, y)
	}

	v.SetGutterWidth(8)
	if x, _ := v.BufferToScreen(5, 12); x != 11 {
		t.Errorf("BufferToScreen after SetGutterWidth(8) x = %d, want 11", x)
	}
	if v.TextColumns() != 72 {
		t.Errorf("TextColumns() = %d, want 72", v.TextColumns())
	}
}

// After Follow the cursor always maps inside the text window.
func TestFollowKeepsCursorVisible(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		width := rapid.IntRange(1, 120).Draw(rt, "width")
		height := rapid.IntRange(1, 60).Draw(rt, "height")
		gutter := rapid.IntRange(0, 8).Draw(rt, "gutter")
		v := New(width, height, gutter)

		for range rapid.IntRange(1, 20).Draw(rt, "moves") {
			col := rapid.IntRange(0, 500).Draw(rt, "col")
			row := rapid.IntRange(0, 500).Draw(rt, "row")
			reserved := rapid.IntRange(0, 5).Draw(rt, "reserved")

			v.Follow(col, row, reserved)

			x, y := v.Offset()
			if x < 0 || y < 0 {
				rt.Fatalf("negative offset (%d, %d)", x, y)
			}
			if row < y || row >= y+v.TextRows(reserved) {
				rt.Fatalf("row %d outside [%d, %d)", row, y, y+v.TextRows(reserved))
			}
			if col < x || col >= x+v.TextColumns() {
				rt.Fatalf("col %d outside [%d, %d)", col, x, x+v.TextColumns())
			}
		}
	})
}
