package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/chord/internal/input/mode"
	"github.com/dshills/chord/internal/renderer/backend"
	"github.com/dshills/chord/internal/renderer/core"
	"github.com/dshills/chord/internal/renderer/gutter"
	"github.com/dshills/chord/internal/renderer/viewport"
)

type lines []string

func (l lines) Len() int            { return len(l) }
func (l lines) Line(row int) string { return l[row] }

func setup(width, height int) (*backend.NullBackend, *Renderer, *viewport.Viewport) {
	b := backend.NewNullBackend(width, height)
	g := gutter.New(gutter.DefaultConfig())
	return b, New(b, g), viewport.New(width, height, g.Width())
}

func TestRenderGutterAndText(t *testing.T) {
	b, r, vp := setup(20, 5)

	r.Render(View{
		Lines:     lines{"alpha", "beta", "gamma"},
		Viewport:  vp,
		CursorRow: 1,
		CursorCol: 2,
		Mode:      mode.Normal,
	})

	assert.Equal(t, "   1  alpha", b.Row(0))
	assert.Equal(t, "   2  beta", b.Row(1))
	assert.Equal(t, "   1  gamma", b.Row(2))
	assert.Equal(t, "   ~", b.Row(3))
	assert.Equal(t, "   ~", b.Row(4))

	x, y, visible := b.CursorPosition()
	assert.True(t, visible)
	assert.Equal(t, 8, x)
	assert.Equal(t, 1, y)
	assert.Equal(t, backend.CursorBlock, b.CursorStyleValue())
	assert.Equal(t, 1, b.ShowCount())
	assert.Equal(t, uint64(1), r.FrameCount())
}

func TestRenderHorizontalOffsetAndClip(t *testing.T) {
	b, r, vp := setup(10, 2) // 4 text columns
	vp.SetOffset(2, 0)

	r.Render(View{Lines: lines{"abcdefghij"}, Viewport: vp, CursorCol: 3})

	assert.Equal(t, "   1  cdef", b.Row(0))
}

func TestRenderOffsetPastShortLine(t *testing.T) {
	b, r, vp := setup(20, 2)
	vp.SetOffset(5, 0)

	r.Render(View{Lines: lines{"abc", "abcdefgh"}, Viewport: vp, CursorCol: 6, CursorRow: 1})

	assert.Equal(t, "   1", b.Row(0))
	assert.Equal(t, "   2  fgh", b.Row(1))
}

func TestRenderVerticalOffset(t *testing.T) {
	b, r, vp := setup(20, 3)
	vp.SetOffset(0, 2)

	r.Render(View{Lines: lines{"0", "1", "2", "3", "4"}, Viewport: vp, CursorRow: 3})

	assert.Equal(t, "   1  2", b.Row(0))
	assert.Equal(t, "   4  3", b.Row(1))
	assert.Equal(t, "   1  4", b.Row(2))
}

func TestRenderBannerReservesRows(t *testing.T) {
	b, r, vp := setup(30, 5)

	r.Render(View{
		Lines:    lines{"a", "b", "c", "d", "e"},
		Viewport: vp,
		Banner:   "write failed\npermission denied",
	})

	assert.Equal(t, "   1  a", b.Row(0))
	assert.Equal(t, "   2  c", b.Row(2))
	assert.Equal(t, "write failed", b.Row(3))
	assert.Equal(t, "permission denied", b.Row(4))
	assert.True(t, b.GetCell(0, 3).Style.Attributes.Has(core.AttrItalic))
}

func TestRenderCommandPrompt(t *testing.T) {
	b, r, vp := setup(20, 4)

	r.Render(View{
		Lines:    lines{"text"},
		Viewport: vp,
		Mode:     mode.Command,
		Command:  "w out",
	})

	assert.Equal(t, ":w out", b.Row(3))
	assert.Equal(t, "   ~", b.Row(2))

	x, y, visible := b.CursorPosition()
	require.True(t, visible)
	assert.Equal(t, 6, x)
	assert.Equal(t, 3, y)
	assert.Equal(t, backend.CursorBar, b.CursorStyleValue())
}

func TestRenderInsertCursorBar(t *testing.T) {
	b, r, vp := setup(20, 4)

	r.Render(View{Lines: lines{"abc"}, Viewport: vp, Mode: mode.Insert, CursorCol: 3})

	x, _, _ := b.CursorPosition()
	assert.Equal(t, 9, x)
	assert.Equal(t, backend.CursorBar, b.CursorStyleValue())
}

func TestRenderHidesCursorOutsideWindow(t *testing.T) {
	b, r, vp := setup(20, 3)
	vp.SetOffset(0, 5)

	r.Render(View{Lines: lines{"a", "b", "c", "d", "e", "f", "g", "h"}, Viewport: vp, CursorRow: 0})

	_, _, visible := b.CursorPosition()
	assert.False(t, visible)
}

func TestRenderBannerColor(t *testing.T) {
	b := backend.NewNullBackend(20, 3)
	g := gutter.New(gutter.DefaultConfig())
	r := New(b, g, WithBannerColor(core.ColorGray))

	r.Render(View{Lines: lines{""}, Viewport: viewport.New(20, 3, g.Width()), Banner: "note"})

	assert.True(t, b.GetCell(0, 2).Style.Foreground.Equals(core.ColorGray))
}

func TestReserved(t *testing.T) {
	assert.Equal(t, 0, Reserved("", mode.Normal))
	assert.Equal(t, 1, Reserved("", mode.Command))
	assert.Equal(t, 3, Reserved(strings.Join([]string{"a", "b"}, "\n"), mode.Command))
}

func TestRenderWidensGutterForLongBuffers(t *testing.T) {
	b := backend.NewNullBackend(20, 12)
	g := gutter.New(gutter.Config{Mode: gutter.LineNumberAbsolute, NumberWidth: 1})
	r := New(b, g)
	vp := viewport.New(20, 12, g.Width())

	text := make(lines, 12)
	for i := range text {
		text[i] = "abc"
	}
	text[10] = "xyz"

	r.Render(View{Lines: text, Viewport: vp, CursorRow: 10, CursorCol: 0})

	assert.Equal(t, 4, vp.GutterWidth())
	assert.Equal(t, " 1  abc", b.Row(0))
	assert.Equal(t, "10  abc", b.Row(9))
	assert.Equal(t, "11  xyz", b.Row(10))

	x, y, visible := b.CursorPosition()
	require.True(t, visible)
	assert.Equal(t, 4, x)
	assert.Equal(t, 10, y)
	assert.Equal(t, 'x', b.GetCell(x, y).Rune)
}

func TestRenderPendingKeys(t *testing.T) {
	b, r, vp := setup(20, 3)

	r.Render(View{Lines: lines{"abc"}, Viewport: vp, Pending: "3g"})
	assert.Equal(t, "   ~              3g", b.Row(2))

	r.Render(View{Lines: lines{"abc"}, Viewport: vp})
	assert.Equal(t, "   ~", b.Row(2))
}
