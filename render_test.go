package widgetlist

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/stretchr/testify/assert"
	"github.com/xqrs/widgetlist/viewport"
)

func TestHiddenScreen_DrawsIntoSurface(t *testing.T) {
	target := newTestScreen(4, 2)
	base := tcell.StyleDefault.Background(color.Navy)
	hidden := newHiddenScreen(target, 3, 2, base)

	width, height := hidden.Size()
	assert.Equal(t, 3, width)
	assert.Equal(t, 2, height)

	hidden.PutStr(1, 1, "abcd")
	str, style, w := hidden.Get(2, 1)
	assert.Equal(t, "b", str)
	assert.Equal(t, base, style)
	assert.Equal(t, 1, w)

	// Unwritten cells keep the base style.
	str, style, _ = hidden.Get(0, 0)
	assert.Equal(t, " ", str)
	assert.Equal(t, base, style)

	// Nothing reaches the real screen.
	assert.Equal(t, []string{"", ""}, target.rows())
}

func TestHiddenScreen_WideGraphemes(t *testing.T) {
	target := newTestScreen(4, 1)
	hidden := newHiddenScreen(target, 4, 1, tcell.StyleDefault)
	hidden.PutStr(0, 0, "世ab")

	str, _, w := hidden.Get(0, 0)
	assert.Equal(t, "世", str)
	assert.Equal(t, 2, w)
	_, _, w = hidden.Get(1, 0)
	assert.Equal(t, 0, w)

	// A window starting on the right half blanks the cut grapheme.
	hidden.blit(target, 0, 0, 3, 1, 1, 0)
	assert.Equal(t, " ab", target.row(0))

	// So does a window ending on the left half.
	target = newTestScreen(4, 1)
	hidden.blit(target, 0, 0, 1, 1, 0, 0)
	assert.Equal(t, " ", target.cell(0, 0).text)

	// Overwriting the lead releases the right half.
	hidden.Put(0, 0, "x", tcell.StyleDefault)
	str, _, _ = hidden.Get(1, 0)
	assert.Equal(t, " ", str)
}

func TestHiddenScreen_ClipsWideGraphemeAtEdge(t *testing.T) {
	hidden := newHiddenScreen(newTestScreen(2, 1), 2, 1, tcell.StyleDefault)
	hidden.Put(1, 0, "世", tcell.StyleDefault)

	str, _, w := hidden.Get(1, 0)
	assert.Equal(t, " ", str)
	assert.Equal(t, 1, w)
}

func TestClippedScreen(t *testing.T) {
	target := newTestScreen(5, 3)
	clipped := newClippedScreen(target, 1, 1, 3, 1)

	clipped.PutStr(0, 1, "abcde")
	clipped.Put(2, 0, "x", tcell.StyleDefault)
	clipped.SetContent(2, 2, 'y', nil, tcell.StyleDefault)

	assert.Equal(t, []string{"", " bcd", ""}, target.rows())
}

func TestDrawElement(t *testing.T) {
	base := tcell.StyleDefault
	texts := "r0\nr1\nr2"
	item := func() ListItem { return NewTextItem(texts).SetStyle(base) }
	columns := func() ListItem {
		return NewTextItem("abcd").SetStyle(base).SetAxis(viewport.Horizontal)
	}

	tests := []struct {
		name   string
		item   ListItem
		size   int
		trunc  viewport.Truncation
		axis   viewport.Axis
		width  int
		height int
		want   []string
	}{
		{"vertical none", item(), 3, viewport.Truncation{}, viewport.Vertical, 3, 3, []string{"r0", "r1", "r2"}},
		{"vertical top", item(), 3, viewport.Top(2), viewport.Vertical, 3, 1, []string{"r2", "", ""}},
		{"vertical bottom", item(), 3, viewport.Bottom(1), viewport.Vertical, 3, 2, []string{"r0", "r1", ""}},
		{"horizontal top", columns(), 4, viewport.Top(1), viewport.Horizontal, 3, 1, []string{"bcd", "", ""}},
		{"horizontal bottom", columns(), 4, viewport.Bottom(3), viewport.Horizontal, 1, 1, []string{"a", "", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(4, 3)
			e := viewport.Element[ListItem]{Item: tt.item, Size: tt.size, Truncation: tt.trunc}
			drawElement(screen, e, tt.axis, 0, 0, tt.width, tt.height, base)
			assert.Equal(t, tt.want, screen.rows())
		})
	}
}
