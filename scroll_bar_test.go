package widgetlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xqrs/widgetlist/viewport"
)

func TestComputeScrollMetrics(t *testing.T) {
	tests := []struct {
		name                           string
		trackCells, content, view, off int
		want                           scrollMetrics
	}{
		{"no track", 0, 10, 5, 0, scrollMetrics{}},
		{"everything visible", 4, 3, 5, 0, scrollMetrics{trackCells: 4, trackLen: 32, thumbLen: 32}},
		{"top", 4, 10, 5, 0, scrollMetrics{trackCells: 4, trackLen: 32, thumbLen: 16}},
		{"bottom", 4, 10, 5, 5, scrollMetrics{trackCells: 4, trackLen: 32, thumbLen: 16, thumbStart: 16}},
		{"offset clamped", 4, 10, 5, 50, scrollMetrics{trackCells: 4, trackLen: 32, thumbLen: 16, thumbStart: 16}},
		{"minimum thumb", 2, 1000, 1, 0, scrollMetrics{trackCells: 2, trackLen: 16, thumbLen: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, computeScrollMetrics(tt.trackCells, tt.content, tt.view, tt.off))
		})
	}
}

func TestCellFill(t *testing.T) {
	m := scrollMetrics{trackCells: 3, trackLen: 24, thumbLen: 10, thumbStart: 3}

	start, fill := cellFill(m, 0)
	assert.Equal(t, 3, start)
	assert.Equal(t, 5, fill)

	start, fill = cellFill(m, 1)
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, fill)

	_, fill = cellFill(m, 2)
	assert.Equal(t, 0, fill)
}

func TestScrollBar_DrawVertical(t *testing.T) {
	screen := newTestScreen(1, 4)
	bar := NewScrollBar().
		SetGlyphSet(UnicodeGlyphSet()).
		SetArrows(ScrollBarArrowsBoth).
		SetLengths(ScrollLengths{ContentLen: 4, ViewportLen: 2}).
		SetOffset(2)
	bar.SetRect(0, 0, 1, 4)
	bar.Draw(screen)

	assert.Equal(t, []string{"▲", BoxDrawingsLightVertical, BlockFullBlock, "▼"}, screen.rows())
}

func TestScrollBar_DrawHorizontal(t *testing.T) {
	screen := newTestScreen(4, 1)
	bar := NewScrollBar().
		SetAxis(viewport.Horizontal).
		SetLengths(ScrollLengths{ContentLen: 10, ViewportLen: 5}).
		SetOffset(5)
	bar.SetRect(0, 0, 4, 1)
	bar.Draw(screen)

	assert.Equal(t, "  ██", screen.row(0))
}

func TestScrollBar_FractionalThumbs(t *testing.T) {
	bar := NewScrollBar().SetGlyphSet(UnicodeGlyphSet())

	glyph, _ := bar.glyph(0, 4)
	assert.Equal(t, "▀", glyph)
	glyph, _ = bar.glyph(4, 4)
	assert.Equal(t, "▄", glyph)

	bar.SetAxis(viewport.Horizontal)
	glyph, _ = bar.glyph(0, 4)
	assert.Equal(t, "▌", glyph)
	glyph, _ = bar.glyph(4, 4)
	assert.Equal(t, "▐", glyph)
	glyph, _ = bar.glyph(0, 0)
	assert.Equal(t, BoxDrawingsLightHorizontal, glyph)
}

func TestScrollBar_AutoHide(t *testing.T) {
	screen := newTestScreen(1, 3)
	bar := NewScrollBar().
		SetGlyphSet(UnicodeGlyphSet()).
		SetLengths(ScrollLengths{ContentLen: 3, ViewportLen: 3})
	bar.SetRect(0, 0, 1, 3)
	bar.Draw(screen)
	assert.Equal(t, []string{"", "", ""}, screen.rows())

	bar.SetAutoHide(false)
	bar.Draw(screen)
	assert.Equal(t, []string{BlockFullBlock, BlockFullBlock, BlockFullBlock}, screen.rows())
}
