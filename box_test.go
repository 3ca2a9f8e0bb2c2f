package widgetlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox_InnerRect(t *testing.T) {
	b := NewBox()
	b.SetRect(2, 3, 10, 6)

	x, y, width, height := b.GetInnerRect()
	assert.Equal(t, []int{2, 3, 10, 6}, []int{x, y, width, height})

	b.SetBorders(BordersAll).SetBorderPadding(1, 0, 2, 0)
	x, y, width, height = b.GetInnerRect()
	assert.Equal(t, []int{5, 5, 6, 3}, []int{x, y, width, height})

	b.SetRect(0, 0, 1, 1)
	_, _, width, height = b.GetInnerRect()
	assert.Zero(t, width)
	assert.Zero(t, height)
}

func TestBox_Dirty(t *testing.T) {
	b := NewBox()
	assert.True(t, b.IsDirty())

	b.MarkClean()
	b.SetTitle("")
	assert.False(t, b.IsDirty())

	b.SetTitle("x")
	assert.True(t, b.IsDirty())
}

func TestBox_DrawBorder(t *testing.T) {
	screen := newTestScreen(4, 3)
	b := NewBox().SetBorders(BordersAll).SetBorderSet(BorderSetRound())
	b.SetRect(0, 0, 4, 3)
	b.Draw(screen)

	assert.Equal(t, []string{"╭──╮", "│  │", "╰──╯"}, screen.rows())
}

func TestBox_PartialBorders(t *testing.T) {
	screen := newTestScreen(3, 3)
	b := NewBox().SetBorders(BordersTop | BordersLeft)
	b.SetRect(0, 0, 3, 3)
	b.Draw(screen)

	assert.Equal(t, []string{"┌──", "│", "│"}, screen.rows())
}

func TestBox_TitleEllipsis(t *testing.T) {
	screen := newTestScreen(6, 2)
	b := NewBox().SetBorders(BordersAll).SetTitle("a long title").SetTitleAlignment(AlignmentLeft)
	b.SetRect(0, 0, 6, 2)
	b.Draw(screen)

	assert.Equal(t, "┌a l…┐", screen.row(0))
}

func TestLookupBorderSet(t *testing.T) {
	set, draw, ok := LookupBorderSet(" Thick ")
	assert.True(t, ok)
	assert.True(t, draw)
	assert.Equal(t, BorderSetThick(), set)

	_, draw, ok = LookupBorderSet("none")
	assert.True(t, ok)
	assert.False(t, draw)

	_, _, ok = LookupBorderSet("zigzag")
	assert.False(t, ok)
}
