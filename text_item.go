package widgetlist

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/widgetlist/viewport"
)

// TextItem is a list item showing a block of text. In a vertical list the
// text is word wrapped to the width of the list; in a horizontal list every
// line of the text becomes one row and the item is as wide as its longest line.
type TextItem struct {
	*Box

	text  string
	style tcell.Style
	axis  viewport.Axis
}

// NewTextItem returns a new text item.
func NewTextItem(text string) *TextItem {
	t := &TextItem{
		Box:  NewBox(),
		text: text,
	}
	t.SetStyle(Styles.baseStyle())
	return t
}

// SetText sets the text shown by the item.
func (t *TextItem) SetText(text string) *TextItem {
	if t.text != text {
		t.text = text
		t.MarkDirty()
	}
	return t
}

// GetText returns the text shown by the item.
func (t *TextItem) GetText() string {
	return t.text
}

// SetStyle sets the style of the text and of the item's background.
func (t *TextItem) SetStyle(style tcell.Style) *TextItem {
	t.style = style
	t.SetBackgroundColor(style.GetBackground())
	t.MarkDirty()
	return t
}

// SetAxis sets the axis of the list the item is shown in.
func (t *TextItem) SetAxis(axis viewport.Axis) *TextItem {
	if t.axis != axis {
		t.axis = axis
		t.MarkDirty()
	}
	return t
}

// lines returns the rows of text for a list with the given cross axis size.
func (t *TextItem) lines(crossAxisSize int) []string {
	if t.axis == viewport.Horizontal {
		return strings.Split(t.text, "\n")
	}
	return WordWrap(t.text, crossAxisSize)
}

// Size returns the extent of the item along axis when the list is
// crossAxisSize cells large in the other direction.
func (t *TextItem) Size(crossAxisSize int, axis viewport.Axis) int {
	t.SetAxis(axis)
	lines := t.lines(crossAxisSize)
	if axis == viewport.Vertical {
		return len(lines)
	}
	var width int
	for _, line := range lines {
		width = max(width, StringWidth(line))
	}
	return width
}

// Draw draws this primitive onto the screen.
func (t *TextItem) Draw(screen tcell.Screen) {
	t.DrawForSubclass(screen, t)
	x, y, width, height := t.GetInnerRect()
	cross := width
	if t.axis == viewport.Horizontal {
		cross = height
	}
	for row, line := range t.lines(cross) {
		if row >= height {
			break
		}
		printWithStyle(screen, line, x, y+row, 0, width, AlignmentLeft, t.style, false)
	}
	t.MarkClean()
}

// NewTextListBuilder returns a builder of text items, one per entry of texts.
// The selected item is drawn with selectedStyle.
func NewTextListBuilder(texts []string, style, selectedStyle tcell.Style) ListBuilder {
	return func(ctx viewport.BuildContext) (ListItem, int) {
		itemStyle := style
		if ctx.IsSelected {
			itemStyle = selectedStyle
		}
		item := NewTextItem(texts[ctx.Index]).SetStyle(itemStyle)
		return item, item.Size(ctx.CrossAxisSize, ctx.ScrollAxis)
	}
}

// NewTextListView returns a list view of texts using the theme's styles.
func NewTextListView(texts ...string) *ListView {
	return NewListView(NewTextListBuilder(texts, Styles.baseStyle(), Styles.selectedStyle()), len(texts))
}

var _ Primitive = &TextItem{}
