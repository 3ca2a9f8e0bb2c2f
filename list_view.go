package widgetlist

import (
	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/widgetlist/viewport"
)

// ListItem is anything a list view can place on screen. Every Primitive is a
// ListItem.
type ListItem interface {
	// Draw draws the item into the rectangle last passed to SetRect.
	Draw(screen tcell.Screen)
	// SetRect sets the item's position and its full, untruncated size.
	SetRect(x, y, width, height int)
}

// ListBuilder returns the item at ctx.Index together with its size along the
// scroll axis, in cells. It is only called for the items a layout pass needs.
type ListBuilder func(ctx viewport.BuildContext) (ListItem, int)

// ListView is a scrollable list of lazily built, variably sized items. Items
// are laid out along the scroll axis and the selected item is kept on screen
// with the configured amount of scroll padding around it. Items cut by the
// edges of the list are drawn partially.
type ListView struct {
	*Box

	builder   ListBuilder
	itemCount int

	axis          viewport.Axis
	scrollPadding int

	// Style of the list background and of the cells an item leaves blank.
	style tcell.Style

	state *viewport.State

	// Optional scroll bar along the trailing edge. nil if hidden.
	scrollBar *ScrollBar

	changed func(index int)

	// Elements placed by the last Draw.
	visible []viewport.Element[ListItem]
}

// NewListView returns a list view showing itemCount items produced by builder.
func NewListView(builder ListBuilder, itemCount int) *ListView {
	return &ListView{
		Box:       NewBox(),
		builder:   builder,
		itemCount: max(itemCount, 0),
		style:     Styles.baseStyle(),
		state:     viewport.NewState(),
	}
}

// NewStaticListView returns a list view of pre-built items, each one cell
// large along the scroll axis.
func NewStaticListView(items ...ListItem) *ListView {
	return NewListView(func(ctx viewport.BuildContext) (ListItem, int) {
		return items[ctx.Index], 1
	}, len(items))
}

// SetBuilder replaces the function producing the list items.
func (l *ListView) SetBuilder(builder ListBuilder) *ListView {
	l.builder = builder
	l.MarkDirty()
	return l
}

// SetItemCount sets the number of items in the list.
func (l *ListView) SetItemCount(count int) *ListView {
	count = max(count, 0)
	if l.itemCount != count {
		l.itemCount = count
		l.state.SetNumElements(count)
		l.MarkDirty()
	}
	return l
}

// ItemCount returns the number of items in the list.
func (l *ListView) ItemCount() int {
	return l.itemCount
}

// IsEmpty reports whether the list has no items.
func (l *ListView) IsEmpty() bool {
	return l.itemCount == 0
}

// SetScrollAxis sets the direction in which items are stacked.
func (l *ListView) SetScrollAxis(axis viewport.Axis) *ListView {
	if l.axis != axis {
		l.axis = axis
		l.MarkDirty()
	}
	return l
}

// ScrollAxis returns the direction in which items are stacked.
func (l *ListView) ScrollAxis() viewport.Axis {
	return l.axis
}

// SetScrollPadding sets how many cells of neighbouring items are kept visible
// before and after the selected item where the list allows it.
func (l *ListView) SetScrollPadding(padding int) *ListView {
	padding = max(padding, 0)
	if l.scrollPadding != padding {
		l.scrollPadding = padding
		l.MarkDirty()
	}
	return l
}

// ScrollPadding returns the scroll padding in cells.
func (l *ListView) ScrollPadding() int {
	return l.scrollPadding
}

// SetStyle sets the style the list area is cleared with before items are
// drawn.
func (l *ListView) SetStyle(style tcell.Style) *ListView {
	if l.style != style {
		l.style = style
		l.MarkDirty()
	}
	return l
}

// SetState replaces the scroll state, e.g. to share one between views. A nil
// state is replaced by a fresh one.
func (l *ListView) SetState(state *viewport.State) *ListView {
	if state == nil {
		state = viewport.NewState()
	}
	l.state = state
	l.MarkDirty()
	return l
}

// State returns the selection and scroll position of the list.
func (l *ListView) State() *viewport.State {
	return l.state
}

// SetScrollBar shows the given scroll bar along the trailing edge of the list,
// or hides it if nil.
func (l *ListView) SetScrollBar(scrollBar *ScrollBar) *ListView {
	l.scrollBar = scrollBar
	l.MarkDirty()
	return l
}

// SetChangedFunc sets a handler that is called when the selection is changed
// through the list view. It receives the selected index, or -1 when the
// selection was cleared.
func (l *ListView) SetChangedFunc(handler func(index int)) *ListView {
	l.changed = handler
	return l
}

// Select selects the item at index. A negative index clears the selection.
func (l *ListView) Select(index int) *ListView {
	return l.moveSelection(func() { l.state.Select(index) })
}

// SelectNext moves the selection to the next item.
func (l *ListView) SelectNext() *ListView {
	return l.moveSelection(l.state.Next)
}

// SelectPrevious moves the selection to the previous item.
func (l *ListView) SelectPrevious() *ListView {
	return l.moveSelection(l.state.Previous)
}

func (l *ListView) moveSelection(move func()) *ListView {
	l.state.SetNumElements(l.itemCount)
	before, _ := l.state.Selected()
	move()
	after, ok := l.state.Selected()
	if !ok {
		after = -1
	}
	l.MarkDirty()
	if after != before && l.changed != nil {
		l.changed(after)
	}
	return l
}

// VisibleItems returns the indices of the items placed by the last Draw.
func (l *ListView) VisibleItems() []int {
	indices := make([]int, len(l.visible))
	for i, e := range l.visible {
		indices[i] = e.Index
	}
	return indices
}

// Draw draws this primitive onto the screen.
func (l *ListView) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)
	defer l.MarkClean()

	x, y, width, height := l.GetInnerRect()
	l.state.SetNumElements(l.itemCount)
	fillRegion(screen, x, y, width, height, l.style)
	l.visible = nil
	if l.itemCount == 0 || l.builder == nil || width <= 0 || height <= 0 {
		return
	}

	// The scroll bar takes the last column (or row) of the list.
	var barX, barY, barWidth, barHeight int
	if l.scrollBar != nil {
		if l.axis == viewport.Horizontal && height > 1 {
			height--
			barX, barY, barWidth, barHeight = x, y+height, width, 1
		} else if l.axis == viewport.Vertical && width > 1 {
			width--
			barX, barY, barWidth, barHeight = x+width, y, 1, height
		}
	}

	mainAxisSize, crossAxisSize := l.axis.Split(width, height)
	previous := l.state.View()
	l.visible = viewport.Layout(l.state, viewport.Builder[ListItem](l.builder), l.itemCount, mainAxisSize, crossAxisSize, l.axis, l.scrollPadding)
	if current := l.state.View(); current != previous {
		logger().Debug("list view scrolled",
			"offset", current.Offset,
			"previous_offset", previous.Offset,
			"first_truncated", current.FirstTruncated,
			"visible", len(l.visible),
		)
	}

	pos := 0
	for _, e := range l.visible {
		extent := e.Visible()
		if extent <= 0 {
			continue
		}
		if l.axis == viewport.Horizontal {
			drawElement(screen, e, l.axis, x+pos, y, extent, height, l.style)
		} else {
			drawElement(screen, e, l.axis, x, y+pos, width, extent, l.style)
		}
		pos += extent
	}

	if l.scrollBar != nil && barWidth > 0 {
		l.scrollBar.SetAxis(l.axis).
			SetLengths(ScrollLengths{ContentLen: l.itemCount, ViewportLen: len(l.visible)}).
			SetOffset(l.state.Offset())
		l.scrollBar.SetRect(barX, barY, barWidth, barHeight)
		l.scrollBar.Draw(screen)
	}
}

var _ Primitive = &ListView{}
