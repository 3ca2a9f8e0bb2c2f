package viewport

import "slices"

// Element is an item placed on the viewport.
type Element[T any] struct {
	Index int
	Item  T
	// Size along the scroll axis before truncation.
	Size       int
	Truncation Truncation
}

// Visible returns the extent of the element on screen.
func (e Element[T]) Visible() int {
	return e.Truncation.Visible(e.Size)
}

// Layout determines which items are visible in a viewport of mainAxisSize
// units and how much of the first and last of them is clipped. It updates the
// view of state so the selected item (or the first item, when nothing is
// selected) is on screen with scrollPadding units of context around it, and
// otherwise keeps the previous scroll position.
//
// The returned elements are ordered by index and start at state.Offset(). The
// builder is called at most once per index.
func Layout[T any](state *State, build Builder[T], itemCount, mainAxisSize, crossAxisSize int, axis Axis, scrollPadding int) []Element[T] {
	state.SetNumElements(itemCount)
	if itemCount <= 0 || mainAxisSize <= 0 {
		return nil
	}

	// If nothing is selected, the first item is shown at the top.
	selected, ok := state.Selected()
	cache := newItemCache(build, selected, crossAxisSize, axis)
	if !ok || selected >= itemCount {
		selected = 0
	}

	padding := newScrollPadding(cache, itemCount, scrollPadding)
	before, after := padding.around(selected, cache.size(selected), mainAxisSize)

	p := &pass[T]{
		view:     &state.view,
		cache:    cache,
		count:    itemCount,
		viewport: mainAxisSize,
	}
	p.pullOffset(selected, before)
	if elements, found := p.forward(selected, after); found {
		return elements
	}
	return p.backward(selected, after)
}

// pass is a single layout run.
type pass[T any] struct {
	view     *View
	cache    *itemCache[T]
	count    int
	viewport int
}

// pullOffset rolls the view up when the selection, together with before units
// of context above it, starts above the current offset.
func (p *pass[T]) pullOffset(selected, before int) {
	index, clipped := selected, 0
	for need := before; need > 0 && index > 0; {
		index--
		size := p.cache.size(index)
		if size >= need {
			clipped = size - need
			break
		}
		need -= size
	}

	if index == selected && index == p.view.Offset {
		// A selection larger than the viewport cannot avoid being clipped.
		clipped = min(p.view.FirstTruncated, subSat(p.cache.size(selected), p.viewport))
	}

	if index < p.view.Offset || (index == p.view.Offset && clipped < p.view.FirstTruncated) {
		p.view.Offset, p.view.FirstTruncated = index, clipped
	}
}

// forward lays out items from the current offset. It reports false when the
// selected item, followed by after units of context, does not fit.
func (p *pass[T]) forward(selected, after int) ([]Element[T], bool) {
	var (
		elements []Element[T]
		used     int
		found    bool
	)
	for i := p.view.Offset; i < p.count && used < p.viewport; i++ {
		item, size := p.cache.get(i)
		visible := size
		truncation := Truncation{}

		if i == p.view.Offset && p.view.FirstTruncated > 0 {
			if p.view.FirstTruncated >= size {
				// The item shrank since the last pass.
				p.view.FirstTruncated = 0
			} else {
				truncation = Top(p.view.FirstTruncated)
				visible = size - p.view.FirstTruncated
			}
		}

		if i == selected {
			if used > 0 && used+visible+after > p.viewport {
				return nil, false
			}
			found = true
		}

		if remaining := p.viewport - used; visible > remaining {
			if truncation.Kind == TruncateTop {
				p.view.FirstTruncated = size - remaining
				truncation = Top(p.view.FirstTruncated)
			} else {
				truncation = Bottom(size - remaining)
			}
			visible = remaining
		}

		elements = append(elements, Element[T]{Index: i, Item: item, Size: size, Truncation: truncation})
		used += visible
	}
	return elements, found
}

// backward anchors the selected item at the end of the viewport, leaving after
// units for the items that follow it, and moves the offset to the item that
// reaches the start of the viewport.
func (p *pass[T]) backward(selected, after int) []Element[T] {
	var elements []Element[T]
	available := subSat(p.viewport, after)
	reached := false
	for i := selected; i >= 0; i-- {
		item, size := p.cache.get(i)
		if size >= available {
			clipped := size - available
			p.view.Offset, p.view.FirstTruncated = i, clipped
			elements = append(elements, Element[T]{Index: i, Item: item, Size: size, Truncation: Top(clipped)})
			available = 0
			reached = true
			break
		}
		elements = append(elements, Element[T]{Index: i, Item: item, Size: size})
		available -= size
	}
	slices.Reverse(elements)

	if !reached {
		p.view.Offset, p.view.FirstTruncated = 0, 0
	}

	// Fill the space after the selection, stopping at the end of the list.
	room := after + available
	for i := selected + 1; i < p.count && room > 0; i++ {
		item, size := p.cache.get(i)
		truncation := Truncation{}
		if size > room {
			truncation = Bottom(size - room)
			room = 0
		} else {
			room -= size
		}
		elements = append(elements, Element[T]{Index: i, Item: item, Size: size, Truncation: truncation})
	}
	return elements
}
