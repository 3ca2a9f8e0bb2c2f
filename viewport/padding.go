package viewport

// scrollPadding is the context kept visible around the selected item. Items
// near either end of the list get less than the configured value so padding
// never reaches past the list boundaries.
type scrollPadding struct {
	value int
	count int
	// head[i] is the leading padding of item i, for the items whose
	// predecessors do not yet cover value.
	head []int
	// tail[k] is the trailing padding of item count-1-k, mirrored.
	tail []int
}

func newScrollPadding[T any](cache *itemCache[T], count, value int) scrollPadding {
	p := scrollPadding{value: max(value, 0), count: count}
	if p.value == 0 {
		return p
	}

	total := 0
	for i := 0; i < count && total < p.value; i++ {
		p.head = append(p.head, total)
		total += cache.size(i)
	}

	total = 0
	for i := count - 1; i >= 0 && total < p.value; i-- {
		p.tail = append(p.tail, total)
		total += cache.size(i)
	}
	return p
}

func (p scrollPadding) leading(index int) int {
	if index >= 0 && index < len(p.head) {
		return p.head[index]
	}
	return p.value
}

func (p scrollPadding) trailing(index int) int {
	if k := p.count - 1 - index; k >= 0 && k < len(p.tail) {
		return p.tail[k]
	}
	return p.value
}

// around returns the leading and trailing padding of the item at index,
// shrunk so that both fit next to the item inside the viewport. A side that
// is already short keeps its value and the other side takes the rest.
func (p scrollPadding) around(index, size, viewportSize int) (before, after int) {
	before, after = p.leading(index), p.trailing(index)
	room := subSat(viewportSize, size)
	if before+after <= room {
		return before, after
	}

	half := room / 2
	switch {
	case before < half:
		after = room - before
	case after < room-half:
		before = room - after
	default:
		before, after = half, room-half
	}
	return before, after
}
