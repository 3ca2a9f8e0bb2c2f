package viewport

// BuildContext is passed to a Builder for every item it is asked to produce.
type BuildContext struct {
	// Position of the item in the list.
	Index int
	// Whether the item is the selected one.
	IsSelected bool
	// Extent of the list perpendicular to ScrollAxis.
	CrossAxisSize int
	// Direction in which the list scrolls.
	ScrollAxis Axis
}

// Builder produces the item at ctx.Index together with its size along the
// scroll axis. Builders are called lazily, only for items that influence the
// layout, and must return the same result for the same context within one
// layout pass.
type Builder[T any] func(ctx BuildContext) (item T, size int)

type builtItem[T any] struct {
	item T
	size int
}

// itemCache memoises builder results for the duration of one layout pass.
type itemCache[T any] struct {
	build         Builder[T]
	selected      int
	crossAxisSize int
	axis          Axis
	items         map[int]builtItem[T]
}

func newItemCache[T any](build Builder[T], selected, crossAxisSize int, axis Axis) *itemCache[T] {
	return &itemCache[T]{
		build:         build,
		selected:      selected,
		crossAxisSize: crossAxisSize,
		axis:          axis,
		items:         make(map[int]builtItem[T]),
	}
}

func (c *itemCache[T]) get(index int) (T, int) {
	if b, ok := c.items[index]; ok {
		return b.item, b.size
	}
	item, size := c.build(BuildContext{
		Index:         index,
		IsSelected:    c.selected >= 0 && index == c.selected,
		CrossAxisSize: c.crossAxisSize,
		ScrollAxis:    c.axis,
	})
	size = max(size, 0)
	c.items[index] = builtItem[T]{item: item, size: size}
	return item, size
}

func (c *itemCache[T]) size(index int) int {
	_, size := c.get(index)
	return size
}
