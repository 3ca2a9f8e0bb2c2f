package viewport

// View is the scroll position of a list.
type View struct {
	// Index of the first item on screen.
	Offset int
	// Units of the first item clipped from its leading edge. Kept across
	// frames so a partially scrolled item stays partially scrolled.
	FirstTruncated int
}

// State is the caller-owned selection and scroll state of a list. It is
// mutated by the navigation methods and by Layout, and must not be shared
// between goroutines without external synchronisation.
type State struct {
	// Selected item, or -1 when nothing is selected.
	selected int
	// Whether Next on the last item selects the first and Previous on the
	// first item selects the last.
	circular bool
	// Number of items seen by the last layout pass.
	numElements int

	view View
}

// NewState returns a circular state with nothing selected.
func NewState() *State {
	return &State{
		selected: -1,
		circular: true,
	}
}

// SetCircular sets whether selection wraps around at both ends.
func (s *State) SetCircular(circular bool) *State {
	s.circular = circular
	return s
}

// Circular reports whether selection wraps around.
func (s *State) Circular() bool {
	return s.circular
}

// Select selects the item at index. A negative index clears the selection and
// scrolls back to the top.
func (s *State) Select(index int) {
	if index < 0 {
		s.selected = -1
		s.view = View{}
		return
	}
	s.selected = index
}

// Selected returns the selected index and whether there is a selection.
func (s *State) Selected() (int, bool) {
	return s.selected, s.selected >= 0
}

// Next selects the next item.
func (s *State) Next() {
	if s.numElements == 0 {
		return
	}
	switch {
	case s.selected < 0:
		s.Select(0)
	case s.selected >= s.numElements-1:
		if s.circular {
			s.Select(0)
		}
	default:
		s.Select(s.selected + 1)
	}
}

// Previous selects the previous item.
func (s *State) Previous() {
	if s.numElements == 0 {
		return
	}
	switch {
	case s.selected < 0:
		s.Select(0)
	case s.selected == 0:
		if s.circular {
			s.Select(s.numElements - 1)
		}
	default:
		s.Select(s.selected - 1)
	}
}

// SetNumElements records the number of items in the list. It does not move
// the selection, even when it falls out of range.
func (s *State) SetNumElements(n int) {
	s.numElements = max(n, 0)
}

// NumElements returns the number of items seen by the last layout pass.
func (s *State) NumElements() int {
	return s.numElements
}

// Offset returns the index of the first visible item.
func (s *State) Offset() int {
	return s.view.Offset
}

// FirstTruncated returns how many units of the first visible item are
// scrolled off the leading edge.
func (s *State) FirstTruncated() int {
	return s.view.FirstTruncated
}

// View returns the current scroll position.
func (s *State) View() View {
	return s.view
}

// SetView restores a scroll position, e.g. one saved by View.
func (s *State) SetView(view View) {
	s.view = View{
		Offset:         max(view.Offset, 0),
		FirstTruncated: max(view.FirstTruncated, 0),
	}
}
