package viewport

import "fmt"

// TruncationKind tells from which edge a visible item is clipped.
type TruncationKind uint8

const (
	TruncateNone TruncationKind = iota
	TruncateTop
	TruncateBottom
)

// Truncation describes how many main-axis units of an item are hidden and
// from which edge. Top clips the leading edge (the item scrolled partially off
// the start of the viewport), Bottom clips the trailing edge.
type Truncation struct {
	Kind TruncationKind
	N    int
}

// Top returns a truncation of n leading units, or no truncation if n <= 0.
func Top(n int) Truncation {
	if n <= 0 {
		return Truncation{}
	}
	return Truncation{Kind: TruncateTop, N: n}
}

// Bottom returns a truncation of n trailing units, or no truncation if n <= 0.
func Bottom(n int) Truncation {
	if n <= 0 {
		return Truncation{}
	}
	return Truncation{Kind: TruncateBottom, N: n}
}

// IsNone reports whether the item is shown in full.
func (t Truncation) IsNone() bool {
	return t.Kind == TruncateNone
}

// Visible returns the number of units left of an item of the given size.
func (t Truncation) Visible(size int) int {
	if t.Kind == TruncateNone {
		return max(size, 0)
	}
	return subSat(size, t.N)
}

func (t Truncation) String() string {
	switch t.Kind {
	case TruncateTop:
		return fmt.Sprintf("Top(%d)", t.N)
	case TruncateBottom:
		return fmt.Sprintf("Bottom(%d)", t.N)
	}
	return "None"
}

// subSat subtracts b from a and floors the result at zero.
func subSat(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}
