package viewport

import (
	"fmt"
	"strings"
)

// Axis is the direction in which a list scrolls.
type Axis uint8

const (
	// Vertical lists scroll along the height. This is the default.
	Vertical Axis = iota
	// Horizontal lists scroll along the width.
	Horizontal
)

// String returns the lower-case name of the axis.
func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// UnmarshalText decodes "vertical" or "horizontal", ignoring case.
func (a *Axis) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "vertical", "":
		*a = Vertical
	case "horizontal":
		*a = Horizontal
	default:
		return fmt.Errorf("unknown scroll axis %q", string(text))
	}
	return nil
}

// MarshalText encodes the axis by name.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Split returns the main-axis and cross-axis extent of a width x height area.
func (a Axis) Split(width, height int) (main, cross int) {
	if a == Horizontal {
		return width, height
	}
	return height, width
}
