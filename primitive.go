package widgetlist

import "github.com/gdamore/tcell/v3"

// Primitive is the top-most interface for everything that can be drawn in a
// rectangle of the screen.
type Primitive interface {
	// Draw draws this primitive onto the screen.
	Draw(screen tcell.Screen)

	// GetRect returns the current position of the primitive, x, y, width, and
	// height.
	GetRect() (int, int, int, int)
	// SetRect sets a new position of the primitive.
	SetRect(x, y, width, height int)

	// HasFocus determines if the primitive has focus.
	HasFocus() bool
	// Focus is called when the primitive receives focus.
	Focus(delegate func(p Primitive))
	// Blur is called when the primitive loses focus.
	Blur()
}
