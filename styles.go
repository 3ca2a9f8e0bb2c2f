package widgetlist

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	ContrastBackgroundColor  tcell.Color // Background of the selected list item.
	BorderColor              tcell.Color // Box borders.
	TitleColor               tcell.Color // Box titles.
	GraphicsColor            tcell.Color // Scroll bar thumbs.
	PrimaryTextColor         tcell.Color // Primary text.
	InverseTextColor         tcell.Color // Text on ContrastBackgroundColor-colored backgrounds.
}

// Styles defines the theme for list views. The default is for a black
// background with white text and a blue selection.
var Styles = Theme{
	PrimitiveBackgroundColor: color.Black,
	ContrastBackgroundColor:  color.Blue,
	BorderColor:              color.White,
	TitleColor:               color.White,
	GraphicsColor:            color.White,
	PrimaryTextColor:         color.White,
	InverseTextColor:         color.White,
}

// baseStyle is the style list backgrounds are cleared with.
func (t Theme) baseStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.PrimaryTextColor).Background(t.PrimitiveBackgroundColor)
}

// selectedStyle is the style of a highlighted list item.
func (t Theme) selectedStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.InverseTextColor).Background(t.ContrastBackgroundColor)
}
