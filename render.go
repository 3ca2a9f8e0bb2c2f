package widgetlist

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
	"github.com/xqrs/widgetlist/viewport"
)

// surfaceCell is one cell of an off-screen surface. Continuation cells are
// covered by the wide grapheme to their left.
type surfaceCell struct {
	text  string
	style tcell.Style
	width int
	cont  bool
}

// surface is an off-screen grid of cells an item is drawn into before the
// visible part of it is copied to the real screen.
type surface struct {
	width  int
	height int
	cells  []surfaceCell
}

func newSurface(width, height int, base tcell.Style) *surface {
	width, height = max(width, 0), max(height, 0)
	s := &surface{
		width:  width,
		height: height,
		cells:  make([]surfaceCell, width*height),
	}
	s.fill(" ", base)
	return s
}

func (s *surface) fill(text string, style tcell.Style) {
	for i := range s.cells {
		s.cells[i] = surfaceCell{text: text, style: style, width: 1}
	}
}

func (s *surface) at(x, y int) (surfaceCell, bool) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return surfaceCell{}, false
	}
	return s.cells[y*s.width+x], true
}

func (s *surface) put(x, y int, text string, style tcell.Style, width int) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}

	// Overwriting a wide lead blanks its old tail.
	index := y*s.width + x
	if prev := s.cells[index]; !prev.cont && prev.width > 1 {
		for i := x + 1; i < min(x+prev.width, s.width); i++ {
			s.cells[y*s.width+i] = surfaceCell{text: " ", style: prev.style, width: 1}
		}
	}

	// Wide graphemes at the right edge are clipped like a terminal does.
	if width > 1 && x+width > s.width {
		text, width = " ", 1
	}

	s.cells[index] = surfaceCell{text: text, style: style, width: width}
	for i := 1; i < width; i++ {
		s.cells[index+i] = surfaceCell{style: style, cont: true}
	}
}

// hiddenScreen is a tcell.Screen whose drawing methods write into a surface.
// Everything else is forwarded to the screen the list view draws on.
type hiddenScreen struct {
	tcell.Screen
	surface *surface
	style   tcell.Style
}

func newHiddenScreen(screen tcell.Screen, width, height int, base tcell.Style) *hiddenScreen {
	return &hiddenScreen{
		Screen:  screen,
		surface: newSurface(width, height, base),
		style:   base,
	}
}

func (s *hiddenScreen) Size() (int, int) {
	return s.surface.width, s.surface.height
}

func (s *hiddenScreen) Clear() {
	s.surface.fill(" ", s.style)
}

func (s *hiddenScreen) Fill(r rune, style tcell.Style) {
	s.surface.fill(string(r), style)
}

func (s *hiddenScreen) SetStyle(style tcell.Style) {
	s.style = style
}

func (s *hiddenScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	text := string(primary)
	if len(combining) > 0 {
		text += string(combining)
	}
	s.surface.put(x, y, text, style, max(uniseg.StringWidth(text), 1))
}

func (s *hiddenScreen) Get(x, y int) (str string, style tcell.Style, width int) {
	c, ok := s.surface.at(x, y)
	if !ok {
		return "", tcell.StyleDefault, 1
	}
	if c.cont {
		return "", c.style, 0
	}
	return c.text, c.style, c.width
}

func (s *hiddenScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if str == "" {
		return "", 0
	}

	cluster, remain, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	if cluster == "" {
		r, size := utf8.DecodeRuneInString(str)
		if size == 0 {
			return "", 0
		}
		cluster, remain, width = string(r), str[size:], 1
	}
	if width <= 0 {
		return remain, 0
	}

	s.surface.put(x, y, cluster, style, width)
	return remain, width
}

func (s *hiddenScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, s.style)
}

func (s *hiddenScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	for str != "" && x < s.surface.width {
		remain, width := s.Put(x, y, str, style)
		if width <= 0 || remain == str {
			return
		}
		x += width
		str = remain
	}
}

// The cursor of an off-screen item is never shown.
func (s *hiddenScreen) ShowCursor(x int, y int) {}

// blit copies the width x height window of the surface starting at (dx, dy)
// to the given position of dst.
func (s *hiddenScreen) blit(dst tcell.Screen, x, y, width, height, dx, dy int) {
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c, ok := s.surface.at(col+dx, row+dy)
			if !ok {
				continue
			}
			switch {
			case c.cont && col == 0:
				// The lead of this wide grapheme was cut off.
				dst.Put(x, y+row, " ", c.style)
			case c.cont:
			case col+c.width > width:
				dst.Put(x+col, y+row, " ", c.style)
			default:
				dst.Put(x+col, y+row, c.text, c.style)
			}
		}
	}
}

// clippedScreen drops everything drawn outside of its rectangle.
type clippedScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *clippedScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if !s.inBounds(x, y) {
		_, remain, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
		return remain, width
	}
	return s.Screen.Put(x, y, str, style)
}

func (s *clippedScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

func (s *clippedScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	if y < s.y || y >= s.y+s.height {
		return
	}

	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		cluster := gr.Str()
		width := max(uniseg.StringWidth(cluster), 1)
		if x >= s.x+s.width {
			return
		}
		if x >= s.x && x+width <= s.x+s.width {
			s.Screen.Put(x, y, cluster, style)
		}
		x += width
	}
}

func (s *clippedScreen) ShowCursor(x int, y int) {
	if !s.inBounds(x, y) {
		s.Screen.ShowCursor(-1, -1)
		return
	}
	s.Screen.ShowCursor(x, y)
}

// drawElement draws one laid out list element into the rectangle at (x, y)
// that is as large as the element's visible extent. Untruncated items are drawn
// in place. Truncated items are drawn at full size off screen first and only
// their visible window is copied.
func drawElement(screen tcell.Screen, e viewport.Element[ListItem], axis viewport.Axis, x, y, width, height int, base tcell.Style) {
	if e.Truncation.IsNone() {
		e.Item.SetRect(x, y, width, height)
		e.Item.Draw(newClippedScreen(screen, x, y, width, height))
		return
	}

	fullWidth, fullHeight, dx, dy := width, height, 0, 0
	skip := 0
	if e.Truncation.Kind == viewport.TruncateTop {
		skip = e.Truncation.N
	}
	if axis == viewport.Horizontal {
		fullWidth, dx = e.Size, skip
	} else {
		fullHeight, dy = e.Size, skip
	}

	hidden := newHiddenScreen(screen, fullWidth, fullHeight, base)
	e.Item.SetRect(0, 0, fullWidth, fullHeight)
	e.Item.Draw(hidden)
	hidden.blit(screen, x, y, width, height, dx, dy)
}
