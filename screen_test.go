package widgetlist

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

type testCell struct {
	text  string
	style tcell.Style
}

// testScreen is an in-memory screen. Only the drawing methods are
// implemented; everything else panics on the nil embedded Screen.
type testScreen struct {
	tcell.Screen
	width  int
	height int
	cells  []testCell
}

func newTestScreen(width, height int) *testScreen {
	s := &testScreen{width: width, height: height, cells: make([]testCell, width*height)}
	for i := range s.cells {
		s.cells[i] = testCell{text: " ", style: tcell.StyleDefault}
	}
	return s
}

func (s *testScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *testScreen) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

func (s *testScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	cluster, remain, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	if cluster == "" {
		return "", 0
	}
	if s.inBounds(x, y) {
		s.cells[y*s.width+x] = testCell{text: cluster, style: style}
		for i := 1; i < width && x+i < s.width; i++ {
			s.cells[y*s.width+x+i] = testCell{style: style}
		}
	}
	return remain, width
}

func (s *testScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

func (s *testScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	for str != "" {
		var width int
		str, width = s.Put(x, y, str, style)
		x += width
	}
}

func (s *testScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	s.Put(x, y, string(primary)+string(combining), style)
}

func (s *testScreen) Get(x, y int) (string, tcell.Style, int) {
	if !s.inBounds(x, y) {
		return "", tcell.StyleDefault, 1
	}
	c := s.cells[y*s.width+x]
	return c.text, c.style, max(uniseg.StringWidth(c.text), 1)
}

func (s *testScreen) ShowCursor(x int, y int) {}

func (s *testScreen) HideCursor() {}

func (s *testScreen) cell(x, y int) testCell {
	return s.cells[y*s.width+x]
}

// row returns the text of row y without trailing blanks.
func (s *testScreen) row(y int) string {
	var b strings.Builder
	for x := 0; x < s.width; x++ {
		b.WriteString(s.cells[y*s.width+x].text)
	}
	return strings.TrimRight(b.String(), " ")
}

func (s *testScreen) rows() []string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.row(y)
	}
	return rows
}
