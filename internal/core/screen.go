package core

import "strings"

// Cell is one character of the screen with its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a character grid the terminal host draws the world into.
// Cells are stored row-major. Writes outside the grid are dropped.
type Screen struct {
	width, height int
	cells         []Cell
}

// NewScreen returns a blank width by height grid.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the grid width in cells.
func (s *Screen) Width() int  { return s.width }
// Height returns the grid height in cells.
func (s *Screen) Height() int { return s.height }

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Resize changes the grid size. Content in the top-left corner that still
// fits is kept.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blankCell
	}
	for y := range min(height, s.height) {
		w := min(width, s.width)
		copy(cells[y*width:y*width+w], s.cells[y*s.width:y*s.width+w])
	}
	s.width, s.height, s.cells = width, height, cells
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// SetColored writes one colored rune. Writes outside the grid are dropped.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns a blank cell outside the grid.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// DrawText writes text left to right from (x, y), clipping at the edges.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	for i, r := range []rune(text) {
		s.SetColored(x+i, y, r, c)
	}
}

// DrawTextCentered centers text on column cx.
func (s *Screen) DrawTextCentered(cx, y int, text string, c Color) {
	s.DrawText(cx-len([]rune(text))/2, y, text, c)
}

// DrawRect fills the part of r inside the grid with fill.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	x0, x1 := max(r.Left(), 0), min(r.Right(), s.width)
	y0, y1 := max(r.Top(), 0), min(r.Bottom(), s.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.cells[y*s.width+x] = Cell{Rune: fill, Color: c}
		}
	}
}

// Row returns row y as plain text, or blanks outside the grid.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	line := make([]rune, s.width)
	for x, cell := range s.cells[y*s.width : (y+1)*s.width] {
		line[x] = cell.Rune
	}
	return string(line)
}

// String joins all rows with newlines, dropping colors.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
