package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// TerminalSurface maps surface pixels onto terminal cells.
// Each cell covers cellW x cellH pixels; colors are composited against the
// background since terminals have no alpha.
type TerminalSurface struct {
	screen       tcell.Screen
	cellW, cellH int
	background   color.RGBA
}

func NewTerminalSurface(screen tcell.Screen, cellW, cellH int, background color.RGBA) *TerminalSurface {
	return &TerminalSurface{screen: screen, cellW: cellW, cellH: cellH, background: background}
}

func (s *TerminalSurface) Size() (int, int) {
	cols, rows := s.screen.Size()
	return cols * s.cellW, rows * s.cellH
}

// CellToPixel converts a cell position to the pixel at the cell's center.
func (s *TerminalSurface) CellToPixel(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * float64(s.cellW), (float64(row) + 0.5) * float64(s.cellH)
}

func (s *TerminalSurface) Clear() {
	s.screen.SetStyle(tcell.StyleDefault.Background(s.tcellColor(s.background)))
	s.screen.Clear()
}

func (s *TerminalSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	c0, r0 := s.cell(x, y)
	c1, r1 := s.cell(x+w-1, y+h-1)
	style := tcell.StyleDefault.Background(s.tcellColor(Over(c, s.background)))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.put(col, row, ' ', style)
		}
	}
}

func (s *TerminalSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	glyph := '•'
	if r >= 2.5 {
		glyph = '●'
	}
	col, row := s.cell(cx, cy)
	s.put(col, row, glyph, s.fg(c))
}

func (s *TerminalSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA) {
	c0, r0 := s.cell(x1, y1)
	c1, r1 := s.cell(x2, y2)
	steps := max(abs(c1-c0), abs(r1-r0))
	style := s.fg(c)
	if steps == 0 {
		s.put(c0, r0, '·', style)
		return
	}
	// DDA over cells; endpoints are left to the circles drawn there.
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		col := int(math.Round(float64(c0) + float64(c1-c0)*t))
		row := int(math.Round(float64(r0) + float64(r1-r0)*t))
		s.put(col, row, '·', style)
	}
}

func (s *TerminalSurface) StrokeArc(cx, cy, r, start, end, width float64, c color.NRGBA) {
	style := s.fg(c)
	for _, p := range arcPoints(cx, cy, r, start, end) {
		col, row := s.cell(p[0], p[1])
		s.put(col, row, '∙', style)
	}
}

func (s *TerminalSurface) Text(str string, x, y float64) {
	col, row := s.cell(x, y)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(s.tcellColor(s.background))
	for _, r := range str {
		s.put(col, row, r, style)
		col++
	}
}

func (s *TerminalSurface) cell(x, y float64) (int, int) {
	return int(math.Floor(x / float64(s.cellW))), int(math.Floor(y / float64(s.cellH)))
}

func (s *TerminalSurface) put(col, row int, r rune, style tcell.Style) {
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	s.screen.SetContent(col, row, r, nil, style)
}

func (s *TerminalSurface) fg(c color.NRGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(s.tcellColor(Over(c, s.background))).
		Background(s.tcellColor(s.background))
}

func (s *TerminalSurface) tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
