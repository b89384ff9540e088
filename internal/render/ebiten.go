package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws on an ebiten image, usually the screen passed to Draw.
type EbitenSurface struct {
	dst        *ebiten.Image
	background color.RGBA
	antialias  bool
}

func NewEbitenSurface(dst *ebiten.Image, background color.RGBA) *EbitenSurface {
	return &EbitenSurface{dst: dst, background: background, antialias: true}
}

func (s *EbitenSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) Clear() {
	s.dst.Fill(s.background)
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, s.antialias)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, s.antialias)
}

func (s *EbitenSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, s.antialias)
}

func (s *EbitenSurface) StrokeArc(cx, cy, r, start, end, width float64, c color.NRGBA) {
	pts := arcPoints(cx, cy, r, start, end)
	for i := 1; i < len(pts); i++ {
		s.StrokeLine(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1], width, c)
	}
}

func (s *EbitenSurface) Text(str string, x, y float64) {
	ebitenutil.DebugPrintAt(s.dst, str, int(x), int(y))
}
