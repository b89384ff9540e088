package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// ImageSurface rasterizes into an in-memory RGBA image through gg.
type ImageSurface struct {
	dc         *gg.Context
	background color.RGBA
}

func NewImageSurface(w, h int, background color.RGBA) *ImageSurface {
	return &ImageSurface{dc: gg.NewContext(w, h), background: background}
}

// UseMonoFont switches text rendering from gg's bitmap face to Go Mono.
func (s *ImageSurface) UseMonoFont(size float64) error {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	s.dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}))
	return nil
}

func (s *ImageSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

func (s *ImageSurface) Clear() {
	s.dc.SetColor(s.background)
	s.dc.Clear()
}

func (s *ImageSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *ImageSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	s.dc.SetColor(c)
	s.dc.DrawCircle(cx, cy, r)
	s.dc.Fill()
}

func (s *ImageSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

func (s *ImageSurface) StrokeArc(cx, cy, r, start, end, width float64, c color.NRGBA) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.SetLineCapRound()
	s.dc.DrawArc(cx, cy, r, start, end)
	s.dc.Stroke()
}

func (s *ImageSurface) Text(str string, x, y float64) {
	s.dc.SetColor(color.White)
	// gg anchors text at the baseline; Surface anchors at the top-left.
	s.dc.DrawStringAnchored(str, x, y, 0, 1)
}

func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

func (s *ImageSurface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}
