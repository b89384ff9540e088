// Package render provides the drawing surfaces the particle field and the
// overlays paint on: an ebiten image, a gg raster image and a tcell screen.
package render

import (
	"image/color"
	"math"
)

// Surface is the minimal 2D drawing API shared by every host.
// Coordinates are in surface pixels with the origin at the top-left corner.
type Surface interface {
	Size() (w, h int)
	Clear()
	FillRect(x, y, w, h float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA)
	// StrokeArc draws the arc from angle start to end (radians, clockwise
	// on screen, 0 at 3 o'clock).
	StrokeArc(cx, cy, r, start, end, width float64, c color.NRGBA)
	Text(s string, x, y float64)
}

// arcStep is the angular resolution used by hosts without native arcs.
const arcStep = 0.1

// arcPoints samples an arc into a polyline.
func arcPoints(cx, cy, r, start, end float64) [][2]float64 {
	if end < start {
		start, end = end, start
	}
	n := int(math.Ceil((end-start)/arcStep)) + 1
	if n < 2 {
		n = 2
	}
	pts := make([][2]float64, 0, n)
	for i := 0; i < n; i++ {
		a := start + (end-start)*float64(i)/float64(n-1)
		pts = append(pts, [2]float64{cx + math.Cos(a)*r, cy + math.Sin(a)*r})
	}
	return pts
}
