package render

import "image/color"

type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpCircle
	OpLine
	OpArc
	OpText
)

// Op is one recorded drawing call.
type Op struct {
	Kind   OpKind
	X, Y   float64 // origin, center or line start
	X2, Y2 float64 // line end, rect size, or arc start/end angles
	R      float64 // circle/arc radius
	Width  float64
	Color  color.NRGBA
	Text   string
}

// Recorder is a Surface that keeps every call, for tests and debugging.
type Recorder struct {
	W, H int
	Ops  []Op
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, X2: w, Y2: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: cx, Y: cy, R: rad, Color: c})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

func (r *Recorder) StrokeArc(cx, cy, rad, start, end, width float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpArc, X: cx, Y: cy, R: rad, X2: start, Y2: end, Width: width, Color: c})
}

func (r *Recorder) Text(s string, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Text: s})
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
