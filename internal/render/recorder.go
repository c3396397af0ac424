package render

import "image/color"

type OpKind int

const (
	OpFillRect OpKind = iota
	OpStroke
	OpFillCircle
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill-rect"
	case OpStroke:
		return "stroke"
	case OpFillCircle:
		return "fill-circle"
	default:
		return "unknown"
	}
}

// Op is one recorded draw call with its points mapped to surface space.
type Op struct {
	Kind   OpKind
	Points [][2]float64
	Radius float64
	Width  float64
	Color  color.Color
}

type transform struct {
	tx, ty, sx, sy float64
}

func (t transform) apply(x, y float64) [2]float64 {
	return [2]float64{x*t.sx + t.tx, y*t.sy + t.ty}
}

// Recorder is a Surface that keeps every draw call instead of rasterizing.
// Surfaces only translate and scale, so the transform is kept as an
// offset plus per-axis factors.
type Recorder struct {
	W, H float64
	Ops  []Op

	cur   transform
	stack []transform
	path  [][2]float64
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h, cur: transform{sx: 1, sy: 1}}
}

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops of kind in order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Depth is the number of unmatched Save calls.
func (r *Recorder) Depth() int { return len(r.stack) }

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.path = r.path[:0]
	r.stack = r.stack[:0]
	r.cur = transform{sx: 1, sy: 1}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpFillRect,
		Points: [][2]float64{r.cur.apply(x, y), r.cur.apply(x+w, y+h)},
		Color:  c,
	})
}

func (r *Recorder) MoveTo(x, y float64) {
	r.path = [][2]float64{r.cur.apply(x, y)}
}

func (r *Recorder) LineTo(x, y float64) {
	r.path = append(r.path, r.cur.apply(x, y))
}

func (r *Recorder) Stroke(c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Points: r.path, Width: width, Color: c})
	r.path = nil
}

func (r *Recorder) FillCircle(x, y, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpFillCircle,
		Points: [][2]float64{r.cur.apply(x, y)},
		Radius: radius,
		Color:  c,
	})
}

func (r *Recorder) Save() { r.stack = append(r.stack, r.cur) }

func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.cur = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(x, y float64) {
	r.cur.tx += x * r.cur.sx
	r.cur.ty += y * r.cur.sy
}

func (r *Recorder) Scale(sx, sy float64) {
	r.cur.sx *= sx
	r.cur.sy *= sy
}
