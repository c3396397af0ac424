package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen draws onto an ebiten image. The transform stack is kept as
// ebiten.GeoM values; points are mapped to screen space before they reach
// the vector package.
type Screen struct {
	dst   *ebiten.Image
	geo   ebiten.GeoM
	stack []ebiten.GeoM
	path  [][2]float64
}

func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{dst: dst}
}

func (s *Screen) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Screen) FillRect(x, y, w, h float64, c color.Color) {
	x0, y0 := s.geo.Apply(x, y)
	x1, y1 := s.geo.Apply(x+w, y+h)
	vector.DrawFilledRect(s.dst,
		float32(math.Min(x0, x1)), float32(math.Min(y0, y1)),
		float32(math.Abs(x1-x0)), float32(math.Abs(y1-y0)),
		c, false)
}

func (s *Screen) MoveTo(x, y float64) {
	s.path = s.path[:0]
	s.LineTo(x, y)
}

func (s *Screen) LineTo(x, y float64) {
	px, py := s.geo.Apply(x, y)
	s.path = append(s.path, [2]float64{px, py})
}

func (s *Screen) Stroke(c color.Color, width float64) {
	w := float32(width * s.unit())
	for i := 1; i < len(s.path); i++ {
		a, b := s.path[i-1], s.path[i]
		vector.StrokeLine(s.dst, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), w, c, true)
	}
	// round caps and joins
	for _, p := range s.path {
		vector.DrawFilledCircle(s.dst, float32(p[0]), float32(p[1]), w/2, c, true)
	}
	s.path = s.path[:0]
}

func (s *Screen) FillCircle(x, y, r float64, c color.Color) {
	cx, cy := s.geo.Apply(x, y)
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r*s.unit()), c, true)
}

func (s *Screen) Save() {
	s.stack = append(s.stack, s.geo)
}

func (s *Screen) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.geo = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Screen) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	s.local(m)
}

func (s *Screen) Scale(sx, sy float64) {
	var m ebiten.GeoM
	m.Scale(sx, sy)
	s.local(m)
}

// local applies m before the current transform, matching canvas semantics.
func (s *Screen) local(m ebiten.GeoM) {
	m.Concat(s.geo)
	s.geo = m
}

// unit is the length scale of the current transform.
func (s *Screen) unit() float64 {
	a, b := s.geo.Element(0, 0), s.geo.Element(0, 1)
	c, d := s.geo.Element(1, 0), s.geo.Element(1, 1)
	return math.Sqrt(math.Abs(a*d - b*c))
}
