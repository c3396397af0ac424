package mover

import (
	"image/color"
	"math"
)

// Layout places Count nodes in a horizontal row centred on a Width x Height
// surface. Each node occupies a square cell of side Gap.
type Layout struct {
	Width, Height float64
	Count         int
}

func (l Layout) Gap() float64 {
	return 0.9 * l.Width / float64(l.Count+1)
}

// Origin is the centre of node i's cell.
func (l Layout) Origin(i int) (x, y float64) {
	gap := l.Gap()
	offset := (l.Width - gap*float64(l.Count)) / 2
	return offset + float64(i)*gap + gap/2, l.Height / 2
}

func (l Layout) LineWidth() float64 {
	return math.Min(l.Width, l.Height) / 60
}

func (l Layout) DotRadius() float64 {
	return l.Gap() / 15
}

// Style holds the node colors.
type Style struct {
	Path color.Color
	Dot  color.Color
}

// Segments splits scale into the progress of the rising diagonal (sc1,
// scale 0..0.5) and the flat top (sc2, scale 0.5..1), each in [0, 1].
func Segments(scale float64) (sc1, sc2 float64) {
	sc1 = math.Min(0.5, scale) * 2
	sc2 = math.Min(0.5, math.Max(0, scale-0.5)) * 2
	return sc1, sc2
}

// Tip is the moving endpoint of a node's path in cell-local coordinates
// for the given gap and segment progress.
func Tip(gap, sc1, sc2 float64) (x, y float64) {
	return -gap/2 + gap/2*sc1 + gap/2*sc2, gap/2 - gap*sc1
}
