package render

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Raster draws onto a gg context. gg reports fill and stroke failures as
// errors; the first one is kept and returned by Err.
type Raster struct {
	dc  *gg.Context
	err error
}

func NewRaster(dc *gg.Context) *Raster {
	return &Raster{dc: dc}
}

// Err returns the first drawing error, if any.
func (r *Raster) Err() error { return r.err }

func (r *Raster) check(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

func (r *Raster) Size() (float64, float64) {
	return float64(r.dc.Width()), float64(r.dc.Height())
}

func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	r.dc.SetColor(c)
	r.dc.DrawRectangle(x, y, w, h)
	r.check(r.dc.Fill())
}

func (r *Raster) MoveTo(x, y float64) {
	r.dc.ClearPath()
	r.dc.MoveTo(x, y)
}

func (r *Raster) LineTo(x, y float64) { r.dc.LineTo(x, y) }

func (r *Raster) Stroke(c color.Color, width float64) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	r.dc.SetLineCap(gg.LineCapRound)
	r.check(r.dc.Stroke())
}

func (r *Raster) FillCircle(x, y, radius float64, c color.Color) {
	r.dc.SetColor(c)
	r.dc.DrawCircle(x, y, radius)
	r.check(r.dc.Fill())
}

func (r *Raster) Save()                  { r.dc.Push() }
func (r *Raster) Restore()               { r.dc.Pop() }
func (r *Raster) Translate(x, y float64) { r.dc.Translate(x, y) }
func (r *Raster) Scale(sx, sy float64)   { r.dc.Scale(sx, sy) }
