// Package render provides the immediate-mode drawing surfaces the stage
// paints on: the ebiten window, a gg raster for PNG output, and a
// recorder used by tests.
package render

import "image/color"

// Surface is a 2D immediate-mode drawing context with a save/restore
// transform stack. Coordinates passed to drawing calls are local to the
// current transform.
type Surface interface {
	// Size reports the surface size in pixels.
	Size() (w, h float64)

	FillRect(x, y, w, h float64, c color.Color)

	// MoveTo starts a new path; LineTo extends it; Stroke draws it with
	// round caps and clears it.
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke(c color.Color, width float64)

	FillCircle(x, y, r float64, c color.Color)

	Save()
	Restore()
	Translate(x, y float64)
	Scale(sx, sy float64)
}

var (
	_ Surface = (*Screen)(nil)
	_ Surface = (*Raster)(nil)
	_ Surface = (*Recorder)(nil)
)
