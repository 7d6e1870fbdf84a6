package render

import (
	"image"
	"image/color"
	"math"

	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// GioCanvas records draw calls as Gio paint operations. Coordinates are in
// the op list's current transform, normally one unit per canvas pixel.
type GioCanvas struct {
	ops   *op.Ops
	color color.NRGBA
}

// NewGioCanvas returns a canvas appending to ops.
func NewGioCanvas(ops *op.Ops) *GioCanvas {
	return &GioCanvas{ops: ops}
}

func (c *GioCanvas) SetFillColor(col color.NRGBA) {
	c.color = col
}

func (c *GioCanvas) FillRect(r image.Rectangle) {
	paint.FillShape(c.ops, c.color, clip.Rect(r).Op())
}

func (c *GioCanvas) FillCircle(cx, cy, radius float64) {
	paint.FillShape(c.ops, c.color, clip.Ellipse(ellipseBounds(cx, cy, radius)).Op(c.ops))
}

// ellipseBounds snaps a circle's bounding box to the nearest pixels so it
// covers the same area as the raster canvas.
func ellipseBounds(cx, cy, radius float64) image.Rectangle {
	return image.Rect(
		int(math.Round(cx-radius)), int(math.Round(cy-radius)),
		int(math.Round(cx+radius)), int(math.Round(cy+radius)),
	)
}
