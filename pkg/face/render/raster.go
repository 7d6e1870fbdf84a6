package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// RasterCanvas draws into an in-memory image using the gg software
// rasterizer. It backs PNG previews of a face.
type RasterCanvas struct {
	dc  *gg.Context
	err error
}

// NewRasterCanvas allocates a width x height image.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{dc: gg.NewContext(width, height)}
}

func (c *RasterCanvas) SetFillColor(col color.NRGBA) {
	c.dc.SetColor(col)
}

func (c *RasterCanvas) FillRect(r image.Rectangle) {
	c.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	c.fill()
}

func (c *RasterCanvas) FillCircle(cx, cy, radius float64) {
	c.dc.DrawCircle(cx, cy, radius)
	c.fill()
}

func (c *RasterCanvas) fill() {
	if err := c.dc.Fill(); err != nil && c.err == nil {
		c.err = fmt.Errorf("render: fill: %w", err)
	}
}

// Err returns the first rasterization error, if any.
func (c *RasterCanvas) Err() error {
	return c.err
}

// Image returns the rendered pixels.
func (c *RasterCanvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the rendered image as PNG.
func (c *RasterCanvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.EncodePNG(w)
}

// Close releases the rasterizer.
func (c *RasterCanvas) Close() error {
	return c.dc.Close()
}
