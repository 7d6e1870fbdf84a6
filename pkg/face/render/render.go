// Package render draws a face model onto an immediate-mode 2D canvas.
//
// Every call to Render repaints the whole canvas: the background first, then
// one filled circle per LED of every panel. A face has at most 448 LEDs so
// there is no partial redraw.
package render

import (
	"image"
	"image/color"

	"github.com/OpenTraceLab/protoface/pkg/face"
	"github.com/OpenTraceLab/protoface/pkg/face/layout"
)

// Canvas is the drawing surface the renderer paints on.
type Canvas interface {
	SetFillColor(c color.NRGBA)
	FillRect(r image.Rectangle)
	FillCircle(cx, cy, radius float64)
}

// Palette holds the colors used for the background and the two LED states.
type Palette struct {
	Background color.NRGBA
	Lit        color.NRGBA
	Dim        color.NRGBA
}

// DefaultPalette is red LEDs on black.
func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{A: 255},
		Lit:        color.NRGBA{R: 255, A: 255},
		Dim:        color.NRGBA{R: 60, A: 255},
	}
}

// Renderer paints models using a fixed geometry and palette.
type Renderer struct {
	Geometry layout.Geometry
	Palette  Palette
}

// New returns a renderer for the given geometry and palette.
func New(g layout.Geometry, p Palette) *Renderer {
	return &Renderer{Geometry: g, Palette: p}
}

// Render clears the canvas and draws every panel of m.
func (r *Renderer) Render(c Canvas, m *face.Model) {
	c.SetFillColor(r.Palette.Background)
	c.FillRect(image.Rectangle{Max: r.Geometry.Size()})

	radius := float64(r.Geometry.CellSize) / 2
	for _, id := range face.Panels() {
		p, err := m.Panel(id)
		if err != nil {
			continue
		}
		for i := 0; i < face.MatrixSize; i++ {
			for j := 0; j < face.MatrixSize; j++ {
				if p[i][j] {
					c.SetFillColor(r.Palette.Lit)
				} else {
					c.SetFillColor(r.Palette.Dim)
				}
				x, y := r.Geometry.CellCenter(id, i, j)
				c.FillCircle(x, y, radius)
			}
		}
	}
}
