// Package layout maps face panels to pixel space on the editor canvas and
// back. The same Geometry value drives both rendering (Origin, CellCenter)
// and hit testing (HitTest), so the two can never drift apart.
package layout

import (
	"errors"
	"fmt"
	"image"

	"github.com/OpenTraceLab/protoface/pkg/face"
)

// ErrInvalidGeometry is returned by Validate for unusable layout constants.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Geometry holds the layout constants of the editor canvas, in pixels.
type Geometry struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	CellSize int `toml:"cell_size"` // LED diameter
	CellGap  int `toml:"cell_gap"`  // space between neighbouring LEDs
	PanelGap int `toml:"panel_gap"` // space between neighbouring panels
	NoseGap  int `toml:"nose_gap"`  // extra offset in front of the nose

	MarginX int `toml:"margin_x"`
	MarginY int `toml:"margin_y"`

	// MouthBottom is the distance from the canvas bottom edge to the
	// bottom of the mouth row.
	MouthBottom int `toml:"mouth_bottom"`
}

// Default returns the stock 900x700 protogen layout.
func Default() Geometry {
	return Geometry{
		Width:       900,
		Height:      700,
		CellSize:    16,
		CellGap:     2,
		PanelGap:    4,
		NoseGap:     20,
		MarginX:     50,
		MarginY:     50,
		MouthBottom: 150,
	}
}

// Pitch is the distance between the top-left corners of adjacent cells.
func (g Geometry) Pitch() int {
	return g.CellSize + g.CellGap
}

// PanelSize is the pixel width (and height) of one panel's bounding box.
func (g Geometry) PanelSize() int {
	return face.MatrixSize * g.Pitch()
}

// Size returns the canvas dimensions.
func (g Geometry) Size() image.Point {
	return image.Pt(g.Width, g.Height)
}

func (g Geometry) mouthY() int {
	return g.Height - g.MouthBottom - g.PanelSize()
}

// Origin returns the top-left pixel of a panel.
func (g Geometry) Origin(id face.PanelID) image.Point {
	step := g.PanelSize() + g.PanelGap
	switch id.Category {
	case face.Eye:
		return image.Pt(g.MarginX+id.Index*step, g.MarginY)
	case face.Nose:
		return image.Pt(g.MarginX+3*step+g.NoseGap, g.MarginY)
	default:
		return image.Pt(g.MarginX+id.Index*step, g.mouthY())
	}
}

// Bounds returns the half-open pixel rectangle covered by a panel.
func (g Geometry) Bounds(id face.PanelID) image.Rectangle {
	o := g.Origin(id)
	s := g.PanelSize()
	return image.Rectangle{Min: o, Max: o.Add(image.Pt(s, s))}
}

// CellCenter returns the centre of the LED at (row, col) of a panel.
func (g Geometry) CellCenter(id face.PanelID, row, col int) (x, y float64) {
	o := g.Origin(id)
	half := float64(g.CellSize) / 2
	x = float64(o.X+col*g.Pitch()) + half
	y = float64(o.Y+row*g.Pitch()) + half
	return x, y
}

// Validate rejects constants that cannot produce a usable layout: non
// positive sizes, negative gaps, panels leaving the canvas or overlapping.
func (g Geometry) Validate() error {
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return fmt.Errorf("layout: %w: canvas %dx%d", ErrInvalidGeometry, g.Width, g.Height)
	case g.CellSize <= 0:
		return fmt.Errorf("layout: %w: cell size %d", ErrInvalidGeometry, g.CellSize)
	case g.CellGap < 0 || g.PanelGap < 0 || g.NoseGap < 0:
		return fmt.Errorf("layout: %w: negative gap", ErrInvalidGeometry)
	case g.MarginX < 0 || g.MarginY < 0 || g.MouthBottom < 0:
		return fmt.Errorf("layout: %w: negative margin", ErrInvalidGeometry)
	}

	canvas := image.Rectangle{Max: g.Size()}
	ids := face.Panels()
	for i, id := range ids {
		b := g.Bounds(id)
		if !b.In(canvas) {
			return fmt.Errorf("layout: %w: %s at %v leaves the %dx%d canvas", ErrInvalidGeometry, id, b, g.Width, g.Height)
		}
		for _, other := range ids[i+1:] {
			if b.Overlaps(g.Bounds(other)) {
				return fmt.Errorf("layout: %w: %s overlaps %s", ErrInvalidGeometry, id, other)
			}
		}
	}
	return nil
}
