// Package face holds the LED state of a protogen face: two eye panels, one
// nose panel and four mouth panels, each an 8x8 matrix of lit/unlit cells.
package face

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned for panel or cell addresses outside the face.
var ErrOutOfRange = errors.New("address out of range")

// Matrix is the row-major cell state of a single panel.
type Matrix [MatrixSize][MatrixSize]bool

// LitCount returns the number of lit cells in the matrix.
func (m *Matrix) LitCount() int {
	n := 0
	for i := range m {
		for j := range m[i] {
			if m[i][j] {
				n++
			}
		}
	}
	return n
}

// Model is the aggregate state of every panel. The zero value is a valid
// face with all cells unlit; panel arrays are fixed size so no panel can be
// missing or partially sized.
type Model struct {
	Eye   [EyePanels]Matrix
	Nose  Matrix
	Mouth [MouthPanels]Matrix
}

// New returns an all-unlit model.
func New() *Model {
	return &Model{}
}

// Panel returns the matrix backing the given panel.
func (m *Model) Panel(id PanelID) (*Matrix, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("face: %w: %s", ErrOutOfRange, id)
	}
	switch id.Category {
	case Eye:
		return &m.Eye[id.Index], nil
	case Nose:
		return &m.Nose, nil
	default:
		return &m.Mouth[id.Index], nil
	}
}

func (m *Model) cell(id PanelID, row, col int) (*bool, error) {
	p, err := m.Panel(id)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= MatrixSize || col < 0 || col >= MatrixSize {
		return nil, fmt.Errorf("face: %w: %s row=%d col=%d", ErrOutOfRange, id, row, col)
	}
	return &p[row][col], nil
}

// Get returns the state of a cell.
func (m *Model) Get(id PanelID, row, col int) (bool, error) {
	c, err := m.cell(id, row, col)
	if err != nil {
		return false, err
	}
	return *c, nil
}

// Set forces a cell to the given state.
func (m *Model) Set(id PanelID, row, col int, lit bool) error {
	c, err := m.cell(id, row, col)
	if err != nil {
		return err
	}
	*c = lit
	return nil
}

// Toggle flips a cell and returns its new state.
func (m *Model) Toggle(id PanelID, row, col int) (bool, error) {
	c, err := m.cell(id, row, col)
	if err != nil {
		return false, err
	}
	*c = !*c
	return *c, nil
}

// Paint lights a cell and reports whether the model changed.
// Painting an already lit cell is a no-op.
func (m *Model) Paint(id PanelID, row, col int) (bool, error) {
	c, err := m.cell(id, row, col)
	if err != nil {
		return false, err
	}
	if *c {
		return false, nil
	}
	*c = true
	return true, nil
}

// Clear resets every cell of every panel to unlit.
func (m *Model) Clear() {
	*m = Model{}
}

// PanelLitCount returns the number of lit cells in one panel.
func (m *Model) PanelLitCount(id PanelID) int {
	p, err := m.Panel(id)
	if err != nil {
		return 0
	}
	return p.LitCount()
}

// LitCount returns the number of lit cells across the whole face.
func (m *Model) LitCount() int {
	n := 0
	for _, id := range Panels() {
		n += m.PanelLitCount(id)
	}
	return n
}

// Clone returns an independent copy of the model.
func (m *Model) Clone() *Model {
	c := *m
	return &c
}
