// Package editor reacts to pointer and button input on the face canvas.
//
// All methods are expected to run on a single event-dispatch goroutine:
// each handler mutates the model and runs the change callback to
// completion before returning, so the model needs no locking.
package editor

import (
	"fmt"

	"github.com/OpenTraceLab/protoface/pkg/face"
	"github.com/OpenTraceLab/protoface/pkg/face/export"
	"github.com/OpenTraceLab/protoface/pkg/face/layout"
)

// Controller routes canvas input to the model it owns.
type Controller struct {
	model    *face.Model
	geometry layout.Geometry

	// OnChange runs synchronously after every mutation, normally to redraw.
	OnChange func()

	saver    Saver
	filename string
}

// Option configures a Controller.
type Option func(*Controller)

// WithSaver sets the collaborator that receives exported files.
func WithSaver(s Saver) Option {
	return func(c *Controller) { c.saver = s }
}

// WithFilename overrides export.DefaultFilename.
func WithFilename(name string) Option {
	return func(c *Controller) { c.filename = name }
}

// New returns a controller editing m laid out with g. A nil m starts from
// an empty face.
func New(m *face.Model, g layout.Geometry, opts ...Option) *Controller {
	if m == nil {
		m = face.New()
	}
	c := &Controller{
		model:    m,
		geometry: g,
		filename: export.DefaultFilename,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the model being edited.
func (c *Controller) Model() *face.Model {
	return c.model
}

// Geometry returns the layout used for hit testing.
func (c *Controller) Geometry() layout.Geometry {
	return c.geometry
}

// Filename returns the name given to exported files.
func (c *Controller) Filename() string {
	return c.filename
}

func (c *Controller) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}

// Press handles a pointer-down at canvas pixel (x, y): the cell under the
// pointer, if any, is toggled.
func (c *Controller) Press(x, y float64) (layout.Hit, bool) {
	hit, ok := c.geometry.HitTest(x, y)
	if !ok {
		return hit, false
	}
	if _, err := c.model.Toggle(hit.Panel, hit.Row, hit.Col); err != nil {
		return hit, false
	}
	c.changed()
	return hit, true
}

// Drag handles a pointer move. While the primary button is held the cell
// under the pointer is lit; dragging never turns a cell off. The returned
// bool reports whether the model changed.
func (c *Controller) Drag(x, y float64, primaryHeld bool) (layout.Hit, bool) {
	if !primaryHeld {
		return layout.Hit{}, false
	}
	hit, ok := c.geometry.HitTest(x, y)
	if !ok {
		return hit, false
	}
	changed, err := c.model.Paint(hit.Panel, hit.Row, hit.Col)
	if err != nil || !changed {
		return hit, false
	}
	c.changed()
	return hit, true
}

// Toggle flips a cell by address.
func (c *Controller) Toggle(id face.PanelID, row, col int) error {
	if _, err := c.model.Toggle(id, row, col); err != nil {
		return err
	}
	c.changed()
	return nil
}

// Paint lights a cell by address.
func (c *Controller) Paint(id face.PanelID, row, col int) error {
	changed, err := c.model.Paint(id, row, col)
	if err != nil {
		return err
	}
	if changed {
		c.changed()
	}
	return nil
}

// Clear turns every cell off.
func (c *Controller) Clear() {
	c.model.Clear()
	c.changed()
}

// Export serializes the model and hands it to the saver.
func (c *Controller) Export(f export.Format) error {
	if c.saver == nil {
		return fmt.Errorf("editor: no saver configured")
	}
	data, err := export.Marshal(c.model, f)
	if err != nil {
		return err
	}
	if err := c.saver.Save(c.filename, data); err != nil {
		return fmt.Errorf("editor: save %s: %w", c.filename, err)
	}
	return nil
}
