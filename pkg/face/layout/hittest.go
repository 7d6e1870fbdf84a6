package layout

import (
	"fmt"
	"math"

	"github.com/OpenTraceLab/protoface/pkg/face"
)

// Hit addresses the cell under a pointer position.
type Hit struct {
	Panel face.PanelID
	Row   int
	Col   int
}

func (h Hit) String() string {
	return fmt.Sprintf("%s row=%d col=%d", h.Panel, h.Row, h.Col)
}

// HitTest resolves a canvas pixel to the cell beneath it. Panels are tried
// in face.Panels order. Inside a panel's bounding box the gaps between
// LEDs belong to the cell above and to the left of them; only the space
// between panels is dead, in which case ok is false, as it is for NaN.
func (g Geometry) HitTest(x, y float64) (hit Hit, ok bool) {
	size := float64(g.PanelSize())
	pitch := float64(g.Pitch())
	for _, id := range face.Panels() {
		o := g.Origin(id)
		ox, oy := float64(o.X), float64(o.Y)
		// NaN fails every comparison, so containment is tested positively.
		if !(x >= ox && x < ox+size && y >= oy && y < oy+size) {
			continue
		}
		return Hit{
			Panel: id,
			Row:   int(math.Floor((y - oy) / pitch)),
			Col:   int(math.Floor((x - ox) / pitch)),
		}, true
	}
	return Hit{}, false
}
