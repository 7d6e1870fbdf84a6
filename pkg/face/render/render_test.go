package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/protoface/pkg/face"
	"github.com/OpenTraceLab/protoface/pkg/face/layout"
)

type circle struct {
	x, y, r float64
	color   color.NRGBA
}

type recordingCanvas struct {
	current color.NRGBA
	rects   []image.Rectangle
	bgColor color.NRGBA
	circles []circle
}

func (c *recordingCanvas) SetFillColor(col color.NRGBA) { c.current = col }

func (c *recordingCanvas) FillRect(r image.Rectangle) {
	c.rects = append(c.rects, r)
	c.bgColor = c.current
}

func (c *recordingCanvas) FillCircle(x, y, r float64) {
	c.circles = append(c.circles, circle{x, y, r, c.current})
}

func TestRenderDrawsEveryLED(t *testing.T) {
	g := layout.Default()
	p := DefaultPalette()
	m := face.New()
	require.NoError(t, m.Set(face.EyeLeft, 0, 0, true))
	require.NoError(t, m.Set(face.MouthID(2), 3, 5, true))

	var c recordingCanvas
	New(g, p).Render(&c, m)

	require.Len(t, c.rects, 1)
	assert.Equal(t, image.Rect(0, 0, 900, 700), c.rects[0])
	assert.Equal(t, p.Background, c.bgColor)
	require.Len(t, c.circles, face.PanelCount*face.MatrixSize*face.MatrixSize)

	lit := 0
	for _, ci := range c.circles {
		assert.Equal(t, 8.0, ci.r)
		if ci.color == p.Lit {
			lit++
		} else {
			assert.Equal(t, p.Dim, ci.color)
		}
	}
	assert.Equal(t, 2, lit)

	assert.Equal(t, circle{58, 58, 8, p.Lit}, c.circles[0])
	// mouth[2] is the sixth panel drawn.
	idx := 5*64 + 3*8 + 5
	assert.Equal(t, circle{346 + 5*18 + 8, 406 + 3*18 + 8, 8, p.Lit}, c.circles[idx])
}

func TestRenderCirclesHitBackToTheirCell(t *testing.T) {
	g := layout.Default()
	var c recordingCanvas
	New(g, DefaultPalette()).Render(&c, face.New())

	n := 0
	for _, id := range face.Panels() {
		for i := 0; i < face.MatrixSize; i++ {
			for j := 0; j < face.MatrixSize; j++ {
				ci := c.circles[n]
				n++
				hit, ok := g.HitTest(ci.x, ci.y)
				require.True(t, ok)
				assert.Equal(t, layout.Hit{Panel: id, Row: i, Col: j}, hit)
			}
		}
	}
}

func TestRasterCanvas(t *testing.T) {
	g := layout.Default()
	p := DefaultPalette()
	m := face.New()
	require.NoError(t, m.Set(face.NoseID, 1, 1, true))

	c := NewRasterCanvas(g.Width, g.Height)
	defer c.Close()
	New(g, p).Render(c, m)
	require.NoError(t, c.Err())

	img := c.Image()
	assert.Equal(t, image.Rect(0, 0, 900, 700), img.Bounds())

	at := func(x, y float64) color.NRGBA {
		return color.NRGBAModel.Convert(img.At(int(x), int(y))).(color.NRGBA)
	}

	bg := at(5, 5)
	assert.Less(t, bg.R, uint8(10))

	lx, ly := g.CellCenter(face.NoseID, 1, 1)
	litPx := at(lx, ly)
	assert.Greater(t, litPx.R, uint8(200))
	assert.Less(t, litPx.G, uint8(30))

	dx, dy := g.CellCenter(face.NoseID, 0, 0)
	dimPx := at(dx, dy)
	assert.InDelta(t, 60, int(dimPx.R), 15)

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestEllipseBounds(t *testing.T) {
	tests := []struct {
		name      string
		cx, cy, r float64
		want      image.Rectangle
	}{
		{"even cell", 58, 58, 8, image.Rect(50, 50, 66, 66)},
		{"odd cell", 57.5, 57.5, 7.5, image.Rect(50, 50, 65, 65)},
		{"rounds up past half", 10.6, 10.6, 3, image.Rect(8, 8, 14, 14)},
		{"rounds down below half", 10.4, 10.4, 3, image.Rect(7, 7, 13, 13)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ellipseBounds(tt.cx, tt.cy, tt.r))
		})
	}
}
