package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/protoface/pkg/editor"
	"github.com/OpenTraceLab/protoface/pkg/face"
	"github.com/OpenTraceLab/protoface/pkg/face/layout"
)

func mustParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser()
	require.NoError(t, err)
	return p
}

func TestParseStatements(t *testing.T) {
	p := mustParser(t)
	s, err := p.ParseString(`
# eyes
click 50 50; click 52.5 60
drag 300 406 320 406
toggle mouth[2] 3 5
paint eye1 0 7
clear
`)
	require.NoError(t, err)
	require.Len(t, s.Statements, 6)

	assert.Equal(t, &Point{X: 50, Y: 50}, s.Statements[0].Click)
	assert.Equal(t, &Point{X: 52.5, Y: 60}, s.Statements[1].Click)
	require.NotNil(t, s.Statements[2].Drag)
	assert.Len(t, s.Statements[2].Drag.Points, 2)

	toggle := s.Statements[3].Toggle
	require.NotNil(t, toggle)
	assert.Equal(t, face.MouthID(2), toggle.ID())
	assert.Equal(t, 3, toggle.Row)
	assert.Equal(t, 5, toggle.Col)

	paint := s.Statements[4].Paint
	require.NotNil(t, paint)
	assert.Equal(t, face.EyeRight, paint.ID())

	assert.True(t, s.Statements[5].Clear)
	assert.Equal(t, 3, s.Statements[3].Pos.Line)
}

func TestParseErrors(t *testing.T) {
	p := mustParser(t)
	tests := []struct {
		name  string
		input string
	}{
		{"unknown verb", "blink 1 2"},
		{"missing coordinate", "click 50"},
		{"odd drag path", "drag 1 2 3 clear"},
		{"unknown panel", "toggle ear 1 1"},
		{"panel index", "paint mouth[7] 0 0"},
		{"fractional row", "toggle nose 1.5 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseString(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestApply(t *testing.T) {
	p := mustParser(t)
	c := editor.New(nil, layout.Default())
	redraws := 0
	c.OnChange = func() { redraws++ }

	s, err := p.ParseString(`
click 50 50
click 196 100
drag 198 50 216 50 216 50
toggle mouth[2] 3 5
toggle mouth[2] 3 5
paint nose 0 0
paint nose 0 0
`)
	require.NoError(t, err)
	require.NoError(t, s.Apply(c))

	m := c.Model()
	assert.True(t, m.Eye[0][0][0])
	assert.True(t, m.Eye[1][0][0])
	assert.True(t, m.Eye[1][0][1])
	assert.False(t, m.Mouth[2][3][5])
	assert.True(t, m.Nose[0][0])
	assert.Equal(t, 4, m.LitCount())
	// click, two drag cells, two toggles, one paint
	assert.Equal(t, 6, redraws)

	clear, err := p.ParseString("clear")
	require.NoError(t, err)
	require.NoError(t, clear.Apply(c))
	assert.Equal(t, 0, m.LitCount())
}

func TestApplyOutOfRange(t *testing.T) {
	p := mustParser(t)
	s, err := p.ParseString("toggle eye0 0 0\ntoggle eye0 9 0")
	require.NoError(t, err)

	c := editor.New(nil, layout.Default())
	err = s.Apply(c)
	assert.ErrorIs(t, err, face.ErrOutOfRange)
	assert.True(t, c.Model().Eye[0][0][0])
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smile.face")
	require.NoError(t, os.WriteFile(path, []byte("toggle mouth0 7 7\n"), 0o644))

	s, err := mustParser(t).ParseFile(path)
	require.NoError(t, err)
	require.Len(t, s.Statements, 1)
	assert.Equal(t, path, s.Statements[0].Pos.Filename)

	_, err = mustParser(t).ParseFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
