package ui

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/protoface/pkg/editor"
	"github.com/OpenTraceLab/protoface/pkg/face/layout"
)

// newHeadlessApp builds an App without a window, wired the way New wires
// one, so the input and export handlers can run in tests.
func newHeadlessApp(t *testing.T, state *AppState, saver editor.Saver) (*App, *int) {
	t.Helper()
	redraws := 0
	a := &App{
		State:      state,
		logger:     log.New(io.Discard),
		invalidate: func() { redraws++ },
	}
	a.ctrl = editor.New(nil, layout.Default(), editor.WithSaver(saver))
	a.ctrl.OnChange = a.modelChanged
	return a, &redraws
}

func discardSaver() editor.Saver {
	return editor.SaverFunc(func(string, []byte) error { return nil })
}

func TestPointerInputIsLogged(t *testing.T) {
	a, redraws := newHeadlessApp(t, NewState(), discardSaver())

	a.press(50, 50)
	a.press(50, 50)
	a.drag(68, 50, true)
	a.drag(69, 51, true)  // same cell, already lit
	a.drag(86, 50, false) // no button held
	a.press(196, 100)     // between the eyes
	a.press(math.NaN(), 60)

	snap := a.State.Snapshot()
	assert.Equal(t, []string{
		"Toggled eye[0] row=0 col=0 on",
		"Toggled eye[0] row=0 col=0 off",
		"Painted eye[0] row=0 col=1",
	}, snap.Logs)
	assert.Equal(t, 1, snap.LitCount)
	assert.Equal(t, 3, *redraws)
}

func TestClearIsLogged(t *testing.T) {
	a, _ := newHeadlessApp(t, NewState(), discardSaver())
	a.press(50, 50)
	a.clear()

	snap := a.State.Snapshot()
	assert.Equal(t, "Cleared", snap.Status)
	assert.Equal(t, 0, snap.LitCount)
	assert.Equal(t, "Cleared all panels", snap.Logs[len(snap.Logs)-1])
}

func TestExportKeepsSaverOutcome(t *testing.T) {
	state := NewState()
	unavailable := errors.New("save dialog unavailable")
	// The saver reports its failure before Export returns, as a dialog
	// goroutine that fails immediately can.
	saver := editor.SaverFunc(func(string, []byte) error {
		state.SetError(unavailable)
		return nil
	})
	a, _ := newHeadlessApp(t, state, saver)

	a.export()

	snap := state.Snapshot()
	require.Error(t, snap.LastError)
	assert.ErrorIs(t, snap.LastError, unavailable)
	assert.Contains(t, snap.Status, "Exporting protogen_face_data.txt as json")
}

func TestExportFailureIsLogged(t *testing.T) {
	a, _ := newHeadlessApp(t, NewState(), editor.SaverFunc(func(string, []byte) error {
		return errors.New("disk full")
	}))
	a.State.SetFormat("hex")

	a.export()

	snap := a.State.Snapshot()
	require.Error(t, snap.LastError)
	assert.Contains(t, snap.LastError.Error(), "disk full")
	require.Len(t, snap.Logs, 1)
	assert.Contains(t, snap.Logs[0], "Export failed")
}
