package ui

import (
	"errors"
	"fmt"

	"gioui.org/x/explorer"
	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/protoface/pkg/editor"
)

// explorerSaver hands exports to the platform save dialog. Dialogs block,
// so the write runs on its own goroutine; the payload is already
// serialized, so the model never leaves the event loop.
type explorerSaver struct {
	explorer   *explorer.Explorer
	state      *AppState
	logger     *log.Logger
	invalidate func()
}

func (s *explorerSaver) Save(name string, data []byte) error {
	payload := append([]byte(nil), data...)
	go func() {
		defer s.invalidate()
		err := editor.OpenSaver(s.explorer.CreateFile).Save(name, payload)
		switch {
		case errors.Is(err, explorer.ErrUserDecline):
			s.state.SetStatus("Export cancelled")
			s.state.AppendLog("Export cancelled")
		case err != nil:
			err = fmt.Errorf("export %s: %w", name, err)
			s.logger.Error("export failed", "file", name, "err", err)
			s.state.SetError(err)
			s.state.AppendLog(fmt.Sprintf("Export failed: %v", err))
		default:
			s.logger.Info("exported", "file", name, "bytes", len(payload))
			s.state.SetStatus(fmt.Sprintf("Saved %s", name))
			s.state.AppendLog(fmt.Sprintf("Saved %s (%d bytes)", name, len(payload)))
		}
	}()
	return nil
}
