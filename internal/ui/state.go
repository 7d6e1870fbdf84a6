package ui

import (
	"sync"

	"github.com/OpenTraceLab/protoface/pkg/face/export"
)

// StateSnapshot captures a copy of the state data for rendering without
// requiring the UI to hold locks while laying out widgets.
type StateSnapshot struct {
	Status    string
	LastError error

	Format   export.Format
	LitCount int

	Logs []string
}

// AppState tracks the status shared between the Gio event loop and the
// goroutines that run file dialogs. The face model itself is owned by the
// editor controller and only touched from the event loop.
type AppState struct {
	mu sync.RWMutex

	status    string
	lastError error

	format   export.Format
	litCount int

	logs     []string
	logLimit int
}

// NewState returns a baseline AppState with safe defaults.
func NewState() *AppState {
	return &AppState{
		status:   "Ready",
		format:   export.JSON,
		logLimit: 200,
	}
}

// Snapshot returns a copy of the mutable state for rendering.
func (s *AppState) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logCopy := make([]string, len(s.logs))
	copy(logCopy, s.logs)

	return StateSnapshot{
		Status:    s.status,
		LastError: s.lastError,
		Format:    s.format,
		LitCount:  s.litCount,
		Logs:      logCopy,
	}
}

// SetStatus updates the user-facing status message and clears the error.
func (s *AppState) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.lastError = nil
}

// SetError stores the latest error surfaced to the UI.
func (s *AppState) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = err
}

// SetFormat records the export format picked in the dropdown.
func (s *AppState) SetFormat(f export.Format) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.format = f
}

// Format returns the selected export format.
func (s *AppState) Format() export.Format {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.format
}

// SetLitCount records how many LEDs are lit after the latest edit.
func (s *AppState) SetLitCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.litCount = n
}

// AppendLog appends a log message, trimming the oldest entries past the limit.
func (s *AppState) AppendLog(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = append(s.logs, msg)
	if s.logLimit > 0 && len(s.logs) > s.logLimit {
		offset := len(s.logs) - s.logLimit
		s.logs = append([]string(nil), s.logs[offset:]...)
	}
}
