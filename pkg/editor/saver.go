package editor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Saver delivers an exported file to the user.
type Saver interface {
	Save(name string, data []byte) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(name string, data []byte) error

func (f SaverFunc) Save(name string, data []byte) error {
	return f(name, data)
}

// FileSaver writes exports into Dir, the working directory when empty.
type FileSaver struct {
	Dir string
}

func (s FileSaver) Save(name string, data []byte) error {
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriterSaver copies exports to an open writer, such as stdout.
type WriterSaver struct {
	W io.Writer
}

func (s WriterSaver) Save(_ string, data []byte) error {
	_, err := s.W.Write(data)
	return err
}

// OpenSaver obtains a writer per export and closes it as soon as the data
// is written, e.g. a platform file dialog.
type OpenSaver func(name string) (io.WriteCloser, error)

func (f OpenSaver) Save(name string, data []byte) error {
	w, err := f(name)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
