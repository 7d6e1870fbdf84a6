// Package export serializes a face model into the text artifact handed to
// LED firmware builds.
//
// The default json format is {"eye":[2 panels],"nose":panel,"mouth":[4
// panels]} where a panel is eight rows of eight true/false literals, row
// major, compact and without metadata. Two alternative encodings are
// available: sexp (a single s-expression with 1/0 cells) and hex (one line
// per panel, one byte per row, column 0 in the most significant bit).
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/OpenTraceLab/protoface/pkg/face"
)

// DefaultFilename is the suggested name of the exported file.
const DefaultFilename = "protogen_face_data.txt"

// ErrUnknownFormat is returned for unsupported format names.
var ErrUnknownFormat = errors.New("unknown format")

// Format names an export encoding.
type Format string

const (
	JSON Format = "json"
	SExp Format = "sexp"
	Hex  Format = "hex"
)

// Formats lists the supported encodings, default first.
func Formats() []Format {
	return []Format{JSON, SExp, Hex}
}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("export: %w %q", ErrUnknownFormat, s)
}

// document mirrors the json layout; field order fixes key order.
type document struct {
	Eye   [face.EyePanels]face.Matrix   `json:"eye"`
	Nose  face.Matrix                   `json:"nose"`
	Mouth [face.MouthPanels]face.Matrix `json:"mouth"`
}

// Marshal encodes m in the given format.
func Marshal(m *face.Model, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, m, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes m in the given format to w.
func Write(w io.Writer, m *face.Model, f Format) error {
	var err error
	switch f {
	case JSON:
		err = writeJSON(w, m)
	case SExp:
		err = writeSExp(w, m)
	case Hex:
		err = writeHex(w, m)
	default:
		return fmt.Errorf("export: %w %q", ErrUnknownFormat, string(f))
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", f, err)
	}
	return nil
}

func writeJSON(w io.Writer, m *face.Model) error {
	data, err := json.Marshal(document{Eye: m.Eye, Nose: m.Nose, Mouth: m.Mouth})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
