// Package script implements a small language for replaying canvas input
// without a window:
//
//	click 50 50          # pointer-down at canvas pixel (x, y)
//	drag 52 50 70 50     # pointer moves with the primary button held
//	toggle mouth[2] 3 5  # flip a cell by address
//	paint eye1 0 0       # light a cell by address
//	clear
//
// Statements are separated by newlines or semicolons.
package script

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/protoface/pkg/editor"
	"github.com/OpenTraceLab/protoface/pkg/face"
)

// Parser parses edit scripts.
type Parser struct {
	parser *participle.Parser[Script]
}

// NewParser builds a script parser.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Script](
		participle.Lexer(Lexer),
		participle.Elide("Comment", "Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a script from a reader. name is used in error positions.
func (p *Parser) Parse(name string, r io.Reader) (*Script, error) {
	s, err := p.parser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if err := s.resolve(); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseString parses a script held in memory.
func (p *Parser) ParseString(input string) (*Script, error) {
	s, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if err := s.resolve(); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseFile parses a script file.
func (p *Parser) ParseFile(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(filename, file)
}

func (s *Script) resolve() error {
	for _, st := range s.Statements {
		ref := st.Toggle
		if ref == nil {
			ref = st.Paint
		}
		if ref == nil {
			continue
		}
		id, err := face.ParsePanelID(ref.Panel)
		if err != nil {
			return fmt.Errorf("%s: %w", st.Pos, err)
		}
		ref.id = id
	}
	return nil
}

// Apply replays the script through c in order, stopping at the first
// statement that addresses a cell outside the face. Clicks and drags that
// miss every panel are not errors.
func (s *Script) Apply(c *editor.Controller) error {
	for _, st := range s.Statements {
		var err error
		switch {
		case st.Click != nil:
			c.Press(st.Click.X, st.Click.Y)
		case st.Drag != nil:
			for _, pt := range st.Drag.Points {
				c.Drag(pt.X, pt.Y, true)
			}
		case st.Toggle != nil:
			err = c.Toggle(st.Toggle.id, st.Toggle.Row, st.Toggle.Col)
		case st.Paint != nil:
			err = c.Paint(st.Paint.id, st.Paint.Row, st.Paint.Col)
		case st.Clear:
			c.Clear()
		}
		if err != nil {
			return fmt.Errorf("%s: %w", st.Pos, err)
		}
	}
	return nil
}
