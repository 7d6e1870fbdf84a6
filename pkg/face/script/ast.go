package script

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/protoface/pkg/face"
)

// Script is a parsed sequence of edit statements.
type Script struct {
	Statements []*Statement `@@*`
}

// Statement is a single edit. Exactly one field is set.
type Statement struct {
	Pos lexer.Position

	Click  *Point   `  "click" @@`
	Drag   *Drag    `| "drag" @@`
	Toggle *CellRef `| "toggle" @@`
	Paint  *CellRef `| "paint" @@`
	Clear  bool     `| @"clear"`
}

// Point is a canvas pixel position.
type Point struct {
	X float64 `@Number`
	Y float64 `@Number`
}

// Drag is a pointer path traced with the primary button held.
type Drag struct {
	Points []*Point `@@+`
}

// CellRef addresses a cell directly, e.g. "mouth[2] 3 5".
type CellRef struct {
	Panel string `@Ident`
	Row   int    `@Number`
	Col   int    `@Number`

	id face.PanelID
}

// ID returns the resolved panel of the reference.
func (c *CellRef) ID() face.PanelID {
	return c.id
}
