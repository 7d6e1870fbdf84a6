package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes edit scripts. Newlines and semicolons only separate
// statements, so they are lexed together with whitespace and elided.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s;]+`},

	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?`},

	// Keywords and panel names, e.g. click, eye0, mouth[2]
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*(\[[0-9]+\])?`},
})
