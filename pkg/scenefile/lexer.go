package scenefile

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// SceneLexer defines the lexical structure for scene description files.
// The format is a small keyword-driven DSL, one object per declaration.
var SceneLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - // to end of line
	{Name: "Comment", Pattern: `//[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords
	{Name: "KwScene", Pattern: `(?i)\bscene\b`},
	{Name: "KwRect", Pattern: `(?i)\brect\b`},
	{Name: "KwAt", Pattern: `(?i)\bat\b`},
	{Name: "KwSize", Pattern: `(?i)\bsize\b`},
	{Name: "KwRotate", Pattern: `(?i)\brotate\b`},
	{Name: "KwSelected", Pattern: `(?i)\bselected\b`},

	// Single-letter keywords; object names may still use them via the
	// grammar's identifier alternatives.
	{Name: "KwX", Pattern: `(?i)\bx\b`},
	{Name: "KwZ", Pattern: `(?i)\bz\b`},

	// Punctuation
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "Comma", Pattern: `,`},

	// Literals
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?`},

	// Identifiers (must come after keywords)
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_-]*`},
})
