// Package dsl parses the compact text format for authoring card templates:
//
//	card "Promo" {
//	  canvas 600 800 {
//	    background: #FFFFFF
//	    grid: on
//	  }
//	  text "Title" {
//	    at: 160 120
//	    size: 280 80
//	    font: "Go" 24 700
//	    align: center
//	    "Hello ${user.name}"
//	  }
//	}
//
// The DSL is an input format only; exported layouts use the JSON layout
// format.
package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	cardLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[{}:;]`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(cardLexer),
		participle.Elide("Whitespace", "LineComment"),
	)
)

// Document is the root AST node for a card file.
type Document struct {
	Pos      lexer.Position  `parser:"" json:"-"`
	Name     string          `parser:"Newline* 'card' @String '{' Newline*"`
	Canvas   *CanvasBlock    `parser:"@@ Newline*"`
	Elements []*ElementBlock `parser:"( @@ Newline* )* '}' Newline*"`
}

// CanvasBlock declares the canvas dimensions and cosmetic settings.
type CanvasBlock struct {
	Width  float64 `parser:"'canvas' @Number"`
	Height float64 `parser:"@Number"`
	Block  *Block  `parser:"@@"`
}

// ElementBlock declares one element; the keyword selects the variant.
type ElementBlock struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Kind  string         `parser:"@('text' | 'rect' | 'image')"`
	Name  string         `parser:"@String"`
	Block *Block         `parser:"@@"`
}

// Block is a braced list of statements.
type Block struct {
	Statements []*Statement `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Statement is either a key: value assignment or a raw text line.
type Statement struct {
	Assignment *Assignment  `parser:"  @@"`
	Text       *TextLiteral `parser:"| @@"`
}

// Assignment uses colon syntax; values may span several scalars
// (eg. `border: #D1D5DB 2`).
type Assignment struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Key    string         `parser:"@Ident"`
	Values []*Scalar      `parser:"':' @@+"`
}

// TextLiteral is a raw content line inside a text element; multiple lines
// become explicit line breaks.
type TextLiteral struct {
	Value StringLiteral `parser:"@String"`
}

// Scalar is a single value token.
type Scalar struct {
	Str    *StringLiteral `parser:"  @String"`
	Number *float64       `parser:"| @Number"`
	Color  *string        `parser:"| @Color"`
	Word   *string        `parser:"| @Ident"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses card DSL content from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses card DSL content from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}
