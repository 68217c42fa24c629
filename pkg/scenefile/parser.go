// Package scenefile reads and writes scene descriptions in two formats:
// a keyword DSL parsed with participle, and an S-expression form parsed
// with the streaming scnsexp package.
package scenefile

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenCanvasLab/OpenCanvasGizmo/pkg/scene"
)

// Parser represents a scene file parser
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new scene file parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(SceneLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a scene file from a reader
func (p *Parser) Parse(r io.Reader) (*File, error) {
	f, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseString parses a scene file from a string
func (p *Parser) ParseString(input string) (*File, error) {
	f, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseFile parses a scene file from a file path
func (p *Parser) ParseFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// Document is a parsed scene ready for use: the declared name plus a
// validated object collection.
type Document struct {
	Name  string
	Scene *scene.Scene
}

// Build converts a parsed file into a Document, validating every object
// through the scene's Add rules (unique non-empty ids, minimum size).
func Build(f *File) (*Document, error) {
	if f == nil || f.Scene == nil {
		return nil, fmt.Errorf("empty scene file")
	}

	sc := scene.New()
	for _, decl := range f.Scene.Objects {
		o := &scene.Object{
			ID:       decl.ID,
			X:        decl.X,
			Y:        decl.Y,
			Width:    decl.Width,
			Height:   decl.Height,
			Selected: decl.Selected,
		}
		if decl.Rotation != nil {
			o.SetRotation(*decl.Rotation)
		}
		if decl.ZIndex != nil {
			o.ZIndex = *decl.ZIndex
		}
		if err := sc.Add(o); err != nil {
			return nil, fmt.Errorf("object %q: %w", decl.ID, err)
		}
	}

	return &Document{Name: f.Scene.SceneName(), Scene: sc}, nil
}

// LoadString parses and builds a scene in one step.
func (p *Parser) LoadString(input string) (*Document, error) {
	f, err := p.ParseString(input)
	if err != nil {
		return nil, err
	}
	return Build(f)
}

// LoadFile parses and builds a scene from a file path.
func (p *Parser) LoadFile(filename string) (*Document, error) {
	f, err := p.ParseFile(filename)
	if err != nil {
		return nil, err
	}
	return Build(f)
}
