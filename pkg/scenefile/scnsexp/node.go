// Package scnsexp provides a lightweight streaming S-expression parser
// for scene files. It reads from an io.Reader token by token, so large
// documents never need to be held in memory as text.
package scnsexp

import (
	"io"
	"strings"
)

// Node represents an S-expression node: an atom or a list.
type Node interface {
	// Atom returns true if this is an atom (not a list)
	Atom() bool

	// Len returns the number of elements in a list (1 for atoms)
	Len() int

	// First returns the first element of a list (the atom itself for atoms)
	First() Node

	// Rest returns the list after its first element (nil for atoms)
	Rest() Node

	// String returns the serialized form
	String() string
}

// Sym is an atomic symbol: an identifier, number, or quoted string with
// the quotes already removed.
type Sym string

func (s Sym) Atom() bool     { return true }
func (s Sym) Len() int       { return 1 }
func (s Sym) First() Node    { return s }
func (s Sym) Rest() Node     { return nil }
func (s Sym) String() string { return string(s) }

// List is a parenthesized sequence of nodes.
type List struct {
	items []Node
}

// NewList builds a list from the given nodes.
func NewList(items ...Node) *List {
	return &List{items: items}
}

func (l *List) Atom() bool { return false }

func (l *List) Len() int { return len(l.items) }

func (l *List) First() Node {
	if len(l.items) == 0 {
		return nil
	}
	return l.items[0]
}

func (l *List) Rest() Node {
	if len(l.items) <= 1 {
		return nil
	}
	return &List{items: l.items[1:]}
}

// At returns the element at the given index, or nil out of range.
func (l *List) At(index int) Node {
	if index < 0 || index >= len(l.items) {
		return nil
	}
	return l.items[index]
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, item := range l.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(item.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Parse reads all top-level S-expressions from r.
func Parse(r io.Reader) ([]Node, error) {
	p := newParser(r)
	return p.parseAll()
}

// ParseString parses all top-level S-expressions from a string.
func ParseString(s string) ([]Node, error) {
	return Parse(strings.NewReader(s))
}
