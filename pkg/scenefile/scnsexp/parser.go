package scnsexp

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokOpen
	tokClose
	tokAtom
)

type token struct {
	kind tokenKind
	text string
}

// parser combines a rune scanner and a recursive descent over the token
// stream. Input is consumed strictly forward; nothing is buffered beyond
// one peeked rune.
type parser struct {
	r      *bufio.Reader
	peeked *rune
	line   int
}

func newParser(r io.Reader) *parser {
	return &parser{r: bufio.NewReader(r), line: 1}
}

func (p *parser) parseAll() ([]Node, error) {
	var result []Node
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokEOF {
			return result, nil
		}
		node, err := p.parseFrom(tok)
		if err != nil {
			return nil, err
		}
		result = append(result, node)
	}
}

// parseFrom builds a node starting at an already-read token.
func (p *parser) parseFrom(tok token) (Node, error) {
	switch tok.kind {
	case tokAtom:
		return Sym(tok.text), nil

	case tokOpen:
		var items []Node
		for {
			tok, err := p.next()
			if err != nil {
				return nil, err
			}
			switch tok.kind {
			case tokClose:
				return &List{items: items}, nil
			case tokEOF:
				return nil, fmt.Errorf("line %d: unclosed list", p.line)
			}
			elem, err := p.parseFrom(tok)
			if err != nil {
				return nil, err
			}
			items = append(items, elem)
		}

	case tokClose:
		return nil, fmt.Errorf("line %d: unexpected ')'", p.line)

	default:
		return nil, fmt.Errorf("line %d: unexpected end of input", p.line)
	}
}

// next scans the next token, skipping whitespace and ; comments.
func (p *parser) next() (token, error) {
	for {
		ch, err := p.peek()
		if err == io.EOF {
			return token{kind: tokEOF}, nil
		}
		if err != nil {
			return token{}, err
		}

		switch {
		case unicode.IsSpace(ch):
			p.read()
			continue

		case ch == ';':
			for {
				c, err := p.read()
				if err != nil || c == '\n' {
					break
				}
			}
			continue

		case ch == '(':
			p.read()
			return token{kind: tokOpen}, nil

		case ch == ')':
			p.read()
			return token{kind: tokClose}, nil

		case ch == '"':
			text, err := p.scanString()
			if err != nil {
				return token{}, err
			}
			return token{kind: tokAtom, text: text}, nil

		default:
			return token{kind: tokAtom, text: p.scanBare()}, nil
		}
	}
}

func (p *parser) peek() (rune, error) {
	if p.peeked != nil {
		return *p.peeked, nil
	}
	ch, _, err := p.r.ReadRune()
	if err != nil {
		return 0, err
	}
	p.peeked = &ch
	return ch, nil
}

func (p *parser) read() (rune, error) {
	if p.peeked != nil {
		ch := *p.peeked
		p.peeked = nil
		if ch == '\n' {
			p.line++
		}
		return ch, nil
	}
	ch, _, err := p.r.ReadRune()
	if ch == '\n' {
		p.line++
	}
	return ch, err
}

// scanString reads a double-quoted string with backslash escapes and
// returns its unquoted contents.
func (p *parser) scanString() (string, error) {
	p.read() // opening quote

	var out []rune
	for {
		ch, err := p.read()
		if err != nil {
			return "", fmt.Errorf("line %d: unterminated string", p.line)
		}
		switch ch {
		case '"':
			return string(out), nil
		case '\\':
			esc, err := p.read()
			if err != nil {
				return "", fmt.Errorf("line %d: unterminated escape", p.line)
			}
			switch esc {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			default:
				out = append(out, esc)
			}
		default:
			out = append(out, ch)
		}
	}
}

// scanBare reads an unquoted atom up to the next delimiter.
func (p *parser) scanBare() string {
	var out []rune
	for {
		ch, err := p.peek()
		if err != nil {
			break
		}
		if unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '"' || ch == ';' {
			break
		}
		p.read()
		out = append(out, ch)
	}
	return string(out)
}
