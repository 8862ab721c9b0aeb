package sexpr

import (
	"fmt"
	"os"
	"strings"
)

// ParseString reads a chart description. The result is a list expression
// holding the top-level expressions of the document in order.
//
// The textual form consists of parenthesized lists, double-quoted
// strings, and bare atoms (identifiers, numbers, measures like 10px,
// colors like #06c). A semicolon starts a comment running to the end of
// the line.
func ParseString(src string) (*Expr, error) {
	p := &parser{src: src, line: 1}
	items, err := p.parseSeq(false)
	if err != nil {
		return nil, err
	}
	return List(items...), nil
}

// ParseFile reads a chart description from a file.
func ParseFile(path string) (*Expr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

type parser struct {
	src  string
	pos  int
	line int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s", p.line, fmt.Sprintf(format, args...))
}

// parseSeq parses expressions until EOF or, when nested, a closing
// parenthesis.
func (p *parser) parseSeq(nested bool) ([]*Expr, error) {
	var items []*Expr
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			if nested {
				return nil, p.errorf("unexpected end of input, missing ')'")
			}
			return items, nil
		}
		switch p.src[p.pos] {
		case ')':
			if !nested {
				return nil, p.errorf("unexpected ')'")
			}
			p.pos++
			return items, nil
		case '(':
			p.pos++
			sub, err := p.parseSeq(true)
			if err != nil {
				return nil, err
			}
			items = append(items, List(sub...))
		case '"':
			atom, err := p.parseString()
			if err != nil {
				return nil, err
			}
			items = append(items, atom)
		default:
			items = append(items, p.parseAtom())
		}
	}
}

func (p *parser) parseString() (*Expr, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '"':
			p.pos++
			return Atom(b.String()), nil
		case '\\':
			p.pos++
			if p.pos >= len(p.src) {
				return nil, p.errorf("unterminated string")
			}
			esc := p.src[p.pos]
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(esc)
			}
			p.pos++
		case '\n':
			return nil, p.errorf("unterminated string")
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return nil, p.errorf("unterminated string")
}

func (p *parser) parseAtom() *Expr {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '(' || c == ')' || c == '"' || c == ';' || isSpace(c) {
			break
		}
		p.pos++
	}
	return Atom(p.src[start:p.pos])
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '\n':
			p.line++
			p.pos++
		case isSpace(c):
			p.pos++
		case c == ';':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
