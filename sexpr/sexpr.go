// Package sexpr provides the expression-tree input for chart
// descriptions: a generic tree of atoms (numbers, strings, identifiers)
// and ordered lists of sub-expressions, plus a reader for the textual
// s-expression form.
package sexpr

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is one node of the expression tree: either an atom carrying a
// literal, or an ordered list of sub-expressions.
type Expr struct {
	isList bool
	text   string
	items  []*Expr
}

// Atom creates an atomic expression from its literal text.
func Atom(text string) *Expr {
	return &Expr{text: text}
}

// List creates a list expression from the given sub-expressions.
func List(items ...*Expr) *Expr {
	return &Expr{isList: true, items: items}
}

// IsList reports whether the expression is a list.
func (e *Expr) IsList() bool { return e != nil && e.isList }

// IsAtom reports whether the expression is an atom.
func (e *Expr) IsAtom() bool { return e != nil && !e.isList }

// Text returns the literal text of an atom, or the empty string for
// lists.
func (e *Expr) Text() string {
	if e == nil || e.isList {
		return ""
	}
	return e.text
}

// Items returns the sub-expressions of a list, or nil for atoms.
func (e *Expr) Items() []*Expr {
	if e == nil || !e.isList {
		return nil
	}
	return e.items
}

// Len returns the number of sub-expressions of a list, or 0 for atoms.
func (e *Expr) Len() int { return len(e.Items()) }

// Head returns the text of the first atom of a list, which names the
// element or property the list describes. Returns the empty string if
// the expression is not a list or its first item is not an atom.
func (e *Expr) Head() string {
	items := e.Items()
	if len(items) == 0 {
		return ""
	}
	return items[0].Text()
}

// Tail returns the sub-expressions of a list after its head.
func (e *Expr) Tail() []*Expr {
	items := e.Items()
	if len(items) == 0 {
		return nil
	}
	return items[1:]
}

// Float64 parses the atom as a floating point number.
func (e *Expr) Float64() (float64, error) {
	if !e.IsAtom() {
		return 0, fmt.Errorf("expected a number, got %s", e)
	}
	v, err := strconv.ParseFloat(e.text, 64)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", e.text)
	}
	return v, nil
}

// IsNumber reports whether the atom parses as a floating point number.
func (e *Expr) IsNumber() bool {
	if !e.IsAtom() {
		return false
	}
	_, err := strconv.ParseFloat(e.text, 64)
	return err == nil
}

// String serializes the expression back into textual form, primarily
// for error messages.
func (e *Expr) String() string {
	if e == nil {
		return "()"
	}
	if !e.isList {
		if strings.ContainsAny(e.text, " ()\t\n\"") || e.text == "" {
			return strconv.Quote(e.text)
		}
		return e.text
	}
	parts := make([]string, len(e.items))
	for i, item := range e.items {
		parts[i] = item.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}
