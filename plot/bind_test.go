package plot

import (
	"errors"
	"testing"

	"github.com/gographics/viz/sexpr"
)

func parseItems(t *testing.T, src string) []*sexpr.Expr {
	t.Helper()
	doc, err := sexpr.ParseString(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return doc.Items()
}

func TestWalkAtomProperty(t *testing.T) {
	var got string
	err := Walk(parseItems(t, "title hello"), HandlerMap{
		"title": toString(&got),
	}, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("title = %q, want %q", got, "hello")
	}
}

func TestWalkListElement(t *testing.T) {
	var heads []string
	h := func(e *sexpr.Expr) error {
		heads = append(heads, e.Head())
		return nil
	}
	err := Walk(parseItems(t, "(bars data-x (1)) (lines data-x (2))"), HandlerMap{
		"bars":  h,
		"lines": h,
	}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(heads) != 2 || heads[0] != "bars" || heads[1] != "lines" {
		t.Errorf("dispatched heads = %v", heads)
	}
}

func TestWalkStrictUnknown(t *testing.T) {
	err := Walk(parseItems(t, "frobnicate 1"), HandlerMap{}, true)
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
}

func TestWalkPermissiveSkip(t *testing.T) {
	// The unknown atom and its value sibling are both skipped, so the
	// following recognized property still binds its own value.
	var got string
	err := Walk(parseItems(t, "frobnicate 1 title hello"), HandlerMap{
		"title": toString(&got),
	}, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("title = %q, want %q", got, "hello")
	}
}

func TestWalkPermissiveSkipList(t *testing.T) {
	var got string
	err := Walk(parseItems(t, "(frobnicate 1 2) title hello"), HandlerMap{
		"title": toString(&got),
	}, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("title = %q, want %q", got, "hello")
	}
}

func TestWalkMissingValue(t *testing.T) {
	var got string
	err := Walk(parseItems(t, "title"), HandlerMap{
		"title": toString(&got),
	}, true)
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
}

func TestWalkShortCircuit(t *testing.T) {
	var after string
	err := Walk(parseItems(t, "bad x title hello"), HandlerMap{
		"bad": func(e *sexpr.Expr) error {
			return configErrorf("boom")
		},
		"title": toString(&after),
	}, true)
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
	if after != "" {
		t.Errorf("handler after failure still ran: title = %q", after)
	}
}

func TestAllComposite(t *testing.T) {
	var a, b string
	err := All(toString(&a), toString(&b))(sexpr.Atom("x"))
	if err != nil {
		t.Fatal(err)
	}
	if a != "x" || b != "x" {
		t.Errorf("composite handler: a=%q b=%q, want both %q", a, b, "x")
	}
}

func TestAllShortCircuit(t *testing.T) {
	var ran bool
	err := All(
		func(e *sexpr.Expr) error { return configErrorf("boom") },
		func(e *sexpr.Expr) error { ran = true; return nil },
	)(sexpr.Atom("x"))
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
	if ran {
		t.Error("second handler ran after first failed")
	}
}
