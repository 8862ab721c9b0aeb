package plot

import (
	"strconv"

	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

// Datum is a single data point value: a number or a category name.
type Datum struct {
	num   float64
	cat   string
	isCat bool
}

// Number creates a numeric datum.
func Number(v float64) Datum { return Datum{num: v} }

// Category creates a categorical datum.
func Category(s string) Datum { return Datum{cat: s, isCat: true} }

// IsCategory reports whether the datum is categorical.
func (d Datum) IsCategory() bool { return d.isCat }

// Number returns the numeric value; 0 for categorical data.
func (d Datum) Number() float64 { return d.num }

// Category returns the category name; empty for numeric data.
func (d Datum) Category() string { return d.cat }

// String returns the literal form of the datum. Numeric data format the
// way they would appear in the source document, so a number can be
// matched against a categorical vocabulary.
func (d Datum) String() string {
	if d.isCat {
		return d.cat
	}
	return strconv.FormatFloat(d.num, 'g', -1, 64)
}

// DataBuffer is an ordered sequence of data point values. An empty
// buffer means "not provided".
type DataBuffer []Datum

// Len returns the number of values in the buffer.
func (b DataBuffer) Len() int { return len(b) }

// datumFromExpr converts one value atom into a Datum: numbers become
// numeric, everything else categorical.
func datumFromExpr(e *sexpr.Expr) (Datum, error) {
	if !e.IsAtom() {
		return Datum{}, configErrorf("expected a data value, got %s", e)
	}
	if e.IsNumber() {
		v, err := e.Float64()
		if err != nil {
			return Datum{}, configErrorf("%v", err)
		}
		return Number(v), nil
	}
	return Category(e.Text()), nil
}

// toData binds a handler that loads a scalar or list value into a data
// buffer.
func toData(dst *DataBuffer) Handler {
	return func(e *sexpr.Expr) error {
		items := []*sexpr.Expr{e}
		if e.IsList() {
			items = e.Items()
		}
		buf := make(DataBuffer, 0, len(items))
		for _, item := range items {
			d, err := datumFromExpr(item)
			if err != nil {
				return err
			}
			buf = append(buf, d)
		}
		*dst = buf
		return nil
	}
}

// toStrings binds a handler that loads a scalar or list value as a
// string series.
func toStrings(dst *[]string) Handler {
	return func(e *sexpr.Expr) error {
		items := []*sexpr.Expr{e}
		if e.IsList() {
			items = e.Items()
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if !item.IsAtom() {
				return configErrorf("expected a string value, got %s", item)
			}
			out = append(out, item.Text())
		}
		*dst = out
		return nil
	}
}

// toMeasures binds a handler that loads a scalar or list value as a
// series of measures (used by widths/offsets, which broadcast across a
// longer data series).
func toMeasures(dst *[]viz.Measure) Handler {
	return func(e *sexpr.Expr) error {
		items := []*sexpr.Expr{e}
		if e.IsList() {
			items = e.Items()
		}
		out := make([]viz.Measure, 0, len(items))
		for _, item := range items {
			if !item.IsAtom() {
				return configErrorf("expected a measure, got %s", item)
			}
			m, err := viz.ParseMeasure(item.Text())
			if err != nil {
				return configErrorf("%v", err)
			}
			out = append(out, m)
		}
		*dst = out
		return nil
	}
}
