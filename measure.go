package viz

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit identifies the unit a Measure value is expressed in.
type Unit int

const (
	// UnitNorm is a unit-less value. In scale contexts it participates
	// directly as a normalized fraction; in pixel contexts it is taken
	// as device pixels.
	UnitNorm Unit = iota
	// UnitPx is device pixels.
	UnitPx
	// UnitPt is typographic points (1/72 inch).
	UnitPt
	// UnitRem is multiples of the root font size.
	UnitRem
)

// Measure is a value tagged with a unit. Measures are resolved to device
// pixels against a MeasureTable before drawing.
type Measure struct {
	Unit  Unit
	Value float64
}

// Norm creates a unit-less Measure.
func Norm(v float64) Measure { return Measure{Unit: UnitNorm, Value: v} }

// Px creates a Measure in device pixels.
func Px(v float64) Measure { return Measure{Unit: UnitPx, Value: v} }

// Pt creates a Measure in typographic points.
func Pt(v float64) Measure { return Measure{Unit: UnitPt, Value: v} }

// Rem creates a Measure in multiples of the root font size.
func Rem(v float64) Measure { return Measure{Unit: UnitRem, Value: v} }

// IsZero reports whether the measure is the zero value (unset).
func (m Measure) IsZero() bool { return m.Value == 0 && m.Unit == UnitNorm }

// MeasureOr returns m unless it is unset, in which case it returns fallback.
func MeasureOr(m, fallback Measure) Measure {
	if m.IsZero() {
		return fallback
	}
	return m
}

// MeasureTable carries the context needed to resolve typographic units
// to device pixels.
type MeasureTable struct {
	DPI    float64 // device pixels per inch
	RootEM float64 // root font size in points
}

// DefaultMeasureTable returns the standard 96 DPI / 12pt table.
func DefaultMeasureTable() MeasureTable {
	return MeasureTable{DPI: 96, RootEM: 12}
}

// ToPixels resolves a Measure to device pixels. Unit-less values are taken
// as pixels; callers that treat them as normalized fractions must do so
// before resolution.
func ToPixels(t MeasureTable, m Measure) float64 {
	switch m.Unit {
	case UnitPx, UnitNorm:
		return m.Value
	case UnitPt:
		return m.Value * t.DPI / 72
	case UnitRem:
		return m.Value * t.RootEM * t.DPI / 72
	default:
		return m.Value
	}
}

// FromEM converts a length in em against a font size in pixels.
func FromEM(v, fontSizePx float64) float64 { return v * fontSizePx }

// ParseMeasure parses a measure literal: a bare number (unit-less) or a
// number suffixed with px, pt or rem.
func ParseMeasure(s string) (Measure, error) {
	unit := UnitNorm
	num := s
	switch {
	case strings.HasSuffix(s, "px"):
		unit, num = UnitPx, s[:len(s)-2]
	case strings.HasSuffix(s, "pt"):
		unit, num = UnitPt, s[:len(s)-2]
	case strings.HasSuffix(s, "rem"):
		unit, num = UnitRem, s[:len(s)-3]
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Measure{}, fmt.Errorf("invalid measure %q", s)
	}
	return Measure{Unit: unit, Value: v}, nil
}

// String returns the literal form of the measure.
func (m Measure) String() string {
	suffix := ""
	switch m.Unit {
	case UnitPx:
		suffix = "px"
	case UnitPt:
		suffix = "pt"
	case UnitRem:
		suffix = "rem"
	}
	return strconv.FormatFloat(m.Value, 'g', -1, 64) + suffix
}
