package plot

import (
	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

// Typed leaf readers binding expression values to configuration fields.
// Each returns a Handler suitable for a HandlerMap entry.

// toFloat binds a required floating point value.
func toFloat(dst *float64) Handler {
	return func(e *sexpr.Expr) error {
		v, err := e.Float64()
		if err != nil {
			return configErrorf("%v", err)
		}
		*dst = v
		return nil
	}
}

// toFloatOpt binds an optional floating point value (limit-x-min etc).
func toFloatOpt(dst **float64) Handler {
	return func(e *sexpr.Expr) error {
		v, err := e.Float64()
		if err != nil {
			return configErrorf("%v", err)
		}
		*dst = ptr(v)
		return nil
	}
}

// toFloatOptPair binds a two-element list to a pair of optional floats
// (limit-x etc).
func toFloatOptPair(lo, hi **float64) Handler {
	return func(e *sexpr.Expr) error {
		if e.Len() != 2 {
			return configErrorf("expected a (min max) pair, got %s", e)
		}
		a, err := e.Items()[0].Float64()
		if err != nil {
			return configErrorf("%v", err)
		}
		b, err := e.Items()[1].Float64()
		if err != nil {
			return configErrorf("%v", err)
		}
		*lo, *hi = ptr(a), ptr(b)
		return nil
	}
}

// toMeasure binds a measure literal.
func toMeasure(dst *viz.Measure) Handler {
	return func(e *sexpr.Expr) error {
		if !e.IsAtom() {
			return configErrorf("expected a measure, got %s", e)
		}
		m, err := viz.ParseMeasure(e.Text())
		if err != nil {
			return configErrorf("%v", err)
		}
		*dst = m
		return nil
	}
}

// toSize binds a measure resolved immediately to device pixels against
// the layer.
func toSize(layer *viz.Layer, dst *float64) Handler {
	return func(e *sexpr.Expr) error {
		var m viz.Measure
		if err := toMeasure(&m)(e); err != nil {
			return err
		}
		*dst = viz.ToPixels(layer.Measures(), m)
		return nil
	}
}

// toEnum binds a value against an explicit, exhaustive string table.
// Unmatched strings are a configuration error, never a silent default.
func toEnum[T any](dst *T, table map[string]T) Handler {
	return func(e *sexpr.Expr) error {
		v, ok := table[e.Text()]
		if !ok {
			return configErrorf("invalid value %q", e.Text())
		}
		*dst = v
		return nil
	}
}

// toString binds a string value.
func toString(dst *string) Handler {
	return func(e *sexpr.Expr) error {
		if !e.IsAtom() {
			return configErrorf("expected a string, got %s", e)
		}
		*dst = e.Text()
		return nil
	}
}

// toColor binds a color literal.
func toColor(dst *viz.Color) Handler {
	return func(e *sexpr.Expr) error {
		c, err := viz.ParseColor(e.Text())
		if err != nil {
			return configErrorf("%v", err)
		}
		*dst = c
		return nil
	}
}

// toFill binds a fill style: "none" hides the fill, anything else is a
// color literal.
func toFill(dst *viz.FillStyle) Handler {
	return func(e *sexpr.Expr) error {
		if e.Text() == "none" {
			dst.Hidden = true
			return nil
		}
		dst.Hidden = false
		return toColor(&dst.Color)(e)
	}
}

// toFillSolid binds the color half of the composite color property: the
// fill becomes a solid of the given color.
func toFillSolid(dst *viz.FillStyle) Handler {
	return func(e *sexpr.Expr) error {
		dst.Hidden = false
		return toColor(&dst.Color)(e)
	}
}

// dashKinds is the vocabulary accepted by the stroke-style property.
var dashKinds = map[string]viz.DashKind{
	"solid":  viz.DashSolid,
	"dashed": viz.DashDashed,
	"dotted": viz.DashDotted,
}

// toStrokeDash binds the stroke-style property.
func toStrokeDash(dst *viz.StrokeStyle) Handler {
	return toEnum(&dst.Dash, dashKinds)
}

// scaleHandlers is the limit/scale property table shared between the
// figure level and every element (elements override the shared scales
// with a local copy).
func scaleHandlers(sx, sy *ScaleConfig) HandlerMap {
	return HandlerMap{
		"limit-x":         toFloatOptPair(&sx.Min, &sx.Max),
		"limit-x-min":     toFloatOpt(&sx.Min),
		"limit-x-max":     toFloatOpt(&sx.Max),
		"limit-y":         toFloatOptPair(&sy.Min, &sy.Max),
		"limit-y-min":     toFloatOpt(&sy.Min),
		"limit-y-max":     toFloatOpt(&sy.Max),
		"scale-x":         toScaleKind(sx),
		"scale-y":         toScaleKind(sy),
		"scale-x-padding": toFloat(&sx.Padding),
		"scale-y-padding": toFloat(&sy.Padding),
	}
}
