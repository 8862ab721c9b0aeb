package plot

import (
	"math"
	"slices"
	"strconv"

	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

// ScaleKind selects the domain-to-chart-space mapping of a scale.
type ScaleKind int

const (
	// ScaleLinear maps a continuous numeric domain linearly onto [0,1].
	ScaleLinear ScaleKind = iota
	// ScaleLogarithmic maps a continuous numeric domain onto [0,1]
	// through a shifted log10 transform.
	ScaleLogarithmic
	// ScaleCategorical maps a category vocabulary onto evenly spaced
	// positions in [0,1].
	ScaleCategorical
)

// ScaleConfig describes one axis scale. Min and Max left nil mean
// "derive from data during autorange". Padding widens the translated
// domain by that fraction of its width on each side. Categories is only
// used by categorical scales.
type ScaleConfig struct {
	Kind       ScaleKind
	Min        *float64
	Max        *float64
	Padding    float64
	Categories []string
}

// Fit expands the scale bounds to cover every value in the buffer;
// autorange accumulation. Numeric values widen Min/Max, categorical
// values extend the category vocabulary in first-seen order. Fit is a
// no-op on empty buffers and is order-independent across buffers.
//
// All Fit calls on a shared scale must precede all Translate calls.
func (s *ScaleConfig) Fit(buf DataBuffer) {
	for _, d := range buf {
		if s.Kind == ScaleCategorical {
			name := d.String()
			if !slices.Contains(s.Categories, name) {
				s.Categories = append(s.Categories, name)
			}
			continue
		}
		if d.IsCategory() {
			continue
		}
		v := d.Number()
		if s.Min == nil || v < *s.Min {
			s.Min = ptr(v)
		}
		if s.Max == nil || v > *s.Max {
			s.Max = ptr(v)
		}
	}
}

// Translate maps one domain value to a normalized coordinate in [0,1].
// Categorical values not present in the vocabulary, and categorical
// values against a continuous scale, are domain errors.
func (s ScaleConfig) Translate(d Datum) (float64, error) {
	if s.Kind == ScaleCategorical {
		idx := slices.Index(s.Categories, d.String())
		if idx < 0 {
			return 0, domainErrorf("value %q is not in the categories of the scale", d.String())
		}
		return (float64(idx) + 0.5) / float64(len(s.Categories)), nil
	}
	if d.IsCategory() {
		return 0, domainErrorf("cannot translate category %q on a continuous scale", d.Category())
	}
	return s.translateNumber(d.Number()), nil
}

// TranslateAll maps a buffer elementwise, preserving order. The
// translation is atomic: any failure yields no output. An empty buffer
// yields empty output and is not an error.
func (s ScaleConfig) TranslateAll(buf DataBuffer) ([]float64, error) {
	out := make([]float64, 0, len(buf))
	for _, d := range buf {
		v, err := s.Translate(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// TranslateZero returns the scale-space position of the numeric value 0
// clamped into [0,1]. Bar-like elements use it as the baseline when no
// explicit offset series is given. The clamp deliberately pins a
// baseline outside the domain to the nearest domain edge instead of
// failing; for categorical scales the baseline is 0.
func (s ScaleConfig) TranslateZero() float64 {
	if s.Kind == ScaleCategorical {
		return 0
	}
	return clamp01(s.translateNumber(0))
}

// translateNumber maps a numeric value through the padded domain. A
// degenerate domain (zero width after padding) maps everything to the
// center instead of failing: chart rendering degrades gracefully.
func (s ScaleConfig) translateNumber(v float64) float64 {
	min, max := s.paddedDomain()
	w := max - min
	if w == 0 {
		viz.Logger().Warn("degenerate scale domain", "min", min, "max", max)
		return 0.5
	}
	if s.Kind == ScaleLogarithmic {
		u := v - min + 1
		if u < minLogArg {
			u = minLogArg
		}
		return math.Log10(u) / math.Log10(w+1)
	}
	return (v - min) / w
}

// minLogArg keeps the shifted log transform defined for values below
// the domain minimum.
const minLogArg = 1e-9

// paddedDomain returns the effective domain bounds with padding applied
// on both sides. An unset bound defaults to the unit interval.
func (s ScaleConfig) paddedDomain() (float64, float64) {
	min, max := 0.0, 1.0
	if s.Min != nil {
		min = *s.Min
	}
	if s.Max != nil {
		max = *s.Max
	}
	w := max - min
	return min - w*s.Padding, max + w*s.Padding
}

// Ticks is a tick layout for an axis or grid: normalized positions in
// [0,1] with their labels.
type Ticks struct {
	Positions []float64
	Labels    []string
}

// Layout computes tick positions for the scale: category midpoints for
// categorical scales, otherwise about five nice steps across the padded
// domain.
func (s ScaleConfig) Layout() Ticks {
	if s.Kind == ScaleCategorical {
		n := len(s.Categories)
		t := Ticks{
			Positions: make([]float64, 0, n),
			Labels:    make([]string, 0, n),
		}
		for i, c := range s.Categories {
			t.Positions = append(t.Positions, (float64(i)+0.5)/float64(n))
			t.Labels = append(t.Labels, c)
		}
		return t
	}

	min, max := s.paddedDomain()
	if max <= min {
		return Ticks{}
	}
	step := niceStep((max - min) / 5)
	var t Ticks
	for v := math.Ceil(min/step) * step; v <= max+step*1e-9; v += step {
		if v == 0 {
			v = 0 // normalize -0
		}
		t.Positions = append(t.Positions, s.translateNumber(v))
		t.Labels = append(t.Labels, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return t
}

// niceStep rounds a raw step up to the nearest 1/2/5 multiple of a
// power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// scaleKinds is the vocabulary accepted by the scale-x / scale-y
// properties.
var scaleKinds = map[string]ScaleKind{
	"linear":      ScaleLinear,
	"log":         ScaleLogarithmic,
	"logarithmic": ScaleLogarithmic,
	"categorical": ScaleCategorical,
}

// toScaleKind binds a handler configuring the kind of a scale. The
// value is either an atom naming the kind or, for categorical scales, a
// list like (categorical a b c) carrying the vocabulary.
func toScaleKind(dst *ScaleConfig) Handler {
	return func(e *sexpr.Expr) error {
		if e.IsList() {
			kind, ok := scaleKinds[e.Head()]
			if !ok {
				return configErrorf("invalid scale kind %q", e.Head())
			}
			dst.Kind = kind
			if kind == ScaleCategorical {
				dst.Categories = dst.Categories[:0]
				for _, item := range e.Tail() {
					dst.Categories = append(dst.Categories, item.Text())
				}
			}
			return nil
		}
		kind, ok := scaleKinds[e.Text()]
		if !ok {
			return configErrorf("invalid scale kind %q", e.Text())
		}
		dst.Kind = kind
		return nil
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func ptr(v float64) *float64 { return &v }
