package plot

import (
	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

const (
	defaultBarSizePT      = 10
	defaultLabelPaddingEM = 0.6
)

// Direction selects the extrusion axis of directional elements.
type Direction int

const (
	// DirectionVertical extrudes along the y axis.
	DirectionVertical Direction = iota
	// DirectionHorizontal extrudes along the x axis.
	DirectionHorizontal
)

// directions is the vocabulary accepted by the direction property.
var directions = map[string]Direction{
	"vertical":   DirectionVertical,
	"horizontal": DirectionHorizontal,
}

// barsConfig is the transient, element-scoped configuration of one bars
// element, built fresh per pass from defaults plus parsed properties.
type barsConfig struct {
	direction Direction
	x         DataBuffer
	xoffset   DataBuffer
	y         DataBuffer
	yoffset   DataBuffer
	scaleX    ScaleConfig
	scaleY    ScaleConfig
	stroke    viz.StrokeStyle
	fill      viz.FillStyle

	size    float64 // scalar bar width in device px; 0 = unset
	sizes   []viz.Measure
	offset  float64 // scalar perpendicular shift in device px
	offsets []viz.Measure

	labels        []string
	labelFontSize viz.Measure
	labelColor    viz.Color
	labelPadding  viz.Measure
}

// barsConfigure seeds defaults from the figure and layer environment,
// binds the element properties and checks the data invariants.
func barsConfigure(layer *viz.Layer, cfg *PlotConfig, c *barsConfig, e *sexpr.Expr) error {
	c.scaleX = cfg.ScaleX
	c.scaleY = cfg.ScaleY
	c.stroke = viz.StrokeStyle{Color: layer.Foreground, Width: viz.Px(0)}
	c.fill = viz.SolidFill(layer.Foreground)
	c.labelFontSize = layer.FontSize
	c.labelColor = layer.Foreground

	err := Walk(e.Tail(), merge(HandlerMap{
		"data-x":      toData(&c.x),
		"data-y":      toData(&c.y),
		"data-x-high": toData(&c.x),
		"data-y-high": toData(&c.y),
		"data-x-low":  toData(&c.xoffset),
		"data-y-low":  toData(&c.yoffset),

		"width":   toSize(layer, &c.size),
		"widths":  toMeasures(&c.sizes),
		"offset":  toSize(layer, &c.offset),
		"offsets": toMeasures(&c.offsets),

		"stroke-color": toColor(&c.stroke.Color),
		"stroke-width": toMeasure(&c.stroke.Width),
		"stroke-style": toStrokeDash(&c.stroke),
		"fill":         toFill(&c.fill),
		"color": All(
			toColor(&c.stroke.Color),
			toFillSolid(&c.fill),
		),

		"direction": toEnum(&c.direction, directions),

		"labels":          toStrings(&c.labels),
		"label-font-size": toMeasure(&c.labelFontSize),
		"label-color":     toColor(&c.labelColor),
		"label-padding":   toMeasure(&c.labelPadding),
	}, scaleHandlers(&c.scaleX, &c.scaleY)), true)
	if err != nil {
		return err
	}

	if c.x.Len() != c.y.Len() {
		return validationErrorf("the length of the 'data-x' and 'data-y' lists must be equal")
	}
	if c.xoffset.Len() != 0 && c.xoffset.Len() != c.x.Len() {
		return validationErrorf("the length of the 'data-x' and 'data-x-low' lists must be equal")
	}
	if c.yoffset.Len() != 0 && c.yoffset.Len() != c.y.Len() {
		return validationErrorf("the length of the 'data-y' and 'data-y-low' lists must be equal")
	}
	return nil
}

// barsAutorange is the pass-1 entry point: every data series feeding a
// shared axis is fitted, offset series included, so bars are never
// clipped.
func barsAutorange(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c barsConfig
	if err := barsConfigure(layer, cfg, &c, e); err != nil {
		return err
	}
	cfg.ScaleX.Fit(c.x)
	cfg.ScaleX.Fit(c.xoffset)
	cfg.ScaleY.Fit(c.y)
	cfg.ScaleY.Fit(c.yoffset)
	return nil
}

// barsDraw is the pass-2 entry point.
func barsDraw(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c barsConfig
	if err := barsConfigure(layer, cfg, &c, e); err != nil {
		return err
	}
	switch c.direction {
	case DirectionHorizontal:
		return barsDrawHorizontal(layer, cfg, &c)
	default:
		return barsDrawVertical(layer, cfg, &c)
	}
}

// barSize resolves the width of bar i: an explicit per-bar size cycles
// across the series, a scalar width applies to every bar, and the
// fallback is a fixed 10pt converted against the layer.
func barSize(layer *viz.Layer, c *barsConfig, i int) float64 {
	if len(c.sizes) > 0 {
		return viz.ToPixels(layer.Measures(), c.sizes[i%len(c.sizes)])
	}
	if c.size != 0 {
		return c.size
	}
	return viz.ToPixels(layer.Measures(), viz.Pt(defaultBarSizePT))
}

// barOffset resolves the perpendicular shift of bar i, cycling a short
// offsets series across a longer data series.
func barOffset(layer *viz.Layer, c *barsConfig, i int) float64 {
	if len(c.offsets) > 0 {
		return viz.ToPixels(layer.Measures(), c.offsets[i%len(c.offsets)])
	}
	return c.offset
}

// labelPadding resolves the gap between a bar tip and its label,
// defaulting to 0.6em of the label font size.
func labelPadding(layer *viz.Layer, padding, fontSize viz.Measure) float64 {
	if !padding.IsZero() {
		return viz.ToPixels(layer.Measures(), padding)
	}
	return viz.FromEM(defaultLabelPaddingEM, viz.ToPixels(layer.Measures(), fontSize))
}

func barsDrawVertical(layer *viz.Layer, cfg *PlotConfig, c *barsConfig) error {
	clip := cfg.Clip(layer)

	xs, err := c.scaleX.TranslateAll(c.x)
	if err != nil {
		return err
	}
	ys, err := c.scaleY.TranslateAll(c.y)
	if err != nil {
		return err
	}
	yoffsets, err := c.scaleY.TranslateAll(c.yoffset)
	if err != nil {
		return err
	}

	y0 := c.scaleY.TranslateZero()
	for i := range xs {
		base := y0
		if len(yoffsets) > 0 {
			base = yoffsets[i]
		}
		sx := mapX(clip, xs[i])
		sy1 := mapY(clip, base)
		sy2 := mapY(clip, ys[i])

		size := barSize(layer, c, i)
		offset := barOffset(layer, c, i)

		p := viz.NewPath()
		p.MoveTo(sx+offset-size/2, sy1)
		p.LineTo(sx+offset-size/2, sy2)
		p.LineTo(sx+offset+size/2, sy2)
		p.LineTo(sx+offset+size/2, sy1)
		p.Close()

		if err := drawShape(layer, clip, p, c.stroke, c.fill); err != nil {
			return err
		}
	}

	for i, text := range c.labels {
		if i >= len(xs) {
			break
		}
		offset := barOffset(layer, c, i)
		padding := labelPadding(layer, c.labelPadding, c.labelFontSize)
		at := viz.Pt2(
			mapX(clip, xs[i])+offset,
			mapY(clip, ys[i])-padding,
		)
		style := viz.TextStyle{Color: c.labelColor, FontSize: c.labelFontSize}
		// Horizontally centered, anchored above the bar top.
		if err := layer.DrawText(nil, text, at, 0.5, 0, style); err != nil {
			return err
		}
	}
	return nil
}

func barsDrawHorizontal(layer *viz.Layer, cfg *PlotConfig, c *barsConfig) error {
	clip := cfg.Clip(layer)

	xs, err := c.scaleX.TranslateAll(c.x)
	if err != nil {
		return err
	}
	xoffsets, err := c.scaleX.TranslateAll(c.xoffset)
	if err != nil {
		return err
	}
	ys, err := c.scaleY.TranslateAll(c.y)
	if err != nil {
		return err
	}

	x0 := c.scaleX.TranslateZero()
	for i := range xs {
		base := x0
		if len(xoffsets) > 0 {
			base = xoffsets[i]
		}
		sy := mapY(clip, ys[i])
		sx1 := mapX(clip, base)
		sx2 := mapX(clip, xs[i])

		size := barSize(layer, c, i)
		offset := barOffset(layer, c, i)

		p := viz.NewPath()
		p.MoveTo(sx1, sy-offset-size/2)
		p.LineTo(sx2, sy-offset-size/2)
		p.LineTo(sx2, sy-offset+size/2)
		p.LineTo(sx1, sy-offset+size/2)
		p.Close()

		if err := drawShape(layer, clip, p, c.stroke, c.fill); err != nil {
			return err
		}
	}

	for i, text := range c.labels {
		if i >= len(xs) {
			break
		}
		offset := barOffset(layer, c, i)
		padding := labelPadding(layer, c.labelPadding, c.labelFontSize)
		at := viz.Pt2(
			mapX(clip, xs[i])+padding,
			mapY(clip, ys[i])-offset,
		)
		style := viz.TextStyle{Color: c.labelColor, FontSize: c.labelFontSize}
		// Vertically centered, anchored right of the bar tip.
		if err := layer.DrawText(nil, text, at, 0, 0.5, style); err != nil {
			return err
		}
	}
	return nil
}
