// Package plot evaluates chart descriptions into drawing operations.
//
// Rendering is a deterministic two-pass pipeline over the ordered
// element list of the document. Pass 1 (prepare) configures the shared
// scale bounds and autoranges every element's data against them; pass 2
// (draw) re-parses each element's full configuration and emits geometry
// through the layer's canvas. Elements are processed strictly in
// document order, which is also paint order: later elements paint over
// earlier ones.
//
// A failing element aborts the render synchronously; pixels already
// rasterized for earlier elements are not rolled back.
package plot

import (
	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

// element ties one element key to its two pass entry points.
type element struct {
	autorange func(*viz.Layer, *PlotConfig, *sexpr.Expr) error
	draw      func(*viz.Layer, *PlotConfig, *sexpr.Expr) error
}

// elements is the geometry element registry, keyed by the element name
// used in chart descriptions.
var elements = map[string]element{
	"areas":      {autorange: areasAutorange, draw: areasDraw},
	"bars":       {autorange: barsAutorange, draw: barsDraw},
	"errorbars":  {autorange: errorbarsAutorange, draw: errorbarsDraw},
	"labels":     {autorange: labelsAutorange, draw: labelsDraw},
	"lines":      {autorange: linesAutorange, draw: linesDraw},
	"points":     {autorange: pointsAutorange, draw: pointsDraw},
	"polygons":   {autorange: polygonsAutorange, draw: polygonsDraw},
	"rectangles": {autorange: rectanglesAutorange, draw: rectanglesDraw},
	"vectors":    {autorange: vectorsAutorange, draw: vectorsDraw},
}

// Render evaluates a chart description document against a layer.
func Render(layer *viz.Layer, doc *sexpr.Expr) error {
	cfg := NewPlotConfig()
	if err := prepare(layer, cfg, doc); err != nil {
		return err
	}
	return draw(layer, cfg, doc)
}

// prepare is pass 1: scale configuration and autoranging. Every Fit
// call on the shared scales happens here, before any element draws.
func prepare(layer *viz.Layer, cfg *PlotConfig, doc *sexpr.Expr) error {
	m := scaleHandlers(&cfg.ScaleX, &cfg.ScaleY)
	for name, el := range elements {
		m[name] = elementHandler(layer, cfg, el.autorange)
	}
	return Walk(doc.Items(), m, false)
}

// draw is pass 2: margins, figure furniture and element geometry, in
// document order.
func draw(layer *viz.Layer, cfg *PlotConfig, doc *sexpr.Expr) error {
	m := HandlerMap{
		"margin": All(
			toMeasure(&cfg.Margins[0]),
			toMeasure(&cfg.Margins[1]),
			toMeasure(&cfg.Margins[2]),
			toMeasure(&cfg.Margins[3]),
		),
		"margin-top":    toMeasure(&cfg.Margins[0]),
		"margin-right":  toMeasure(&cfg.Margins[1]),
		"margin-bottom": toMeasure(&cfg.Margins[2]),
		"margin-left":   toMeasure(&cfg.Margins[3]),

		"axes":       elementHandler(layer, cfg, axesDraw),
		"axis":       elementHandler(layer, cfg, axisDraw),
		"grid":       elementHandler(layer, cfg, gridDraw),
		"background": elementHandler(layer, cfg, backgroundDraw),
		"legend":     elementHandler(layer, cfg, legendDraw),
	}
	for name, el := range elements {
		m[name] = elementHandler(layer, cfg, el.draw)
	}
	return Walk(doc.Items(), m, false)
}

// elementHandler adapts an element entry point to the binder's Handler
// shape.
func elementHandler(layer *viz.Layer, cfg *PlotConfig, fn func(*viz.Layer, *PlotConfig, *sexpr.Expr) error) Handler {
	return func(e *sexpr.Expr) error {
		return fn(layer, cfg, e)
	}
}

// backgroundDraw fills and strokes the active clip rectangle behind the
// plot area.
func backgroundDraw(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	clip := cfg.Clip(layer)
	stroke := viz.StrokeStyle{Color: layer.Foreground, Width: viz.Pt(1)}
	fill := viz.FillStyle{Hidden: true}

	err := Walk(e.Tail(), HandlerMap{
		"color": All(
			toColor(&stroke.Color),
			toFillSolid(&fill),
		),
		"fill":         toFill(&fill),
		"stroke-color": toColor(&stroke.Color),
		"stroke-width": toMeasure(&stroke.Width),
		"stroke-style": toStrokeDash(&stroke),
	}, true)
	if err != nil {
		return err
	}

	p := viz.NewPath()
	p.Rectangle(clip)
	return drawShape(layer, clip, p, stroke, fill)
}

// mapX maps a normalized scale coordinate into device x within a clip
// rectangle.
func mapX(clip viz.Rect, t float64) float64 {
	return clip.X + t*clip.W
}

// mapY maps a normalized scale coordinate into device y within a clip
// rectangle. Scale space grows upward, device space downward.
func mapY(clip viz.Rect, t float64) float64 {
	return clip.Y + (1-t)*clip.H
}

// drawShape submits one shape as a fill followed by a stroke, both
// confined to the clip rectangle.
func drawShape(layer *viz.Layer, clip viz.Rect, p *viz.Path, stroke viz.StrokeStyle, fill viz.FillStyle) error {
	if err := layer.FillPath(&clip, p, fill); err != nil {
		return err
	}
	return layer.StrokePath(&clip, p, stroke)
}
