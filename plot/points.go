package plot

import (
	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

const defaultPointSizePT = 4

type pointsConfig struct {
	x      DataBuffer
	y      DataBuffer
	scaleX ScaleConfig
	scaleY ScaleConfig
	stroke viz.StrokeStyle
	fill   viz.FillStyle

	size  float64
	sizes []viz.Measure
}

func pointsConfigure(layer *viz.Layer, cfg *PlotConfig, c *pointsConfig, e *sexpr.Expr) error {
	c.scaleX = cfg.ScaleX
	c.scaleY = cfg.ScaleY
	c.stroke = viz.StrokeStyle{Color: layer.Foreground, Width: viz.Px(0)}
	c.fill = viz.SolidFill(layer.Foreground)

	err := Walk(e.Tail(), merge(HandlerMap{
		"data-x": toData(&c.x),
		"data-y": toData(&c.y),

		"size":  toSize(layer, &c.size),
		"sizes": toMeasures(&c.sizes),

		"stroke-color": toColor(&c.stroke.Color),
		"stroke-width": toMeasure(&c.stroke.Width),
		"fill":         toFill(&c.fill),
		"color": All(
			toColor(&c.stroke.Color),
			toFillSolid(&c.fill),
		),
	}, scaleHandlers(&c.scaleX, &c.scaleY)), true)
	if err != nil {
		return err
	}

	if c.x.Len() != c.y.Len() {
		return validationErrorf("the length of the 'data-x' and 'data-y' lists must be equal")
	}
	return nil
}

func pointsAutorange(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c pointsConfig
	if err := pointsConfigure(layer, cfg, &c, e); err != nil {
		return err
	}
	cfg.ScaleX.Fit(c.x)
	cfg.ScaleY.Fit(c.y)
	return nil
}

// pointSize resolves the diameter of marker i, cycling an explicit sizes
// series, falling back to the scalar size, then to a fixed 4pt.
func pointSize(layer *viz.Layer, c *pointsConfig, i int) float64 {
	if len(c.sizes) > 0 {
		return viz.ToPixels(layer.Measures(), c.sizes[i%len(c.sizes)])
	}
	if c.size != 0 {
		return c.size
	}
	return viz.ToPixels(layer.Measures(), viz.Pt(defaultPointSizePT))
}

// pointsDraw emits one circular marker per point.
func pointsDraw(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c pointsConfig
	if err := pointsConfigure(layer, cfg, &c, e); err != nil {
		return err
	}
	clip := cfg.Clip(layer)

	xs, err := c.scaleX.TranslateAll(c.x)
	if err != nil {
		return err
	}
	ys, err := c.scaleY.TranslateAll(c.y)
	if err != nil {
		return err
	}

	for i := range xs {
		p := viz.NewPath()
		p.Circle(mapX(clip, xs[i]), mapY(clip, ys[i]), pointSize(layer, &c, i)/2)
		if err := drawShape(layer, clip, p, c.stroke, c.fill); err != nil {
			return err
		}
	}
	return nil
}
