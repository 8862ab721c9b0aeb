package plot

import (
	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

const defaultRectangleSizePT = 8

type rectanglesConfig struct {
	x      DataBuffer
	y      DataBuffer
	scaleX ScaleConfig
	scaleY ScaleConfig
	stroke viz.StrokeStyle
	fill   viz.FillStyle

	width   float64
	widths  []viz.Measure
	height  float64
	heights []viz.Measure
}

func rectanglesConfigure(layer *viz.Layer, cfg *PlotConfig, c *rectanglesConfig, e *sexpr.Expr) error {
	c.scaleX = cfg.ScaleX
	c.scaleY = cfg.ScaleY
	c.stroke = viz.StrokeStyle{Color: layer.Foreground, Width: viz.Px(0)}
	c.fill = viz.SolidFill(layer.Foreground)

	err := Walk(e.Tail(), merge(HandlerMap{
		"data-x": toData(&c.x),
		"data-y": toData(&c.y),

		"width":   toSize(layer, &c.width),
		"widths":  toMeasures(&c.widths),
		"height":  toSize(layer, &c.height),
		"heights": toMeasures(&c.heights),

		"stroke-color": toColor(&c.stroke.Color),
		"stroke-width": toMeasure(&c.stroke.Width),
		"stroke-style": toStrokeDash(&c.stroke),
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

func rectanglesAutorange(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c rectanglesConfig
	if err := rectanglesConfigure(layer, cfg, &c, e); err != nil {
		return err
	}
	cfg.ScaleX.Fit(c.x)
	cfg.ScaleY.Fit(c.y)
	return nil
}

func rectangleExtent(layer *viz.Layer, list []viz.Measure, scalar float64, i int) float64 {
	if len(list) > 0 {
		return viz.ToPixels(layer.Measures(), list[i%len(list)])
	}
	if scalar != 0 {
		return scalar
	}
	return viz.ToPixels(layer.Measures(), viz.Pt(defaultRectangleSizePT))
}

// rectanglesDraw emits one centered rectangle per point.
func rectanglesDraw(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c rectanglesConfig
	if err := rectanglesConfigure(layer, cfg, &c, e); err != nil {
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
		w := rectangleExtent(layer, c.widths, c.width, i)
		h := rectangleExtent(layer, c.heights, c.height, i)
		sx := mapX(clip, xs[i])
		sy := mapY(clip, ys[i])

		p := viz.NewPath()
		p.Rectangle(viz.NewRect(sx-w/2, sy-h/2, w, h))
		if err := drawShape(layer, clip, p, c.stroke, c.fill); err != nil {
			return err
		}
	}
	return nil
}
