package plot

import (
	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

type polygonsConfig struct {
	x      DataBuffer
	y      DataBuffer
	scaleX ScaleConfig
	scaleY ScaleConfig
	stroke viz.StrokeStyle
	fill   viz.FillStyle
}

func polygonsConfigure(layer *viz.Layer, cfg *PlotConfig, c *polygonsConfig, e *sexpr.Expr) error {
	c.scaleX = cfg.ScaleX
	c.scaleY = cfg.ScaleY
	c.stroke = viz.StrokeStyle{Color: layer.Foreground, Width: viz.Px(0)}
	c.fill = viz.SolidFill(layer.Foreground)

	err := Walk(e.Tail(), merge(HandlerMap{
		"data-x": toData(&c.x),
		"data-y": toData(&c.y),

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

func polygonsAutorange(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c polygonsConfig
	if err := polygonsConfigure(layer, cfg, &c, e); err != nil {
		return err
	}
	cfg.ScaleX.Fit(c.x)
	cfg.ScaleY.Fit(c.y)
	return nil
}

// polygonsDraw closes one polygon through all translated points in
// series order.
func polygonsDraw(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c polygonsConfig
	if err := polygonsConfigure(layer, cfg, &c, e); err != nil {
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
	if len(xs) == 0 {
		return nil
	}

	p := viz.NewPath()
	for i := range xs {
		sx := mapX(clip, xs[i])
		sy := mapY(clip, ys[i])
		if i == 0 {
			p.MoveTo(sx, sy)
		} else {
			p.LineTo(sx, sy)
		}
	}
	p.Close()
	return drawShape(layer, clip, p, c.stroke, c.fill)
}
