package plot

import (
	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

const defaultLineWidthPT = 2

type linesConfig struct {
	x      DataBuffer
	y      DataBuffer
	scaleX ScaleConfig
	scaleY ScaleConfig
	stroke viz.StrokeStyle
}

func linesConfigure(layer *viz.Layer, cfg *PlotConfig, c *linesConfig, e *sexpr.Expr) error {
	c.scaleX = cfg.ScaleX
	c.scaleY = cfg.ScaleY
	c.stroke = viz.StrokeStyle{Color: layer.Foreground, Width: viz.Pt(defaultLineWidthPT)}

	err := Walk(e.Tail(), merge(HandlerMap{
		"data-x": toData(&c.x),
		"data-y": toData(&c.y),

		"color":        toColor(&c.stroke.Color),
		"stroke-color": toColor(&c.stroke.Color),
		"stroke-width": toMeasure(&c.stroke.Width),
		"stroke-style": toStrokeDash(&c.stroke),
	}, scaleHandlers(&c.scaleX, &c.scaleY)), true)
	if err != nil {
		return err
	}

	if c.x.Len() != c.y.Len() {
		return validationErrorf("the length of the 'data-x' and 'data-y' lists must be equal")
	}
	return nil
}

func linesAutorange(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c linesConfig
	if err := linesConfigure(layer, cfg, &c, e); err != nil {
		return err
	}
	cfg.ScaleX.Fit(c.x)
	cfg.ScaleY.Fit(c.y)
	return nil
}

// linesDraw strokes one open polyline through the translated points, in
// series order.
func linesDraw(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c linesConfig
	if err := linesConfigure(layer, cfg, &c, e); err != nil {
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
	return layer.StrokePath(&clip, p, c.stroke)
}
