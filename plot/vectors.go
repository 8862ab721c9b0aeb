package plot

import (
	"math"

	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

const (
	defaultVectorWidthPT = 1.5
	arrowHeadScale       = 4 // head length as a multiple of the stroke width
)

type vectorsConfig struct {
	x      DataBuffer
	y      DataBuffer
	xhigh  DataBuffer
	yhigh  DataBuffer
	scaleX ScaleConfig
	scaleY ScaleConfig
	stroke viz.StrokeStyle
}

func vectorsConfigure(layer *viz.Layer, cfg *PlotConfig, c *vectorsConfig, e *sexpr.Expr) error {
	c.scaleX = cfg.ScaleX
	c.scaleY = cfg.ScaleY
	c.stroke = viz.StrokeStyle{Color: layer.Foreground, Width: viz.Pt(defaultVectorWidthPT)}

	err := Walk(e.Tail(), merge(HandlerMap{
		"data-x":      toData(&c.x),
		"data-y":      toData(&c.y),
		"data-x-high": toData(&c.xhigh),
		"data-y-high": toData(&c.yhigh),

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
	if c.xhigh.Len() != c.x.Len() {
		return validationErrorf("the length of the 'data-x' and 'data-x-high' lists must be equal")
	}
	if c.yhigh.Len() != c.y.Len() {
		return validationErrorf("the length of the 'data-y' and 'data-y-high' lists must be equal")
	}
	return nil
}

func vectorsAutorange(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c vectorsConfig
	if err := vectorsConfigure(layer, cfg, &c, e); err != nil {
		return err
	}
	cfg.ScaleX.Fit(c.x)
	cfg.ScaleX.Fit(c.xhigh)
	cfg.ScaleY.Fit(c.y)
	cfg.ScaleY.Fit(c.yhigh)
	return nil
}

// vectorsDraw strokes an arrow per point from (x, y) to (x-high, y-high)
// with a filled triangular head at the tip.
func vectorsDraw(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c vectorsConfig
	if err := vectorsConfigure(layer, cfg, &c, e); err != nil {
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
	xhighs, err := c.scaleX.TranslateAll(c.xhigh)
	if err != nil {
		return err
	}
	yhighs, err := c.scaleY.TranslateAll(c.yhigh)
	if err != nil {
		return err
	}

	head := arrowHeadScale * viz.ToPixels(layer.Measures(), c.stroke.Width)
	for i := range xs {
		from := viz.Pt2(mapX(clip, xs[i]), mapY(clip, ys[i]))
		to := viz.Pt2(mapX(clip, xhighs[i]), mapY(clip, yhighs[i]))

		shaft := viz.NewPath()
		shaft.MoveTo(from.X, from.Y)
		shaft.LineTo(to.X, to.Y)
		if err := layer.StrokePath(&clip, shaft, c.stroke); err != nil {
			return err
		}

		dx, dy := to.X-from.X, to.Y-from.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		ux, uy := dx/length, dy/length

		tip := viz.NewPath()
		tip.MoveTo(to.X, to.Y)
		tip.LineTo(to.X-head*ux+head/2*uy, to.Y-head*uy-head/2*ux)
		tip.LineTo(to.X-head*ux-head/2*uy, to.Y-head*uy+head/2*ux)
		tip.Close()
		if err := layer.FillPath(&clip, tip, viz.SolidFill(c.stroke.Color)); err != nil {
			return err
		}
	}
	return nil
}
