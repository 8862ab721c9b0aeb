package plot

import (
	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

const (
	defaultErrorbarWidthPT = 1
	defaultErrorbarCapPT   = 6
)

type errorbarsConfig struct {
	direction Direction
	x         DataBuffer
	xlow      DataBuffer
	xhigh     DataBuffer
	y         DataBuffer
	ylow      DataBuffer
	yhigh     DataBuffer
	scaleX    ScaleConfig
	scaleY    ScaleConfig
	stroke    viz.StrokeStyle

	capSize float64
}

func errorbarsConfigure(layer *viz.Layer, cfg *PlotConfig, c *errorbarsConfig, e *sexpr.Expr) error {
	c.scaleX = cfg.ScaleX
	c.scaleY = cfg.ScaleY
	c.stroke = viz.StrokeStyle{Color: layer.Foreground, Width: viz.Pt(defaultErrorbarWidthPT)}

	err := Walk(e.Tail(), merge(HandlerMap{
		"data-x":      toData(&c.x),
		"data-x-low":  toData(&c.xlow),
		"data-x-high": toData(&c.xhigh),
		"data-y":      toData(&c.y),
		"data-y-low":  toData(&c.ylow),
		"data-y-high": toData(&c.yhigh),

		"width": toSize(layer, &c.capSize),

		"color":        toColor(&c.stroke.Color),
		"stroke-color": toColor(&c.stroke.Color),
		"stroke-width": toMeasure(&c.stroke.Width),
		"stroke-style": toStrokeDash(&c.stroke),

		"direction": toEnum(&c.direction, directions),
	}, scaleHandlers(&c.scaleX, &c.scaleY)), true)
	if err != nil {
		return err
	}

	switch c.direction {
	case DirectionHorizontal:
		if c.xlow.Len() != c.y.Len() || c.xhigh.Len() != c.y.Len() {
			return validationErrorf("the length of the 'data-y', 'data-x-low' and 'data-x-high' lists must be equal")
		}
	default:
		if c.ylow.Len() != c.x.Len() || c.yhigh.Len() != c.x.Len() {
			return validationErrorf("the length of the 'data-x', 'data-y-low' and 'data-y-high' lists must be equal")
		}
	}
	return nil
}

func errorbarsAutorange(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c errorbarsConfig
	if err := errorbarsConfigure(layer, cfg, &c, e); err != nil {
		return err
	}
	cfg.ScaleX.Fit(c.x)
	cfg.ScaleX.Fit(c.xlow)
	cfg.ScaleX.Fit(c.xhigh)
	cfg.ScaleY.Fit(c.y)
	cfg.ScaleY.Fit(c.ylow)
	cfg.ScaleY.Fit(c.yhigh)
	return nil
}

// errorbarsDraw strokes one low..high bar with flat end caps per point.
func errorbarsDraw(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c errorbarsConfig
	if err := errorbarsConfigure(layer, cfg, &c, e); err != nil {
		return err
	}
	clip := cfg.Clip(layer)

	capPx := c.capSize
	if capPx == 0 {
		capPx = viz.ToPixels(layer.Measures(), viz.Pt(defaultErrorbarCapPT))
	}

	if c.direction == DirectionHorizontal {
		ys, err := c.scaleY.TranslateAll(c.y)
		if err != nil {
			return err
		}
		lows, err := c.scaleX.TranslateAll(c.xlow)
		if err != nil {
			return err
		}
		highs, err := c.scaleX.TranslateAll(c.xhigh)
		if err != nil {
			return err
		}
		for i := range ys {
			sy := mapY(clip, ys[i])
			sx1 := mapX(clip, lows[i])
			sx2 := mapX(clip, highs[i])

			p := viz.NewPath()
			p.MoveTo(sx1, sy)
			p.LineTo(sx2, sy)
			p.MoveTo(sx1, sy-capPx/2)
			p.LineTo(sx1, sy+capPx/2)
			p.MoveTo(sx2, sy-capPx/2)
			p.LineTo(sx2, sy+capPx/2)
			if err := layer.StrokePath(&clip, p, c.stroke); err != nil {
				return err
			}
		}
		return nil
	}

	xs, err := c.scaleX.TranslateAll(c.x)
	if err != nil {
		return err
	}
	lows, err := c.scaleY.TranslateAll(c.ylow)
	if err != nil {
		return err
	}
	highs, err := c.scaleY.TranslateAll(c.yhigh)
	if err != nil {
		return err
	}
	for i := range xs {
		sx := mapX(clip, xs[i])
		sy1 := mapY(clip, lows[i])
		sy2 := mapY(clip, highs[i])

		p := viz.NewPath()
		p.MoveTo(sx, sy1)
		p.LineTo(sx, sy2)
		p.MoveTo(sx-capPx/2, sy1)
		p.LineTo(sx+capPx/2, sy1)
		p.MoveTo(sx-capPx/2, sy2)
		p.LineTo(sx+capPx/2, sy2)
		if err := layer.StrokePath(&clip, p, c.stroke); err != nil {
			return err
		}
	}
	return nil
}
