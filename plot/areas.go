package plot

import (
	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

type areasConfig struct {
	direction Direction
	x         DataBuffer
	xoffset   DataBuffer
	y         DataBuffer
	yoffset   DataBuffer
	scaleX    ScaleConfig
	scaleY    ScaleConfig
	stroke    viz.StrokeStyle
	fill      viz.FillStyle
}

func areasConfigure(layer *viz.Layer, cfg *PlotConfig, c *areasConfig, e *sexpr.Expr) error {
	c.scaleX = cfg.ScaleX
	c.scaleY = cfg.ScaleY
	c.stroke = viz.StrokeStyle{Color: layer.Foreground, Width: viz.Px(0)}
	c.fill = viz.SolidFill(layer.Foreground)

	err := Walk(e.Tail(), merge(HandlerMap{
		"data-x":      toData(&c.x),
		"data-y":      toData(&c.y),
		"data-x-high": toData(&c.x),
		"data-y-high": toData(&c.y),
		"data-x-low":  toData(&c.xoffset),
		"data-y-low":  toData(&c.yoffset),

		"stroke-color": toColor(&c.stroke.Color),
		"stroke-width": toMeasure(&c.stroke.Width),
		"stroke-style": toStrokeDash(&c.stroke),
		"fill":         toFill(&c.fill),
		"color": All(
			toColor(&c.stroke.Color),
			toFillSolid(&c.fill),
		),

		"direction": toEnum(&c.direction, directions),
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

func areasAutorange(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c areasConfig
	if err := areasConfigure(layer, cfg, &c, e); err != nil {
		return err
	}
	cfg.ScaleX.Fit(c.x)
	cfg.ScaleX.Fit(c.xoffset)
	cfg.ScaleY.Fit(c.y)
	cfg.ScaleY.Fit(c.yoffset)
	return nil
}

// areasDraw fills the region between the series and its baseline: the
// low series where given, the zero line otherwise. The outline walks the
// series forward and the baseline backward so the polygon closes without
// self-intersection.
func areasDraw(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c areasConfig
	if err := areasConfigure(layer, cfg, &c, e); err != nil {
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
	xoffsets, err := c.scaleX.TranslateAll(c.xoffset)
	if err != nil {
		return err
	}
	yoffsets, err := c.scaleY.TranslateAll(c.yoffset)
	if err != nil {
		return err
	}
	if len(xs) == 0 {
		return nil
	}

	p := viz.NewPath()
	switch c.direction {
	case DirectionHorizontal:
		x0 := c.scaleX.TranslateZero()
		for i := range xs {
			sx := mapX(clip, xs[i])
			sy := mapY(clip, ys[i])
			if i == 0 {
				p.MoveTo(sx, sy)
			} else {
				p.LineTo(sx, sy)
			}
		}
		for i := len(xs) - 1; i >= 0; i-- {
			base := x0
			if len(xoffsets) > 0 {
				base = xoffsets[i]
			}
			p.LineTo(mapX(clip, base), mapY(clip, ys[i]))
		}
	default:
		y0 := c.scaleY.TranslateZero()
		for i := range xs {
			sx := mapX(clip, xs[i])
			sy := mapY(clip, ys[i])
			if i == 0 {
				p.MoveTo(sx, sy)
			} else {
				p.LineTo(sx, sy)
			}
		}
		for i := len(xs) - 1; i >= 0; i-- {
			base := y0
			if len(yoffsets) > 0 {
				base = yoffsets[i]
			}
			p.LineTo(mapX(clip, xs[i]), mapY(clip, base))
		}
	}
	p.Close()
	return drawShape(layer, clip, p, c.stroke, c.fill)
}
