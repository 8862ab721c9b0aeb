package plot

import (
	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

type gridConfig struct {
	stroke viz.StrokeStyle
	scaleX ScaleConfig
	scaleY ScaleConfig

	drawX bool
	drawY bool
}

// gridAxes is the vocabulary of the grid axis selector.
var gridAxes = map[string]struct{ x, y bool }{
	"both": {true, true},
	"x":    {true, false},
	"y":    {false, true},
}

func gridConfigure(layer *viz.Layer, cfg *PlotConfig, c *gridConfig, e *sexpr.Expr) error {
	c.scaleX = cfg.ScaleX
	c.scaleY = cfg.ScaleY
	c.stroke = viz.StrokeStyle{Color: viz.RGB(0.9, 0.9, 0.9), Width: viz.Pt(1)}
	c.drawX, c.drawY = true, true

	var which struct{ x, y bool }
	which.x, which.y = true, true
	err := Walk(e.Tail(), merge(HandlerMap{
		"axis": toEnum(&which, gridAxes),

		"color":        toColor(&c.stroke.Color),
		"stroke-color": toColor(&c.stroke.Color),
		"stroke-width": toMeasure(&c.stroke.Width),
		"stroke-style": toStrokeDash(&c.stroke),
	}, scaleHandlers(&c.scaleX, &c.scaleY)), true)
	if err != nil {
		return err
	}
	c.drawX, c.drawY = which.x, which.y
	return nil
}

// gridDraw strokes tick-aligned lines across the clip rectangle. The
// lines for the x scale run vertically, those for the y scale
// horizontally.
func gridDraw(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c gridConfig
	if err := gridConfigure(layer, cfg, &c, e); err != nil {
		return err
	}
	clip := cfg.Clip(layer)

	if c.drawX {
		for _, pos := range c.scaleX.Layout().Positions {
			sx := mapX(clip, pos)
			p := viz.NewPath()
			p.MoveTo(sx, clip.Y)
			p.LineTo(sx, clip.Y+clip.H)
			if err := layer.StrokePath(&clip, p, c.stroke); err != nil {
				return err
			}
		}
	}
	if c.drawY {
		for _, pos := range c.scaleY.Layout().Positions {
			sy := mapY(clip, pos)
			p := viz.NewPath()
			p.MoveTo(clip.X, sy)
			p.LineTo(clip.X+clip.W, sy)
			if err := layer.StrokePath(&clip, p, c.stroke); err != nil {
				return err
			}
		}
	}
	return nil
}
