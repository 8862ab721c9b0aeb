package plot

import (
	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

const (
	defaultTickLengthPT = 4
	defaultAxisWidthPT  = 1
)

// AxisPosition names the side of the clip rectangle an axis runs along.
type AxisPosition int

const (
	AxisBottom AxisPosition = iota
	AxisLeft
	AxisTop
	AxisRight
)

var axisPositions = map[string]AxisPosition{
	"bottom": AxisBottom,
	"left":   AxisLeft,
	"top":    AxisTop,
	"right":  AxisRight,
}

type axisConfig struct {
	position AxisPosition
	title    string
	stroke   viz.StrokeStyle
	scaleX   ScaleConfig
	scaleY   ScaleConfig

	labelFontSize viz.Measure
	labelColor    viz.Color
	labelPadding  viz.Measure
}

func axisConfigure(layer *viz.Layer, cfg *PlotConfig, c *axisConfig, e *sexpr.Expr) error {
	c.scaleX = cfg.ScaleX
	c.scaleY = cfg.ScaleY
	c.stroke = viz.StrokeStyle{Color: layer.Foreground, Width: viz.Pt(defaultAxisWidthPT)}
	c.labelFontSize = layer.FontSize
	c.labelColor = layer.Foreground

	return Walk(e.Tail(), merge(HandlerMap{
		"position": toEnum(&c.position, axisPositions),
		"title":    toString(&c.title),

		"stroke-color": toColor(&c.stroke.Color),
		"stroke-width": toMeasure(&c.stroke.Width),
		"stroke-style": toStrokeDash(&c.stroke),
		"color":        toColor(&c.stroke.Color),

		"label-font-size": toMeasure(&c.labelFontSize),
		"label-color":     toColor(&c.labelColor),
		"label-padding":   toMeasure(&c.labelPadding),
	}, scaleHandlers(&c.scaleX, &c.scaleY)), true)
}

// axisDraw renders one axis: the border line along the configured side,
// a tick mark per scale tick, and a label per tick on the outward side.
func axisDraw(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c axisConfig
	if err := axisConfigure(layer, cfg, &c, e); err != nil {
		return err
	}
	return drawAxis(layer, cfg, &c)
}

// axesDraw renders the full frame: all four sides, with tick labels on
// the bottom and left only.
func axesDraw(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c axisConfig
	if err := axisConfigure(layer, cfg, &c, e); err != nil {
		return err
	}
	for _, pos := range []AxisPosition{AxisBottom, AxisLeft, AxisTop, AxisRight} {
		side := c
		side.position = pos
		side.title = ""
		if pos == AxisBottom || pos == AxisLeft {
			side.title = c.title
		}
		if err := drawAxis(layer, cfg, &side); err != nil {
			return err
		}
	}
	return nil
}

func drawAxis(layer *viz.Layer, cfg *PlotConfig, c *axisConfig) error {
	clip := cfg.Clip(layer)
	t := layer.Measures()
	tickLen := viz.ToPixels(t, viz.Pt(defaultTickLengthPT))
	padding := labelPadding(layer, c.labelPadding, c.labelFontSize)
	style := viz.TextStyle{Color: c.labelColor, FontSize: c.labelFontSize}

	withLabels := c.position == AxisBottom || c.position == AxisLeft

	var ticks Ticks
	horizontal := c.position == AxisBottom || c.position == AxisTop
	if horizontal {
		ticks = c.scaleX.Layout()
	} else {
		ticks = c.scaleY.Layout()
	}

	line := viz.NewPath()
	switch c.position {
	case AxisBottom:
		line.MoveTo(clip.X, clip.Y+clip.H)
		line.LineTo(clip.X+clip.W, clip.Y+clip.H)
	case AxisTop:
		line.MoveTo(clip.X, clip.Y)
		line.LineTo(clip.X+clip.W, clip.Y)
	case AxisLeft:
		line.MoveTo(clip.X, clip.Y)
		line.LineTo(clip.X, clip.Y+clip.H)
	case AxisRight:
		line.MoveTo(clip.X+clip.W, clip.Y)
		line.LineTo(clip.X+clip.W, clip.Y+clip.H)
	}
	// Axis furniture extends outside the clip region, so it is stroked
	// against the full layer.
	if err := layer.StrokePath(nil, line, c.stroke); err != nil {
		return err
	}

	for i, pos := range ticks.Positions {
		tick := viz.NewPath()
		switch c.position {
		case AxisBottom:
			sx := mapX(clip, pos)
			sy := clip.Y + clip.H
			tick.MoveTo(sx, sy)
			tick.LineTo(sx, sy+tickLen)
			if withLabels {
				at := viz.Pt2(sx, sy+tickLen+padding)
				if err := layer.DrawText(nil, ticks.Labels[i], at, 0.5, 1, style); err != nil {
					return err
				}
			}
		case AxisTop:
			sx := mapX(clip, pos)
			tick.MoveTo(sx, clip.Y)
			tick.LineTo(sx, clip.Y-tickLen)
		case AxisLeft:
			sy := mapY(clip, pos)
			tick.MoveTo(clip.X, sy)
			tick.LineTo(clip.X-tickLen, sy)
			if withLabels {
				at := viz.Pt2(clip.X-tickLen-padding, sy)
				if err := layer.DrawText(nil, ticks.Labels[i], at, 1, 0.5, style); err != nil {
					return err
				}
			}
		case AxisRight:
			sy := mapY(clip, pos)
			tick.MoveTo(clip.X+clip.W, sy)
			tick.LineTo(clip.X+clip.W+tickLen, sy)
		}
		if err := layer.StrokePath(nil, tick, c.stroke); err != nil {
			return err
		}
	}

	if c.title != "" && withLabels {
		fontPx := viz.ToPixels(t, viz.MeasureOr(c.labelFontSize, layer.FontSize))
		switch c.position {
		case AxisBottom:
			at := viz.Pt2(clip.X+clip.W/2, clip.Y+clip.H+tickLen+2*padding+fontPx)
			if err := layer.DrawText(nil, c.title, at, 0.5, 1, style); err != nil {
				return err
			}
		case AxisLeft:
			at := viz.Pt2(clip.X-tickLen-2*padding-fontPx, clip.Y+clip.H/2)
			if err := layer.DrawText(nil, c.title, at, 1, 0.5, style); err != nil {
				return err
			}
		}
	}
	return nil
}
