package plot

import (
	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

// LegendPosition names the corner of the clip rectangle the legend box
// is anchored to.
type LegendPosition int

const (
	LegendTopRight LegendPosition = iota
	LegendTopLeft
	LegendBottomRight
	LegendBottomLeft
)

var legendPositions = map[string]LegendPosition{
	"top-right":    LegendTopRight,
	"top-left":     LegendTopLeft,
	"bottom-right": LegendBottomRight,
	"bottom-left":  LegendBottomLeft,
}

type legendItem struct {
	label string
	color viz.Color
}

type legendConfig struct {
	position LegendPosition
	items    []legendItem

	fontSize viz.Measure
	color    viz.Color
}

func legendConfigure(layer *viz.Layer, c *legendConfig, e *sexpr.Expr) error {
	c.fontSize = layer.FontSize
	c.color = layer.Foreground

	return Walk(e.Tail(), HandlerMap{
		"position":  toEnum(&c.position, legendPositions),
		"font-size": toMeasure(&c.fontSize),
		"color":     toColor(&c.color),

		"item": func(item *sexpr.Expr) error {
			entry := legendItem{color: layer.Foreground}
			err := Walk(item.Tail(), HandlerMap{
				"label": toString(&entry.label),
				"color": toColor(&entry.color),
			}, true)
			if err != nil {
				return err
			}
			if entry.label == "" {
				return configErrorf("legend item is missing a label")
			}
			c.items = append(c.items, entry)
			return nil
		},
	}, true)
}

// legendDraw stacks the item rows in the configured corner, each row a
// color swatch followed by its label.
func legendDraw(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c legendConfig
	if err := legendConfigure(layer, &c, e); err != nil {
		return err
	}
	if len(c.items) == 0 {
		return nil
	}
	clip := cfg.Clip(layer)
	t := layer.Measures()

	fontPx := viz.ToPixels(t, c.fontSize)
	swatch := fontPx * 0.8
	rowH := fontPx * 1.5
	margin := viz.ToPixels(t, viz.Rem(1))

	var x, y float64
	left := c.position == LegendTopLeft || c.position == LegendBottomLeft
	top := c.position == LegendTopLeft || c.position == LegendTopRight
	if left {
		x = clip.X + margin
	} else {
		x = clip.X + clip.W - margin
	}
	if top {
		y = clip.Y + margin
	} else {
		y = clip.Y + clip.H - margin - rowH*float64(len(c.items)-1)
	}

	style := viz.TextStyle{Color: c.color, FontSize: c.fontSize}
	for _, item := range c.items {
		var swatchX, labelX, labelAX float64
		if left {
			swatchX = x
			labelX = x + swatch + fontPx*0.5
			labelAX = 0
		} else {
			swatchX = x - swatch
			labelX = x - swatch - fontPx*0.5
			labelAX = 1
		}

		p := viz.NewPath()
		p.Rectangle(viz.NewRect(swatchX, y-swatch/2, swatch, swatch))
		if err := layer.FillPath(&clip, p, viz.SolidFill(item.color)); err != nil {
			return err
		}
		if err := layer.DrawText(&clip, item.label, viz.Pt2(labelX, y), labelAX, 0.5, style); err != nil {
			return err
		}
		y += rowH
	}
	return nil
}
