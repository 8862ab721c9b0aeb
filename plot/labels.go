package plot

import (
	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

type labelsConfig struct {
	x      DataBuffer
	y      DataBuffer
	scaleX ScaleConfig
	scaleY ScaleConfig

	labels   []string
	fontSize viz.Measure
	color    viz.Color
	padding  viz.Measure
}

func labelsConfigure(layer *viz.Layer, cfg *PlotConfig, c *labelsConfig, e *sexpr.Expr) error {
	c.scaleX = cfg.ScaleX
	c.scaleY = cfg.ScaleY
	c.fontSize = layer.FontSize
	c.color = layer.Foreground

	err := Walk(e.Tail(), merge(HandlerMap{
		"data-x": toData(&c.x),
		"data-y": toData(&c.y),

		"labels":          toStrings(&c.labels),
		"label-font-size": toMeasure(&c.fontSize),
		"label-color":     toColor(&c.color),
		"label-padding":   toMeasure(&c.padding),
		"color":           toColor(&c.color),
		"font-size":       toMeasure(&c.fontSize),
	}, scaleHandlers(&c.scaleX, &c.scaleY)), true)
	if err != nil {
		return err
	}

	if c.x.Len() != c.y.Len() {
		return validationErrorf("the length of the 'data-x' and 'data-y' lists must be equal")
	}
	if len(c.labels) != c.x.Len() {
		return validationErrorf("the length of the 'data-x' and 'labels' lists must be equal")
	}
	return nil
}

func labelsAutorange(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c labelsConfig
	if err := labelsConfigure(layer, cfg, &c, e); err != nil {
		return err
	}
	cfg.ScaleX.Fit(c.x)
	cfg.ScaleY.Fit(c.y)
	return nil
}

// labelsDraw places one text centered above each anchor point, padded by
// label-padding (0.6em of the label font size by default).
func labelsDraw(layer *viz.Layer, cfg *PlotConfig, e *sexpr.Expr) error {
	var c labelsConfig
	if err := labelsConfigure(layer, cfg, &c, e); err != nil {
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

	padding := labelPadding(layer, c.padding, c.fontSize)
	style := viz.TextStyle{Color: c.color, FontSize: c.fontSize}
	for i, text := range c.labels {
		at := viz.Pt2(mapX(clip, xs[i]), mapY(clip, ys[i])-padding)
		if err := layer.DrawText(nil, text, at, 0.5, 0, style); err != nil {
			return err
		}
	}
	return nil
}
