package plot

import (
	"github.com/gographics/viz"
)

// PlotConfig is the per-figure shared state: the two axis scales, the
// margin box, and the layout stack of nested clip regions. It is owned
// by the driver for the duration of one render.
type PlotConfig struct {
	ScaleX ScaleConfig
	ScaleY ScaleConfig

	// Margins are the top, right, bottom, left figure margins.
	Margins [4]viz.Measure

	layout []viz.Rect
}

// NewPlotConfig returns a figure configuration with linear scales and
// 1rem margins.
func NewPlotConfig() *PlotConfig {
	return &PlotConfig{
		Margins: [4]viz.Measure{viz.Rem(1), viz.Rem(1), viz.Rem(1), viz.Rem(1)},
	}
}

// Clip resolves the active clip rectangle for drawing. With an empty
// layout stack this is the margin box of the full layer rectangle, with
// each margin resolved to device pixels; otherwise the innermost pushed
// layout region is returned unchanged, letting nested layout contexts
// (grids of sub-plots) override the default without every drawing
// routine knowing about nesting.
func (p *PlotConfig) Clip(layer *viz.Layer) viz.Rect {
	if n := len(p.layout); n > 0 {
		return p.layout[n-1]
	}
	t := layer.Measures()
	return viz.MarginBox(layer.Rect(),
		viz.ToPixels(t, p.Margins[0]),
		viz.ToPixels(t, p.Margins[1]),
		viz.ToPixels(t, p.Margins[2]),
		viz.ToPixels(t, p.Margins[3]))
}

// PushLayout makes r the innermost active clip region.
func (p *PlotConfig) PushLayout(r viz.Rect) {
	p.layout = append(p.layout, r)
}

// PopLayout removes the innermost clip region. Popping an empty stack
// is a no-op.
func (p *PlotConfig) PopLayout() {
	if n := len(p.layout); n > 0 {
		p.layout = p.layout[:n-1]
	}
}
