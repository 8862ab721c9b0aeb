package viz

// Canvas is the drawing sink a Layer submits geometry to. When a clip
// rectangle is supplied, geometry outside it must not be rasterized.
// Implementations: the raster backend (Raster) and the SVG backend (SVG).
type Canvas interface {
	FillPath(clip *Rect, p *Path, style FillStyle) error
	StrokePath(clip *Rect, p *Path, style StrokeStyle) error
	// DrawText draws text anchored at the given point. The anchor
	// fractions ax, ay are in [0, 1]: ax is the fraction of the text
	// width placed left of the point (0 left-aligned, 1 right-aligned),
	// ay the fraction of the text height placed below it (0 puts the
	// text fully above the point, 1 fully below, 0.5 centers).
	DrawText(clip *Rect, text string, at Point, ax, ay float64, style TextStyle) error
}

// Layer is the mutable render target geometry is drawn onto. It carries
// the typographic environment (DPI, root font size, default font size)
// and the current foreground color that element styles default to.
//
// A Layer assumes single-writer access; concurrent rendering requires an
// independent Layer per goroutine.
type Layer struct {
	Width      float64 // logical width in device pixels
	Height     float64 // logical height in device pixels
	DPI        float64
	RootEM     float64 // root font size in points
	Foreground Color
	FontSize   Measure // default label font size

	canvas Canvas
}

// LayerOption configures a Layer during creation.
type LayerOption func(*Layer)

// WithDPI sets the layer resolution in dots per inch.
func WithDPI(dpi float64) LayerOption {
	return func(l *Layer) { l.DPI = dpi }
}

// WithRootEM sets the root font size in points.
func WithRootEM(rem float64) LayerOption {
	return func(l *Layer) { l.RootEM = rem }
}

// WithForeground sets the foreground color styles default to.
func WithForeground(c Color) LayerOption {
	return func(l *Layer) { l.Foreground = c }
}

// WithFontSize sets the default label font size.
func WithFontSize(m Measure) LayerOption {
	return func(l *Layer) { l.FontSize = m }
}

// NewLayer creates a layer drawing through the given canvas. Most callers
// use NewRasterLayer or NewSVGLayer instead.
func NewLayer(width, height float64, canvas Canvas, opts ...LayerOption) *Layer {
	l := &Layer{
		Width:      width,
		Height:     height,
		DPI:        96,
		RootEM:     12,
		Foreground: Black,
		FontSize:   Pt(11),
		canvas:     canvas,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Rect returns the full layer rectangle.
func (l *Layer) Rect() Rect {
	return Rect{W: l.Width, H: l.Height}
}

// Measures returns the measure-resolution table for this layer.
func (l *Layer) Measures() MeasureTable {
	return MeasureTable{DPI: l.DPI, RootEM: l.RootEM}
}

// Canvas returns the backend this layer draws through.
func (l *Layer) Canvas() Canvas {
	return l.canvas
}

// FillPath fills a path, optionally clipped. Hidden fills are dropped
// without reaching the backend.
func (l *Layer) FillPath(clip *Rect, p *Path, style FillStyle) error {
	if style.Hidden || p.Empty() {
		return nil
	}
	return l.canvas.FillPath(clip, p, style)
}

// StrokePath strokes a path, optionally clipped. Zero-width strokes are
// dropped without reaching the backend.
func (l *Layer) StrokePath(clip *Rect, p *Path, style StrokeStyle) error {
	if p.Empty() || ToPixels(l.Measures(), style.Width) <= 0 {
		return nil
	}
	return l.canvas.StrokePath(clip, p, style)
}

// DrawText draws anchored text, optionally clipped. See Canvas.DrawText
// for the anchor semantics.
func (l *Layer) DrawText(clip *Rect, text string, at Point, ax, ay float64, style TextStyle) error {
	if text == "" {
		return nil
	}
	return l.canvas.DrawText(clip, text, at, ax, ay, style)
}

// StrokeLine strokes a single line segment.
func (l *Layer) StrokeLine(clip *Rect, a, b Point, style StrokeStyle) error {
	p := NewPath()
	p.MoveTo(a.X, a.Y)
	p.LineTo(b.X, b.Y)
	return l.StrokePath(clip, p, style)
}

// StrokeRect strokes a rectangle outline.
func (l *Layer) StrokeRect(clip *Rect, r Rect, style StrokeStyle) error {
	p := NewPath()
	p.Rectangle(r)
	return l.StrokePath(clip, p, style)
}

// FillRect fills a rectangle.
func (l *Layer) FillRect(clip *Rect, r Rect, style FillStyle) error {
	p := NewPath()
	p.Rectangle(r)
	return l.FillPath(clip, p, style)
}
