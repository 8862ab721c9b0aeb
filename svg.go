package viz

import (
	"fmt"
	"io"
	"strings"

	svgf "github.com/ajstarks/svgo/float"
)

// SVG is a Canvas that serializes geometry into an SVG document. The
// document is streamed to the underlying writer; Finish must be called
// after rendering to close it.
type SVG struct {
	layer   *Layer
	doc     *svgf.SVG
	clipSeq int
}

// NewSVGLayer creates a layer that serializes drawing operations into an
// SVG document written to w.
func NewSVGLayer(w io.Writer, width, height float64, opts ...LayerOption) (*Layer, *SVG, error) {
	if width <= 0 || height <= 0 {
		return nil, nil, fmt.Errorf("invalid svg dimensions %gx%g", width, height)
	}
	s := &SVG{doc: svgf.New(w)}
	s.doc.Start(width, height)
	layer := NewLayer(width, height, s, opts...)
	s.layer = layer
	return layer, s, nil
}

// Finish closes the SVG document. The layer must not be drawn to
// afterwards.
func (s *SVG) Finish() {
	s.doc.End()
}

// FillPath implements Canvas.
func (s *SVG) FillPath(clip *Rect, p *Path, style FillStyle) error {
	end := s.pushClip(clip)
	defer end()

	s.doc.Path(pathData(p), fmt.Sprintf(
		`fill="%s" fill-opacity="%.3f" stroke="none"`,
		style.Color.Hex(), style.Color.A))
	return nil
}

// StrokePath implements Canvas.
func (s *SVG) StrokePath(clip *Rect, p *Path, style StrokeStyle) error {
	width := ToPixels(s.layer.Measures(), style.Width)
	if width <= 0 {
		return nil
	}

	end := s.pushClip(clip)
	defer end()

	attrs := []string{
		`fill="none"`,
		fmt.Sprintf(`stroke="%s"`, style.Color.Hex()),
		fmt.Sprintf(`stroke-opacity="%.3f"`, style.Color.A),
		fmt.Sprintf(`stroke-width="%g"`, width),
		fmt.Sprintf(`stroke-linecap="%s"`, svgLineCap(style.Cap)),
		fmt.Sprintf(`stroke-linejoin="%s"`, svgLineJoin(style.Join)),
	}
	switch style.Dash {
	case DashDashed:
		attrs = append(attrs, fmt.Sprintf(`stroke-dasharray="%g,%g"`, width*3, width*3))
	case DashDotted:
		attrs = append(attrs, fmt.Sprintf(`stroke-dasharray="%g,%g"`, width, width*2))
	}
	s.doc.Path(pathData(p), strings.Join(attrs, " "))
	return nil
}

// DrawText implements Canvas.
func (s *SVG) DrawText(clip *Rect, text string, at Point, ax, ay float64, style TextStyle) error {
	size := ToPixels(s.layer.Measures(), style.FontSize)
	if size <= 0 {
		size = ToPixels(s.layer.Measures(), s.layer.FontSize)
	}

	end := s.pushClip(clip)
	defer end()

	s.doc.Text(at.X, at.Y, text, fmt.Sprintf(
		`fill="%s" font-size="%g" font-family="sans-serif" text-anchor="%s" dominant-baseline="%s"`,
		style.Color.Hex(), size, svgTextAnchor(ax), svgBaseline(ay)))
	return nil
}

// pushClip opens a clipped group when a clip rectangle is supplied and
// returns the function closing it.
func (s *SVG) pushClip(clip *Rect) func() {
	if clip == nil {
		return func() {}
	}
	s.clipSeq++
	id := fmt.Sprintf("clip%d", s.clipSeq)
	s.doc.ClipPath(fmt.Sprintf(`id="%s"`, id))
	s.doc.Rect(clip.X, clip.Y, clip.W, clip.H)
	s.doc.ClipEnd()
	s.doc.Group(fmt.Sprintf(`clip-path="url(#%s)"`, id))
	return s.doc.Gend
}

// pathData serializes a Path into SVG path data.
func pathData(p *Path) string {
	var b strings.Builder
	for _, cmd := range p.Commands() {
		switch cmd.Verb {
		case PathMoveTo:
			fmt.Fprintf(&b, "M%g %g", cmd.P.X, cmd.P.Y)
		case PathLineTo:
			fmt.Fprintf(&b, "L%g %g", cmd.P.X, cmd.P.Y)
		case PathCubicTo:
			fmt.Fprintf(&b, "C%g %g %g %g %g %g",
				cmd.C1.X, cmd.C1.Y, cmd.C2.X, cmd.C2.Y, cmd.P.X, cmd.P.Y)
		case PathClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func svgLineCap(c LineCap) string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapButt:
		return "butt"
	default:
		return "square"
	}
}

func svgLineJoin(j LineJoin) string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

func svgTextAnchor(ax float64) string {
	switch {
	case ax < 0.25:
		return "start"
	case ax > 0.75:
		return "end"
	default:
		return "middle"
	}
}

func svgBaseline(ay float64) string {
	switch {
	case ay < 0.25:
		return "auto" // text above the anchor point
	case ay > 0.75:
		return "hanging" // text below the anchor point
	default:
		return "middle"
	}
}
