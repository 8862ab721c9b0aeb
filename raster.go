package viz

import (
	"fmt"
	"image"
	"io"

	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Raster is a Canvas backed by the gg software rasterizer. Geometry is
// accumulated into a pixel buffer and exported as a PNG or an image.Image.
type Raster struct {
	layer *Layer
	dc    *gg.Context
	fonts *text.FontSource
}

// NewRasterLayer creates a layer backed by a software rasterizer of the
// given pixel dimensions. The default label font is the embedded Latin
// Modern sans face.
func NewRasterLayer(width, height int, opts ...LayerOption) (*Layer, *Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, nil, fmt.Errorf("invalid raster dimensions %dx%d", width, height)
	}
	fonts, err := text.NewFontSource(lmsans10regular.TTF)
	if err != nil {
		return nil, nil, fmt.Errorf("load default font: %w", err)
	}
	r := &Raster{
		dc:    gg.NewContext(width, height),
		fonts: fonts,
	}
	layer := NewLayer(float64(width), float64(height), r, opts...)
	r.layer = layer
	return layer, r, nil
}

// Image returns the rasterized image.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the rasterized image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// WritePNG writes the rasterized image to a PNG file.
func (r *Raster) WritePNG(path string) error {
	return r.dc.SavePNG(path)
}

// FillPath implements Canvas.
func (r *Raster) FillPath(clip *Rect, p *Path, style FillStyle) error {
	r.pushClip(clip)
	defer r.popClip(clip)

	r.setPath(p)
	r.dc.SetColor(style.Color.Color())
	return r.dc.Fill()
}

// StrokePath implements Canvas.
func (r *Raster) StrokePath(clip *Rect, p *Path, style StrokeStyle) error {
	width := ToPixels(r.layer.Measures(), style.Width)
	if width <= 0 {
		return nil
	}

	r.pushClip(clip)
	defer r.popClip(clip)

	r.setPath(p)
	r.dc.SetColor(style.Color.Color())
	r.dc.SetLineWidth(width)
	r.dc.SetLineCap(lineCap(style.Cap))
	r.dc.SetLineJoin(lineJoin(style.Join))
	setDash(r.dc, style.Dash, width)
	defer r.dc.ClearDash()
	return r.dc.Stroke()
}

// DrawText implements Canvas.
func (r *Raster) DrawText(clip *Rect, s string, at Point, ax, ay float64, style TextStyle) error {
	size := ToPixels(r.layer.Measures(), style.FontSize)
	if size <= 0 {
		size = ToPixels(r.layer.Measures(), r.layer.FontSize)
	}

	r.pushClip(clip)
	defer r.popClip(clip)

	r.dc.SetFont(r.fonts.Face(size))
	r.dc.SetColor(style.Color.Color())
	r.dc.DrawStringAnchored(s, at.X, at.Y, ax, ay)
	return nil
}

// setPath replays a Path onto the gg context, replacing its current path.
func (r *Raster) setPath(p *Path) {
	r.dc.ClearPath()
	for _, cmd := range p.Commands() {
		switch cmd.Verb {
		case PathMoveTo:
			r.dc.MoveTo(cmd.P.X, cmd.P.Y)
		case PathLineTo:
			r.dc.LineTo(cmd.P.X, cmd.P.Y)
		case PathCubicTo:
			r.dc.CubicTo(cmd.C1.X, cmd.C1.Y, cmd.C2.X, cmd.C2.Y, cmd.P.X, cmd.P.Y)
		case PathClose:
			r.dc.ClosePath()
		}
	}
}

func (r *Raster) pushClip(clip *Rect) {
	if clip != nil {
		r.dc.ClipRect(clip.X, clip.Y, clip.W, clip.H)
	}
}

func (r *Raster) popClip(clip *Rect) {
	if clip != nil {
		r.dc.ResetClip()
	}
}

func lineCap(c LineCap) gg.LineCap {
	switch c {
	case LineCapRound:
		return gg.LineCapRound
	case LineCapButt:
		return gg.LineCapButt
	default:
		return gg.LineCapSquare
	}
}

func lineJoin(j LineJoin) gg.LineJoin {
	switch j {
	case LineJoinRound:
		return gg.LineJoinRound
	case LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

// setDash applies the dash pattern, scaled against the stroke width so
// that heavier strokes keep legible gaps.
func setDash(dc *gg.Context, d DashKind, width float64) {
	if width < 1 {
		width = 1
	}
	switch d {
	case DashDashed:
		dc.SetDash(width*3, width*3)
	case DashDotted:
		dc.SetDash(width, width*2)
	default:
		dc.ClearDash()
	}
}
