package viz

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewSVGLayerInvalidDimensions(t *testing.T) {
	var buf bytes.Buffer
	if _, _, err := NewSVGLayer(&buf, 0, 100); err == nil {
		t.Error("NewSVGLayer(0, 100) succeeded, want error")
	}
	if _, _, err := NewSVGLayer(&buf, 100, -1); err == nil {
		t.Error("NewSVGLayer(100, -1) succeeded, want error")
	}
}

func TestSVGFillPath(t *testing.T) {
	var buf bytes.Buffer
	layer, svg, err := NewSVGLayer(&buf, 100, 100)
	if err != nil {
		t.Fatal(err)
	}

	p := NewPath()
	p.Rectangle(NewRect(10, 10, 50, 30))
	if err := layer.FillPath(nil, p, SolidFill(RGB(1, 0, 0))); err != nil {
		t.Fatal(err)
	}
	svg.Finish()

	out := buf.String()
	if !strings.Contains(out, `fill="#ff0000"`) {
		t.Errorf("output missing fill color:\n%s", out)
	}
	if !strings.Contains(out, "M10 10") {
		t.Errorf("output missing path data:\n%s", out)
	}
}

func TestSVGStrokeDash(t *testing.T) {
	var buf bytes.Buffer
	layer, svg, err := NewSVGLayer(&buf, 100, 100)
	if err != nil {
		t.Fatal(err)
	}

	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 100)
	style := StrokeStyle{Color: Black, Width: Px(2), Dash: DashDashed}
	if err := layer.StrokePath(nil, p, style); err != nil {
		t.Fatal(err)
	}
	svg.Finish()

	if !strings.Contains(buf.String(), `stroke-dasharray="6,6"`) {
		t.Errorf("output missing dash array:\n%s", buf.String())
	}
}

func TestSVGClipGroup(t *testing.T) {
	var buf bytes.Buffer
	layer, svg, err := NewSVGLayer(&buf, 100, 100)
	if err != nil {
		t.Fatal(err)
	}

	clip := NewRect(0, 0, 50, 50)
	p := NewPath()
	p.Rectangle(NewRect(25, 25, 50, 50))
	if err := layer.FillPath(&clip, p, SolidFill(Black)); err != nil {
		t.Fatal(err)
	}
	svg.Finish()

	out := buf.String()
	if !strings.Contains(out, "clipPath") || !strings.Contains(out, `clip-path="url(#clip1)"`) {
		t.Errorf("output missing clip group:\n%s", out)
	}
}

func TestSVGDrawTextAnchors(t *testing.T) {
	tests := []struct {
		ax   float64
		want string
	}{
		{0, `text-anchor="start"`},
		{0.5, `text-anchor="middle"`},
		{1, `text-anchor="end"`},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		layer, svg, err := NewSVGLayer(&buf, 100, 100)
		if err != nil {
			t.Fatal(err)
		}
		style := TextStyle{Color: Black, FontSize: Pt(11)}
		if err := layer.DrawText(nil, "hi", Pt2(50, 50), tt.ax, 0.5, style); err != nil {
			t.Fatal(err)
		}
		svg.Finish()
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("ax=%v: output missing %s:\n%s", tt.ax, tt.want, buf.String())
		}
	}
}
