package plot

import (
	"errors"
	"testing"

	"github.com/gographics/viz"
)

func TestBarsWidthBroadcast(t *testing.T) {
	rec := &recorder{}
	layer := testLayer(rec)
	clip := viz.NewRect(0, 0, 100, 100)

	err := renderInClip(t, layer, clip, `
		(bars data-x (0 1 2) data-y (1 1 1) widths (10px 20px))
	`)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.fills) != 3 {
		t.Fatalf("got %d bars, want 3", len(rec.fills))
	}

	// A two-element widths list cycles: 10, 20, 10.
	want := []float64{10, 20, 10}
	for i, p := range rec.fills {
		minX, _, maxX, _ := pathBounds(p)
		if w := maxX - minX; !near(w, want[i]) {
			t.Errorf("bar %d width = %v, want %v", i, w, want[i])
		}
	}
}

func TestBarsOffsetBroadcast(t *testing.T) {
	rec := &recorder{}
	layer := testLayer(rec)
	clip := viz.NewRect(0, 0, 100, 100)

	err := renderInClip(t, layer, clip, `
		limit-x (0 2)
		(bars data-x (1 1) data-y (1 2) width 10px offsets (-5px 5px))
	`)
	if err != nil {
		t.Fatal(err)
	}
	minX0, _, maxX0, _ := pathBounds(rec.fills[0])
	minX1, _, maxX1, _ := pathBounds(rec.fills[1])
	if c := (minX0 + maxX0) / 2; !near(c, 45) {
		t.Errorf("bar 0 center = %v, want 45", c)
	}
	if c := (minX1 + maxX1) / 2; !near(c, 55) {
		t.Errorf("bar 1 center = %v, want 55", c)
	}
}

func TestBarsHorizontal(t *testing.T) {
	rec := &recorder{}
	layer := testLayer(rec)
	clip := viz.NewRect(0, 0, 100, 100)

	err := renderInClip(t, layer, clip, `
		limit-x (0 4)
		limit-y (0 2)
		(bars direction horizontal data-x (2) data-y (1) width 10px)
	`)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.fills) != 1 {
		t.Fatalf("got %d bars, want 1", len(rec.fills))
	}
	minX, minY, maxX, maxY := pathBounds(rec.fills[0])
	// Baseline at x=0, tip at x=2 of [0,4]; the bar spans device x 0..50
	// centered on device y 50.
	if !near(minX, 0) || !near(maxX, 50) {
		t.Errorf("bar spans x %v..%v, want 0..50", minX, maxX)
	}
	if c := (minY + maxY) / 2; !near(c, 50) {
		t.Errorf("bar y center = %v, want 50", c)
	}
	if h := maxY - minY; !near(h, 10) {
		t.Errorf("bar thickness = %v, want 10", h)
	}
}

func TestBarsLowHighRange(t *testing.T) {
	rec := &recorder{}
	layer := testLayer(rec)
	clip := viz.NewRect(0, 0, 100, 100)

	err := renderInClip(t, layer, clip, `
		limit-y (0 10)
		(bars data-x (1) data-y-low (2) data-y-high (8) width 10px)
	`)
	if err != nil {
		t.Fatal(err)
	}
	_, minY, _, maxY := pathBounds(rec.fills[0])
	if !near(minY, 20) || !near(maxY, 80) {
		t.Errorf("bar spans y %v..%v, want 20..80", minY, maxY)
	}
}

func TestBarsLengthValidation(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"xy", `(bars data-x (1 2) data-y (1))`},
		{"ylow", `(bars data-x (1 2) data-y (1 2) data-y-low (1))`},
		{"xlow", `(bars direction horizontal data-x (1 2) data-y (1 2) data-x-low (1))`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer := testLayer(&recorder{})
			err := Render(layer, parseDoc(t, tt.src))
			if !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestBarsLabels(t *testing.T) {
	rec := &recorder{}
	layer := testLayer(rec)
	clip := viz.NewRect(0, 0, 100, 100)

	err := renderInClip(t, layer, clip, `
		limit-x (0 2)
		limit-y (0 2)
		(bars data-x (1) data-y (1) labels (one) label-padding 4px)
	`)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.texts) != 1 {
		t.Fatalf("got %d labels, want 1", len(rec.texts))
	}
	got := rec.texts[0]
	if got.text != "one" {
		t.Errorf("label text = %q, want %q", got.text, "one")
	}
	if !near(got.at.X, 50) || !near(got.at.Y, 46) {
		t.Errorf("label at (%v, %v), want (50, 46)", got.at.X, got.at.Y)
	}
	if got.ax != 0.5 || got.ay != 0 {
		t.Errorf("label anchor = (%v, %v), want (0.5, 0)", got.ax, got.ay)
	}
}

func TestBarsInvalidDirection(t *testing.T) {
	layer := testLayer(&recorder{})
	err := Render(layer, parseDoc(t, `(bars data-x (1) data-y (1) direction sideways)`))
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
}
