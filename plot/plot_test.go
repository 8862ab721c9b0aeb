package plot

import (
	"errors"
	"testing"

	"github.com/gographics/viz"
	"github.com/gographics/viz/sexpr"
)

// recorder is a Canvas that captures submitted geometry for inspection.
type recorder struct {
	fills   []*viz.Path
	strokes []*viz.Path
	texts   []recordedText
}

type recordedText struct {
	text   string
	at     viz.Point
	ax, ay float64
}

func (r *recorder) FillPath(clip *viz.Rect, p *viz.Path, style viz.FillStyle) error {
	r.fills = append(r.fills, p.Clone())
	return nil
}

func (r *recorder) StrokePath(clip *viz.Rect, p *viz.Path, style viz.StrokeStyle) error {
	r.strokes = append(r.strokes, p.Clone())
	return nil
}

func (r *recorder) DrawText(clip *viz.Rect, text string, at viz.Point, ax, ay float64, style viz.TextStyle) error {
	r.texts = append(r.texts, recordedText{text, at, ax, ay})
	return nil
}

func testLayer(rec *recorder) *viz.Layer {
	return viz.NewLayer(100, 100, rec)
}

func parseDoc(t *testing.T, src string) *sexpr.Expr {
	t.Helper()
	doc, err := sexpr.ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

// renderInClip renders a document with the element clip pinned to an
// exact rectangle, bypassing the default margins.
func renderInClip(t *testing.T, layer *viz.Layer, clip viz.Rect, src string) error {
	t.Helper()
	doc := parseDoc(t, src)
	cfg := NewPlotConfig()
	cfg.PushLayout(clip)
	if err := prepare(layer, cfg, doc); err != nil {
		return err
	}
	return draw(layer, cfg, doc)
}

// pathBounds returns the bounding box of a path's on-curve points.
func pathBounds(p *viz.Path) (minX, minY, maxX, maxY float64) {
	first := true
	for _, cmd := range p.Commands() {
		if cmd.Verb == viz.PathClose {
			continue
		}
		if first || cmd.P.X < minX {
			minX = cmd.P.X
		}
		if first || cmd.P.Y < minY {
			minY = cmd.P.Y
		}
		if first || cmd.P.X > maxX {
			maxX = cmd.P.X
		}
		if first || cmd.P.Y > maxY {
			maxY = cmd.P.Y
		}
		first = false
	}
	return
}

func TestRenderBarGeometry(t *testing.T) {
	rec := &recorder{}
	layer := testLayer(rec)
	clip := viz.NewRect(0, 0, 100, 100)

	err := renderInClip(t, layer, clip, `
		(bars data-x (0 1 2) data-y (1 2 3) width 10px)
	`)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.fills) != 3 {
		t.Fatalf("got %d bars, want 3", len(rec.fills))
	}

	// x domain [0,2] maps the bar centers to 0, 50 and 100; y domain
	// [1,3] puts the baseline at the clamped zero position, the bottom
	// edge.
	wantCenters := []float64{0, 50, 100}
	wantTops := []float64{100, 50, 0}
	for i, p := range rec.fills {
		minX, minY, maxX, maxY := pathBounds(p)
		if center := (minX + maxX) / 2; !near(center, wantCenters[i]) {
			t.Errorf("bar %d center = %v, want %v", i, center, wantCenters[i])
		}
		if w := maxX - minX; !near(w, 10) {
			t.Errorf("bar %d width = %v, want 10", i, w)
		}
		if !near(minY, wantTops[i]) {
			t.Errorf("bar %d top = %v, want %v", i, minY, wantTops[i])
		}
		if !near(maxY, 100) {
			t.Errorf("bar %d baseline = %v, want 100", i, maxY)
		}
	}
}

func TestRenderPaintOrder(t *testing.T) {
	rec := &recorder{}
	layer := testLayer(rec)
	clip := viz.NewRect(0, 0, 100, 100)

	err := renderInClip(t, layer, clip, `
		(bars data-x (0 1) data-y (1 2))
		(points data-x (0 1) data-y (1 2))
	`)
	if err != nil {
		t.Fatal(err)
	}
	// 2 bar rectangles first, 2 point circles after: document order is
	// paint order.
	if len(rec.fills) != 4 {
		t.Fatalf("got %d fills, want 4", len(rec.fills))
	}
	for i, p := range rec.fills[:2] {
		if got := len(p.Commands()); got != 5 {
			t.Errorf("fill %d has %d commands, want 5 (bar rectangle)", i, got)
		}
	}
}

func TestRenderUnknownElementProperty(t *testing.T) {
	rec := &recorder{}
	layer := testLayer(rec)

	doc := parseDoc(t, `(bars data-x (0) data-y (1) frobnicate 1)`)
	err := Render(layer, doc)
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
	if len(rec.fills) != 0 {
		t.Errorf("geometry emitted despite configuration error: %d fills", len(rec.fills))
	}
}

func TestRenderUnknownTopLevelSkipped(t *testing.T) {
	rec := &recorder{}
	layer := testLayer(rec)

	// Top-level composition is permissive: unknown names are skipped.
	doc := parseDoc(t, `dpi 240 (bars data-x (0 1) data-y (1 2))`)
	if err := Render(layer, doc); err != nil {
		t.Fatal(err)
	}
	if len(rec.fills) != 2 {
		t.Errorf("got %d bars, want 2", len(rec.fills))
	}
}

func TestRenderSharedScaleAcrossElements(t *testing.T) {
	rec := &recorder{}
	layer := testLayer(rec)
	clip := viz.NewRect(0, 0, 100, 100)

	// The lines series widens the x domain to [0,4]; the bar at x=2 must
	// land at the shared domain's midpoint, not its own.
	err := renderInClip(t, layer, clip, `
		(bars data-x (2) data-y (1) width 10px)
		(lines data-x (0 4) data-y (1 1))
	`)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.fills) != 1 {
		t.Fatalf("got %d fills, want 1", len(rec.fills))
	}
	minX, _, maxX, _ := pathBounds(rec.fills[0])
	if center := (minX + maxX) / 2; !near(center, 50) {
		t.Errorf("bar center = %v, want 50", center)
	}
}

func TestRenderExplicitLimits(t *testing.T) {
	rec := &recorder{}
	layer := testLayer(rec)
	clip := viz.NewRect(0, 0, 100, 100)

	err := renderInClip(t, layer, clip, `
		limit-x (0 10)
		limit-y (0 10)
		(bars data-x (5) data-y (5) width 10px)
	`)
	if err != nil {
		t.Fatal(err)
	}
	minX, minY, maxX, _ := pathBounds(rec.fills[0])
	if center := (minX + maxX) / 2; !near(center, 50) {
		t.Errorf("bar center = %v, want 50", center)
	}
	if !near(minY, 50) {
		t.Errorf("bar top = %v, want 50", minY)
	}
}

func TestRenderCategoricalScale(t *testing.T) {
	rec := &recorder{}
	layer := testLayer(rec)
	clip := viz.NewRect(0, 0, 100, 100)

	err := renderInClip(t, layer, clip, `
		scale-x (categorical a b)
		(bars data-x (a b) data-y (1 2) width 10px)
	`)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.fills) != 2 {
		t.Fatalf("got %d bars, want 2", len(rec.fills))
	}
	minX, _, maxX, _ := pathBounds(rec.fills[0])
	if center := (minX + maxX) / 2; !near(center, 25) {
		t.Errorf("bar a center = %v, want 25", center)
	}
}

func TestRenderBackgroundAndFurniture(t *testing.T) {
	rec := &recorder{}
	layer := testLayer(rec)
	clip := viz.NewRect(10, 10, 80, 80)

	err := renderInClip(t, layer, clip, `
		(background fill #fff)
		(grid)
		(axes)
		(bars data-x (0 1) data-y (1 2))
		(legend (item label series-a color #f00))
	`)
	if err != nil {
		t.Fatal(err)
	}
	// background + 2 bars + 1 legend swatch
	if len(rec.fills) != 4 {
		t.Errorf("got %d fills, want 4", len(rec.fills))
	}
	if len(rec.strokes) == 0 {
		t.Error("no strokes recorded for grid and axes")
	}
	if len(rec.texts) == 0 {
		t.Error("no tick labels recorded")
	}
}

func TestRenderEmptySeries(t *testing.T) {
	rec := &recorder{}
	layer := testLayer(rec)

	doc := parseDoc(t, `(bars data-x () data-y ())`)
	if err := Render(layer, doc); err != nil {
		t.Fatal(err)
	}
	if len(rec.fills) != 0 {
		t.Errorf("empty series emitted %d fills", len(rec.fills))
	}
}

func TestRenderValidationError(t *testing.T) {
	rec := &recorder{}
	layer := testLayer(rec)

	doc := parseDoc(t, `(bars data-x (1 2) data-y (1))`)
	err := Render(layer, doc)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}
