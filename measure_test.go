package viz

import (
	"math"
	"testing"
)

func TestToPixels(t *testing.T) {
	table := MeasureTable{DPI: 96, RootEM: 12}

	tests := []struct {
		name string
		m    Measure
		want float64
	}{
		{"pixels pass through", Px(25), 25},
		{"unit-less taken as pixels", Norm(3), 3},
		{"points at 96 dpi", Pt(72), 96},
		{"10pt default bar width", Pt(10), 10 * 96.0 / 72},
		{"rem uses root font size", Rem(1), 12 * 96.0 / 72},
		{"zero", Measure{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPixels(table, tt.m)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ToPixels(%v) = %g, want %g", tt.m, got, tt.want)
			}
		})
	}
}

func TestToPixelsHighDPI(t *testing.T) {
	table := MeasureTable{DPI: 192, RootEM: 12}
	if got := ToPixels(table, Pt(10)); got != 10*192.0/72 {
		t.Errorf("Pt(10) at 192 dpi = %g", got)
	}
	// Pixel values must not scale with DPI.
	if got := ToPixels(table, Px(10)); got != 10 {
		t.Errorf("Px(10) at 192 dpi = %g", got)
	}
}

func TestParseMeasure(t *testing.T) {
	tests := []struct {
		in      string
		want    Measure
		wantErr bool
	}{
		{in: "10px", want: Px(10)},
		{in: "2.5pt", want: Pt(2.5)},
		{in: "1rem", want: Rem(1)},
		{in: "-4px", want: Px(-4)},
		{in: "0.5", want: Norm(0.5)},
		{in: "px", wantErr: true},
		{in: "ten", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMeasure(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMeasure(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMeasure(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseMeasure(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMeasureOr(t *testing.T) {
	fallback := Pt(7)
	if got := MeasureOr(Measure{}, fallback); got != fallback {
		t.Errorf("unset measure: got %v", got)
	}
	if got := MeasureOr(Px(3), fallback); got != Px(3) {
		t.Errorf("set measure replaced: got %v", got)
	}
	// An explicit zero in a typographic unit is still "set".
	if got := MeasureOr(Pt(0), fallback); got != Pt(0) {
		t.Errorf("explicit 0pt replaced: got %v", got)
	}
}

func TestMeasureString(t *testing.T) {
	tests := []struct {
		m    Measure
		want string
	}{
		{Px(10), "10px"},
		{Pt(2.5), "2.5pt"},
		{Rem(1), "1rem"},
		{Norm(0.5), "0.5"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}
