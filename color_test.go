package viz

import (
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Color
		wantErr bool
	}{
		{name: "short rgb", in: "#f00", want: Color{1, 0, 0, 1}},
		{name: "short rgba", in: "#f008", want: Color{1, 0, 0, 136.0 / 255}},
		{name: "long rgb", in: "#0000ff", want: Color{0, 0, 1, 1}},
		{name: "long rgba", in: "#00ff0080", want: Color{0, 1, 0, 128.0 / 255}},
		{name: "no hash", in: "ff0000", want: Color{1, 0, 0, 1}},
		{name: "named", in: "black", want: Black},
		{name: "named mixed case", in: "White", want: White},
		{name: "bad length", in: "#ff", wantErr: true},
		{name: "bad digit", in: "#zzz", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "unknown name", in: "chartreuse-ish", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if !colorsClose(got, tt.want) {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Black, "#000000"},
		{White, "#ffffff"},
		{Color{1, 0, 0, 0.5}, "#ff0000"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%v.Hex() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestColorRoundtrip(t *testing.T) {
	original := Color{0.8, 0.3, 0.5, 1}
	parsed, err := ParseColor(original.Hex())
	if err != nil {
		t.Fatalf("ParseColor(%q): %v", original.Hex(), err)
	}
	if !colorsClose(parsed, original) {
		t.Errorf("roundtrip: %v -> %v", original, parsed)
	}
}

func colorsClose(a, b Color) bool {
	const tolerance = 1.0 / 255
	return math.Abs(a.R-b.R) <= tolerance &&
		math.Abs(a.G-b.G) <= tolerance &&
		math.Abs(a.B-b.B) <= tolerance &&
		math.Abs(a.A-b.A) <= tolerance
}
