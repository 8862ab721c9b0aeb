package viz

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapSquare specifies a square line cap.
	LineCapSquare LineCap = iota
	// LineCapButt specifies a flat line cap.
	LineCapButt
	// LineCapRound specifies a rounded line cap.
	LineCapRound
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// DashKind selects the dash pattern of a stroke.
type DashKind int

const (
	// DashSolid draws an uninterrupted line.
	DashSolid DashKind = iota
	// DashDashed draws a dashed line.
	DashDashed
	// DashDotted draws a dotted line.
	DashDotted
)

// StrokeStyle describes how path outlines are drawn. Width is a Measure
// and is resolved to device pixels by the backend.
type StrokeStyle struct {
	Color Color
	Width Measure
	Dash  DashKind
	Cap   LineCap
	Join  LineJoin
}

// DefaultStroke returns a stroke style with the given color, a 1pt width
// and the default cap/join.
func DefaultStroke(c Color) StrokeStyle {
	return StrokeStyle{Color: c, Width: Pt(1)}
}

// FillStyle describes how path interiors are filled. Hidden suppresses
// the fill entirely (the "none" fill).
type FillStyle struct {
	Color  Color
	Hidden bool
}

// SolidFill returns a visible fill of the given color.
func SolidFill(c Color) FillStyle {
	return FillStyle{Color: c}
}

// TextStyle describes label text drawing. FontSize is resolved to device
// pixels by the backend.
type TextStyle struct {
	Color    Color
	FontSize Measure
}
