package viz

// PathVerb identifies a single drawing command in a Path.
type PathVerb int

const (
	// PathMoveTo moves to a point without drawing.
	PathMoveTo PathVerb = iota
	// PathLineTo draws a line to a point.
	PathLineTo
	// PathCubicTo draws a cubic Bezier curve to a point.
	PathCubicTo
	// PathClose closes the current subpath.
	PathClose
)

// PathCommand is one drawing command: a verb plus its points. C1 and C2
// are only meaningful for PathCubicTo.
type PathCommand struct {
	Verb   PathVerb
	P      Point
	C1, C2 Point
}

// Path is an ordered, mutable sequence of drawing commands. A Path is
// constructed once per drawable shape, consumed by a Canvas and not
// retained after drawing.
type Path struct {
	cmds    []PathCommand
	start   Point
	current Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{cmds: make([]PathCommand, 0, 16)}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt2(x, y)
	p.cmds = append(p.cmds, PathCommand{Verb: PathMoveTo, P: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt2(x, y)
	p.cmds = append(p.cmds, PathCommand{Verb: PathLineTo, P: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve to a point.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt2(x, y)
	p.cmds = append(p.cmds, PathCommand{
		Verb: PathCubicTo,
		P:    pt,
		C1:   Pt2(c1x, c1y),
		C2:   Pt2(c2x, c2y),
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.cmds = append(p.cmds, PathCommand{Verb: PathClose})
	p.current = p.start
}

// Rectangle adds a closed rectangle to the path.
func (p *Path) Rectangle(r Rect) {
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.X+r.W, r.Y)
	p.LineTo(r.X+r.W, r.Y+r.H)
	p.LineTo(r.X, r.Y+r.H)
	p.Close()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Commands returns the drawing commands in document order.
func (p *Path) Commands() []PathCommand {
	return p.cmds
}

// Empty reports whether the path has no commands.
func (p *Path) Empty() bool {
	return len(p.cmds) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.cmds = p.cmds[:0]
	p.start = Point{}
	p.current = Point{}
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.cmds = make([]PathCommand, len(p.cmds))
	copy(result.cmds, p.cmds)
	result.start = p.start
	result.current = p.current
	return result
}
