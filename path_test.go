package viz

import "testing"

func TestPathRectangle(t *testing.T) {
	p := NewPath()
	p.Rectangle(NewRect(1, 2, 10, 20))

	cmds := p.Commands()
	if len(cmds) != 5 {
		t.Fatalf("rectangle has %d commands, want 5", len(cmds))
	}

	wantVerbs := []PathVerb{PathMoveTo, PathLineTo, PathLineTo, PathLineTo, PathClose}
	for i, v := range wantVerbs {
		if cmds[i].Verb != v {
			t.Errorf("command %d verb = %v, want %v", i, cmds[i].Verb, v)
		}
	}
	if cmds[0].P != Pt2(1, 2) || cmds[2].P != Pt2(11, 22) {
		t.Errorf("rectangle corners wrong: %+v, %+v", cmds[0].P, cmds[2].P)
	}
}

func TestPathCloseReturnsToStart(t *testing.T) {
	p := NewPath()
	p.MoveTo(5, 5)
	p.LineTo(10, 10)
	p.Close()
	if p.CurrentPoint() != Pt2(5, 5) {
		t.Errorf("current point after Close = %v, want start", p.CurrentPoint())
	}
}

func TestPathCircle(t *testing.T) {
	p := NewPath()
	p.Circle(50, 50, 10)

	cmds := p.Commands()
	// MoveTo + 4 cubic segments + Close
	if len(cmds) != 6 {
		t.Fatalf("circle has %d commands, want 6", len(cmds))
	}
	if cmds[0].Verb != PathMoveTo || cmds[0].P != Pt2(60, 50) {
		t.Errorf("circle starts at %v", cmds[0].P)
	}
	for i := 1; i <= 4; i++ {
		if cmds[i].Verb != PathCubicTo {
			t.Errorf("command %d verb = %v, want cubic", i, cmds[i].Verb)
		}
	}
}

func TestPathCloneIsIndependent(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 1)

	q := p.Clone()
	q.LineTo(2, 2)

	if len(p.Commands()) != 2 {
		t.Errorf("original path mutated by clone: %d commands", len(p.Commands()))
	}
	if len(q.Commands()) != 3 {
		t.Errorf("clone has %d commands, want 3", len(q.Commands()))
	}
}

func TestPathClear(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.Clear()
	if !p.Empty() {
		t.Error("path not empty after Clear")
	}
}
