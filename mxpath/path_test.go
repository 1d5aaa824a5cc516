package mxpath

import (
	"math"
	"testing"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

func near(a, b float64) bool { return math.Abs(a-b) < 0.05 }

func TestElevateQuad(t *testing.T) {
	c1x, c1y, c2x, c2y := ElevateQuad(0, 0, 10, 0, 10, 10)
	if !near(c1x, 6.67) || !near(c1y, 0) || !near(c2x, 10) || !near(c2y, 3.33) {
		t.Fatalf("unexpected control points (%f,%f) (%f,%f)", c1x, c1y, c2x, c2y)
	}
}

func TestToFixedP(t *testing.T) {
	for _, test := range []struct {
		x, y float64
		exp  fixed.Point26_6
	}{
		{0.9 / 64, -0.9 / 64, fixed.Point26_6{X: 1, Y: -1}},
		{0.4 / 64, -0.4 / 64, fixed.Point26_6{}},
		{20.0 / 3, 10.0 / 3, fixed.Point26_6{X: 427, Y: 213}},
		{-2.5, 10, fixed.Point26_6{X: -160, Y: 640}},
	} {
		if got := ToFixedP(test.x, test.y); got != test.exp {
			t.Errorf("ToFixedP(%g, %g): expected %v, got %v", test.x, test.y, test.exp, got)
		}
	}

	// the elevated control points stay within a hundredth of a unit
	var b Builder
	b.Begin()
	b.MoveTo(0, 0)
	b.QuadTo(10, 0, 10, 10)
	p, _ := b.Path()
	cu := p[1].(CubicTo)
	x1, _ := FromFixedP(cu[0])
	_, y2 := FromFixedP(cu[1])
	if math.Abs(x1-20.0/3) > 0.01 || math.Abs(y2-10.0/3) > 0.01 {
		t.Errorf("unexpected control points %s", p)
	}
}

func TestBuilderQuadIsCubic(t *testing.T) {
	var b Builder
	b.Begin()
	b.MoveTo(0, 0)
	if !b.QuadTo(10, 0, 10, 10) {
		t.Fatal("quad with an anchor should be accepted")
	}
	p, _ := b.Path()
	if len(p) != 2 {
		t.Fatalf("expected move + cubic, got %s", p)
	}
	cu, ok := p[1].(CubicTo)
	if !ok {
		t.Fatalf("expected a cubic, got %T", p[1])
	}
	x1, y1 := FromFixedP(cu[0])
	x2, y2 := FromFixedP(cu[1])
	x3, y3 := FromFixedP(cu[2])
	if !near(x1, 6.67) || !near(y1, 0) || !near(x2, 10) || !near(y2, 3.33) || x3 != 10 || y3 != 10 {
		t.Errorf("unexpected cubic %s", p)
	}
}

func TestBuilderGuards(t *testing.T) {
	var b Builder
	if b.MoveTo(1, 1) || b.LineTo(2, 2) || b.QuadTo(1, 1, 2, 2) || b.CurveTo(1, 1, 2, 2, 3, 3) || b.Close() {
		t.Fatal("directives without an open path must be ignored")
	}

	b.Begin()
	if b.QuadTo(1, 1, 2, 2) || b.CurveTo(1, 1, 2, 2, 3, 3) {
		t.Fatal("curves without an anchor must be ignored")
	}
	if _, _, ok := b.LastPoint(); ok {
		t.Fatal("ignored curves must not set the last point")
	}

	// a line without anchor only becomes the anchor
	b.LineTo(5, 5)
	if p, _ := b.Path(); len(p) != 0 {
		t.Fatalf("expected no segment, got %s", p)
	}
	b.LineTo(10, 5)
	p, _ := b.Path()
	if len(p) != 2 {
		t.Fatalf("expected move + line, got %s", p)
	}
	if p[0] != (MoveTo{5 * 64, 5 * 64}) || p[1] != (LineTo{10 * 64, 5 * 64}) {
		t.Errorf("unexpected path %s", p)
	}
}

func TestBuilderSubFigures(t *testing.T) {
	var b Builder
	b.Begin()
	b.MoveTo(0, 0)
	b.LineTo(10, 0)
	b.LineTo(10, 10)
	b.Close()
	b.MoveTo(20, 20)
	b.LineTo(30, 20)

	p, _ := b.Path()
	moves, closes := 0, 0
	for _, op := range p {
		switch op.(type) {
		case MoveTo:
			moves++
		case Close:
			closes++
		}
	}
	if moves != 2 || closes != 1 {
		t.Errorf("expected 2 sub-figures and 1 close, got %s", p)
	}
	if got := p.String(); got != "M0.000,0.000 L10.000,0.000 L10.000,10.000 Z M20.000,20.000 L30.000,20.000" {
		t.Errorf("unexpected svg path %s", got)
	}

	taken, ok := b.Take()
	if !ok || len(taken) != len(p) {
		t.Fatal("take should return the current path")
	}
	if b.IsOpen() || b.LineTo(1, 1) {
		t.Error("take should close the builder")
	}
}

func TestRoundRect(t *testing.T) {
	var b Builder
	b.RoundRect(0, 0, 100, 50, 10, 10)
	p, ok := b.Path()
	if !ok {
		t.Fatal("round rect should open a path")
	}
	var lines, cubics int
	for _, op := range p {
		switch op.(type) {
		case LineTo:
			lines++
		case CubicTo:
			cubics++
		}
	}
	if lines != 4 || cubics != 4 {
		t.Errorf("expected 4 edges and 4 corners, got %s", p)
	}
	if _, isClose := p[len(p)-1].(Close); !isClose {
		t.Errorf("round rect should be closed: %s", p)
	}
	minX, minY, maxX, maxY, _ := p.Bounds()
	if minX != 0 || minY != 0 || maxX != 100 || maxY != 50 {
		t.Errorf("unexpected bounds %f %f %f %f", minX, minY, maxX, maxY)
	}
}

func TestPrimitives(t *testing.T) {
	r := Rect(10, 20, 30, 40)
	minX, minY, maxX, maxY, ok := r.Bounds()
	if !ok || minX != 10 || minY != 20 || maxX != 40 || maxY != 60 {
		t.Errorf("unexpected rect bounds %f %f %f %f", minX, minY, maxX, maxY)
	}

	e := Ellipse(0, 0, 100, 50)
	minX, minY, maxX, maxY, ok = e.Bounds()
	if !ok || !near(minX, 0) || !near(minY, 0) || !near(maxX, 100) || !near(maxY, 50) {
		t.Errorf("unexpected ellipse bounds %f %f %f %f", minX, minY, maxX, maxY)
	}

	if e := Ellipse(0, 0, 0, 10); len(e) != 0 {
		t.Errorf("degenerated ellipse should be empty, got %s", e)
	}
}

type countingAdder struct {
	starts, lines, cubes, closes, stops int
}

func (c *countingAdder) Start(fixed.Point26_6)              { c.starts++ }
func (c *countingAdder) Line(fixed.Point26_6)               { c.lines++ }
func (c *countingAdder) QuadBezier(_, _ fixed.Point26_6)    {}
func (c *countingAdder) CubeBezier(_, _, _ fixed.Point26_6) { c.cubes++ }
func (c *countingAdder) Stop(closeLoop bool) {
	c.stops++
	if closeLoop {
		c.closes++
	}
}

func TestAddTo(t *testing.T) {
	var b Builder
	b.Begin()
	b.MoveTo(0, 0)
	b.LineTo(10, 0)
	b.CurveTo(10, 5, 5, 10, 0, 10)
	b.Close()
	p, _ := b.Path()

	var c countingAdder
	p.AddTo(&c)
	if c.starts != 1 || c.lines != 1 || c.cubes != 1 || c.closes != 1 {
		t.Errorf("unexpected replay %+v", c)
	}

	// replay through a transform
	var q Path
	p.AddTo(&rasterx.MatrixAdder{Adder: &q, M: rasterx.Identity.Translate(5, 5)})
	minX, minY, _, _, _ := q.Bounds()
	if minX != 5 || minY != 5 {
		t.Errorf("unexpected translated bounds %f %f", minX, minY)
	}
}
