// Package mxpath implements the geometry of canvas paths: the
// operations accumulated between a path-opening directive
// and the paint directive consuming them, stored in device
// space and replayed onto rasterizers.
package mxpath

import (
	"fmt"
	"math"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ rasterx.Adder = (*Path)(nil) // assert interface conformance

// Operation groups the different path commands
type Operation interface {
	// add itself on the adder `q`
	addTo(q rasterx.Adder)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type QuadTo [2]fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

// starts a new sub-figure, closing nothing
func (op MoveTo) addTo(q rasterx.Adder) {
	q.Stop(false)
	q.Start(fixed.Point26_6(op))
}

func (op LineTo) addTo(q rasterx.Adder) { q.Line(fixed.Point26_6(op)) }

func (op QuadTo) addTo(q rasterx.Adder) { q.QuadBezier(op[0], op[1]) }

func (op CubicTo) addTo(q rasterx.Adder) { q.CubeBezier(op[0], op[1], op[2]) }

func (Close) addTo(q rasterx.Adder) { q.Stop(true) }

// Path describes a sequence of basic operations, in device coordinates.
// Several sub-figures, each started by a MoveTo, may coexist in one path.
type Path []Operation

// formatOp writes the command letter followed by the points
func formatOp(sb *strings.Builder, cmd byte, pts ...fixed.Point26_6) {
	sb.WriteByte(cmd)
	for i, pt := range pts {
		if i > 0 {
			sb.WriteByte(',')
		}
		x, y := FromFixedP(pt)
		fmt.Fprintf(sb, "%.3f,%.3f", x, y)
	}
}

// ToSVGPath returns a string representation of the path,
// using the SVG path syntax.
func (p Path) ToSVGPath() string {
	var sb strings.Builder
	for i, op := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch op := op.(type) {
		case MoveTo:
			formatOp(&sb, 'M', fixed.Point26_6(op))
		case LineTo:
			formatOp(&sb, 'L', fixed.Point26_6(op))
		case QuadTo:
			formatOp(&sb, 'Q', op[:]...)
		case CubicTo:
			formatOp(&sb, 'C', op[:]...)
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c fixed.Point26_6) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the current sub-figure
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// AddTo replays the Path p onto q, which is usually
// a rasterx Filler or Dasher, possibly wrapped in a rasterx.MatrixAdder.
func (p Path) AddTo(q rasterx.Adder) {
	for _, op := range p {
		op.addTo(q)
	}
	q.Stop(false)
}

// ToFixedP converts two floats to the nearest fixed point.
func ToFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(math.Round(x * 64))
	p.Y = fixed.Int26_6(math.Round(y * 64))
	return
}

// FromFixedP converts a fixed point to two floats.
func FromFixedP(p fixed.Point26_6) (x, y float64) {
	return float64(p.X) / 64, float64(p.Y) / 64
}
