package mxpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// The bounding box is computed axis by axis: a Bezier segment
// reaches its extrema either at its end points or where the derivative
// of its coordinate vanishes.

// evalBezier evaluates the 1D Bezier curve with control values `c`
// (at most 4) at `t`, using de Casteljau's algorithm.
func evalBezier(c []float64, t float64) float64 {
	var tmp [4]float64
	copy(tmp[:], c)
	for n := len(c) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			tmp[i] += (tmp[i+1] - tmp[i]) * t
		}
	}
	return tmp[0]
}

// solveLinear returns the root of at + b
func solveLinear(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

// solveQuadratic returns the real roots of at^2 + bt + c
func solveQuadratic(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-12 {
		return solveLinear(b, c)
	}
	delta := b*b - 4*a*c
	switch {
	case delta < 0:
		return nil
	case delta == 0:
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(delta)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// criticalTimes returns the zeros of the derivative of the
// quadratic or cubic curve with control values `c`.
func criticalTimes(c []float64) []float64 {
	switch len(c) {
	case 3:
		return solveLinear(c[0]-2*c[1]+c[2], c[1]-c[0])
	case 4:
		d0, d1, d2 := c[1]-c[0], c[2]-c[1], c[3]-c[2]
		return solveQuadratic(d0-2*d1+d2, 2*(d1-d0), d0)
	}
	return nil
}

// axisRange returns the range of the 1D curve on [0, 1].
func axisRange(c ...float64) (lo, hi float64) {
	last := c[len(c)-1]
	lo, hi = math.Min(c[0], last), math.Max(c[0], last)
	for _, t := range criticalTimes(c) {
		if t <= 0 || t >= 1 {
			continue
		}
		v := evalBezier(c, t)
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	return lo, hi
}

// segmentExtent returns the bounding box of the segment
// starting at `from` and going through `pts`.
func segmentExtent(from fixed.Point26_6, pts ...fixed.Point26_6) (minX, minY, maxX, maxY float64) {
	var xs, ys [4]float64
	xs[0], ys[0] = FromFixedP(from)
	for i, pt := range pts {
		xs[i+1], ys[i+1] = FromFixedP(pt)
	}
	n := len(pts) + 1
	minX, maxX = axisRange(xs[:n]...)
	minY, maxY = axisRange(ys[:n]...)
	return minX, minY, maxX, maxY
}

// Bounds returns the tight bounding box of the path,
// in floating point device units. An empty path
// has empty bounds (ok is false).
func (p Path) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	union := func(x0, y0, x1, y1 float64) {
		minX, minY = math.Min(x0, minX), math.Min(y0, minY)
		maxX, maxY = math.Max(x1, maxX), math.Max(y1, maxY)
		ok = true
	}
	var current fixed.Point26_6
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current = fixed.Point26_6(op)
			x, y := FromFixedP(current)
			union(x, y, x, y)
		case LineTo:
			union(segmentExtent(current, fixed.Point26_6(op)))
			current = fixed.Point26_6(op)
		case QuadTo:
			union(segmentExtent(current, op[0], op[1]))
			current = op[1]
		case CubicTo:
			union(segmentExtent(current, op[0], op[1], op[2]))
			current = op[2]
		}
	}
	return
}
