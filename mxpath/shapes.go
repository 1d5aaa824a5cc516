package mxpath

import (
	"github.com/srwiley/rasterx"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// Rect returns the closed rectangle path with top-left corner (x, y).
func Rect(x, y, w, h float64) Path {
	p := Path{MoveTo(ToFixedP(x, y))}
	p.Line(ToFixedP(x+w, y))
	p.Line(ToFixedP(x+w, y+h))
	p.Line(ToFixedP(x, y+h))
	p.Stop(true)
	return p
}

// Ellipse returns the closed ellipse path inscribed in the box (x, y, w, h),
// approximated by cubic Bezier curves.
// A degenerated box yields an empty path.
func Ellipse(x, y, w, h float64) Path {
	p := Path{}
	if w == 0 || h == 0 {
		return p
	}
	rx, ry := w/2, h/2
	if rx < 0 {
		rx = -rx
	}
	if ry < 0 {
		ry = -ry
	}
	rasterx.AddEllipse(x+w/2, y+h/2, rx, ry, 0, &p)
	return p
}

// RoundRect starts a new path on b and adds the rectangle (x, y, w, h)
// with four straight edges joined by four quadratic corners of size (rx, ry).
// Each corner control point is the true corner of the rectangle, which is
// a one-segment approximation of a circular corner, not an arc.
func (b *Builder) RoundRect(x, y, w, h, rx, ry float64) {
	b.Begin()
	b.MoveTo(x+rx, y)
	b.LineTo(x+w-rx, y)
	b.QuadTo(x+w, y, x+w, y+ry)
	b.LineTo(x+w, y+h-ry)
	b.QuadTo(x+w, y+h, x+w-rx, y+h)
	b.LineTo(x+rx, y+h)
	b.QuadTo(x, y+h, x, y+h-ry)
	b.LineTo(x, y+ry)
	b.QuadTo(x, y, x+rx, y)
	b.Close()
}
