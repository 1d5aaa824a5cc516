package mxcanvas

import (
	"math"

	"github.com/srwiley/rasterx"
)

// Scale multiplies the current scale by `scale`.
// The stroke width, already in device units, is scaled as well.
func (c *Canvas) Scale(scale float64) {
	c.state.scale *= scale
	if scale != 1 {
		c.state.strokeWidth *= scale
		c.state.pen.invalidate()
	}
}

// Translate moves the origin by (dx, dy), in device units.
func (c *Canvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

// Rotate rotates the following drawings by `theta` degrees (clockwise)
// around the user point (cx, cy). If exactly one of `flipH` and `flipV`
// is true, the drawings are also mirrored around this point,
// before being rotated.
func (c *Canvas) Rotate(theta float64, flipH, flipV bool, cx, cy float64) {
	if theta == 0 && flipH == flipV {
		return
	}
	c.backend.Transform(rotation(theta, flipH, flipV, cx, cy, &c.state))
}

// rotation returns the matrix T(center) x R(theta) x M x T(-center),
// where M is the optional mirror.
func rotation(theta float64, flipH, flipV bool, cx, cy float64, s *state) rasterx.Matrix2D {
	x, y := s.device(cx, cy)
	sx, sy := 1., 1.
	if flipH != flipV {
		if flipH {
			sx = -1
		} else {
			sy = -1
		}
	}
	return rasterx.Identity.
		Translate(x, y).
		Rotate(theta*math.Pi/180).
		Scale(sx, sy).
		Translate(-x, -y)
}

// rotationAround returns a rotation of `theta` degrees around the
// device point (x, y)
func rotationAround(theta, x, y float64) rasterx.Matrix2D {
	return rasterx.Identity.Translate(x, y).Rotate(theta*math.Pi/180).Translate(-x, -y)
}

// mirror returns a matrix flipping the device box `r` in place.
func mirror(r Rect, flipH, flipV bool) rasterx.Matrix2D {
	m := rasterx.Identity
	if flipH {
		m = m.Translate(2*r.X+r.W, 0).Scale(-1, 1)
	}
	if flipV {
		m = m.Translate(0, 2*r.Y+r.H).Scale(1, -1)
	}
	return m
}
