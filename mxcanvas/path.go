package mxcanvas

import "github.com/korakanchan/mxgraph/mxpath"

func ignored(directive string) {
	Logger().Debug("mxcanvas: directive ignored", "directive", directive)
}

// Begin starts a new empty path.
func (c *Canvas) Begin() { c.path.Begin() }

// MoveTo starts a new sub-figure at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	if !c.path.MoveTo(c.state.device(x, y)) {
		ignored("move")
	}
}

// LineTo adds a line from the last point to (x, y).
func (c *Canvas) LineTo(x, y float64) {
	if !c.path.LineTo(c.state.device(x, y)) {
		ignored("line")
	}
}

// QuadTo adds a quadratic curve from the last point to (x2, y2),
// with control point (x1, y1).
func (c *Canvas) QuadTo(x1, y1, x2, y2 float64) {
	dx1, dy1 := c.state.device(x1, y1)
	dx2, dy2 := c.state.device(x2, y2)
	if !c.path.QuadTo(dx1, dy1, dx2, dy2) {
		ignored("quad")
	}
}

// CurveTo adds a cubic curve from the last point to (x3, y3),
// with control points (x1, y1) and (x2, y2).
func (c *Canvas) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	dx1, dy1 := c.state.device(x1, y1)
	dx2, dy2 := c.state.device(x2, y2)
	dx3, dy3 := c.state.device(x3, y3)
	if !c.path.CurveTo(dx1, dy1, dx2, dy2, dx3, dy3) {
		ignored("curve")
	}
}

// Close closes the current sub-figure.
func (c *Canvas) Close() {
	if !c.path.Close() {
		ignored("close")
	}
}

// Rect sets the current path to the rectangle (x, y, w, h).
func (c *Canvas) Rect(x, y, w, h float64) {
	r := c.state.deviceRect(x, y, w, h)
	c.path.SetPath(mxpath.Rect(r.X, r.Y, r.W, r.H))
}

// Ellipse sets the current path to the ellipse inscribed
// in the box (x, y, w, h).
func (c *Canvas) Ellipse(x, y, w, h float64) {
	r := c.state.deviceRect(x, y, w, h)
	c.path.SetPath(mxpath.Ellipse(r.X, r.Y, r.W, r.H))
}

// Roundrect sets the current path to the rectangle (x, y, w, h)
// with corners approximated by quadratic curves of radii (dx, dy).
func (c *Canvas) Roundrect(x, y, w, h, dx, dy float64) {
	r := c.state.deviceRect(x, y, w, h)
	c.path.RoundRect(r.X, r.Y, r.W, r.H, c.state.scale*dx, c.state.scale*dy)
}
