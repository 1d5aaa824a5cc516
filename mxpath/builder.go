package mxpath

// Builder accumulates one path from incremental directives.
// All coordinates are in device space.
//
// A path exists only between Begin (or SetPath) and the next Begin,
// SetPath or Take. Segment directives issued while no path is open,
// or without an anchor point where one is required, are ignored and
// reported through their boolean result.
type Builder struct {
	path Path
	open bool

	lastX, lastY float64
	hasLast      bool
	// a sub-figure must be started at the last point
	// before the next segment is added
	pending bool
}

// Begin opens a new empty path, discarding the current one
// and the last point.
func (b *Builder) Begin() {
	b.path = Path{}
	b.open = true
	b.hasLast = false
	b.pending = false
}

// SetPath replaces the current path by the complete primitive `p`.
// The last point is cleared, so that incremental segments
// must start with a MoveTo.
func (b *Builder) SetPath(p Path) {
	b.path = p
	b.open = true
	b.hasLast = false
	b.pending = false
}

// IsOpen returns true if a path is currently being built.
func (b *Builder) IsOpen() bool { return b.open }

// Path returns the current path, without releasing it.
func (b *Builder) Path() (Path, bool) {
	return b.path, b.open
}

// Take returns the current path and closes the builder.
func (b *Builder) Take() (Path, bool) {
	p, ok := b.path, b.open
	b.path = nil
	b.open = false
	b.hasLast = false
	b.pending = false
	return p, ok
}

// LastPoint returns the last committed point, if any.
func (b *Builder) LastPoint() (x, y float64, ok bool) {
	return b.lastX, b.lastY, b.hasLast
}

func (b *Builder) setLast(x, y float64) {
	b.lastX, b.lastY = x, y
	b.hasLast = true
}

// startFigure emits the pending sub-figure start
func (b *Builder) startFigure() {
	if b.pending {
		b.path.Start(ToFixedP(b.lastX, b.lastY))
		b.pending = false
	}
}

// MoveTo starts a new disconnected sub-figure at (x, y),
// without drawing anything.
func (b *Builder) MoveTo(x, y float64) bool {
	if !b.open {
		return false
	}
	b.setLast(x, y)
	b.pending = true
	return true
}

// LineTo draws a straight segment from the last point, if any,
// and always makes (x, y) the new last point.
func (b *Builder) LineTo(x, y float64) bool {
	if !b.open {
		return false
	}
	if !b.hasLast {
		b.setLast(x, y)
		b.pending = true
		return true
	}
	b.startFigure()
	b.path.Line(ToFixedP(x, y))
	b.setLast(x, y)
	return true
}

// ElevateQuad returns the control points of the cubic Bezier
// equivalent to the quadratic Bezier (p0, q, p2).
func ElevateQuad(p0x, p0y, qx, qy, p2x, p2y float64) (c1x, c1y, c2x, c2y float64) {
	const k = 2. / 3.
	c1x, c1y = p0x+k*(qx-p0x), p0y+k*(qy-p0y)
	c2x, c2y = p2x+k*(qx-p2x), p2y+k*(qy-p2y)
	return
}

// QuadTo adds a quadratic curve with control point (x1, y1)
// ending at (x2, y2). It is stored as the degree elevated cubic curve.
// The last point is required.
func (b *Builder) QuadTo(x1, y1, x2, y2 float64) bool {
	if !b.open || !b.hasLast {
		return false
	}
	c1x, c1y, c2x, c2y := ElevateQuad(b.lastX, b.lastY, x1, y1, x2, y2)
	b.startFigure()
	b.path.CubeBezier(ToFixedP(c1x, c1y), ToFixedP(c2x, c2y), ToFixedP(x2, y2))
	b.setLast(x2, y2)
	return true
}

// CurveTo adds a cubic curve. The last point is required.
func (b *Builder) CurveTo(x1, y1, x2, y2, x3, y3 float64) bool {
	if !b.open || !b.hasLast {
		return false
	}
	b.startFigure()
	b.path.CubeBezier(ToFixedP(x1, y1), ToFixedP(x2, y2), ToFixedP(x3, y3))
	b.setLast(x3, y3)
	return true
}

// Close closes the current sub-figure only. Following segments
// start a new sub-figure at the last point.
func (b *Builder) Close() bool {
	if !b.open {
		return false
	}
	if b.hasLast && !b.pending {
		b.path.Stop(true)
		b.pending = true
	}
	return true
}
