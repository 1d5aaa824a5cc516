package mxcanvas

// LineCap defines how to draw caps on the ends of lines
type LineCap uint8

const (
	CapFlat LineCap = iota // default value
	CapRound
	CapSquare
)

func (c LineCap) String() string {
	switch c {
	case CapFlat:
		return "flat"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return "<unknown LineCap>"
	}
}

// ParseLineCap maps the directive values flat, round and square.
func ParseLineCap(s string) (LineCap, bool) {
	switch s {
	case "flat":
		return CapFlat, true
	case "round":
		return CapRound, true
	case "square":
		return CapSquare, true
	}
	return CapFlat, false
}

// LineJoin specifies how stroke segments join.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota // default value
	JoinRound
	JoinBevel
)

func (j LineJoin) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return "<unknown LineJoin>"
	}
}

// ParseLineJoin maps the directive values miter, round and bevel.
func ParseLineJoin(s string) (LineJoin, bool) {
	switch s {
	case "miter":
		return JoinMiter, true
	case "round":
		return JoinRound, true
	case "bevel":
		return JoinBevel, true
	}
	return JoinMiter, false
}

// Direction is the direction of a two colors gradient,
// pointing to the second color.
type Direction uint8

const (
	South Direction = iota // default value
	East
	North
	West
)

func (d Direction) String() string {
	switch d {
	case South:
		return "south"
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	default:
		return "<unknown Direction>"
	}
}

// ParseDirection maps the directive values north, south, east and west.
// The empty string is South.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "south", "":
		return South, true
	case "east":
		return East, true
	case "north":
		return North, true
	case "west":
		return West, true
	}
	return South, false
}

// GradientMode is the orientation of a linear gradient
// inside its bounding box.
type GradientMode uint8

const (
	// from the top-left corner to the bottom-right corner
	ForwardDiagonal GradientMode = iota
	// from the top-right corner to the bottom-left corner
	BackwardDiagonal
	// from left to right
	Horizontal
	// from top to bottom
	Vertical
)

func (m GradientMode) String() string {
	switch m {
	case ForwardDiagonal:
		return "ForwardDiagonal"
	case BackwardDiagonal:
		return "BackwardDiagonal"
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "<unknown GradientMode>"
	}
}

// gradientMode returns the gradient orientation used for a direction.
// South and the default share the same mode.
func (d Direction) gradientMode() GradientMode {
	switch d {
	case East:
		return BackwardDiagonal
	case North:
		return Horizontal
	case West:
		return Vertical
	default:
		return ForwardDiagonal
	}
}

// Align is the horizontal anchor of a text.
type Align uint8

const (
	AlignLeft Align = iota // default value
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "<unknown Align>"
	}
}

// ParseAlign maps the directive values left, center and right.
// The empty string is AlignLeft.
func ParseAlign(s string) (Align, bool) {
	switch s {
	case "left", "":
		return AlignLeft, true
	case "center":
		return AlignCenter, true
	case "right":
		return AlignRight, true
	}
	return AlignLeft, false
}

// VAlign is the vertical anchor of a text.
type VAlign uint8

const (
	VAlignTop VAlign = iota // default value
	VAlignMiddle
	VAlignBottom
)

func (v VAlign) String() string {
	switch v {
	case VAlignTop:
		return "top"
	case VAlignMiddle:
		return "middle"
	case VAlignBottom:
		return "bottom"
	default:
		return "<unknown VAlign>"
	}
}

// ParseVAlign maps the directive values top, middle and bottom.
// The empty string is VAlignTop.
func ParseVAlign(s string) (VAlign, bool) {
	switch s {
	case "top", "":
		return VAlignTop, true
	case "middle":
		return VAlignMiddle, true
	case "bottom":
		return VAlignBottom, true
	}
	return VAlignTop, false
}

// FontStyle is a set of bit flags.
type FontStyle uint8

const (
	FontBold      FontStyle = 1
	FontItalic    FontStyle = 2
	FontUnderline FontStyle = 4
)

// Has returns true if all the flags of `f` are set.
func (s FontStyle) Has(f FontStyle) bool { return s&f == f }
