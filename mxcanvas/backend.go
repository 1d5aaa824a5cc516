package mxcanvas

import (
	"image"
	"image/color"

	"github.com/korakanchan/mxgraph/mxpath"
	"github.com/srwiley/rasterx"
)

// TransformToken identifies a graphics state (transform and clip)
// saved by a Backend.
type TransformToken int

// Backend knows how to do the actual draw operations
// but doesn't need any knowledge about the directives.
// In particular, the offset and scale of the canvas are already
// applied to the points before sending them to the Backend.
// Rotations and mirrors are sent through Transform.
type Backend interface {
	// PushTransform saves the current transform and clip region.
	PushTransform() TransformToken
	// PopTransform restores the state saved by the PushTransform call
	// which returned `tok`, discarding the states pushed after it.
	PopTransform(tok TransformToken)
	// Transform combines `m` with the current transform,
	// so that `m` is applied to the points before the current transform.
	Transform(m rasterx.Matrix2D)

	// StrokePath draws the outline of `p`.
	StrokePath(p mxpath.Path, pen *Pen)
	// FillPath fills the interior of `p`, using the non zero winding rule.
	FillPath(p mxpath.Path, paint Paint)
	// ClipPath replaces the current clip region by the interior of `p`.
	ClipPath(p mxpath.Path)

	// LineHeight returns the distance between two baselines for `font`.
	LineHeight(font *Font) float64
	// DrawText draws `s` inside the box, according to its alignments.
	// When box.Wrap is true, `s` may contain line breaks and
	// long lines are wrapped to the box width.
	DrawText(s string, font *Font, paint Paint, box TextBox)

	// DrawImage draws `img` scaled to fill `r`.
	DrawImage(img image.Image, r Rect)
}

// ColorParser converts color strings to colors.
type ColorParser interface {
	ParseColor(value string) (color.NRGBA, error)
}

// ImageLoader resolves an image source.
type ImageLoader interface {
	LoadImage(src string) (image.Image, error)
}

// Rect is an axis aligned rectangle.
type Rect struct{ X, Y, W, H float64 }

// TextBox locates a text inside a device box.
type TextBox struct {
	Rect
	Align  Align
	VAlign VAlign
	Wrap   bool // also means the text is clipped to the box
}

// Pen holds the resolved stroke parameters.
// A Pen must not be modified once built.
type Pen struct {
	Color      color.NRGBA
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dashes     []float64 // device lengths, nil for a solid line
}

// Font holds the resolved font parameters.
// A Font must not be modified once built.
type Font struct {
	Family string
	Size   float64 // device units
	Style  FontStyle
}

// Paint is either SolidPaint or LinearGradient
type Paint interface {
	isPaint()
}

// SolidPaint is an uniform color.
type SolidPaint struct {
	Color color.NRGBA
}

// GradStop is a color stop of a gradient, with Offset in [0,1]
type GradStop struct {
	Color  color.NRGBA
	Offset float64
}

// LinearGradient interpolates its stops along the vector
// (X1, Y1) -> (X2, Y2), in device space. Points outside
// this range use the color of the nearest stop.
type LinearGradient struct {
	X1, Y1, X2, Y2 float64
	Stops          []GradStop
	Mode           GradientMode
}

func (SolidPaint) isPaint()     {}
func (LinearGradient) isPaint() {}

// newLinearGradient orients the gradient inside the box
// according to the mode.
func newLinearGradient(box Rect, mode GradientMode, stops []GradStop) LinearGradient {
	g := LinearGradient{Stops: stops, Mode: mode}
	switch mode {
	case ForwardDiagonal:
		g.X1, g.Y1, g.X2, g.Y2 = box.X, box.Y, box.X+box.W, box.Y+box.H
	case BackwardDiagonal:
		g.X1, g.Y1, g.X2, g.Y2 = box.X+box.W, box.Y, box.X, box.Y+box.H
	case Horizontal:
		g.X1, g.Y1, g.X2, g.Y2 = box.X, box.Y, box.X+box.W, box.Y
	case Vertical:
		g.X1, g.Y1, g.X2, g.Y2 = box.X, box.Y, box.X, box.Y+box.H
	}
	return g
}
