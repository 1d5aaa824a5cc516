package mxcanvas

import "github.com/korakanchan/mxgraph/mxcolor"

// state holds the current attributes of a canvas.
// It is copied on Save, so fields holding slices
// must never be modified in place.
type state struct {
	alpha  float64
	scale  float64
	dx, dy float64

	strokeWidth    float64 // device units
	strokeColor    colorValue
	dashed         bool
	rawDashPattern string
	dashPattern    []float64
	lineCap        LineCap
	lineJoin       LineJoin
	miterLimit     float64

	fontSize   float64 // device units
	fontFamily string
	fontStyle  FontStyle
	fontColor  colorValue

	fill Paint // nil for no fill

	pen      lazy[*Pen]
	font     lazy[*Font]
	textFill lazy[Paint]

	token TransformToken // backend state saved with this snapshot
}

func defaultState() state {
	return state{
		alpha:          1,
		scale:          1,
		strokeWidth:    1,
		strokeColor:    colorValue{raw: "black"},
		rawDashPattern: "3 3",
		dashPattern:    []float64{3, 3},
		lineCap:        CapFlat,
		lineJoin:       JoinMiter,
		miterLimit:     10,
		fontSize:       12,
		fontFamily:     "Arial",
		fontColor:      colorValue{raw: "black"},
	}
}

func (s state) clone() state {
	out := s
	out.dashPattern = append([]float64(nil), s.dashPattern...)
	return out
}

// Attributes is a read-only view of the current
// drawing attributes of a Canvas.
type Attributes struct {
	Alpha       float64
	Scale       float64
	DX, DY      float64
	StrokeWidth float64
	StrokeColor string
	Dashed      bool
	DashPattern []float64
	LineCap     LineCap
	LineJoin    LineJoin
	MiterLimit  float64
	FontSize    float64
	FontFamily  string
	FontStyle   FontStyle
	FontColor   string
	Fill        Paint
}

func (s *state) attributes() Attributes {
	return Attributes{
		Alpha:       s.alpha,
		Scale:       s.scale,
		DX:          s.dx,
		DY:          s.dy,
		StrokeWidth: s.strokeWidth,
		StrokeColor: s.strokeColor.raw,
		Dashed:      s.dashed,
		DashPattern: append([]float64(nil), s.dashPattern...),
		LineCap:     s.lineCap,
		LineJoin:    s.lineJoin,
		MiterLimit:  s.miterLimit,
		FontSize:    s.fontSize,
		FontFamily:  s.fontFamily,
		FontStyle:   s.fontStyle,
		FontColor:   s.fontColor.raw,
		Fill:        s.fill,
	}
}

// device maps a user point to device space
func (s *state) device(x, y float64) (float64, float64) {
	return s.dx + s.scale*x, s.dy + s.scale*y
}

// deviceRect maps a user box to device space
func (s *state) deviceRect(x, y, w, h float64) Rect {
	dx, dy := s.device(x, y)
	return Rect{X: dx, Y: dy, W: s.scale * w, H: s.scale * h}
}

func (s *state) strokeDisabled() bool { return s.strokeColor.raw == mxcolor.None }
func (s *state) textDisabled() bool   { return s.fontColor.raw == mxcolor.None }
