package mxcanvas

import (
	"strconv"
	"strings"

	"github.com/korakanchan/mxgraph/mxcolor"
	"github.com/korakanchan/mxgraph/mximage"
	"github.com/korakanchan/mxgraph/mxpath"
)

// Options configures a Canvas. The zero value is usable.
type Options struct {
	// Colors parses the color strings. Default to mxcolor.Parser.
	Colors ColorParser
	// Images resolves the image sources. Default to
	// a mximage.Loader resolving paths against the working directory.
	Images ImageLoader
	// LineSpacing is added to the line height between the lines
	// of a text drawn without wrapping.
	LineSpacing float64
}

// Canvas consumes drawing directives, maintaining the current
// attributes, and sends the resulting primitives to a Backend.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	backend Backend
	colors  ColorParser
	images  ImageLoader

	lineSpacing float64

	state state
	stack []state

	path mxpath.Builder

	shadowColor colorValue
}

// NewCanvas returns a canvas with default attributes,
// drawing on `backend`. `opts` may be nil.
func NewCanvas(backend Backend, opts *Options) *Canvas {
	c := &Canvas{backend: backend, state: defaultState()}
	if opts != nil {
		c.colors, c.images, c.lineSpacing = opts.Colors, opts.Images, opts.LineSpacing
	}
	if c.colors == nil {
		c.colors = mxcolor.Parser{}
	}
	if c.images == nil {
		c.images = mximage.NewLoader("")
	}
	return c
}

// Attributes returns the current drawing attributes.
func (c *Canvas) Attributes() Attributes { return c.state.attributes() }

// Depth returns the number of saved states.
func (c *Canvas) Depth() int { return len(c.stack) }

// Save pushes the current attributes, together with
// the current backend transform and clip.
func (c *Canvas) Save() {
	c.state.token = c.backend.PushTransform()
	c.stack = append(c.stack, c.state)
	c.state = c.state.clone()
}

// Restore pops the attributes saved by the matching Save
// and restores the backend transform and clip.
func (c *Canvas) Restore() error {
	if len(c.stack) == 0 {
		return ErrStateUnderflow
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.backend.PopTransform(c.state.token)
	return nil
}

// Alpha sets the opacity, in [0,1], applied to the colors
// resolved afterwards.
func (c *Canvas) Alpha(alpha float64) {
	if alpha == c.state.alpha {
		return
	}
	c.state.alpha = alpha
	c.state.pen.invalidate()
	c.state.textFill.invalidate()
}

// StrokeWidth sets the line width, in user units.
func (c *Canvas) StrokeWidth(width float64) {
	width *= c.state.scale
	if width == c.state.strokeWidth {
		return
	}
	c.state.strokeWidth = width
	c.state.pen.invalidate()
}

// StrokeColor sets the line color. The value is parsed
// at the next stroke. "none" disables stroking.
func (c *Canvas) StrokeColor(value string) {
	if c.state.strokeColor.set(value) {
		c.state.pen.invalidate()
	}
}

// Dashed enables or disables the dash pattern.
func (c *Canvas) Dashed(dashed bool) {
	if dashed == c.state.dashed {
		return
	}
	c.state.dashed = dashed
	c.state.pen.invalidate()
}

// DashPattern sets the dash lengths, as a space separated list
// of numbers, relative to the stroke width.
// An empty pattern is ignored.
func (c *Canvas) DashPattern(pattern string) error {
	if pattern == "" || pattern == c.state.rawDashPattern {
		return nil
	}
	fields := strings.Fields(pattern)
	dashes := make([]float64, 0, len(fields))
	for _, field := range fields {
		d, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return &DashPatternError{Pattern: pattern, Token: field, Err: err}
		}
		if d < 0 {
			return &DashPatternError{Pattern: pattern, Token: field, Err: errNegativeLength}
		}
		dashes = append(dashes, d)
	}
	c.state.rawDashPattern = pattern
	c.state.dashPattern = dashes
	c.state.pen.invalidate()
	return nil
}

// LineCap sets the cap of line ends.
func (c *Canvas) LineCap(lc LineCap) {
	if lc == c.state.lineCap {
		return
	}
	c.state.lineCap = lc
	c.state.pen.invalidate()
}

// LineJoin sets the join of line segments.
func (c *Canvas) LineJoin(lj LineJoin) {
	if lj == c.state.lineJoin {
		return
	}
	c.state.lineJoin = lj
	c.state.pen.invalidate()
}

// MiterLimit sets the miter limit of miter joins.
func (c *Canvas) MiterLimit(limit float64) {
	if limit == c.state.miterLimit {
		return
	}
	c.state.miterLimit = limit
	c.state.pen.invalidate()
}

// FontSize sets the font size, in user units.
func (c *Canvas) FontSize(size float64) {
	size *= c.state.scale
	if size == c.state.fontSize {
		return
	}
	c.state.fontSize = size
	c.state.font.invalidate()
}

// FontFamily sets the font family. Only the first family
// of a comma separated list is used.
func (c *Canvas) FontFamily(family string) {
	if family == c.state.fontFamily {
		return
	}
	c.state.fontFamily = family
	c.state.font.invalidate()
}

// FontStyle sets the font style flags.
func (c *Canvas) FontStyle(style FontStyle) {
	if style == c.state.fontStyle {
		return
	}
	c.state.fontStyle = style
	c.state.font.invalidate()
}

// FontColor sets the text color. The value is parsed
// at the next text. "none" disables texts.
func (c *Canvas) FontColor(value string) {
	if c.state.fontColor.set(value) {
		c.state.textFill.invalidate()
	}
}
