package mxcanvas

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/korakanchan/mxgraph/mxcolor"
	"github.com/korakanchan/mxgraph/mxpath"
)

// FillColor sets the fill to an uniform color.
// "none" disables filling.
func (c *Canvas) FillColor(value string) error {
	if value == mxcolor.None {
		c.state.fill = nil
		return nil
	}
	col, err := c.colors.ParseColor(value)
	if err != nil {
		return fmt.Errorf("mxcanvas: fill color: %w", err)
	}
	c.state.fill = SolidPaint{Color: mxcolor.WithAlpha(col, c.state.alpha)}
	return nil
}

// SetGradient sets the fill to a linear gradient from `color1` to `color2`,
// laid out in the box (x, y, w, h).
func (c *Canvas) SetGradient(color1, color2 string, x, y, w, h float64, direction Direction) error {
	c1, err := c.colors.ParseColor(color1)
	if err != nil {
		return fmt.Errorf("mxcanvas: gradient start color: %w", err)
	}
	c2, err := c.colors.ParseColor(color2)
	if err != nil {
		return fmt.Errorf("mxcanvas: gradient end color: %w", err)
	}
	stops := []GradStop{
		{Color: mxcolor.WithAlpha(c1, c.state.alpha), Offset: 0},
		{Color: mxcolor.WithAlpha(c2, c.state.alpha), Offset: 1},
	}
	box := c.state.deviceRect(x, y, w, h)
	c.state.fill = newLinearGradient(box, direction.gradientMode(), stops)
	return nil
}

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// SetGlassGradient sets the fill to a translucent white vertical gradient,
// covering the top of the box (x, y, w, h).
func (c *Canvas) SetGlassGradient(x, y, w, h float64) {
	stops := []GradStop{
		{Color: mxcolor.WithAlpha(white, 0.9*c.state.alpha), Offset: 0},
		{Color: mxcolor.WithAlpha(white, 0.1*c.state.alpha), Offset: 1},
	}
	box := c.state.deviceRect(x, y, w, 0.6*h)
	c.state.fill = newLinearGradient(box, Vertical, stops)
}

// currentPen returns the cached pen, building it if needed.
func (c *Canvas) currentPen() (*Pen, error) {
	return c.state.pen.get(func() (*Pen, error) {
		s := &c.state
		col, err := s.strokeColor.resolve(c.colors)
		if err != nil {
			return nil, fmt.Errorf("mxcanvas: stroke color: %w", err)
		}
		pen := &Pen{
			Color:      mxcolor.WithAlpha(col, s.alpha),
			Width:      s.strokeWidth,
			Cap:        s.lineCap,
			Join:       s.lineJoin,
			MiterLimit: s.miterLimit,
		}
		if s.dashed && len(s.dashPattern) != 0 {
			pen.Dashes = make([]float64, len(s.dashPattern))
			for i, d := range s.dashPattern {
				pen.Dashes[i] = d * s.strokeWidth
			}
		}
		return pen, nil
	})
}

// currentFont returns the cached font, building it if needed.
func (c *Canvas) currentFont() *Font {
	f, _ := c.state.font.get(func() (*Font, error) {
		family := c.state.fontFamily
		if i := strings.IndexByte(family, ','); i != -1 {
			family = family[:i]
		}
		return &Font{
			Family: strings.Trim(strings.TrimSpace(family), `"'`),
			Size:   c.state.fontSize,
			Style:  c.state.fontStyle,
		}, nil
	})
	return f
}

// currentTextFill returns the cached text paint, building it if needed.
func (c *Canvas) currentTextFill() (Paint, error) {
	return c.state.textFill.get(func() (Paint, error) {
		col, err := c.state.fontColor.resolve(c.colors)
		if err != nil {
			return nil, fmt.Errorf("mxcanvas: font color: %w", err)
		}
		return SolidPaint{Color: mxcolor.WithAlpha(col, c.state.alpha)}, nil
	})
}

// takePath releases the current path, logging when there is none.
func (c *Canvas) takePath(directive string) (mxpath.Path, bool) {
	p, ok := c.path.Take()
	if !ok {
		Logger().Debug("mxcanvas: no current path", "directive", directive)
	}
	return p, ok
}

func (c *Canvas) strokePath(p mxpath.Path) error {
	if c.state.strokeDisabled() {
		return nil
	}
	pen, err := c.currentPen()
	if err != nil {
		return err
	}
	c.backend.StrokePath(p, pen)
	return nil
}

func (c *Canvas) fillPath(p mxpath.Path) {
	if c.state.fill == nil {
		return
	}
	c.backend.FillPath(p, c.state.fill)
}

// Stroke draws the outline of the current path, which is released.
func (c *Canvas) Stroke() error {
	p, ok := c.takePath("stroke")
	if !ok {
		return nil
	}
	return c.strokePath(p)
}

// Fill fills the current path, which is released.
func (c *Canvas) Fill() {
	p, ok := c.takePath("fill")
	if !ok {
		return
	}
	c.fillPath(p)
}

// FillAndStroke fills then strokes the current path, which is released.
func (c *Canvas) FillAndStroke() error {
	p, ok := c.takePath("fillstroke")
	if !ok {
		return nil
	}
	c.fillPath(p)
	return c.strokePath(p)
}

// Clip replaces the clip region by the interior of the current path,
// which is released. The clip region is reset by the next Restore.
func (c *Canvas) Clip() {
	p, ok := c.takePath("clip")
	if !ok {
		return
	}
	c.backend.ClipPath(p)
}

// Shadow paints the current path with the shadow color, filling it
// if `filled` is true, then stroking it. The path is kept.
func (c *Canvas) Shadow(value string, filled bool) error {
	p, ok := c.path.Path()
	if !ok {
		Logger().Debug("mxcanvas: no current path", "directive", "shadow")
		return nil
	}
	if value == mxcolor.None {
		return nil
	}
	c.shadowColor.set(value)
	col, err := c.shadowColor.resolve(c.colors)
	if err != nil {
		return fmt.Errorf("mxcanvas: shadow color: %w", err)
	}
	col = mxcolor.WithAlpha(col, c.state.alpha)
	if filled {
		c.backend.FillPath(p, SolidPaint{Color: col})
	}
	c.backend.StrokePath(p, &Pen{
		Color:      col,
		Width:      c.state.strokeWidth,
		Cap:        c.state.lineCap,
		Join:       c.state.lineJoin,
		MiterLimit: c.state.miterLimit,
	})
	return nil
}
