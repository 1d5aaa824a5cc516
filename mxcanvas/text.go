package mxcanvas

import "strings"

// insets compensating the padding of the text layout
const (
	insetLeft   = 2
	insetCenter = -6
	insetRight  = -10
	insetTop    = 2
	wrapPadding = 10
)

var lineBreaks = strings.NewReplacer("<br>", "\n", "<br/>", "\n", "<br />", "\n")

// Text draws `str` in the box (x, y, w, h).
// When `wrap` is false, the lines of `str` are drawn one by one.
// Otherwise, the backend wraps the text to the box width, clipping it.
// `vertical` rotates the text by -90 degrees around the center of the box.
// For the "html" format, line break elements are converted to new lines;
// other markup is drawn as is.
func (c *Canvas) Text(x, y, w, h float64, str string, align Align, valign VAlign, vertical, wrap bool, format string) error {
	if c.state.textDisabled() {
		return nil
	}
	if format == "html" {
		str = lineBreaks.Replace(str)
	}
	paint, err := c.currentTextFill()
	if err != nil {
		return err
	}
	font := c.currentFont()

	box := TextBox{Rect: c.state.deviceRect(x, y, w, h), Align: align, VAlign: valign, Wrap: wrap}
	if vertical {
		tok := c.backend.PushTransform()
		defer c.backend.PopTransform(tok)
		c.backend.Transform(rotationAround(-90, box.X+box.W/2, box.Y+box.H/2))
	}

	switch align {
	case AlignCenter:
		box.X += insetCenter
	case AlignRight:
		box.X += insetRight
	default:
		box.X += insetLeft
	}
	if valign == VAlignTop {
		box.Y += insetTop
	}

	if wrap {
		box.W += wrapPadding
		c.backend.DrawText(str, font, paint, box)
		return nil
	}

	advance := c.backend.LineHeight(font) + c.lineSpacing
	for _, line := range strings.Split(str, "\n") {
		c.backend.DrawText(line, font, paint, box)
		box.Y += advance
	}
	return nil
}
