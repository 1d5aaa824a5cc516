// Package mxcolor parses the color strings found in diagram
// descriptions: hexadecimal notations, rgb() and rgba() functions
// and the CSS color keywords.
package mxcolor

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// None is the sentinel value disabling a stroke or a fill.
const None = "none"

// Error is returned for unknown or malformed color strings.
type Error struct {
	Value  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("mxcolor: invalid color %q: %s", e.Value, e.Reason)
}

// Parser implements the color parsing service used by the canvas.
// Its zero value is ready to use.
type Parser struct{}

// ParseColor implements mxcanvas.ColorParser.
func (Parser) ParseColor(value string) (color.NRGBA, error) {
	return Parse(value)
}

// Parse converts `value` to a non premultiplied color.
func Parse(value string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case v == "":
		return color.NRGBA{}, &Error{Value: value, Reason: "empty string"}
	case v == "transparent":
		return color.NRGBA{}, nil
	case v[0] == '#':
		return parseHex(value, v[1:])
	case strings.HasPrefix(v, "rgba(") || strings.HasPrefix(v, "rgb("):
		return parseFunc(value, v)
	}
	c, ok := colornames.Map[v]
	if !ok {
		return color.NRGBA{}, &Error{Value: value, Reason: "unknown color name"}
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

func parseHex(value, hex string) (color.NRGBA, error) {
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, &Error{Value: value, Reason: "invalid hexadecimal digits"}
	}
	switch len(hex) {
	case 3: // #rgb
		r, g, b := uint8(n>>8&0xf), uint8(n>>4&0xf), uint8(n&0xf)
		return color.NRGBA{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xff}, nil
	case 6: // #rrggbb
		return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
	case 8: // #rrggbbaa
		return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
	default:
		return color.NRGBA{}, &Error{Value: value, Reason: "expected 3, 6 or 8 hexadecimal digits"}
	}
}

func parseFunc(value, v string) (color.NRGBA, error) {
	lp, rp := strings.IndexByte(v, '('), strings.LastIndexByte(v, ')')
	if rp < lp {
		return color.NRGBA{}, &Error{Value: value, Reason: "missing closing parenthesis"}
	}
	args := strings.FieldsFunc(v[lp+1:rp], func(r rune) bool {
		return r == ',' || r == ' '
	})
	hasAlpha := strings.HasPrefix(v, "rgba(")
	if (hasAlpha && len(args) != 4) || (!hasAlpha && len(args) != 3) {
		return color.NRGBA{}, &Error{Value: value, Reason: "wrong number of components"}
	}
	var comps [3]uint8
	for i := range comps {
		c, err := parseComponent(args[i])
		if err != nil {
			return color.NRGBA{}, &Error{Value: value, Reason: err.Error()}
		}
		comps[i] = c
	}
	out := color.NRGBA{R: comps[0], G: comps[1], B: comps[2], A: 0xff}
	if hasAlpha {
		a, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return color.NRGBA{}, &Error{Value: value, Reason: "invalid alpha component"}
		}
		out.A = uint8(clamp(a, 0, 1)*0xff + 0.5)
	}
	return out, nil
}

// parseComponent accepts 0-255 values or percentages
func parseComponent(s string) (uint8, error) {
	if strings.HasSuffix(s, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid component %q", s)
		}
		return uint8(clamp(f, 0, 100)*0xff/100 + 0.5), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid component %q", s)
	}
	return uint8(clamp(f, 0, 255) + 0.5), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WithAlpha returns `c` with its alpha channel multiplied by `alpha`,
// clamped to [0, 1].
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(float64(c.A)*clamp(alpha, 0, 1) + 0.5)
	return c
}
