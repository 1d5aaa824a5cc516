package mxxml

import (
	"encoding/xml"
	"errors"
	"strconv"
	"strings"

	"github.com/korakanchan/mxgraph/mxcanvas"
)

var errInvalidBool = errors.New("expected one of 1, 0, true, false")

// attributes gives access to the attributes of one element
type attributes struct {
	element string
	list    []xml.Attr
}

func (a attributes) lookup(name string) (string, bool) {
	for _, attr := range a.list {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

func (a attributes) str(name string) string {
	s, _ := a.lookup(name)
	return s
}

func (a attributes) invalid(name, value string, err error) error {
	return &AttrError{Element: a.element, Attr: name, Value: value, Err: err}
}

// float returns 0 for a missing attribute
func (a attributes) float(name string) (float64, error) {
	s, ok := a.lookup(name)
	if !ok {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, a.invalid(name, s, err)
	}
	return f, nil
}

// floats parses the given attributes, in order
func (a attributes) floats(names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		var err error
		if out[i], err = a.float(name); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// bool returns false for a missing attribute
func (a attributes) bool(name string) (bool, error) {
	s, ok := a.lookup(name)
	if !ok {
		return false, nil
	}
	switch strings.TrimSpace(s) {
	case "1", "true":
		return true, nil
	case "0", "false", "":
		return false, nil
	}
	return false, a.invalid(name, s, errInvalidBool)
}

func (a attributes) bools(names ...string) ([]bool, error) {
	out := make([]bool, len(names))
	for i, name := range names {
		var err error
		if out[i], err = a.bool(name); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// enum resolves an enumeration value with `parse`, applying
// the error mode on unknown values.
func enum[T any](r *replayer, a attributes, name string, parse func(string) (T, bool)) (T, error) {
	s := a.str(name)
	v, ok := parse(s)
	if !ok {
		return v, r.unsupported("unknown value %q for %s of <%s>", s, name, a.element)
	}
	return v, nil
}

type directiveFunc func(r *replayer, a attributes) error

var drawFuncs = map[string]directiveFunc{
	"save":        saveF,
	"restore":     restoreF,
	"scale":       scaleF,
	"translate":   translateF,
	"rotate":      rotateF,
	"strokewidth": strokeWidthF,
	"strokecolor": strokeColorF,
	"dashed":      dashedF,
	"dashpattern": dashPatternF,
	"linecap":     lineCapF,
	"linejoin":    lineJoinF,
	"miterlimit":  miterLimitF,
	"fontsize":    fontSizeF,
	"fontcolor":   fontColorF,
	"fontfamily":  fontFamilyF,
	"fontstyle":   fontStyleF,
	"alpha":       alphaF,
	"fillcolor":   fillColorF,
	"gradient":    gradientF,
	"glass":       glassF,
	"rect":        rectF,
	"roundrect":   roundrectF,
	"ellipse":     ellipseF,
	"image":       imageF,
	"begin":       beginF,
	"move":        moveF,
	"line":        lineF,
	"quad":        quadF,
	"curve":       curveF,
	"close":       closeF,
	"stroke":      strokeF,
	"fill":        fillF,
	"fillstroke":  fillStrokeF,
	"shadow":      shadowF,
	"clip":        clipF,
	"text":        textF,
}

func saveF(r *replayer, _ attributes) error {
	r.canvas.Save()
	return nil
}

func restoreF(r *replayer, _ attributes) error { return r.canvas.Restore() }

func scaleF(r *replayer, a attributes) error {
	s, err := a.float("scale")
	if err != nil {
		return err
	}
	r.canvas.Scale(s)
	return nil
}

func translateF(r *replayer, a attributes) error {
	v, err := a.floats("dx", "dy")
	if err != nil {
		return err
	}
	r.canvas.Translate(v[0], v[1])
	return nil
}

func rotateF(r *replayer, a attributes) error {
	v, err := a.floats("theta", "cx", "cy")
	if err != nil {
		return err
	}
	flips, err := a.bools("flipH", "flipV")
	if err != nil {
		return err
	}
	r.canvas.Rotate(v[0], flips[0], flips[1], v[1], v[2])
	return nil
}

func strokeWidthF(r *replayer, a attributes) error {
	w, err := a.float("width")
	if err != nil {
		return err
	}
	r.canvas.StrokeWidth(w)
	return nil
}

func strokeColorF(r *replayer, a attributes) error {
	r.canvas.StrokeColor(a.str("color"))
	return nil
}

func dashedF(r *replayer, a attributes) error {
	d, err := a.bool("dashed")
	if err != nil {
		return err
	}
	r.canvas.Dashed(d)
	return nil
}

func dashPatternF(r *replayer, a attributes) error {
	return r.canvas.DashPattern(a.str("pattern"))
}

func lineCapF(r *replayer, a attributes) error {
	lc, err := enum(r, a, "cap", mxcanvas.ParseLineCap)
	if err != nil {
		return err
	}
	r.canvas.LineCap(lc)
	return nil
}

func lineJoinF(r *replayer, a attributes) error {
	lj, err := enum(r, a, "join", mxcanvas.ParseLineJoin)
	if err != nil {
		return err
	}
	r.canvas.LineJoin(lj)
	return nil
}

func miterLimitF(r *replayer, a attributes) error {
	l, err := a.float("limit")
	if err != nil {
		return err
	}
	r.canvas.MiterLimit(l)
	return nil
}

func fontSizeF(r *replayer, a attributes) error {
	s, err := a.float("size")
	if err != nil {
		return err
	}
	r.canvas.FontSize(s)
	return nil
}

func fontColorF(r *replayer, a attributes) error {
	r.canvas.FontColor(a.str("color"))
	return nil
}

func fontFamilyF(r *replayer, a attributes) error {
	r.canvas.FontFamily(a.str("family"))
	return nil
}

func fontStyleF(r *replayer, a attributes) error {
	s := a.str("style")
	if s == "" {
		r.canvas.FontStyle(0)
		return nil
	}
	style, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return a.invalid("style", s, errors.New("expected a set of flags"))
	}
	r.canvas.FontStyle(mxcanvas.FontStyle(style))
	return nil
}

func alphaF(r *replayer, a attributes) error {
	v, err := a.float("alpha")
	if err != nil {
		return err
	}
	r.canvas.Alpha(v)
	return nil
}

func fillColorF(r *replayer, a attributes) error {
	return r.canvas.FillColor(a.str("color"))
}

func gradientF(r *replayer, a attributes) error {
	v, err := a.floats("x", "y", "w", "h")
	if err != nil {
		return err
	}
	dir, err := enum(r, a, "direction", mxcanvas.ParseDirection)
	if err != nil {
		return err
	}
	return r.canvas.SetGradient(a.str("c1"), a.str("c2"), v[0], v[1], v[2], v[3], dir)
}

func glassF(r *replayer, a attributes) error {
	v, err := a.floats("x", "y", "w", "h")
	if err != nil {
		return err
	}
	r.canvas.SetGlassGradient(v[0], v[1], v[2], v[3])
	return nil
}

func rectF(r *replayer, a attributes) error {
	v, err := a.floats("x", "y", "w", "h")
	if err != nil {
		return err
	}
	r.canvas.Rect(v[0], v[1], v[2], v[3])
	return nil
}

func roundrectF(r *replayer, a attributes) error {
	v, err := a.floats("x", "y", "w", "h", "dx", "dy")
	if err != nil {
		return err
	}
	r.canvas.Roundrect(v[0], v[1], v[2], v[3], v[4], v[5])
	return nil
}

func ellipseF(r *replayer, a attributes) error {
	v, err := a.floats("x", "y", "w", "h")
	if err != nil {
		return err
	}
	r.canvas.Ellipse(v[0], v[1], v[2], v[3])
	return nil
}

func imageF(r *replayer, a attributes) error {
	v, err := a.floats("x", "y", "w", "h")
	if err != nil {
		return err
	}
	flags, err := a.bools("aspect", "flipH", "flipV")
	if err != nil {
		return err
	}
	r.canvas.Image(v[0], v[1], v[2], v[3], a.str("src"), flags[0], flags[1], flags[2])
	return nil
}

func beginF(r *replayer, _ attributes) error {
	r.canvas.Begin()
	return nil
}

func moveF(r *replayer, a attributes) error {
	v, err := a.floats("x", "y")
	if err != nil {
		return err
	}
	r.canvas.MoveTo(v[0], v[1])
	return nil
}

func lineF(r *replayer, a attributes) error {
	v, err := a.floats("x", "y")
	if err != nil {
		return err
	}
	r.canvas.LineTo(v[0], v[1])
	return nil
}

func quadF(r *replayer, a attributes) error {
	v, err := a.floats("x1", "y1", "x2", "y2")
	if err != nil {
		return err
	}
	r.canvas.QuadTo(v[0], v[1], v[2], v[3])
	return nil
}

func curveF(r *replayer, a attributes) error {
	v, err := a.floats("x1", "y1", "x2", "y2", "x3", "y3")
	if err != nil {
		return err
	}
	r.canvas.CurveTo(v[0], v[1], v[2], v[3], v[4], v[5])
	return nil
}

func closeF(r *replayer, _ attributes) error {
	r.canvas.Close()
	return nil
}

func strokeF(r *replayer, _ attributes) error { return r.canvas.Stroke() }

func fillF(r *replayer, _ attributes) error {
	r.canvas.Fill()
	return nil
}

func fillStrokeF(r *replayer, _ attributes) error { return r.canvas.FillAndStroke() }

func shadowF(r *replayer, a attributes) error {
	filled, err := a.bool("filled")
	if err != nil {
		return err
	}
	return r.canvas.Shadow(a.str("value"), filled)
}

func clipF(r *replayer, _ attributes) error {
	r.canvas.Clip()
	return nil
}

func textF(r *replayer, a attributes) error {
	v, err := a.floats("x", "y", "w", "h")
	if err != nil {
		return err
	}
	flags, err := a.bools("vertical", "wrap")
	if err != nil {
		return err
	}
	align, err := enum(r, a, "align", mxcanvas.ParseAlign)
	if err != nil {
		return err
	}
	valign, err := enum(r, a, "valign", mxcanvas.ParseVAlign)
	if err != nil {
		return err
	}
	return r.canvas.Text(v[0], v[1], v[2], v[3], a.str("str"), align, valign, flags[0], flags[1], a.str("format"))
}
