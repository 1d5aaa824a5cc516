package mxcanvas

import (
	"fmt"
	"image"
	"math"

	"github.com/korakanchan/mxgraph/mxpath"
	"github.com/srwiley/rasterx"
)

// call is one primitive received by a recorder
type call struct {
	kind   string // stroke, fill, clip, text, image, transform
	path   mxpath.Path
	pen    *Pen
	paint  Paint
	text   string
	font   *Font
	box    TextBox
	img    image.Image
	rect   Rect
	matrix rasterx.Matrix2D // current transform when the call was made
}

// recorder is a Backend storing the primitives it receives.
type recorder struct {
	calls      []call
	matrix     rasterx.Matrix2D
	stack      []rasterx.Matrix2D
	lineHeight float64
}

var _ Backend = (*recorder)(nil)

func newRecorder() *recorder {
	return &recorder{matrix: rasterx.Identity, lineHeight: 10}
}

func (r *recorder) PushTransform() TransformToken {
	r.stack = append(r.stack, r.matrix)
	return TransformToken(len(r.stack) - 1)
}

func (r *recorder) PopTransform(tok TransformToken) {
	if int(tok) >= len(r.stack) {
		panic(fmt.Sprintf("invalid token %d", tok))
	}
	r.matrix = r.stack[tok]
	r.stack = r.stack[:tok]
}

func (r *recorder) Transform(m rasterx.Matrix2D) {
	r.matrix = r.matrix.Mult(m)
	r.calls = append(r.calls, call{kind: "transform", matrix: r.matrix})
}

func (r *recorder) StrokePath(p mxpath.Path, pen *Pen) {
	r.calls = append(r.calls, call{kind: "stroke", path: p, pen: pen, matrix: r.matrix})
}

func (r *recorder) FillPath(p mxpath.Path, paint Paint) {
	r.calls = append(r.calls, call{kind: "fill", path: p, paint: paint, matrix: r.matrix})
}

func (r *recorder) ClipPath(p mxpath.Path) {
	r.calls = append(r.calls, call{kind: "clip", path: p, matrix: r.matrix})
}

func (r *recorder) LineHeight(*Font) float64 { return r.lineHeight }

func (r *recorder) DrawText(s string, font *Font, paint Paint, box TextBox) {
	r.calls = append(r.calls, call{kind: "text", text: s, font: font, paint: paint, box: box, matrix: r.matrix})
}

func (r *recorder) DrawImage(img image.Image, rect Rect) {
	r.calls = append(r.calls, call{kind: "image", img: img, rect: rect, matrix: r.matrix})
}

// kinds returns the kind of the recorded calls
func (r *recorder) kinds() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.kind
	}
	return out
}

func (r *recorder) last() call {
	if len(r.calls) == 0 {
		return call{}
	}
	return r.calls[len(r.calls)-1]
}

func (r *recorder) reset() { r.calls = nil }

func near(a, b float64) bool { return math.Abs(a-b) < 1e-2 }

// fakeImages resolves sources from a map
type fakeImages map[string]image.Image

func (f fakeImages) LoadImage(src string) (image.Image, error) {
	img, ok := f[src]
	if !ok {
		return nil, fmt.Errorf("unknown image %s", src)
	}
	return img, nil
}
