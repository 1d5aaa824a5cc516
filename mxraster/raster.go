// Package mxraster implements a raster backend for mxcanvas,
// by wrapping rasterx.
package mxraster

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/korakanchan/mxgraph/mxcanvas"
	"github.com/korakanchan/mxgraph/mxpath"
	"github.com/korakanchan/mxgraph/mxxml"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

var _ mxcanvas.Backend = (*Renderer)(nil) // assert interface conformance

// Options configures a Renderer.
type Options struct {
	// Background fills the image when the renderer is created.
	// nil keeps the image content.
	Background color.Color

	// ErrorMode is used by RasterDirectivesToImage.
	ErrorMode mxxml.ErrorMode
}

// graphicState is saved by PushTransform
type graphicState struct {
	matrix rasterx.Matrix2D
	clip   *image.Alpha
}

// Renderer draws on an *image.RGBA.
// It is not safe for concurrent use.
type Renderer struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	dasher  *rasterx.Dasher // to avoid shared state
	filler  *rasterx.Filler // we use separated instance

	matrix rasterx.Matrix2D
	clip   *image.Alpha // nil for no clip
	stack  []graphicState

	fonts *fontLibrary
}

// NewRenderer returns a renderer drawing on `img`, whose bounds
// must start at the origin. `opts` may be nil.
func NewRenderer(img *image.RGBA, opts *Options) *Renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if opts != nil && opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Renderer{
		img:     img,
		scanner: scanner,
		dasher:  rasterx.NewDasher(w, h, scanner),
		filler:  rasterx.NewFiller(w, h, scanner),
		matrix:  rasterx.Identity,
		fonts:   newFontLibrary(),
	}
}

// Image returns the destination image.
func (rd *Renderer) Image() *image.RGBA { return rd.img }

// RegisterFont adds a TrueType or OpenType font to the family `family`,
// for the bold and italic flags of `style`.
// Registered families take precedence over the Go fonts.
func (rd *Renderer) RegisterFont(family string, style mxcanvas.FontStyle, data []byte) error {
	return rd.fonts.register(family, variantOf(style), data)
}

// RasterDirectivesToImage replays the directive document read from `r`
// on a new image of the given size, and returns it.
func RasterDirectivesToImage(r io.Reader, width, height int, opts *Options, canvasOpts *mxcanvas.Options) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	canvas := mxcanvas.NewCanvas(NewRenderer(img, opts), canvasOpts)
	mode := mxxml.IgnoreErrorMode
	if opts != nil {
		mode = opts.ErrorMode
	}
	if err := mxxml.Replay(r, canvas, mode); err != nil {
		return nil, err
	}
	return img, nil
}

// PushTransform implements mxcanvas.Backend.
func (rd *Renderer) PushTransform() mxcanvas.TransformToken {
	rd.stack = append(rd.stack, graphicState{matrix: rd.matrix, clip: rd.clip})
	return mxcanvas.TransformToken(len(rd.stack) - 1)
}

// PopTransform implements mxcanvas.Backend.
// Unknown tokens are ignored.
func (rd *Renderer) PopTransform(tok mxcanvas.TransformToken) {
	i := int(tok)
	if i < 0 || i >= len(rd.stack) {
		return
	}
	rd.matrix, rd.clip = rd.stack[i].matrix, rd.stack[i].clip
	rd.stack = rd.stack[:i]
}

// Transform implements mxcanvas.Backend.
func (rd *Renderer) Transform(m rasterx.Matrix2D) {
	rd.matrix = rd.matrix.Mult(m)
}

func toAff3(m rasterx.Matrix2D) f64.Aff3 {
	return f64.Aff3{m.A, m.C, m.E, m.B, m.D, m.F}
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		mxcanvas.JoinMiter: rasterx.Miter,
		mxcanvas.JoinRound: rasterx.Round,
		mxcanvas.JoinBevel: rasterx.Bevel,
	}

	capToFunc = [...]rasterx.CapFunc{
		mxcanvas.CapFlat:   rasterx.ButtCap,
		mxcanvas.CapRound:  rasterx.RoundCap,
		mxcanvas.CapSquare: rasterx.SquareCap,
	}
)

func (rd *Renderer) adder(q rasterx.Adder) rasterx.Adder {
	return &rasterx.MatrixAdder{Adder: q, M: rd.matrix}
}

// visible returns false if the path, grown by `margin` on each side,
// can't touch the image once transformed.
func (rd *Renderer) visible(p mxpath.Path, margin float64) bool {
	minX, minY, maxX, maxY, ok := p.Bounds()
	if !ok {
		return false
	}
	minX, minY, maxX, maxY = minX-margin, minY-margin, maxX+margin, maxY+margin
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, corner := range [4][2]float64{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}} {
		x, y := rd.matrix.Transform(corner[0], corner[1])
		x0, y0 = math.Min(x0, x), math.Min(y0, y)
		x1, y1 = math.Max(x1, x), math.Max(y1, y)
	}
	b := rd.img.Bounds()
	return x1 >= float64(b.Min.X) && x0 <= float64(b.Max.X) &&
		y1 >= float64(b.Min.Y) && y0 <= float64(b.Max.Y)
}

// StrokePath implements mxcanvas.Backend.
func (rd *Renderer) StrokePath(p mxpath.Path, pen *mxcanvas.Pen) {
	if pen.Width <= 0 || !rd.visible(p, pen.Width/2*math.Max(pen.MiterLimit, 1)+1) {
		return
	}
	rd.dasher.Clear()
	capFunc := capToFunc[pen.Cap]
	rd.dasher.SetStroke(
		fixed.Int26_6(pen.Width*64), fixed.Int26_6(pen.MiterLimit*64),
		capFunc, capFunc, rasterx.FlatGap, joinToJoin[pen.Join],
		pen.Dashes, 0,
	)
	p.AddTo(rd.adder(rd.dasher))
	rd.setColor(mxcanvas.SolidPaint{Color: pen.Color})
	rd.dasher.Draw()
}

// FillPath implements mxcanvas.Backend.
func (rd *Renderer) FillPath(p mxpath.Path, paint mxcanvas.Paint) {
	if !rd.visible(p, 0) {
		return
	}
	rd.filler.Clear()
	p.AddTo(rd.adder(rd.filler))
	rd.setColor(paint)
	rd.filler.Draw()
}

// ClipPath implements mxcanvas.Backend.
// The clip region is replaced, not intersected.
func (rd *Renderer) ClipPath(p mxpath.Path) {
	b := rd.img.Bounds()
	mask := image.NewAlpha(b)
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), mask, b)
	filler := rasterx.NewFiller(b.Dx(), b.Dy(), scanner)
	p.AddTo(rd.adder(filler))
	scanner.SetColor(color.Opaque)
	filler.Draw()
	rd.clip = mask
}

// DrawImage implements mxcanvas.Backend.
func (rd *Renderer) DrawImage(img image.Image, r mxcanvas.Rect) {
	sr := img.Bounds()
	if sr.Empty() || r.W <= 0 || r.H <= 0 {
		return
	}
	m := rd.matrix.
		Translate(r.X, r.Y).
		Scale(r.W/float64(sr.Dx()), r.H/float64(sr.Dy())).
		Translate(-float64(sr.Min.X), -float64(sr.Min.Y))
	var opts *draw.Options
	if rd.clip != nil {
		opts = &draw.Options{DstMask: rd.clip}
	}
	draw.BiLinear.Transform(rd.img, toAff3(m), img, sr, draw.Over, opts)
}

// setColor resolves the paint on the shared scanner,
// restricted to the clip region.
func (rd *Renderer) setColor(paint mxcanvas.Paint) {
	switch paint := paint.(type) {
	case mxcanvas.SolidPaint:
		rd.scanner.SetColor(paint.Color)
	case mxcanvas.LinearGradient:
		rd.scanner.SetColor(rd.gradientColor(paint))
	}
	if rd.clip != nil {
		rd.scanner.Source = &clippedImage{Image: rd.scanner.Source, clip: rd.clip}
	}
}

// paintImage returns an image filled with the paint.
func (rd *Renderer) paintImage(paint mxcanvas.Paint) image.Image {
	switch paint := paint.(type) {
	case mxcanvas.SolidPaint:
		return image.NewUniform(paint.Color)
	case mxcanvas.LinearGradient:
		switch c := rd.gradientColor(paint).(type) {
		case color.Color:
			return image.NewUniform(c)
		case rasterx.ColorFunc:
			return funcImage(c)
		}
	}
	return image.Transparent
}

// gradientColor returns either a color.Color or a rasterx.ColorFunc
func (rd *Renderer) gradientColor(g mxcanvas.LinearGradient) interface{} {
	if len(g.Stops) == 0 {
		return color.Transparent
	}
	if g.X1 == g.X2 && g.Y1 == g.Y2 {
		return g.Stops[len(g.Stops)-1].Color
	}
	stops := make([]rasterx.GradStop, len(g.Stops))
	for i, s := range g.Stops {
		// rasterx expects opaque colors, with a separated opacity
		opaque := s.Color
		opaque.A = 0xff
		stops[i] = rasterx.GradStop{StopColor: opaque, Offset: s.Offset, Opacity: float64(s.Color.A) / 0xff}
	}
	grad := rasterx.Gradient{
		Points: [5]float64{g.X1, g.Y1, g.X2, g.Y2},
		Stops:  stops,
		Matrix: rasterx.Identity,
		Units:  rasterx.UserSpaceOnUse,
	}
	grad.Bounds.W, grad.Bounds.H = 1, 1
	return grad.GetColorFunctionUS(1, rd.matrix)
}

// funcImage is an infinite image defined by a color function
type funcImage rasterx.ColorFunc

var infiniteRect = image.Rect(-1e9, -1e9, 1e9, 1e9)

func (f funcImage) ColorModel() color.Model { return color.RGBAModel }
func (f funcImage) Bounds() image.Rectangle { return infiniteRect }
func (f funcImage) At(x, y int) color.Color { return f(x, y) }

// clippedImage restricts an image to a clip mask
type clippedImage struct {
	image.Image
	clip *image.Alpha
}

func (c *clippedImage) ColorModel() color.Model { return color.RGBA64Model }

func (c *clippedImage) At(x, y int) color.Color {
	a := uint32(c.clip.AlphaAt(x, y).A)
	switch a {
	case 0:
		return color.Transparent
	case 0xff:
		return c.Image.At(x, y)
	}
	r, g, b, al := c.Image.At(x, y).RGBA()
	return color.RGBA64{
		R: uint16(r * a / 0xff),
		G: uint16(g * a / 0xff),
		B: uint16(b * a / 0xff),
		A: uint16(al * a / 0xff),
	}
}

// round to the nearest pixel
func roundRect(x0, y0, x1, y1 float64) image.Rectangle {
	return image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
}
