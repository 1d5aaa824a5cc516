package mxraster

import (
	"image"
	"math"
	"strings"

	"github.com/korakanchan/mxgraph/mxcanvas"
	"github.com/korakanchan/mxgraph/mxpath"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// LineHeight implements mxcanvas.Backend.
func (rd *Renderer) LineHeight(fo *mxcanvas.Font) float64 {
	return fixedToFloat(rd.fonts.face(fo).Metrics().Height)
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

// wrapLines splits `s` on new lines, and breaks the lines
// longer than `width` at spaces. Words longer than `width`
// are not split.
func wrapLines(face font.Face, s string, width float64) []string {
	var out []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if fixedToFloat(font.MeasureString(face, candidate)) > width {
				out = append(out, line)
				line = word
			} else {
				line = candidate
			}
		}
		out = append(out, line)
	}
	return out
}

// layoutText draws the text in the box, in device space (before the
// current transform), on a new mask which is returned.
func (rd *Renderer) layoutText(s string, fo *mxcanvas.Font, box mxcanvas.TextBox) *image.Alpha {
	face := rd.fonts.face(fo)
	metrics := face.Metrics()
	lineHeight := fixedToFloat(metrics.Height)
	ascent := fixedToFloat(metrics.Ascent)

	lines := []string{s}
	if box.Wrap {
		lines = wrapLines(face, s, box.W)
	}

	total := lineHeight * float64(len(lines))
	top := box.Y
	switch box.VAlign {
	case mxcanvas.VAlignMiddle:
		top += (box.H - total) / 2
	case mxcanvas.VAlignBottom:
		top += box.H - total
	}

	type placedLine struct {
		text    string
		x, base float64
		advance float64
	}
	placed := make([]placedLine, len(lines))
	// union of the box and the text extents
	minX, minY := box.X, math.Min(box.Y, top)
	maxX, maxY := box.X+box.W, math.Max(box.Y+box.H, top+total)
	for i, line := range lines {
		adv := fixedToFloat(font.MeasureString(face, line))
		x := box.X
		switch box.Align {
		case mxcanvas.AlignCenter:
			x += (box.W - adv) / 2
		case mxcanvas.AlignRight:
			x += box.W - adv
		}
		placed[i] = placedLine{text: line, x: x, base: top + float64(i)*lineHeight + ascent, advance: adv}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x+adv)
	}

	const pad = 2 // glyphs may overflow their advance
	bounds := image.Rect(
		int(math.Floor(minX))-pad, int(math.Floor(minY))-pad,
		int(math.Ceil(maxX))+pad, int(math.Ceil(maxY))+pad,
	)
	mask := image.NewAlpha(bounds)
	d := font.Drawer{Dst: mask, Src: image.Opaque, Face: face}
	underline := fo.Style.Has(mxcanvas.FontUnderline)
	thickness := math.Max(1, fo.Size/16)
	for _, pl := range placed {
		d.Dot = mxpath.ToFixedP(pl.x, pl.base)
		d.DrawString(pl.text)
		if underline && pl.advance > 0 {
			y := pl.base + thickness
			r := roundRect(pl.x, y, pl.x+pl.advance, y+thickness)
			draw.Draw(mask, r, image.Opaque, image.Point{}, draw.Src)
		}
	}

	if box.Wrap { // clip to the box
		clipRect := image.Rect(int(math.Floor(box.X)), int(math.Floor(box.Y)),
			int(math.Ceil(box.X+box.W)), int(math.Ceil(box.Y+box.H)))
		clipped := image.NewAlpha(bounds)
		draw.Draw(clipped, clipRect.Intersect(bounds), mask, clipRect.Intersect(bounds).Min, draw.Src)
		mask = clipped
	}
	return mask
}

// DrawText implements mxcanvas.Backend.
func (rd *Renderer) DrawText(s string, fo *mxcanvas.Font, paint mxcanvas.Paint, box mxcanvas.TextBox) {
	if s == "" {
		return
	}
	layout := rd.layoutText(s, fo, box)
	area := rd.deviceArea(layout.Bounds())
	if area.Empty() {
		return
	}
	// map the layout to the destination, restricted to the clip
	mask := image.NewAlpha(area)
	var opts *draw.Options
	if rd.clip != nil {
		opts = &draw.Options{DstMask: rd.clip}
	}
	draw.BiLinear.Transform(mask, toAff3(rd.matrix), layout, layout.Bounds(), draw.Src, opts)
	draw.DrawMask(rd.img, area, rd.paintImage(paint), area.Min, mask, area.Min, draw.Over)
}

// deviceArea returns the pixels of the image covered by `r`
// once transformed by the current matrix.
func (rd *Renderer) deviceArea(r image.Rectangle) image.Rectangle {
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, corner := range [4]image.Point{r.Min, {r.Max.X, r.Min.Y}, r.Max, {r.Min.X, r.Max.Y}} {
		x, y := rd.matrix.Transform(float64(corner.X), float64(corner.Y))
		x0, y0 = math.Min(x0, x), math.Min(y0, y)
		x1, y1 = math.Max(x1, x), math.Max(y1, y)
	}
	// one more pixel for the bilinear filter
	out := image.Rect(int(math.Floor(x0))-1, int(math.Floor(y0))-1, int(math.Ceil(x1))+1, int(math.Ceil(y1))+1)
	return out.Intersect(rd.img.Bounds())
}
