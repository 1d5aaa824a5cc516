package mxcanvas

import (
	"math"

	"github.com/korakanchan/mxgraph/mximage"
)

// Image draws the image resolved from `src` in the box (x, y, w, h).
// If `aspect` is true, the image is scaled uniformly to fit the box,
// and centered. Unresolved images are ignored.
func (c *Canvas) Image(x, y, w, h float64, src string, aspect, flipH, flipV bool) {
	img, err := c.images.LoadImage(src)
	if err != nil || img == nil {
		Logger().Debug("mxcanvas: image ignored", "src", mximage.Shorten(src), "error", err)
		return
	}
	b := img.Bounds()
	r := placeImage(c.state.deviceRect(x, y, w, h), float64(b.Dx()), float64(b.Dy()), aspect)
	if r.W <= 0 || r.H <= 0 {
		return
	}

	if flipH || flipV {
		tok := c.backend.PushTransform()
		defer c.backend.PopTransform(tok)
		c.backend.Transform(mirror(r, flipH, flipV))
	}
	c.backend.DrawImage(img, r)
}

// placeImage returns the device box of an image of native size (nw, nh)
// drawn in `box`.
func placeImage(box Rect, nw, nh float64, aspect bool) Rect {
	if !aspect || nw == 0 || nh == 0 {
		box.W, box.H = math.Round(box.W), math.Round(box.H)
		return box
	}
	s := math.Min(box.W/nw, box.H/nh)
	sw, sh := math.Round(nw*s), math.Round(nh*s)
	return Rect{
		X: box.X + (box.W-sw)/2,
		Y: box.Y + (box.H-sh)/2,
		W: sw,
		H: sh,
	}
}
