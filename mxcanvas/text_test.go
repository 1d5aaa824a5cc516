package mxcanvas

import (
	"image/color"
	"testing"

	"github.com/srwiley/rasterx"
)

func TestTextAnchors(t *testing.T) {
	for _, test := range []struct {
		align  Align
		valign VAlign
		x, y   float64
	}{
		{AlignLeft, VAlignTop, 12, 22},
		{AlignCenter, VAlignMiddle, 4, 20},
		{AlignRight, VAlignBottom, 0, 20},
	} {
		rec := newRecorder()
		c := NewCanvas(rec, nil)
		if err := c.Text(10, 20, 100, 50, "label", test.align, test.valign, false, false, ""); err != nil {
			t.Fatal(err)
		}
		box := rec.last().box
		if box.X != test.x || box.Y != test.y || box.W != 100 || box.H != 50 {
			t.Errorf("%s %s: unexpected box %v", test.align, test.valign, box)
		}
		if box.Align != test.align || box.VAlign != test.valign || box.Wrap {
			t.Errorf("unexpected flags %v", box)
		}
	}

	// right edge and horizontal midpoint of a 100 wide box
	rec := newRecorder()
	c := NewCanvas(rec, nil)
	_ = c.Text(0, 0, 100, 10, "a", AlignRight, VAlignTop, false, false, "")
	if box := rec.last().box; box.X+box.W != 90 {
		t.Errorf("unexpected right anchor %v", box)
	}
	_ = c.Text(0, 0, 100, 10, "a", AlignCenter, VAlignTop, false, false, "")
	if box := rec.last().box; box.X+box.W/2 != 44 {
		t.Errorf("unexpected center anchor %v", box)
	}
}

func TestTextLines(t *testing.T) {
	rec := newRecorder()
	c := NewCanvas(rec, &Options{LineSpacing: 2})
	c.Scale(2)
	c.FontSize(6)
	if err := c.Text(0, 0, 50, 50, "a\nb\nc", AlignLeft, VAlignTop, false, false, ""); err != nil {
		t.Fatal(err)
	}
	if len(rec.calls) != 3 {
		t.Fatalf("unexpected calls %v", rec.kinds())
	}
	for i, s := range []string{"a", "b", "c"} {
		cl := rec.calls[i]
		if cl.text != s || cl.box.Y != 2+float64(i)*12 || cl.box.W != 100 {
			t.Errorf("line %d: unexpected call %q %v", i, cl.text, cl.box)
		}
		if cl.font.Size != 12 {
			t.Errorf("unexpected font size %g", cl.font.Size)
		}
		if cl.paint != (SolidPaint{Color: color.NRGBA{A: 0xff}}) {
			t.Errorf("unexpected paint %v", cl.paint)
		}
	}
}

func TestTextWrap(t *testing.T) {
	rec := newRecorder()
	c := NewCanvas(rec, nil)
	if err := c.Text(0, 0, 50, 50, "a long\ntext", AlignLeft, VAlignTop, false, true, ""); err != nil {
		t.Fatal(err)
	}
	if len(rec.calls) != 1 {
		t.Fatalf("unexpected calls %v", rec.kinds())
	}
	cl := rec.last()
	if cl.text != "a long\ntext" || !cl.box.Wrap || cl.box.W != 60 {
		t.Errorf("unexpected call %q %v", cl.text, cl.box)
	}
}

func TestTextHTML(t *testing.T) {
	rec := newRecorder()
	c := NewCanvas(rec, nil)
	if err := c.Text(0, 0, 50, 50, "a<br>b<br/>c<br />d<b>e</b>", AlignLeft, VAlignTop, false, false, "html"); err != nil {
		t.Fatal(err)
	}
	if len(rec.calls) != 4 {
		t.Fatalf("unexpected calls %v", rec.kinds())
	}
	if s := rec.last().text; s != "d<b>e</b>" {
		t.Errorf("other markup should be kept, got %q", s)
	}

	rec.reset()
	_ = c.Text(0, 0, 50, 50, "a<br>b", AlignLeft, VAlignTop, false, false, "")
	if len(rec.calls) != 1 {
		t.Errorf("unexpected calls %v", rec.kinds())
	}
}

func TestTextVertical(t *testing.T) {
	rec := newRecorder()
	c := NewCanvas(rec, nil)
	if err := c.Text(0, 0, 40, 20, "v", AlignLeft, VAlignTop, true, false, ""); err != nil {
		t.Fatal(err)
	}
	if len(rec.calls) != 2 || rec.calls[0].kind != "transform" {
		t.Fatalf("unexpected calls %v", rec.kinds())
	}
	m := rec.last().matrix
	// the center is fixed, a point on its right moves above it
	if x, y := m.Transform(20, 10); !near(x, 20) || !near(y, 10) {
		t.Errorf("unexpected center (%g, %g)", x, y)
	}
	if x, y := m.Transform(30, 10); !near(x, 20) || !near(y, 0) {
		t.Errorf("unexpected rotation (%g, %g)", x, y)
	}
	if rec.matrix != rasterx.Identity || len(rec.stack) != 0 {
		t.Error("the rotation should not leak")
	}
}

func TestTextDisabled(t *testing.T) {
	rec := newRecorder()
	c := NewCanvas(rec, nil)
	c.FontColor("none")
	if err := c.Text(0, 0, 50, 50, "a", AlignLeft, VAlignTop, true, false, ""); err != nil {
		t.Fatal(err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("unexpected calls %v", rec.kinds())
	}
}
