package mxraster

import (
	"fmt"
	"strings"

	"github.com/korakanchan/mxgraph/mxcanvas"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontVariant indexes the four variants of a family
type fontVariant uint8

const (
	regular fontVariant = iota
	bold
	italic
	boldItalic
)

func variantOf(style mxcanvas.FontStyle) fontVariant {
	v := regular
	if style.Has(mxcanvas.FontBold) {
		v |= bold
	}
	if style.Has(mxcanvas.FontItalic) {
		v |= italic
	}
	return v
}

// fontFamily stores the parsed variants, nil for the missing ones.
type fontFamily [4]*opentype.Font

// get returns the requested variant, or the closest one available.
func (ff *fontFamily) get(v fontVariant) *opentype.Font {
	for _, candidate := range [...]fontVariant{v, v &^ italic, v &^ bold, regular, bold, italic, boldItalic} {
		if f := ff[candidate]; f != nil {
			return f
		}
	}
	return nil
}

type faceKey struct {
	family  string
	variant fontVariant
	size    float64
}

// fontLibrary resolves font families to faces, caching the faces.
type fontLibrary struct {
	families map[string]*fontFamily
	faces    map[faceKey]font.Face
}

// the families resolved to Go Mono, other unknown families use Go (sans serif)
var monoFamilies = map[string]bool{
	"courier":     true,
	"courier new": true,
	"monospace":   true,
	"consolas":    true,
	"go mono":     true,
	"gomono":      true,
}

const (
	sansFamily = "go"
	monoFamily = "go mono"
)

func newFontLibrary() *fontLibrary {
	lib := &fontLibrary{families: make(map[string]*fontFamily), faces: make(map[faceKey]font.Face)}
	lib.mustRegister(sansFamily, [4][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF})
	lib.mustRegister(monoFamily, [4][]byte{gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF})
	return lib
}

func (lib *fontLibrary) mustRegister(family string, variants [4][]byte) {
	for v, data := range variants {
		if err := lib.register(family, fontVariant(v), data); err != nil {
			panic(err) // embedded fonts are valid
		}
	}
}

func normalizeFamily(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

func (lib *fontLibrary) register(family string, v fontVariant, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("mxraster: parsing font %q: %w", family, err)
	}
	family = normalizeFamily(family)
	ff := lib.families[family]
	if ff == nil {
		ff = new(fontFamily)
		lib.families[family] = ff
	}
	ff[v] = f
	// invalidate the faces of this family
	for key := range lib.faces {
		if key.family == family {
			delete(lib.faces, key)
		}
	}
	return nil
}

// resolve returns the registered family, or one of the Go families
func (lib *fontLibrary) resolve(family string) (string, *fontFamily) {
	family = normalizeFamily(family)
	if ff, ok := lib.families[family]; ok {
		return family, ff
	}
	if monoFamilies[family] {
		return monoFamily, lib.families[monoFamily]
	}
	return sansFamily, lib.families[sansFamily]
}

// face returns a face of the given size, in pixels.
func (lib *fontLibrary) face(fo *mxcanvas.Font) font.Face {
	family, ff := lib.resolve(fo.Family)
	key := faceKey{family: family, variant: variantOf(fo.Style), size: fo.Size}
	if face, ok := lib.faces[key]; ok {
		return face
	}
	size := fo.Size
	if size <= 0 {
		size = 1
	}
	face, err := opentype.NewFace(ff.get(key.variant), &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil { // only returned for invalid options
		panic(err)
	}
	lib.faces[key] = face
	return face
}
