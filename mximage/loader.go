// Package mximage resolves the image sources referenced by
// diagram descriptions into decoded rasters.
//
// Supported sources are data URIs and file paths, resolved against
// a base directory. Besides the standard library decoders (PNG, JPEG, GIF),
// BMP, TIFF and WebP images are supported.
package mximage

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedSource is returned for sources with an unknown scheme,
// such as remote URLs.
var ErrUnsupportedSource = errors.New("mximage: unsupported image source")

// Loader resolves and decodes images, caching the decoded
// result per source. It is not safe for concurrent use.
type Loader struct {
	// BaseDir is used to resolve relative file paths.
	BaseDir string

	cache map[string]image.Image
}

// NewLoader returns a loader resolving relative paths against `baseDir`.
func NewLoader(baseDir string) *Loader {
	return &Loader{BaseDir: baseDir, cache: make(map[string]image.Image)}
}

// LoadImage implements mxcanvas.ImageLoader.
func (l *Loader) LoadImage(src string) (image.Image, error) {
	if img, ok := l.cache[src]; ok {
		return img, nil
	}
	data, err := l.read(src)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("mximage: decoding %s: %w", Shorten(src), err)
	}
	if l.cache == nil {
		l.cache = make(map[string]image.Image)
	}
	l.cache[src] = img
	return img, nil
}

func (l *Loader) read(src string) ([]byte, error) {
	switch {
	case strings.HasPrefix(src, "data:"):
		return decodeDataURI(src)
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return nil, ErrUnsupportedSource
	}
	path := strings.TrimPrefix(src, "file://")
	if !filepath.IsAbs(path) && l.BaseDir != "" {
		path = filepath.Join(l.BaseDir, path)
	}
	return os.ReadFile(path)
}

// decodeDataURI handles data:[<mediatype>][;base64],<data>
func decodeDataURI(src string) ([]byte, error) {
	comma := strings.IndexByte(src, ',')
	if comma == -1 {
		return nil, fmt.Errorf("mximage: malformed data URI %s", Shorten(src))
	}
	header, payload := src[len("data:"):comma], src[comma+1:]
	if strings.HasSuffix(header, ";base64") {
		// some producers drop the padding
		payload = strings.TrimRight(payload, "=")
		return base64.RawStdEncoding.DecodeString(payload)
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("mximage: malformed data URI: %w", err)
	}
	return []byte(s), nil
}

// Shorten truncates long sources, such as data URIs, for messages.
func Shorten(src string) string {
	const max = 40
	if len(src) > max {
		return src[:max] + "..."
	}
	return src
}
