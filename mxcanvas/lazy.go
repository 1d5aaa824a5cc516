package mxcanvas

import "image/color"

// lazy is a memoized value, computed at the first
// use following an invalidation.
// Its zero value is invalid.
type lazy[T any] struct {
	value T
	valid bool
}

func (l *lazy[T]) get(build func() (T, error)) (T, error) {
	if l.valid {
		return l.value, nil
	}
	v, err := build()
	if err != nil {
		var zero T
		return zero, err
	}
	l.value, l.valid = v, true
	return v, nil
}

func (l *lazy[T]) invalidate() {
	var zero T
	l.value, l.valid = zero, false
}

// colorValue keeps a raw color string with its parsed value,
// which is cached until the string changes.
type colorValue struct {
	raw    string
	parsed lazy[color.NRGBA]
}

func (c *colorValue) set(raw string) (changed bool) {
	if raw == c.raw {
		return false
	}
	c.raw = raw
	c.parsed.invalidate()
	return true
}

func (c *colorValue) resolve(p ColorParser) (color.NRGBA, error) {
	return c.parsed.get(func() (color.NRGBA, error) { return p.ParseColor(c.raw) })
}
