// Package mxxml replays canvas directives stored in an XML document.
//
// The document has a single root element (conventionally <output>) whose
// children each name one directive of [mxcanvas.Canvas], with the
// directive arguments given as attributes:
//
//	<output>
//		<fillcolor color="#ff0000"/>
//		<rect x="0" y="0" w="10" h="10"/>
//		<fill/>
//	</output>
package mxxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/korakanchan/mxgraph/mxcanvas"
	"golang.org/x/net/html/charset"
)

// ErrorMode determines how unsupported content is handled.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently skips unknown elements and enumeration values.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs unknown elements and enumeration values, then continues.
	WarnErrorMode
	// StrictErrorMode fails on unknown elements and enumeration values.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return fmt.Sprintf("<ErrorMode %d>", m)
	}
}

// ErrEmptyDocument is returned when the input holds no element.
var ErrEmptyDocument = errors.New("mxxml: empty directive document")

// AttrError is returned for an attribute whose value can't be interpreted.
type AttrError struct {
	Element, Attr, Value string
	Err                  error
}

func (e *AttrError) Error() string {
	return fmt.Sprintf("mxxml: invalid attribute %s=%q of <%s>: %s", e.Attr, e.Value, e.Element, e.Err)
}

func (e *AttrError) Unwrap() error { return e.Err }

// DirectiveError wraps an error returned by the canvas while
// replaying an element.
type DirectiveError struct {
	Element string
	Line    int
	Err     error
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("mxxml: <%s> (line %d): %s", e.Element, e.Line, e.Err)
}

func (e *DirectiveError) Unwrap() error { return e.Err }

// replayer is used while reading a directive document
type replayer struct {
	canvas    *mxcanvas.Canvas
	errorMode ErrorMode
	line      int // of the current element
}

// unsupported applies the error mode to `msg`.
func (r *replayer) unsupported(msg string, args ...any) error {
	if r.errorMode == StrictErrorMode {
		return fmt.Errorf("mxxml: "+msg, args...)
	} else if r.errorMode == WarnErrorMode {
		mxcanvas.Logger().Warn(fmt.Sprintf(msg, args...), "line", r.line)
	}
	return nil
}

func (r *replayer) readStartElement(se xml.StartElement) error {
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		return r.unsupported("cannot process element %s", se.Name.Local)
	}
	err := df(r, attributes{element: se.Name.Local, list: se.Attr})
	if err != nil {
		var attrErr *AttrError
		if errors.As(err, &attrErr) {
			return err
		}
		return &DirectiveError{Element: se.Name.Local, Line: r.line, Err: err}
	}
	return nil
}

// Replay reads the directive document from `stream` and applies each
// directive to `c`, in document order.
// errMode determines if unknown elements or enumeration values are
// ignored, logged as warnings or reported as errors.
// Malformed numbers and errors returned by the canvas always stop the replay.
func Replay(stream io.Reader, c *mxcanvas.Canvas, errMode ErrorMode) error {
	r := &replayer{canvas: c, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	depth := 0
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return ErrEmptyDocument
				}
				return nil
			}
			return err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			depth++
			r.line, _ = decoder.InputPos()
			switch {
			case depth == 1: // root
				continue
			case depth > 2: // directives have no content
				if err = r.unsupported("element %s nested in a directive", se.Name.Local); err != nil {
					return err
				}
				continue
			}
			if err = r.readStartElement(se); err != nil {
				return err
			}
		case xml.EndElement:
			depth--
		}
	}
}

// ReadFile replays the directive document stored in the named file.
func ReadFile(file string, c *mxcanvas.Canvas, errMode ErrorMode) error {
	fin, err := os.Open(file)
	if err != nil {
		return err
	}
	defer fin.Close()
	return Replay(fin, c, errMode)
}
