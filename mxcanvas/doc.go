// Package mxcanvas implements a drawing canvas consuming the
// directives of a diagram export: attribute changes, path construction,
// painting, texts and images.
//
// The canvas keeps the current attributes (with Save and Restore),
// maps user coordinates to device coordinates, and sends the resulting
// primitives to a Backend, such as the rasterizer of package mxraster.
// Pens, fonts and text colors are built lazily, once per change of the
// attributes they depend on.
//
// Directives are meant to be issued in sequence, from a single goroutine.
// Directives with missing requirements (no current path, no last point,
// unresolved image) are ignored; they are reported at the debug level
// of the logger configured with SetLogger.
package mxcanvas
