// Package render serializes vdom trees to HTML.
//
// The renderer walks a tree once and writes elements, attributes, and
// escaped text to an io.Writer. Attributes are written in the order the
// tree stored them, so the same tree always produces the same bytes.
// Pretty mode indents block-level children for development output.
package render
