// Package vdom provides the markup tree that lumen controls are built from.
//
// A VNode represents one HTML-like element, text run, raw HTML block, or
// fragment, prior to serialization. Attributes are stored as an ordered list
// rather than a map so a tree serializes identically on every render.
//
// Elements are created using variadic factory functions:
//
//	Div(Class("form-group"),
//	    Label(Text("Choose file")),
//	    Input(ID("file1"), Name("file1"), Type("file")),
//	)
//
// Nil arguments are skipped, so attributes and children can be attached
// conditionally with If, AttrIf, and friends without placeholder nodes.
package vdom
