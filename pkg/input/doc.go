// Package input builds the markup for lumen's form controls.
//
// Each constructor is a pure function from configuration to a vdom tree;
// the server renderer serializes the tree and the client-side bindings wire
// the resulting DOM to reactive values keyed by control id. Constructors
// never touch a registry or perform I/O, so they are safe to call from any
// number of rendering goroutines.
//
//	node, err := input.File("file1",
//	    input.WithLabel("Choose CSV File"),
//	    input.WithAccept("text/csv", ".csv"),
//	)
package input
