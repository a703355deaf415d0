package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	t.Run("basic element", func(t *testing.T) {
		node := Div()
		if node.Kind != KindElement {
			t.Errorf("Kind = %v, want KindElement", node.Kind)
		}
		if node.Tag != "div" {
			t.Errorf("Tag = %v, want div", node.Tag)
		}
	})

	t.Run("with class attribute", func(t *testing.T) {
		node := Div(Class("card"))
		if got := node.AttrString("class"); got != "card" {
			t.Errorf("class = %v, want card", got)
		}
	})

	t.Run("with multiple attributes", func(t *testing.T) {
		node := Input(ID("file1"), Name("file1"), Type("file"))
		if got := node.AttrString("id"); got != "file1" {
			t.Errorf("id = %v, want file1", got)
		}
		if got := node.AttrString("type"); got != "file" {
			t.Errorf("type = %v, want file", got)
		}
	})

	t.Run("with child node", func(t *testing.T) {
		node := Div(P(Text("Hello")))
		if len(node.Children) != 1 {
			t.Fatalf("Children len = %v, want 1", len(node.Children))
		}
		if node.Children[0].Tag != "p" {
			t.Errorf("Child tag = %v, want p", node.Children[0].Tag)
		}
	})

	t.Run("with string shorthand", func(t *testing.T) {
		node := Div("Hello")
		if len(node.Children) != 1 {
			t.Fatalf("Children len = %v, want 1", len(node.Children))
		}
		if node.Children[0].Kind != KindText {
			t.Errorf("Child kind = %v, want KindText", node.Children[0].Kind)
		}
	})

	t.Run("with nil ignored", func(t *testing.T) {
		node := Div(nil, Class("test"), nil)
		if got := node.AttrString("class"); got != "test" {
			t.Errorf("class = %v, want test", got)
		}
		if len(node.Children) != 0 {
			t.Errorf("Children len = %v, want 0", len(node.Children))
		}
	})

	t.Run("with empty attr ignored", func(t *testing.T) {
		node := Div(AttrIf(false, ID("skip")))
		if len(node.Attrs) != 0 {
			t.Errorf("Attrs len = %v, want 0", len(node.Attrs))
		}
	})

	t.Run("with slice of children", func(t *testing.T) {
		children := []*VNode{Li(Text("A")), nil, Li(Text("B"))}
		node := Ul(children)
		if len(node.Children) != 2 {
			t.Fatalf("Children len = %v, want 2 (nil filtered)", len(node.Children))
		}
	})

	t.Run("with slice of attributes", func(t *testing.T) {
		attrs := []Attr{Class("test"), ID("main")}
		node := Div(attrs)
		if got := node.AttrString("class"); got != "test" {
			t.Errorf("class = %v, want test", got)
		}
		if got := node.AttrString("id"); got != "main" {
			t.Errorf("id = %v, want main", got)
		}
	})

	t.Run("custom element", func(t *testing.T) {
		node := CustomElement("x-widget", ID("w"))
		if node.Tag != "x-widget" {
			t.Errorf("Tag = %v, want x-widget", node.Tag)
		}
	})
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("input") {
		t.Error("input should be a void element")
	}
	if IsVoidElement("div") {
		t.Error("div should not be a void element")
	}
}

func TestHelpers(t *testing.T) {
	t.Run("If true", func(t *testing.T) {
		node := If(true, Span())
		if node == nil || node.Tag != "span" {
			t.Errorf("If(true) = %v, want span", node)
		}
	})

	t.Run("If false", func(t *testing.T) {
		if If(false, Span()) != nil {
			t.Error("If(false) should be nil")
		}
	})

	t.Run("When lazy", func(t *testing.T) {
		called := false
		When(false, func() *VNode { called = true; return Span() })
		if called {
			t.Error("When(false) should not call fn")
		}
	})

	t.Run("Fragment flattens", func(t *testing.T) {
		frag := Fragment(Span(), nil, []*VNode{P(), nil}, "text")
		if frag.Kind != KindFragment {
			t.Errorf("Kind = %v, want KindFragment", frag.Kind)
		}
		if len(frag.Children) != 3 {
			t.Fatalf("Children len = %v, want 3", len(frag.Children))
		}
	})

	t.Run("Range maps items", func(t *testing.T) {
		nodes := Range([]string{"a", "b"}, func(s string, i int) *VNode {
			return Li(Text(s))
		})
		if len(nodes) != 2 {
			t.Fatalf("len = %v, want 2", len(nodes))
		}
	})

	t.Run("Textf formats", func(t *testing.T) {
		node := Textf("%d files", 3)
		if node.Text != "3 files" {
			t.Errorf("Text = %q, want %q", node.Text, "3 files")
		}
	})
}
