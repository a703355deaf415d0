package vdom

import "strings"

// attrOf creates an Attr with the given key and value.
func attrOf(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attrOf("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attrOf("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with the Style element).
func StyleAttr(style string) Attr { return attrOf("style", style) }

// Data creates a data-* attribute.
func Data(key, value string) Attr { return attrOf("data-"+key, value) }

// TitleAttr sets the title attribute (named to avoid conflict with the Title element).
func TitleAttr(title string) Attr { return attrOf("title", title) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attrOf("href", url) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attrOf("rel", rel) }

// Src sets the src attribute.
func Src(url string) Attr { return attrOf("src", url) }

// Form input attributes

// Name sets the name attribute.
func Name(name string) Attr { return attrOf("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attrOf("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attrOf("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attrOf("placeholder", text) }

// For sets the for attribute (for labels).
func For(id string) Attr { return attrOf("for", id) }

// Accept sets the accept attribute on a file input.
func Accept(types string) Attr { return attrOf("accept", types) }

// Multiple sets the multiple attribute. Legacy form serializers expect the
// value spelled out rather than a bare boolean attribute.
func Multiple() Attr { return attrOf("multiple", "multiple") }

// Disabled sets the disabled attribute.
func Disabled() Attr { return attrOf("disabled", true) }

// Required sets the required attribute.
func Required() Attr { return attrOf("required", true) }

// Checked sets the checked attribute.
func Checked() Attr { return attrOf("checked", true) }

// Selected sets the selected attribute.
func Selected() Attr { return attrOf("selected", true) }

// Form element attributes

// Action sets the action attribute.
func Action(url string) Attr { return attrOf("action", url) }

// Method sets the method attribute.
func Method(method string) Attr { return attrOf("method", method) }

// Enctype sets the enctype attribute.
func Enctype(enctype string) Attr { return attrOf("enctype", enctype) }

// Meta attributes

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attrOf("charset", charset) }

// Content sets the content attribute.
func Content(content string) Attr { return attrOf("content", content) }

// Conditional attributes

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return attrOf("class", class)
	}
	return Attr{} // Empty attr, will be ignored
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// CustomAttr creates an attribute with an arbitrary key.
func CustomAttr(key string, value any) Attr { return attrOf(key, value) }
