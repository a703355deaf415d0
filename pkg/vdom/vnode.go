package vdom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <input>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
	KindRaw                  // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// VNode is a markup tree node. Attributes keep their insertion order so that
// serialization is deterministic without sorting; setting an existing key
// updates it in place.
type VNode struct {
	Kind     Kind     // Node type
	Tag      string   // Element tag name (e.g., "div")
	Attrs    []Attr   // Ordered attributes
	Children []*VNode // Child nodes
	Text     string   // For KindText and KindRaw
}

// SetAttr sets an attribute, replacing the value in place if the key already
// exists and appending otherwise.
func (v *VNode) SetAttr(key string, value any) {
	if key == "" {
		return
	}
	for i := range v.Attrs {
		if v.Attrs[i].Key == key {
			v.Attrs[i].Value = value
			return
		}
	}
	v.Attrs = append(v.Attrs, Attr{Key: key, Value: value})
}

// Attr returns the value of the named attribute and whether it is present.
func (v *VNode) Attr(key string) (any, bool) {
	for _, a := range v.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// AttrString returns the named attribute's value as a string.
// Non-string values and absent attributes yield "".
func (v *VNode) AttrString(key string) string {
	val, ok := v.Attr(key)
	if !ok {
		return ""
	}
	s, _ := val.(string)
	return s
}

// HasAttr returns true if the named attribute is present.
func (v *VNode) HasAttr(key string) bool {
	_, ok := v.Attr(key)
	return ok
}
