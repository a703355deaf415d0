package input

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/lumen-ui/lumen/pkg/vdom"
)

// labelPolicy sanitizes HTML label content. UGC keeps the formatting tags a
// label legitimately needs and strips scripts and event attributes.
var labelPolicy = bluemonday.UGCPolicy()

// fileConfig collects the optional parts of a file control.
type fileConfig struct {
	label    *vdom.VNode
	multiple bool
	accept   []string
	width    string
}

// FileOption configures a file control.
type FileOption func(*fileConfig)

// WithLabel sets the control's label as plain text. Empty text leaves the
// label out entirely.
func WithLabel(text string) FileOption {
	return func(c *fileConfig) {
		if text == "" {
			c.label = nil
			return
		}
		c.label = vdom.Text(text)
	}
}

// WithLabelHTML sets the control's label as HTML. The markup is sanitized
// before it is embedded; if nothing survives sanitization the label is
// left out.
func WithLabelHTML(html string) FileOption {
	return func(c *fileConfig) {
		clean := strings.TrimSpace(labelPolicy.Sanitize(html))
		if clean == "" {
			c.label = nil
			return
		}
		c.label = vdom.Raw(clean)
	}
}

// WithMultiple allows selecting more than one file in a single interaction.
func WithMultiple() FileOption {
	return func(c *fileConfig) {
		c.multiple = true
	}
}

// WithAccept restricts the file chooser to the given MIME types or
// extensions. Order is preserved; an empty list means no restriction.
func WithAccept(types ...string) FileOption {
	return func(c *fileConfig) {
		c.accept = types
	}
}

// WithWidth sets the container's width as a CSS length (e.g. "200px",
// "100%"). The value is validated when the control is built.
func WithWidth(width string) FileOption {
	return func(c *fileConfig) {
		c.width = width
	}
}
