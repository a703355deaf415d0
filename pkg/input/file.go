package input

import (
	"fmt"
	"strings"

	"github.com/lumen-ui/lumen/pkg/cssunit"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// containerClasses are the literal class tokens the client-side file input
// behavior and the stock stylesheet hook on. Both must survive verbatim.
const containerClasses = "form-group shiny-input-container"

// progressClasses style the placeholder bar that the progress collaborator
// animates once a transfer starts.
const progressClasses = "progress progress-striped active shiny-file-input-progress"

// File builds the markup for a file-selection control.
//
// The returned tree is a container div holding, in order: an optional label,
// the input element, and a progress placeholder div with id "<id>_progress".
// The id doubles as the key the host publishes the upload result under, so it
// must be unique within a page; uniqueness is the page assembler's problem,
// not enforced here.
//
// File is pure: equal arguments produce structurally equal trees, and no
// call touches shared state. The only failure paths are an empty id and a
// width rejected by the CSS unit validator.
func File(id string, opts ...FileOption) (*vdom.VNode, error) {
	if id == "" {
		return nil, fmt.Errorf("input: file control requires a non-empty id")
	}

	var cfg fileConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	control := vdom.Input(
		vdom.ID(id),
		vdom.Name(id),
		vdom.Type("file"),
		vdom.AttrIf(cfg.multiple, vdom.Multiple()),
		vdom.AttrIf(len(cfg.accept) > 0, vdom.Accept(strings.Join(cfg.accept, ","))),
	)

	var style vdom.Attr
	if cfg.width != "" {
		w, err := cssunit.ValidateString(cfg.width)
		if err != nil {
			return nil, fmt.Errorf("input: file %q: %w", id, err)
		}
		style = vdom.StyleAttr("width: " + w + ";")
	}

	return vdom.Div(
		vdom.Class(containerClasses),
		style,
		labelNode(cfg.label),
		control,
		progressNode(id),
	), nil
}

// labelNode wraps label content in a <label> element, or returns nil when
// there is nothing to show. No empty label elements, no placeholders.
func labelNode(content *vdom.VNode) *vdom.VNode {
	if content == nil {
		return nil
	}
	return vdom.Label(content)
}

// progressNode builds the client-side progress placeholder. It is always
// present and always the last child, whatever the rest of the config says.
func progressNode(id string) *vdom.VNode {
	return vdom.Div(
		vdom.ID(ProgressID(id)),
		vdom.Class(progressClasses),
		vdom.Div(vdom.Class("progress-bar")),
	)
}

// ProgressID returns the DOM id of the progress placeholder for a control.
// The progress collaborator uses the same derivation to find the bar.
func ProgressID(controlID string) string {
	return controlID + "_progress"
}
