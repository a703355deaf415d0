package input

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lumen-ui/lumen/pkg/render"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

func mustFile(t *testing.T, id string, opts ...FileOption) *vdom.VNode {
	t.Helper()
	node, err := File(id, opts...)
	if err != nil {
		t.Fatalf("File(%q): unexpected error: %v", id, err)
	}
	return node
}

func TestFile(t *testing.T) {
	t.Run("requires id", func(t *testing.T) {
		if _, err := File(""); err == nil {
			t.Error("expected error for empty id")
		}
	})

	t.Run("container shape", func(t *testing.T) {
		node := mustFile(t, "file1")
		if node.Tag != "div" {
			t.Errorf("Tag = %q, want div", node.Tag)
		}
		if got := node.AttrString("class"); got != "form-group shiny-input-container" {
			t.Errorf("class = %q, want both container tokens", got)
		}
		if node.HasAttr("style") {
			t.Error("container should have no style without a width")
		}
	})

	t.Run("no label means control first", func(t *testing.T) {
		node := mustFile(t, "file1")
		if len(node.Children) != 2 {
			t.Fatalf("Children len = %d, want 2", len(node.Children))
		}
		if node.Children[0].Tag != "input" {
			t.Errorf("first child tag = %q, want input", node.Children[0].Tag)
		}
	})

	t.Run("empty label is omitted", func(t *testing.T) {
		node := mustFile(t, "file1", WithLabel(""))
		if node.Children[0].Tag != "input" {
			t.Errorf("first child tag = %q, want input", node.Children[0].Tag)
		}
	})

	t.Run("label is first child", func(t *testing.T) {
		node := mustFile(t, "file1", WithLabel("Choose CSV File"))
		if len(node.Children) != 3 {
			t.Fatalf("Children len = %d, want 3", len(node.Children))
		}
		label := node.Children[0]
		if label.Tag != "label" {
			t.Fatalf("first child tag = %q, want label", label.Tag)
		}
		if label.Children[0].Text != "Choose CSV File" {
			t.Errorf("label text = %q", label.Children[0].Text)
		}
	})

	t.Run("html label is sanitized", func(t *testing.T) {
		node := mustFile(t, "file1", WithLabelHTML(`<em>CSV</em><script>alert(1)</script>`))
		label := node.Children[0]
		if label.Tag != "label" {
			t.Fatalf("first child tag = %q, want label", label.Tag)
		}
		content := label.Children[0]
		if content.Kind != vdom.KindRaw {
			t.Fatalf("label content kind = %v, want KindRaw", content.Kind)
		}
		if content.Text != "<em>CSV</em>" {
			t.Errorf("sanitized label = %q, want %q", content.Text, "<em>CSV</em>")
		}
	})

	t.Run("html label stripped to nothing is omitted", func(t *testing.T) {
		node := mustFile(t, "file1", WithLabelHTML(`<script>alert(1)</script>`))
		if node.Children[0].Tag != "input" {
			t.Errorf("first child tag = %q, want input", node.Children[0].Tag)
		}
	})

	t.Run("control attributes", func(t *testing.T) {
		node := mustFile(t, "file1")
		control := node.Children[0]
		if got := control.AttrString("id"); got != "file1" {
			t.Errorf("id = %q, want file1", got)
		}
		if got := control.AttrString("name"); got != "file1" {
			t.Errorf("name = %q, want file1", got)
		}
		if got := control.AttrString("type"); got != "file" {
			t.Errorf("type = %q, want file", got)
		}
	})

	t.Run("multiple off by default", func(t *testing.T) {
		control := mustFile(t, "file1").Children[0]
		if control.HasAttr("multiple") {
			t.Error("multiple attribute should be absent by default")
		}
	})

	t.Run("multiple renders spelled out", func(t *testing.T) {
		control := mustFile(t, "file1", WithMultiple()).Children[0]
		if got := control.AttrString("multiple"); got != "multiple" {
			t.Errorf("multiple = %q, want %q", got, "multiple")
		}
	})

	t.Run("empty accept is omitted", func(t *testing.T) {
		control := mustFile(t, "file1", WithAccept()).Children[0]
		if control.HasAttr("accept") {
			t.Error("accept attribute should be absent when no types given")
		}
	})

	t.Run("accept joins with commas preserving order", func(t *testing.T) {
		control := mustFile(t, "file1", WithAccept("text/csv", ".csv")).Children[0]
		if got := control.AttrString("accept"); got != "text/csv,.csv" {
			t.Errorf("accept = %q, want %q", got, "text/csv,.csv")
		}
	})

	t.Run("width emits normalized style", func(t *testing.T) {
		node := mustFile(t, "file1", WithWidth("200px"))
		if got := node.AttrString("style"); got != "width: 200px;" {
			t.Errorf("style = %q, want %q", got, "width: 200px;")
		}
	})

	t.Run("bare numeric width gets px", func(t *testing.T) {
		node := mustFile(t, "file1", WithWidth("300"))
		if got := node.AttrString("style"); got != "width: 300px;" {
			t.Errorf("style = %q, want %q", got, "width: 300px;")
		}
	})

	t.Run("invalid width fails construction", func(t *testing.T) {
		if _, err := File("file1", WithWidth("banana")); err == nil {
			t.Error("expected error for invalid width")
		}
	})

	t.Run("progress placeholder always last", func(t *testing.T) {
		for _, opts := range [][]FileOption{
			nil,
			{WithLabel("x")},
			{WithMultiple(), WithAccept(".csv"), WithWidth("50%"), WithLabel("y")},
		} {
			node := mustFile(t, "upl", opts...)
			progress := node.Children[len(node.Children)-1]
			if got := progress.AttrString("id"); got != "upl_progress" {
				t.Errorf("progress id = %q, want upl_progress", got)
			}
			want := "progress progress-striped active shiny-file-input-progress"
			if got := progress.AttrString("class"); got != want {
				t.Errorf("progress class = %q, want %q", got, want)
			}
			if len(progress.Children) != 1 {
				t.Fatalf("progress children = %d, want 1", len(progress.Children))
			}
			bar := progress.Children[0]
			if bar.Tag != "div" || bar.AttrString("class") != "progress-bar" {
				t.Errorf("bar = %s.%s, want div.progress-bar", bar.Tag, bar.AttrString("class"))
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		build := func() *vdom.VNode {
			return mustFile(t, "file1",
				WithLabel("Choose CSV File"),
				WithMultiple(),
				WithAccept("text/csv", ".csv"),
				WithWidth("200px"),
			)
		}
		if diff := cmp.Diff(build(), build()); diff != "" {
			t.Errorf("repeated builds differ (-first +second):\n%s", diff)
		}
	})
}

func TestFileRendered(t *testing.T) {
	node := mustFile(t, "file1",
		WithLabel("Choose CSV File"),
		WithAccept("text/csv", "text/comma-separated-values,text/plain", ".csv"),
	)

	html, err := render.ToString(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `<div class="form-group shiny-input-container">` +
		`<label>Choose CSV File</label>` +
		`<input id="file1" name="file1" type="file" accept="text/csv,text/comma-separated-values,text/plain,.csv"/>` +
		`<div id="file1_progress" class="progress progress-striped active shiny-file-input-progress">` +
		`<div class="progress-bar"></div>` +
		`</div>` +
		`</div>`
	if html != want {
		t.Errorf("html mismatch\n got: %s\nwant: %s", html, want)
	}
	if strings.Contains(html, "style=") {
		t.Error("no inline style expected without a width")
	}
}

func TestProgressID(t *testing.T) {
	if got := ProgressID("file1"); got != "file1_progress" {
		t.Errorf("ProgressID = %q, want file1_progress", got)
	}
}
