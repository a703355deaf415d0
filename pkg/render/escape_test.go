package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"<script>", "&lt;script&gt;"},
		{`a & b`, "a &amp; b"},
		{`"quoted"`, "&quot;quoted&quot;"},
		{"it's", "it&#39;s"},
		{"", ""},
	}
	for _, c := range cases {
		if got := escapeHTML(c.in); got != c.want {
			t.Errorf("escapeHTML(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEscapeAttr(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"200px", "200px"},
		{"a\nb", "a&#10;b"},
		{"a\tb", "a&#9;b"},
		{`x="y"`, "x=&quot;y&quot;"},
	}
	for _, c := range cases {
		if got := escapeAttr(c.in); got != c.want {
			t.Errorf("escapeAttr(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
