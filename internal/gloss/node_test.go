package gloss

import (
	"strings"
	"testing"
)

func TestNodeWriteHTML(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "text node escaped",
			node: Text(`a < b & "c"`),
			want: "a &lt; b &amp; &#34;c&#34;",
		},
		{
			name: "element with classes and text",
			node: func() *Node {
				p := Element("p", "gloss__line", "gloss__line--0")
				p.Text = "<raw>"
				return p
			}(),
			want: `<p class="gloss__line gloss__line--0">&lt;raw&gt;</p>`,
		},
		{
			name: "attributes sorted and escaped",
			node: Element("abbr", "gloss__abbr").
				SetAttr("title", `a "quoted" term`).
				SetAttr("lang", "en").
				Append(Text("PL")),
			want: `<abbr class="gloss__abbr" lang="en" title="a &#34;quoted&#34; term">PL</abbr>`,
		},
		{
			name: "nested children",
			node: Element("div", "gloss__word").Append(
				Element("p", "gloss__line").Append(Text("a"), Text("b")),
			),
			want: `<div class="gloss__word"><p class="gloss__line">ab</p></div>`,
		},
		{
			name: "empty element",
			node: Element("div"),
			want: "<div></div>",
		},
	}

	for _, tt := range tests {
		var sb strings.Builder
		tt.node.WriteHTML(&sb)
		if sb.String() != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, sb.String(), tt.want)
		}
	}
}

func TestHTMLSequence(t *testing.T) {
	nodes := []*Node{Element("p", "a"), Element("p", "b")}
	want := `<p class="a"></p><p class="b"></p>`
	if got := HTML(nodes); got != want {
		t.Errorf("HTML = %q, want %q", got, want)
	}
}
