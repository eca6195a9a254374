package gloss

import (
	"html"
	"sort"
	"strings"
)

// Node is one element of the structured output tree. A Node with an empty
// Tag is a text node: only Text is significant and it is escaped when the
// tree is serialized. Element nodes carry either Children or nothing.
type Node struct {
	Tag      string
	Classes  []string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// Element creates an element node with the given tag and classes.
func Element(tag string, classes ...string) *Node {
	return &Node{Tag: tag, Classes: classes}
}

// Text creates a text node.
func Text(s string) *Node {
	return &Node{Text: s}
}

// AddClass appends a class name and returns the node for chaining.
func (n *Node) AddClass(class string) *Node {
	n.Classes = append(n.Classes, class)
	return n
}

// SetAttr sets an attribute and returns the node for chaining.
func (n *Node) SetAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Append adds child nodes and returns the node for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// WriteHTML serializes the node as HTML into sb. Text content and attribute
// values are escaped; attributes are written in sorted order so output is
// deterministic.
func (n *Node) WriteHTML(sb *strings.Builder) {
	if n.Tag == "" {
		sb.WriteString(html.EscapeString(n.Text))
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	if len(n.Classes) > 0 {
		sb.WriteString(` class="`)
		sb.WriteString(html.EscapeString(strings.Join(n.Classes, " ")))
		sb.WriteByte('"')
	}
	if len(n.Attrs) > 0 {
		keys := make([]string, 0, len(n.Attrs))
		for k := range n.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(n.Attrs[k]))
			sb.WriteByte('"')
		}
	}
	sb.WriteByte('>')

	if len(n.Children) > 0 {
		for _, c := range n.Children {
			c.WriteHTML(sb)
		}
	} else {
		sb.WriteString(html.EscapeString(n.Text))
	}

	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
}

// HTML renders a node sequence to an HTML string.
func HTML(nodes []*Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		n.WriteHTML(&sb)
	}
	return sb.String()
}
