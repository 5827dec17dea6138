package content

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLTree is an HTML subtree. A tree made by NewHTML is a fragment: it
// has no element of its own and appending it to another tree moves its
// children there.
type HTMLTree struct {
	node *html.Node
}

// NewHTML returns an empty fragment.
func NewHTML() *HTMLTree {
	return &HTMLTree{node: &html.Node{Type: html.DocumentNode}}
}

// Element returns a tree rooted at a new element.
func Element(tag string, attrs ...string) *HTMLTree {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return &HTMLTree{node: n}
}

// TextNode returns a tree holding escaped text.
func TextNode(s string) *HTMLTree {
	return &HTMLTree{node: &html.Node{Type: html.TextNode, Data: s}}
}

// ParseHTML parses markup as the content of a <div>. Comments in the
// markup are kept.
func ParseHTML(markup string) (*HTMLTree, error) {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, err
	}
	tree := NewHTML()
	for _, n := range nodes {
		tree.node.AppendChild(n)
	}
	return tree, nil
}

// Node exposes the underlying node.
func (t *HTMLTree) Node() *html.Node { return t.node }

// Add appends children and returns t, for building nested markup in a
// single expression.
func (t *HTMLTree) Add(children ...Content) *HTMLTree {
	for _, c := range children {
		t.AddContent(c)
	}
	return t
}

// AddText appends escaped text.
func (t *HTMLTree) AddText(s string) *HTMLTree {
	t.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	return t
}

func (t *HTMLTree) AddContent(c Content) {
	other, ok := c.(*HTMLTree)
	if !ok {
		t.AddText(String(c))
		return
	}
	if other.node.Type != html.DocumentNode {
		if other.node.Parent != nil {
			other.node.Parent.RemoveChild(other.node)
		}
		t.node.AppendChild(other.node)
		return
	}
	for child := other.node.FirstChild; child != nil; {
		next := child.NextSibling
		other.node.RemoveChild(child)
		t.node.AppendChild(child)
		child = next
	}
}

func (t *HTMLTree) IsEmpty() bool {
	switch t.node.Type {
	case html.DocumentNode:
		for child := t.node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.TextNode || child.Data != "" {
				return false
			}
		}
		return true
	case html.TextNode:
		return t.node.Data == ""
	}
	return false
}

func (t *HTMLTree) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if t.node.Type == html.DocumentNode {
		for child := t.node.FirstChild; child != nil; child = child.NextSibling {
			if err := html.Render(&buf, child); err != nil {
				return 0, err
			}
		}
	} else if err := html.Render(&buf, t.node); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// String renders the tree.
func (t *HTMLTree) String() string { return String(t) }
