package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLTreeNesting(t *testing.T) {
	list := Element("ul", "class", "blockList")
	item := Element("li").AddText("a < b")
	list.Add(item)

	assert.Equal(t, `<ul class="blockList"><li>a &lt; b</li></ul>`, list.String())
	assert.False(t, list.IsEmpty())
}

func TestHTMLFragmentMovesChildren(t *testing.T) {
	frag := NewHTML()
	assert.True(t, frag.IsEmpty())

	frag.Add(Element("h3").AddText("add"), Element("pre").AddText("void add()"))
	parent := Element("section")
	parent.AddContent(frag)

	assert.Equal(t, "<section><h3>add</h3><pre>void add()</pre></section>", parent.String())
	assert.True(t, frag.IsEmpty())
}

func TestHTMLReparent(t *testing.T) {
	child := Element("b").AddText("x")
	first := Element("p").Add(child)
	second := Element("div").Add(child)

	assert.Equal(t, "<p></p>", first.String())
	assert.Equal(t, "<div><b>x</b></div>", second.String())
}

func TestParseHTMLKeepsComments(t *testing.T) {
	tree, err := ParseHTML("Hello <!-- note --><i>world</i>")
	require.NoError(t, err)
	assert.Equal(t, "Hello <!-- note --><i>world</i>", tree.String())
}

func TestHTMLAddsForeignContent(t *testing.T) {
	tree := Element("code")
	tree.AddContent(NewText("List<E>"))
	assert.Equal(t, "<code>List&lt;E&gt;</code>", tree.String())
}

func TestText(t *testing.T) {
	txt := NewText()
	assert.True(t, txt.IsEmpty())

	txt.AddString("### add\n")
	txt.AddContent(NewText("`void add()`", "\n"))
	txt.AddContent(Element("b").AddText("x"))

	assert.False(t, txt.IsEmpty())
	assert.Equal(t, "### add\n`void add()`\n<b>x</b>", txt.String())
	assert.Equal(t, txt.String(), String(txt))
}
