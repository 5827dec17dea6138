package builders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/saidoc/doclet/content"
	"github.com/dhamidi/saidoc/java"
)

func TestDefaultOutline(t *testing.T) {
	root := DefaultOutline()

	assert.Equal(t, "Doclet", root.Name)
	details := root.Find("MethodDetails")
	require.NotNil(t, details)

	doc := details.Find("methodDoc")
	require.NotNil(t, doc)
	var names []string
	for _, child := range doc.Children {
		names = append(names, child.Name)
	}
	assert.Equal(t, []string{"signature", "deprecation", "comments", "tags"}, names)
	assert.Nil(t, root.Find("ConstructorDetails"))
}

func TestOutlineString(t *testing.T) {
	want := strings.Join([]string{
		"Doclet",
		"  ClassDoc",
		"    MethodDetails",
		"      methodDoc",
		"        signature",
		"        deprecation",
		"        comments",
		"        tags",
		"",
	}, "\n")
	assert.Equal(t, want, DefaultOutline().String())
}

func TestParseOutlineAttributes(t *testing.T) {
	root, err := LoadOutline("testdata/reversed.xml")
	require.NoError(t, err)

	group := root.Find("group")
	require.NotNil(t, group)
	assert.Equal(t, map[string]string{"kind": "extra"}, group.Attrs)
	assert.Nil(t, root.Find("signature").Attrs)
}

func TestParseOutlineErrors(t *testing.T) {
	_, err := ParseOutline(strings.NewReader("<Doclet><ClassDoc></Doclet>"))
	assert.Error(t, err)

	_, err = LoadOutline("testdata/missing.xml")
	assert.Error(t, err)
}

func TestInterpreterDescendsIntoUnknownElements(t *testing.T) {
	root, err := ParseOutline(strings.NewReader(`<root><a><b/></a><c/><d/></root>`))
	require.NoError(t, err)

	var visited []string
	in := NewInterpreter(commonlog.GetLogger("test"))
	for _, name := range []string{"b", "d"} {
		in.Register(name, func(_ *XMLNode, _ *java.Method, tree content.Content) error {
			visited = append(visited, name)
			return nil
		})
	}
	require.NoError(t, in.BuildMember(root, nil, content.NewText()))
	assert.Equal(t, []string{"b", "d"}, visited)
}
