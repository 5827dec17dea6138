package html

import (
	"strings"

	nethtml "golang.org/x/net/html"

	"github.com/dhamidi/saidoc/doclet/content"
	"github.com/dhamidi/saidoc/java/javadoc"
)

// markup renders comment content as HTML source. Markup written in the
// comment is passed through; everything else is escaped.
func markup(nodes []javadoc.Node) string {
	var sb strings.Builder
	for _, node := range nodes {
		writeNode(&sb, node)
	}
	return strings.TrimSpace(sb.String())
}

func writeNode(sb *strings.Builder, node javadoc.Node) {
	switch n := node.(type) {
	case javadoc.Text:
		// comments are kept by the parser as text
		if strings.HasPrefix(n.Content, "<!--") {
			sb.WriteString(n.Content)
			return
		}
		sb.WriteString(nethtml.EscapeString(n.Content))
	case javadoc.Code:
		sb.WriteString("<code>" + nethtml.EscapeString(n.Content) + "</code>")
	case javadoc.Literal:
		sb.WriteString(nethtml.EscapeString(n.Content))
	case javadoc.Link:
		label := nethtml.EscapeString(javadoc.ShortReference(n.Reference))
		if len(n.Label) > 0 {
			label = markup(n.Label)
		}
		if n.Plain {
			sb.WriteString(label)
			return
		}
		sb.WriteString("<code>" + label + "</code>")
	case javadoc.Value:
		sb.WriteString("<code>" + nethtml.EscapeString(javadoc.ShortReference(n.Reference)) + "</code>")
	case javadoc.Index:
		sb.WriteString(nethtml.EscapeString(n.Term))
	case javadoc.Summary:
		sb.WriteString(markup(n.Content))
	case javadoc.Return:
		if n.Inline {
			sb.WriteString("Returns " + markup(n.Description) + ".")
		}
	case javadoc.UnknownInlineTag:
		sb.WriteString(nethtml.EscapeString(n.Content))
	case javadoc.StartElement:
		sb.WriteString("<" + n.Name)
		for _, a := range n.Attributes {
			sb.WriteString(" " + a.Name + `="` + nethtml.EscapeString(a.Value) + `"`)
		}
		if n.SelfClose {
			sb.WriteString("/")
		}
		sb.WriteString(">")
	case javadoc.EndElement:
		sb.WriteString("</" + n.Name + ">")
	case javadoc.Entity:
		sb.WriteString("&" + n.Name + ";")
	case javadoc.Erroneous:
		sb.WriteString(nethtml.EscapeString(n.Content))
	}
}

// block parses rendered comment content into a tree.
func block(nodes []javadoc.Node) (*content.HTMLTree, error) {
	return parse(markup(nodes))
}

// parse is content.ParseHTML, except that the tree is never nil.
func parse(src string) (*content.HTMLTree, error) {
	tree, err := content.ParseHTML(src)
	if err != nil {
		return content.NewHTML(), err
	}
	return tree, nil
}

// seeMarkup renders the target of a @see tag. A bare reference is shown
// as code unless it carries a label; quoted strings and links are kept
// as written.
func seeMarkup(s javadoc.See) string {
	if len(s.Reference) == 0 {
		return ""
	}
	first, ok := s.Reference[0].(javadoc.Text)
	if !ok || strings.HasPrefix(strings.TrimSpace(first.Content), "\"") {
		return markup(s.Reference)
	}
	if label := s.Reference[1:]; !javadoc.IsBlank(label) {
		return markup(label)
	}
	return "<code>" + nethtml.EscapeString(javadoc.ShortReference(first.Content)) + "</code>"
}
