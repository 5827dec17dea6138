package javadoc

import (
	"strings"
)

// Markdown renders inline content as Markdown. References are shortened
// to their simple names and HTML markup is mapped to the closest Markdown
// construct. {@inheritDoc} renders as nothing; callers expand it first.
func Markdown(nodes []Node) string {
	var sb strings.Builder
	for i, node := range nodes {
		// a <pre> wrapped around a multi-line {@code} is rendered by the
		// code node itself
		if start, ok := node.(StartElement); ok && strings.EqualFold(start.Name, "pre") && adjacentMultilineCode(nodes, i, 1) {
			continue
		}
		if end, ok := node.(EndElement); ok && strings.EqualFold(end.Name, "pre") && adjacentMultilineCode(nodes, i, -1) {
			continue
		}
		sb.WriteString(markdownNode(node))
	}
	return collapseBlankLines(sb.String())
}

// PlainText renders inline content without any markup.
func PlainText(nodes []Node) string {
	var sb strings.Builder
	for _, node := range nodes {
		sb.WriteString(plainNode(node))
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func adjacentMultilineCode(nodes []Node, idx, step int) bool {
	for i := idx + step; i >= 0 && i < len(nodes); i += step {
		switch n := nodes[i].(type) {
		case Text:
			if strings.TrimSpace(n.Content) == "" {
				continue
			}
			return false
		case Code:
			return strings.Contains(n.Content, "\n")
		default:
			return false
		}
	}
	return false
}

func markdownNode(node Node) string {
	switch n := node.(type) {
	case Text:
		return n.Content
	case Code:
		content := strings.TrimSpace(stripLinePrefix(n.Content))
		if strings.Contains(content, "\n") {
			return "\n```java\n" + content + "\n```\n"
		}
		return "`" + content + "`"
	case Literal:
		return n.Content
	case Link:
		label := ShortReference(n.Reference)
		if len(n.Label) > 0 {
			label = strings.TrimSpace(Markdown(n.Label))
		}
		if n.Plain {
			return label
		}
		return "`" + label + "`"
	case Value:
		return "`" + ShortReference(n.Reference) + "`"
	case Index:
		return n.Term
	case Summary:
		return Markdown(n.Content)
	case Return:
		if n.Inline {
			return "Returns " + strings.TrimSpace(Markdown(n.Description)) + "."
		}
	case UnknownInlineTag:
		return n.Content
	case StartElement:
		return markdownStart(n)
	case EndElement:
		return markdownEnd(n)
	case Entity:
		return DecodeEntity(n.Name)
	case Erroneous:
		return n.Content
	}
	return ""
}

func plainNode(node Node) string {
	switch n := node.(type) {
	case Text:
		return n.Content
	case Code:
		return n.Content
	case Literal:
		return n.Content
	case Link:
		if len(n.Label) > 0 {
			return PlainText(n.Label)
		}
		return ShortReference(n.Reference)
	case Value:
		return ShortReference(n.Reference)
	case Index:
		return n.Term
	case Summary:
		return PlainText(n.Content)
	case Return:
		if n.Inline {
			return PlainText(n.Description)
		}
	case UnknownInlineTag:
		return n.Content
	case Entity:
		return DecodeEntity(n.Name)
	}
	return ""
}

// ShortReference shortens a Javadoc reference for display:
// "java.util.List#add(Object)" becomes "List.add(Object)" and
// "#size()" becomes "size()".
func ShortReference(ref string) string {
	ref = strings.TrimSpace(ref)
	class, member, hasMember := strings.Cut(ref, "#")
	if i := strings.LastIndex(class, "."); i >= 0 {
		class = class[i+1:]
	}
	if !hasMember {
		return class
	}
	if class == "" {
		return member
	}
	return class + "." + member
}

func markdownStart(e StartElement) string {
	switch strings.ToLower(e.Name) {
	case "p", "h1", "h2", "h3", "h4", "h5", "h6":
		return "\n\n"
	case "br":
		return "\n"
	case "pre":
		return "\n```\n"
	case "code", "tt":
		return "`"
	case "ul", "ol", "dl", "table", "tr", "dt":
		return "\n"
	case "li":
		return "\n- "
	case "b", "strong":
		return "**"
	case "i", "em":
		return "_"
	case "blockquote":
		return "\n> "
	case "td", "th":
		return " "
	case "dd":
		return "\n  "
	}
	return ""
}

func markdownEnd(e EndElement) string {
	switch strings.ToLower(e.Name) {
	case "pre":
		return "\n```\n"
	case "code", "tt":
		return "`"
	case "b", "strong":
		return "**"
	case "i", "em":
		return "_"
	case "ul", "ol", "h1", "h2", "h3", "h4", "h5", "h6":
		return "\n"
	}
	return ""
}

// DecodeEntity returns the text an HTML entity stands for. Unknown
// entities are returned in their source form.
func DecodeEntity(name string) string {
	switch name {
	case "lt", "#60":
		return "<"
	case "gt", "#62":
		return ">"
	case "amp", "#38":
		return "&"
	case "quot", "#34":
		return "\""
	case "apos", "#39":
		return "'"
	case "nbsp", "#160":
		return " "
	case "mdash", "#8212":
		return "—"
	case "ndash", "#8211":
		return "–"
	case "copy", "#169":
		return "©"
	}
	return "&" + name + ";"
}

func collapseBlankLines(s string) string {
	var result []string
	prevEmpty := false
	for _, line := range strings.Split(s, "\n") {
		empty := strings.TrimSpace(line) == ""
		if empty && prevEmpty {
			continue
		}
		if empty {
			line = ""
		}
		result = append(result, line)
		prevEmpty = empty
	}
	return strings.TrimSpace(strings.Join(result, "\n"))
}

// stripLinePrefix removes the "*" continuation marker left over from
// comment lines inside {@code} blocks, keeping the code's own indentation.
func stripLinePrefix(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		rest := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(rest, "*") || strings.HasPrefix(rest, "*/") {
			continue
		}
		rest = rest[1:]
		lines[i] = strings.TrimPrefix(rest, " ")
	}
	return strings.Join(lines, "\n")
}
