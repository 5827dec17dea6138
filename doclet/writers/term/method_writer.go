// Package term writes method details as Markdown, for reading in a
// terminal once rendered by glamour.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/dhamidi/saidoc/doclet/config"
	"github.com/dhamidi/saidoc/doclet/content"
	"github.com/dhamidi/saidoc/doclet/docfinder"
	"github.com/dhamidi/saidoc/doclet/writers"
	"github.com/dhamidi/saidoc/java"
	"github.com/dhamidi/saidoc/java/javadoc"
)

// MethodWriter writes the method details of one type as Markdown.
type MethodWriter struct {
	typ *java.Class
}

func NewMethodWriter(t *java.Class) *MethodWriter {
	return &MethodWriter{typ: t}
}

func (w *MethodWriter) DetailsHeader(t *java.Class, _ content.Content) (content.Content, error) {
	return content.NewText("## Method Details\n\n"), nil
}

func (w *MethodWriter) MemberHeader(m *java.Method, _ content.Content) (content.Content, error) {
	return content.NewText("### ", m.Name(), "\n\n"), nil
}

func (w *MethodWriter) Signature(m *java.Method) (content.Content, error) {
	return content.NewText("```java\n", writers.SignatureOf(m).String(), "\n```\n\n"), nil
}

func (w *MethodWriter) AddDeprecation(m *java.Method, tree content.Content) error {
	if !m.IsDeprecated() {
		return nil
	}
	text := content.NewText("**Deprecated.**")
	if d, ok := m.Doc().Deprecation(); ok && !javadoc.IsBlank(d.Description) {
		text.AddString(" *" + strings.TrimSpace(javadoc.Markdown(d.Description)) + "*")
	}
	tree.AddContent(text.AddString("\n\n"))
	return nil
}

func (w *MethodWriter) AddComments(enclosing *java.Class, holder *java.Method, tree content.Content) error {
	body := holder.Body()
	if javadoc.HasInheritDoc(body) {
		if out := docfinder.SearchInherited(holder); out.Found() {
			body = javadoc.ExpandInheritDoc(body, out.Body)
		}
	}
	if javadoc.IsBlank(body) {
		return nil
	}

	text := content.NewText()
	if enclosing != w.typ && (enclosing.IsIncluded() || enclosing.IsReachable()) {
		kind := "class"
		if enclosing.IsInterface() {
			kind = "interface"
		}
		text.AddString(fmt.Sprintf("*Description copied from %s: `%s`*\n\n", kind, enclosing.SimpleName()))
	}
	text.AddString(strings.TrimSpace(javadoc.Markdown(body)) + "\n\n")
	tree.AddContent(text)
	return nil
}

func (w *MethodWriter) AddTags(m *java.Method, tree content.Content) error {
	doc := m.Doc()
	if doc == nil {
		return nil
	}

	text := content.NewText()
	list := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		text.AddString("**" + title + "**\n\n")
		for _, item := range items {
			text.AddString("- " + item + "\n")
		}
		text.AddString("\n")
	}
	item := func(name string, desc []javadoc.Node) string {
		if javadoc.IsBlank(desc) {
			return "`" + name + "`"
		}
		return "`" + name + "` - " + inline(desc)
	}

	var typeParams, params, throws []string
	for _, p := range doc.Params(true) {
		typeParams = append(typeParams, item("<"+p.Name+">", p.Description))
	}
	for _, p := range doc.Params(false) {
		params = append(params, item(p.Name, p.Description))
	}
	for _, t := range doc.Throws() {
		throws = append(throws, item(java.SimpleName(t.Exception), t.Description))
	}

	list("Type Parameters:", typeParams)
	list("Parameters:", params)
	if r, ok := doc.ReturnTag(); ok && !javadoc.IsBlank(r.Description) {
		text.AddString("**Returns:** " + inline(r.Description) + "\n\n")
	}
	list("Throws:", throws)
	if s, ok := doc.Since(); ok && !javadoc.IsBlank(s.Version) {
		text.AddString("**Since:** " + inline(s.Version) + "\n\n")
	}
	if sees := doc.Sees(); len(sees) > 0 {
		refs := make([]string, len(sees))
		for i, s := range sees {
			refs[i] = seeMarkdown(s)
		}
		text.AddString("**See Also:** " + strings.Join(refs, ", ") + "\n\n")
	}

	if !text.IsEmpty() {
		tree.AddContent(text)
	}
	return nil
}

func inline(nodes []javadoc.Node) string {
	return strings.Join(strings.Fields(javadoc.Markdown(nodes)), " ")
}

func seeMarkdown(s javadoc.See) string {
	if len(s.Reference) == 0 {
		return ""
	}
	first, ok := s.Reference[0].(javadoc.Text)
	if !ok || strings.HasPrefix(strings.TrimSpace(first.Content), "\"") {
		return inline(s.Reference)
	}
	if label := s.Reference[1:]; !javadoc.IsBlank(label) {
		return inline(label)
	}
	return "`" + javadoc.ShortReference(first.Content) + "`"
}

func (w *MethodWriter) FinalizeMember(tree content.Content, isLast bool) (content.Content, error) {
	if !isLast {
		tree.AddContent(content.NewText("---\n\n"))
	}
	return tree, nil
}

func (w *MethodWriter) FinalizeDetails(details content.Content) (content.Content, error) {
	return details, nil
}

// NewRenderer returns a glamour renderer for the terminal configured by
// cfg. The "auto" style follows the terminal background.
func NewRenderer(cfg *config.Configuration) (*glamour.TermRenderer, error) {
	style := glamour.WithAutoStyle()
	if cfg.Style != "" && cfg.Style != "auto" {
		style = glamour.WithStylePath(cfg.Style)
	}
	return glamour.NewTermRenderer(
		style,
		glamour.WithColorProfile(termenv.TrueColor),
		glamour.WithWordWrap(cfg.WordWrap),
	)
}

// Render formats Markdown for the terminal.
func Render(cfg *config.Configuration, markdown string) (string, error) {
	r, err := NewRenderer(cfg)
	if err != nil {
		return "", fmt.Errorf("term: renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("term: render: %w", err)
	}
	return out, nil
}
