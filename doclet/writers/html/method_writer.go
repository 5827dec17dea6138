// Package html writes method details as HTML, in either the classic
// list-based layout or the HTML5 section layout.
package html

import (
	"fmt"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/saidoc/doclet/config"
	"github.com/dhamidi/saidoc/doclet/content"
	"github.com/dhamidi/saidoc/doclet/docfinder"
	"github.com/dhamidi/saidoc/doclet/writers"
	"github.com/dhamidi/saidoc/java"
	"github.com/dhamidi/saidoc/java/javadoc"
)

var log = commonlog.GetLogger("saidoc.writers.html")

// MethodWriter writes the method details of one type. It is not safe for
// concurrent use; create one writer per type.
type MethodWriter struct {
	typ   *java.Class
	html5 bool
}

func NewMethodWriter(t *java.Class, cfg *config.Configuration) *MethodWriter {
	return &MethodWriter{typ: t, html5: cfg.HTML5}
}

// AnchorID returns the id of the element holding m's details.
func (w *MethodWriter) AnchorID(m *java.Method) string {
	if w.html5 {
		return m.Key()
	}
	// the classic layout avoids parentheses in ids
	r := strings.NewReplacer("(", "-", ")", "-", ",", "-", "[]", ":A")
	return r.Replace(m.Key())
}

func (w *MethodWriter) DetailsHeader(t *java.Class, _ content.Content) (content.Content, error) {
	details := content.NewHTML()
	if w.html5 {
		details.Add(content.Element("h2").AddText("Method Details"))
		return details, nil
	}
	details.Add(
		content.Element("a", "id", "method.detail"),
		content.Element("h3").AddText("Method Detail"),
	)
	return details, nil
}

func (w *MethodWriter) MemberHeader(m *java.Method, _ content.Content) (content.Content, error) {
	if w.html5 {
		return content.Element("section", "class", "detail", "id", w.AnchorID(m)).
			Add(content.Element("h3").AddText(m.Name())), nil
	}
	return content.Element("li", "class", "blockList").Add(
		content.Element("a", "id", w.AnchorID(m)),
		content.Element("h4").AddText(m.Name()),
	), nil
}

func (w *MethodWriter) Signature(m *java.Method) (content.Content, error) {
	sig := writers.SignatureOf(m)
	if !w.html5 {
		return content.Element("pre", "class", "methodSignature").AddText(sig.String()), nil
	}

	div := content.Element("div", "class", "member-signature")
	if len(sig.Annotations) > 0 {
		div.Add(span("annotations", strings.Join(sig.Annotations, "\n")+"\n"))
	}
	if len(sig.Modifiers) > 0 {
		div.Add(span("modifiers", strings.Join(sig.Modifiers, " "))).AddText(" ")
	}
	if sig.TypeParameters != "" {
		div.Add(span("type-parameters", sig.TypeParameters)).AddText(" ")
	}
	if sig.ReturnType != "" {
		div.Add(span("return-type", sig.ReturnType)).AddText(" ")
	}
	div.Add(span("element-name", sig.Name), span("parameters", sig.ParameterString()))
	if t := sig.ThrowsString(); t != "" {
		div.AddText(" ").Add(span("exceptions", t))
	}
	return div, nil
}

func span(class, text string) *content.HTMLTree {
	return content.Element("span", "class", class).AddText(text)
}

func (w *MethodWriter) AddDeprecation(m *java.Method, tree content.Content) error {
	if !m.IsDeprecated() {
		return nil
	}

	label := "Deprecated."
	if forRemoval(m) {
		label = "Deprecated, for removal: This API element is subject to removal in a future version."
	}
	blockClass, labelClass, commentClass := "deprecationBlock", "deprecatedLabel", "deprecationComment"
	if w.html5 {
		blockClass, labelClass, commentClass = "deprecation-block", "deprecated-label", "deprecation-comment"
	}

	div := content.Element("div", "class", blockClass).Add(span(labelClass, label))
	if d, ok := m.Doc().Deprecation(); ok && !javadoc.IsBlank(d.Description) {
		desc, err := block(d.Description)
		if err != nil {
			return fmt.Errorf("%s: deprecation: %w", m, err)
		}
		div.Add(content.Element("div", "class", commentClass).Add(desc))
	}
	tree.AddContent(div)
	return nil
}

func forRemoval(m *java.Method) bool {
	for _, a := range m.Annotations() {
		if java.SimpleName(a.Type) != "Deprecated" {
			continue
		}
		if v, ok := a.Values["forRemoval"].(bool); ok && v {
			return true
		}
	}
	return false
}

// AddComments writes the description of holder. An {@inheritDoc} in it
// is replaced by the nearest inherited description.
func (w *MethodWriter) AddComments(enclosing *java.Class, holder *java.Method, tree content.Content) error {
	body := holder.Body()
	if javadoc.HasInheritDoc(body) {
		if out := docfinder.SearchInherited(holder); out.Found() {
			body = javadoc.ExpandInheritDoc(body, out.Body)
		} else {
			log.Debugf("%s: nothing to inherit", holder)
		}
	}
	if javadoc.IsBlank(body) {
		return nil
	}

	if enclosing != w.typ && (enclosing.IsIncluded() || enclosing.IsReachable()) {
		kind := "class"
		if enclosing.IsInterface() {
			kind = "interface"
		}
		labelClass := "descfrmTypeLabel"
		if w.html5 {
			labelClass = "description-from-type-label"
		}
		tree.AddContent(content.Element("div", "class", "block").Add(
			content.Element("span", "class", labelClass).
				AddText("Description copied from "+kind+": ").
				Add(content.Element("code").AddText(enclosing.SimpleName())),
		))
	}

	desc, err := block(body)
	if err != nil {
		return fmt.Errorf("%s: comment: %w", holder, err)
	}
	tree.AddContent(content.Element("div", "class", "block").Add(desc))
	return nil
}

// AddTags writes the block tags of m as a definition list.
func (w *MethodWriter) AddTags(m *java.Method, tree content.Content) error {
	doc := m.Doc()
	if doc == nil {
		return nil
	}

	dl := content.Element("dl")
	if w.html5 {
		dl = content.Element("dl", "class", "notes")
	}
	entries := 0
	add := func(term string, items ...*content.HTMLTree) {
		if len(items) == 0 {
			return
		}
		dl.Add(content.Element("dt").AddText(term))
		for _, item := range items {
			dl.Add(item)
		}
		entries++
	}

	var err error
	described := func(name string, desc []javadoc.Node) *content.HTMLTree {
		dd := content.Element("dd").Add(content.Element("code").AddText(name))
		if javadoc.IsBlank(desc) {
			return dd
		}
		d, perr := block(desc)
		if perr != nil && err == nil {
			err = perr
		}
		return dd.AddText(" - ").Add(d)
	}

	var typeParams, params, throws []*content.HTMLTree
	for _, p := range doc.Params(true) {
		typeParams = append(typeParams, described(p.Name, p.Description))
	}
	for _, p := range doc.Params(false) {
		params = append(params, described(p.Name, p.Description))
	}
	for _, t := range doc.Throws() {
		throws = append(throws, described(java.SimpleName(t.Exception), t.Description))
	}

	add("Type Parameters:", typeParams...)
	add("Parameters:", params...)
	if r, ok := doc.ReturnTag(); ok && !javadoc.IsBlank(r.Description) {
		d, rerr := block(r.Description)
		if rerr != nil && err == nil {
			err = rerr
		}
		add("Returns:", content.Element("dd").Add(d))
	}
	add("Throws:", throws...)
	if s, ok := doc.Since(); ok && !javadoc.IsBlank(s.Version) {
		d, serr := block(s.Version)
		if serr != nil && err == nil {
			err = serr
		}
		add("Since:", content.Element("dd").Add(d))
	}
	if sees := doc.Sees(); len(sees) > 0 {
		var refs []string
		for _, s := range sees {
			refs = append(refs, seeMarkup(s))
		}
		d, serr := parse(strings.Join(refs, ", "))
		if serr != nil && err == nil {
			err = serr
		}
		add("See Also:", content.Element("dd").Add(d))
	}

	if err != nil {
		return fmt.Errorf("%s: tags: %w", m, err)
	}
	if entries > 0 {
		tree.AddContent(dl)
	}
	return nil
}

func (w *MethodWriter) FinalizeMember(tree content.Content, isLast bool) (content.Content, error) {
	if w.html5 {
		return content.Element("li").Add(tree), nil
	}
	class := "blockList"
	if isLast {
		class = "blockListLast"
	}
	return content.Element("ul", "class", class).Add(tree), nil
}

func (w *MethodWriter) FinalizeDetails(details content.Content) (content.Content, error) {
	frag, ok := details.(*content.HTMLTree)
	if !ok {
		return nil, fmt.Errorf("unexpected details tree %T", details)
	}
	if !w.html5 {
		return content.Element("ul", "class", "blockList").Add(
			content.Element("li", "class", "blockList").Add(frag),
		), nil
	}

	section := content.Element("section", "class", "method-details", "id", "method-detail")
	// the heading stays outside the member list
	if heading := frag.Node().FirstChild; heading != nil {
		frag.Node().RemoveChild(heading)
		section.Node().AppendChild(heading)
	}
	return section.Add(content.Element("ul", "class", "member-list").Add(frag)), nil
}
