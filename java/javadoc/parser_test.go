package javadoc

import (
	"fmt"
	"strings"
	"testing"
)

func tagTypes(nodes []Node) []string {
	var result []string
	for _, n := range nodes {
		result = append(result, fmt.Sprintf("%T", n))
	}
	return result
}

func TestParseSplitsBodyAndBlockTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		body  string
		tags  []string
	}{
		{
			name:  "body only",
			input: "/** Simple text. */",
			body:  "Simple text.",
		},
		{
			name:  "without comment delimiters",
			input: "Returns the size.",
			body:  "Returns the size.",
		},
		{
			name: "body over several lines",
			input: `/**
			 * Adds two
			 * numbers.
			 *
			 * @param a the first
			 * @param b the second
			 * @return the sum
			 */`,
			body: "Adds two numbers.",
			tags: []string{"javadoc.Param", "javadoc.Param", "javadoc.Return"},
		},
		{
			name: "tags only",
			input: `/**
			 * @return the value
			 * @throws IllegalStateException if closed
			 * @exception java.io.IOException on failure
			 */`,
			tags: []string{"javadoc.Return", "javadoc.Throws", "javadoc.Throws"},
		},
		{
			name:  "at sign inside a line",
			input: "/** Mail bugs to dev@example.com or use {@code @Override}. */",
			body:  "Mail bugs to dev@example.com or use @Override.",
		},
		{
			name: "every tag the details section reads",
			input: `/**
			 * Reads.
			 * @param <T> the type
			 * @see #close()
			 * @since 1.1
			 * @deprecated no replacement
			 * @hidden
			 * @apiNote keep short
			 */`,
			body: "Reads.",
			tags: []string{
				"javadoc.Param", "javadoc.See", "javadoc.Since",
				"javadoc.Deprecated", "javadoc.Hidden", "javadoc.UnknownBlockTag",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.input)
			if got := PlainText(doc.Body); got != tt.body {
				t.Errorf("body = %q, want %q", got, tt.body)
			}
			if got := tagTypes(doc.BlockTags); strings.Join(got, " ") != strings.Join(tt.tags, " ") {
				t.Errorf("block tags = %v, want %v", got, tt.tags)
			}
		})
	}
}

func TestParseInlineTags(t *testing.T) {
	tests := []struct {
		input string
		plain string
		node  string
	}{
		{"/** Use {@code Map<String, List<Integer>>} for this. */", "Use Map<String, List<Integer>> for this.", "javadoc.Code"},
		{"/** Use {@code class Foo { int x; }} for this. */", "Use class Foo { int x; } for this.", "javadoc.Code"},
		{"/** See {@link java.util.List} for more. */", "See List for more.", "javadoc.Link"},
		{"/** See {@link java.util.List the List interface}. */", "See the List interface.", "javadoc.Link"},
		{"/** See {@linkplain #add(Object, int) adding}. */", "See adding.", "javadoc.Link"},
		{"/** Not {@literal <b>} bold. */", "Not <b> bold.", "javadoc.Literal"},
		{"/** Then {@inheritDoc} more. */", "Then more.", "javadoc.InheritDoc"},
	}
	for _, tt := range tests {
		doc := Parse(tt.input)
		if got := PlainText(doc.Body); got != tt.plain {
			t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.plain)
		}
		if len(doc.Body) < 2 {
			t.Errorf("%q: expected at least 2 body nodes, got %d", tt.input, len(doc.Body))
			continue
		}
		if got := fmt.Sprintf("%T", doc.Body[1]); got != tt.node {
			t.Errorf("%q: node 1 is %s, want %s", tt.input, got, tt.node)
		}
	}
}

func TestParseLinkReference(t *testing.T) {
	doc := Parse("/** See {@linkplain java.util.List#add(Object, int) the add method}. */")

	link, ok := doc.Body[1].(Link)
	if !ok {
		t.Fatalf("expected Link node, got %T", doc.Body[1])
	}
	if link.Reference != "java.util.List#add(Object, int)" {
		t.Errorf("Reference = %q", link.Reference)
	}
	if !link.Plain {
		t.Error("expected Plain to be true")
	}
	if got := PlainText(link.Label); got != "the add method" {
		t.Errorf("Label = %q", got)
	}
}

func TestParseInheritDoc(t *testing.T) {
	tests := []struct {
		input     string
		inherits  bool
		reference string
	}{
		{"/** {@inheritDoc} */", true, ""},
		{"/** Buffers never block. {@inheritDoc} */", true, ""},
		{"/** {@inheritDoc Source} */", true, "Source"},
		{"/** Mentions inheritDoc in prose. */", false, ""},
		{"/**\n * @return {@inheritDoc}\n */", false, ""},
	}
	for _, tt := range tests {
		doc := Parse(tt.input)
		if got := HasInheritDoc(doc.Body); got != tt.inherits {
			t.Errorf("HasInheritDoc(%q) = %v, want %v", tt.input, got, tt.inherits)
		}
		for _, n := range doc.Body {
			if inherit, ok := n.(InheritDoc); ok && inherit.Reference != tt.reference {
				t.Errorf("%q: Reference = %q, want %q", tt.input, inherit.Reference, tt.reference)
			}
		}
	}
}

func TestParseDeprecatedDescription(t *testing.T) {
	tests := []struct {
		input string
		desc  string
	}{
		{"/**\n * Size.\n * @deprecated use {@link #length()} instead\n */", "use length() instead"},
		{"/**\n * @deprecated\n *   spans two\n *   lines\n * @since 2\n */", "spans two lines"},
		{"/**\n * @deprecated\n */", ""},
	}
	for _, tt := range tests {
		d, ok := Parse(tt.input).Deprecation()
		if !ok {
			t.Errorf("%q: expected a @deprecated tag", tt.input)
			continue
		}
		if got := PlainText(d.Description); got != tt.desc {
			t.Errorf("%q: description = %q, want %q", tt.input, got, tt.desc)
		}
		if IsBlank(d.Description) != (tt.desc == "") {
			t.Errorf("%q: IsBlank = %v", tt.input, IsBlank(d.Description))
		}
	}

	if _, ok := Parse("/** Current. */").Deprecation(); ok {
		t.Error("expected no @deprecated tag")
	}
}

func TestParseParamNames(t *testing.T) {
	doc := Parse(`/**
	 * @param <T> the element type
	 * @param name the name of the thing
	 */`)

	want := []Param{{Name: "T", IsTypeParam: true}, {Name: "name"}}
	if len(doc.BlockTags) != len(want) {
		t.Fatalf("expected %d block tags, got %d", len(want), len(doc.BlockTags))
	}
	for i, w := range want {
		p, ok := doc.BlockTags[i].(Param)
		if !ok {
			t.Fatalf("tag %d: expected Param, got %T", i, doc.BlockTags[i])
		}
		if p.Name != w.Name || p.IsTypeParam != w.IsTypeParam {
			t.Errorf("tag %d = {%q %v}, want {%q %v}", i, p.Name, p.IsTypeParam, w.Name, w.IsTypeParam)
		}
	}
}

func TestParseSeeForms(t *testing.T) {
	tests := []struct {
		input string
		first string
		rest  string
	}{
		{"@see java.util.List#add(Object)", "java.util.List#add(Object)", ""},
		{"@see #close() the close method", "#close()", "the close method"},
		{`@see "The Java Language Specification"`, `"The Java Language Specification"`, ""},
	}
	for _, tt := range tests {
		sees := Parse("/**\n * " + tt.input + "\n */").Sees()
		if len(sees) != 1 {
			t.Errorf("%q: expected 1 @see, got %d", tt.input, len(sees))
			continue
		}
		first, ok := sees[0].Reference[0].(Text)
		if !ok || first.Content != tt.first {
			t.Errorf("%q: reference = %#v, want %q", tt.input, sees[0].Reference[0], tt.first)
		}
		if got := PlainText(sees[0].Reference[1:]); got != tt.rest {
			t.Errorf("%q: label = %q, want %q", tt.input, got, tt.rest)
		}
	}
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"/** A &lt; B &amp;&amp; C &gt; D */", "A < B && C > D"},
		{"/** With {@code some code} in it. */", "`some code`"},
		{"/** A {@linkplain java.util.List list} or <b>bold</b> text. */", "A list or **bold** text"},
		{"/** Calls {@link java.util.List#add(Object)}. */", "`List.add(Object)`"},
	}
	for _, tt := range tests {
		if got := Markdown(Parse(tt.input).Body); !strings.Contains(got, tt.contains) {
			t.Errorf("Markdown(%q) = %q, want it to contain %q", tt.input, got, tt.contains)
		}
	}
}

func TestMarkdownCodeBlocks(t *testing.T) {
	tests := []string{
		`/**
	 * Example:
	 * {@code
	 * class OneShotPublisher implements Publisher {
	 *   public void subscribe(Subscriber subscriber) {
	 *     subscriber.onError(new IllegalStateException());
	 *   }
	 * }
	 * }
	 */`,
		`/**
	 * Example:
	 * <pre>{@code
	 * class OneShotPublisher implements Publisher {
	 *   public void subscribe(Subscriber subscriber) {
	 *     subscriber.onError(new IllegalStateException());
	 *   }
	 * }
	 * }</pre>
	 */`,
	}
	for _, input := range tests {
		got := Markdown(Parse(input).Body)
		if !strings.Contains(got, "```java\nclass OneShotPublisher") {
			t.Errorf("expected a fenced code block: %s", got)
		}
		if !strings.Contains(got, "subscriber.onError") {
			t.Errorf("code block lost its nested braces: %s", got)
		}
		if strings.Contains(got, "<pre>") {
			t.Errorf("pre element rendered around the code block: %s", got)
		}
	}
}
