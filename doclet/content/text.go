package content

import (
	"io"
	"strings"
)

// Text is a tree of plain or Markdown text. Children are rendered in
// order without separators.
type Text struct {
	parts []string
}

// NewText returns a tree holding the concatenation of parts.
func NewText(parts ...string) *Text {
	t := &Text{}
	for _, p := range parts {
		t.AddString(p)
	}
	return t
}

// AddString appends s.
func (t *Text) AddString(s string) *Text {
	if s != "" {
		t.parts = append(t.parts, s)
	}
	return t
}

func (t *Text) AddContent(c Content) {
	if other, ok := c.(*Text); ok {
		t.parts = append(t.parts, other.parts...)
		return
	}
	t.AddString(String(c))
}

func (t *Text) IsEmpty() bool { return len(t.parts) == 0 }

func (t *Text) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

func (t *Text) String() string { return strings.Join(t.parts, "") }
