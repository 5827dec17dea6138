package builders

import (
	_ "embed"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed layout.xml
var defaultLayout string

// XMLNode is an element of an outline: a declarative tree naming the
// sections of a page in the order they are emitted.
type XMLNode struct {
	Name     string
	Attrs    map[string]string
	Children []*XMLNode
}

func (n *XMLNode) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	n.Name = start.Name.Local
	for _, a := range start.Attr {
		if n.Attrs == nil {
			n.Attrs = make(map[string]string)
		}
		n.Attrs[a.Name.Local] = a.Value
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &XMLNode{}
			if err := child.UnmarshalXML(d, t); err != nil {
				return err
			}
			n.Children = append(n.Children, child)
		case xml.EndElement:
			return nil
		}
	}
}

// Find returns the first element named name in depth-first order,
// including n itself.
func (n *XMLNode) Find(name string) *XMLNode {
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// String renders the outline as an indented tree of element names.
func (n *XMLNode) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *XMLNode) write(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Name)
	sb.WriteByte('\n')
	for _, child := range n.Children {
		child.write(sb, depth+1)
	}
}

// ParseOutline reads an outline document.
func ParseOutline(r io.Reader) (*XMLNode, error) {
	root := &XMLNode{}
	if err := xml.NewDecoder(r).Decode(root); err != nil {
		return nil, fmt.Errorf("parse outline: %w", err)
	}
	return root, nil
}

// DefaultOutline returns the built-in outline.
func DefaultOutline() *XMLNode {
	root, err := ParseOutline(strings.NewReader(defaultLayout))
	if err != nil {
		panic(err)
	}
	return root
}

// LoadOutline reads the outline at path, or returns the built-in outline
// when path is empty.
func LoadOutline(path string) (*XMLNode, error) {
	if path == "" {
		return DefaultOutline(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := ParseOutline(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}
