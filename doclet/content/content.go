// Package content provides the output trees that writers build and
// builders assemble.
package content

import (
	"bytes"
	"io"
)

// Content is a node of an output tree. Builders only append finished
// subtrees to their parents; the markup inside belongs to the writer.
type Content interface {
	// AddContent appends c as the last child. Appending a tree of a
	// different implementation appends its rendered form.
	AddContent(c Content)

	// IsEmpty reports whether rendering would produce no output.
	IsEmpty() bool

	io.WriterTo
}

// String renders c into a string.
func String(c Content) string {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return ""
	}
	return buf.String()
}
