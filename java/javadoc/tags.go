package javadoc

import "strings"

// IsBlank reports whether nodes carry no visible content. Whitespace-only
// text and empty paragraph markup count as blank.
func IsBlank(nodes []Node) bool {
	for _, node := range nodes {
		switch n := node.(type) {
		case Text:
			if strings.TrimSpace(n.Content) != "" {
				return false
			}
		case StartElement, EndElement:
			continue
		case Entity:
			if n.Name != "nbsp" && n.Name != "#160" {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// HasInheritDoc reports whether nodes contain an {@inheritDoc} tag at the
// top level.
func HasInheritDoc(nodes []Node) bool {
	for _, node := range nodes {
		if _, ok := node.(InheritDoc); ok {
			return true
		}
	}
	return false
}

// ExpandInheritDoc replaces each top-level {@inheritDoc} in nodes with
// inherited. The result is a fresh slice.
func ExpandInheritDoc(nodes, inherited []Node) []Node {
	var result []Node
	for _, node := range nodes {
		if _, ok := node.(InheritDoc); ok {
			result = append(result, inherited...)
			continue
		}
		result = append(result, node)
	}
	return result
}

// Deprecation returns the first @deprecated block tag of doc.
func (doc *DocComment) Deprecation() (Deprecated, bool) {
	if doc == nil {
		return Deprecated{}, false
	}
	for _, tag := range doc.BlockTags {
		if d, ok := tag.(Deprecated); ok {
			return d, true
		}
	}
	return Deprecated{}, false
}

// Params returns the @param tags for value parameters, or for type
// parameters when typeParams is set.
func (doc *DocComment) Params(typeParams bool) []Param {
	var result []Param
	if doc == nil {
		return nil
	}
	for _, tag := range doc.BlockTags {
		if p, ok := tag.(Param); ok && p.IsTypeParam == typeParams {
			result = append(result, p)
		}
	}
	return result
}

// Param returns the @param tag documenting the named value parameter.
func (doc *DocComment) Param(name string) (Param, bool) {
	for _, p := range doc.Params(false) {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// ReturnTag returns the @return block tag, falling back to an inline
// {@return} at the start of the body.
func (doc *DocComment) ReturnTag() (Return, bool) {
	if doc == nil {
		return Return{}, false
	}
	for _, tag := range doc.BlockTags {
		if r, ok := tag.(Return); ok {
			return r, true
		}
	}
	for _, node := range doc.Body {
		if r, ok := node.(Return); ok {
			return r, true
		}
		if t, ok := node.(Text); ok && strings.TrimSpace(t.Content) == "" {
			continue
		}
		break
	}
	return Return{}, false
}

// Throws returns the @throws and @exception tags in source order.
func (doc *DocComment) Throws() []Throws {
	if doc == nil {
		return nil
	}
	var result []Throws
	for _, tag := range doc.BlockTags {
		if t, ok := tag.(Throws); ok {
			result = append(result, t)
		}
	}
	return result
}

// Sees returns the @see tags in source order.
func (doc *DocComment) Sees() []See {
	if doc == nil {
		return nil
	}
	var result []See
	for _, tag := range doc.BlockTags {
		if s, ok := tag.(See); ok {
			result = append(result, s)
		}
	}
	return result
}

// Since returns the first @since tag.
func (doc *DocComment) Since() (Since, bool) {
	if doc == nil {
		return Since{}, false
	}
	for _, tag := range doc.BlockTags {
		if s, ok := tag.(Since); ok {
			return s, true
		}
	}
	return Since{}, false
}

// IsHidden reports whether doc carries a @hidden tag.
func (doc *DocComment) IsHidden() bool {
	if doc == nil {
		return false
	}
	for _, tag := range doc.BlockTags {
		if _, ok := tag.(Hidden); ok {
			return true
		}
	}
	return false
}
