// Package docfinder locates the comment a method inherits when it has
// none of its own.
package docfinder

import (
	"github.com/dhamidi/saidoc/java"
	"github.com/dhamidi/saidoc/java/javadoc"
)

// Output is the result of a search. Holder is the method whose comment
// supplies Body; it is the searched method itself when nothing was found,
// in which case Body is nil.
type Output struct {
	Holder *java.Method
	Body   []javadoc.Node
}

// Found reports whether the search produced a non-blank body.
func (o Output) Found() bool {
	return !javadoc.IsBlank(o.Body)
}

// Search returns m's own description when it has one, and the nearest
// inherited description otherwise.
func Search(m *java.Method) Output {
	if m.HasBody() {
		return Output{Holder: m, Body: m.Body()}
	}
	return SearchInherited(m)
}

// SearchInherited looks for the nearest overridden method with a
// non-blank description, ignoring m's own comment. Overridden methods
// are matched after substituting the type arguments m's owner supplies,
// so Foo.compareTo(Foo) finds Comparable<T>.compareTo(T).
//
// Supertypes of m's owner are searched breadth-first. Each type's
// interfaces, in the order of its implements clause, are queued before
// its superclass, so an interface's description wins over one from a
// superclass at the same distance.
func SearchInherited(m *java.Method) Output {
	if m.IsConstructor() || m.IsStatic() || m.IsPrivate() {
		return Output{Holder: m}
	}

	owner := m.Owner()
	visited := map[*java.Class]bool{owner: true}
	queue := directSupertypes(owner)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if visited[next] {
			continue
		}
		visited[next] = true

		if candidate := next.MethodMatching(m.Key(), owner); candidate != nil && documents(candidate, owner) {
			return Output{Holder: candidate, Body: candidate.Body()}
		}
		queue = append(queue, directSupertypes(next)...)
	}
	return Output{Holder: m}
}

func directSupertypes(c *java.Class) []*java.Class {
	result := append([]*java.Class(nil), c.Interfaces()...)
	if s := c.Superclass(); s != nil {
		result = append(result, s)
	}
	return result
}

func documents(candidate *java.Method, from *java.Class) bool {
	if candidate.IsStatic() || candidate.IsPrivate() {
		return false
	}
	if !candidate.IsInheritableFrom(from) {
		return false
	}
	return candidate.HasBody()
}
