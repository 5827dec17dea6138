// Package writers holds what the method writers for the different output
// formats share.
package writers

import (
	"strings"

	"github.com/dhamidi/saidoc/java"
)

// Signature is a method declaration split into the parts a writer styles
// separately. Type names are simple names.
type Signature struct {
	Annotations    []string
	Modifiers      []string
	TypeParameters string
	ReturnType     string
	Name           string
	Parameters     []string
	Exceptions     []string
}

// SignatureOf returns the declaration of m. Only documented annotations
// are included.
func SignatureOf(m *java.Method) Signature {
	s := Signature{
		Modifiers:  m.Modifiers(),
		Name:       m.Name(),
		Parameters: m.ParameterList(),
	}
	for _, a := range m.Annotations() {
		if a.IsDocumented() {
			s.Annotations = append(s.Annotations, a.String())
		}
	}
	if tps := m.TypeParameters(); len(tps) > 0 {
		parts := make([]string, len(tps))
		for i, tp := range tps {
			parts[i] = tp.String()
		}
		s.TypeParameters = "<" + strings.Join(parts, ", ") + ">"
	}
	if !m.IsConstructor() {
		s.ReturnType = "void"
		if rt := m.ReturnType(); rt.Name != "" {
			s.ReturnType = rt.SimpleString()
		}
	}
	for _, e := range m.Exceptions() {
		s.Exceptions = append(s.Exceptions, java.SimpleName(e))
	}
	return s
}

// Head returns the part of the declaration before the parameter list,
// e.g. "public static <T> List<T> of".
func (s Signature) Head() string {
	var parts []string
	parts = append(parts, s.Modifiers...)
	if s.TypeParameters != "" {
		parts = append(parts, s.TypeParameters)
	}
	if s.ReturnType != "" {
		parts = append(parts, s.ReturnType)
	}
	parts = append(parts, s.Name)
	return strings.Join(parts, " ")
}

// ParameterString returns the parenthesized parameter list.
func (s Signature) ParameterString() string {
	return "(" + strings.Join(s.Parameters, ", ") + ")"
}

// ThrowsString returns the throws clause, or "" when there is none.
func (s Signature) ThrowsString() string {
	if len(s.Exceptions) == 0 {
		return ""
	}
	return "throws " + strings.Join(s.Exceptions, ", ")
}

// String renders the declaration as source text. Annotations are placed
// on lines of their own.
func (s Signature) String() string {
	var sb strings.Builder
	for _, a := range s.Annotations {
		sb.WriteString(a)
		sb.WriteByte('\n')
	}
	sb.WriteString(s.Head())
	sb.WriteString(s.ParameterString())
	if t := s.ThrowsString(); t != "" {
		sb.WriteByte(' ')
		sb.WriteString(t)
	}
	return sb.String()
}
