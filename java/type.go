package java

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

func (t TypeModel) String() string {
	var sb strings.Builder
	sb.WriteString(t.Name)
	if len(t.TypeArguments) > 0 {
		sb.WriteString("<")
		for i, ta := range t.TypeArguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(ta.String())
		}
		sb.WriteString(">")
	}
	for i := 0; i < t.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

func (ta TypeArgumentModel) String() string {
	if ta.IsWildcard {
		if ta.BoundKind != "" && ta.Bound != nil {
			return "? " + ta.BoundKind + " " + ta.Bound.String()
		}
		return "?"
	}
	if ta.Type != nil {
		return ta.Type.String()
	}
	return ""
}

// SimpleString is like String but drops package qualifiers from every
// class name.
func (t TypeModel) SimpleString() string {
	st := TypeModel{Name: extractSimpleName(t.Name), ArrayDepth: t.ArrayDepth}
	for _, ta := range t.TypeArguments {
		if ta.Type != nil {
			inner := simpleTypeOf(*ta.Type)
			ta.Type = &inner
		}
		if ta.Bound != nil {
			inner := simpleTypeOf(*ta.Bound)
			ta.Bound = &inner
		}
		st.TypeArguments = append(st.TypeArguments, ta)
	}
	return st.String()
}

// simpleTypeOf renders t with simple names and wraps the result back into
// a TypeModel so that String prints it verbatim.
func simpleTypeOf(t TypeModel) TypeModel {
	return TypeModel{Name: t.SimpleString()}
}

// Erasure returns the erased form of t. Type variables named in tparams
// erase to the erasure of their first bound, or java.lang.Object when
// unbounded.
func (t TypeModel) Erasure(tparams []TypeParameterModel) TypeModel {
	for _, tp := range tparams {
		if tp.Name != t.Name {
			continue
		}
		erased := TypeModel{Name: "java.lang.Object"}
		if len(tp.Bounds) > 0 {
			// a bound that mentions the variable itself (T extends Comparable<T>)
			// only contributes its raw class
			erased = TypeModel{Name: tp.Bounds[0].Name}
			if erased.Name == tp.Name {
				erased.Name = "java.lang.Object"
			}
		}
		erased.ArrayDepth += t.ArrayDepth
		return erased
	}
	return TypeModel{Name: t.Name, ArrayDepth: t.ArrayDepth}
}

// Substitute replaces the type variables bound in env, e.g. E in
// "java.util.List<E>[]" with "java.util.List<java.lang.String>[]".
func (t TypeModel) Substitute(env map[string]TypeModel) TypeModel {
	if len(env) == 0 {
		return t
	}
	if b, ok := env[t.Name]; ok && len(t.TypeArguments) == 0 {
		b.ArrayDepth += t.ArrayDepth
		return b
	}
	result := TypeModel{Name: t.Name, ArrayDepth: t.ArrayDepth}
	for _, ta := range t.TypeArguments {
		if ta.Type != nil {
			inner := ta.Type.Substitute(env)
			ta.Type = &inner
		}
		if ta.Bound != nil {
			inner := ta.Bound.Substitute(env)
			ta.Bound = &inner
		}
		result.TypeArguments = append(result.TypeArguments, ta)
	}
	return result
}

// ParseType parses the textual form of a Java type such as
// "java.util.Map<K, java.util.List<? extends V>>[]".
func ParseType(s string) (TypeModel, error) {
	p := typeParser{input: strings.TrimSpace(s)}
	t, err := p.parseType()
	if err != nil {
		return TypeModel{}, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return TypeModel{}, fmt.Errorf("parse type %q: unexpected %q at offset %d", s, p.input[p.pos:], p.pos)
	}
	return t, nil
}

type typeParser struct {
	input string
	pos   int
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *typeParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *typeParser) parseType() (TypeModel, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == '<' || ch == '>' || ch == ',' || ch == '[' || ch == ' ' {
			break
		}
		if strings.HasPrefix(p.input[p.pos:], "...") {
			break
		}
		p.pos++
	}
	if start == p.pos {
		return TypeModel{}, fmt.Errorf("parse type %q: missing name at offset %d", p.input, start)
	}
	t := TypeModel{Name: p.input[start:p.pos]}

	p.skipSpace()
	if p.peek() == '<' {
		p.pos++
		for {
			ta, err := p.parseArgument()
			if err != nil {
				return TypeModel{}, err
			}
			t.TypeArguments = append(t.TypeArguments, ta)
			p.skipSpace()
			if p.peek() == ',' {
				p.pos++
				continue
			}
			if p.peek() != '>' {
				return TypeModel{}, fmt.Errorf("parse type %q: unterminated type arguments", p.input)
			}
			p.pos++
			break
		}
	}

	for {
		p.skipSpace()
		if !strings.HasPrefix(p.input[p.pos:], "[]") {
			break
		}
		p.pos += 2
		t.ArrayDepth++
	}
	if strings.HasPrefix(p.input[p.pos:], "...") {
		p.pos += 3
		t.ArrayDepth++
	}
	return t, nil
}

func (p *typeParser) parseArgument() (TypeArgumentModel, error) {
	p.skipSpace()
	if p.peek() != '?' {
		t, err := p.parseType()
		if err != nil {
			return TypeArgumentModel{}, err
		}
		return TypeArgumentModel{Type: &t}, nil
	}
	p.pos++
	ta := TypeArgumentModel{IsWildcard: true}
	p.skipSpace()
	for _, kind := range []string{"extends", "super"} {
		if strings.HasPrefix(p.input[p.pos:], kind+" ") {
			p.pos += len(kind)
			bound, err := p.parseType()
			if err != nil {
				return TypeArgumentModel{}, err
			}
			ta.BoundKind = kind
			ta.Bound = &bound
			break
		}
	}
	return ta, nil
}

// UnmarshalYAML accepts either the mapping form of a type or a scalar
// in Java syntax.
func (t *TypeModel) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		parsed, err := ParseType(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*t = parsed
		return nil
	}
	type plain TypeModel
	var raw plain
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*t = TypeModel(raw)
	return nil
}

// String renders the declaration of the type parameter with simple
// names, e.g. "S extends Comparable<S>".
func (tp TypeParameterModel) String() string {
	if len(tp.Bounds) == 0 {
		return tp.Name
	}
	bounds := make([]string, len(tp.Bounds))
	for i, b := range tp.Bounds {
		bounds[i] = b.SimpleString()
	}
	return tp.Name + " extends " + strings.Join(bounds, " & ")
}

// SimpleName drops the package qualifier from a class name.
func SimpleName(name string) string { return extractSimpleName(name) }
