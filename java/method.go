package java

import (
	"strings"

	"github.com/dhamidi/saidoc/java/javadoc"
)

const (
	constructorName = "<init>"
	initializerName = "<clinit>"
)

// Method is a method or constructor declared by a Class.
type Method struct {
	model *MethodModel
	owner *Class
	index int
	doc   *javadoc.DocComment
	key   string
}

func newMethod(owner *Class, model *MethodModel, index int) *Method {
	m := &Method{model: model, owner: owner, index: index}
	if strings.TrimSpace(model.Javadoc) != "" {
		m.doc = javadoc.Parse(model.Javadoc)
	}
	m.key = m.computeKey()
	return m
}

func (m *Method) Model() *MethodModel { return m.model }

// Owner returns the type that declares m.
func (m *Method) Owner() *Class { return m.owner }

// Index is the position of m among all members its owner declares.
func (m *Method) Index() int { return m.index }

func (m *Method) Name() string {
	if m.IsConstructor() {
		return m.owner.SimpleName()
	}
	return m.model.Name
}

func (m *Method) ReturnType() TypeModel                { return m.model.ReturnType }
func (m *Method) Parameters() []ParameterModel         { return m.model.Parameters }
func (m *Method) TypeParameters() []TypeParameterModel { return m.model.TypeParameters }
func (m *Method) Exceptions() []string                 { return m.model.Exceptions }
func (m *Method) Annotations() []AnnotationModel       { return m.model.Annotations }
func (m *Method) Visibility() Visibility               { return m.model.Visibility }
func (m *Method) IsPublic() bool                       { return m.model.Visibility == VisibilityPublic }
func (m *Method) IsPrivate() bool                      { return m.model.Visibility == VisibilityPrivate }
func (m *Method) IsStatic() bool                       { return m.model.IsStatic }
func (m *Method) IsFinal() bool                        { return m.model.IsFinal }
func (m *Method) IsSynchronized() bool                 { return m.model.IsSynchronized }
func (m *Method) IsNative() bool                       { return m.model.IsNative }
func (m *Method) IsVarargs() bool                      { return m.model.IsVarargs }
func (m *Method) IsDefault() bool                      { return m.model.IsDefault }
func (m *Method) IsConstructor() bool                  { return m.model.Name == constructorName }
func (m *Method) IsInitializer() bool                  { return m.model.Name == initializerName }

// IsAbstract reports whether m has no implementation. Interface methods
// are implicitly abstract unless they are static, private or default.
func (m *Method) IsAbstract() bool {
	if m.model.IsAbstract {
		return true
	}
	return m.owner.IsInterface() && !m.model.IsStatic && !m.model.IsDefault && !m.IsPrivate()
}

// IsDeprecated reports whether m is marked deprecated by flag, by
// annotation or by a @deprecated tag.
func (m *Method) IsDeprecated() bool {
	if m.model.IsDeprecated || hasAnnotation(m.model.Annotations, deprecatedAnnotation) {
		return true
	}
	_, ok := m.doc.Deprecation()
	return ok
}

// Doc returns the parsed documentation comment, or nil if m has none.
func (m *Method) Doc() *javadoc.DocComment { return m.doc }

// Body returns the main description of m's comment.
func (m *Method) Body() []javadoc.Node {
	if m.doc == nil {
		return nil
	}
	return m.doc.Body
}

// BlockTags returns the block tags of m's comment.
func (m *Method) BlockTags() []javadoc.Node {
	if m.doc == nil {
		return nil
	}
	return m.doc.BlockTags
}

// HasBody reports whether m's comment has a non-blank main description.
func (m *Method) HasBody() bool {
	return !javadoc.IsBlank(m.Body())
}

// ErasedParameterTypes returns the erasure of each parameter type. Type
// variables of the method shadow those of the enclosing class.
func (m *Method) ErasedParameterTypes() []TypeModel {
	scope := append(append([]TypeParameterModel{}, m.model.TypeParameters...), m.owner.model.TypeParameters...)
	result := make([]TypeModel, len(m.model.Parameters))
	for i, p := range m.model.Parameters {
		result[i] = p.Type.Erasure(scope)
	}
	return result
}

// Key identifies m by name and erased parameter types, e.g.
// "add(java.lang.Object,int[])". Members with equal keys are
// override-equivalent.
func (m *Method) Key() string { return m.key }

// KeyIn is the key of m as seen from its subtype t: type arguments that
// t supplies for the owner's type parameters are substituted before
// erasure. Comparable<T>.compareTo(T) has the key "compareTo(p.Foo)"
// in a class Foo implementing Comparable<Foo>.
func (m *Method) KeyIn(t *Class) string {
	if t == nil || t == m.owner {
		return m.key
	}
	env := t.Bindings(m.owner)
	if len(env) == 0 {
		return m.key
	}
	// method type parameters shadow the owner's
	for _, tp := range m.model.TypeParameters {
		delete(env, tp.Name)
	}
	var scope []TypeParameterModel
	scope = append(scope, m.model.TypeParameters...)
	scope = append(scope, t.model.TypeParameters...)
	scope = append(scope, m.owner.model.TypeParameters...)
	types := make([]TypeModel, len(m.model.Parameters))
	for i, p := range m.model.Parameters {
		types[i] = p.Type.Substitute(env).Erasure(scope)
	}
	return keyOf(m.model.Name, types)
}

func (m *Method) computeKey() string {
	return keyOf(m.model.Name, m.ErasedParameterTypes())
}

func keyOf(name string, types []TypeModel) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, t := range types {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(t.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Signature renders m as it is referred to in prose, e.g.
// "scale(double, Shape)".
func (m *Method) Signature() string {
	parts := make([]string, len(m.model.Parameters))
	for i, p := range m.model.Parameters {
		parts[i] = p.Type.SimpleString()
	}
	return m.Name() + "(" + strings.Join(parts, ", ") + ")"
}

// String returns Owner#key, e.g. "java.util.List#add(java.lang.Object)".
func (m *Method) String() string {
	return m.owner.Name() + "#" + m.key
}

// IsInheritableFrom reports whether m is a member that subclass t inherits
// from m's owner.
func (m *Method) IsInheritableFrom(t *Class) bool {
	if m.owner == t {
		return true
	}
	if m.IsConstructor() || m.IsInitializer() || m.IsPrivate() {
		return false
	}
	if m.model.Visibility == VisibilityPackage && m.owner.Package() != t.Package() {
		return false
	}
	// static interface methods are not inherited
	if m.IsStatic() && m.owner.IsInterface() {
		return false
	}
	return true
}

// Overrides reports whether m overrides other: other is declared by a
// proper supertype of m's owner, is inherited there, and has the same
// name and parameter types once the type arguments m's owner supplies
// are substituted and erased.
func (m *Method) Overrides(other *Method) bool {
	if m == other || m.owner == other.owner || m.key != other.KeyIn(m.owner) {
		return false
	}
	if m.IsStatic() || other.IsStatic() || m.IsConstructor() {
		return false
	}
	if !other.IsInheritableFrom(m.owner) {
		return false
	}
	return m.owner.IsSubtypeOf(other.owner)
}

// Modifiers returns the modifiers of m in declaration order. Modifiers
// implied by an interface are left out.
func (m *Method) Modifiers() []string {
	var result []string
	switch v := m.model.Visibility; {
	case v == VisibilityPackage:
	case v == VisibilityPublic && m.owner.IsInterface():
	default:
		result = append(result, string(v))
	}
	if m.model.IsAbstract && !m.owner.IsInterface() {
		result = append(result, "abstract")
	}
	if m.model.IsDefault {
		result = append(result, "default")
	}
	if m.model.IsStatic {
		result = append(result, "static")
	}
	if m.model.IsFinal {
		result = append(result, "final")
	}
	if m.model.IsSynchronized {
		result = append(result, "synchronized")
	}
	if m.model.IsNative {
		result = append(result, "native")
	}
	return result
}

// ParameterList renders each parameter as declared. The last parameter
// of a varargs method is written with an ellipsis.
func (m *Method) ParameterList() []string {
	result := make([]string, len(m.model.Parameters))
	for i, p := range m.model.Parameters {
		if m.model.IsVarargs && i == len(result)-1 && p.Type.ArrayDepth > 0 {
			elem := p.Type
			elem.ArrayDepth--
			p.Type = elem
			result[i] = strings.TrimSpace(elem.SimpleString() + "... " + p.Name)
			continue
		}
		result[i] = p.String()
	}
	return result
}
