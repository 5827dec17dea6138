package java

import "fmt"

// Class is a type declaration linked into a Universe.
type Class struct {
	model      *ClassModel
	u          *Universe
	methods    []*Method
	superclass *Class
	interfaces []*Class
	// supertype references as written, with their type arguments
	refs map[*Class]TypeModel
}

func newClass(u *Universe, model *ClassModel) (*Class, error) {
	c := &Class{model: model, u: u}
	c.methods = make([]*Method, len(model.Methods))
	for i := range model.Methods {
		if model.Methods[i].Name == "" {
			return nil, fmt.Errorf("%w: %s: method %d has no name", ErrInvalidModel, model.Name, i)
		}
		c.methods[i] = newMethod(c, &model.Methods[i], i)
	}
	return c, nil
}

func (c *Class) link() {
	super := c.model.SuperClass
	if super == "" && c.Name() != ObjectClassName {
		switch c.model.Kind {
		case ClassKindClass, ClassKindEnum, ClassKindRecord:
			super = ObjectClassName
		}
	}
	c.refs = make(map[*Class]TypeModel)
	if super != "" {
		c.superclass = c.resolveSupertype(super)
	}
	for _, name := range c.model.Interfaces {
		if iface := c.resolveSupertype(name); iface != nil {
			c.interfaces = append(c.interfaces, iface)
		}
	}
}

// resolveSupertype looks up a supertype written as "p.List<E>" and
// remembers its type arguments.
func (c *Class) resolveSupertype(name string) *Class {
	ref, err := ParseType(name)
	if err != nil {
		ref = TypeModel{Name: name}
	}
	s := c.u.byName[ref.Name]
	if s != nil {
		c.refs[s] = ref
	}
	return s
}

func (c *Class) checkSuperclassChain() error {
	seen := map[*Class]bool{c: true}
	for s := c.superclass; s != nil; s = s.superclass {
		if seen[s] {
			return fmt.Errorf("%w: cyclic inheritance involving %s", ErrInvalidModel, c.Name())
		}
		seen[s] = true
	}
	return nil
}

func (c *Class) Model() *ClassModel       { return c.model }
func (c *Class) Universe() *Universe      { return c.u }
func (c *Class) Name() string             { return c.model.Name }
func (c *Class) SimpleName() string       { return c.model.SimpleName }
func (c *Class) Package() string          { return c.model.Package }
func (c *Class) Kind() ClassKind          { return c.model.Kind }
func (c *Class) Visibility() Visibility   { return c.model.Visibility }
func (c *Class) IsIncluded() bool         { return c.model.Included }
func (c *Class) IsPublic() bool           { return c.model.Visibility == VisibilityPublic }
func (c *Class) IsInterface() bool        { return c.model.Kind == ClassKindInterface || c.model.Kind == ClassKindAnnotation }
func (c *Class) IsFinal() bool            { return c.model.IsFinal }
func (c *Class) IsAbstract() bool         { return c.model.IsAbstract }
func (c *Class) IsDeprecated() bool       { return c.model.IsDeprecated || hasAnnotation(c.model.Annotations, deprecatedAnnotation) }
func (c *Class) String() string           { return c.model.Name }
func (c *Class) SuperclassName() string   { return c.model.SuperClass }
func (c *Class) InterfaceNames() []string { return c.model.Interfaces }

// Superclass returns the direct superclass, or nil for interfaces,
// java.lang.Object and superclasses outside the universe.
func (c *Class) Superclass() *Class {
	return c.superclass
}

// Interfaces returns the directly implemented (or, for interfaces,
// extended) interfaces in the order of the declaration's implements
// clause. Interfaces outside the universe are omitted.
func (c *Class) Interfaces() []*Class {
	return c.interfaces
}

// Methods returns the declared methods in source order. Constructors and
// initializers are not included.
func (c *Class) Methods() []*Method {
	var result []*Method
	for _, m := range c.methods {
		if !m.IsConstructor() && !m.IsInitializer() {
			result = append(result, m)
		}
	}
	return result
}

// Constructors returns the declared constructors in source order.
func (c *Class) Constructors() []*Method {
	var result []*Method
	for _, m := range c.methods {
		if m.IsConstructor() {
			result = append(result, m)
		}
	}
	return result
}

// IsReachable reports whether the type can be referred to from outside its
// own package: it is public and its module, if any, exports its package.
func (c *Class) IsReachable() bool {
	if !c.IsPublic() {
		return false
	}
	if c.model.Module == "" {
		return true
	}
	mod := c.u.Module(c.model.Module)
	if mod == nil {
		return true
	}
	return mod.ExportsPackage(c.model.Package)
}

// Supertypes returns every proper supertype of c: the superclass chain
// first, then interfaces breadth-first in declaration order. Each type
// appears once.
func (c *Class) Supertypes() []*Class {
	var result []*Class
	seen := map[*Class]bool{c: true}

	var classes []*Class
	for s := c.superclass; s != nil && !seen[s]; s = s.superclass {
		seen[s] = true
		classes = append(classes, s)
	}
	result = append(result, classes...)

	queue := append([]*Class{}, c.interfaces...)
	for _, s := range classes {
		queue = append(queue, s.interfaces...)
	}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen[next] {
			continue
		}
		seen[next] = true
		result = append(result, next)
		queue = append(queue, next.interfaces...)
	}
	return result
}

// IsSubtypeOf reports whether other is c or one of its supertypes.
func (c *Class) IsSubtypeOf(other *Class) bool {
	if c == other {
		return true
	}
	for _, s := range c.Supertypes() {
		if s == other {
			return true
		}
	}
	return false
}

// Bindings returns the types that c supplies for the type parameters of
// its supertype s, following the first inheritance path that reaches s.
// Parameters reached through a raw type or a wildcard are left unbound.
func (c *Class) Bindings(s *Class) map[string]TypeModel {
	env, _ := c.bindings(s, nil, make(map[*Class]bool))
	return env
}

func (c *Class) bindings(s *Class, env map[string]TypeModel, seen map[*Class]bool) (map[string]TypeModel, bool) {
	if c == s {
		return env, true
	}
	if seen[c] {
		return nil, false
	}
	seen[c] = true

	direct := append([]*Class(nil), c.interfaces...)
	if c.superclass != nil {
		direct = append([]*Class{c.superclass}, direct...)
	}
	for _, d := range direct {
		if found, ok := d.bindings(s, bind(d.model.TypeParameters, c.refs[d], env), seen); ok {
			return found, true
		}
	}
	return nil, false
}

func bind(params []TypeParameterModel, ref TypeModel, env map[string]TypeModel) map[string]TypeModel {
	if len(params) == 0 || len(ref.TypeArguments) != len(params) {
		return nil
	}
	result := make(map[string]TypeModel, len(params))
	for i, arg := range ref.TypeArguments {
		if arg.Type != nil {
			result[params[i].Name] = arg.Type.Substitute(env)
		}
	}
	return result
}

// MethodMatching returns the method of c that a method of subtype from
// with the given key overrides, or nil. Type arguments from supplies
// along the way are substituted before comparing.
func (c *Class) MethodMatching(key string, from *Class) *Method {
	for _, m := range c.methods {
		if m.KeyIn(from) == key {
			return m
		}
	}
	return nil
}

// DeclaredMethod returns the method of c with the given key, or nil.
func (c *Class) DeclaredMethod(key string) *Method {
	for _, m := range c.methods {
		if m.Key() == key {
			return m
		}
	}
	return nil
}
