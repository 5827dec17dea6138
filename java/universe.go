package java

import (
	"errors"
	"fmt"
	"strings"
)

// ObjectClassName is the implicit superclass of every class that does not
// name one.
const ObjectClassName = "java.lang.Object"

var (
	ErrDuplicateClass = errors.New("duplicate class")
	ErrInvalidModel   = errors.New("invalid model")
)

// Universe is a read-only view over a set of type declarations and the
// modules they belong to. It is immutable once NewUniverse returns and may
// be shared between goroutines.
type Universe struct {
	classes []*Class
	byName  map[string]*Class
	modules map[string]*ModuleModel
}

// NewUniverse links models into a class hierarchy. The models are
// normalized in place: missing simple names, packages, kinds and
// visibilities get their defaults and nested-class references are fixed
// up with ResolveInnerClassReferences.
func NewUniverse(models []*ClassModel, modules []*ModuleModel) (*Universe, error) {
	u := &Universe{
		byName:  make(map[string]*Class, len(models)),
		modules: make(map[string]*ModuleModel, len(modules)),
	}

	for _, mod := range modules {
		if mod == nil || mod.Name == "" {
			return nil, fmt.Errorf("%w: module without a name", ErrInvalidModel)
		}
		if _, dup := u.modules[mod.Name]; dup {
			return nil, fmt.Errorf("%w: module %s declared twice", ErrInvalidModel, mod.Name)
		}
		u.modules[mod.Name] = mod
	}

	for _, model := range models {
		if model == nil || model.Name == "" {
			return nil, fmt.Errorf("%w: class without a name", ErrInvalidModel)
		}
		normalizeClassModel(model)
	}
	ResolveInnerClassReferences(models)

	for _, model := range models {
		if _, dup := u.byName[model.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateClass, model.Name)
		}
		c, err := newClass(u, model)
		if err != nil {
			return nil, err
		}
		u.byName[model.Name] = c
		u.classes = append(u.classes, c)
	}

	for _, c := range u.classes {
		c.link()
	}
	for _, c := range u.classes {
		if err := c.checkSuperclassChain(); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func normalizeClassModel(model *ClassModel) {
	if model.Kind == "" {
		model.Kind = ClassKindClass
	}
	if model.Visibility == "" {
		model.Visibility = VisibilityPackage
	}
	if model.Package == "" {
		model.Package = extractPackageFromInnerClassName(model.Name)
	}
	if model.SimpleName == "" {
		model.SimpleName = extractSimpleName(model.Name)
	}
	for i := range model.Methods {
		m := &model.Methods[i]
		if m.Visibility != "" {
			continue
		}
		switch model.Kind {
		case ClassKindInterface, ClassKindAnnotation:
			m.Visibility = VisibilityPublic
		default:
			m.Visibility = VisibilityPackage
		}
	}
}

// Class returns the class with the given fully qualified name, or nil.
func (u *Universe) Class(name string) *Class {
	return u.byName[name]
}

// Classes returns every class in model order.
func (u *Universe) Classes() []*Class {
	return u.classes
}

// IncludedClasses returns the classes that are part of the documented set,
// in model order.
func (u *Universe) IncludedClasses() []*Class {
	var result []*Class
	for _, c := range u.classes {
		if c.IsIncluded() {
			result = append(result, c)
		}
	}
	return result
}

// Module returns the module with the given name, or nil.
func (u *Universe) Module(name string) *ModuleModel {
	return u.modules[name]
}

// LookupClass resolves a fully qualified or simple class name. Simple
// names must be unambiguous.
func (u *Universe) LookupClass(name string) (*Class, error) {
	if c := u.byName[name]; c != nil {
		return c, nil
	}
	if strings.Contains(name, ".") {
		return nil, fmt.Errorf("class %s not found", name)
	}
	var found []*Class
	for _, c := range u.classes {
		if c.SimpleName() == name {
			found = append(found, c)
		}
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("class %s not found", name)
	case 1:
		return found[0], nil
	}
	names := make([]string, len(found))
	for i, c := range found {
		names[i] = c.Name()
	}
	return nil, fmt.Errorf("class name %s is ambiguous: %s", name, strings.Join(names, ", "))
}
