package java

import (
	"strings"
)

// ResolveInnerClassReferences rewrites type references of the form
// "pkg.Inner" into "pkg.Outer.Inner" when Inner is a known nested class
// of that package.
//
// Model files written by hand or produced from single compilation units
// often name a nested type by package and simple name only. Supertype
// lookups in a Universe are by fully qualified name, so these references
// have to be fixed up before the class hierarchy is linked.
func ResolveInnerClassReferences(classes []*ClassModel) {
	inner := buildInnerClassMap(classes)
	if len(inner) == 0 {
		return
	}
	for _, model := range classes {
		fixClassModelTypes(model, inner)
	}
}

// buildInnerClassMap maps package -> simple name -> nested class name.
func buildInnerClassMap(classes []*ClassModel) map[string]map[string]string {
	names := make(map[string]bool)
	for _, model := range classes {
		for _, ic := range model.InnerClasses {
			names[ic.InnerClass] = true
		}
		if model.EnclosingClass != "" || isInnerClass(model) {
			names[model.Name] = true
		}
	}

	result := make(map[string]map[string]string)
	for fullName := range names {
		pkg := extractPackageFromInnerClassName(fullName)
		if pkg == "" {
			continue
		}
		if result[pkg] == nil {
			result[pkg] = make(map[string]string)
		}
		result[pkg][extractSimpleName(fullName)] = fullName
	}
	return result
}

// extractPackageFromInnerClassName returns the leading lowercase
// components of a qualified name: "a.b.Outer.Inner" -> "a.b".
func extractPackageFromInnerClassName(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		if len(part) > 0 && part[0] >= 'A' && part[0] <= 'Z' {
			return strings.Join(parts[:i], ".")
		}
	}
	if len(parts) > 1 {
		return strings.Join(parts[:len(parts)-1], ".")
	}
	return ""
}

func extractSimpleName(fullName string) string {
	if i := strings.LastIndex(fullName, "."); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}

func isInnerClass(model *ClassModel) bool {
	if model.Package == "" {
		return false
	}
	return strings.Contains(strings.TrimPrefix(model.Name, model.Package+"."), ".")
}

func fixClassModelTypes(model *ClassModel, inner map[string]map[string]string) {
	if model.SuperClass != "" {
		model.SuperClass = fixSupertypeName(model.SuperClass, inner)
	}
	for i := range model.Interfaces {
		model.Interfaces[i] = fixSupertypeName(model.Interfaces[i], inner)
	}
	for i := range model.TypeParameters {
		fixTypeParameter(&model.TypeParameters[i], inner)
	}

	for i := range model.Methods {
		m := &model.Methods[i]
		fixType(&m.ReturnType, inner)
		for j := range m.Parameters {
			fixType(&m.Parameters[j].Type, inner)
		}
		for j := range m.Exceptions {
			m.Exceptions[j] = fixTypeName(m.Exceptions[j], inner)
		}
		for j := range m.TypeParameters {
			fixTypeParameter(&m.TypeParameters[j], inner)
		}
	}
}

func fixTypeParameter(tp *TypeParameterModel, inner map[string]map[string]string) {
	for i := range tp.Bounds {
		fixType(&tp.Bounds[i], inner)
	}
}

func fixType(t *TypeModel, inner map[string]map[string]string) {
	t.Name = fixTypeName(t.Name, inner)
	for i := range t.TypeArguments {
		if t.TypeArguments[i].Type != nil {
			fixType(t.TypeArguments[i].Type, inner)
		}
		if t.TypeArguments[i].Bound != nil {
			fixType(t.TypeArguments[i].Bound, inner)
		}
	}
}

// fixSupertypeName fixes a supertype that may carry type arguments, as
// in "p.Outer.Inner<p.Outer.Key>".
func fixSupertypeName(name string, inner map[string]map[string]string) string {
	t, err := ParseType(name)
	if err != nil || len(t.TypeArguments) == 0 {
		return fixTypeName(name, inner)
	}
	fixType(&t, inner)
	return t.String()
}

func fixTypeName(typeName string, inner map[string]map[string]string) string {
	lastDot := strings.LastIndex(typeName, ".")
	if lastDot == -1 {
		return typeName
	}
	if byName, ok := inner[typeName[:lastDot]]; ok {
		if fullName, ok := byName[typeName[lastDot+1:]]; ok {
			return fullName
		}
	}
	return typeName
}
