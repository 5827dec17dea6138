package java

import (
	"fmt"
	"sort"
	"strings"
)

const deprecatedAnnotation = "java.lang.Deprecated"

func hasAnnotation(anns []AnnotationModel, name string) bool {
	for _, a := range anns {
		if a.Type == name || a.Type == extractSimpleName(name) {
			return true
		}
	}
	return false
}

// String renders the annotation in source form, e.g.
// `@Deprecated(since = "9", forRemoval = true)`.
func (a AnnotationModel) String() string {
	var sb strings.Builder
	sb.WriteString("@")
	sb.WriteString(extractSimpleName(a.Type))
	if len(a.Values) == 0 {
		return sb.String()
	}

	names := make([]string, 0, len(a.Values))
	for name := range a.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	sb.WriteString("(")
	if len(names) == 1 && names[0] == "value" {
		sb.WriteString(annotationValueString(a.Values["value"]))
	} else {
		for i, name := range names {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(name)
			sb.WriteString(" = ")
			sb.WriteString(annotationValueString(a.Values[name]))
		}
	}
	sb.WriteString(")")
	return sb.String()
}

func annotationValueString(v any) string {
	switch val := v.(type) {
	case string:
		return fmt.Sprintf("%q", val)
	case []any:
		parts := make([]string, len(val))
		for i, elem := range val {
			parts[i] = annotationValueString(elem)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case nil:
		return "null"
	default:
		return fmt.Sprint(val)
	}
}

// IsDocumented reports whether the annotation appears in generated
// signatures. Only a fixed set of well-known documented annotations is
// recognized.
func (a AnnotationModel) IsDocumented() bool {
	switch a.Type {
	case deprecatedAnnotation, "Deprecated",
		"java.lang.FunctionalInterface", "FunctionalInterface",
		"java.lang.SafeVarargs", "SafeVarargs":
		return true
	}
	return false
}
