package java

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPackage   Visibility = "package"
	VisibilityPrivate   Visibility = "private"
)

// Rank orders visibilities from most to least accessible.
// Unknown values rank as package.
func (v Visibility) Rank() int {
	switch v {
	case VisibilityPublic:
		return 0
	case VisibilityProtected:
		return 1
	case VisibilityPrivate:
		return 3
	}
	return 2
}

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
	ClassKindRecord     ClassKind = "record"
)

// ClassModel is the raw description of a type declaration as it is read
// from a model file. It is wrapped by Class once a Universe is built.
type ClassModel struct {
	Name           string               `yaml:"name"`
	SimpleName     string               `yaml:"simpleName,omitempty"`
	Package        string               `yaml:"package,omitempty"`
	Module         string               `yaml:"module,omitempty"`
	SuperClass     string               `yaml:"superClass,omitempty"`
	Interfaces     []string             `yaml:"interfaces,omitempty"`
	Visibility     Visibility           `yaml:"visibility,omitempty"`
	Kind           ClassKind            `yaml:"kind,omitempty"`
	IsFinal        bool                 `yaml:"final,omitempty"`
	IsAbstract     bool                 `yaml:"abstract,omitempty"`
	IsStatic       bool                 `yaml:"static,omitempty"`
	IsDeprecated   bool                 `yaml:"deprecated,omitempty"`
	Included       bool                 `yaml:"included,omitempty"`
	Javadoc        string               `yaml:"javadoc,omitempty"`
	Annotations    []AnnotationModel    `yaml:"annotations,omitempty"`
	EnclosingClass string               `yaml:"enclosingClass,omitempty"`
	InnerClasses   []InnerClassModel    `yaml:"innerClasses,omitempty"`
	Methods        []MethodModel        `yaml:"methods,omitempty"`
	TypeParameters []TypeParameterModel `yaml:"typeParameters,omitempty"`
}

type MethodModel struct {
	Name           string               `yaml:"name"`
	ReturnType     TypeModel            `yaml:"returnType,omitempty"`
	Parameters     []ParameterModel     `yaml:"parameters,omitempty"`
	Visibility     Visibility           `yaml:"visibility,omitempty"`
	IsStatic       bool                 `yaml:"static,omitempty"`
	IsFinal        bool                 `yaml:"final,omitempty"`
	IsAbstract     bool                 `yaml:"abstract,omitempty"`
	IsSynchronized bool                 `yaml:"synchronized,omitempty"`
	IsNative       bool                 `yaml:"native,omitempty"`
	IsVarargs      bool                 `yaml:"varargs,omitempty"`
	IsDefault      bool                 `yaml:"default,omitempty"`
	IsDeprecated   bool                 `yaml:"deprecated,omitempty"`
	Javadoc        string               `yaml:"javadoc,omitempty"`
	Annotations    []AnnotationModel    `yaml:"annotations,omitempty"`
	Exceptions     []string             `yaml:"exceptions,omitempty"`
	TypeParameters []TypeParameterModel `yaml:"typeParameters,omitempty"`
}

type ParameterModel struct {
	Name        string            `yaml:"name,omitempty"`
	Type        TypeModel         `yaml:"type"`
	IsFinal     bool              `yaml:"final,omitempty"`
	Annotations []AnnotationModel `yaml:"annotations,omitempty"`
}

type TypeModel struct {
	Name          string              `yaml:"name"`
	ArrayDepth    int                 `yaml:"arrayDepth,omitempty"`
	TypeArguments []TypeArgumentModel `yaml:"typeArguments,omitempty"`
}

func (t TypeModel) IsPrimitive() bool {
	if t.ArrayDepth > 0 {
		return false
	}
	switch t.Name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

func (t TypeModel) IsArray() bool {
	return t.ArrayDepth > 0
}

func (t TypeModel) IsVoid() bool {
	return t.Name == "void" && t.ArrayDepth == 0
}

type TypeArgumentModel struct {
	Type       *TypeModel `yaml:"type,omitempty"`
	IsWildcard bool       `yaml:"wildcard,omitempty"`
	BoundKind  string     `yaml:"boundKind,omitempty"` // "extends", "super", or "" for unbounded
	Bound      *TypeModel `yaml:"bound,omitempty"`
}

type TypeParameterModel struct {
	Name   string      `yaml:"name"`
	Bounds []TypeModel `yaml:"bounds,omitempty"`
}

type AnnotationModel struct {
	Type   string         `yaml:"type"`
	Values map[string]any `yaml:"values,omitempty"`
}

type InnerClassModel struct {
	InnerClass string     `yaml:"innerClass"`
	OuterClass string     `yaml:"outerClass"`
	InnerName  string     `yaml:"innerName"`
	Visibility Visibility `yaml:"visibility,omitempty"`
	IsStatic   bool       `yaml:"static,omitempty"`
}

type ModuleModel struct {
	Name     string              `yaml:"name"`
	IsOpen   bool                `yaml:"open,omitempty"`
	Javadoc  string              `yaml:"javadoc,omitempty"`
	Requires []RequiresDirective `yaml:"requires,omitempty"`
	Exports  []ExportsDirective  `yaml:"exports,omitempty"`
}

type RequiresDirective struct {
	ModuleName   string `yaml:"module"`
	IsTransitive bool   `yaml:"transitive,omitempty"`
	IsStatic     bool   `yaml:"static,omitempty"`
}

type ExportsDirective struct {
	PackageName string   `yaml:"package"`
	ToModules   []string `yaml:"to,omitempty"`
}

// ExportsPackage reports whether the module exports pkg to every reader.
// Qualified exports do not count.
func (m *ModuleModel) ExportsPackage(pkg string) bool {
	for _, e := range m.Exports {
		if e.PackageName == pkg && len(e.ToModules) == 0 {
			return true
		}
	}
	return false
}
