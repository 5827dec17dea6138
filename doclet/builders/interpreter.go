package builders

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/saidoc/doclet/content"
	"github.com/dhamidi/saidoc/java"
)

// SectionFunc emits one section of a member's documentation into tree.
type SectionFunc func(node *XMLNode, m *java.Method, tree content.Content) error

// DetailBuilder emits a whole section of a page, such as the method
// details, when the interpreter reaches the element carrying its name.
type DetailBuilder interface {
	Name() string
	Build(node *XMLNode, parent content.Content) error
}

// Interpreter walks an outline and calls the operation registered for
// each element name. Elements without a registered operation are
// descended into; unknown leaves are skipped.
type Interpreter struct {
	sections map[string]SectionFunc
	log      commonlog.Logger
}

func NewInterpreter(log commonlog.Logger) *Interpreter {
	return &Interpreter{
		sections: make(map[string]SectionFunc),
		log:      log,
	}
}

// Register binds an element name to a member section.
func (in *Interpreter) Register(name string, fn SectionFunc) {
	in.sections[name] = fn
}

// BuildMember runs the member sections named by node's children, in
// outline order.
func (in *Interpreter) BuildMember(node *XMLNode, m *java.Method, tree content.Content) error {
	for _, child := range node.Children {
		if fn, ok := in.sections[child.Name]; ok {
			if err := fn(child, m, tree); err != nil {
				return err
			}
			continue
		}
		if len(child.Children) > 0 {
			if err := in.BuildMember(child, m, tree); err != nil {
				return err
			}
			continue
		}
		in.log.Debugf("ignoring outline element %q", child.Name)
	}
	return nil
}

// BuildDetails walks the outline from node and hands every element named
// after one of builders to that builder, together with parent.
func (in *Interpreter) BuildDetails(node *XMLNode, parent content.Content, builders ...DetailBuilder) error {
	for _, b := range builders {
		if b.Name() == node.Name {
			return b.Build(node, parent)
		}
	}
	if len(node.Children) == 0 {
		in.log.Debugf("ignoring outline element %q", node.Name)
		return nil
	}
	for _, child := range node.Children {
		if err := in.BuildDetails(child, parent, builders...); err != nil {
			return err
		}
	}
	return nil
}
