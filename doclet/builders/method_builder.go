// Package builders assembles the method details of a type page from an
// outline, a visible member map and a writer.
package builders

import (
	"errors"
	"fmt"

	"github.com/dhamidi/saidoc/doclet/content"
	"github.com/dhamidi/saidoc/doclet/docfinder"
	"github.com/dhamidi/saidoc/doclet/visible"
	"github.com/dhamidi/saidoc/java"
)

// ErrModelInconsistent is returned when the type hierarchy contradicts
// itself, for example when a documented member belongs to a type that is
// not a supertype of the page's type.
var ErrModelInconsistent = errors.New("model inconsistent")

// MethodWriter renders the method details of one type. Every tree a
// writer returns is owned by the builder until it is appended to its
// parent.
type MethodWriter interface {
	// DetailsHeader returns a tree for the details of t holding the
	// section heading. parent is where the finished details will be
	// appended.
	DetailsHeader(t *java.Class, parent content.Content) (content.Content, error)

	// MemberHeader returns a tree for m holding its heading.
	MemberHeader(m *java.Method, details content.Content) (content.Content, error)

	Signature(m *java.Method) (content.Content, error)

	// AddDeprecation appends the deprecation note of m, if m is
	// deprecated.
	AddDeprecation(m *java.Method, tree content.Content) error

	// AddComments appends the description of holder, whose comment
	// documents the current member. enclosing is the type declaring
	// holder.
	AddComments(enclosing *java.Class, holder *java.Method, tree content.Content) error

	// AddTags appends the block tags of m, if it has any to show.
	AddTags(m *java.Method, tree content.Content) error

	FinalizeMember(tree content.Content, isLast bool) (content.Content, error)
	FinalizeDetails(details content.Content) (content.Content, error)
}

// MethodBuilder emits the "Method Details" section of one type.
type MethodBuilder struct {
	ctx     *Context
	typ     *java.Class
	writer  MethodWriter
	members *visible.MemberMap
	interp  *Interpreter
}

// NewMethodBuilder computes the visible methods of t. A nil writer is
// allowed; such a builder emits nothing.
func NewMethodBuilder(ctx *Context, t *java.Class, w MethodWriter) (*MethodBuilder, error) {
	if t == nil || ctx.Universe.Class(t.Name()) != t {
		return nil, fmt.Errorf("%w: type is not part of the universe", ErrModelInconsistent)
	}
	b := &MethodBuilder{
		ctx:     ctx,
		typ:     t,
		writer:  w,
		members: visible.New(t, visible.Methods, ctx.Config),
		interp:  NewInterpreter(ctx.Log),
	}
	b.interp.Register("signature", b.BuildSignature)
	b.interp.Register("deprecation", b.BuildDeprecationInfo)
	b.interp.Register("comments", b.BuildMethodComments)
	b.interp.Register("tags", b.BuildTagInfo)
	return b, nil
}

func (b *MethodBuilder) Name() string { return "MethodDetails" }

func (b *MethodBuilder) Type() *java.Class                    { return b.typ }
func (b *MethodBuilder) Writer() MethodWriter                 { return b.writer }
func (b *MethodBuilder) VisibleMemberMap() *visible.MemberMap { return b.members }

// HasMembersToDocument reports whether the details section is non-empty.
func (b *MethodBuilder) HasMembersToDocument() bool {
	return b.members.HasMembers()
}

// Members returns the documented methods in the configured order.
func (b *MethodBuilder) Members() []*java.Method {
	return b.members.Members(b.ctx.Config.SortedMethodDetails)
}

// MembersFor returns the methods inherited from s.
func (b *MethodBuilder) MembersFor(s *java.Class) []*java.Method {
	return b.members.MembersFor(s)
}

// Build handles the MethodDetails element of an outline. Elements other
// than methodDoc are searched for a nested methodDoc.
func (b *MethodBuilder) Build(node *XMLNode, parent content.Content) error {
	for _, child := range node.Children {
		var err error
		switch {
		case child.Name == "methodDoc":
			err = b.BuildMethodDoc(child, parent)
		case len(child.Children) > 0:
			err = b.Build(child, parent)
		default:
			b.ctx.Log.Debugf("ignoring outline element %q", child.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// BuildMethodDoc appends the details of every documented method to
// parent. For each method the sections named by node's children are
// emitted in outline order.
func (b *MethodBuilder) BuildMethodDoc(node *XMLNode, parent content.Content) error {
	if b.writer == nil || !b.members.HasMembers() {
		return nil
	}

	details, err := b.writer.DetailsHeader(b.typ, parent)
	if err != nil {
		return err
	}
	members := b.Members()
	for i, m := range members {
		if err := b.checkOwner(m); err != nil {
			return err
		}
		tree, err := b.writer.MemberHeader(m, details)
		if err != nil {
			return err
		}
		if err := b.interp.BuildMember(node, m, tree); err != nil {
			return err
		}
		finished, err := b.writer.FinalizeMember(tree, i == len(members)-1)
		if err != nil {
			return err
		}
		details.AddContent(finished)
	}

	finished, err := b.writer.FinalizeDetails(details)
	if err != nil {
		return err
	}
	parent.AddContent(finished)
	return nil
}

func (b *MethodBuilder) checkOwner(m *java.Method) error {
	owner := m.Owner()
	if owner == nil || !b.typ.IsSubtypeOf(owner) {
		return fmt.Errorf("%w: %s is not a member of %s", ErrModelInconsistent, m, b.typ.Name())
	}
	return nil
}

// BuildSignature appends the signature of m.
func (b *MethodBuilder) BuildSignature(_ *XMLNode, m *java.Method, tree content.Content) error {
	sig, err := b.writer.Signature(m)
	if err != nil {
		return err
	}
	tree.AddContent(sig)
	return nil
}

// BuildDeprecationInfo appends the deprecation note of m.
func (b *MethodBuilder) BuildDeprecationInfo(_ *XMLNode, m *java.Method, tree content.Content) error {
	return b.writer.AddDeprecation(m, tree)
}

// BuildMethodComments appends the description of m. A method without a
// description of its own is documented by the nearest overridden method
// that has one.
func (b *MethodBuilder) BuildMethodComments(_ *XMLNode, m *java.Method, tree content.Content) error {
	if b.ctx.Config.NoComment {
		return nil
	}
	holder := m
	if !m.HasBody() {
		if out := docfinder.Search(m); out.Found() {
			holder = out.Holder
		}
	}
	enclosing := holder.Owner()
	if enclosing == nil {
		return fmt.Errorf("%w: %s has no enclosing type", ErrModelInconsistent, holder)
	}
	return b.writer.AddComments(enclosing, holder, tree)
}

// BuildTagInfo appends the block tags of m.
func (b *MethodBuilder) BuildTagInfo(_ *XMLNode, m *java.Method, tree content.Content) error {
	return b.writer.AddTags(m, tree)
}
