package builders

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/saidoc/doclet/config"
	"github.com/dhamidi/saidoc/doclet/content"
	"github.com/dhamidi/saidoc/java"
)

var errBoom = errors.New("boom")

// recorder is a MethodWriter that logs every call and renders a compact
// text form of the details.
type recorder struct {
	calls   []string
	holders []*java.Method
	current string
	failOn  string
}

func (r *recorder) record(format string, args ...any) error {
	call := fmt.Sprintf(format, args...)
	r.calls = append(r.calls, call)
	if r.failOn != "" && strings.HasPrefix(call, r.failOn) {
		return errBoom
	}
	return nil
}

func (r *recorder) DetailsHeader(t *java.Class, _ content.Content) (content.Content, error) {
	if err := r.record("details %s", t.SimpleName()); err != nil {
		return nil, err
	}
	return content.NewText("<" + t.SimpleName() + ">"), nil
}

func (r *recorder) MemberHeader(m *java.Method, _ content.Content) (content.Content, error) {
	r.current = m.Name()
	if err := r.record("member %s", m.Name()); err != nil {
		return nil, err
	}
	return content.NewText("[" + m.Name()), nil
}

func (r *recorder) Signature(m *java.Method) (content.Content, error) {
	if err := r.record("signature %s", m.Name()); err != nil {
		return nil, err
	}
	return content.NewText(" sig"), nil
}

func (r *recorder) AddDeprecation(m *java.Method, tree content.Content) error {
	if err := r.record("deprecation %s", m.Name()); err != nil {
		return err
	}
	if m.IsDeprecated() {
		tree.AddContent(content.NewText(" deprecated"))
	}
	return nil
}

func (r *recorder) AddComments(enclosing *java.Class, holder *java.Method, tree content.Content) error {
	r.holders = append(r.holders, holder)
	if err := r.record("comments %s %s", enclosing.SimpleName(), holder.Key()); err != nil {
		return err
	}
	if holder.HasBody() {
		tree.AddContent(content.NewText(" comment"))
	}
	return nil
}

func (r *recorder) AddTags(m *java.Method, tree content.Content) error {
	if err := r.record("tags %s", m.Name()); err != nil {
		return err
	}
	if len(m.BlockTags()) > 0 {
		tree.AddContent(content.NewText(" tags"))
	}
	return nil
}

func (r *recorder) FinalizeMember(tree content.Content, isLast bool) (content.Content, error) {
	if err := r.record("finalize %s last=%v", r.current, isLast); err != nil {
		return nil, err
	}
	tree.AddContent(content.NewText("]"))
	return tree, nil
}

func (r *recorder) FinalizeDetails(details content.Content) (content.Content, error) {
	if err := r.record("finalize details"); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *recorder) callsWithPrefix(prefix string) []string {
	var result []string
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			result = append(result, c)
		}
	}
	return result
}

func newTestContext(t *testing.T, cfg *config.Configuration) *Context {
	t.Helper()
	u, err := java.LoadModelFiles("testdata/pages.yaml")
	require.NoError(t, err)
	ctx, err := NewContext(u, cfg)
	require.NoError(t, err)
	return ctx
}

func build(t *testing.T, ctx *Context, class string, w MethodWriter) (*content.Text, error) {
	t.Helper()
	b, err := NewMethodBuilder(ctx, ctx.Universe.Class(class), w)
	require.NoError(t, err)
	parent := content.NewText()
	return parent, b.BuildMethodDoc(ctx.Outline.Find("methodDoc"), parent)
}

func TestSourceOrder(t *testing.T) {
	ctx := newTestContext(t, config.Default())
	rec := &recorder{}

	parent, err := build(t, ctx, "pages.Pair", rec)
	require.NoError(t, err)

	assert.Equal(t, []string{"member b", "member a"}, rec.callsWithPrefix("member"))
	assert.Equal(t, []string{"finalize b last=false", "finalize a last=true", "finalize details"}, rec.callsWithPrefix("finalize"))
	assert.Equal(t, "<Pair>[b sig comment][a sig comment]", parent.String())
}

func TestSortedOrder(t *testing.T) {
	cfg := config.Default()
	cfg.SortedMethodDetails = true
	ctx := newTestContext(t, cfg)
	rec := &recorder{}

	parent, err := build(t, ctx, "pages.Pair", rec)
	require.NoError(t, err)

	assert.Equal(t, []string{"member a", "member b"}, rec.callsWithPrefix("member"))
	assert.Equal(t, []string{"finalize a last=false", "finalize b last=true", "finalize details"}, rec.callsWithPrefix("finalize"))
	assert.Equal(t, "<Pair>[a sig comment][b sig comment]", parent.String())
}

func TestSectionOrderFollowsOutline(t *testing.T) {
	ctx := newTestContext(t, config.Default())
	rec := &recorder{}

	_, err := build(t, ctx, "pages.Printable", rec)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"details Printable",
		"member toString",
		"signature toString",
		"deprecation toString",
		"comments Object toString()",
		"tags toString",
		"finalize toString last=false",
		"member old",
		"signature old",
		"deprecation old",
		"comments Printable old()",
		"tags old",
		"finalize old last=true",
		"finalize details",
	}, rec.calls)
}

func TestCommentsInheritedFromObject(t *testing.T) {
	ctx := newTestContext(t, config.Default())
	rec := &recorder{}

	_, err := build(t, ctx, "pages.Printable", rec)
	require.NoError(t, err)

	require.NotEmpty(t, rec.holders)
	holder := rec.holders[0]
	assert.Equal(t, java.ObjectClassName, holder.Owner().Name())
	assert.Equal(t, "toString", holder.Name())
}

func TestCommentsWithOnlyTagsAreInherited(t *testing.T) {
	ctx := newTestContext(t, config.Default())
	rec := &recorder{}

	parent, err := build(t, ctx, "pages.Tagged", rec)
	require.NoError(t, err)

	assert.Equal(t, []string{"comments Object toString()"}, rec.callsWithPrefix("comments"))
	assert.Equal(t, "<Tagged>[toString sig comment tags]", parent.String())
}

func TestDeprecatedWithoutTags(t *testing.T) {
	ctx := newTestContext(t, config.Default())
	rec := &recorder{}

	parent, err := build(t, ctx, "pages.Printable", rec)
	require.NoError(t, err)

	assert.Contains(t, parent.String(), "[old sig deprecated comment]")
	assert.NotContains(t, parent.String(), "tags")
	assert.Contains(t, rec.calls, "tags old")
}

func TestNoComment(t *testing.T) {
	cfg := config.Default()
	cfg.NoComment = true
	ctx := newTestContext(t, cfg)
	rec := &recorder{}

	parent, err := build(t, ctx, "pages.Pair", rec)
	require.NoError(t, err)

	assert.Empty(t, rec.callsWithPrefix("comments"))
	assert.Len(t, rec.callsWithPrefix("signature"), 2)
	assert.Len(t, rec.callsWithPrefix("deprecation"), 2)
	assert.Len(t, rec.callsWithPrefix("tags"), 2)
	assert.Equal(t, "<Pair>[b sig][a sig]", parent.String())
}

func TestNoMembers(t *testing.T) {
	ctx := newTestContext(t, config.Default())
	rec := &recorder{}

	b, err := NewMethodBuilder(ctx, ctx.Universe.Class("pages.Empty"), rec)
	require.NoError(t, err)
	assert.False(t, b.HasMembersToDocument())
	assert.Empty(t, b.Members())

	parent := content.NewText()
	require.NoError(t, b.BuildMethodDoc(ctx.Outline.Find("methodDoc"), parent))
	assert.Empty(t, rec.calls)
	assert.True(t, parent.IsEmpty())
}

func TestNilWriter(t *testing.T) {
	ctx := newTestContext(t, config.Default())

	b, err := NewMethodBuilder(ctx, ctx.Universe.Class("pages.Pair"), nil)
	require.NoError(t, err)
	assert.True(t, b.HasMembersToDocument())

	parent := content.NewText()
	require.NoError(t, b.BuildMethodDoc(ctx.Outline.Find("methodDoc"), parent))
	assert.True(t, parent.IsEmpty())
}

func TestWriterErrorsPropagate(t *testing.T) {
	for _, op := range []string{"details", "member", "signature", "deprecation", "comments", "tags", "finalize a", "finalize details"} {
		t.Run(op, func(t *testing.T) {
			ctx := newTestContext(t, config.Default())
			rec := &recorder{failOn: op}

			parent, err := build(t, ctx, "pages.Pair", rec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errBoom))
			assert.True(t, parent.IsEmpty())
		})
	}
}

func TestIsLastExactlyOnce(t *testing.T) {
	for _, sorted := range []bool{false, true} {
		cfg := config.Default()
		cfg.SortedMethodDetails = sorted
		ctx := newTestContext(t, cfg)

		for _, c := range ctx.Universe.IncludedClasses() {
			rec := &recorder{}
			_, err := build(t, ctx, c.Name(), rec)
			require.NoError(t, err)

			var last int
			for _, call := range rec.callsWithPrefix("finalize") {
				if strings.HasSuffix(call, "last=true") {
					last++
				}
			}
			b, err := NewMethodBuilder(ctx, c, rec)
			require.NoError(t, err)
			if b.HasMembersToDocument() {
				assert.Equal(t, 1, last, c.Name())
			} else {
				assert.Zero(t, last, c.Name())
			}
		}
	}
}

func TestForeignTypeIsInconsistent(t *testing.T) {
	ctx := newTestContext(t, config.Default())
	other, err := java.NewUniverse([]*java.ClassModel{{Name: "pages.Pair"}}, nil)
	require.NoError(t, err)

	_, err = NewMethodBuilder(ctx, other.Class("pages.Pair"), &recorder{})
	assert.ErrorIs(t, err, ErrModelInconsistent)

	_, err = NewMethodBuilder(ctx, nil, &recorder{})
	assert.ErrorIs(t, err, ErrModelInconsistent)
}

func TestBuildClassWithCustomOutline(t *testing.T) {
	cfg := config.Default()
	cfg.Outline = "testdata/reversed.xml"
	ctx := newTestContext(t, cfg)
	rec := &recorder{}

	parent := content.NewText()
	require.NoError(t, ctx.BuildClass(ctx.Universe.Class("pages.Pair"), rec, parent))

	assert.Equal(t, []string{
		"details Pair",
		"member b",
		"tags b",
		"signature b",
		"comments Pair b(int)",
		"finalize b last=false",
		"member a",
		"tags a",
		"signature a",
		"comments Pair a()",
		"finalize a last=true",
		"finalize details",
	}, rec.calls)
	assert.Equal(t, "<Pair>[b sig comment][a sig comment]", parent.String())
}

func TestBuildClassWithWrappedMethodDoc(t *testing.T) {
	cfg := config.Default()
	cfg.Outline = "testdata/wrapped.xml"
	ctx := newTestContext(t, cfg)
	rec := &recorder{}

	parent := content.NewText()
	require.NoError(t, ctx.BuildClass(ctx.Universe.Class("pages.Pair"), rec, parent))
	assert.Equal(t, "<Pair>[b sig comment][a sig comment]", parent.String())
	assert.NotContains(t, rec.calls, "tags b")
	assert.Len(t, rec.callsWithPrefix("details"), 1)
}

func TestBuildClassWithDefaultOutline(t *testing.T) {
	ctx := newTestContext(t, config.Default())
	rec := &recorder{}

	parent := content.NewText()
	require.NoError(t, ctx.BuildClass(ctx.Universe.Class("pages.Pair"), rec, parent))
	assert.Equal(t, "<Pair>[b sig comment][a sig comment]", parent.String())
}

func TestMembersFor(t *testing.T) {
	ctx := newTestContext(t, config.Default())
	b, err := NewMethodBuilder(ctx, ctx.Universe.Class("pages.Pair"), nil)
	require.NoError(t, err)

	inherited := b.MembersFor(ctx.Universe.Class(java.ObjectClassName))
	require.Len(t, inherited, 1)
	assert.Equal(t, "toString", inherited[0].Name())
	assert.Same(t, b.VisibleMemberMap(), b.VisibleMemberMap())
	assert.Equal(t, "MethodDetails", b.Name())
}
