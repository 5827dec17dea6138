package builders

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/saidoc/doclet/config"
	"github.com/dhamidi/saidoc/doclet/content"
	"github.com/dhamidi/saidoc/java"
)

// Context is shared by the builders of a documentation run. It is
// read-only once created, so builders for different types may run
// concurrently.
type Context struct {
	Universe *java.Universe
	Config   *config.Configuration
	Outline  *XMLNode
	Log      commonlog.Logger
}

// NewContext loads the outline named by cfg, falling back to the
// built-in one.
func NewContext(u *java.Universe, cfg *config.Configuration) (*Context, error) {
	outline, err := LoadOutline(cfg.Outline)
	if err != nil {
		return nil, err
	}
	return &Context{
		Universe: u,
		Config:   cfg,
		Outline:  outline,
		Log:      commonlog.GetLogger("saidoc.builders"),
	}, nil
}

// BuildClass runs the outline for t, appending the method details to
// parent through w.
func (ctx *Context) BuildClass(t *java.Class, w MethodWriter, parent content.Content) error {
	b, err := NewMethodBuilder(ctx, t, w)
	if err != nil {
		return err
	}
	return NewInterpreter(ctx.Log).BuildDetails(ctx.Outline, parent, b)
}
