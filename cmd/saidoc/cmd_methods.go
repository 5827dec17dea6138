package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/saidoc/doclet/builders"
	"github.com/dhamidi/saidoc/doclet/config"
	"github.com/dhamidi/saidoc/doclet/content"
	htmlwriter "github.com/dhamidi/saidoc/doclet/writers/html"
	termwriter "github.com/dhamidi/saidoc/doclet/writers/term"
	"github.com/dhamidi/saidoc/java"
)

func newMethodsCmd() *cobra.Command {
	opts := &docOptions{}
	cmd := &cobra.Command{
		Use:   "methods [type...]",
		Short: "Render the method details of Java types",
		Long: `Render the "Method Details" section of Java types.

Types are named by fully qualified or simple name. With no arguments every
type marked as included in the model is rendered, in model order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.configuration(cmd)
			if err != nil {
				return err
			}
			u, types, err := opts.types(args)
			if err != nil {
				return err
			}
			ctx, err := builders.NewContext(u, cfg)
			if err != nil {
				return err
			}

			pages, err := renderAll(ctx, types)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, page := range pages {
				if _, err := fmt.Fprint(out, page); err != nil {
					return err
				}
			}
			return nil
		},
	}
	opts.addFlags(cmd)
	return cmd
}

// renderAll renders every type on its own goroutine. The pages are
// returned in the order of types.
func renderAll(ctx *builders.Context, types []*java.Class) ([]string, error) {
	log.Infof("rendering %d types as %s", len(types), ctx.Config.Format)

	pages := make([]string, len(types))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, t := range types {
		g.Go(func() error {
			page, err := render(ctx, t)
			if err != nil {
				return fmt.Errorf("%s: %w", t.Name(), err)
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

// render returns the page of t, or "" when t has no methods to
// document.
func render(ctx *builders.Context, t *java.Class) (string, error) {
	cfg := ctx.Config
	if cfg.Format == "html" {
		parent := content.NewHTML()
		if err := ctx.BuildClass(t, htmlwriter.NewMethodWriter(t, cfg), parent); err != nil {
			return "", err
		}
		if parent.IsEmpty() {
			return "", nil
		}
		heading := content.Element("h1", "class", "title").AddText(title(cfg, t))
		return heading.String() + "\n" + parent.String() + "\n", nil
	}

	parent := content.NewText()
	if err := ctx.BuildClass(t, termwriter.NewMethodWriter(t), parent); err != nil {
		return "", err
	}
	if parent.IsEmpty() {
		return "", nil
	}
	page := "# " + title(cfg, t) + "\n\n" + parent.String()
	if cfg.Format == "term" {
		return termwriter.Render(cfg, page)
	}
	return page, nil
}

func title(cfg *config.Configuration, t *java.Class) string {
	kind := string(t.Kind())
	if t.Kind() == java.ClassKindAnnotation {
		kind = "annotation interface"
	}
	var sb strings.Builder
	if module := t.Model().Module; cfg.ShowModules && module != "" {
		sb.WriteString("Module " + module + " ")
	}
	sb.WriteString(strings.ToUpper(kind[:1]) + kind[1:] + " " + t.Name())
	return sb.String()
}
