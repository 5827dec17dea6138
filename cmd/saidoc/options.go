package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/saidoc/doclet/config"
	"github.com/dhamidi/saidoc/java"
)

// docOptions are the flags shared by the commands that read a model.
type docOptions struct {
	model       []string
	config      string
	visibility  string
	outline     string
	format      string
	style       string
	sorted      bool
	noComment   bool
	html5       bool
	showModules bool
	wordWrap    int
}

func (o *docOptions) addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSliceVarP(&o.model, "model", "m", nil, "model file(s) describing the types (required)")
	flags.StringVarP(&o.config, "config", "c", "", "configuration file")
	flags.StringVar(&o.visibility, "visibility", "", "least visible members to document: public, protected, package or private")
	flags.StringVar(&o.outline, "outline", "", "outline file replacing the built-in layout")
	flags.StringVarP(&o.format, "format", "f", "", "output format: html, markdown or term")
	flags.StringVar(&o.style, "style", "", "glamour style for the term format")
	flags.BoolVar(&o.sorted, "sorted", false, "list method details by name")
	flags.BoolVar(&o.noComment, "nocomment", false, "omit member descriptions")
	flags.BoolVar(&o.html5, "html5", false, "use HTML5 markup")
	flags.BoolVar(&o.showModules, "show-modules", false, "name the module of each type")
	flags.IntVar(&o.wordWrap, "word-wrap", 0, "wrap term output at this column")
	_ = cmd.MarkFlagRequired("model")
}

// configuration loads the configuration file, if any, and applies the
// flags that were set on the command line.
func (o *docOptions) configuration(cmd *cobra.Command) (*config.Configuration, error) {
	cfg := config.Default()
	if o.config != "" {
		loaded, err := config.Load(o.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("visibility") {
		cfg.Visibility = java.Visibility(o.visibility)
	}
	if flags.Changed("outline") {
		cfg.Outline = o.outline
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("style") {
		cfg.Style = o.style
	}
	if flags.Changed("sorted") {
		cfg.SortedMethodDetails = o.sorted
	}
	if flags.Changed("nocomment") {
		cfg.NoComment = o.noComment
	}
	if flags.Changed("html5") {
		cfg.HTML5 = o.html5
	}
	if flags.Changed("show-modules") {
		cfg.ShowModules = o.showModules
	}
	if flags.Changed("word-wrap") {
		cfg.WordWrap = o.wordWrap
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// types returns the named types, or every included type when names is
// empty.
func (o *docOptions) types(names []string) (*java.Universe, []*java.Class, error) {
	u, err := java.LoadModelFiles(o.model...)
	if err != nil {
		return nil, nil, fmt.Errorf("load model: %w", err)
	}
	if len(names) == 0 {
		return u, u.IncludedClasses(), nil
	}

	types := make([]*java.Class, 0, len(names))
	for _, name := range names {
		t, err := u.LookupClass(name)
		if err != nil {
			return nil, nil, err
		}
		types = append(types, t)
	}
	return u, types, nil
}
