// Package config holds the options that steer documentation output.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/saidoc/java"
)

// Configuration is shared read-only by every builder and writer of a run.
type Configuration struct {
	// Visibility is the least accessible member visibility that is
	// documented.
	Visibility java.Visibility `yaml:"visibility" validate:"required,oneof=public protected package private"`

	// NoComment suppresses the description of each member. Signatures,
	// deprecation notes and tags are still emitted.
	NoComment bool `yaml:"nocomment"`

	// SortedMethodDetails lists members by name instead of source order.
	SortedMethodDetails bool `yaml:"sortedMethodDetails"`

	// HTML5 selects section-based markup in the HTML writer.
	HTML5 bool `yaml:"html5"`

	// ShowModules names the module of each documented type in its heading.
	ShowModules bool `yaml:"showModules"`

	// Outline is the path of an outline file replacing the built-in
	// layout. Empty means the built-in layout.
	Outline string `yaml:"outline,omitempty" validate:"omitempty,endswith=.xml"`

	// Format is the output format of the command line tool.
	Format string `yaml:"format" validate:"required,oneof=html markdown term"`

	// Style is a glamour style name or path used by the term format.
	Style string `yaml:"style,omitempty"`

	// WordWrap is the column at which term output is wrapped.
	WordWrap int `yaml:"wordWrap" validate:"gte=0,lte=400"`
}

// Default returns the configuration used when no file is given.
func Default() *Configuration {
	return &Configuration{
		Visibility: java.VisibilityProtected,
		Format:     "html",
		WordWrap:   80,
	}
}

// Load reads a YAML configuration file. Keys missing from the file keep
// their default values.
func Load(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports every invalid field at once.
func (c *Configuration) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = describe(fe)
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "endswith":
		return fmt.Sprintf("%s must end with %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
}

// Includes reports whether a member with visibility v passes the
// visibility threshold.
func (c *Configuration) Includes(v java.Visibility) bool {
	return v.Rank() <= c.Visibility.Rank()
}
