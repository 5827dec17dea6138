package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOutlineCommand(t *testing.T) {
	out, err := run(t, "outline")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Doclet\n  ClassDoc\n    MethodDetails\n"), out)
}

func TestMethodsAllIncludedTypes(t *testing.T) {
	out, err := run(t, "methods", "--model", "testdata/library.yaml")
	require.NoError(t, err)

	source := strings.Index(out, `<h1 class="title">Interface lib.Source</h1>`)
	buffer := strings.Index(out, `<h1 class="title">Class lib.Buffer</h1>`)
	require.GreaterOrEqual(t, source, 0, out)
	require.GreaterOrEqual(t, buffer, 0, out)
	assert.Less(t, source, buffer)
	assert.NotContains(t, out, "java.lang.Object</h1>")
	assert.Contains(t, out, `class="blockList"`)
}

func TestMethodsMarkdown(t *testing.T) {
	out, err := run(t, "methods", "-m", "testdata/library.yaml", "--format", "markdown", "Buffer")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Class lib.Buffer\n\n## Method Details\n\n### read\n"), out)
	assert.NotContains(t, out, "lib.Source")
}

func TestMethodsFlagsOverrideConfig(t *testing.T) {
	out, err := run(t, "methods", "-m", "testdata/library.yaml", "--config", "testdata/markdown.yaml", "lib.Buffer")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "### close"), strings.Index(out, "### read"))

	out, err = run(t, "methods", "-m", "testdata/library.yaml", "--config", "testdata/markdown.yaml",
		"--sorted=false", "--format", "html", "--html5", "lib.Buffer")
	require.NoError(t, err)
	assert.Contains(t, out, `<section class="method-details" id="method-detail">`)
	assert.Less(t, strings.Index(out, "<h3>read</h3>"), strings.Index(out, "<h3>close</h3>"))
}

func TestMethodsTerm(t *testing.T) {
	out, err := run(t, "methods", "-m", "testdata/library.yaml", "--format", "term", "--style", "notty", "lib.Source")
	require.NoError(t, err)
	assert.Contains(t, out, "Method Details")
	assert.Contains(t, out, "Closes this source.")
}

func TestMethodsShowModules(t *testing.T) {
	out, err := run(t, "methods", "-m", "testdata/library.yaml", "--format", "markdown", "--show-modules", "lib.Buffer")
	require.NoError(t, err)
	// lib.Buffer belongs to no module
	assert.True(t, strings.HasPrefix(out, "# Class lib.Buffer\n"), out)
}

func TestMethodsErrors(t *testing.T) {
	_, err := run(t, "methods", "-m", "testdata/library.yaml", "--visibility", "internal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Visibility must be one of")

	_, err = run(t, "methods", "-m", "testdata/library.yaml", "lib.Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lib.Missing")

	_, err = run(t, "methods", "-m", "testdata/missing.yaml")
	assert.Error(t, err)

	_, err = run(t, "methods")
	assert.Error(t, err)
}

func TestMembersCommand(t *testing.T) {
	out, err := run(t, "members", "-m", "testdata/library.yaml", "lib.Buffer")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"lib.Buffer (methods)",
		"  read(byte[], int)",
		"  close()",
		"  get(Class<T>)",
		"  size()",
		"  toString()",
		"",
	}, "\n"), out)

	out, err = run(t, "members", "-m", "testdata/library.yaml", "--constructors", "lib.Buffer")
	require.NoError(t, err)
	assert.Equal(t, "lib.Buffer (constructors)\n", out)
}
