package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/tagtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "render", filepath.Join("testdata", "page.yaml"))
	require.NoError(t, err)
	expected := `<html id="root"><div class="component" data-foo="bar" data-n="1">Hello!` +
		`<span style="color: red" /></div><span>bye</span></html>` + "\n"
	assert.Equal(t, expected, out)
}

func TestRenderCommandEscape(t *testing.T) {
	path := filepath.Join("testdata", "escape.yaml")
	out, err := execute(t, "render", path)
	require.NoError(t, err)
	assert.Equal(t, "<div title=\"a < b\">x & y</div>\n", out)

	out, err = execute(t, "render", "-v", "--escape", path)
	require.NoError(t, err)
	assert.Equal(t, "<div title=\"a &lt; b\">x &amp; y</div>\n", out)
}

func TestRenderCommandMaxDepth(t *testing.T) {
	_, err := execute(t, "render", "--max-depth", "2", filepath.Join("testdata", "page.yaml"))
	assert.True(t, errors.Is(err, tagtree.ErrTooDeep), "got %v", err)
}

func TestRenderCommandRejectsInvalidTree(t *testing.T) {
	_, err := execute(t, "render", filepath.Join("testdata", "invalid.yaml"))
	assert.True(t, errors.Is(err, tagtree.ErrCompositionViolation), "got %v", err)
}

func TestRenderCommandNeedsFile(t *testing.T) {
	_, err := execute(t, "render")
	assert.Error(t, err)
}

func TestDebugCommand(t *testing.T) {
	path := filepath.Join("testdata", "page.yaml")
	out, err := execute(t, "debug", path)
	require.NoError(t, err)
	assert.Contains(t, out, `<html id="root">`)
	assert.Contains(t, out, `"Hello!"`)

	out, err = execute(t, "debug", "--format", "dot", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph g {"))

	_, err = execute(t, "debug", "--format", "svg", path)
	assert.Error(t, err)
}

func TestTagsCommand(t *testing.T) {
	out, err := execute(t, "tags")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "div "))
	assert.Contains(t, lines[1], "is={}")
	assert.Contains(t, lines[2], "children=FlowElement")
}
