package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/latextree/pkg/latex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefinition(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunRender_WritesFile(t *testing.T) {
	tmp := t.TempDir()
	a := writeDefinition(t, tmp, "a.yaml", "label: A\nchildren: [B, ~]\n")
	b := writeDefinition(t, tmp, "b.json", `{"label": "C"}`)
	outDir := filepath.Join(tmp, "latex")

	var out bytes.Buffer
	err := runRender(renderOptions{
		Files: []string{a, b},
		Dir:   outDir,
		Name:  "trees.tex",
		Out:   &out,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(2 trees)")

	data, err := os.ReadFile(filepath.Join(outDir, "trees.tex"))
	require.NoError(t, err)
	got := string(data)
	assert.True(t, strings.HasPrefix(got, latex.FileHeader))
	assert.Less(t, strings.Index(got, "[ .A [ .B  ] "+latex.NullSymbol+" ]"), strings.Index(got, "[ .C  ]"))
}

func TestRunRender_Stdin(t *testing.T) {
	var out bytes.Buffer
	err := runRender(renderOptions{
		In:     strings.NewReader("label: 5\n"),
		Out:    &out,
		Stdout: true,
	})

	require.NoError(t, err)
	assert.Equal(t, latex.FileHeader+latex.TreeHeader+"[ .5  ]"+latex.TreeFooter+latex.FileFooter, out.String())
}

func TestRunRender_Mermaid(t *testing.T) {
	var out bytes.Buffer
	err := runRender(renderOptions{
		In:     strings.NewReader("label: A\n---\nlabel: B\n"),
		Out:    &out,
		Format: "mermaid",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out.String(), "graph TD"))
}

func TestRunRender_Errors(t *testing.T) {
	var out bytes.Buffer

	err := runRender(renderOptions{In: strings.NewReader(""), Out: &out})
	assert.ErrorContains(t, err, "no trees")

	err = runRender(renderOptions{In: strings.NewReader("label: a"), Out: &out, Format: "svg"})
	assert.ErrorContains(t, err, "unknown format")

	err = runRender(renderOptions{Files: []string{filepath.Join(t.TempDir(), "missing.yaml")}, Out: &out})
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "latextree version")
}

func TestRunValidate(t *testing.T) {
	var out bytes.Buffer
	err := runValidate(nil, strings.NewReader("label: A\nchildren: [B, ~]\n"), &out, "", 0)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "tree[0]: 2 nodes, 1 placeholders, depth 2")

	out.Reset()
	err = runValidate(nil, strings.NewReader("label: 50%\n"), &out, "", 0)
	assert.ErrorContains(t, err, "validation failed")
}
