package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveTemplatePaths_Directory(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "unified_baseline.tftpl", "")
	b := writeFile(t, dir, "12345_unified_logging.tftpl", "")
	writeFile(t, dir, "legacy_baseline.tftpl", "")
	writeFile(t, dir, "unified_notes.txt", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "unified_nested.tftpl"), 0o755))

	files, err := resolveTemplatePaths(dir)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b}, files)
}

func TestResolveTemplatePaths_CommaList(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "one.tftpl", "")
	b := writeFile(t, dir, "two.tftpl", "")

	files, err := resolveTemplatePaths(a + ", " + b)

	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)
}

func TestResolveTemplatePaths_CommaListSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "one.tftpl", "")

	files, err := resolveTemplatePaths(a + "," + filepath.Join(dir, "missing.tftpl"))

	require.NoError(t, err)
	assert.Equal(t, []string{a}, files)
}

func TestResolveTemplatePaths_Glob(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "unified_a.tftpl", "")
	b := writeFile(t, dir, "unified_b.tftpl", "")
	writeFile(t, dir, "other.txt", "")

	files, err := resolveTemplatePaths(filepath.Join(dir, "unified_*.tftpl"))

	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)
}

func TestResolveTemplatePaths_NoMatches(t *testing.T) {
	files, err := resolveTemplatePaths(filepath.Join(t.TempDir(), "unified_*.tftpl"))

	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestReadTemplateSources(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "unified_baseline.tftpl", `resource "aws_iam_role" "r" {}`)

	sources, err := readTemplateSources([]string{path})

	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "unified_baseline.tftpl", sources[0].Name)
	assert.Contains(t, sources[0].Text, "aws_iam_role")
}

func TestReadTemplateSources_MissingFile(t *testing.T) {
	_, err := readTemplateSources([]string{filepath.Join(t.TempDir(), "nope.tftpl")})
	assert.Error(t, err)
}
