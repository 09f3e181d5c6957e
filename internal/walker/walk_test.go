package walker_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cm/internal/linetest"
	"cm/internal/walker"
)

func write(t *testing.T, root, rel, content string) string {
	t.Helper()

	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func goSrc() string {
	return linetest.JoinLF(
		"package main",
		"",
		"func main() {",
		"\tprintln(\"hi\")",
		"}",
	)
}

func TestWalkResolvesLanguageAndClassifiesLines(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, root, "main.go", goSrc())

	res, err := walker.Walk(context.Background(), root, walker.Config{Workers: 2})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	rec := res.Files[0]
	assert.Equal(t, "go", rec.Language.ID)
	assert.True(t, rec.Canonical)
	assert.Equal(t, 1, res.FilesSeen)
}

func TestWalkSkipsUnresolvedLanguage(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, root, "notes.xyz", "whatever")

	res, err := walker.Walk(context.Background(), root, walker.Config{Workers: 2})
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	assert.Equal(t, 1, res.FilesSkipped)
}

func TestWalkExcludesGitDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, root, ".git/config", "[core]")
	write(t, root, "main.go", goSrc())

	res, err := walker.Walk(context.Background(), root, walker.Config{Workers: 2})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, filepath.Join(root, "main.go"), res.Files[0].Path)
}

func TestWalkExcludesTestFilesByDefault(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, root, "main.go", goSrc())
	write(t, root, "main_test.go", goSrc())

	res, err := walker.Walk(context.Background(), root, walker.Config{Workers: 2})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, 1, res.FilesSkipped)
}

func TestWalkIncludesTestFilesWhenRequested(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, root, "main.go", goSrc())
	write(t, root, "main_test.go", goSrc())

	res, err := walker.Walk(context.Background(), root, walker.Config{Workers: 2, IncludeTests: true})
	require.NoError(t, err)
	assert.Len(t, res.Files, 2)
}

func TestWalkTestDirectorySegmentExcludesRegardlessOfFilename(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, root, "src/main.go", goSrc())
	write(t, root, "tests/fixture.go", goSrc())

	res, err := walker.Walk(context.Background(), root, walker.Config{Workers: 2})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, filepath.Join(root, "src/main.go"), res.Files[0].Path)
}

func TestWalkDedupsIdenticalContent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, root, "a.go", goSrc())
	write(t, root, "b.go", goSrc())

	res, err := walker.Walk(context.Background(), root, walker.Config{Workers: 2})
	require.NoError(t, err)
	assert.Len(t, res.Files, 1)
	assert.Equal(t, 1, res.FilesDuplicated)
	assert.Equal(t, 2, res.FilesSeen)
}

func TestWalkExcludePatternPrunesDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, root, "vendor/dep.go", goSrc())
	write(t, root, "main.go", goSrc())

	res, err := walker.Walk(context.Background(), root, walker.Config{
		Workers: 2,
		Exclude: []string{"vendor"},
	})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, filepath.Join(root, "main.go"), res.Files[0].Path)
}

func TestWalkRootUnreadableReturnsError(t *testing.T) {
	t.Parallel()

	_, err := walker.Walk(context.Background(), filepath.Join(t.TempDir(), "missing"), walker.Config{Workers: 2})
	require.ErrorIs(t, err, walker.ErrRootUnreadable)
}

func TestWalkStripsRustCfgTestBlockWhenTestsExcluded(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, root, "lib.rs", linetest.JoinLF(
		"fn add(a: i32, b: i32) -> i32 {",
		"    a + b",
		"}",
		"",
		"#[cfg(test)]",
		"mod tests {",
		"    #[test]",
		"    fn it_adds() {",
		"        assert_eq!(1 + 1, 2);",
		"    }",
		"}",
	))

	res, err := walker.Walk(context.Background(), root, walker.Config{Workers: 1})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	rec := res.Files[0]
	for i := 4; i < len(rec.Lines); i++ {
		assert.Truef(t, rec.Lines[i].Blank, "line %d should be stripped", i+1)
	}
}

func TestWalkStripsRustCfgTestBlockWhenOpeningBraceOnLaterLine(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, root, "lib.rs", linetest.JoinLF(
		"fn add(a: i32, b: i32) -> i32 {",
		"    a + b",
		"}",
		"",
		"#[cfg(test)]",
		"mod tests",
		"{",
		"    #[test]",
		"    fn it_adds() {",
		"        assert_eq!(1 + 1, 2);",
		"    }",
		"}",
	))

	res, err := walker.Walk(context.Background(), root, walker.Config{Workers: 1})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	rec := res.Files[0]
	for i := 4; i < len(rec.Lines); i++ {
		assert.Truef(t, rec.Lines[i].Blank, "line %d should be stripped", i+1)
	}
}

func TestFileRecordCodeLines(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, root, "main.go", goSrc())

	res, err := walker.Walk(context.Background(), root, walker.Config{Workers: 1})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	lines := res.Files[0].CodeLines()
	require.NotEmpty(t, lines)

	for _, l := range lines {
		assert.NotEmpty(t, l.Text)
	}
}
