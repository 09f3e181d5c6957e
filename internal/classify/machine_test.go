package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cm/internal/classify"
	"cm/internal/lang"
)

func profileByID(t *testing.T, id string) *lang.Profile {
	t.Helper()

	p, ok := lang.ByID(id)
	require.True(t, ok, "no profile %q", id)

	return p
}

func kinds(lines []classify.Line) []classify.Kind {
	out := make([]classify.Kind, len(lines))
	for i, l := range lines {
		out[i] = l.Kind()
	}

	return out
}

func TestBlankCommentCodeLines(t *testing.T) {
	t.Parallel()

	m := classify.NewMachine(profileByID(t, "go"))
	src := "package main\n\n// a comment\nfunc main() {}\n"

	lines := m.ClassifyFile([]byte(src))
	assert.Equal(t, []classify.Kind{
		classify.KindCode,
		classify.KindBlank,
		classify.KindComment,
		classify.KindCode,
	}, kinds(lines))
}

func TestMixedCodeAndCommentCountsAsCode(t *testing.T) {
	t.Parallel()

	m := classify.NewMachine(profileByID(t, "go"))
	lines := m.ClassifyFile([]byte("x := 1 // trailing\n"))

	require.Len(t, lines, 1)
	assert.True(t, lines[0].Code)
}

func TestHaskellArrowIsNotAComment(t *testing.T) {
	t.Parallel()

	m := classify.NewMachine(profileByID(t, "haskell"))
	lines := m.ClassifyFile([]byte("x --> y\n-- a real comment\n"))

	require.Len(t, lines, 2)
	assert.True(t, lines[0].Code, "--> should not open a line comment")
	assert.True(t, lines[1].Comment)
}

func TestNestedRustBlockComment(t *testing.T) {
	t.Parallel()

	m := classify.NewMachine(profileByID(t, "rust"))
	src := "/* outer /* inner */ still comment */\ncode();\n"

	lines := m.ClassifyFile([]byte(src))
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Comment)
	assert.True(t, lines[1].Code)
}

func TestNonNestedCBlockCommentClosesAtFirstTerminator(t *testing.T) {
	t.Parallel()

	m := classify.NewMachine(profileByID(t, "c"))
	src := "/* outer /* inner */ code(); */\n"

	lines := m.ClassifyFile([]byte(src))
	require.Len(t, lines, 1)
	// the first "*/" closes the comment, so "code(); */" following it is code.
	assert.True(t, lines[0].Code)
}

func TestPythonTripleQuoteSpansLines(t *testing.T) {
	t.Parallel()

	m := classify.NewMachine(profileByID(t, "python"))
	src := "x = \"\"\"\nnot a # comment in here\nstill a string\n\"\"\"\n"

	lines := m.ClassifyFile([]byte(src))
	require.Len(t, lines, 4)

	for _, l := range lines {
		assert.True(t, l.Code)
	}
}

func TestSingleQuoteStringDoesNotSpanLines(t *testing.T) {
	t.Parallel()

	m := classify.NewMachine(profileByID(t, "go"))
	src := "s := \"unterminated\n# more code\n"

	lines := m.ClassifyFile([]byte(src))
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Code)
	assert.True(t, lines[1].Code)
}

func TestEscapedQuoteDoesNotCloseString(t *testing.T) {
	t.Parallel()

	m := classify.NewMachine(profileByID(t, "go"))
	lines := m.ClassifyFile([]byte(`s := "a \" b"` + "\n"))

	require.Len(t, lines, 1)
	assert.True(t, lines[0].Code)
}

func TestShebangLineIsCode(t *testing.T) {
	t.Parallel()

	m := classify.NewMachine(profileByID(t, "python"))
	src := "#!/usr/bin/env python3\nimport os\n"

	lines := m.ClassifyFile([]byte(src))
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Code)
	assert.Equal(t, uint32(1), lines[0].IndentLevel)
	assert.True(t, lines[1].Code)
}

func TestHaskellPragmaIsCodeNotComment(t *testing.T) {
	t.Parallel()

	m := classify.NewMachine(profileByID(t, "haskell"))
	src := "{-# LANGUAGE OverloadedStrings #-}\nmain = pure ()\n"

	lines := m.ClassifyFile([]byte(src))
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Code)
	assert.True(t, lines[1].Code)
}

func TestPragmaSpansMultipleLines(t *testing.T) {
	t.Parallel()

	m := classify.NewMachine(profileByID(t, "haskell"))
	src := "{-# LANGUAGE\n  OverloadedStrings\n#-}\nmain = pure ()\n"

	lines := m.ClassifyFile([]byte(src))
	require.Len(t, lines, 4)

	for _, l := range lines[:3] {
		assert.True(t, l.Code)
	}
}

func TestUnterminatedFileFlushesFinalLine(t *testing.T) {
	t.Parallel()

	m := classify.NewMachine(profileByID(t, "go"))
	lines := m.ClassifyFile([]byte("x := 1"))

	require.Len(t, lines, 1)
	assert.True(t, lines[0].Code)
}

func TestEmptyFileYieldsNoLines(t *testing.T) {
	t.Parallel()

	m := classify.NewMachine(profileByID(t, "go"))
	assert.Empty(t, m.ClassifyFile(nil))
}

func TestIndentLevelTracksDistinctColumns(t *testing.T) {
	t.Parallel()

	m := classify.NewMachine(profileByID(t, "python"))
	src := "def f():\n    a = 1\n    if a:\n        b = 2\n    c = 3\nd = 4\n"

	lines := m.ClassifyFile([]byte(src))
	require.Len(t, lines, 6)

	got := make([]uint32, len(lines))
	for i, l := range lines {
		got[i] = l.IndentLevel
	}

	assert.Equal(t, []uint32{1, 2, 2, 3, 2, 1}, got)
}

func TestTabIndentAdvancesToNextMultipleOfEight(t *testing.T) {
	t.Parallel()

	m := classify.NewMachine(profileByID(t, "go"))
	src := "a()\n\tb()\n\t\tc()\n"

	lines := m.ClassifyFile([]byte(src))
	require.Len(t, lines, 3)
	assert.Equal(t, []uint32{1, 2, 3}, []uint32{lines[0].IndentLevel, lines[1].IndentLevel, lines[2].IndentLevel})
}
