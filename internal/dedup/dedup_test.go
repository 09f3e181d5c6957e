package dedup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cm/internal/dedup"
)

func linesFor(file string, start int, texts ...string) []dedup.CodeLine {
	out := make([]dedup.CodeLine, len(texts))
	for i, t := range texts {
		out[i] = dedup.CodeLine{File: file, Line: start + i, Text: t}
	}

	return out
}

func TestDetectFindsTwoOccurrenceTolerableGroup(t *testing.T) {
	t.Parallel()

	block := []string{"a()", "b()", "c()", "d()", "e()", "f()"}

	var lines []dedup.CodeLine
	lines = append(lines, linesFor("x.go", 1, block...)...)
	lines = append(lines, linesFor("y.go", 1, block...)...)

	groups := dedup.Detect(lines, dedup.Config{MinLines: 6})
	require.Len(t, groups, 1)
	assert.Equal(t, dedup.Tolerable, groups[0].Severity)
	assert.Len(t, groups[0].Occurrences, 2)
}

func TestDetectClassifiesThreeOrMoreAsCritical(t *testing.T) {
	t.Parallel()

	block := []string{"a()", "b()", "c()", "d()", "e()", "f()"}

	var lines []dedup.CodeLine
	lines = append(lines, linesFor("x.go", 1, block...)...)
	lines = append(lines, linesFor("y.go", 1, block...)...)
	lines = append(lines, linesFor("z.go", 1, block...)...)

	groups := dedup.Detect(lines, dedup.Config{MinLines: 6})
	require.Len(t, groups, 1)
	assert.Equal(t, dedup.Critical, groups[0].Severity)
	assert.Len(t, groups[0].Occurrences, 3)
}

func TestDetectGreedyExtensionGrowsBeyondMinLines(t *testing.T) {
	t.Parallel()

	block := []string{"a()", "b()", "c()", "d()", "e()", "f()", "g()", "h()"}

	var lines []dedup.CodeLine
	lines = append(lines, linesFor("x.go", 1, block...)...)
	lines = append(lines, linesFor("y.go", 1, block...)...)

	groups := dedup.Detect(lines, dedup.Config{MinLines: 6})
	require.Len(t, groups, 1)
	assert.Equal(t, 8, groups[0].Length)
}

func TestDetectIgnoresWindowsBelowThreshold(t *testing.T) {
	t.Parallel()

	block := []string{"a()", "b()"}

	var lines []dedup.CodeLine
	lines = append(lines, linesFor("x.go", 1, block...)...)
	lines = append(lines, linesFor("y.go", 1, block...)...)

	groups := dedup.Detect(lines, dedup.Config{MinLines: 6})
	assert.Empty(t, groups)
}

func TestDetectNormalizesLeadingTrailingWhitespace(t *testing.T) {
	t.Parallel()

	lines := []dedup.CodeLine{}
	lines = append(lines, linesFor("x.go", 1, "  a()  ", "b()", "c()", "d()", "e()", "f()")...)
	lines = append(lines, linesFor("y.go", 1, "a()", "  b()", "c()", "d()", "e()", "f()")...)

	groups := dedup.Detect(lines, dedup.Config{MinLines: 6})
	require.Len(t, groups, 1)
}

func TestDetectDefaultMinLinesIsSix(t *testing.T) {
	t.Parallel()

	block := []string{"1", "2", "3", "4", "5"}

	var lines []dedup.CodeLine
	lines = append(lines, linesFor("x.go", 1, block...)...)
	lines = append(lines, linesFor("y.go", 1, block...)...)

	groups := dedup.Detect(lines, dedup.Config{})
	assert.Empty(t, groups, "a 5-line block should not meet the default 6-line window")
}
