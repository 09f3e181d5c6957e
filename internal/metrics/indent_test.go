package metrics

import (
	"testing"

	"cm/internal/classify"
)

func TestComputeIndentStatsSkipsNonCodeLines(t *testing.T) {
	lines := []classify.Line{
		{Blank: true},
		{Code: true, IndentLevel: 1},
		{Comment: true},
		{Code: true, IndentLevel: 3},
		{Code: true, IndentLevel: 2},
	}

	got := ComputeIndentStats(lines)

	want := IndentStats{TotalIndent: 6, MaxIndent: 3, CodeLines: 3, AvgIndent: 2}
	if got != want {
		t.Fatalf("ComputeIndentStats() = %+v, want %+v", got, want)
	}
}

func TestComputeIndentStatsEmptyIsZeroValue(t *testing.T) {
	if got := ComputeIndentStats(nil); got != (IndentStats{}) {
		t.Fatalf("ComputeIndentStats(nil) = %+v, want zero value", got)
	}
}
