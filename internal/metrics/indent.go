package metrics

import "cm/internal/classify"

// IndentStats summarizes the logical indentation depth of a file's code
// lines, per spec's indentation-complexity view.
type IndentStats struct {
	TotalIndent int
	MaxIndent   int
	CodeLines   int
	AvgIndent   float64
}

// ComputeIndentStats reduces a file's classified lines to [IndentStats].
// Only code lines contribute, matching the "code lines only update the
// stack" convention the hotspot total_indent term also relies on.
func ComputeIndentStats(lines []classify.Line) IndentStats {
	var s IndentStats

	for _, ln := range lines {
		if !ln.Code {
			continue
		}

		level := int(ln.IndentLevel)
		s.TotalIndent += level
		s.CodeLines++

		if level > s.MaxIndent {
			s.MaxIndent = level
		}
	}

	if s.CodeLines > 0 {
		s.AvgIndent = float64(s.TotalIndent) / float64(s.CodeLines)
	}

	return s
}
