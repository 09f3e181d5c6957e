// Package metrics composes the per-file measurements — Halstead metrics,
// cyclomatic complexity, and the two maintainability-index variants — from
// the classified lines ([cm/internal/classify]) and
// extracted tokens ([cm/internal/token]) of a source
// file.
package metrics

import (
	"math"

	"cm/internal/token"
)

// Halstead holds Maurice Halstead's software-science counts and the
// derived measures computed from them.
type Halstead struct {
	DistinctOperators int // n1
	DistinctOperands  int // n2
	TotalOperators    int // N1
	TotalOperands     int // N2

	Vocabulary int     // n  = n1 + n2
	Length     int     // N  = N1 + N2
	Volume     float64 // V  = N * log2(n)
	Difficulty float64 // D  = (n1/2) * (N2/n2)
	Effort     float64 // E  = D * V
	Bugs       float64 // B  = V / 3000
	Time       float64 // T  = E / 18 (seconds)
}

// ComputeHalstead reduces a token stream to [Halstead]. An empty or nil
// stream (LOC-only languages, or an empty file) yields the zero value.
func ComputeHalstead(tokens []token.Token) Halstead {
	operators := map[string]int{}
	operands := map[string]int{}

	var h Halstead

	for _, t := range tokens {
		switch t.Kind {
		case token.Operator:
			operators[t.Text]++
			h.TotalOperators++
		case token.Operand:
			operands[t.Text]++
			h.TotalOperands++
		}
	}

	h.DistinctOperators = len(operators)
	h.DistinctOperands = len(operands)
	h.Vocabulary = h.DistinctOperators + h.DistinctOperands
	h.Length = h.TotalOperators + h.TotalOperands

	if h.Vocabulary == 0 || h.Length == 0 {
		return h
	}

	h.Volume = float64(h.Length) * math.Log2(float64(h.Vocabulary))

	if h.DistinctOperands > 0 {
		h.Difficulty = (float64(h.DistinctOperators) / 2) *
			(float64(h.TotalOperands) / float64(h.DistinctOperands))
	}

	h.Effort = h.Difficulty * h.Volume
	h.Bugs = h.Volume / 3000
	h.Time = h.Effort / 18

	return h
}
