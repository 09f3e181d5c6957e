package metrics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cm/internal/lang"
	"cm/internal/metrics"
	"cm/internal/token"
)

func TestComputeHalsteadEmptyStreamIsZeroValue(t *testing.T) {
	t.Parallel()

	h := metrics.ComputeHalstead(nil)
	assert.Zero(t, h.Volume)
	assert.Zero(t, h.DistinctOperators)
}

func TestComputeHalsteadCountsDistinctAndTotal(t *testing.T) {
	t.Parallel()

	tokens := []token.Token{
		{Text: "if", Kind: token.Operator},
		{Text: "x", Kind: token.Operand},
		{Text: "==", Kind: token.Operator},
		{Text: "1", Kind: token.Operand},
		{Text: "if", Kind: token.Operator},
		{Text: "x", Kind: token.Operand},
	}

	h := metrics.ComputeHalstead(tokens)
	assert.Equal(t, 2, h.DistinctOperators) // if, ==
	assert.Equal(t, 2, h.DistinctOperands)  // x, 1
	assert.Equal(t, 3, h.TotalOperators)    // if, ==, if
	assert.Equal(t, 3, h.TotalOperands)     // x, 1, x
	assert.Positive(t, h.Volume)
	assert.Positive(t, h.Effort)
}

func TestCyclomaticComplexityBaselineIsOne(t *testing.T) {
	t.Parallel()

	goProfile, ok := lang.ByID("go")
	assert.True(t, ok)

	c := metrics.CyclomaticComplexity(goProfile, nil)
	assert.Equal(t, 1, c)
}

func TestCyclomaticComplexityCountsDecisionTokens(t *testing.T) {
	t.Parallel()

	goProfile, ok := lang.ByID("go")
	assert.True(t, ok)

	tokens := []token.Token{
		{Text: "if", Kind: token.Operator},
		{Text: "x", Kind: token.Operand},
		{Text: "&&", Kind: token.Operator},
		{Text: "y", Kind: token.Operand},
	}

	c := metrics.CyclomaticComplexity(goProfile, tokens)
	assert.Equal(t, 3, c) // base 1 + if + &&
}

func TestVisualStudioMINotApplicableForZeroLOC(t *testing.T) {
	t.Parallel()

	mi := metrics.VisualStudioMI(100, 1, 0)
	assert.False(t, mi.IsApplicable)
}

func TestVisualStudioMIBands(t *testing.T) {
	t.Parallel()

	mi := metrics.VisualStudioMI(50, 1, 10)
	assert.True(t, mi.IsApplicable)
	assert.Contains(t, []metrics.MIBand{metrics.BandRed, metrics.BandYellow, metrics.BandGreen}, mi.Band)
}

func TestVisualStudioMIClampsZeroVolumeToZeroRed(t *testing.T) {
	t.Parallel()

	// Vocabulary==1 (e.g. every token the same lexeme) makes
	// ComputeHalstead's Volume == N*log2(1) == 0, an undefined-log input
	// that must clamp the score to 0 and band red, not flip positive.
	mi := metrics.VisualStudioMI(0, 0, 10)

	require.True(t, mi.IsApplicable)
	assert.Equal(t, 0.0, mi.Score)
	assert.Equal(t, metrics.BandRed, mi.Band)
}

func TestVisualStudioMIClampExampleFromSpec(t *testing.T) {
	t.Parallel()

	// V = e^100, G = 0, LOC = 1: raw MI is strongly negative even with a
	// well-defined volume, and must still clamp to 0, red.
	mi := metrics.VisualStudioMI(math.Exp(100), 0, 1)

	require.True(t, mi.IsApplicable)
	assert.Equal(t, 0.0, mi.Score)
	assert.Equal(t, metrics.BandRed, mi.Band)
}

func TestVerifysoftMIAddsCommentWeight(t *testing.T) {
	t.Parallel()

	noComments := metrics.VerifysoftMI(50, 1, 10, 0, 10)
	withComments := metrics.VerifysoftMI(50, 1, 10, 5, 10)

	assert.True(t, noComments.IsApplicable)
	assert.True(t, withComments.IsApplicable)
	assert.NotEqual(t, noComments.Score, withComments.Score)
}

func TestHotspotScoreIsProduct(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, metrics.HotspotScore(6, 7))
}
