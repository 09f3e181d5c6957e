package metrics

import "math"

// MIBand is the qualitative bucket a maintainability-index score falls
// into. The two variants use different bands, so the zero value is never
// shared between them.
type MIBand string

const (
	BandGreen  MIBand = "green"
	BandYellow MIBand = "yellow"
	BandRed    MIBand = "red"

	BandGood      MIBand = "good"
	BandModerate  MIBand = "moderate"
	BandDifficult MIBand = "difficult"
)

// undefinedLogSentinel stands in for the raw MI score when ln(V) or ln(LOC)
// is undefined (V<=0 or LOC<=0), per the spec's "clamp to a large negative
// sentinel before max" rule: it forces the Visual Studio raw score to clamp
// to zero via max(0, raw) rather than propagating NaN or, worse, flipping
// sign through the subtracted log terms.
const undefinedLogSentinel = -1e9

// MaintainabilityIndex is "n/a" (IsApplicable false) for files with zero
// code lines, which the spec excludes from totals rather than scoring as
// zero.
type MaintainabilityIndex struct {
	IsApplicable bool
	Score        float64
	Band         MIBand
}

// VisualStudioMI computes the Visual Studio maintainability-index variant:
// raw = 171 - 5.2*ln(V) - 0.23*G - 16.2*ln(LOC), reported as
// max(0, raw)*100/171 and banded [0,9] red, [10,19] yellow, [20,100] green.
func VisualStudioMI(volume float64, cyclomatic int, loc int) MaintainabilityIndex {
	if loc <= 0 {
		return MaintainabilityIndex{}
	}

	raw := rawMI(volume, cyclomatic, loc)
	score := math.Max(0, raw) * 100 / 171

	return MaintainabilityIndex{
		IsApplicable: true,
		Score:        score,
		Band:         bandVisualStudio(score),
	}
}

// VerifysoftMI computes the verifysoft variant, which adds a comment-weight
// term on top of the same base formula: MIcw = 50*sin(sqrt(2.46*PerCM)),
// where PerCM is the comment-line ratio expressed in radians
// (commentLines/totalLines * pi).
func VerifysoftMI(volume float64, cyclomatic int, loc int, commentLines int, totalLines int) MaintainabilityIndex {
	if loc <= 0 {
		return MaintainabilityIndex{}
	}

	miwoc := rawMI(volume, cyclomatic, loc)

	var perCM float64
	if totalLines > 0 {
		perCM = (float64(commentLines) / float64(totalLines)) * math.Pi
	}

	micw := 50 * math.Sin(math.Sqrt(2.46*perCM))
	score := miwoc + micw

	return MaintainabilityIndex{
		IsApplicable: true,
		Score:        score,
		Band:         bandVerifysoft(score),
	}
}

func rawMI(volume float64, cyclomatic int, loc int) float64 {
	if volume <= 0 || loc <= 0 {
		return undefinedLogSentinel
	}

	lnV := math.Log(volume)
	lnLOC := math.Log(float64(loc))

	return 171 - 5.2*lnV - 0.23*float64(cyclomatic) - 16.2*lnLOC
}

func bandVisualStudio(score float64) MIBand {
	switch {
	case score <= 9:
		return BandRed
	case score <= 19:
		return BandYellow
	default:
		return BandGreen
	}
}

func bandVerifysoft(score float64) MIBand {
	switch {
	case score >= 85:
		return BandGood
	case score >= 65:
		return BandModerate
	default:
		return BandDifficult
	}
}

// HotspotComplexity selects which complexity term feeds HotspotScore.
type HotspotComplexity int

const (
	ComplexityIndent HotspotComplexity = iota
	ComplexityCyclomatic
)

// HotspotScore is commits * complexity, per the spec's "change frequency x
// complexity" definition. commits excludes merge commits, supplied by the
// git collaborator (cm/internal/vcs).
func HotspotScore(commits int, complexity int) int {
	return commits * complexity
}
