package report

import "cm/internal/dedup"

// Document wraps one command's per-file records with a summary object, the
// shape every --json output takes.
type Document[F any, S any] struct {
	Files   []F `json:"files"`
	Summary S   `json:"summary"`
}

// LOCFile is one file's line-of-code breakdown.
type LOCFile struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	Blank    int    `json:"blank"`
	Comment  int    `json:"comment"`
	Code     int    `json:"code"`
}

// LanguageTotals aggregates [LOCFile] counts for one language.
type LanguageTotals struct {
	Files   int `json:"files"`
	Blank   int `json:"blank"`
	Comment int `json:"comment"`
	Code    int `json:"code"`
}

// LOCSummary totals a `loc` run across all files and by language.
type LOCSummary struct {
	TotalFiles   int                       `json:"total_files"`
	TotalBlank   int                       `json:"total_blank"`
	TotalComment int                       `json:"total_comment"`
	TotalCode    int                       `json:"total_code"`
	Languages    map[string]LanguageTotals `json:"languages"`
}

// DupsSummary totals a `dups` run, per spec's §4.5 step 6 reporting
// aggregates.
type DupsSummary struct {
	Groups             int    `json:"groups"`
	TolerableGroups    int    `json:"tolerable_groups"`
	CriticalGroups     int    `json:"critical_groups"`
	LargestGroupLength int    `json:"largest_group_length"`
	TotalCodeLines     int    `json:"total_code_lines"`
	DuplicatedLines    int    `json:"duplicated_lines"`
	DuplicationRatio   Metric `json:"duplication_ratio"`
}

// IndentFile is one file's indentation-complexity view.
type IndentFile struct {
	Path        string `json:"path"`
	Language    string `json:"language"`
	TotalIndent int    `json:"total_indent"`
	MaxIndent   int    `json:"max_indent"`
	AvgIndent   Metric `json:"avg_indent"`
}

// IndentSummary totals an `indent` run.
type IndentSummary struct {
	TotalFiles   int    `json:"total_files"`
	AvgMaxIndent Metric `json:"avg_max_indent"`
}

// HalsteadFile is one file's Halstead measures.
type HalsteadFile struct {
	Path       string `json:"path"`
	Language   string `json:"language"`
	Vocabulary int    `json:"vocabulary"`
	Length     int    `json:"length"`
	Volume     Metric `json:"volume"`
	Difficulty Metric `json:"difficulty"`
	Effort     Metric `json:"effort"`
	Bugs       Metric `json:"bugs"`
	Time       Metric `json:"time"`
}

// HalsteadSummary totals a `hal` run.
type HalsteadSummary struct {
	TotalFiles  int    `json:"total_files"`
	TotalVolume Metric `json:"total_volume"`
}

// CyclomaticFile is one file's cyclomatic complexity.
type CyclomaticFile struct {
	Path       string `json:"path"`
	Language   string `json:"language"`
	Complexity int    `json:"complexity"`
}

// CyclomaticSummary totals a `cycom` run.
type CyclomaticSummary struct {
	TotalFiles    int    `json:"total_files"`
	AvgComplexity Metric `json:"avg_complexity"`
}

// MaintainabilityFile is one file's maintainability-index score, for
// either the `mi` (Visual Studio) or `miv` (verifysoft) variant.
type MaintainabilityFile struct {
	Path         string `json:"path"`
	Language     string `json:"language"`
	IsApplicable bool   `json:"is_applicable"`
	Score        Metric `json:"score"`
	Band         string `json:"band"`
}

// MaintainabilitySummary totals an `mi`/`miv` run.
type MaintainabilitySummary struct {
	TotalFiles  int            `json:"total_files"`
	ScoredFiles int            `json:"scored_files"`
	AvgScore    Metric         `json:"avg_score"`
	BandCounts  map[string]int `json:"band_counts"`
}

// HotspotFile is one file's change-frequency x complexity score.
type HotspotFile struct {
	Path       string `json:"path"`
	Commits    int    `json:"commits"`
	Complexity int    `json:"complexity"`
	Score      int    `json:"score"`
}

// HotspotSummary totals a `hotspots` run.
type HotspotSummary struct {
	TotalFiles int `json:"total_files"`
}

// OwnerShare is one author's share of a file, mirroring [cm/internal/vcs.Ownership].
type OwnerShare struct {
	Author  string `json:"author"`
	Lines   int    `json:"lines"`
	Percent Metric `json:"percent"`
}

// KnowledgeFile is one file's ownership breakdown.
type KnowledgeFile struct {
	Path   string       `json:"path"`
	Owners []OwnerShare `json:"owners"`
}

// KnowledgeSummary totals a `knowledge` run.
type KnowledgeSummary struct {
	TotalFiles int `json:"total_files"`
}

// CouplingPair is one temporally-coupled file pair.
type CouplingPair struct {
	PathA    string `json:"path_a"`
	PathB    string `json:"path_b"`
	Shared   int    `json:"shared"`
	Strength Metric `json:"strength"`
	Class    string `json:"class"`
}

// CouplingSummary totals a `tc` run.
type CouplingSummary struct {
	TotalPairs int `json:"total_pairs"`
	Strong     int `json:"strong"`
	Moderate   int `json:"moderate"`
}

// DupGroupRecord adapts [dedup.Group] for JSON output; Occurrences carries
// through unchanged.
type DupGroupRecord struct {
	Length      int                `json:"length"`
	Severity    dedup.Severity     `json:"severity"`
	Occurrences []dedup.Occurrence `json:"occurrences"`
}
