// Package dedup implements the sliding-window duplicate-block detector:
// across a project's code-only lines, it finds contiguous runs that recur
// verbatim (after whitespace normalization) in two or more places and
// classifies them by the Rule of Three.
package dedup

import (
	"hash/fnv"
	"sort"
	"strings"
)

// Severity classifies a duplicate group by the Rule of Three.
type Severity string

const (
	Tolerable Severity = "tolerable"
	Critical  Severity = "critical"
)

// CodeLine is one origin-tagged raw code line fed into the detector, which
// applies [Normalize] itself. Callers build this from classify output: blank and comment
// lines are excluded before they ever reach this package.
type CodeLine struct {
	File string
	Line int // 1-based physical line number
	Text string
}

// Occurrence is one instance of a duplicated block.
type Occurrence struct {
	File      string
	StartLine int
	EndLine   int // inclusive
}

// Group is a set of interchangeable duplicate occurrences sharing one
// normalized content hash.
type Group struct {
	Length      int // lines per occurrence
	Occurrences []Occurrence
	Severity    Severity
}

// Config tunes the detector. MinLines is the rolling-window length before
// greedy extension; it defaults to 6 when zero.
type Config struct {
	MinLines int
}

func (c Config) minLines() int {
	if c.MinLines <= 0 {
		return 6
	}

	return c.MinLines
}

// Normalize trims leading/trailing whitespace from a raw code line, the
// normalization the detector hashes over.
func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

// occurrenceRef ties a window position back to the file slice it came from so
// greedy extension can look one line past the current window.
type occurrenceRef struct {
	file     []CodeLine
	startIdx int
	length   int
}

func (o occurrenceRef) normLine(offset int) (string, bool) {
	idx := o.startIdx + offset
	if idx >= len(o.file) {
		return "", false
	}

	return Normalize(o.file[idx].Text), true
}

func (o occurrenceRef) toOccurrence() Occurrence {
	first := o.file[o.startIdx]
	last := o.file[o.startIdx+o.length-1]

	return Occurrence{File: first.File, StartLine: first.Line, EndLine: last.Line}
}

func (o occurrenceRef) window() []string {
	norm := make([]string, o.length)
	for i := range norm {
		norm[i] = Normalize(o.file[o.startIdx+i].Text)
	}

	return norm
}

// Detect runs the full pipeline (window, group, greedy-extend, suppress
// overlap, classify) over lines, which must already be grouped by file in
// file-then-line order; lines from different files are never fused into
// the same window.
func Detect(lines []CodeLine, cfg Config) []Group {
	files := groupByFile(lines)
	windowLen := cfg.minLines()

	buckets := map[uint64][]occurrenceRef{}

	for _, file := range files {
		if len(file) < windowLen {
			continue
		}

		for i := 0; i+windowLen <= len(file); i++ {
			ref := occurrenceRef{file: file, startIdx: i, length: windowLen}
			h := hashWindow(ref.window())
			buckets[h] = append(buckets[h], ref)
		}
	}

	var groups []Group

	for _, occs := range buckets {
		if len(occs) < 2 {
			continue
		}

		extendGreedy(occs)
		groups = append(groups, classify(occs))
	}

	groups = suppressOverlaps(groups)
	sortGroups(groups)

	return groups
}

func hashWindow(norm []string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.Join(norm, "\n")))

	return h.Sum64()
}

func groupByFile(lines []CodeLine) [][]CodeLine {
	order := []string{}
	byFile := map[string][]CodeLine{}

	for _, l := range lines {
		if _, ok := byFile[l.File]; !ok {
			order = append(order, l.File)
		}

		byFile[l.File] = append(byFile[l.File], l)
	}

	out := make([][]CodeLine, 0, len(order))
	for _, f := range order {
		out = append(out, byFile[f])
	}

	return out
}

// extendGreedy grows every occurrence in a group forward in lockstep, one
// line at a time, as long as all members have a next line and those next
// lines are identical after normalization.
func extendGreedy(occs []occurrenceRef) {
	for {
		offset := occs[0].length

		next, ok := occs[0].normLine(offset)
		if !ok {
			return
		}

		for _, o := range occs[1:] {
			candidate, ok := o.normLine(offset)
			if !ok || candidate != next {
				return
			}
		}

		for i := range occs {
			occs[i].length++
		}
	}
}

func classify(occs []occurrenceRef) Group {
	group := Group{Length: occs[0].length}

	for _, o := range occs {
		group.Occurrences = append(group.Occurrences, o.toOccurrence())
	}

	if len(group.Occurrences) >= 3 {
		group.Severity = Critical
	} else {
		group.Severity = Tolerable
	}

	return group
}

// suppressOverlaps drops, per file, any occurrence whose line range is
// fully covered by another, larger group's occurrence in the same file.
// Larger groups (by block length) claim their lines first.
func suppressOverlaps(groups []Group) []Group {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Length > groups[j].Length
	})

	covered := map[string][]lineSpan{}

	var out []Group

	for _, g := range groups {
		var kept []Occurrence

		for _, occ := range g.Occurrences {
			if isCovered(covered[occ.File], lineSpan{occ.StartLine, occ.EndLine}) {
				continue
			}

			kept = append(kept, occ)
			covered[occ.File] = append(covered[occ.File], lineSpan{occ.StartLine, occ.EndLine})
		}

		if len(kept) >= 2 {
			g.Occurrences = kept
			out = append(out, g)
		}
	}

	return out
}

type lineSpan struct{ start, end int }

func isCovered(spans []lineSpan, s lineSpan) bool {
	for _, c := range spans {
		if c.start <= s.start && s.end <= c.end {
			return true
		}
	}

	return false
}

// sortGroups orders groups by (occurrences desc, length desc, first-file
// path asc, first-line asc) for stable reporting.
func sortGroups(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]

		if len(a.Occurrences) != len(b.Occurrences) {
			return len(a.Occurrences) > len(b.Occurrences)
		}

		if a.Length != b.Length {
			return a.Length > b.Length
		}

		af, bf := a.Occurrences[0], b.Occurrences[0]
		if af.File != bf.File {
			return af.File < bf.File
		}

		return af.StartLine < bf.StartLine
	})
}
