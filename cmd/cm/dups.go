package main

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"cm/internal/dedup"
	"cm/internal/report"
	"cm/internal/walker"
)

func newDupsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dups [path]",
		Short: "find duplicate code blocks across the project",
		Args:  cobra.MaximumNArgs(1),
	}

	af := registerAnalysisFlags(cmd.Flags(), "length")

	var minLines int

	cmd.Flags().IntVar(&minLines, "min-lines", 0, "minimum duplicate block length before greedy extension (default 6, or .cm.yaml's min_lines)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		root := resolvedArgs(args)

		ctx, cancel := baseContext()
		defer cancel()

		file, err := a.loadProjectConfig(root, cmd.Flags().Changed("exclude"))
		if err != nil {
			return err
		}

		sortBy := file.SortByOr(af.sortBy, sortByExplicit(cmd.Flags()))
		resolvedMinLines := file.MinLinesOr(minLines, cmd.Flags().Changed("min-lines"))

		result, err := a.scan(ctx, root)
		if err != nil {
			return err
		}

		doc := buildDupsDocument(result, resolvedMinLines, sortBy, af.top)

		return a.writeOutput(report.KindDups, doc, dupsTable(doc), af.json)
	}

	return cmd
}

func buildDupsDocument(result *walker.Result, minLines int, sortBy string, top int) report.Document[report.DupGroupRecord, report.DupsSummary] {
	var lines []dedup.CodeLine

	for _, rec := range result.Files {
		lines = append(lines, rec.CodeLines()...)
	}

	groups := dedup.Detect(lines, dedup.Config{MinLines: minLines})

	records := make([]report.DupGroupRecord, 0, len(groups))

	for _, g := range groups {
		records = append(records, report.DupGroupRecord{
			Length:      g.Length,
			Severity:    g.Severity,
			Occurrences: g.Occurrences,
		})
	}

	summary := summarizeDupGroups(groups, len(lines))

	sort.SliceStable(records, func(i, j int) bool {
		switch sortBy {
		case "severity":
			return records[i].Severity > records[j].Severity
		case "occurrences":
			return len(records[i].Occurrences) > len(records[j].Occurrences)
		default:
			return records[i].Length > records[j].Length
		}
	})

	records = limitRows(records, top)

	return report.Document[report.DupGroupRecord, report.DupsSummary]{Files: records, Summary: summary}
}

// summarizeDupGroups computes the reporting aggregates across a dups run:
// group counts by severity, the largest group by length, and the duplicated
// line count and ratio against the project's total code lines.
func summarizeDupGroups(groups []dedup.Group, totalCodeLines int) report.DupsSummary {
	summary := report.DupsSummary{TotalCodeLines: totalCodeLines}

	for _, g := range groups {
		summary.Groups++

		switch g.Severity {
		case dedup.Tolerable:
			summary.TolerableGroups++
		case dedup.Critical:
			summary.CriticalGroups++
		}

		if g.Length > summary.LargestGroupLength {
			summary.LargestGroupLength = g.Length
		}
	}

	summary.DuplicatedLines = duplicatedLineCount(groups)

	if summary.TotalCodeLines > 0 {
		summary.DuplicationRatio = report.Metric(float64(summary.DuplicatedLines) / float64(summary.TotalCodeLines))
	}

	return summary
}

// duplicatedLineCount totals the distinct duplicated code lines across
// groups: per file, the union of every occurrence's line range, each line
// counted once even where ranges from different groups overlap.
func duplicatedLineCount(groups []dedup.Group) int {
	byFile := map[string][][2]int{}

	for _, g := range groups {
		for _, occ := range g.Occurrences {
			byFile[occ.File] = append(byFile[occ.File], [2]int{occ.StartLine, occ.EndLine})
		}
	}

	var total int

	for _, ranges := range byFile {
		sort.Slice(ranges, func(i, j int) bool { return ranges[i][0] < ranges[j][0] })

		var curStart, curEnd int

		for i, r := range ranges {
			if i == 0 {
				curStart, curEnd = r[0], r[1]
				continue
			}

			if r[0] <= curEnd+1 {
				if r[1] > curEnd {
					curEnd = r[1]
				}

				continue
			}

			total += curEnd - curStart + 1
			curStart, curEnd = r[0], r[1]
		}

		if len(ranges) > 0 {
			total += curEnd - curStart + 1
		}
	}

	return total
}

func dupsTable(doc report.Document[report.DupGroupRecord, report.DupsSummary]) report.Table {
	rows := make([][]string, 0, len(doc.Files))

	for _, g := range doc.Files {
		first := "-"
		if len(g.Occurrences) > 0 {
			first = g.Occurrences[0].File
		}

		rows = append(rows, []string{
			first, string(g.Severity),
			strconv.Itoa(g.Length), strconv.Itoa(len(g.Occurrences)),
		})
	}

	return report.Table{
		Headers:        []string{"FIRST OCCURRENCE", "SEVERITY", "LENGTH", "OCCURRENCES"},
		Rows:           rows,
		TruncateColumn: 0,
	}
}
