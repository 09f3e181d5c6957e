package main

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"cm/internal/metrics"
	"cm/internal/report"
	"cm/internal/vcs"
	"cm/internal/walker"
)

func newHotspotsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotspots [path]",
		Short: "rank files by change frequency times complexity",
		Args:  cobra.MaximumNArgs(1),
	}

	af := registerAnalysisFlags(cmd.Flags(), "score")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		root := resolvedArgs(args)

		ctx, cancel := baseContext()
		defer cancel()

		file, err := a.loadProjectConfig(root, cmd.Flags().Changed("exclude"))
		if err != nil {
			return err
		}

		sortBy := file.SortByOr(af.sortBy, sortByExplicit(cmd.Flags()))

		since, err := vcs.ParseSince(a.sinceStr)
		if err != nil {
			return err
		}

		collaborator, err := vcs.NewGitCollaborator(root)
		if err != nil {
			return err
		}

		result, err := a.scan(ctx, root)
		if err != nil {
			return err
		}

		freq, err := collaborator.FileFrequencies(ctx, since)
		if err != nil {
			return err
		}

		doc := buildHotspotsDocument(result, freq, sortBy, af.top)

		return a.writeOutput(report.KindHotspots, doc, hotspotsTable(doc), af.json)
	}

	return cmd
}

func buildHotspotsDocument(result *walker.Result, freq vcs.Frequencies, sortBy string, top int) report.Document[report.HotspotFile, report.HotspotSummary] {
	files := make([]report.HotspotFile, 0, len(result.Files))

	for _, rec := range result.Files {
		commits := freq[rec.Path]

		complexity := fileComplexity(rec)
		score := metrics.HotspotScore(commits, complexity)

		files = append(files, report.HotspotFile{
			Path:       rec.Path,
			Commits:    commits,
			Complexity: complexity,
			Score:      score,
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		switch sortBy {
		case "path":
			return files[i].Path < files[j].Path
		case "commits":
			return files[i].Commits > files[j].Commits
		case "complexity":
			return files[i].Complexity > files[j].Complexity
		default:
			return files[i].Score > files[j].Score
		}
	})

	files = limitRows(files, top)

	return report.Document[report.HotspotFile, report.HotspotSummary]{
		Files:   files,
		Summary: report.HotspotSummary{TotalFiles: len(result.Files)},
	}
}

// fileComplexity picks cyclomatic complexity for languages the token
// extractor supports, falling back to max indentation depth for LOC-only
// languages so every file still contributes a hotspot score.
func fileComplexity(rec *walker.FileRecord) int {
	if rec.Language.HalsteadCyclomatic {
		return metrics.CyclomaticComplexity(rec.Language, rec.Tokens)
	}

	return metrics.ComputeIndentStats(rec.Lines).MaxIndent
}

func hotspotsTable(doc report.Document[report.HotspotFile, report.HotspotSummary]) report.Table {
	rows := make([][]string, 0, len(doc.Files))

	for _, f := range doc.Files {
		rows = append(rows, []string{f.Path, strconv.Itoa(f.Commits), strconv.Itoa(f.Complexity), strconv.Itoa(f.Score)})
	}

	return report.Table{
		Headers:        []string{"PATH", "COMMITS", "COMPLEXITY", "SCORE"},
		Rows:           rows,
		TruncateColumn: 0,
	}
}
