package main

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"cm/internal/metrics"
	"cm/internal/report"
	"cm/internal/walker"
)

func newCyclomaticCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cycom [path]",
		Short: "compute cyclomatic complexity per file",
		Args:  cobra.MaximumNArgs(1),
	}

	af := registerAnalysisFlags(cmd.Flags(), "complexity")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		root := resolvedArgs(args)

		ctx, cancel := baseContext()
		defer cancel()

		file, err := a.loadProjectConfig(root, cmd.Flags().Changed("exclude"))
		if err != nil {
			return err
		}

		sortBy := file.SortByOr(af.sortBy, sortByExplicit(cmd.Flags()))

		result, err := a.scan(ctx, root)
		if err != nil {
			return err
		}

		doc := buildCyclomaticDocument(result, sortBy, af.top)

		return a.writeOutput(report.KindCyclomatic, doc, cyclomaticTable(doc), af.json)
	}

	return cmd
}

func buildCyclomaticDocument(result *walker.Result, sortBy string, top int) report.Document[report.CyclomaticFile, report.CyclomaticSummary] {
	files := make([]report.CyclomaticFile, 0, len(result.Files))

	var (
		summary report.CyclomaticSummary
		total   int
	)

	for _, rec := range result.Files {
		if !rec.Language.HalsteadCyclomatic {
			continue
		}

		complexity := metrics.CyclomaticComplexity(rec.Language, rec.Tokens)

		files = append(files, report.CyclomaticFile{
			Path:       rec.Path,
			Language:   rec.Language.Name,
			Complexity: complexity,
		})

		summary.TotalFiles++
		total += complexity
	}

	if summary.TotalFiles > 0 {
		summary.AvgComplexity = report.Metric(float64(total) / float64(summary.TotalFiles))
	}

	sort.SliceStable(files, func(i, j int) bool {
		if sortBy == "path" {
			return files[i].Path < files[j].Path
		}

		return files[i].Complexity > files[j].Complexity
	})

	files = limitRows(files, top)

	return report.Document[report.CyclomaticFile, report.CyclomaticSummary]{Files: files, Summary: summary}
}

func cyclomaticTable(doc report.Document[report.CyclomaticFile, report.CyclomaticSummary]) report.Table {
	rows := make([][]string, 0, len(doc.Files))

	for _, f := range doc.Files {
		rows = append(rows, []string{f.Path, f.Language, strconv.Itoa(f.Complexity)})
	}

	return report.Table{
		Headers:        []string{"PATH", "LANGUAGE", "COMPLEXITY"},
		Rows:           rows,
		TruncateColumn: 0,
	}
}
