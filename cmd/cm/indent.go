package main

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"cm/internal/metrics"
	"cm/internal/report"
	"cm/internal/walker"
)

func newIndentCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indent [path]",
		Short: "report indentation depth per file",
		Args:  cobra.MaximumNArgs(1),
	}

	af := registerAnalysisFlags(cmd.Flags(), "max")

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

		doc := buildIndentDocument(result, sortBy, af.top)

		return a.writeOutput(report.KindIndent, doc, indentTable(doc), af.json)
	}

	return cmd
}

func buildIndentDocument(result *walker.Result, sortBy string, top int) report.Document[report.IndentFile, report.IndentSummary] {
	files := make([]report.IndentFile, 0, len(result.Files))

	var (
		summary      report.IndentSummary
		maxIndentSum int
	)

	for _, rec := range result.Files {
		stats := metrics.ComputeIndentStats(rec.Lines)

		files = append(files, report.IndentFile{
			Path:        rec.Path,
			Language:    rec.Language.Name,
			TotalIndent: stats.TotalIndent,
			MaxIndent:   stats.MaxIndent,
			AvgIndent:   report.Metric(stats.AvgIndent),
		})

		summary.TotalFiles++
		maxIndentSum += stats.MaxIndent
	}

	if summary.TotalFiles > 0 {
		summary.AvgMaxIndent = report.Metric(float64(maxIndentSum) / float64(summary.TotalFiles))
	}

	sort.SliceStable(files, func(i, j int) bool {
		switch sortBy {
		case "path":
			return files[i].Path < files[j].Path
		case "total":
			return files[i].TotalIndent > files[j].TotalIndent
		case "avg":
			return files[i].AvgIndent > files[j].AvgIndent
		default:
			return files[i].MaxIndent > files[j].MaxIndent
		}
	})

	files = limitRows(files, top)

	return report.Document[report.IndentFile, report.IndentSummary]{Files: files, Summary: summary}
}

func indentTable(doc report.Document[report.IndentFile, report.IndentSummary]) report.Table {
	rows := make([][]string, 0, len(doc.Files))

	for _, f := range doc.Files {
		rows = append(rows, []string{
			f.Path, f.Language,
			strconv.Itoa(f.TotalIndent), strconv.Itoa(f.MaxIndent), strconv.FormatFloat(float64(f.AvgIndent), 'f', 2, 64),
		})
	}

	return report.Table{
		Headers:        []string{"PATH", "LANGUAGE", "TOTAL", "MAX", "AVG"},
		Rows:           rows,
		TruncateColumn: 0,
	}
}
