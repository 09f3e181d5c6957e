package main

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"cm/internal/metrics"
	"cm/internal/report"
	"cm/internal/walker"
)

// miVariant selects between the two maintainability-index formulas, which
// share every other part of the command: flags, walk, table shape.
type miVariant struct {
	use     string
	short   string
	kind    report.Kind
	compute func(volume float64, cyclomatic, loc, commentLines, totalLines int) metrics.MaintainabilityIndex
}

func newMICommand(a *app) *cobra.Command {
	return newMaintainabilityCommand(a, miVariant{
		use:   "mi [path]",
		short: "compute the Visual Studio maintainability index per file",
		kind:  report.KindMI,
		compute: func(volume float64, cyclomatic, loc, _, _ int) metrics.MaintainabilityIndex {
			return metrics.VisualStudioMI(volume, cyclomatic, loc)
		},
	})
}

func newMIVCommand(a *app) *cobra.Command {
	return newMaintainabilityCommand(a, miVariant{
		use:   "miv [path]",
		short: "compute the verifysoft maintainability index per file",
		kind:  report.KindMIV,
		compute: func(volume float64, cyclomatic, loc, commentLines, totalLines int) metrics.MaintainabilityIndex {
			return metrics.VerifysoftMI(volume, cyclomatic, loc, commentLines, totalLines)
		},
	})
}

func newMaintainabilityCommand(a *app, variant miVariant) *cobra.Command {
	cmd := &cobra.Command{
		Use:   variant.use,
		Short: variant.short,
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

		result, err := a.scan(ctx, root)
		if err != nil {
			return err
		}

		doc := buildMaintainabilityDocument(result, variant, sortBy, af.top)

		return a.writeOutput(variant.kind, doc, maintainabilityTable(doc), af.json)
	}

	return cmd
}

func buildMaintainabilityDocument(result *walker.Result, variant miVariant, sortBy string, top int) report.Document[report.MaintainabilityFile, report.MaintainabilitySummary] {
	files := make([]report.MaintainabilityFile, 0, len(result.Files))

	summary := report.MaintainabilitySummary{BandCounts: map[string]int{}}

	var scoreSum float64

	for _, rec := range result.Files {
		if !rec.Language.HalsteadCyclomatic {
			continue
		}

		summary.TotalFiles++

		h := metrics.ComputeHalstead(rec.Tokens)
		cyclomatic := metrics.CyclomaticComplexity(rec.Language, rec.Tokens)
		blank, comment, code := locCounts(rec)

		mi := variant.compute(h.Volume, cyclomatic, code, comment, blank+comment+code)

		entry := report.MaintainabilityFile{
			Path:         rec.Path,
			Language:     rec.Language.Name,
			IsApplicable: mi.IsApplicable,
		}

		if mi.IsApplicable {
			entry.Score = report.Metric(mi.Score)
			entry.Band = string(mi.Band)

			summary.ScoredFiles++
			scoreSum += mi.Score
			summary.BandCounts[string(mi.Band)]++
		}

		files = append(files, entry)
	}

	if summary.ScoredFiles > 0 {
		summary.AvgScore = report.Metric(scoreSum / float64(summary.ScoredFiles))
	}

	sort.SliceStable(files, func(i, j int) bool {
		if sortBy == "path" {
			return files[i].Path < files[j].Path
		}

		return float64(files[i].Score) > float64(files[j].Score)
	})

	files = limitRows(files, top)

	return report.Document[report.MaintainabilityFile, report.MaintainabilitySummary]{Files: files, Summary: summary}
}

func maintainabilityTable(doc report.Document[report.MaintainabilityFile, report.MaintainabilitySummary]) report.Table {
	rows := make([][]string, 0, len(doc.Files))

	for _, f := range doc.Files {
		score := "n/a"
		if f.IsApplicable {
			score = strconv.FormatFloat(float64(f.Score), 'f', 1, 64)
		}

		rows = append(rows, []string{f.Path, f.Language, score, f.Band})
	}

	return report.Table{
		Headers:        []string{"PATH", "LANGUAGE", "SCORE", "BAND"},
		Rows:           rows,
		TruncateColumn: 0,
	}
}
