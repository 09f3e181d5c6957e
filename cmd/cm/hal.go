package main

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"cm/internal/metrics"
	"cm/internal/report"
	"cm/internal/walker"
)

func newHalsteadCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hal [path]",
		Short: "compute Halstead software-science measures per file",
		Args:  cobra.MaximumNArgs(1),
	}

	af := registerAnalysisFlags(cmd.Flags(), "volume")

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

		doc := buildHalsteadDocument(result, sortBy, af.top)

		return a.writeOutput(report.KindHalstead, doc, halsteadTable(doc), af.json)
	}

	return cmd
}

func buildHalsteadDocument(result *walker.Result, sortBy string, top int) report.Document[report.HalsteadFile, report.HalsteadSummary] {
	files := make([]report.HalsteadFile, 0, len(result.Files))

	var summary report.HalsteadSummary

	var totalVolume float64

	for _, rec := range result.Files {
		if !rec.Language.HalsteadCyclomatic {
			continue
		}

		h := metrics.ComputeHalstead(rec.Tokens)

		files = append(files, report.HalsteadFile{
			Path:       rec.Path,
			Language:   rec.Language.Name,
			Vocabulary: h.Vocabulary,
			Length:     h.Length,
			Volume:     report.Metric(h.Volume),
			Difficulty: report.Metric(h.Difficulty),
			Effort:     report.Metric(h.Effort),
			Bugs:       report.Metric(h.Bugs),
			Time:       report.Metric(h.Time),
		})

		summary.TotalFiles++
		totalVolume += h.Volume
	}

	summary.TotalVolume = report.Metric(totalVolume)

	sort.SliceStable(files, func(i, j int) bool {
		switch sortBy {
		case "path":
			return files[i].Path < files[j].Path
		case "effort":
			return files[i].Effort > files[j].Effort
		case "difficulty":
			return files[i].Difficulty > files[j].Difficulty
		default:
			return files[i].Volume > files[j].Volume
		}
	})

	files = limitRows(files, top)

	return report.Document[report.HalsteadFile, report.HalsteadSummary]{Files: files, Summary: summary}
}

func halsteadTable(doc report.Document[report.HalsteadFile, report.HalsteadSummary]) report.Table {
	rows := make([][]string, 0, len(doc.Files))

	for _, f := range doc.Files {
		rows = append(rows, []string{
			f.Path, f.Language,
			strconv.Itoa(f.Vocabulary), strconv.Itoa(f.Length),
			strconv.FormatFloat(float64(f.Volume), 'f', 1, 64),
			strconv.FormatFloat(float64(f.Difficulty), 'f', 1, 64),
			strconv.FormatFloat(float64(f.Effort), 'f', 1, 64),
		})
	}

	return report.Table{
		Headers:        []string{"PATH", "LANGUAGE", "VOCAB", "LENGTH", "VOLUME", "DIFFICULTY", "EFFORT"},
		Rows:           rows,
		TruncateColumn: 0,
	}
}
