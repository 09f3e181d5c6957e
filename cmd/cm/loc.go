package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"cm/internal/report"
	"cm/internal/walker"
)

func newLOCCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loc [path]",
		Short: "count blank, comment, and code lines by language",
		Args:  cobra.MaximumNArgs(1),
	}

	af := registerAnalysisFlags(cmd.Flags(), "code")

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

		doc := buildLOCDocument(result, sortBy, af.top)

		table := locTable(doc)

		return a.writeOutput(report.KindLOC, doc, table, af.json)
	}

	return cmd
}

func buildLOCDocument(result *walker.Result, sortBy string, top int) report.Document[report.LOCFile, report.LOCSummary] {
	files := make([]report.LOCFile, 0, len(result.Files))
	langs := map[string]report.LanguageTotals{}

	var summary report.LOCSummary
	summary.Languages = langs

	for _, rec := range result.Files {
		blank, comment, code := locCounts(rec)

		files = append(files, report.LOCFile{
			Path:     rec.Path,
			Language: rec.Language.Name,
			Blank:    blank,
			Comment:  comment,
			Code:     code,
		})

		summary.TotalFiles++
		summary.TotalBlank += blank
		summary.TotalComment += comment
		summary.TotalCode += code

		lt := langs[rec.Language.ID]
		lt.Files++
		lt.Blank += blank
		lt.Comment += comment
		lt.Code += code
		langs[rec.Language.ID] = lt
	}

	sortLOCFiles(files, sortBy)

	files = limitRows(files, top)

	return report.Document[report.LOCFile, report.LOCSummary]{Files: files, Summary: summary}
}

func locCounts(rec *walker.FileRecord) (blank, comment, code int) {
	for _, ln := range rec.Lines {
		switch {
		case ln.Code:
			code++
		case ln.Comment:
			comment++
		default:
			blank++
		}
	}

	return blank, comment, code
}

func sortLOCFiles(files []report.LOCFile, sortBy string) {
	less := func(i, j int) bool {
		switch sortBy {
		case "path":
			return files[i].Path < files[j].Path
		case "blank":
			return files[i].Blank > files[j].Blank
		case "comment":
			return files[i].Comment > files[j].Comment
		case "language":
			return files[i].Language < files[j].Language
		default:
			return files[i].Code > files[j].Code
		}
	}

	sort.SliceStable(files, less)
}

func locTable(doc report.Document[report.LOCFile, report.LOCSummary]) report.Table {
	rows := make([][]string, 0, len(doc.Files)+1)

	for _, f := range doc.Files {
		rows = append(rows, []string{
			f.Path, f.Language,
			strconv.Itoa(f.Blank), strconv.Itoa(f.Comment), strconv.Itoa(f.Code),
		})
	}

	rows = append(rows, []string{
		"TOTAL", fmt.Sprintf("%d languages", len(doc.Summary.Languages)),
		strconv.Itoa(doc.Summary.TotalBlank), strconv.Itoa(doc.Summary.TotalComment), strconv.Itoa(doc.Summary.TotalCode),
	})

	return report.Table{
		Headers:        []string{"PATH", "LANGUAGE", "BLANK", "COMMENT", "CODE"},
		Rows:           rows,
		TruncateColumn: 0,
	}
}
