package main

import (
	"context"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"cm/internal/report"
	"cm/internal/vcs"
	"cm/internal/walker"
)

func newKnowledgeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knowledge [path]",
		Short: "map file ownership by blame line share",
		Args:  cobra.MaximumNArgs(1),
	}

	af := registerAnalysisFlags(cmd.Flags(), "path")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		root := resolvedArgs(args)

		ctx, cancel := baseContext()
		defer cancel()

		file, err := a.loadProjectConfig(root, cmd.Flags().Changed("exclude"))
		if err != nil {
			return err
		}

		sortBy := file.SortByOr(af.sortBy, sortByExplicit(cmd.Flags()))

		collaborator, err := vcs.NewGitCollaborator(root)
		if err != nil {
			return err
		}

		result, err := a.scan(ctx, root)
		if err != nil {
			return err
		}

		doc, err := buildKnowledgeDocument(ctx, collaborator, result, sortBy, af.top)
		if err != nil {
			return err
		}

		return a.writeOutput(report.KindKnowledge, doc, knowledgeTable(doc), af.json)
	}

	return cmd
}

func buildKnowledgeDocument(ctx context.Context, collaborator *vcs.GitCollaborator, result *walker.Result, sortBy string, top int) (report.Document[report.KnowledgeFile, report.KnowledgeSummary], error) {
	files := make([]report.KnowledgeFile, len(result.Files))

	group, gctx := errgroup.WithContext(ctx)

	for i, rec := range result.Files {
		group.Go(func() error {
			blame, err := collaborator.BlameFile(gctx, rec.Path)
			if err != nil {
				return err
			}

			owners := vcs.Knowledge(blame)
			shares := make([]report.OwnerShare, len(owners))

			for j, o := range owners {
				shares[j] = report.OwnerShare{Author: o.Author, Lines: o.Lines, Percent: report.Metric(o.Percent)}
			}

			files[i] = report.KnowledgeFile{Path: rec.Path, Owners: shares}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return report.Document[report.KnowledgeFile, report.KnowledgeSummary]{}, err
	}

	sort.SliceStable(files, func(i, j int) bool {
		switch sortBy {
		case "owners":
			return len(files[i].Owners) > len(files[j].Owners)
		default:
			return files[i].Path < files[j].Path
		}
	})

	files = limitRows(files, top)

	return report.Document[report.KnowledgeFile, report.KnowledgeSummary]{
		Files:   files,
		Summary: report.KnowledgeSummary{TotalFiles: len(result.Files)},
	}, nil
}

func knowledgeTable(doc report.Document[report.KnowledgeFile, report.KnowledgeSummary]) report.Table {
	rows := make([][]string, 0, len(doc.Files))

	for _, f := range doc.Files {
		owner, lines, percent := "-", "0", "0.0"

		if len(f.Owners) > 0 {
			owner = f.Owners[0].Author
			lines = strconv.Itoa(f.Owners[0].Lines)
			percent = strconv.FormatFloat(float64(f.Owners[0].Percent), 'f', 1, 64)
		}

		rows = append(rows, []string{f.Path, owner, lines, percent, strconv.Itoa(len(f.Owners))})
	}

	return report.Table{
		Headers:        []string{"PATH", "TOP OWNER", "LINES", "PERCENT", "OWNERS"},
		Rows:           rows,
		TruncateColumn: 0,
	}
}
