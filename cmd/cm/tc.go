package main

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"cm/internal/report"
	"cm/internal/vcs"
)

func newTemporalCouplingCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tc [path]",
		Short: "find files that change together across commit history",
		Args:  cobra.MaximumNArgs(1),
	}

	af := registerAnalysisFlags(cmd.Flags(), "strength")

	var minDegree int

	cmd.Flags().IntVar(&minDegree, "min-degree", 2, "minimum shared non-merge commits before a pair is considered")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		root := resolvedArgs(args)

		ctx, cancel := baseContext()
		defer cancel()

		since, err := vcs.ParseSince(a.sinceStr)
		if err != nil {
			return err
		}

		collaborator, err := vcs.NewGitCollaborator(root)
		if err != nil {
			return err
		}

		freq, err := collaborator.FileFrequencies(ctx, since)
		if err != nil {
			return err
		}

		changes, err := collaborator.CoChangingCommits(ctx, since, minDegree)
		if err != nil {
			return err
		}

		doc := buildCouplingDocument(changes, freq, af.sortBy, af.top)

		return a.writeOutput(report.KindCoupling, doc, couplingTable(doc), af.json)
	}

	return cmd
}

func buildCouplingDocument(changes []vcs.CoChange, freq vcs.Frequencies, sortBy string, top int) report.Document[report.CouplingPair, report.CouplingSummary] {
	pairs := vcs.TemporalCoupling(changes, freq)

	records := make([]report.CouplingPair, len(pairs))

	var summary report.CouplingSummary

	for i, p := range pairs {
		records[i] = report.CouplingPair{
			PathA:    p.PathA,
			PathB:    p.PathB,
			Shared:   p.Shared,
			Strength: report.Metric(p.Strength),
			Class:    string(p.Class),
		}

		summary.TotalPairs++

		switch p.Class {
		case vcs.CouplingStrong:
			summary.Strong++
		case vcs.CouplingModerate:
			summary.Moderate++
		}
	}

	if sortBy == "path" {
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].PathA != records[j].PathA {
				return records[i].PathA < records[j].PathA
			}

			return records[i].PathB < records[j].PathB
		})
	}

	records = limitRows(records, top)

	return report.Document[report.CouplingPair, report.CouplingSummary]{Files: records, Summary: summary}
}

func couplingTable(doc report.Document[report.CouplingPair, report.CouplingSummary]) report.Table {
	rows := make([][]string, 0, len(doc.Files))

	for _, p := range doc.Files {
		rows = append(rows, []string{
			p.PathA, p.PathB, strconv.Itoa(p.Shared),
			strconv.FormatFloat(float64(p.Strength), 'f', 2, 64), p.Class,
		})
	}

	return report.Table{
		Headers:        []string{"FILE A", "FILE B", "SHARED", "STRENGTH", "CLASS"},
		Rows:           rows,
		TruncateColumn: 0,
	}
}
