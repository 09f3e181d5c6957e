package main

import "github.com/spf13/pflag"

// analysisFlags holds the flags common to every per-file analysis
// subcommand (loc, dups, indent, hal, cycom, mi, miv): output shape,
// row limiting, and sort order.
type analysisFlags struct {
	json   bool
	top    int
	sortBy string
}

func registerAnalysisFlags(flags *pflag.FlagSet, defaultSortBy string) *analysisFlags {
	af := &analysisFlags{}

	flags.BoolVar(&af.json, "json", false, "emit the machine-readable JSON document instead of a table")
	flags.IntVar(&af.top, "top", 20, "limit the table/files list to the top N rows (0 for unlimited)")
	flags.StringVar(&af.sortBy, "sort-by", defaultSortBy, "field to sort rows by")

	return af
}

// sortByExplicit reports whether --sort-by was set on the command line,
// distinguishing an explicit choice from the flag's own default so
// internal/config's "CLI flags always win" rule can apply.
func sortByExplicit(flags *pflag.FlagSet) bool {
	return flags.Changed("sort-by")
}
