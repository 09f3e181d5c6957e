package main

import (
	"os"

	"cm/internal/report"
)

// writeOutput renders doc as JSON (optionally schema-validated) or table as
// a terminal table, per --json.
func (a *app) writeOutput(kind report.Kind, doc any, table report.Table, asJSON bool) error {
	if asJSON {
		return report.WriteJSON(os.Stdout, kind, doc, a.validateSchema)
	}

	return table.Render(os.Stdout, int(os.Stdout.Fd()))
}

// limitRows truncates rows to top when top > 0.
func limitRows[T any](rows []T, top int) []T {
	if top > 0 && len(rows) > top {
		return rows[:top]
	}

	return rows
}
