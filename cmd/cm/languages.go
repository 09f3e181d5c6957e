package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"cm/internal/lang"
	"cm/internal/report"
)

type languageRecord struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Extensions         string `json:"extensions"`
	HalsteadCyclomatic bool   `json:"halstead_cyclomatic"`
}

func newLanguagesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "list the catalogued language profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles := lang.All()

			records := make([]languageRecord, len(profiles))
			for i, p := range profiles {
				records[i] = languageRecord{
					ID:                 p.ID,
					Name:               p.Name,
					Extensions:         strings.Join(p.Extensions, ", "),
					HalsteadCyclomatic: p.HalsteadCyclomatic,
				}
			}

			sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(records)
			}

			rows := make([][]string, len(records))
			for i, r := range records {
				rows[i] = []string{r.ID, r.Name, r.Extensions, fmt.Sprintf("%t", r.HalsteadCyclomatic)}
			}

			table := report.Table{
				Headers:        []string{"ID", "NAME", "EXTENSIONS", "HALSTEAD/CYCLOMATIC"},
				Rows:           rows,
				TruncateColumn: 2,
			}

			return table.Render(os.Stdout, int(os.Stdout.Fd()))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the language list as JSON instead of a table")

	return cmd
}
