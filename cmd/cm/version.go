package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cm/internal/buildinfo"
)

func newVersionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary := buildinfo.Current()

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(summary)
			}

			fmt.Println(summary.String())

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit build information as JSON")

	return cmd
}
