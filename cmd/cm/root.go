package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cliApp := newApp()

	rootCmd := &cobra.Command{
		Use:   "cm",
		Short: "static analysis: LOC, duplication, complexity, and git-derived hotspots",
		Long: `cm walks a source tree and reports lines of code by language, duplicate
code blocks, indentation complexity, Halstead metrics, cyclomatic complexity,
maintainability index, hotspots, ownership, and temporal coupling.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cliApp.registerPersistentFlags(rootCmd)

	completers := []func(*cobra.Command) error{
		cliApp.log.RegisterCompletions,
		cliApp.prof.RegisterCompletions,
		cliApp.walk.RegisterCompletions,
	}

	for _, register := range completers {
		if err := register(rootCmd); err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(
		newLOCCommand(cliApp),
		newDupsCommand(cliApp),
		newIndentCommand(cliApp),
		newHalsteadCommand(cliApp),
		newCyclomaticCommand(cliApp),
		newMICommand(cliApp),
		newMIVCommand(cliApp),
		newHotspotsCommand(cliApp),
		newKnowledgeCommand(cliApp),
		newTemporalCouplingCommand(cliApp),
		newLanguagesCommand(),
		newVersionCommand(),
	)

	return rootCmd
}
