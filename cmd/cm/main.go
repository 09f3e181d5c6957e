// Command cm walks a source tree and reports LOC by language, duplicate
// blocks, indentation complexity, Halstead metrics, cyclomatic complexity,
// maintainability-index variants, hotspots, ownership, and temporal
// coupling.
package main

import (
	"errors"
	"fmt"
	"os"

	"cm/internal/vcs"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCommand()

	err := root.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintln(os.Stderr, err)

	if errors.Is(err, vcs.ErrGitAbsent) {
		return 2
	}

	return 1
}
