package progress

import (
	tea "charm.land/bubbletea/v2"
)

// Run starts the dashboard and blocks until the walk and its log
// subscription both finish or the user quits. logs may be nil to run
// without a log tail.
func Run(reporter *Reporter, logs logLines) error {
	program := tea.NewProgram(NewModel(reporter, logs))

	_, err := program.Run()

	return err
}
