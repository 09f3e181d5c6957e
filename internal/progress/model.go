package progress

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const maxLogLines = 6

var (
	styleTitle = lipgloss.NewStyle().Bold(true)
	stylePath  = lipgloss.NewStyle().Faint(true)
	styleLog   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// updateMsg wraps an [Update] for the bubbletea message loop.
type updateMsg Update

// logLineMsg is one formatted log line read from a [cm/internal/logx.Subscription].
type logLineMsg string

// reporterDoneMsg signals the reporter channel closed (the walk finished).
type reporterDoneMsg struct{}

// logDoneMsg signals the log subscription closed.
type logDoneMsg struct{}

// logLines abstracts the subscription this model reads formatted log text
// from, so tests can supply a fake without standing up a real
// cm/internal/logx.Publisher.
type logLines interface {
	ReadLine() (string, bool)
}

// Model is the bubbletea model backing the --progress dashboard.
type Model struct {
	reporter *Reporter
	logs     logLines

	filesScanned    int
	duplicateGroups int
	currentPath     string
	logTail         []string
	reporterDone    bool
	logDone         bool
}

// NewModel builds a dashboard model reading progress from reporter and log
// text from logs.
func NewModel(reporter *Reporter, logs logLines) *Model {
	return &Model{reporter: reporter, logs: logs}
}

// Init starts both read loops, mirroring the teacher's pattern of arming one
// tea.Cmd per external source and re-arming it from Update.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.readUpdate(), m.readLog())
}

func (m *Model) readUpdate() tea.Cmd {
	return func() tea.Msg {
		u, ok := <-m.reporter.updates
		if !ok {
			return reporterDoneMsg{}
		}

		return updateMsg(u)
	}
}

func (m *Model) readLog() tea.Cmd {
	return func() tea.Msg {
		if m.logs == nil {
			return logDoneMsg{}
		}

		line, ok := m.logs.ReadLine()
		if !ok {
			return logDoneMsg{}
		}

		return logLineMsg(line)
	}
}

// Update handles incoming progress snapshots, log lines, and quit keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case updateMsg:
		m.filesScanned = msg.FilesScanned
		m.duplicateGroups = msg.DuplicateGroups
		m.currentPath = msg.CurrentPath

		return m, m.readUpdate()

	case reporterDoneMsg:
		m.reporterDone = true

		if m.logDone {
			return m, tea.Quit
		}

		return m, nil

	case logLineMsg:
		m.logTail = append(m.logTail, string(msg))
		if len(m.logTail) > maxLogLines {
			m.logTail = m.logTail[len(m.logTail)-maxLogLines:]
		}

		return m, m.readLog()

	case logDoneMsg:
		m.logDone = true

		if m.reporterDone {
			return m, tea.Quit
		}

		return m, nil
	}

	return m, nil
}

// View renders the scan counters, current path, and trailing log lines.
func (m *Model) View() tea.View {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", styleTitle.Render(
		fmt.Sprintf("scanning: %d files, %d duplicate groups", m.filesScanned, m.duplicateGroups)))

	if m.currentPath != "" {
		fmt.Fprintf(&b, "%s\n", stylePath.Render(m.currentPath))
	}

	for _, line := range m.logTail {
		fmt.Fprintf(&b, "%s\n", styleLog.Render(line))
	}

	return tea.NewView(b.String())
}
