package progress

import "testing"

type fakeLogLines struct {
	lines []string
	i     int
}

func (f *fakeLogLines) ReadLine() (string, bool) {
	if f.i >= len(f.lines) {
		return "", false
	}

	line := f.lines[f.i]
	f.i++

	return line, true
}

func TestModelUpdateTracksProgress(t *testing.T) {
	m := NewModel(NewReporter(), &fakeLogLines{})

	next, cmd := m.Update(updateMsg{FilesScanned: 5, DuplicateGroups: 2, CurrentPath: "x.go"})

	got := next.(*Model)
	if got.filesScanned != 5 || got.duplicateGroups != 2 || got.currentPath != "x.go" {
		t.Fatalf("model = %+v, want updated fields", got)
	}

	if cmd == nil {
		t.Fatalf("Update() cmd = nil, want a re-armed read command")
	}
}

func TestModelUpdateAppendsAndCapsLogTail(t *testing.T) {
	m := NewModel(NewReporter(), &fakeLogLines{})

	for i := 0; i < maxLogLines+3; i++ {
		m.Update(logLineMsg("line"))
	}

	if len(m.logTail) != maxLogLines {
		t.Fatalf("len(logTail) = %d, want %d", len(m.logTail), maxLogLines)
	}
}

func TestModelQuitsWhenBothSourcesDone(t *testing.T) {
	m := NewModel(NewReporter(), &fakeLogLines{})

	if _, cmd := m.Update(reporterDoneMsg{}); cmd != nil {
		t.Fatalf("first done cmd = non-nil, want nil (waiting on logs)")
	}

	if _, cmd := m.Update(logDoneMsg{}); cmd == nil {
		t.Fatalf("second done cmd = nil, want tea.Quit")
	}
}

func TestModelViewDoesNotPanic(t *testing.T) {
	m := NewModel(NewReporter(), &fakeLogLines{})
	m.filesScanned = 4
	m.duplicateGroups = 1
	m.currentPath = "x.go"
	m.logTail = []string{"warn: skipped y.go"}

	_ = m.View()
}
