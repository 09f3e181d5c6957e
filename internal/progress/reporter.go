package progress

// Update is one snapshot of walk progress, sent by the walker's caller as
// files complete.
type Update struct {
	FilesScanned    int
	DuplicateGroups int
	CurrentPath     string
}

// Reporter fans walk progress into the bubbletea model's message loop. A
// full buffer drops the update rather than blocking the walker, since only
// the latest snapshot matters for display.
type Reporter struct {
	updates chan Update
}

// NewReporter returns a Reporter with a small buffer; drops are expected
// and harmless under fast scans.
func NewReporter() *Reporter {
	return &Reporter{updates: make(chan Update, 8)}
}

// Report submits u, dropping it if the buffer is full.
func (r *Reporter) Report(u Update) {
	select {
	case r.updates <- u:
	default:
	}
}

// Close signals no further updates will be sent.
func (r *Reporter) Close() {
	close(r.updates)
}
