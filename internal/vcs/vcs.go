package vcs

import (
	"context"
	"errors"
	"time"
)

// ErrGitAbsent indicates the git binary could not be found on PATH.
var ErrGitAbsent = errors.New("vcs: git binary not found")

// ErrGitCorrupt indicates git produced output this package could not parse.
// A git command that exits non-zero is returned as a plain error carrying
// git's stderr, not wrapped in ErrGitCorrupt.
var ErrGitCorrupt = errors.New("vcs: git output could not be parsed")

// Frequencies maps a repository-relative path to its non-merge commit
// count.
type Frequencies map[string]int

// BlameLine is one line of `git blame` output.
type BlameLine struct {
	LineNo     int
	Author     string
	CommitTime time.Time
}

// CoChange is one pair of files that changed together in at least
// minDegree non-merge commits.
type CoChange struct {
	PathA  string
	PathB  string
	Shared int
}

// Collaborator is the git history interface cm's history-dependent
// commands (hotspots, knowledge, tc) consume. Since is the zero value for
// "no lower bound" (the full history).
type Collaborator interface {
	FileFrequencies(ctx context.Context, since time.Duration) (Frequencies, error)
	BlameFile(ctx context.Context, path string) ([]BlameLine, error)
	CoChangingCommits(ctx context.Context, since time.Duration, minDegree int) ([]CoChange, error)
}
