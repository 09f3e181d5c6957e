package walker

import (
	"cm/internal/classify"
	"cm/internal/dedup"
	"cm/internal/lang"
	"cm/internal/token"
)

// FileRecord is the per-file result of walking and classifying one source
// file. RawLines holds the physical lines 1:1 with Lines so downstream
// composers (dedup, Halstead/cyclomatic) can recover code-line text without
// re-reading the file.
type FileRecord struct {
	Path      string
	Language  *lang.Profile
	Hash      [32]byte
	Lines     []classify.Line
	RawLines  []string
	Tokens    []token.Token
	IsTest    bool
	Canonical bool
}

// CodeLines returns the origin-tagged code lines of r, 1-based line numbers,
// ready for [dedup.Detect].
func (r *FileRecord) CodeLines() []dedup.CodeLine {
	out := make([]dedup.CodeLine, 0, len(r.Lines))

	for i, ln := range r.Lines {
		if !ln.Code {
			continue
		}

		out = append(out, dedup.CodeLine{File: r.Path, Line: i + 1, Text: r.RawLines[i]})
	}

	return out
}

// Result aggregates a full walk.
type Result struct {
	Files []*FileRecord

	// FilesSeen counts every file that resolved a language and passed the
	// test filter, including duplicate-of-canonical files. Skipped files
	// and files that failed to read are not counted here.
	FilesSeen int

	// FilesSkipped counts files excluded because their language could not
	// be resolved, or they were test-classified and tests are excluded.
	FilesSkipped int

	// FilesDuplicated counts files discarded as byte-identical to an
	// already-seen canonical file.
	FilesDuplicated int

	// Errors holds per-file errors (unreadable file, invalid UTF-8 after
	// best-effort decode) that did not abort the walk. The walker records
	// these and continues; it does not log them itself.
	Errors []FileError
}

// FileError pairs a path with the error encountered processing it.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}
