// Package classify implements the line-classification pipeline: a
// per-language, character-level state machine that walks a file's byte
// stream and partitions every physical line into exactly one of blank,
// comment, or code.
//
// Every other cm metric is a function of this classification. Halstead and
// cyclomatic extraction (see [cm/internal/token]) reuse the
// same state transitions to stay restricted to code spans; duplicate
// detection and indentation statistics consume only the code lines this
// package exposes.
package classify

// Line is the classified-line record for one physical line of a source
// file. Exactly one of Blank, Comment, or Code is true. IndentLevel is
// meaningful only when Code is true.
type Line struct {
	Blank       bool
	Comment     bool
	Code        bool
	IndentLevel uint32
}

// Kind identifies the classification of a line, used where callers want a
// single comparable value instead of three booleans.
type Kind int

const (
	KindBlank Kind = iota
	KindComment
	KindCode
)

// Kind returns the single-valued classification of l.
func (l Line) Kind() Kind {
	switch {
	case l.Code:
		return KindCode
	case l.Comment:
		return KindComment
	default:
		return KindBlank
	}
}
