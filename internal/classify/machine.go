package classify

import (
	"bytes"

	"cm/internal/lang"
)

// stringKind distinguishes the four quoting forms the state machine can be
// inside.
type stringKind int

const (
	stringNone stringKind = iota
	stringSingle
	stringDouble
	stringTripleSingle
	stringTripleDouble
)

// mode is the state machine's coarse state. Pragma mode is tracked
// separately (inPragma) since it behaves like Normal except that
// line-comment and block-comment detection are suspended and every byte
// counts as code.
type mode int

const (
	modeNormal mode = iota
	modeString
	modeBlockComment
)

// Machine is a per-file line classifier. It carries state across physical
// lines (block-comment depth, the kind of string currently open, the
// indentation stack) but classifies one file end-to-end via
// [Machine.ClassifyFile]; it is not safe for concurrent use by multiple
// goroutines on the same file, matching the "single-threaded within a file"
// concurrency model.
type Machine struct {
	profile *lang.Profile

	mode       mode
	strKind    stringKind
	blockDepth int
	inPragma   bool
	escaped    bool

	indentStack []int
}

// NewMachine creates a [Machine] bound to profile.
func NewMachine(profile *lang.Profile) *Machine {
	return &Machine{profile: profile}
}

// lineAcc accumulates the per-line flags the classifier verdict rule needs.
type lineAcc struct {
	sawCode     bool
	sawComment  bool
	anyNonBlank bool
	inLeadingWS bool
	leadingCol  int
}

func (a *lineAcc) reset() {
	*a = lineAcc{inLeadingWS: true}
}

// trackColumn updates the leading-indentation column for a byte that has not
// yet been classified, and the any-non-blank flag, both of which are
// positional properties of the raw line independent of FSM state.
func (a *lineAcc) trackColumn(b byte) {
	if b != '\n' && !isSpace(b) {
		a.anyNonBlank = true
	}

	if !a.inLeadingWS {
		return
	}

	switch b {
	case ' ':
		a.leadingCol++
	case '\t':
		a.leadingCol += 8 - a.leadingCol%8
	default:
		a.inLeadingWS = false
	}
}

// ClassifyFile classifies every physical line of data and returns one
// [Line] per line, including a final unterminated line if data does not end
// in a newline. An empty file yields no lines.
func (m *Machine) ClassifyFile(data []byte) []Line {
	if len(data) == 0 {
		return nil
	}

	var lines []Line

	n := len(data)
	i := 0

	if bytes.HasPrefix(data, []byte("#!")) {
		end := bytes.IndexByte(data, '\n')
		if end == -1 {
			end = n
		}

		lines = append(lines, Line{Code: true, IndentLevel: m.pushIndent(0)})

		if end == n {
			return lines
		}

		i = end + 1
	}

	var acc lineAcc

	acc.reset()

	flush := func() {
		lines = append(lines, m.finishLine(acc))
		acc.reset()
	}

	for i < n {
		b := data[i]
		acc.trackColumn(b)

		switch {
		case m.inPragma:
			i = m.stepPragma(data, i, &acc, flush)
		case m.mode == modeNormal:
			i = m.stepNormal(data, i, &acc, flush)
		case m.mode == modeString:
			i = m.stepString(data, i, &acc, flush)
		default: // modeBlockComment
			i = m.stepBlockComment(data, i, &acc, flush)
		}
	}

	if data[n-1] != '\n' {
		flush()
	}

	return lines
}

// finishLine applies the per-line verdict rule: blank unless any non-blank
// byte was seen, else code if any code byte was seen (mixed code+comment
// lines count as code, matching cloc), else comment.
func (m *Machine) finishLine(acc lineAcc) Line {
	switch {
	case !acc.anyNonBlank:
		return Line{Blank: true}
	case acc.sawCode:
		return Line{Code: true, IndentLevel: m.pushIndent(acc.leadingCol)}
	default:
		return Line{Comment: true}
	}
}

// pushIndent maps a raw leading-whitespace column to its logical depth by
// maintaining a stack of distinct columns seen so far: shallower or equal
// columns pop the stack back to that level; a strictly deeper column pushes
// a new level. Only code lines call this, so blank and comment interior
// lines never perturb the stack.
func (m *Machine) pushIndent(column int) uint32 {
	for len(m.indentStack) > 0 && m.indentStack[len(m.indentStack)-1] > column {
		m.indentStack = m.indentStack[:len(m.indentStack)-1]
	}

	if len(m.indentStack) == 0 || m.indentStack[len(m.indentStack)-1] != column {
		m.indentStack = append(m.indentStack, column)
	}

	return uint32(len(m.indentStack))
}

func hasPrefixAt(data []byte, i int, prefix string) bool {
	if prefix == "" {
		return false
	}

	end := i + len(prefix)
	if end > len(data) {
		return false
	}

	return string(data[i:end]) == prefix
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v'
}
