package classify

import (
	"bytes"
	"strings"
)

// stepNormal advances the machine by one lexical unit while in the Normal
// state, applying the precedence order from the Line Classifier spec:
// pragma open, block-comment open, line-comment marker, string open, then
// plain code/whitespace. It returns the index to resume scanning from.
func (m *Machine) stepNormal(data []byte, i int, acc *lineAcc, flush func()) int {
	b := data[i]

	if m.profile.PragmaPair.Open != "" && hasPrefixAt(data, i, m.profile.PragmaPair.Open) {
		acc.sawCode = true
		m.inPragma = true

		return i + len(m.profile.PragmaPair.Open)
	}

	if m.profile.Block.Open != "" && hasPrefixAt(data, i, m.profile.Block.Open) {
		acc.sawComment = true
		m.mode = modeBlockComment
		m.blockDepth = 1

		return i + len(m.profile.Block.Open)
	}

	if _, ok := m.matchLineComment(data, i); ok {
		acc.sawComment = true

		nl := bytes.IndexByte(data[i:], '\n')
		if nl == -1 {
			return len(data)
		}

		return i + nl // leave the newline for the caller to flush on
	}

	if kind, width, ok := m.matchStringOpen(data, i); ok {
		acc.sawCode = true
		m.mode = modeString
		m.strKind = kind

		return i + width
	}

	if b == '\n' {
		flush()

		return i + 1
	}

	if !isSpace(b) {
		acc.sawCode = true
	}

	return i + 1
}

// stepPragma advances the machine while inside a pragma region: every byte
// up to and including the close delimiter classifies as code, and
// block/line-comment detection is suspended.
func (m *Machine) stepPragma(data []byte, i int, acc *lineAcc, flush func()) int {
	b := data[i]

	if hasPrefixAt(data, i, m.profile.PragmaPair.Close) {
		acc.sawCode = true
		m.inPragma = false

		return i + len(m.profile.PragmaPair.Close)
	}

	acc.sawCode = true

	if b == '\n' {
		flush()
	}

	return i + 1
}

// stepBlockComment advances the machine while inside a block comment. A
// nested profile's second open delimiter increments depth; the close
// delimiter decrements it, returning to Normal at depth zero.
func (m *Machine) stepBlockComment(data []byte, i int, acc *lineAcc, flush func()) int {
	b := data[i]
	acc.sawComment = true

	if m.profile.Block.Nested && hasPrefixAt(data, i, m.profile.Block.Open) {
		m.blockDepth++

		return i + len(m.profile.Block.Open)
	}

	if hasPrefixAt(data, i, m.profile.Block.Close) {
		m.blockDepth--
		width := i + len(m.profile.Block.Close)

		if m.blockDepth <= 0 {
			m.mode = modeNormal
			m.blockDepth = 0
		}

		return width
	}

	if b == '\n' {
		flush()
	}

	return i + 1
}

// stepString advances the machine inside a string literal. Single/double
// quoted strings never span lines for classification purposes: reaching
// end-of-line unconditionally returns to Normal, even mid-escape. Triple
// quoted strings only close on a matching triple delimiter and preserve
// state across end-of-line.
func (m *Machine) stepString(data []byte, i int, acc *lineAcc, flush func()) int {
	acc.sawCode = true

	if m.strKind == stringTripleSingle || m.strKind == stringTripleDouble {
		return m.stepTripleString(data, i, flush)
	}

	b := data[i]
	quote := byte('"')

	if m.strKind == stringSingle {
		quote = '\''
	}

	switch {
	case b == '\n':
		m.mode = modeNormal
		m.strKind = stringNone
		m.escaped = false

		flush()

		return i + 1

	case m.escaped:
		m.escaped = false

		return i + 1

	case b == '\\':
		m.escaped = true

		return i + 1

	case b == quote:
		m.mode = modeNormal
		m.strKind = stringNone

		return i + 1

	default:
		return i + 1
	}
}

func (m *Machine) stepTripleString(data []byte, i int, flush func()) int {
	triple := `"""`
	if m.strKind == stringTripleSingle {
		triple = `'''`
	}

	if hasPrefixAt(data, i, triple) {
		m.mode = modeNormal
		m.strKind = stringNone

		return i + len(triple)
	}

	if data[i] == '\n' {
		flush()
	}

	return i + 1
}

// matchLineComment reports whether data at i begins a line-comment marker,
// applying the profile's look-left ("not-before") disambiguation per
// marker: a marker does not match if the byte immediately following it is
// in that marker's suppression set.
func (m *Machine) matchLineComment(data []byte, i int) (string, bool) {
	for _, marker := range m.profile.LineComments {
		if !hasPrefixAt(data, i, marker) {
			continue
		}

		if notBefore, ok := m.profile.LineCommentNotBefore[marker]; ok {
			next := i + len(marker)
			if next < len(data) && strings.IndexByte(notBefore, data[next]) >= 0 {
				continue
			}
		}

		return marker, true
	}

	return "", false
}

// matchStringOpen reports whether data at i opens a string literal per the
// profile's [cm/internal/lang.StringRule], preferring the
// triple-quoted form over the single-character form of the same quote byte
// when both are enabled.
func (m *Machine) matchStringOpen(data []byte, i int) (stringKind, int, bool) {
	b := data[i]

	if m.profile.HasTripleFor(b) {
		if b == '"' && hasPrefixAt(data, i, `"""`) {
			return stringTripleDouble, 3, true
		}

		if b == '\'' && hasPrefixAt(data, i, `'''`) {
			return stringTripleSingle, 3, true
		}
	}

	if b == '"' && m.profile.Strings.DoubleQuote {
		return stringDouble, 1, true
	}

	if b == '\'' && m.profile.Strings.SingleQuote {
		return stringSingle, 1, true
	}

	return stringNone, 0, false
}
