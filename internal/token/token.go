// Package token extracts the operator/operand stream a source file needs for
// Halstead and cyclomatic-complexity composition (see
// [cm/internal/metrics]). It is a second, narrower
// state machine over the same [cm/internal/lang.Profile]
// data classify.Machine uses: where classify only needs to know "comment,
// string, or code", the extractor needs to know what the code spans
// actually say.
package token

// Kind distinguishes the two families Halstead counts separately.
type Kind int

const (
	// Operator tokens: keywords, punctuation operators, and decision
	// tokens. Each distinct spelling is one of Halstead's n1 operators.
	Operator Kind = iota
	// Operand tokens: identifiers, numeric literals, and string literals.
	// Each distinct spelling is one of Halstead's n2 operands.
	Operand
)

// Token is one lexeme extracted from a code span.
type Token struct {
	Text string
	Kind Kind
}
