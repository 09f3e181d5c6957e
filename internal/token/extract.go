package token

import (
	"sort"
	"strings"

	"cm/internal/lang"
)

// Extract tokenizes the code spans of data per profile's lexical rules,
// skipping comments and pragma delimiters (though not pragma contents,
// which classify as code and are tokenized like any other span). It
// returns nil for profiles that opt out of Halstead/cyclomatic extraction
// ([lang.Profile.HalsteadCyclomatic] is false).
func Extract(profile *lang.Profile, data []byte) []Token {
	if !profile.HalsteadCyclomatic {
		return nil
	}

	keywords := toSet(profile.Keywords)
	punct := sortedLongestFirst(profile.Punctuation)

	var tokens []Token

	n := len(data)
	i := 0

	for i < n {
		b := data[i]

		switch {
		case isSpaceByte(b) || b == '\n':
			i++

		case profile.PragmaPair.Open != "" && hasPrefixAt(data, i, profile.PragmaPair.Open):
			i += len(profile.PragmaPair.Open)

		case profile.PragmaPair.Close != "" && hasPrefixAt(data, i, profile.PragmaPair.Close):
			i += len(profile.PragmaPair.Close)

		case profile.Block.Open != "" && hasPrefixAt(data, i, profile.Block.Open):
			i = skipBlockComment(profile, data, i)

		default:
			if lex, ok := matchLineComment(profile, data, i); ok {
				_ = lex
				i = skipLineComment(data, i)

				break
			}

			switch {
			case isQuote(profile, b):
				var lit string

				lit, i = scanString(profile, data, i)
				tokens = append(tokens, Token{Text: lit, Kind: Operand})

			case isDigit(b):
				var lit string

				lit, i = scanNumber(data, i)
				tokens = append(tokens, Token{Text: lit, Kind: Operand})

			case isIdentStart(b):
				var word string

				word, i = scanIdent(data, i)

				kind := Operand
				if keywords[word] {
					kind = Operator
				}

				tokens = append(tokens, Token{Text: word, Kind: kind})

			default:
				if lex, width, ok := matchPunctuation(data, i, punct); ok {
					tokens = append(tokens, Token{Text: lex, Kind: Operator})
					i += width
				} else {
					tokens = append(tokens, Token{Text: string(b), Kind: Operator})
					i++
				}
			}
		}
	}

	return tokens
}

func skipBlockComment(p *lang.Profile, data []byte, i int) int {
	depth := 1
	i += len(p.Block.Open)
	n := len(data)

	for i < n && depth > 0 {
		switch {
		case p.Block.Nested && hasPrefixAt(data, i, p.Block.Open):
			depth++
			i += len(p.Block.Open)
		case hasPrefixAt(data, i, p.Block.Close):
			depth--
			i += len(p.Block.Close)
		default:
			i++
		}
	}

	return i
}

func skipLineComment(data []byte, i int) int {
	for i < len(data) && data[i] != '\n' {
		i++
	}

	return i
}

// matchLineComment applies the same look-ahead disambiguation as
// classify.Machine so languages like Haskell don't eat "-->" as a comment.
func matchLineComment(p *lang.Profile, data []byte, i int) (string, bool) {
	for _, marker := range p.LineComments {
		if !hasPrefixAt(data, i, marker) {
			continue
		}

		if notBefore, ok := p.LineCommentNotBefore[marker]; ok {
			next := i + len(marker)
			if next < len(data) && strings.IndexByte(notBefore, data[next]) >= 0 {
				continue
			}
		}

		return marker, true
	}

	return "", false
}

func isQuote(p *lang.Profile, b byte) bool {
	switch b {
	case '"':
		return p.Strings.DoubleQuote || p.Strings.TripleQuote
	case '\'':
		return p.Strings.SingleQuote || p.Strings.TripleQuote
	default:
		return false
	}
}

func scanString(p *lang.Profile, data []byte, i int) (string, int) {
	start := i
	b := data[i]

	if p.Strings.TripleQuote {
		triple := tripleOf(b)
		if hasPrefixAt(data, i, triple) {
			i += 3
			for i < len(data) && !hasPrefixAt(data, i, triple) {
				i++
			}

			if i < len(data) {
				i += 3
			}

			return string(data[start:i]), i
		}
	}

	quote := b
	i++

	for i < len(data) {
		c := data[i]

		switch {
		case c == '\\' && i+1 < len(data):
			i += 2
		case c == '\n':
			return string(data[start:i]), i
		case c == quote:
			i++

			return string(data[start:i]), i
		default:
			i++
		}
	}

	return string(data[start:i]), i
}

func tripleOf(b byte) string {
	return string([]byte{b, b, b})
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v'
}

func scanIdent(data []byte, i int) (string, int) {
	start := i
	for i < len(data) && isIdentPart(data[i]) {
		i++
	}

	return string(data[start:i]), i
}

// scanNumber greedily consumes a numeric literal, permissive enough to cover
// hex, underscore-separated, and floating/exponent forms across the
// catalogue's HalsteadCyclomatic languages; it does not validate that the
// result is a well-formed literal.
func scanNumber(data []byte, i int) (string, int) {
	start := i

	for i < len(data) {
		c := data[i]

		switch {
		case isDigit(c), c == '.', c == '_',
			c == 'x', c == 'X',
			(c >= 'a' && c <= 'f'), (c >= 'A' && c <= 'F'):
			i++
		case c == 'e' || c == 'E':
			i++
		case c == '+' || c == '-':
			if i == start || (data[i-1] != 'e' && data[i-1] != 'E') {
				return string(data[start:i]), i
			}

			i++
		default:
			return string(data[start:i]), i
		}
	}

	return string(data[start:i]), i
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

func matchPunctuation(data []byte, i int, punct []string) (string, int, bool) {
	for _, p := range punct {
		if hasPrefixAt(data, i, p) {
			return p, len(p), true
		}
	}

	return "", 0, false
}

func sortedLongestFirst(in []string) []string {
	out := append([]string{}, in...)

	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})

	return out
}

func toSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}

	return m
}
