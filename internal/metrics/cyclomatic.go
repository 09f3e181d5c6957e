package metrics

import (
	"cm/internal/lang"
	"cm/internal/token"
)

// CyclomaticComplexity counts one decision point per occurrence of a
// profile decision token (branching keywords plus short-circuit and
// ternary operators) and adds the conventional base path of 1.
func CyclomaticComplexity(profile *lang.Profile, tokens []token.Token) int {
	if len(tokens) == 0 {
		return 1
	}

	decision := make(map[string]bool, len(profile.DecisionTokens))
	for _, d := range profile.DecisionTokens {
		decision[d] = true
	}

	complexity := 1

	for _, t := range tokens {
		if t.Kind == token.Operator && decision[t.Text] {
			complexity++
		}
	}

	return complexity
}
