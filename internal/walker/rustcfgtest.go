package walker

import (
	"strings"

	"cm/internal/classify"
)

// stripRustCfgTest rewrites lines in place so that a `#[cfg(test)]` attribute
// line (at any indentation) and its following brace-delimited block are blanked out, the way
// the rest of the pipeline treats excluded test files. This is a narrow,
// ecosystem-specific concession: brace depth is tracked with a naive byte
// scan of raw text rather than the full classifier, which is acceptable
// because `cfg(test)` blocks are attribute-delimited and rarely hide braces
// inside strings at the point of the attribute itself.
func stripRustCfgTest(lines []classify.Line, rawLines []string) {
	depth := 0
	stripping := false
	seenBrace := false

	for i, raw := range rawLines {
		trimmed := strings.TrimSpace(raw)

		if !stripping && trimmed == "#[cfg(test)]" {
			stripping = true
			seenBrace = false
			depth = 0
			lines[i] = classify.Line{Blank: true}

			continue
		}

		if !stripping {
			continue
		}

		depth += strings.Count(raw, "{") - strings.Count(raw, "}")
		if depth > 0 {
			seenBrace = true
		}

		lines[i] = classify.Line{Blank: true}

		// Only treat depth<=0 as "block closed" once the opening brace has
		// actually been seen; the attribute line and any line before it
		// (e.g. "mod tests") carry no braces and would otherwise end
		// stripping before the block even opens.
		if seenBrace && depth <= 0 {
			stripping = false
			depth = 0
			seenBrace = false
		}
	}
}
