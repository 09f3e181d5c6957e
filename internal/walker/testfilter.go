package walker

import (
	"path/filepath"
	"strings"
)

// testDirSegments are path segments that mark every file beneath them as
// test-classified, regardless of filename.
var testDirSegments = map[string]bool{
	"tests":     true,
	"test":      true,
	"__tests__": true,
	"spec":      true,
}

// testFilenameSuffixes are closed-set suffix patterns recognized across the
// supported ecosystems.
var testFilenameSuffixes = []string{
	"_test.rs", "_test.go", "_test.cpp", "_test.cc", "_test.c",
	".test.js", ".test.ts", ".test.jsx", ".test.tsx",
	".spec.js", ".spec.ts", ".spec.jsx", ".spec.tsx",
	"Test.java",
}

// testFilenamePrefixes are closed-set prefix patterns, keyed by extension.
var testFilenamePrefixes = map[string]string{
	".py": "test_",
}

// isTestPath reports whether path is test-classified per the closed set of
// directory-segment and filename rules.
func isTestPath(path string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		if testDirSegments[seg] {
			return true
		}
	}

	base := filepath.Base(path)

	for _, suffix := range testFilenameSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}

	ext := filepath.Ext(base)
	if prefix, ok := testFilenamePrefixes[ext]; ok && strings.HasPrefix(base, prefix) {
		return true
	}

	return false
}
