package walker

import (
	"path/filepath"
	"strings"
)

// vcsDir is the only directory excluded unconditionally; the walk otherwise
// visits hidden files and directories.
const vcsDir = ".git"

// ignoreSet matches a file or directory path against a flat list of
// gitignore-flavored patterns: a pattern containing no "/" matches the
// basename at any depth, and any other pattern is matched against the path
// relative to the walk root via [filepath.Match]. A trailing "/" is removed
// before matching, so "vendor/" behaves like "vendor" and matches files as
// well as directories of that name.
type ignoreSet struct {
	patterns []string
}

func newIgnoreSet(patterns []string) ignoreSet {
	return ignoreSet{patterns: patterns}
}

// matchesDir reports whether a directory named base, at relative path rel,
// should be pruned from the walk.
func (s ignoreSet) matchesDir(base, rel string) bool {
	if base == vcsDir {
		return true
	}

	return s.matches(base, rel)
}

// matchesFile reports whether a regular file should be skipped.
func (s ignoreSet) matchesFile(base, rel string) bool {
	return s.matches(base, rel)
}

func (s ignoreSet) matches(base, rel string) bool {
	for _, p := range s.patterns {
		p = strings.TrimSuffix(p, "/")

		if !strings.Contains(p, "/") {
			if ok, _ := filepath.Match(p, base); ok {
				return true
			}

			continue
		}

		if ok, _ := filepath.Match(p, rel); ok {
			return true
		}
	}

	return false
}
