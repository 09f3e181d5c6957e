package lang

import (
	"path/filepath"
	"sort"
	"strings"
)

var (
	byFilename  = map[string]*Profile{}
	byExtension []extEntry // sorted longest-suffix-first
	byID        = map[string]*Profile{}
)

type extEntry struct {
	suffix  string
	profile *Profile
}

func init() {
	for i := range Catalogue {
		p := &Catalogue[i]
		byID[p.ID] = p

		for _, fn := range p.Filenames {
			byFilename[fn] = p
		}

		for _, ext := range p.Extensions {
			byExtension = append(byExtension, extEntry{suffix: ext, profile: p})
		}
	}

	sort.SliceStable(byExtension, func(i, j int) bool {
		return len(byExtension[i].suffix) > len(byExtension[j].suffix)
	})
}

// ByID looks up a profile by its stable short identifier.
func ByID(id string) (*Profile, bool) {
	p, ok := byID[id]
	return p, ok
}

// All returns every catalogued profile, in declaration order.
func All() []Profile {
	return Catalogue
}

// Resolve maps a file path and (optionally empty) first line to a profile,
// following the precedence order from the Language Catalogue: exact
// filename, then longest-matching extension, then shebang interpreter. It
// reports false when no profile matches, which the walker treats as a
// silent skip.
func Resolve(path string, firstLine string) (*Profile, bool) {
	base := filepath.Base(path)

	if p, ok := byFilename[base]; ok {
		return p, true
	}

	for _, entry := range byExtension {
		if hasSuffixMatch(base, entry.suffix) {
			return entry.profile, true
		}
	}

	if strings.HasPrefix(firstLine, "#!") {
		interp := interpreterFromShebang(firstLine)
		if interp != "" {
			for i := range Catalogue {
				p := &Catalogue[i]
				for _, name := range p.Interpreters {
					if name == interp {
						return p, true
					}
				}
			}
		}
	}

	return nil, false
}

// hasSuffixMatch matches filename suffixes case-sensitively, as most
// ecosystems distinguish ".R" from ".r"; a profile that wants both simply
// lists both.
func hasSuffixMatch(name, suffix string) bool {
	if len(name) <= len(suffix) {
		return false
	}

	return strings.HasSuffix(name, suffix)
}

// interpreterFromShebang extracts the interpreter basename from a "#!" line,
// stripping a leading "/usr/bin/env" (or similar) indirection.
func interpreterFromShebang(line string) string {
	line = strings.TrimPrefix(line, "#!")
	line = strings.TrimSpace(line)

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	first := filepath.Base(fields[0])
	if first == "env" && len(fields) > 1 {
		return filepath.Base(fields[1])
	}

	return first
}
