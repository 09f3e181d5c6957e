package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	goyaml "github.com/goccy/go-yaml"
	yamlv3 "gopkg.in/yaml.v3"
)

// FileName is the default project config filename, discovered at the walk
// root unless overridden by --config.
const FileName = ".cm.yaml"

// ErrInvalidConfig wraps a malformed .cm.yaml document.
var ErrInvalidConfig = errors.New("config: invalid .cm.yaml")

// File is the decoded contents of a .cm.yaml document.
type File struct {
	Ignore    []string                    `yaml:"ignore"`
	MinLines  int                         `yaml:"min_lines"`
	SortBy    string                      `yaml:"sort_by"`
	Languages map[string]LanguageOverride `yaml:"-"`
}

// Discover locates and loads a .cm.yaml document. If override is non-empty
// it is used verbatim; otherwise FileName is looked up under root. A
// missing file (in the no-override case) is not an error: Discover returns
// a zero-value *File so callers can merge unconditionally.
func Discover(root, override string) (*File, error) {
	path := override
	if path == "" {
		path = filepath.Join(root, FileName)

		if _, err := os.Stat(path); err != nil {
			return &File{}, nil
		}
	}

	return Load(path)
}

// Load reads and decodes the .cm.yaml document at path. The top-level
// scalar/slice fields are decoded with goccy/go-yaml; the embedded
// languages: block is decoded separately with yaml.v3, since its node
// shape (a map of small per-language override structs) is simplest
// expressed against the vanilla decoder.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var f File
	if err := goyaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	var wrapper struct {
		Languages map[string]LanguageOverride `yaml:"languages"`
	}

	if err := yamlv3.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	f.Languages = wrapper.Languages

	return &f, nil
}

// MinLinesOr returns f.MinLines if cliExplicit is false (the CLI flag was
// left at its default) and f carries a positive override; otherwise cliValue
// wins, honoring "CLI flags always win over the file".
func (f *File) MinLinesOr(cliValue int, cliExplicit bool) int {
	if !cliExplicit && f != nil && f.MinLines > 0 {
		return f.MinLines
	}

	return cliValue
}

// SortByOr returns f.SortBy when the CLI left --sort-by at its default and
// f carries a non-empty override; otherwise cliValue wins.
func (f *File) SortByOr(cliValue string, cliExplicit bool) string {
	if !cliExplicit && f != nil && f.SortBy != "" {
		return f.SortBy
	}

	return cliValue
}

// IgnorePatterns merges f's ignore globs after cliPatterns; both sources
// apply, since excluding via either the file or a flag should exclude.
func (f *File) IgnorePatterns(cliPatterns []string) []string {
	if f == nil || len(f.Ignore) == 0 {
		return cliPatterns
	}

	out := make([]string, 0, len(cliPatterns)+len(f.Ignore))
	out = append(out, cliPatterns...)
	out = append(out, f.Ignore...)

	return out
}

// LanguageOverrideFor returns the override for id, and false if none is
// configured.
func (f *File) LanguageOverrideFor(id string) (LanguageOverride, bool) {
	if f == nil || f.Languages == nil {
		return LanguageOverride{}, false
	}

	ov, ok := f.Languages[id]

	return ov, ok
}
