package walker

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"cm/internal/classify"
	"cm/internal/lang"
	"cm/internal/token"
)

// ErrRootUnreadable indicates the walk root itself could not be opened or
// does not exist, distinct from a per-file error.
var ErrRootUnreadable = errors.New("walker: root unreadable")

// Walk traverses root, classifies every resolvable regular file, and
// returns the aggregate [Result]. It honors ctx cancellation: if ctx is
// canceled (or the root is unreadable) in-flight workers stop and Walk
// returns the first error without a partial Result.
func Walk(ctx context.Context, root string, cfg Config) (*Result, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRootUnreadable, err)
	}

	ignore := newIgnoreSet(cfg.Exclude)

	paths := make(chan string, 4*cfg.Workers)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return enumerate(gctx, root, ignore, paths)
	})

	result := &Result{}
	seen := map[[32]byte]bool{}

	var skipped atomic.Int64

	records := make(chan *FileRecord, 4*cfg.Workers)
	fileErrs := make(chan FileError, 4*cfg.Workers)

	for range cfg.Workers {
		group.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case path, ok := <-paths:
					if !ok {
						return nil
					}

					rec, skip, err := processFile(path, cfg.IncludeTests)
					if err != nil {
						fileErrs <- FileError{Path: path, Err: err}
						continue
					}

					if skip {
						skipped.Add(1)
						continue
					}

					records <- rec
				}
			}
		})
	}

	var waitErr error

	go func() {
		waitErr = group.Wait()
		close(records)
		close(fileErrs)
	}()

	for records != nil || fileErrs != nil {
		select {
		case rec, ok := <-records:
			if !ok {
				records = nil
				continue
			}

			result.FilesSeen++

			if seen[rec.Hash] {
				result.FilesDuplicated++
				continue
			}

			seen[rec.Hash] = true
			rec.Canonical = true
			result.Files = append(result.Files, rec)

			if cfg.OnFile != nil {
				cfg.OnFile(rec.Path)
			}
		case ferr, ok := <-fileErrs:
			if !ok {
				fileErrs = nil
				continue
			}

			result.Errors = append(result.Errors, ferr)
		}
	}

	result.FilesSkipped = int(skipped.Load())

	if waitErr != nil {
		return nil, waitErr
	}

	return result, nil
}

// enumerate walks root, sending every eligible regular file path to paths,
// then closes paths. It honors gitignore-style pruning and excludes the VCS
// metadata directory unconditionally.
func enumerate(ctx context.Context, root string, ignore ignoreSet, paths chan<- string) error {
	defer close(paths)

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", path, err)
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		rel = filepath.ToSlash(rel)
		base := d.Name()

		if d.IsDir() {
			if path != root && ignore.matchesDir(base, rel) {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if ignore.matchesFile(base, rel) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case paths <- path:
			return nil
		}
	})
}

// processFile resolves the language, streams the file once for both the
// content hash and the line classification, and applies the test filter.
// skip is true when the language is unresolved or the file is test-classified
// and includeTests is false; in that case rec is nil and err is nil.
func processFile(path string, includeTests bool) (rec *FileRecord, skip bool, err error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from a controlled directory walk.
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}

	firstLine := data
	if nl := bytes.IndexByte(data, '\n'); nl >= 0 {
		firstLine = data[:nl]
	}

	profile, ok := lang.Resolve(path, string(firstLine))
	if !ok {
		return nil, true, nil
	}

	isTest := isTestPath(path)
	if isTest && !includeTests {
		return nil, true, nil
	}

	hash := sha256.Sum256(data)

	machine := classify.NewMachine(profile)
	lines := machine.ClassifyFile(data)
	raw := splitLines(data)

	if profile.ID == "rust" && !includeTests {
		stripRustCfgTest(lines, raw)
	}

	var tokens []token.Token
	if profile.HalsteadCyclomatic {
		tokens = token.Extract(profile, data)
	}

	return &FileRecord{
		Path:     path,
		Language: profile,
		Hash:     hash,
		Lines:    lines,
		RawLines: raw,
		Tokens:   tokens,
		IsTest:   isTest,
	}, false, nil
}

// splitLines returns the physical lines of data, matching the line count
// [classify.Machine.ClassifyFile] produces (a final unterminated line is
// still emitted).
func splitLines(data []byte) []string {
	text := string(data)
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}
