// Package walker enumerates a source tree, resolves each file's language
// profile, and drives the line-classification pipeline across files with a
// bounded worker pool. It owns the directory-traversal ignore rules,
// test-file filtering, and content-hash deduplication of byte-identical
// files.
//
// A single [Walk] call returns a [Result] holding one [FileRecord] per
// non-duplicate file, plus aggregate counts. The concurrency model matches
// "parallel task pool across files, single-threaded within a file": each
// worker goroutine owns one [classify.Machine] and one [token.Extract] call
// for the file it is currently processing.
package walker
