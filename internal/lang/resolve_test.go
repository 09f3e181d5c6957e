package lang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cm/internal/lang"
)

func TestResolveByFilename(t *testing.T) {
	t.Parallel()

	p, ok := lang.Resolve("/repo/Makefile", "")
	assert.True(t, ok)
	assert.Equal(t, "Makefile", p.Name)
}

func TestResolveByExtension(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"main.go":      "Go",
		"lib.rs":       "Rust",
		"app.py":       "Python",
		"index.tsx":    "TSX",
		"style.scss":   "SCSS",
		"notes.R":      "R",
		"pipeline.yml": "YAML",
	}

	for path, want := range tcs {
		p, ok := lang.Resolve(path, "")
		assert.True(t, ok, path)
		assert.Equal(t, want, p.Name, path)
	}
}

func TestResolveLongestExtensionWins(t *testing.T) {
	t.Parallel()

	p, ok := lang.Resolve("config.dockerfile", "")
	assert.True(t, ok)
	assert.Equal(t, "Dockerfile", p.Name)
}

func TestResolveByShebang(t *testing.T) {
	t.Parallel()

	p, ok := lang.Resolve("build-script", "#!/usr/bin/env python3")
	assert.True(t, ok)
	assert.Equal(t, "Python", p.Name)
}

func TestResolveByShebangWithoutEnv(t *testing.T) {
	t.Parallel()

	p, ok := lang.Resolve("run", "#!/bin/bash")
	assert.True(t, ok)
	assert.Equal(t, "Bash", p.Name)
}

func TestResolveUnknownIsSkipped(t *testing.T) {
	t.Parallel()

	_, ok := lang.Resolve("binary.dat", "")
	assert.False(t, ok)
}

func TestCatalogueHasNoDuplicateIDs(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, p := range lang.All() {
		assert.False(t, seen[p.ID], "duplicate id %q", p.ID)
		seen[p.ID] = true
	}
}

func TestCatalogueCoversFortyFivePlusLanguages(t *testing.T) {
	t.Parallel()

	assert.GreaterOrEqual(t, len(lang.All()), 45)
}
