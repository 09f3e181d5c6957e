// Package vcs is cm's git collaborator: the source of per-file commit
// frequencies, blame ownership, and co-changing commit pairs that the
// hotspots, knowledge, and tc commands compose into scores. It shells out
// to the git binary (grounded on the shell-out style used elsewhere in the
// retrieval pack for git status/porcelain data) since no pack example
// vendors a git-plumbing library.
package vcs
