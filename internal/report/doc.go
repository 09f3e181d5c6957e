// Package report renders the per-command record types composers in
// internal/metrics, internal/dedup, and internal/vcs produce, either as a
// schema-validated JSON document or as a terminal-width-aware text table.
package report
