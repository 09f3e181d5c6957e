// Package config loads the optional .cm.yaml project file: ignore globs, a
// default dedup minimum block length, per-language include/exclude
// overrides, and a default sort key. CLI flags always win over values
// found here; this package only supplies defaults.
package config
