// Package logx provides structured logging handler construction for cm,
// built on [log/slog].
//
// It supports output formats [FormatJSON] and [FormatLogfmt], and the
// four standard [slog.Level] severities. Use [CreateHandler] to build a
// handler directly, or use [Config] with CLI flag integration via
// [github.com/spf13/pflag] and shell completion support via
// [github.com/spf13/cobra].
//
// Typical usage creates a [Config], registers flags, then builds a handler
// at startup:
//
//	cfg := logx.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
//
// Per-file errors encountered while walking a tree are logged at
// [slog.LevelWarn] and the offending file is omitted from aggregates; a
// root or argument error is printed to stderr before cm exits non-zero.
package logx
