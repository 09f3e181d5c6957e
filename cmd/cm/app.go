package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cm/internal/config"
	"cm/internal/logx"
	"cm/internal/profilex"
	"cm/internal/walker"
)

// ErrBadArgument indicates a malformed positional argument or flag
// combination at the cmd layer.
var ErrBadArgument = errors.New("cm: bad argument")

// app holds the CLI-wide configuration shared by every subcommand, built
// once by the root command and threaded through each RunE closure.
type app struct {
	log  *logx.Config
	prof *profilex.Config
	walk *walker.Config

	configPath     string
	progress       bool
	sinceStr       string
	validateSchema bool
}

func newApp() *app {
	return &app{
		log:  logx.NewConfig(),
		prof: profilex.NewConfig(),
		walk: walker.NewConfig(),
	}
}

func (a *app) registerPersistentFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	a.log.RegisterFlags(flags)
	a.prof.RegisterFlags(flags)
	a.walk.RegisterFlags(flags)

	flags.StringVar(&a.configPath, "config", "", "path to .cm.yaml (default: <root>/.cm.yaml)")
	flags.BoolVar(&a.progress, "progress", false, "show a live terminal dashboard while scanning")
	flags.StringVar(&a.sinceStr, "since", "", "limit git history to the last N(d|m|y), e.g. 90d")
	flags.BoolVar(&a.validateSchema, "validate-schema", false, "validate --json output against its published schema before writing it")
}

// logger builds the slog.Logger this invocation writes to, and the
// Publisher driving --progress (nil when --progress is off).
func (a *app) logger() (*slog.Logger, *logx.Publisher, error) {
	if !a.progress {
		handler, err := a.log.NewHandler(os.Stderr)
		if err != nil {
			return nil, nil, err
		}

		return slog.New(handler), nil, nil
	}

	pub := logx.NewPublisher()

	handler, err := a.log.NewHandler(pub)
	if err != nil {
		return nil, nil, err
	}

	return slog.New(handler), pub, nil
}

// resolvedArgs extracts the walk root from positional args, defaulting to
// the current directory.
func resolvedArgs(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "."
	}

	return args[0]
}

// loadProjectConfig discovers .cm.yaml at root (or a.configPath) and merges
// it into a.walk's exclude patterns, honoring "CLI flags always win".
func (a *app) loadProjectConfig(root string, excludeExplicit bool) (*config.File, error) {
	file, err := config.Discover(root, a.configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadArgument, err)
	}

	if !excludeExplicit {
		a.walk.Exclude = file.IgnorePatterns(a.walk.Exclude)
	}

	return file, nil
}

// baseContext returns a context canceled on SIGINT/SIGTERM, so an in-flight
// walk's errgroup tears down its workers on ctrl-C instead of running to
// completion.
func baseContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
