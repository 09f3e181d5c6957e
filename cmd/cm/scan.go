package main

import (
	"context"
	"fmt"
	"log/slog"

	"cm/internal/progress"
	"cm/internal/walker"
)

// scan runs the walker under a.walk's configuration, logging per-file
// errors at warn (the spec's "log and omit from aggregates" policy) and
// driving the --progress dashboard when enabled. Walker-root errors are
// returned for the caller to map to exit code 1.
func (a *app) scan(ctx context.Context, root string) (*walker.Result, error) {
	logger, pub, err := a.logger()
	if err != nil {
		return nil, err
	}

	var (
		reporter *progress.Reporter
		done     chan error
	)

	if pub != nil {
		reporter = progress.NewReporter()
		sub := pub.Subscribe()
		done = make(chan error, 1)

		go func() {
			done <- progress.Run(reporter, progress.NewSubscriptionAdapter(sub))
		}()
	}

	profiler := a.prof.NewProfiler()

	if err := profiler.Start(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadArgument, err)
	}

	walkCfg := *a.walk

	var filesScanned int

	if reporter != nil {
		walkCfg.OnFile = func(path string) {
			filesScanned++
			reporter.Report(progress.Update{FilesScanned: filesScanned, CurrentPath: path})
		}
	}

	result, walkErr := walker.Walk(ctx, root, walkCfg)

	if stopErr := profiler.Stop(); stopErr != nil && walkErr == nil {
		walkErr = stopErr
	}

	if walkErr == nil {
		logFileErrors(logger, result)
	}

	if reporter != nil {
		reporter.Close()
		_ = pub.Close() // closes the log subscription so the dashboard's log tail quits too
		<-done
	}

	if walkErr != nil {
		return nil, walkErr
	}

	return result, nil
}

func logFileErrors(logger *slog.Logger, result *walker.Result) {
	for _, ferr := range result.Errors {
		logger.Warn("skipping file", "path", ferr.Path, "error", ferr.Err)
	}
}
