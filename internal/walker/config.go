package walker

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for walker configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Workers      string
	IncludeTests string
	Exclude      string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f, Workers: runtime.GOMAXPROCS(0)}
}

// Config holds CLI flag values that control a walk: worker concurrency,
// whether test-classified files are included, and extra ignore patterns on
// top of the VCS directory exclusion.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags], or set fields directly and call [Walk].
type Config struct {
	Flags Flags

	Workers      int
	IncludeTests bool
	Exclude      []string

	// OnFile, when non-nil, is called on the walk's consumer goroutine once
	// per canonical file as it is accepted into the Result. It must return
	// quickly; slow callers should hand the path off to a buffered channel
	// of their own rather than blocking the walk.
	OnFile func(path string)
}

// NewConfig returns a new [Config] with default flag names and a worker
// count matching GOMAXPROCS.
func NewConfig() *Config {
	f := Flags{
		Workers:      "workers",
		IncludeTests: "include-tests",
		Exclude:      "exclude",
	}

	return f.NewConfig()
}

// RegisterFlags adds walker flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.Workers, c.Flags.Workers, c.Workers, "number of files to classify concurrently")
	flags.BoolVar(&c.IncludeTests, c.Flags.IncludeTests, false, "include test-classified files")
	flags.StringSliceVar(&c.Exclude, c.Flags.Exclude, nil, "additional ignore pattern (repeatable)")
}

// RegisterCompletions registers shell completions for walker flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.Workers, noFileComp)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Workers, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.IncludeTests, cobra.FixedCompletions(
		[]string{"true", "false"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.IncludeTests, err)
	}

	return nil
}
