// Package profilex adds runtime profiling flags to the cm CLI.
//
// It supports CPU, heap, allocs, goroutine, threadcreate, block, and mutex
// profiles. Use [Config.RegisterFlags] to add CLI flags and
// [Config.RegisterCompletions] to wire up shell completions.
//
// Typical usage creates a [Config], registers flags, then creates a
// [Profiler] to wrap command execution:
//
//	cfg := profilex.NewConfig()
//	p := cfg.NewProfiler()
//
//	rootCmd := &cobra.Command{
//	    PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
//	        return p.Start()
//	    },
//	}
//
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
// Users can then enable profiling on any cm subcommand via flags like
// --cpu-profile=cpu.prof.
package profilex
