// Package cli implements the tagtree command line tool.
package cli

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer keys of the packages the tool drives.
var traceKeys = []string{"tagtree", "tagtree.loader", "tagtree.html"}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbosity int
}

// NewRootCommand creates the root command of the tagtree CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tagtree",
		Short: "Render typed markup trees",
		Long: `tagtree loads markup trees from YAML descriptions, checks them against
the tag catalog and renders them to markup text.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupTracing(opts.Verbosity)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().CountVarP(&opts.Verbosity, "verbose", "v", "increase verbosity (-v info, -vv debug)")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewDebugCommand(opts))
	cmd.AddCommand(NewTagsCommand(opts))

	return cmd
}

func setupTracing(verbosity int) {
	level := tracing.LevelError
	switch {
	case verbosity >= 2:
		level = tracing.LevelDebug
	case verbosity == 1:
		level = tracing.LevelInfo
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
