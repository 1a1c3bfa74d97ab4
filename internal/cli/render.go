package cli

import (
	"fmt"

	"github.com/npillmayer/tagtree"
	"github.com/npillmayer/tagtree/loader"
	"github.com/npillmayer/tagtree/tagtreedbg"
	"github.com/spf13/cobra"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Escape   bool
	MaxDepth int
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <tree.yaml>",
		Short: "Render a tree description to markup",
		Long: `Load a YAML tree description, check it against the tag catalog and
write the rendered markup to stdout. Content is written verbatim unless
--escape is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Escape, "escape", false, "HTML-escape text and attribute values")
	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", 0, "refuse trees deeper than this (0: no limit)")

	return cmd
}

func runRender(opts *RenderOptions, path string, cmd *cobra.Command) error {
	node, err := loader.LoadFile(path)
	if err != nil {
		return err
	}
	err = tagtree.RenderTo(cmd.OutOrStdout(), node,
		tagtree.Escaping(opts.Escape),
		tagtree.MaxDepth(opts.MaxDepth),
	)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout())
	return err
}

// DebugOptions holds flags for the debug command.
type DebugOptions struct {
	*RootOptions
	Format string // "tree" | "dot"
}

// NewDebugCommand creates the debug command.
func NewDebugCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DebugOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "debug <tree.yaml>",
		Short: "Show the structure of a tree description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDebug(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "tree", "output format (tree|dot)")

	return cmd
}

func runDebug(opts *DebugOptions, path string, cmd *cobra.Command) error {
	if opts.Format != "tree" && opts.Format != "dot" {
		return fmt.Errorf("invalid format %q: must be one of [tree dot]", opts.Format)
	}
	node, err := loader.LoadFile(path)
	if err != nil {
		return err
	}
	if opts.Format == "dot" {
		return tagtreedbg.ToGraphViz(node, cmd.OutOrStdout())
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), tagtreedbg.Print(node))
	return err
}

// NewTagsCommand creates the tags command, listing the tag catalog.
func NewTagsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the tag catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, k := range tagtree.Kinds() {
				if _, err := fmt.Fprintf(w, "%-6s attributes=%s children=%s is=%s\n",
					k.Name, k.Attributes, k.Children, k.Carries); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
