package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cosmicexplorer/graphvizier/pkg/render"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output string // output file path; empty means stdout
	policy string // identifier policy: "strict" or "permissive"
	style  string // optional TOML style sheet path
	name   string // graph name override
	check  bool   // parse the emitted DOT with Graphviz afterwards
}

// newBuildCmd creates the build command for compiling a graph document into
// DOT text.
func newBuildCmd() *cobra.Command {
	opts := buildOpts{policy: policyStrict}

	cmd := &cobra.Command{
		Use:   "build [graph.json]",
		Short: "Compile a graph document into a DOT digraph document",
		Long: `Compile a graph document into a DOT digraph document.

The input is a JSON description of nodes, edges, and nested clusters. The
output is DOT text written to stdout or, with --output, to a file. With
--check the emitted text is additionally parsed by the embedded Graphviz
engine to catch syntax problems.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.policy, "policy", opts.policy, "identifier policy: strict (default), permissive")
	cmd.Flags().StringVar(&opts.style, "style", "", "TOML style sheet layered over the document")
	cmd.Flags().StringVar(&opts.name, "name", "", "override the graph name from the document")
	cmd.Flags().BoolVar(&opts.check, "check", false, "parse the emitted DOT with Graphviz")

	return cmd
}

func runBuild(ctx context.Context, input string, opts *buildOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	policy, err := parsePolicy(opts.policy)
	if err != nil {
		return err
	}

	doc, err := loadDocument(input, opts.style)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	logger.Debugf("loaded %s: %d nodes, %d edges, %d clusters",
		input, len(doc.Nodes), len(doc.Edges), len(doc.Clusters))

	out, err := emitDocument(doc, policy, opts.name)
	if err != nil {
		return err
	}

	if opts.check {
		if err := render.Check(ctx, out); err != nil {
			return fmt.Errorf("emitted DOT failed validation: %w", err)
		}
		logger.Debug("emitted DOT parsed cleanly")
	}

	if opts.output == "" {
		fmt.Print(out)
	} else {
		if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
	}

	prog.done(fmt.Sprintf("Emitted %d bytes of DOT", len(out)))
	return nil
}
