package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmicexplorer/graphvizier/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file path; derived from input when empty
	format string // output format: "svg" or "png"
	policy string // identifier policy: "strict" or "permissive"
	style  string // optional TOML style sheet path
	name   string // graph name override
}

// newRenderCmd creates the render command for rasterizing a graph document.
// The document is compiled to DOT and laid out by the embedded Graphviz
// engine; no external graphviz installation is needed.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		format: "svg",
		policy: policyStrict,
	}

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Render a graph document to SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png")
	cmd.Flags().StringVar(&opts.policy, "policy", opts.policy, "identifier policy: strict (default), permissive")
	cmd.Flags().StringVar(&opts.style, "style", "", "TOML style sheet layered over the document")
	cmd.Flags().StringVar(&opts.name, "name", "", "override the graph name from the document")

	return cmd
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
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

	dotSrc, err := emitDocument(doc, policy, opts.name)
	if err != nil {
		return err
	}
	logger.Debugf("emitted %d bytes of DOT", len(dotSrc))

	out, err := render.ByFormat(ctx, opts.format, dotSrc)
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		path = outputPath(input, opts.format)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	prog.done(fmt.Sprintf("Rendered %s", path))
	return nil
}

// outputPath derives the default output file name from the input path by
// swapping its extension for the format.
func outputPath(input, format string) string {
	base := strings.TrimSuffix(input, ".json")
	return base + "." + format
}
