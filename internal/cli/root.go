// Package cli implements the graphvizier command-line interface.
//
// This package provides commands for compiling JSON graph documents into
// DOT text, rendering them with the embedded Graphviz engine, and serving
// live previews over HTTP. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - build: Compile a graph document into a DOT digraph document
//   - render: Rasterize a graph document to SVG or PNG
//   - serve: Serve DOT and SVG previews of a graph document over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cosmicexplorer/graphvizier/pkg/buildinfo"
	"github.com/cosmicexplorer/graphvizier/pkg/dot"
	"github.com/cosmicexplorer/graphvizier/pkg/errors"
	"github.com/cosmicexplorer/graphvizier/pkg/graphio"
)

// Identifier policy flag values.
const (
	policyStrict     = "strict"
	policyPermissive = "permissive"
)

// Execute runs the graphvizier CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "graphvizier",
		Short:        "Graphvizier emits Graphviz DOT documents from graph descriptions",
		Long:         `Graphvizier compiles declarative JSON graph documents (nodes, edges, nested clusters) into Graphviz DOT text, and can rasterize or serve the result with an embedded Graphviz engine.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}

// parsePolicy maps the --policy flag value to an identifier policy.
func parsePolicy(s string) (dot.IDPolicy, error) {
	switch s {
	case policyStrict:
		return dot.PolicyStrict, nil
	case policyPermissive:
		return dot.PolicyPermissive, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidPolicy,
			"unknown identifier policy %q (want %q or %q)", s, policyStrict, policyPermissive)
	}
}

// loadDocument reads a graph document and layers an optional style sheet
// over it. stylePath may be empty.
func loadDocument(input, stylePath string) (*graphio.Document, error) {
	doc, err := graphio.ReadDocumentFile(input)
	if err != nil {
		return nil, err
	}
	if stylePath != "" {
		style, err := graphio.ReadStyleFile(stylePath)
		if err != nil {
			return nil, err
		}
		doc.ApplyStyle(style)
	}
	return doc, nil
}

// emitDocument compiles a document and renders the DOT text under the given
// policy, optionally overriding the graph name.
func emitDocument(doc *graphio.Document, policy dot.IDPolicy, nameOverride string) (string, error) {
	name := doc.GraphName()
	if nameOverride != "" {
		name = nameOverride
	}

	var graphName dot.ID
	if policy == dot.PolicyPermissive {
		graphName = dot.RawID(name)
	} else {
		var err error
		graphName, err = dot.NewID(name)
		if err != nil {
			return "", err
		}
	}

	b, err := doc.Compile(policy)
	if err != nil {
		return "", err
	}
	return b.Build(graphName), nil
}
