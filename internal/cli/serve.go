package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/cosmicexplorer/graphvizier/pkg/dot"
	"github.com/cosmicexplorer/graphvizier/pkg/render"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr   string // listen address
	policy string // identifier policy: "strict" or "permissive"
	style  string // optional TOML style sheet path
	name   string // graph name override
}

// newServeCmd creates the serve command, a small preview server for a graph
// document. GET /dot returns the compiled DOT text and GET /svg returns a
// rendered SVG. The document is re-read per request, so edits to the file
// show up on refresh; this also respects the builder's render-once contract.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:   ":8080",
		policy: policyStrict,
	}

	cmd := &cobra.Command{
		Use:   "serve [graph.json]",
		Short: "Serve DOT and SVG previews of a graph document over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.policy, "policy", opts.policy, "identifier policy: strict (default), permissive")
	cmd.Flags().StringVar(&opts.style, "style", "", "TOML style sheet layered over the document")
	cmd.Flags().StringVar(&opts.name, "name", "", "override the graph name from the document")

	return cmd
}

func runServe(ctx context.Context, input string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	policy, err := parsePolicy(opts.policy)
	if err != nil {
		return err
	}

	// Fail fast on an unreadable or malformed document before binding the
	// listener; later per-request failures surface as 500s instead.
	if _, err := emitFile(input, opts, policy); err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           serveRouter(input, opts, policy),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	done := make(chan error, 1)
	go func() {
		logger.Infof("serving %s on %s (/dot, /svg)", input, opts.addr)
		done <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-done:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// serveRouter builds the preview handler for the document at input.
// Each request re-reads the document, so file edits show up on refresh.
func serveRouter(input string, opts *serveOpts, policy dot.IDPolicy) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/dot", func(w http.ResponseWriter, req *http.Request) {
		dotSrc, err := emitFile(input, opts, policy)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		fmt.Fprint(w, dotSrc)
	})

	r.Get("/svg", func(w http.ResponseWriter, req *http.Request) {
		dotSrc, err := emitFile(input, opts, policy)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		svg, err := render.SVG(req.Context(), dotSrc)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(svg)
	})

	return r
}

// emitFile reads, styles, compiles, and renders the document at input.
func emitFile(input string, opts *serveOpts, policy dot.IDPolicy) (string, error) {
	doc, err := loadDocument(input, opts.style)
	if err != nil {
		return "", err
	}
	return emitDocument(doc, policy, opts.name)
}
