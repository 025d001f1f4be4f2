// Package render feeds emitted DOT text to an embedded Graphviz engine.
//
// The dot package only produces text; this package is the sink that checks
// the text for syntax errors and rasterizes it to SVG or PNG. Layout is
// entirely Graphviz's concern. The engine runs in-process via a WebAssembly
// build of Graphviz, so no external binary is required.
package render

import (
	"bytes"
	"context"

	"github.com/goccy/go-graphviz"

	"github.com/cosmicexplorer/graphvizier/pkg/errors"
)

// Check parses dotSrc with Graphviz and reports a syntax error, if any.
// It performs no layout and produces no output; use it to catch emitter
// regressions or hand-edited documents before rendering.
func Check(ctx context.Context, dotSrc string) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotSrc))
	if err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "parse DOT")
	}
	return g.Close()
}

// SVG lays out and renders a DOT document to SVG bytes.
func SVG(ctx context.Context, dotSrc string) ([]byte, error) {
	return render(ctx, dotSrc, graphviz.SVG)
}

// PNG lays out and renders a DOT document to PNG bytes.
func PNG(ctx context.Context, dotSrc string) ([]byte, error) {
	return render(ctx, dotSrc, graphviz.PNG)
}

func render(ctx context.Context, dotSrc string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotSrc))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

// Formats lists the output formats the render command accepts.
func Formats() []string {
	return []string{"svg", "png"}
}

// ByFormat dispatches to the renderer for a format name.
// Returns an error with code [errors.ErrCodeInvalidFormat] for anything
// outside [Formats].
func ByFormat(ctx context.Context, format, dotSrc string) ([]byte, error) {
	switch format {
	case "svg":
		return SVG(ctx, dotSrc)
	case "png":
		return PNG(ctx, dotSrc)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported format %q (want one of %v)", format, Formats())
	}
}
