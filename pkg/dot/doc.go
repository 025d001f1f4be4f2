// Package dot builds and emits graph descriptions in the Graphviz DOT
// language.
//
// # Overview
//
// A caller assembles an in-memory graph out of entities - vertices, edges,
// and nested cluster subgraphs - and renders it into a syntactically valid
// DOT digraph document as a string. The package performs no I/O and no
// layout; it only produces text. Writing the output to a file or feeding it
// to a Graphviz engine is the caller's concern (see the render package for
// one such sink).
//
// # Basic Usage
//
// Create a builder with [New], push entities with [GraphBuilder.Accept], and
// finalize with [GraphBuilder.Build]:
//
//	b := dot.New(dot.PolicyStrict)
//	b.Accept(dot.Vertex{ID: dot.MustID("app"), Label: "app"})
//	b.Accept(dot.Vertex{ID: dot.MustID("lib"), Label: "lib"})
//	b.Accept(dot.Edge{Source: dot.MustID("app"), Target: dot.MustID("lib")})
//	fmt.Print(b.Build(dot.MustID("deps")))
//
// Entity order is preserved: entities appear in the document in the order
// they were accepted. A [Subgraph] holds its own ordered entity sequence, so
// the model is a tree and rendering recurses through nested clusters with a
// 2-space indent per level.
//
// # Identifier Policies
//
// Two identifier policies exist and are never mixed within one builder:
//
//   - [PolicyStrict] (the default choice for new code): [NewID] rejects any
//     string not matching ^[A-Za-z0-9_-]*$ at construction time, and
//     rendering emits identifiers verbatim.
//   - [PolicyPermissive]: [RawID] accepts any string, and rendering wraps it
//     in escaped double quotes unless it already matches the unquoted DOT
//     identifier grammar.
//
// # Output Stability
//
// The emitted formatting - line breaks, 2-space indents, the trailing comma
// inside attribute brackets, the blank line before every entity - is part of
// the package contract. Downstream snapshot tests depend on byte-for-byte
// stability, so the shape of the output must not change between releases.
package dot
