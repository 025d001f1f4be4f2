// Package graphio reads and writes the JSON graph documents consumed by the
// graphvizier CLI, and compiles them into dot.GraphBuilder values.
//
// A [Document] describes a graph declaratively: named nodes and edges plus
// optional clusters that group nodes and may nest. [Document.Compile] turns
// a document into a populated builder under either identifier policy, with
// positional diagnostics when the strict policy rejects an identifier.
// Document also implements [dot.Graphable] using the strict policy.
//
// Colors can be layered on separately with a TOML [Style] sheet (see
// [ReadStyleFile] and [Document.ApplyStyle]), keeping the structural
// description independent of presentation.
package graphio
