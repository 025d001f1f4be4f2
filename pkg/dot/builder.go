package dot

import (
	"fmt"
	"strings"
)

// indentStep is the number of spaces added per nesting level.
const indentStep = 2

// GraphBuilder accumulates entities and renders them as a DOT digraph
// document. Entities are emitted in acceptance order; a builder renders at
// most once.
//
// The zero value is not usable - use [New] to pick an identifier policy.
// GraphBuilder is not safe for concurrent use without external
// synchronization.
type GraphBuilder struct {
	policy   IDPolicy
	entities []Entity
}

// New creates an empty builder using the given identifier policy.
func New(policy IDPolicy) *GraphBuilder {
	return &GraphBuilder{policy: policy}
}

// Policy returns the identifier policy the builder renders with.
func (b *GraphBuilder) Policy() IDPolicy { return b.policy }

// Accept appends an entity to the builder's sequence.
// No validation is performed beyond what entity construction already
// enforced; acceptance order determines emission order.
func (b *GraphBuilder) Accept(e Entity) {
	b.entities = append(b.entities, e)
}

// EntityCount returns the number of top-level entities accepted so far.
func (b *GraphBuilder) EntityCount() int { return len(b.entities) }

// Build renders the accumulated entities as a complete DOT digraph document
// named by graphName, consuming the builder: after Build returns, the
// entity sequence is empty and further Build calls render an empty graph.
//
// Build never fails for well-formed entities. Identifier validation happens
// at construction time under the strict policy, and the only other failure
// point is an internal indentation assertion that valid input cannot
// trigger.
func (b *GraphBuilder) Build(graphName ID) string {
	var out strings.Builder
	indent := 0

	out.WriteString("digraph ")
	out.WriteString(b.renderID(graphName))
	out.WriteString(" {")
	indent = bumpIndent(indent)

	newlineIndent(&out, indent)
	out.WriteString("compound = true;")

	for _, e := range b.entities {
		newline(&out)
		newlineIndent(&out, indent)
		out.WriteString(b.printEntity(e, indent))
	}
	b.entities = nil

	indent = unbumpIndent(indent)
	if indent != 0 {
		panic(fmt.Sprintf("dot: indent is %d after rendering, want 0", indent))
	}
	newlineIndent(&out, indent)
	out.WriteByte('}')
	newline(&out)

	return out.String()
}

// printEntity renders a single entity at the given indent level.
// Subgraphs recurse with the indent bumped by one step; the indent travels
// by value, so each recursive call unwinds naturally.
func (b *GraphBuilder) printEntity(e Entity, indent int) string {
	switch e := e.(type) {
	case Vertex:
		var out strings.Builder
		out.WriteString(b.renderID(e.ID))
		writeAttrBracket(&out, styleAttrs(e.Label, e.Color, e.FontColor))
		out.WriteByte(';')
		return out.String()

	case Edge:
		var out strings.Builder
		out.WriteString(b.renderID(e.Source))
		out.WriteString(" -> ")
		out.WriteString(b.renderID(e.Target))
		writeAttrBracket(&out, styleAttrs(e.Label, e.Color, e.FontColor))
		out.WriteByte(';')
		return out.String()

	case Subgraph:
		return b.printSubgraph(e, indent)

	default:
		// The Entity union is closed; this is unreachable.
		panic(fmt.Sprintf("dot: unknown entity type %T", e))
	}
}

func (b *GraphBuilder) printSubgraph(s Subgraph, indent int) string {
	var out strings.Builder
	out.WriteString("subgraph ")
	out.WriteString(b.renderID(s.ID))
	out.WriteString(" {")
	indent = bumpIndent(indent)

	newlineIndent(&out, indent)
	if s.Label != "" {
		fmt.Fprintf(&out, "label = \"%s\";", s.Label)
		newlineIndent(&out, indent)
	}
	out.WriteString("cluster = true;")
	newlineIndent(&out, indent)
	out.WriteString("rank = same;")
	newline(&out)

	if s.Color != "" {
		newlineIndent(&out, indent)
		fmt.Fprintf(&out, "color = \"%s\";", s.Color)
	}
	if s.FontColor != "" {
		newlineIndent(&out, indent)
		fmt.Fprintf(&out, "fontcolor = \"%s\";", s.FontColor)
	}
	if s.NodeDefaults != nil && !s.NodeDefaults.isEmpty() {
		newlineIndent(&out, indent)
		out.WriteString("node ")
		writeAttrBracket(&out, styleAttrs("", s.NodeDefaults.Color, s.NodeDefaults.FontColor))
		out.WriteByte(';')
	}
	newline(&out)

	for _, e := range s.Entities {
		newlineIndent(&out, indent)
		out.WriteString(b.printEntity(e, indent))
	}

	indent = unbumpIndent(indent)
	newlineIndent(&out, indent)
	out.WriteByte('}')

	return out.String()
}

// renderID converts an identifier to its textual form under the builder's
// policy: verbatim for strict, quoted-when-needed for permissive.
func (b *GraphBuilder) renderID(id ID) string {
	if b.policy == PolicyPermissive {
		return id.escaped()
	}
	return id.value
}

// styleAttrs collects the present label/color/fontcolor attributes as
// rendered `key="value"` pairs, in that fixed order.
func styleAttrs(label string, color, fontcolor Color) []string {
	var attrs []string
	if label != "" {
		attrs = append(attrs, fmt.Sprintf("label=\"%s\"", label))
	}
	if color != "" {
		attrs = append(attrs, fmt.Sprintf("color=\"%s\"", color))
	}
	if fontcolor != "" {
		attrs = append(attrs, fmt.Sprintf("fontcolor=\"%s\"", fontcolor))
	}
	return attrs
}

// writeAttrBracket emits `[pair, pair, ]` - every pair, including the last,
// is followed by ", ". Downstream snapshot tests depend on this exact
// formatting; do not tidy it.
func writeAttrBracket(out *strings.Builder, attrs []string) {
	if len(attrs) == 0 {
		return
	}
	out.WriteByte('[')
	for _, a := range attrs {
		out.WriteString(a)
		out.WriteString(", ")
	}
	out.WriteByte(']')
}

func newline(out *strings.Builder) {
	out.WriteByte('\n')
}

func newlineIndent(out *strings.Builder, indent int) {
	newline(out)
	out.WriteString(strings.Repeat(" ", indent))
}

func bumpIndent(indent int) int { return indent + indentStep }

// unbumpIndent returns the indent one step shallower. Underflow means the
// renderer itself is defective, never the input, so it fails loudly.
func unbumpIndent(indent int) int {
	if indent < indentStep {
		panic(fmt.Sprintf("dot: indent underflow (indent = %d)", indent))
	}
	return indent - indentStep
}
