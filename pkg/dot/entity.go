package dot

// Color is an HTML/Graphviz color name, e.g. "red" or "gray20".
// The empty string means no color is set.
type Color string

// NodeDefaults holds default style values applied to every vertex within a
// subgraph via a `node [...]` statement. Individual vertices may still
// override them.
type NodeDefaults struct {
	Color     Color
	FontColor Color
}

// isEmpty reports whether rendering the defaults would produce no attributes.
func (nd NodeDefaults) isEmpty() bool {
	return nd.Color == "" && nd.FontColor == ""
}

// Entity is the unit of graph content accepted by a [GraphBuilder]: a
// [Vertex], an [Edge], or a nested [Subgraph]. The union is closed; no
// other types can implement it.
type Entity interface {
	isEntity()
}

// Vertex is a named node in the graph. Label, Color, and FontColor are
// optional; the empty string means the attribute is omitted from the output.
//
// Labels are emitted verbatim inside double quotes. Embedded double quotes
// are not escaped - that is the caller's responsibility.
type Vertex struct {
	ID        ID
	Label     string
	Color     Color
	FontColor Color
}

// NewVertex returns a vertex whose identifier comes from src.
// A nil src falls back to [RandomID], matching the common case of callers
// who just need a unique node and will label it separately.
func NewVertex(src IDSource) Vertex {
	if src == nil {
		src = RandomID
	}
	return Vertex{ID: src()}
}

// Edge is a directed connection between two endpoints. The zero value has
// empty endpoints and is meaningful only as a placeholder: an edge must be
// fully populated before rendering, since empty endpoints are not valid DOT.
type Edge struct {
	Source    ID
	Target    ID
	Label     string
	Color     Color
	FontColor Color
}

// Subgraph is a named cluster containing its own ordered entity sequence.
// Subgraphs nest recursively, so the entity model forms a tree; there is no
// way to reference a not-yet-created parent, and cycles are impossible by
// construction.
//
// NodeDefaults, when non-nil and non-empty, emits a `node [...]` statement
// applying default colors to every vertex in the cluster.
type Subgraph struct {
	ID           ID
	Label        string
	Color        Color
	FontColor    Color
	NodeDefaults *NodeDefaults
	Entities     []Entity
}

// NewSubgraph returns an empty subgraph whose identifier comes from src.
// A nil src falls back to [RandomID].
func NewSubgraph(src IDSource) Subgraph {
	if src == nil {
		src = RandomID
	}
	return Subgraph{ID: src()}
}

func (Vertex) isEntity()   {}
func (Edge) isEntity()     {}
func (Subgraph) isEntity() {}
