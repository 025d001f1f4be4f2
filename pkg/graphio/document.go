package graphio

import (
	"github.com/cosmicexplorer/graphvizier/pkg/dot"
	"github.com/cosmicexplorer/graphvizier/pkg/errors"
)

// DefaultGraphName is used when a document does not name its graph.
const DefaultGraphName = "g"

// Document is the on-disk JSON description of a graph.
//
// Emission order is deterministic: clusters in document order (nested under
// their parents), then clusterless nodes in document order, then edges in
// document order. Within a cluster, member nodes precede child clusters.
type Document struct {
	Name     string    `json:"name,omitempty"`
	Nodes    []Node    `json:"nodes"`
	Edges    []Edge    `json:"edges,omitempty"`
	Clusters []Cluster `json:"clusters,omitempty"`
}

// Node describes a single vertex. Cluster, when set, places the node inside
// the cluster with that ID instead of at the top level.
type Node struct {
	ID        string `json:"id"`
	Label     string `json:"label,omitempty"`
	Color     string `json:"color,omitempty"`
	FontColor string `json:"fontcolor,omitempty"`
	Cluster   string `json:"cluster,omitempty"`
}

// Edge describes a directed connection between two node IDs.
type Edge struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Label     string `json:"label,omitempty"`
	Color     string `json:"color,omitempty"`
	FontColor string `json:"fontcolor,omitempty"`
}

// Cluster describes a subgraph. Parent, when set, nests this cluster inside
// another; a parent must be declared earlier in the document than its
// children, which also rules out cycles.
type Cluster struct {
	ID           string        `json:"id"`
	Label        string        `json:"label,omitempty"`
	Color        string        `json:"color,omitempty"`
	FontColor    string        `json:"fontcolor,omitempty"`
	Parent       string        `json:"parent,omitempty"`
	NodeDefaults *NodeDefaults `json:"node_defaults,omitempty"`
}

// NodeDefaults mirrors dot.NodeDefaults for serialization.
type NodeDefaults struct {
	Color     string `json:"color,omitempty"`
	FontColor string `json:"fontcolor,omitempty"`
}

// GraphName returns the document's graph name, falling back to
// [DefaultGraphName] when unset.
func (d *Document) GraphName() string {
	if d.Name == "" {
		return DefaultGraphName
	}
	return d.Name
}

// BuildGraph implements [dot.Graphable] under the strict identifier policy.
// A malformed identifier in the document is treated as fatal, matching
// [dot.MustID]; use [Document.Compile] to handle the error instead.
func (d *Document) BuildGraph() *dot.GraphBuilder {
	b, err := d.Compile(dot.PolicyStrict)
	if err != nil {
		panic("graphio: " + err.Error())
	}
	return b
}

// Compile converts the document into a populated builder under the given
// identifier policy. Under [dot.PolicyStrict] every identifier in the
// document is validated and the first failure is returned with a diagnostic
// locating the offending element; under [dot.PolicyPermissive] identifiers
// pass through unvalidated and are quoted at render time.
//
// Structural problems - a node or cluster referencing an unknown or
// not-yet-declared cluster, a missing ID - are reported with code
// [errors.ErrCodeInvalidDocument] regardless of policy.
func (d *Document) Compile(policy dot.IDPolicy) (*dot.GraphBuilder, error) {
	b := dot.New(policy)

	shells := make(map[string]*dot.Subgraph, len(d.Clusters))
	children := make(map[string][]string, len(d.Clusters))
	var roots []string

	for i, c := range d.Clusters {
		if c.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "cluster %d has no id", i)
		}
		if _, dup := shells[c.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "duplicate cluster id %q", c.ID)
		}

		id, err := makeID(policy, c.ID)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "cluster %q", c.ID)
		}

		sub := &dot.Subgraph{
			ID:        id,
			Label:     c.Label,
			Color:     dot.Color(c.Color),
			FontColor: dot.Color(c.FontColor),
		}
		if nd := c.NodeDefaults; nd != nil {
			sub.NodeDefaults = &dot.NodeDefaults{
				Color:     dot.Color(nd.Color),
				FontColor: dot.Color(nd.FontColor),
			}
		}
		if c.Parent == "" {
			shells[c.ID] = sub
			roots = append(roots, c.ID)
			continue
		}
		// The shell is registered only after the parent lookup, so a cluster
		// naming itself as parent fails the declared-first check instead of
		// vanishing from the output.
		if _, ok := shells[c.Parent]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidDocument,
				"cluster %q references parent %q, which must be declared first", c.ID, c.Parent)
		}
		shells[c.ID] = sub
		children[c.Parent] = append(children[c.Parent], c.ID)
	}

	var topNodes []dot.Vertex
	for i, n := range d.Nodes {
		if n.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "node %d has no id", i)
		}
		id, err := makeID(policy, n.ID)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "node %q", n.ID)
		}
		v := dot.Vertex{
			ID:        id,
			Label:     n.Label,
			Color:     dot.Color(n.Color),
			FontColor: dot.Color(n.FontColor),
		}

		if n.Cluster == "" {
			topNodes = append(topNodes, v)
			continue
		}
		shell, ok := shells[n.Cluster]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidDocument,
				"node %q references unknown cluster %q", n.ID, n.Cluster)
		}
		shell.Entities = append(shell.Entities, v)
	}

	// Materialize cluster trees depth-first so that each parent's entity
	// sequence ends up: member nodes, then child clusters in document order.
	var materialize func(id string) dot.Subgraph
	materialize = func(id string) dot.Subgraph {
		sub := shells[id]
		for _, child := range children[id] {
			sub.Entities = append(sub.Entities, materialize(child))
		}
		return *sub
	}
	for _, id := range roots {
		b.Accept(materialize(id))
	}

	for _, v := range topNodes {
		b.Accept(v)
	}

	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "edge %d has empty endpoints", i)
		}
		from, err := makeID(policy, e.From)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "edge %d source", i)
		}
		to, err := makeID(policy, e.To)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "edge %d target", i)
		}
		b.Accept(dot.Edge{
			Source:    from,
			Target:    to,
			Label:     e.Label,
			Color:     dot.Color(e.Color),
			FontColor: dot.Color(e.FontColor),
		})
	}

	return b, nil
}

// makeID constructs an identifier per the builder's policy: validated under
// strict, passed through under permissive.
func makeID(policy dot.IDPolicy, s string) (dot.ID, error) {
	if policy == dot.PolicyPermissive {
		return dot.RawID(s), nil
	}
	return dot.NewID(s)
}
