package dot

// Graphable is implemented by types that can describe themselves as a DOT
// graph. BuildGraph consumes the receiver's state and returns a populated
// builder ready for [GraphBuilder.Build].
//
// This is the sole integration seam for domain-specific graph producers;
// the package places no constraint on implementations beyond the resulting
// entity tree being well-formed.
type Graphable interface {
	BuildGraph() *GraphBuilder
}
