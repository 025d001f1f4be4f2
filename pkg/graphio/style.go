package graphio

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Paint is a pair of optional color overrides. Empty fields leave the
// document's value untouched.
type Paint struct {
	Color     string `toml:"color"`
	FontColor string `toml:"fontcolor"`
}

// ClusterPaint extends Paint with overrides for a cluster's node defaults.
type ClusterPaint struct {
	Color     string `toml:"color"`
	FontColor string `toml:"fontcolor"`
	Nodes     Paint  `toml:"nodes"`
}

// Style is a TOML sheet layering colors over a document, keyed by element
// ID (edges by "from->to"). Set values win over the document's own colors.
//
// Example:
//
//	[nodes.app]
//	color = "red"
//
//	[edges."app->lib"]
//	color = "gray50"
//
//	[clusters.internal]
//	fontcolor = "blue"
//	nodes = { color = "black" }
type Style struct {
	Nodes    map[string]Paint        `toml:"nodes"`
	Edges    map[string]Paint        `toml:"edges"`
	Clusters map[string]ClusterPaint `toml:"clusters"`
}

// ReadStyleFile decodes a TOML style sheet from a file.
func ReadStyleFile(path string) (*Style, error) {
	var s Style
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &s, nil
}

// ApplyStyle merges a style sheet into the document in place.
// Style entries with no matching element are ignored.
func (d *Document) ApplyStyle(s *Style) {
	if s == nil {
		return
	}

	for i := range d.Nodes {
		if p, ok := s.Nodes[d.Nodes[i].ID]; ok {
			overlay(&d.Nodes[i].Color, p.Color)
			overlay(&d.Nodes[i].FontColor, p.FontColor)
		}
	}

	for i := range d.Edges {
		key := d.Edges[i].From + "->" + d.Edges[i].To
		if p, ok := s.Edges[key]; ok {
			overlay(&d.Edges[i].Color, p.Color)
			overlay(&d.Edges[i].FontColor, p.FontColor)
		}
	}

	for i := range d.Clusters {
		p, ok := s.Clusters[d.Clusters[i].ID]
		if !ok {
			continue
		}
		overlay(&d.Clusters[i].Color, p.Color)
		overlay(&d.Clusters[i].FontColor, p.FontColor)

		if p.Nodes == (Paint{}) {
			continue
		}
		if d.Clusters[i].NodeDefaults == nil {
			d.Clusters[i].NodeDefaults = &NodeDefaults{}
		}
		overlay(&d.Clusters[i].NodeDefaults.Color, p.Nodes.Color)
		overlay(&d.Clusters[i].NodeDefaults.FontColor, p.Nodes.FontColor)
	}
}

// overlay replaces *dst with src when src is set.
func overlay(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}
