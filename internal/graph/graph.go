package graph

import (
	"github.com/roach88/cbegen/internal/ir"
)

// Graph is a directed graph over named nodes. Node order is insertion order,
// which keeps every traversal deterministic.
type Graph struct {
	names []string
	index map[string]int
	edges [][]int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// Node returns the id of name, creating the node if needed.
func (g *Graph) Node(name string) int {
	if id, ok := g.index[name]; ok {
		return id
	}
	id := len(g.names)
	g.names = append(g.names, name)
	g.index[name] = id
	g.edges = append(g.edges, nil)
	return id
}

// AddEdge records that from must come before to.
func (g *Graph) AddEdge(from, to string) {
	f := g.Node(from)
	t := g.Node(to)
	g.edges[f] = append(g.edges[f], t)
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.names)
}

// EdgeCount returns the number of edges, counting duplicates.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, out := range g.edges {
		n += len(out)
	}
	return n
}

// Successors returns the nodes that name points to.
func (g *Graph) Successors(name string) []string {
	id, ok := g.index[name]
	if !ok {
		return nil
	}
	out := make([]string, len(g.edges[id]))
	for i, t := range g.edges[id] {
		out[i] = g.names[t]
	}
	return out
}

// FromHeaders builds the include graph. An edge dep -> header means the
// dependency is available before the header that includes it.
func FromHeaders(headers []ir.HeaderUnit) *Graph {
	g := New()
	for _, h := range headers {
		g.Node(ir.HeaderFile(h.Index))
	}
	for _, h := range headers {
		for _, dep := range h.Deps {
			g.AddEdge(ir.HeaderFile(dep), ir.HeaderFile(h.Index))
		}
	}
	return g
}

// FromManifest builds the file graph of a manifest: every action input
// points to the action's output.
func FromManifest(m *ir.Manifest) *Graph {
	g := New()
	for _, a := range m.Actions {
		for _, in := range a.Inputs {
			g.AddEdge(in, a.Output)
		}
		g.Node(a.Output)
	}
	return g
}
