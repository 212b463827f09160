// Package components finds the connected pieces of a hypergraph.
//
// Two declared nodes are connected when some hyperedge contains both.
// Connectivity is computed on an undirected gonum graph in which every
// hyperedge contributes a star from its first declared member to the others;
// a star spans the same component as the full clique at O(|e|) edges.
package components

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/hyperwalk/hypergraph"
)

// Split returns the connected components of h's declared nodes, largest
// first. Components of equal size are ordered by their earliest declared
// node, and nodes within a component follow declaration order.
//
// Complexity: O(|V| log |V| + Σ|e|) plus gonum's component search.
func Split(h *hypergraph.Hypergraph) [][]hypergraph.NodeID {
	if len(h.Nodes) == 0 {
		return nil
	}

	position := make(map[hypergraph.NodeID]int, len(h.Nodes))
	g := simple.NewUndirectedGraph()
	for i, n := range h.Nodes {
		position[n.ID] = i
		g.AddNode(simple.Node(n.ID))
	}
	for _, e := range h.Edges {
		hub, ok := firstDeclared(e, position)
		if !ok {
			continue
		}
		for _, u := range e.Members() {
			if _, declared := position[u]; !declared || u == hub {
				continue
			}
			// SetEdge panics on self loops; u != hub here.
			g.SetEdge(simple.Edge{F: simple.Node(hub), T: simple.Node(u)})
		}
	}

	comps := topo.ConnectedComponents(g)
	out := make([][]hypergraph.NodeID, len(comps))
	for i, c := range comps {
		out[i] = declarationOrder(c, position)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return position[out[i][0]] < position[out[j][0]]
	})

	return out
}

// Largest returns the sub-hypergraph induced by the largest connected
// component, as ordered by Split. When h is empty or already connected, h
// itself is returned.
//
// Kept nodes, hyperedges and weight records stay in declaration order.
// Members that no *Vertices line declares are ignored for connectivity and
// left in place for preprocess to report.
func Largest(h *hypergraph.Hypergraph) *hypergraph.Hypergraph {
	comps := Split(h)
	if len(comps) <= 1 {
		return h
	}

	keep := make(map[hypergraph.NodeID]struct{}, len(comps[0]))
	for _, u := range comps[0] {
		keep[u] = struct{}{}
	}

	return induce(h, keep)
}

func firstDeclared(e hypergraph.HyperEdge, position map[hypergraph.NodeID]int) (hypergraph.NodeID, bool) {
	for _, u := range e.Nodes {
		if _, ok := position[u]; ok {
			return u, true
		}
	}

	return 0, false
}

func declarationOrder(c []graph.Node, position map[hypergraph.NodeID]int) []hypergraph.NodeID {
	out := make([]hypergraph.NodeID, len(c))
	for i, n := range c {
		out[i] = hypergraph.NodeID(n.ID())
	}
	sort.Slice(out, func(i, j int) bool { return position[out[i]] < position[out[j]] })

	return out
}

func induce(h *hypergraph.Hypergraph, keep map[hypergraph.NodeID]struct{}) *hypergraph.Hypergraph {
	var nodes []hypergraph.Node
	for _, n := range h.Nodes {
		if _, ok := keep[n.ID]; ok {
			nodes = append(nodes, n)
		}
	}

	var edges []hypergraph.HyperEdge
	kept := make(map[hypergraph.EdgeID]struct{})
	for _, e := range h.Edges {
		for _, u := range e.Nodes {
			if _, ok := keep[u]; ok {
				edges = append(edges, e)
				kept[e.ID] = struct{}{}
				break
			}
		}
	}

	var weights []hypergraph.Gamma
	for _, w := range h.Weights {
		_, edgeOK := kept[w.Edge]
		_, nodeOK := keep[w.Node]
		if edgeOK && nodeOK {
			weights = append(weights, w)
		}
	}

	// IDs were unique in h, so New cannot fail here.
	out, _ := hypergraph.New(nodes, edges, weights)

	return out
}
