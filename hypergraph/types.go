// SPDX-License-Identifier: MIT
// Package: hyperwalk/hypergraph
//
// types.go — model types, sentinel errors and the Hypergraph constructor.
//
// Contract:
//   • A Hypergraph is immutable after New returns; callers MUST NOT mutate
//     the exported slices (projectors share one instance concurrently).
//   • Declaration order of Nodes and Edges is preserved; every downstream
//     emission order derives from it.
//   • New only rejects duplicate IDs. Membership and weight references are
//     validated by preprocess.Run.

package hypergraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for model construction and parsing.
var (
	// ErrSyntax indicates a malformed input line.
	ErrSyntax = errors.New("hypergraph: syntax error")

	// ErrInvalidWeight indicates omega or gamma is negative, NaN or infinite.
	ErrInvalidWeight = errors.New("hypergraph: invalid weight")

	// ErrDuplicateNode indicates a node ID declared more than once.
	ErrDuplicateNode = errors.New("hypergraph: duplicate node id")

	// ErrDuplicateEdge indicates a hyperedge ID declared more than once.
	ErrDuplicateEdge = errors.New("hypergraph: duplicate hyperedge id")
)

// NodeID identifies a declared node. IDs need not be contiguous.
type NodeID int

// EdgeID identifies a hyperedge.
type EdgeID int

// DefaultGamma is the affinity of an (edge,node) incidence that has no
// explicit Gamma record.
const DefaultGamma = 1.0

// Node is a declared vertex.
type Node struct {
	// ID is unique among the hypergraph's nodes.
	ID NodeID

	// Name is kept verbatim from the input, quotes included.
	Name string
}

// HyperEdge groups member nodes under one weighted relation.
type HyperEdge struct {
	ID EdgeID

	// Nodes lists member node IDs in declaration order.
	Nodes []NodeID

	// Omega is the hyperedge's total weight (propensity).
	Omega float64
}

// Gamma is an explicit affinity of Node within Edge.
type Gamma struct {
	Edge  EdgeID
	Node  NodeID
	Value float64
}

// Hypergraph is the immutable model: nodes, hyperedges and explicit weights.
type Hypergraph struct {
	Nodes   []Node
	Edges   []HyperEdge
	Weights []Gamma

	edgeIndex map[EdgeID]int // EdgeID → position in Edges
}

// New builds a Hypergraph from already-parsed records, keeping their order.
// The slices are copied, so later mutation by the caller has no effect.
//
// Errors: ErrDuplicateNode, ErrDuplicateEdge.
// Complexity: O(|V| + |E| + Σ|e| + |W|) time and space.
func New(nodes []Node, edges []HyperEdge, weights []Gamma) (*Hypergraph, error) {
	seen := make(map[NodeID]struct{}, len(nodes))
	for _, n := range nodes {
		if _, dup := seen[n.ID]; dup {
			return nil, fmt.Errorf("New: node %d: %w", n.ID, ErrDuplicateNode)
		}
		seen[n.ID] = struct{}{}
	}

	h := &Hypergraph{
		Nodes:     append([]Node(nil), nodes...),
		Edges:     make([]HyperEdge, len(edges)),
		Weights:   append([]Gamma(nil), weights...),
		edgeIndex: make(map[EdgeID]int, len(edges)),
	}
	for i, e := range edges {
		if _, dup := h.edgeIndex[e.ID]; dup {
			return nil, fmt.Errorf("New: hyperedge %d: %w", e.ID, ErrDuplicateEdge)
		}
		h.edgeIndex[e.ID] = i
		h.Edges[i] = HyperEdge{ID: e.ID, Nodes: append([]NodeID(nil), e.Nodes...), Omega: e.Omega}
	}

	return h, nil
}

// Members returns the distinct members of e, first occurrence first.
func (e HyperEdge) Members() []NodeID {
	out := make([]NodeID, 0, len(e.Nodes))
	seen := make(map[NodeID]struct{}, len(e.Nodes))
	for _, u := range e.Nodes {
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}

	return out
}

// EdgeByID returns the hyperedge with the given ID.
// Complexity: O(1).
func (h *Hypergraph) EdgeByID(id EdgeID) (HyperEdge, bool) {
	i, ok := h.edgeIndex[id]
	if !ok {
		return HyperEdge{}, false
	}

	return h.Edges[i], true
}

// MaxNodeID returns the largest declared node ID, or false for an empty
// node list.
func (h *Hypergraph) MaxNodeID() (NodeID, bool) {
	if len(h.Nodes) == 0 {
		return 0, false
	}
	maxID := h.Nodes[0].ID
	for _, n := range h.Nodes[1:] {
		if n.ID > maxID {
			maxID = n.ID
		}
	}

	return maxID, true
}

// DropDangling returns a copy without the declared nodes that no hyperedge
// references. Edges are kept as they are; weights naming a dropped node go
// with it.
func (h *Hypergraph) DropDangling() *Hypergraph {
	referenced := make(map[NodeID]struct{})
	for _, e := range h.Edges {
		for _, u := range e.Nodes {
			referenced[u] = struct{}{}
		}
	}

	nodes := make([]Node, 0, len(h.Nodes))
	for _, n := range h.Nodes {
		if _, ok := referenced[n.ID]; ok {
			nodes = append(nodes, n)
		}
	}
	weights := make([]Gamma, 0, len(h.Weights))
	for _, w := range h.Weights {
		if _, ok := referenced[w.Node]; ok {
			weights = append(weights, w)
		}
	}

	// IDs were unique in h, so New cannot fail here.
	out, _ := New(nodes, h.Edges, weights)

	return out
}
