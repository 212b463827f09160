// SPDX-License-Identifier: MIT
// Package: hyperwalk/representation
//
// bipartite.go — node/feature bipartite network and its non-backtracking
// state-space expansion.
//
// Contract:
//   • One feature vertex per hyperedge, IDs max(node ID)+1, +2, ... in
//     hyperedge declaration order, named "Hyperedge <id>".
//   • For each incidence (e,u): P_ue = omega(e)/d[u], P_ev = gamma(e,u).
//     The pair is skipped when P_ue·P_ev < Threshold.
//   • Plain: u → f(e) with pi[u]·P_ue, f(e) → u with P_ev.
//   • Non-backtracking: node states 0..|V|-1 in declaration order, then one
//     feature state per (e, position) occurrence. u → s_i with pi[u]·P_ue and
//     s_j → u with P_ev for every j ≠ i, so the walk never re-enters u from
//     the feature state it left u through.
//
// Complexity:
//   • Plain: O(|V| + Σ|e|) time and space.
//   • Non-backtracking: O(|V| + Σ|e|²) time and space.

package representation

import (
	"fmt"
	"io"

	"github.com/katalvlaran/hyperwalk/hypergraph"
	"github.com/katalvlaran/hyperwalk/network"
	"github.com/katalvlaran/hyperwalk/preprocess"
)

const (
	methodBipartite       = "Bipartite"
	methodNonBacktracking = "NonBacktracking"
)

// featureLayout assigns feature vertex IDs to hyperedges.
type featureLayout struct {
	first    int
	vertices []network.Vertex // original nodes followed by features
	ids      []int            // feature ID per hyperedge position
}

func newFeatureLayout(h *hypergraph.Hypergraph, method string) (featureLayout, error) {
	maxID, ok := h.MaxNodeID()
	if !ok {
		return featureLayout{}, fmt.Errorf("%s: %w", method, ErrEmptyHypergraph)
	}

	fl := featureLayout{
		first:    int(maxID) + 1,
		vertices: nodeVertices(h),
		ids:      make([]int, len(h.Edges)),
	}
	for i, e := range h.Edges {
		id := fl.first + i
		fl.ids[i] = id
		fl.vertices = append(fl.vertices, network.Vertex{ID: id, Name: network.HyperedgeName(int(e.ID))})
	}

	return fl, nil
}

// bipartiteStep returns (P_ue, P_ev) for incidence (e,u); ok is false when
// d[u] is not positive.
func bipartiteStep(pre *preprocess.Result, e hypergraph.HyperEdge, u hypergraph.NodeID) (pUE, pEV float64, ok bool) {
	d := pre.Strength(u)
	if !(d > 0) {
		return 0, 0, false
	}

	return e.Omega / d, pre.Gamma(e.ID, u), true
}

// Bipartite builds the plain node/feature bipartite network.
//
// Errors: ErrEmptyHypergraph when h declares no nodes.
func Bipartite(h *hypergraph.Hypergraph, pre *preprocess.Result) (*network.Network, Summary, error) {
	var sum Summary
	fl, err := newFeatureLayout(h, methodBipartite)
	if err != nil {
		return nil, sum, err
	}

	var links []network.Link
	for i, e := range h.Edges {
		feature := fl.ids[i]
		for _, u := range e.Members() {
			pUE, pEV, ok := bipartiteStep(pre, e, u)
			if !ok {
				sum.Degenerate++
				continue
			}
			if pUE*pEV < Threshold {
				sum.Pruned++
				continue
			}
			links = append(links,
				network.Link{Source: int(u), Target: feature, Weight: pre.Pi(u) * pUE},
				network.Link{Source: feature, Target: int(u), Weight: pEV},
			)
		}
	}
	sum.Links = len(links)

	return &network.Network{
		Vertices:       fl.vertices,
		Bipartite:      true,
		BipartiteStart: fl.first,
		Links:          links,
	}, sum, nil
}

// NonBacktracking builds the non-backtracking state network.
//
// Errors: ErrEmptyHypergraph when h declares no nodes.
func NonBacktracking(h *hypergraph.Hypergraph, pre *preprocess.Result) (*network.Network, Summary, error) {
	var sum Summary
	fl, err := newFeatureLayout(h, methodNonBacktracking)
	if err != nil {
		return nil, sum, err
	}

	states := make([]network.StateNode, 0, len(h.Nodes))
	stateOf := make(map[hypergraph.NodeID]int, len(h.Nodes))
	for i, n := range h.Nodes {
		states = append(states, network.StateNode{StateID: i, NodeID: int(n.ID)})
		stateOf[n.ID] = i
	}
	firstFeatureState := len(states)
	next := firstFeatureState

	var links []network.Link
	for i, e := range h.Edges {
		// One feature state per member occurrence: "at e, arrived from e.Nodes[k]".
		members := e.Members()
		featureStates := make([]int, len(members))
		for k := range members {
			featureStates[k] = next
			states = append(states, network.StateNode{StateID: next, NodeID: fl.ids[i]})
			next++
		}

		for k, u := range members {
			pUE, pEV, ok := bipartiteStep(pre, e, u)
			if !ok {
				sum.Degenerate++
				continue
			}
			if pUE*pEV < Threshold {
				sum.Pruned++
				continue
			}

			nodeState := stateOf[u]
			links = append(links, network.Link{Source: nodeState, Target: featureStates[k], Weight: pre.Pi(u) * pUE})
			for j, s := range featureStates {
				if j == k {
					continue
				}
				links = append(links, network.Link{Source: s, Target: nodeState, Weight: pEV})
			}
		}
	}
	sum.Links = len(links)

	return &network.Network{
		Vertices:       fl.vertices,
		States:         states,
		Bipartite:      true,
		BipartiteStart: firstFeatureState,
		Links:          links,
	}, sum, nil
}

type bipartiteProjector struct{}

func (bipartiteProjector) Kind() Kind { return KindBipartite }

func (bipartiteProjector) Project(h *hypergraph.Hypergraph, pre *preprocess.Result, _ WalkMode, w io.Writer) (Summary, error) {
	n, sum, err := Bipartite(h, pre)
	if err != nil {
		return sum, err
	}
	if err := network.Write(w, n); err != nil {
		return sum, fmt.Errorf("%s: write: %w", methodBipartite, err)
	}

	return sum, nil
}

type nonBacktrackingProjector struct{}

func (nonBacktrackingProjector) Kind() Kind { return KindNonBacktracking }

func (nonBacktrackingProjector) Project(h *hypergraph.Hypergraph, pre *preprocess.Result, _ WalkMode, w io.Writer) (Summary, error) {
	n, sum, err := NonBacktracking(h, pre)
	if err != nil {
		return sum, err
	}
	if err := network.Write(w, n); err != nil {
		return sum, fmt.Errorf("%s: write: %w", methodNonBacktracking, err)
	}

	return sum, nil
}
