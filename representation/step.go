// SPDX-License-Identifier: MIT
// Package: hyperwalk/representation
//
// step.go — single-step transition probabilities shared by the projectors.
//
// Contract:
//   • One step u → v through e: P = (omega(e)/d[u]) · gamma(e,v)/delta_e.
//   • Lazy: delta_e = delta[e]. NonLazy: delta_e = delta[e] − gamma(e,u);
//     the caller skips u == v itself.
//   • A non-positive denominator yields ok=false and no value; callers
//     count it in Summary.Degenerate.

package representation

import (
	"github.com/katalvlaran/hyperwalk/hypergraph"
	"github.com/katalvlaran/hyperwalk/network"
	"github.com/katalvlaran/hyperwalk/preprocess"
)

// emission returns gamma(e,v)/delta_e, the probability of drawing v from e
// when the walk entered e from u. Under NonLazy, delta_e excludes u.
// ok is false when delta_e is not positive.
func emission(pre *preprocess.Result, walk WalkMode, e hypergraph.EdgeID, u, v hypergraph.NodeID) (p float64, ok bool) {
	delta := pre.Delta(e)
	if walk == NonLazy {
		delta -= pre.Gamma(e, u) // renormalise over e without u
	}
	// Also rejects NaN.
	if !(delta > 0) {
		return 0, false
	}

	return pre.Gamma(e, v) / delta, true
}

// memberStep returns P(u → v via e) = (omega(e)/d[u]) · gamma(e,v)/delta_e.
func memberStep(pre *preprocess.Result, walk WalkMode, e hypergraph.EdgeID, u, v hypergraph.NodeID) (float64, bool) {
	d := pre.Strength(u)
	if !(d > 0) {
		return 0, false // u has no incident weight
	}
	em, ok := emission(pre, walk, e, u, v)
	if !ok {
		return 0, false
	}

	return pre.Omega(e) / d * em, true
}

// nodeVertices lists h's declared nodes as output vertices.
func nodeVertices(h *hypergraph.Hypergraph) []network.Vertex {
	out := make([]network.Vertex, len(h.Nodes))
	for i, n := range h.Nodes {
		out[i] = network.Vertex{ID: int(n.ID), Name: n.Name}
	}

	return out
}

// memberLists caches the distinct members of every hyperedge by ID.
func memberLists(h *hypergraph.Hypergraph) map[hypergraph.EdgeID][]hypergraph.NodeID {
	out := make(map[hypergraph.EdgeID][]hypergraph.NodeID, len(h.Edges))
	for _, e := range h.Edges {
		out[e.ID] = e.Members()
	}

	return out
}
