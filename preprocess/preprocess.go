// SPDX-License-Identifier: MIT
// Package: hyperwalk/preprocess
//
// preprocess.go — the single derivation pass (plus bookkeeping passes).
//
// Stages:
//   1. Validate: every referenced node/edge is declared.
//   2. Incidence: E[u] (declaration order, duplicates collapsed), d[u].
//   3. Affinity: explicit gamma (last record wins), default-fill the rest.
//      A record for a declared node outside its hyperedge is kept as a
//      detached affinity.
//   4. Strength: delta[e] = Σ gamma over distinct members of e plus every
//      detached affinity of e.
//   5. Rates: pi[u], pi_alpha(e,u).
//
// Determinism: the output depends only on h; iteration follows h's
// declaration order wherever order matters.

package preprocess

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hyperwalk/hypergraph"
)

// Sentinel errors for referential defects in the input model.
var (
	// ErrUnknownNode indicates a reference to a node absent from *Vertices.
	ErrUnknownNode = errors.New("preprocess: unknown node")

	// ErrUnknownEdge indicates a reference to a hyperedge absent from *Hyperedges.
	ErrUnknownEdge = errors.New("preprocess: unknown hyperedge")
)

const methodRun = "Run"

// Run computes the derived quantities of h.
//
// Errors: ErrUnknownNode, ErrUnknownEdge (wrapped with the offending IDs).
// Complexity: O(|V| + Σ|e| + |W|) time and space.
func Run(h *hypergraph.Hypergraph) (*Result, error) {
	if err := validate(h); err != nil {
		return nil, err
	}

	r := &Result{
		incident: make(map[hypergraph.NodeID][]hypergraph.EdgeID, len(h.Nodes)),
		strength: make(map[hypergraph.NodeID]float64, len(h.Nodes)),
		gamma:    make(map[Incidence]float64),
		delta:    make(map[hypergraph.EdgeID]float64, len(h.Edges)),
		omega:    make(map[hypergraph.EdgeID]float64, len(h.Edges)),
		pi:       make(map[hypergraph.NodeID]float64, len(h.Nodes)),
		piAlpha:  make(map[Incidence]float64),
	}

	// Stage 2: incidence lists and node strengths. Every declared node gets
	// an entry, including nodes no hyperedge references.
	for _, n := range h.Nodes {
		r.incident[n.ID] = nil
		r.strength[n.ID] = 0
	}
	for _, e := range h.Edges {
		r.omega[e.ID] = e.Omega
		for _, u := range e.Members() {
			r.incident[u] = append(r.incident[u], e.ID)
			r.strength[u] += e.Omega
		}
	}

	// Stage 3: explicit affinities overwrite, gaps get DefaultGamma.
	member := make(map[Incidence]struct{})
	for _, e := range h.Edges {
		for _, u := range e.Nodes {
			member[Incidence{Edge: e.ID, Node: u}] = struct{}{}
		}
	}
	detachedSeen := make(map[Incidence]struct{})
	for _, w := range h.Weights {
		key := Incidence{Edge: w.Edge, Node: w.Node}
		r.gamma[key] = w.Value
		if _, ok := member[key]; ok {
			continue
		}
		if _, dup := detachedSeen[key]; !dup {
			detachedSeen[key] = struct{}{}
			r.detached = append(r.detached, key)
		}
	}
	for _, e := range h.Edges {
		for _, u := range e.Nodes {
			key := Incidence{Edge: e.ID, Node: u}
			if _, ok := r.gamma[key]; !ok {
				r.gamma[key] = hypergraph.DefaultGamma
			}
		}
	}

	// Stage 4: hyperedge strengths from the final affinities.
	for _, e := range h.Edges {
		var sum float64
		for _, u := range e.Members() {
			sum += r.gamma[Incidence{Edge: e.ID, Node: u}]
		}
		r.delta[e.ID] = sum
	}
	for _, key := range r.detached {
		r.delta[key.Edge] += r.gamma[key]
	}

	// Stage 5: visit rates.
	for _, n := range h.Nodes {
		var sum float64
		for _, e := range r.incident[n.ID] {
			sum += r.omega[e] * r.gamma[Incidence{Edge: e, Node: n.ID}]
		}
		r.pi[n.ID] = sum
	}
	for _, e := range h.Edges {
		for _, u := range e.Nodes {
			key := Incidence{Edge: e.ID, Node: u}
			r.piAlpha[key] = e.Omega * r.gamma[key]
		}
	}

	return r, nil
}

// validate enforces the referential invariants Run relies on.
func validate(h *hypergraph.Hypergraph) error {
	declared := make(map[hypergraph.NodeID]struct{}, len(h.Nodes))
	for _, n := range h.Nodes {
		declared[n.ID] = struct{}{}
	}

	for _, e := range h.Edges {
		for _, u := range e.Nodes {
			if _, ok := declared[u]; !ok {
				return fmt.Errorf("%s: hyperedge %d references node %d: %w", methodRun, e.ID, u, ErrUnknownNode)
			}
		}
	}

	for _, w := range h.Weights {
		if _, ok := h.EdgeByID(w.Edge); !ok {
			return fmt.Errorf("%s: weight (%d,%d): %w", methodRun, w.Edge, w.Node, ErrUnknownEdge)
		}
		if _, ok := declared[w.Node]; !ok {
			return fmt.Errorf("%s: weight (%d,%d): %w", methodRun, w.Edge, w.Node, ErrUnknownNode)
		}
	}

	return nil
}

