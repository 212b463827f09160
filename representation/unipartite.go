// SPDX-License-Identifier: MIT
// Package: hyperwalk/representation
//
// unipartite.go — the two-step walk collapsed onto node → node links.
//
// Contract:
//   • Contribution of hyperedge e to (u,v): pi[u]·(omega(e)/d[u])·gamma(e,v)/delta_e.
//   • Threshold applies to each contribution, not to the aggregated sum.
//   • Every emitted source u carries total outflow pi[u] (less pruned and degenerate mass).
//   • Output order is (source, target) ascending, independent of map order.

package representation

import (
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/hyperwalk/hypergraph"
	"github.com/katalvlaran/hyperwalk/network"
	"github.com/katalvlaran/hyperwalk/preprocess"
)

const methodUnipartite = "Unipartite"

// nodePair keys an aggregated unipartite link.
type nodePair struct {
	source, target hypergraph.NodeID
}

// Unipartite collapses the two-step walk into direct node → node links.
//
// For every hyperedge e and ordered member pair (u,v) the contribution
// pi[u]·(omega(e)/d[u])·gamma(e,v)/delta_e is added to link (u,v); a single
// contribution below Threshold is dropped before aggregation. NonLazy skips
// u == v and uses delta_e = delta[e] − gamma(e,u).
//
// Links are returned sorted by (source, target).
// Complexity: O(Σ|e|² + L log L) time, O(L) space for L distinct pairs.
func Unipartite(h *hypergraph.Hypergraph, pre *preprocess.Result, walk WalkMode) (*network.Network, Summary) {
	var sum Summary
	agg := make(map[nodePair]float64)

	// Accumulate per-edge contributions.
	for _, e := range h.Edges {
		members := e.Members()
		for _, u := range members {
			pi := pre.Pi(u)
			for _, v := range members {
				if walk == NonLazy && u == v {
					continue
				}
				p, ok := memberStep(pre, walk, e.ID, u, v)
				if !ok {
					sum.Degenerate++
					continue
				}
				w := pi * p
				if w < Threshold {
					sum.Pruned++
					continue
				}
				agg[nodePair{source: u, target: v}] += w // pairs sharing several edges sum here
			}
		}
	}

	// Deterministic order
	keys := make([]nodePair, 0, len(agg))
	for k := range agg {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].source != keys[j].source {
			return keys[i].source < keys[j].source
		}
		return keys[i].target < keys[j].target
	})

	links := make([]network.Link, len(keys))
	for i, k := range keys {
		links[i] = network.Link{Source: int(k.source), Target: int(k.target), Weight: agg[k]}
	}
	sum.Links = len(links)

	return &network.Network{Vertices: nodeVertices(h), Links: links}, sum
}

type unipartiteProjector struct{}

func (unipartiteProjector) Kind() Kind { return KindUnipartite }

func (unipartiteProjector) Project(h *hypergraph.Hypergraph, pre *preprocess.Result, walk WalkMode, w io.Writer) (Summary, error) {
	n, sum := Unipartite(h, pre, walk)
	if err := network.Write(w, n); err != nil {
		return sum, fmt.Errorf("%s: write: %w", methodUnipartite, err)
	}

	return sum, nil
}
