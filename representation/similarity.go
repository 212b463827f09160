// SPDX-License-Identifier: MIT
// Package: hyperwalk/representation
//
// similarity.go — multilayer projection with a similarity-weighted choice
// of the next layer.
//
// Contract:
//   • D[alpha,beta] = (1 − JSD(alpha,beta)) · omega(beta), JSD in bits over
//     the zero-padded, L1-normalised gamma vectors of both hyperedges.
//   • For (alpha,u): S = Σ_{beta ∈ E[u]} D[alpha,beta]; S ≤ 0 makes every
//     transition out of (alpha,u) degenerate.
//   • P_uv = (D[alpha,beta]/S) · gamma(beta,v)/delta_e, with the lazy and
//     non-lazy rules of the multilayer projection.
//   • weight = pi_alpha(alpha,u) · P_uv, pruned below Threshold.
//
// D rows are built one alpha at a time and only for hyperedges that share a
// member with alpha; other entries are never read.
//
// Complexity: O(Σ_alpha Σ_{beta~alpha} (|alpha|+|beta|)) for D plus the
// multilayer emission cost.

package representation

import (
	"fmt"
	"io"

	"github.com/katalvlaran/hyperwalk/divergence"
	"github.com/katalvlaran/hyperwalk/hypergraph"
	"github.com/katalvlaran/hyperwalk/network"
	"github.com/katalvlaran/hyperwalk/preprocess"
)

// HyperedgeSimilarity streams the similarity-weighted multilayer projection
// to emit.
//
// Errors: a divergence failure or the first error returned by emit, wrapped.
func HyperedgeSimilarity(h *hypergraph.Hypergraph, pre *preprocess.Result, walk WalkMode, emit EmitFunc) (Summary, error) {
	var sum Summary
	var buf []network.MultilayerLink
	members := memberLists(h)

	for _, alpha := range h.Edges {
		row, err := similarityRow(h, pre, alpha, members[alpha.ID])
		if err != nil {
			return sum, fmt.Errorf("%s: %w", methodHyperedgeSimilarity, err)
		}

		buf = buf[:0]
		for _, u := range members[alpha.ID] {
			incident := pre.Edges(u)
			var norm float64
			for _, betaID := range incident {
				norm += row[betaID]
			}
			if !(norm > 0) {
				sum.Degenerate++
				continue
			}

			piAlpha := pre.PiAlpha(alpha.ID, u)
			for _, betaID := range incident {
				choice := row[betaID] / norm
				for _, v := range members[betaID] {
					if walk == NonLazy && u == v {
						continue
					}
					em, ok := emission(pre, walk, betaID, u, v)
					if !ok {
						sum.Degenerate++
						continue
					}
					w := piAlpha * choice * em
					if w < Threshold {
						sum.Pruned++
						continue
					}
					buf = append(buf, network.MultilayerLink{
						Layer1: int(alpha.ID), Source: int(u),
						Layer2: int(betaID), Target: int(v),
						Weight: w,
					})
				}
			}
		}

		if err := emit(alpha.ID, buf); err != nil {
			return sum, fmt.Errorf("%s: layer %d: %w", methodHyperedgeSimilarity, alpha.ID, err)
		}
		sum.Links += len(buf)
	}

	return sum, nil
}

// similarityRow returns D[alpha,·] for every hyperedge sharing a member
// with alpha.
func similarityRow(
	h *hypergraph.Hypergraph,
	pre *preprocess.Result,
	alpha hypergraph.HyperEdge,
	alphaMembers []hypergraph.NodeID,
) (map[hypergraph.EdgeID]float64, error) {
	row := make(map[hypergraph.EdgeID]float64)
	for _, u := range alphaMembers {
		for _, betaID := range pre.Edges(u) {
			if _, done := row[betaID]; done {
				continue
			}
			beta, _ := h.EdgeByID(betaID)
			sim, err := divergence.Similarity(alpha, beta, pre.Gamma)
			if err != nil {
				return nil, err
			}
			row[betaID] = sim * beta.Omega
		}
	}

	return row, nil
}

type similarityProjector struct{}

func (similarityProjector) Kind() Kind { return KindHyperedgeSimilarity }

func (similarityProjector) Project(h *hypergraph.Hypergraph, pre *preprocess.Result, walk WalkMode, w io.Writer) (Summary, error) {
	return streamMultilayer(methodHyperedgeSimilarity, h, w, func(emit EmitFunc) (Summary, error) {
		return HyperedgeSimilarity(h, pre, walk, emit)
	})
}
