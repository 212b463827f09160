// SPDX-License-Identifier: MIT
// Package: hyperwalk/representation
//
// multilayer.go — hyperedges as layers, inter-layer transition links.
//
// Contract:
//   • For layer alpha, member u, beta ∈ E[u], member v of beta:
//       P_uv   = (omega(beta)/d[u]) · gamma(beta,v)/delta_e
//       weight = pi_alpha(alpha,u) · P_uv
//     pruned below Threshold. NonLazy skips v == u and uses
//     delta_e = delta[beta] − gamma(beta,u).
//   • Links are handed to emit one source layer at a time, in hyperedge
//     declaration order, then member order, then E[u] order.
//
// Memory: one layer's links are buffered at a time.

package representation

import (
	"fmt"
	"io"

	"github.com/katalvlaran/hyperwalk/hypergraph"
	"github.com/katalvlaran/hyperwalk/network"
	"github.com/katalvlaran/hyperwalk/preprocess"
)

const (
	methodMultilayer          = "Multilayer"
	methodHyperedgeSimilarity = "HyperedgeSimilarity"
)

// EmitFunc receives the links of one source layer. The slice is reused
// after emit returns; implementations must copy what they keep.
type EmitFunc func(layer hypergraph.EdgeID, links []network.MultilayerLink) error

// Multilayer streams the multilayer projection to emit.
//
// Errors: the first error returned by emit, wrapped.
func Multilayer(h *hypergraph.Hypergraph, pre *preprocess.Result, walk WalkMode, emit EmitFunc) (Summary, error) {
	var sum Summary
	var buf []network.MultilayerLink
	members := memberLists(h)

	for _, alpha := range h.Edges {
		buf = buf[:0]
		for _, u := range members[alpha.ID] {
			piAlpha := pre.PiAlpha(alpha.ID, u)
			for _, betaID := range pre.Edges(u) {
				for _, v := range members[betaID] {
					if walk == NonLazy && u == v {
						continue
					}
					p, ok := memberStep(pre, walk, betaID, u, v)
					if !ok {
						sum.Degenerate++
						continue
					}
					w := piAlpha * p
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
			return sum, fmt.Errorf("%s: layer %d: %w", methodMultilayer, alpha.ID, err)
		}
		sum.Links += len(buf)
	}

	return sum, nil
}

// streamMultilayer wires a layer generator to a MultilayerWriter on w.
func streamMultilayer(
	method string,
	h *hypergraph.Hypergraph,
	w io.Writer,
	run func(emit EmitFunc) (Summary, error),
) (Summary, error) {
	mw, err := network.NewMultilayerWriter(w, nodeVertices(h))
	if err != nil {
		return Summary{}, fmt.Errorf("%s: write: %w", method, err)
	}
	sum, err := run(func(_ hypergraph.EdgeID, links []network.MultilayerLink) error {
		return mw.WriteLinks(links)
	})
	if err != nil {
		return sum, err
	}
	if err := mw.Flush(); err != nil {
		return sum, fmt.Errorf("%s: write: %w", method, err)
	}

	return sum, nil
}

type multilayerProjector struct{}

func (multilayerProjector) Kind() Kind { return KindMultilayer }

func (multilayerProjector) Project(h *hypergraph.Hypergraph, pre *preprocess.Result, walk WalkMode, w io.Writer) (Summary, error) {
	return streamMultilayer(methodMultilayer, h, w, func(emit EmitFunc) (Summary, error) {
		return Multilayer(h, pre, walk, emit)
	})
}
