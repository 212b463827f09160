// SPDX-License-Identifier: MIT
// Package: hyperwalk/divergence
//
// divergence.go — information-theoretic distances between affinity
// distributions, reported in bits.
//
// JensenShannon:
//  1. Check len(p) == len(q) and that both are probability vectors.
//  2. js = stat.JensenShannon(p, q)            (nats, in [0, ln 2])
//  3. return clamp(js / ln 2, 0, 1)            (bits, in [0, 1])
//
// The clamp only absorbs rounding at the bounds.
// Complexity: O(n) time, O(1) extra space.

package divergence

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/hyperwalk/hypergraph"
)

// Sentinel errors.
var (
	// ErrLengthMismatch indicates vectors of different lengths.
	ErrLengthMismatch = errors.New("divergence: length mismatch")

	// ErrNotDistribution indicates a vector that is not a probability distribution.
	ErrNotDistribution = errors.New("divergence: not a probability distribution")
)

// Tolerance bounds |Σp − 1| for an input to count as a distribution.
const Tolerance = 1e-9

// GammaFunc returns the affinity of node u in hyperedge e.
type GammaFunc func(e hypergraph.EdgeID, u hypergraph.NodeID) float64

// KullbackLeibler returns KL(p‖q) in bits. Terms with p_i = 0 contribute 0;
// a term with p_i > 0 and q_i = 0 yields +Inf.
func KullbackLeibler(p, q []float64) (float64, error) {
	if len(p) != len(q) {
		return 0, fmt.Errorf("KullbackLeibler: %d vs %d: %w", len(p), len(q), ErrLengthMismatch)
	}

	return stat.KullbackLeibler(p, q) / math.Ln2, nil
}

// JensenShannon returns JSD(p,q) in bits.
func JensenShannon(p, q []float64) (float64, error) {
	if len(p) != len(q) {
		return 0, fmt.Errorf("JensenShannon: %d vs %d: %w", len(p), len(q), ErrLengthMismatch)
	}
	if err := checkDistribution(p); err != nil {
		return 0, fmt.Errorf("JensenShannon: p: %w", err)
	}
	if err := checkDistribution(q); err != nil {
		return 0, fmt.Errorf("JensenShannon: q: %w", err)
	}

	jsd := stat.JensenShannon(p, q) / math.Ln2

	return math.Min(math.Max(jsd, 0), 1), nil
}

// Similarity returns 1 − JSD between the affinity distributions of alpha
// and beta. A hyperedge whose affinities sum to zero has similarity 0 with
// every hyperedge, itself included.
//
// Complexity: O(|alpha| + |beta|) time and space.
func Similarity(alpha, beta hypergraph.HyperEdge, gamma GammaFunc) (float64, error) {
	index := make(map[hypergraph.NodeID]int, len(alpha.Nodes)+len(beta.Nodes))
	for _, members := range [][]hypergraph.NodeID{alpha.Nodes, beta.Nodes} {
		for _, u := range members {
			if _, ok := index[u]; !ok {
				index[u] = len(index)
			}
		}
	}

	p := make([]float64, len(index))
	q := make([]float64, len(index))
	for _, u := range alpha.Nodes {
		p[index[u]] = gamma(alpha.ID, u)
	}
	for _, u := range beta.Nodes {
		q[index[u]] = gamma(beta.ID, u)
	}

	if !normalize(p) || !normalize(q) {
		return 0, nil
	}

	jsd, err := JensenShannon(p, q)
	if err != nil {
		return 0, fmt.Errorf("Similarity(%d,%d): %w", alpha.ID, beta.ID, err)
	}

	return 1 - jsd, nil
}

// normalize scales v to unit L1 mass in place and reports whether v had
// positive mass.
func normalize(v []float64) bool {
	sum := floats.Sum(v)
	if sum <= 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
		return false
	}
	floats.Scale(1/sum, v)

	return true
}

func checkDistribution(v []float64) error {
	if len(v) > 0 && floats.Min(v) < 0 {
		return ErrNotDistribution
	}
	if sum := floats.Sum(v); !scalar.EqualWithinAbs(sum, 1, Tolerance) {
		return fmt.Errorf("sum %v: %w", sum, ErrNotDistribution)
	}

	return nil
}
