// SPDX-License-Identifier: MIT
// Package: hyperwalk/preprocess
//
// result.go — read-only view over the quantities computed by Run.
//
// Contract:
//   • Every accessor is O(1) except TotalPi and TotalMass (linear in input).
//   • Unknown keys read as zero; Gamma alone falls back to DefaultGamma.
//   • Slices returned by Edges and Detached are shared, never copied.

package preprocess

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hyperwalk/hypergraph"
)

// Incidence keys an (edge,node) pair.
type Incidence struct {
	Edge hypergraph.EdgeID
	Node hypergraph.NodeID
}

// Result holds the derived quantities. It has no mutators; share it freely.
type Result struct {
	incident map[hypergraph.NodeID][]hypergraph.EdgeID // E
	strength map[hypergraph.NodeID]float64             // d
	gamma    map[Incidence]float64         // explicit or default-filled, members and detached
	delta    map[hypergraph.EdgeID]float64 // member sum plus detached records
	omega    map[hypergraph.EdgeID]float64 // copied from the hyperedges
	pi       map[hypergraph.NodeID]float64
	piAlpha  map[Incidence]float64 // members only
	detached []Incidence // explicit records for non-members, first-seen order
}

// Edges returns E[u] in hyperedge declaration order. The slice is shared;
// callers must not modify it.
func (r *Result) Edges(u hypergraph.NodeID) []hypergraph.EdgeID { return r.incident[u] }

// Strength returns d[u].
func (r *Result) Strength(u hypergraph.NodeID) float64 { return r.strength[u] }

// Gamma returns the affinity of u in e, DefaultGamma when no value is known.
func (r *Result) Gamma(e hypergraph.EdgeID, u hypergraph.NodeID) float64 {
	if g, ok := r.gamma[Incidence{Edge: e, Node: u}]; ok {
		return g
	}

	return hypergraph.DefaultGamma
}

// Delta returns delta[e].
func (r *Result) Delta(e hypergraph.EdgeID) float64 { return r.delta[e] }

// Omega returns the weight of hyperedge e.
func (r *Result) Omega(e hypergraph.EdgeID) float64 { return r.omega[e] }

// Pi returns the stationary visit rate pi[u].
func (r *Result) Pi(u hypergraph.NodeID) float64 { return r.pi[u] }

// PiAlpha returns the joint state visit rate omega(e)·gamma(e,u).
func (r *Result) PiAlpha(e hypergraph.EdgeID, u hypergraph.NodeID) float64 {
	return r.piAlpha[Incidence{Edge: e, Node: u}]
}

// Detached lists the explicit affinity records whose node is declared but
// not a member of the hyperedge, in first-seen order. Their gamma counts
// towards delta[e] but never moves the walk. The slice is shared; callers
// must not modify it.
func (r *Result) Detached() []Incidence { return r.detached }

// TotalPi returns Σ_u pi[u] over the given nodes.
func (r *Result) TotalPi(nodes []hypergraph.Node) float64 {
	// Summed in the order given.
	rates := make([]float64, len(nodes))
	for i, n := range nodes {
		rates[i] = r.pi[n.ID]
	}

	return floats.Sum(rates)
}

// TotalMass returns Σ_e omega(e)·delta[e] over the given hyperedges. Taken
// over all hyperedges it equals TotalPi over all nodes plus the
// omega-weighted mass of Detached records.
func (r *Result) TotalMass(edges []hypergraph.HyperEdge) float64 {
	mass := make([]float64, len(edges))
	for i, e := range edges {
		mass[i] = r.omega[e.ID] * r.delta[e.ID]
	}

	return floats.Sum(mass)
}
