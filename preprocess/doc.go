// Package preprocess derives, once per run, every probability-relevant
// quantity of the canonical two-step hypergraph random walk (pick an incident
// hyperedge with probability ∝ omega, then a member node ∝ gamma):
//
//	E[u]            hyperedges incident to node u (declaration order)
//	d[u]            Σ_{e ∈ E[u]} omega(e)                  node strength
//	gamma(e,u)      explicit affinity or DefaultGamma      affinity
//	delta[e]        Σ_{v ∈ e} gamma(e,v) (+ detached)      hyperedge strength
//	pi[u]           Σ_{e ∈ E[u]} omega(e)·gamma(e,u)       node visit rate
//	pi_alpha(e,u)   omega(e)·gamma(e,u)                    state visit rate
//
// The Result is immutable and safe for concurrent readers; every projector
// borrows the same instance. Accessors are total over their key domains and
// fall back to zero (or DefaultGamma for gamma) for keys outside them.
//
// Errors:
//
//   - ErrUnknownNode: a hyperedge or weight names an undeclared node.
//   - ErrUnknownEdge: a weight names an undeclared hyperedge.
//
// A weight for a declared node that is not a member of its hyperedge is
// accepted: it adds to delta[e] and is reported by Result.Detached.
package preprocess
