// Package representation projects a preprocessed hypergraph onto
// conventional graphs whose ordinary random walk reproduces the hypergraph's
// two-step walk (pick an incident hyperedge ∝ omega/d, then a member ∝ gamma).
//
// Five projections are provided, each behind the Projector interface and
// selected by Kind:
//
//	KindBipartite            node ⇄ feature(hyperedge) network
//	KindNonBacktracking      bipartite state network; a walk never returns
//	                         to the node it just left through the same feature
//	KindUnipartite           direct node → node links, aggregated over hyperedges
//	KindMultilayer           one layer per hyperedge, (alpha,u) → (beta,v) links
//	KindHyperedgeSimilarity  multilayer with the choice of beta weighted by
//	                         Jensen–Shannon similarity to alpha times omega(beta)
//
// WalkMode selects the lazy walk (may stay on its node) or the non-lazy walk
// (must move; the next node is drawn from the hyperedge without the current
// node). Bipartite projections ignore WalkMode.
//
// Numerical policy:
//
//   - Any weight below Threshold is pruned; anything at or above is emitted.
//   - A transition whose denominator (d[u], delta_e, or the similarity
//     normaliser) is not positive is skipped and counted as degenerate.
//
// Every projector is a pure function of its inputs; distinct projectors may
// run concurrently over the same Hypergraph and preprocess.Result.
package representation
