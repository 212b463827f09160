// Package network holds the conventional-graph records produced by the
// projections and writes them in the Pajek/Infomap text format:
//
//	*Vertices
//	1 "a"
//	2 "b"
//	3 "Hyperedge 0"
//	*States            (non-backtracking only)
//	0 1
//	*Bipartite 3       (bipartite outputs only)
//	1 3 0.5
//	*Links             (when no *Bipartite marker precedes the links)
//	1 2 0.5
//	*Multilayer        (multilayer outputs)
//	0 1 0 2 0.25
//
// Weights are written with the shortest decimal representation that
// round-trips to the same float64, never in exponent notation.
package network
