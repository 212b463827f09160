// Package hypergraph holds the in-memory hypergraph model consumed by every
// projection: declared nodes, weighted hyperedges and optional per-(edge,node)
// affinity weights ("gamma").
//
// What:
//
//   - Node, HyperEdge and Gamma value types, keyed by integer IDs.
//   - Hypergraph, an ordered, immutable container with an edge-ID index.
//   - Parse, a loader for the line-oriented text format:
//
//     # comment
//     *Vertices
//     1 "a"
//     2 "b"
//     *Hyperedges
//     # id nodes... omega
//     10 1 2 3.5
//     *Weights
//     # edge node gamma
//     10 1 2
//
//   - DropDangling, removing declared nodes that no hyperedge references.
//
// Section markers are matched case-insensitively by prefix. Lines beginning
// with '#' are comments in every section. A vertex name is the remainder of
// its line and may contain spaces.
//
// Errors:
//
//   - ErrSyntax: a line cannot be split or a number cannot be parsed.
//   - ErrInvalidWeight: omega or gamma is negative, NaN or infinite.
//   - ErrDuplicateNode / ErrDuplicateEdge: an ID is declared twice.
//
// Referential integrity (edges naming undeclared nodes, weights naming
// undeclared edges) is checked by package preprocess, not here.
package hypergraph
