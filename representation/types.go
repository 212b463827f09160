// SPDX-License-Identifier: MIT
// Package: hyperwalk/representation
//
// types.go — kinds, walk modes, summaries and the Projector contract.
//
// Contract:
//   • Projectors read h and pre only; no shared mutable state.
//   • Emission order is fixed by declaration order (see each projector).
//   • Errors are sentinels wrapped with the method name via %w.

package representation

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/hyperwalk/hypergraph"
	"github.com/katalvlaran/hyperwalk/preprocess"
)

// Threshold is the pruning bound shared by every projection.
const Threshold = 1e-10

// Sentinel errors.
var (
	// ErrUnknownKind indicates an unrecognised projection name.
	ErrUnknownKind = errors.New("representation: unknown projection kind")

	// ErrUnknownWalk indicates an unrecognised walk mode name.
	ErrUnknownWalk = errors.New("representation: unknown walk mode")

	// ErrUnknownSelector indicates an unrecognised short selector such as "-x".
	ErrUnknownSelector = errors.New("representation: unknown selector")

	// ErrEmptyHypergraph indicates a projection that needs at least one node.
	ErrEmptyHypergraph = errors.New("representation: hypergraph has no nodes")
)

// Kind selects a projection.
type Kind int

const (
	KindBipartite Kind = iota
	KindNonBacktracking
	KindUnipartite
	KindMultilayer
	KindHyperedgeSimilarity
)

var kindNames = [...]string{
	KindBipartite:           "bipartite",
	KindNonBacktracking:     "bipartite_non_backtracking",
	KindUnipartite:          "unipartite",
	KindMultilayer:          "multilayer",
	KindHyperedgeSimilarity: "hyperedge_similarity",
}

// Kinds lists every projection kind in canonical order.
func Kinds() []Kind {
	return []Kind{KindBipartite, KindNonBacktracking, KindUnipartite, KindMultilayer, KindHyperedgeSimilarity}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Walked reports whether the projection depends on WalkMode.
func (k Kind) Walked() bool {
	return k == KindUnipartite || k == KindMultilayer || k == KindHyperedgeSimilarity
}

// ParseKind maps a kind name (as produced by String, case-insensitive,
// '-' and '_' interchangeable) to its Kind.
func ParseKind(s string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for k, name := range kindNames {
		if name == norm {
			return Kind(k), nil
		}
	}
	switch norm {
	case "non_backtracking", "nonbacktracking":
		return KindNonBacktracking, nil
	case "similarity":
		return KindHyperedgeSimilarity, nil
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// WalkMode selects the lazy or non-lazy walk.
type WalkMode int

const (
	// Lazy allows the walk to land on the node it left.
	Lazy WalkMode = iota

	// NonLazy forces a move: self-pairs are excluded and the emission is
	// renormalised over the hyperedge without the current node.
	NonLazy
)

func (w WalkMode) String() string {
	if w == NonLazy {
		return "non-lazy"
	}

	return "lazy"
}

// ParseWalk maps "lazy" / "non-lazy" (also "nonlazy", "non_lazy") to a WalkMode.
func ParseWalk(s string) (WalkMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lazy":
		return Lazy, nil
	case "non-lazy", "nonlazy", "non_lazy":
		return NonLazy, nil
	}

	return 0, fmt.Errorf("ParseWalk(%q): %w", s, ErrUnknownWalk)
}

// selectors are the single-letter projection switches of the command line;
// lower case is lazy, upper case non-lazy (or non-backtracking for b/B).
var selectors = map[string]struct {
	kind Kind
	walk WalkMode
}{
	"-b": {KindBipartite, Lazy},
	"-B": {KindNonBacktracking, Lazy},
	"-u": {KindUnipartite, Lazy},
	"-U": {KindUnipartite, NonLazy},
	"-m": {KindMultilayer, Lazy},
	"-M": {KindMultilayer, NonLazy},
	"-s": {KindHyperedgeSimilarity, Lazy},
	"-S": {KindHyperedgeSimilarity, NonLazy},
}

// ParseSelector maps a short selector ("-b", "-U", ...) to a kind and walk.
func ParseSelector(s string) (Kind, WalkMode, error) {
	sel, ok := selectors[s]
	if !ok {
		return 0, 0, fmt.Errorf("ParseSelector(%q): %w", s, ErrUnknownSelector)
	}

	return sel.kind, sel.walk, nil
}

// Summary counts what a projection emitted and skipped.
type Summary struct {
	// Links is the number of links written.
	Links int

	// Pruned counts candidate links dropped below Threshold.
	Pruned int

	// Degenerate counts transitions skipped for a non-positive denominator.
	Degenerate int
}

// Projector is the uniform contract shared by the five projections.
type Projector interface {
	Kind() Kind
	Project(h *hypergraph.Hypergraph, pre *preprocess.Result, walk WalkMode, w io.Writer) (Summary, error)
}

// New returns the Projector for k.
func New(k Kind) (Projector, error) {
	switch k {
	case KindBipartite:
		return bipartiteProjector{}, nil
	case KindNonBacktracking:
		return nonBacktrackingProjector{}, nil
	case KindUnipartite:
		return unipartiteProjector{}, nil
	case KindMultilayer:
		return multilayerProjector{}, nil
	case KindHyperedgeSimilarity:
		return similarityProjector{}, nil
	}

	return nil, fmt.Errorf("New(%v): %w", k, ErrUnknownKind)
}
