// SPDX-License-Identifier: MIT
// Package: hyperwalk/network
//
// types.go — output records.
//
// IDs are plain ints: projections mix original node IDs, synthetic feature
// IDs and state IDs in one numbering space.

package network

import "fmt"

// Vertex is a named vertex of an output network.
type Vertex struct {
	ID   int
	Name string
}

// Link is a directed weighted link between two vertices (or states).
type Link struct {
	Source int
	Target int
	Weight float64
}

// StateNode binds a state ID to the physical vertex it represents.
type StateNode struct {
	StateID int
	NodeID  int
}

// MultilayerLink is an inter-layer link (Layer1,Source) → (Layer2,Target).
type MultilayerLink struct {
	Layer1 int
	Source int
	Layer2 int
	Target int
	Weight float64
}

// Network is a fully materialised single-layer output.
//
// When Bipartite is set, BipartiteStart is the first ID of the second
// partition and is written as "*Bipartite <n>" in place of "*Links".
type Network struct {
	Vertices       []Vertex
	States         []StateNode
	Bipartite      bool
	BipartiteStart int
	Links          []Link
}

// HyperedgeName is the synthetic vertex name given to the feature node or
// layer representing hyperedge id.
func HyperedgeName(id int) string {
	return fmt.Sprintf("%q", fmt.Sprintf("Hyperedge %d", id))
}
