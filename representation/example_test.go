package representation_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/hyperwalk/hypergraph"
	"github.com/katalvlaran/hyperwalk/network"
	"github.com/katalvlaran/hyperwalk/preprocess"
	"github.com/katalvlaran/hyperwalk/representation"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleProjector_unipartite
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two authors who wrote one paper together.
//	  nodes      1 "Ada", 2 "Bob"
//	  hyperedge  0 = {1, 2}, omega 1, no explicit affinities
//
// The non-lazy walk must leave the current author, so all of each author's
// visit rate (pi = 1) moves to the co-author.
func ExampleProjector_unipartite() {
	in := "*Vertices\n1 \"Ada\"\n2 \"Bob\"\n*Hyperedges\n0 1 2 1\n"
	h, err := hypergraph.Parse(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	pre, err := preprocess.Run(h)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, _ := representation.New(representation.KindUnipartite)
	if _, err := p.Project(h, pre, representation.NonLazy, os.Stdout); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// *Vertices
	// 1 "Ada"
	// 2 "Bob"
	// *Links
	// 1 2 1
	// 2 1 1
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMultilayer
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Node 2 sits in two hyperedges, {1,2} with omega 1 and {2,3} with
//	omega 3. Leaving layer 0 from node 2, the walk picks layer 1 three
//	times as often as layer 0.
func ExampleMultilayer() {
	in := "*Vertices\n1 a\n2 b\n3 c\n*Hyperedges\n0 1 2 1\n1 2 3 3\n"
	h, _ := hypergraph.Parse(strings.NewReader(in))
	pre, _ := preprocess.Run(h)

	_, err := representation.Multilayer(h, pre, representation.NonLazy,
		func(layer hypergraph.EdgeID, links []network.MultilayerLink) error {
			for _, l := range links {
				if l.Source == 2 {
					fmt.Printf("(%d,%d) -> (%d,%d) %s\n", l.Layer1, l.Source, l.Layer2, l.Target, network.FormatWeight(l.Weight))
				}
			}
			return nil
		})
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// (0,2) -> (0,1) 0.25
	// (0,2) -> (1,3) 0.75
	// (1,2) -> (0,1) 0.75
	// (1,2) -> (1,3) 2.25
}
