// Command hyperwalk converts a weighted hypergraph into random-walk
// preserving network projections in Pajek/Infomap format.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hyperwalk:", err)
		os.Exit(1)
	}
}
