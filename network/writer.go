// SPDX-License-Identifier: MIT
// Package: hyperwalk/network
//
// writer.go — Pajek-style text serialisation of a Network.
//
// Layout:
//   *Vertices            one "<id> <name>" line per vertex
//   *States              only when States is non-empty
//   *Links | *Bipartite N | *Multilayer
//   <link lines>         "src dst w" or "l1 src l2 dst w"
//
// Weights use FormatWeight; no line carries a trailing space.
// Every writer buffers through bufio and returns the first write error.

package network

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Section markers.
const (
	markerVertices   = "*Vertices"
	markerStates     = "*States"
	markerBipartite  = "*Bipartite"
	markerLinks      = "*Links"
	markerMultilayer = "*Multilayer"
)

// FormatWeight renders w with full precision and no exponent.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// Write serialises n to w. Output is buffered and flushed before return.
//
// Errors: any error returned by w.
func Write(w io.Writer, n *Network) error {
	bw := bufio.NewWriter(w)
	if err := writeVertices(bw, n.Vertices); err != nil {
		return err
	}

	// State block only for state networks (non-backtracking).
	if len(n.States) > 0 {
		if _, err := fmt.Fprintln(bw, markerStates); err != nil {
			return err
		}
		for _, s := range n.States {
			if _, err := fmt.Fprintf(bw, "%d %d\n", s.StateID, s.NodeID); err != nil {
				return err
			}
		}
	}

	// Link section header: the bipartite marker carries the first feature ID.
	var err error
	if n.Bipartite {
		_, err = fmt.Fprintf(bw, "%s %d\n", markerBipartite, n.BipartiteStart)
	} else {
		_, err = fmt.Fprintln(bw, markerLinks)
	}
	if err != nil {
		return err
	}
	for _, l := range n.Links {
		if _, err := fmt.Fprintf(bw, "%d %d %s\n", l.Source, l.Target, FormatWeight(l.Weight)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// MultilayerWriter streams a multilayer network: the vertex block is written
// once by NewMultilayerWriter, then links arrive in batches.
type MultilayerWriter struct {
	bw    *bufio.Writer
	links int // written so far, across batches
}

// NewMultilayerWriter writes the "*Vertices" and "*Multilayer" headers and
// returns a writer for the link lines.
func NewMultilayerWriter(w io.Writer, vertices []Vertex) (*MultilayerWriter, error) {
	bw := bufio.NewWriter(w)
	if err := writeVertices(bw, vertices); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(bw, markerMultilayer); err != nil {
		return nil, err
	}

	return &MultilayerWriter{bw: bw}, nil
}

// WriteLinks appends one batch of links.
func (m *MultilayerWriter) WriteLinks(links []MultilayerLink) error {
	for _, l := range links {
		if _, err := fmt.Fprintf(m.bw, "%d %d %d %d %s\n",
			l.Layer1, l.Source, l.Layer2, l.Target, FormatWeight(l.Weight)); err != nil {
			return err
		}
	}
	m.links += len(links)

	return nil
}

// Links reports how many links have been written so far.
func (m *MultilayerWriter) Links() int { return m.links }

// Flush flushes buffered output to the underlying writer.
func (m *MultilayerWriter) Flush() error { return m.bw.Flush() }

// writeVertices writes the "*Vertices" block. Names are written verbatim,
// so quoting is the caller's job (see HyperedgeName).
func writeVertices(bw *bufio.Writer, vertices []Vertex) error {
	if _, err := fmt.Fprintln(bw, markerVertices); err != nil {
		return err
	}
	for _, v := range vertices {
		if _, err := fmt.Fprintf(bw, "%d %s\n", v.ID, v.Name); err != nil {
			return err
		}
	}

	return nil
}
