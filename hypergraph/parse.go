package hypergraph

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// section is the parser context selected by the last '*' marker line.
type section int

const (
	sectionNone section = iota
	sectionVertices
	sectionHyperedges
	sectionWeights
)

// Section marker prefixes, compared against the lower-cased line.
const (
	markerVertices   = "*vertices"
	markerHyperedges = "*hyperedges"
	markerWeights    = "*weights"
)

const methodParse = "Parse"

// Parse reads the line-oriented hypergraph format from r.
//
// Lines outside a known section (before the first marker or after an
// unrecognised '*' line) are ignored. Blank lines are skipped.
//
// Errors: ErrSyntax and ErrInvalidWeight annotated with the 1-based line
// number, ErrDuplicateNode/ErrDuplicateEdge from New, or the reader's error.
// Complexity: O(size of input).
func Parse(r io.Reader) (*Hypergraph, error) {
	var (
		nodes   []Node
		edges   []HyperEdge
		weights []Gamma
		ctx     = sectionNone
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "*") {
			ctx = parseMarker(line)
			continue
		}

		switch ctx {
		case sectionVertices:
			n, err := parseNode(line)
			if err != nil {
				return nil, fmt.Errorf("%s: line %d: %w", methodParse, lineNo, err)
			}
			nodes = append(nodes, n)
		case sectionHyperedges:
			e, err := parseEdge(line)
			if err != nil {
				return nil, fmt.Errorf("%s: line %d: %w", methodParse, lineNo, err)
			}
			edges = append(edges, e)
		case sectionWeights:
			g, err := parseGamma(line)
			if err != nil {
				return nil, fmt.Errorf("%s: line %d: %w", methodParse, lineNo, err)
			}
			weights = append(weights, g)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodParse, err)
	}

	return New(nodes, edges, weights)
}

func parseMarker(line string) section {
	lower := strings.ToLower(line)
	switch {
	case strings.HasPrefix(lower, markerVertices):
		return sectionVertices
	case strings.HasPrefix(lower, markerHyperedges):
		return sectionHyperedges
	case strings.HasPrefix(lower, markerWeights):
		return sectionWeights
	default:
		return sectionNone
	}
}

// parseNode reads "<id> <name...>". A missing name falls back to the ID.
func parseNode(line string) (Node, error) {
	idField, name := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		idField, name = line[:i], strings.TrimSpace(line[i:])
	}
	id, err := parseID(idField)
	if err != nil {
		return Node{}, err
	}
	if name == "" {
		name = idField
	}

	return Node{ID: NodeID(id), Name: name}, nil
}

// parseEdge reads "<id> <node>... <omega>".
func parseEdge(line string) (HyperEdge, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return HyperEdge{}, fmt.Errorf("hyperedge %q needs an id and a weight: %w", line, ErrSyntax)
	}
	id, err := parseID(fields[0])
	if err != nil {
		return HyperEdge{}, err
	}
	omega, err := parseWeight(fields[len(fields)-1])
	if err != nil {
		return HyperEdge{}, err
	}

	members := fields[1 : len(fields)-1]
	nodes := make([]NodeID, len(members))
	for i, f := range members {
		u, err := parseID(f)
		if err != nil {
			return HyperEdge{}, err
		}
		nodes[i] = NodeID(u)
	}

	return HyperEdge{ID: EdgeID(id), Nodes: nodes, Omega: omega}, nil
}

// parseGamma reads "<edge> <node> <gamma>".
func parseGamma(line string) (Gamma, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Gamma{}, fmt.Errorf("weight %q needs exactly 3 fields: %w", line, ErrSyntax)
	}
	e, err := parseID(fields[0])
	if err != nil {
		return Gamma{}, err
	}
	u, err := parseID(fields[1])
	if err != nil {
		return Gamma{}, err
	}
	v, err := parseWeight(fields[2])
	if err != nil {
		return Gamma{}, err
	}

	return Gamma{Edge: EdgeID(e), Node: NodeID(u), Value: v}, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("id %q: %w: %w", s, ErrSyntax, err)
	}

	return id, nil
}

func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("weight %q: %w: %w", s, ErrSyntax, err)
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("weight %q: %w", s, ErrInvalidWeight)
	}

	return w, nil
}
