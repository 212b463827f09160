// Package hyperwalk converts weighted hypergraphs into conventional networks
// whose simple random walks reproduce the hypergraph's own two-step walk:
// from a node, pick an incident hyperedge in proportion to its weight omega,
// then a member node in proportion to its affinity gamma.
//
// Five projections are produced from one shared, read-only preprocessing
// pass:
//
//	bipartite                   nodes plus one feature node per hyperedge
//	bipartite_non_backtracking  state network that never re-enters the node it left
//	unipartite                  direct node → node links, lazy or non-lazy
//	multilayer                  hyperedges as layers, (layer,node) state links
//	hyperedge_similarity        multilayer, next layer chosen by Jensen–Shannon similarity
//
// Layout:
//
//	hypergraph/      model types and the *Vertices/*Hyperedges/*Weights loader
//	preprocess/      E, d, gamma, delta, pi and pi_alpha
//	divergence/      Kullback–Leibler and Jensen–Shannon in bits, hyperedge similarity
//	network/         output records and the Pajek/Infomap writer
//	representation/  the five projectors behind one Projector interface
//	components/      connected components and the largest-component filter
//	pipeline/        job planning and the concurrent runner
//	config/          YAML run configuration
//	logging/         zap logger construction
//	cmd/hyperwalk/   command-line interface
//
// Quick start:
//
//	hyperwalk project -U paleo.txt paleo_unipartite_non_lazy.net
//	hyperwalk all --output-dir out paleo.txt
//	hyperwalk inspect --largest-component paleo.txt
package hyperwalk
