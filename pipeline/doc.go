// Package pipeline turns a run configuration into projection jobs and runs
// them concurrently against one preprocessed hypergraph.
//
// Plan decides which files to write. Run fans the jobs out over a bounded
// errgroup; every job owns its output file, and the hypergraph and
// preprocess.Result are shared read-only. A failing job does not stop its
// siblings: Run waits for all of them and returns every failure joined.
package pipeline
