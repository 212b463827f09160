package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/hyperwalk/config"
	"github.com/katalvlaran/hyperwalk/representation"
)

const methodPlan = "Plan"

// Job is one projection written to one file.
type Job struct {
	Kind representation.Kind
	Walk representation.WalkMode
	Path string
}

func (j Job) String() string {
	if j.Kind.Walked() {
		return j.Kind.String() + "/" + j.Walk.String()
	}

	return j.Kind.String()
}

// All lists every distinct kind and walk pair: both walks for the walked
// kinds, Lazy alone for the two bipartite kinds.
func All() []Job {
	var jobs []Job
	for _, k := range representation.Kinds() {
		jobs = append(jobs, Job{Kind: k, Walk: representation.Lazy})
		if k.Walked() {
			jobs = append(jobs, Job{Kind: k, Walk: representation.NonLazy})
		}
	}

	return jobs
}

// Plan resolves cfg.Projections into jobs with output paths under
// cfg.OutputDir. An empty list plans All. The walk of a kind that ignores it
// is normalised to Lazy, and repeated pairs are planned once.
//
// Paths: <output_dir>/<stem>_<kind>.net, with "_non_lazy" before the
// extension for non-lazy walks.
func Plan(cfg *config.Config) ([]Job, error) {
	var jobs []Job
	if len(cfg.Projections) == 0 {
		jobs = All()
	}
	for i, p := range cfg.Projections {
		k, err := representation.ParseKind(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("%s: projections[%d]: %w", methodPlan, i, err)
		}
		w, err := representation.ParseWalk(p.Walk)
		if err != nil {
			return nil, fmt.Errorf("%s: projections[%d]: %w", methodPlan, i, err)
		}
		jobs = append(jobs, Job{Kind: k, Walk: w})
	}

	seen := make(map[Job]struct{}, len(jobs))
	out := jobs[:0]
	for _, j := range jobs {
		if !j.Kind.Walked() {
			j.Walk = representation.Lazy
		}
		if _, dup := seen[j]; dup {
			continue
		}
		seen[j] = struct{}{}
		j.Path = OutputPath(cfg.OutputDir, cfg.Stem(), j.Kind, j.Walk)
		out = append(out, j)
	}

	return out, nil
}

// OutputPath names the file a projection is written to.
func OutputPath(dir, stem string, k representation.Kind, w representation.WalkMode) string {
	name := stem + "_" + k.String()
	if k.Walked() && w == representation.NonLazy {
		name += "_non_lazy"
	}

	return filepath.Join(dir, name+".net")
}
