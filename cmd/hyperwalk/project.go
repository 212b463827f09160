package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hyperwalk/config"
	"github.com/katalvlaran/hyperwalk/pipeline"
	"github.com/katalvlaran/hyperwalk/representation"
)

var errSelection = errors.New("choose exactly one projection")

// selectorFlags are the single-letter projection switches.
var selectorFlags = []struct {
	short, long, usage string
}{
	{"b", "bipartite", "bipartite node/hyperedge network"},
	{"B", "non-backtracking", "non-backtracking bipartite state network"},
	{"u", "unipartite", "unipartite network, lazy walk"},
	{"U", "unipartite-non-lazy", "unipartite network, non-lazy walk"},
	{"m", "multilayer", "multilayer network, lazy walk"},
	{"M", "multilayer-non-lazy", "multilayer network, non-lazy walk"},
	{"s", "similarity", "hyperedge-similarity multilayer network, lazy walk"},
	{"S", "similarity-non-lazy", "hyperedge-similarity multilayer network, non-lazy walk"},
}

var (
	projectSelected = make(map[string]*bool, len(selectorFlags))
	projectKind     string
	projectNonLazy  bool
)

var projectCmd = &cobra.Command{
	Use:   "project (-b|-B|-u|-U|-m|-M|-s|-S | --kind KIND [--non-lazy]) <input> <output>",
	Short: "Write one projection of a hypergraph",
	Long: `Reads the hypergraph in <input> and writes a single projection to <output>.

The projection is chosen by one selector flag, or by --kind together with
--non-lazy for the kinds that depend on the walk.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var selected []string
		for _, f := range selectorFlags {
			if *projectSelected[f.short] {
				selected = append(selected, "-"+f.short)
			}
		}
		kind, walk, err := resolveProjection(selected, projectKind, projectNonLazy)
		if err != nil {
			return err
		}

		return runProject(runCfg, logger, kind, walk, args[0], args[1], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)

	flags := projectCmd.Flags()
	for _, f := range selectorFlags {
		projectSelected[f.short] = flags.BoolP(f.long, f.short, false, f.usage)
	}
	flags.StringVar(&projectKind, "kind", "", "projection kind by name, e.g. unipartite")
	flags.BoolVar(&projectNonLazy, "non-lazy", false, "use the non-lazy walk with --kind")
}

// resolveProjection turns the selector flags or a kind name into one
// projection. Exactly one of the two forms must be used.
func resolveProjection(selected []string, kind string, nonLazy bool) (representation.Kind, representation.WalkMode, error) {
	switch {
	case len(selected) > 1:
		return 0, 0, fmt.Errorf("%w: got %v", errSelection, selected)
	case len(selected) == 1 && (kind != "" || nonLazy):
		return 0, 0, fmt.Errorf("%w: %s cannot be combined with --kind or --non-lazy", errSelection, selected[0])
	case len(selected) == 1:
		return representation.ParseSelector(selected[0])
	case kind == "":
		return 0, 0, errSelection
	}

	k, err := representation.ParseKind(kind)
	if err != nil {
		return 0, 0, err
	}
	walk := representation.Lazy
	if nonLazy {
		if !k.Walked() {
			return 0, 0, fmt.Errorf("%w: %s has no non-lazy variant", errSelection, k)
		}
		walk = representation.NonLazy
	}

	return k, walk, nil
}

func runProject(
	cfg *config.Config,
	log *zap.Logger,
	kind representation.Kind,
	walk representation.WalkMode,
	input, output string,
	out io.Writer,
) error {
	c := *cfg
	c.Input = input
	if err := c.Validate(); err != nil {
		return err
	}

	h, pre, err := loadHypergraph(&c, log)
	if err != nil {
		return err
	}

	job := pipeline.Job{Kind: kind, Walk: walk, Path: output}
	reports, err := pipeline.Run(h, pre, []pipeline.Job{job}, pipeline.WithLogger(log), pipeline.WithWorkers(1))
	if err != nil {
		return err
	}
	printReports(out, reports)

	return nil
}
