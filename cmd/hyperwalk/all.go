package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hyperwalk/config"
	"github.com/katalvlaran/hyperwalk/pipeline"
)

var (
	allOutputDir   string
	allName        string
	allProjections []string
)

var allCmd = &cobra.Command{
	Use:   "all [input]",
	Short: "Write every configured projection of a hypergraph",
	Long: `Plans one output file per projection and writes them concurrently.

Without --projection (or a projections list in the config file) every kind is
written, in both walk modes where the kind has them. Files are named
<output-dir>/<name>_<kind>[_non_lazy].net.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := *runCfg
		if len(args) == 1 {
			c.Input = args[0]
		}
		if cmd.Flags().Changed("output-dir") {
			c.OutputDir = allOutputDir
		}
		if cmd.Flags().Changed("name") {
			c.Name = allName
		}
		if len(allProjections) > 0 {
			c.Projections = parseProjections(allProjections)
		}

		return runAll(&c, logger, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(allCmd)

	flags := allCmd.Flags()
	flags.StringVarP(&allOutputDir, "output-dir", "o", ".", "directory for the .net files")
	flags.StringVar(&allName, "name", "", "output file stem (default: input base name)")
	flags.StringSliceVarP(&allProjections, "projection", "p", nil, "kind[:walk] to write, repeatable")
}

// parseProjections reads "kind" or "kind:walk" entries.
func parseProjections(specs []string) []config.Projection {
	out := make([]config.Projection, len(specs))
	for i, s := range specs {
		kind, walk, _ := strings.Cut(s, ":")
		out[i] = config.Projection{Kind: kind, Walk: walk}
	}

	return out
}

func runAll(cfg *config.Config, log *zap.Logger, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	jobs, err := pipeline.Plan(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}

	h, pre, err := loadHypergraph(cfg, log)
	if err != nil {
		return err
	}

	reports, err := pipeline.Run(h, pre, jobs, pipeline.WithLogger(log), pipeline.WithWorkers(cfg.Workers))
	printReports(out, reports)

	return err
}

// printReports writes one line per job: path, link count and status.
func printReports(out io.Writer, reports []pipeline.Report) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "OUTPUT\tPROJECTION\tLINKS\tPRUNED\tDEGENERATE\tSTATUS")
	for _, r := range reports {
		status := "ok"
		if r.Err != nil {
			status = "failed"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			r.Job.Path, r.Job, r.Summary.Links, r.Summary.Pruned, r.Summary.Degenerate, status)
	}
	_ = tw.Flush()
}
