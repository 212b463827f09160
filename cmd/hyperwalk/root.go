package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hyperwalk/components"
	"github.com/katalvlaran/hyperwalk/config"
	"github.com/katalvlaran/hyperwalk/hypergraph"
	"github.com/katalvlaran/hyperwalk/logging"
	"github.com/katalvlaran/hyperwalk/preprocess"
)

var (
	cfgFile          string
	logLevel         string
	logFormat        string
	workers          int
	largestComponent bool
	dropDangling     bool

	// Resolved in PersistentPreRunE.
	runCfg = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "hyperwalk",
	Short: "Project hypergraphs onto random-walk preserving networks",
	Long: `hyperwalk reads a weighted hypergraph and writes bipartite, non-backtracking,
unipartite, multilayer and hyperedge-similarity networks that preserve the
hypergraph's two-step random walk. Output is Pajek/Infomap text.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	defer func() { _ = logger.Sync() }()

	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "YAML configuration file")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "log format: console or json")
	flags.IntVar(&workers, "workers", 0, "projections to run at once")
	flags.BoolVar(&largestComponent, "largest-component", false, "keep only the largest connected component")
	flags.BoolVar(&dropDangling, "drop-dangling", false, "drop declared nodes that no hyperedge references")
}

// setup resolves the configuration (defaults, file, then changed flags) and
// builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("largest-component") {
		cfg.LargestComponent = largestComponent
	}
	if flags.Changed("drop-dangling") {
		cfg.DropDangling = dropDangling
	}

	l, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	runCfg, logger = cfg, l

	return nil
}

// loadHypergraph reads cfg.Input, applies the configured filters and
// preprocesses the result.
func loadHypergraph(cfg *config.Config, log *zap.Logger) (*hypergraph.Hypergraph, *preprocess.Result, error) {
	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	h, err := hypergraph.Parse(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", cfg.Input, err)
	}
	log.Info("hypergraph loaded",
		zap.String("input", cfg.Input),
		zap.Int("nodes", len(h.Nodes)),
		zap.Int("hyperedges", len(h.Edges)),
		zap.Int("weights", len(h.Weights)))

	if cfg.DropDangling {
		before := len(h.Nodes)
		h = h.DropDangling()
		log.Info("dangling nodes dropped", zap.Int("dropped", before-len(h.Nodes)))
	}
	if cfg.LargestComponent {
		before := len(h.Nodes)
		h = components.Largest(h)
		log.Info("restricted to largest component",
			zap.Int("nodes", len(h.Nodes)),
			zap.Int("dropped", before-len(h.Nodes)),
			zap.Int("hyperedges", len(h.Edges)))
	}

	pre, err := preprocess.Run(h)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", cfg.Input, err)
	}
	for _, d := range pre.Detached() {
		log.Warn("affinity for a node outside its hyperedge counted in delta",
			zap.Int("hyperedge", int(d.Edge)),
			zap.Int("node", int(d.Node)),
			zap.Float64("gamma", pre.Gamma(d.Edge, d.Node)))
	}

	return h, pre, nil
}
