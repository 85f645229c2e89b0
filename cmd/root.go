package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quantprep/quantprep/internal/config"
	"github.com/quantprep/quantprep/internal/content"
	"github.com/quantprep/quantprep/internal/logger"
	"github.com/quantprep/quantprep/internal/store"
	"github.com/quantprep/quantprep/internal/tracker"
)

var rootCmd = &cobra.Command{
	Use:   "quantprep",
	Short: "Quant interview prep in the terminal",
	Long:  "QuantPrep — spaced-repetition practice for quant finance interviews: probability, stochastic calculus, options pricing, brain teasers, and mental math.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUANTPREP_DB env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(weakCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(proCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config/env value, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	p, err := store.DefaultDBPath()
	if err != nil {
		return "", err
	}
	return p, store.EnsureDir(p)
}

// appEnv bundles the dependencies every subcommand needs.
type appEnv struct {
	cfg     *config.Config
	log     *zap.Logger
	store   *store.Store
	catalog *content.Catalog
	tracker *tracker.Tracker
}

func buildEnv(cmd *cobra.Command) (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	catalog, err := content.Load()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load question catalog: %w", err)
	}
	tr, err := tracker.New(st, catalog, log)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("init tracker: %w", err)
	}

	tr.KeepSnapshots(cfg.Quiz.SnapshotsKept)

	return &appEnv{cfg: cfg, log: log, store: st, catalog: catalog, tracker: tr}, nil
}

func (e *appEnv) Close() {
	e.store.Close()
	_ = e.log.Sync()
}
