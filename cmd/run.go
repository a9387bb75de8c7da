package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/rehearse/internal/config"
	"github.com/abhisek/rehearse/internal/logger"
	"github.com/abhisek/rehearse/internal/store"
)

// appEnv bundles what every command needs.
type appEnv struct {
	cfg   *config.Config
	log   *zap.Logger
	store store.Store
}

// Close flushes the logger and closes the store.
func (e *appEnv) Close() error {
	_ = e.log.Sync()
	return e.store.Close()
}

// setup loads configuration, builds the logger and opens the store.
func setup(cmd *cobra.Command) (*appEnv, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{
		ConfigFile: configFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &appEnv{cfg: cfg, log: log, store: st}, nil
}

// runApp syncs the syllabus and then runs a practice session.
func runApp(cmd *cobra.Command) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if err := runSync(ctx, env, cmd.OutOrStdout()); err != nil {
		return err
	}

	scorer, err := newScorer(cmd, env.cfg)
	if err != nil {
		return err
	}
	return runPractice(ctx, env, scorer, cmd.OutOrStdout())
}
