package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/rehearse/internal/config"
	"github.com/abhisek/rehearse/internal/mastery"
	"github.com/abhisek/rehearse/internal/prompt"
	"github.com/abhisek/rehearse/internal/session"
	"github.com/abhisek/rehearse/internal/store"
	"github.com/abhisek/rehearse/internal/ui/layout"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Practice items without syncing the syllabus first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		scorer, err := newScorer(cmd, env.cfg)
		if err != nil {
			return err
		}
		return runPractice(cmd.Context(), env, scorer, cmd.OutOrStdout())
	},
}

// newScorer builds the console scorer for the configured prompt mode.
func newScorer(cmd *cobra.Command, cfg *config.Config) (session.Scorer, error) {
	mode, err := prompt.ParseMode(cfg.Prompt)
	if err != nil {
		return nil, err
	}
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		in = os.Stdin
	}
	return prompt.New(mode, in, cmd.OutOrStdout(), cfg.MaxAttempts)
}

// runPractice classifies the stored items and practices them in order,
// saving after every item. A missing store is reported and the run ends
// without practicing.
func runPractice(ctx context.Context, env *appEnv, scorer session.Scorer, out io.Writer) error {
	p, err := env.store.Load(ctx)
	if errors.Is(err, store.ErrNotFound) {
		env.log.Error("practice log not found, run sync first", zap.String("path", env.store.Path()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	buckets := mastery.Classify(p)
	counts := buckets.Counts()
	env.log.Info("progress classified",
		zap.Int("new", counts[mastery.StateNew]),
		zap.Int("learning", counts[mastery.StateLearning]),
		zap.Int("mastered", counts[mastery.StateMastered]),
	)

	w := prompt.Writer(out)
	sess := session.New(buckets, env.store, scorer,
		session.WithPracticeLearning(env.cfg.PracticeLearningItems),
		session.WithLimit(env.cfg.SessionLimit),
		session.WithLogger(env.log),
		session.WithProgress(func(done int, _ string) {
			fmt.Fprintln(w, layout.RenderProgress(done))
		}),
	)

	sum, err := sess.Run(ctx)
	if err != nil {
		return err
	}
	if sum.Planned > 0 {
		fmt.Fprintln(w, layout.RenderSummary(sum))
	}
	return nil
}
