package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/rehearse/internal/mastery"
	"github.com/abhisek/rehearse/internal/session"
	"github.com/abhisek/rehearse/internal/store"
	"github.com/abhisek/rehearse/internal/ui/layout"
)

var statsNext int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show item counts per state and what comes up next",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		p, err := env.store.Load(cmd.Context())
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintln(cmd.OutOrStdout(), "No progress yet. Run `rehearse sync` to get started.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		b := mastery.Classify(p)
		plan := session.BuildPlan(b, nil, env.cfg.PracticeLearningItems)
		next := plan.Slots
		if statsNext >= 0 && len(next) > statsNext {
			next = next[:statsNext]
		}
		fmt.Fprintln(cmd.OutOrStdout(), layout.RenderStats(b, next))
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVarP(&statsNext, "next", "n", 10, "Number of upcoming items to list")
}
