package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/rehearse/internal/store"
	"github.com/abhisek/rehearse/internal/syllabus"
	"github.com/abhisek/rehearse/internal/ui/theme"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Add items from the syllabus to the progress store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()
		return runSync(cmd.Context(), env, cmd.OutOrStdout())
	},
}

// runSync expands every syllabus source and adds the items the store does
// not track yet. A missing store starts out empty; a source that fails to
// load is reported and skipped.
func runSync(ctx context.Context, env *appEnv, out io.Writer) error {
	p, err := store.LoadOrEmpty(ctx, env.store)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	var sources []syllabus.Source
	res, err := syllabus.LoadDir(env.cfg.SyllabusDir, env.cfg.SyllabusSuffix)
	if err != nil {
		env.log.Warn("no syllabus loaded", zap.String("dir", env.cfg.SyllabusDir), zap.Error(err))
	} else {
		for _, f := range res.Failed {
			env.log.Warn("skipping syllabus source", zap.String("source", f.Name), zap.Error(f.Err))
		}
		sources = res.Sources
	}

	added := syllabus.Sync(sources, p)
	if err := env.store.Save(ctx, p); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	env.log.Info("syllabus synced",
		zap.Int("sources", len(sources)),
		zap.Int("added", len(added)),
		zap.Int("total", len(p)),
	)
	if len(added) > 0 {
		fmt.Fprintln(out, theme.Hint.Render(fmt.Sprintf("%d new items from %d syllabus files", len(added), len(sources))))
	}
	return nil
}
