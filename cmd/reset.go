package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/rehearse/internal/store"
)

var resetDryRun bool

var resetCmd = &cobra.Command{
	Use:   "reset <prefix>",
	Short: "Forget the progress of every item whose id starts with prefix",
	Long: "reset turns matching items back into new items. The items stay in the store, " +
		"so the next practice run asks for their goal again. Use a source name such as " +
		"\"scales\" or \"scales:C\" as the prefix.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := cmd.Context()
		p, err := env.store.Load(ctx)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no progress stored at %s", env.store.Path())
		}
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		matched := resetPrefix(p, args[0], resetDryRun)
		out := cmd.OutOrStdout()
		if len(matched) == 0 {
			fmt.Fprintf(out, "No items match %q.\n", args[0])
			return nil
		}
		if resetDryRun {
			fmt.Fprintf(out, "Would reset %d items:\n  %s\n", len(matched), strings.Join(matched, "\n  "))
			return nil
		}

		if err := env.store.Save(ctx, p); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		env.log.Info("progress reset", zap.String("prefix", args[0]), zap.Int("items", len(matched)))
		fmt.Fprintf(out, "Reset %d items.\n", len(matched))
		return nil
	},
}

// resetPrefix replaces every record whose id starts with prefix by an empty
// one and returns the matched ids in order. With dryRun set p is left as is.
func resetPrefix(p store.Progress, prefix string, dryRun bool) []string {
	var matched []string
	for _, id := range p.Keys() {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		matched = append(matched, id)
		if !dryRun {
			p[id] = &store.Record{}
		}
	}
	return matched
}

func init() {
	resetCmd.Flags().BoolVar(&resetDryRun, "dry-run", false, "List matching items without changing anything")
}
