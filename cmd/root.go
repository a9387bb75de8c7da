package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rehearse",
	Short: "Spaced practice scheduler",
	Long: "rehearse expands syllabus files into practice items, tracks your scores " +
		"and asks you to practice new items and review mastered ones, least recent first.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default ./rehearse.yaml or $XDG_CONFIG_HOME/rehearse/rehearse.yaml)")
	pf.String("store", "", "Path to the progress store; .db or .sqlite uses SQLite (overrides REHEARSE_STORE_PATH)")
	pf.String("syllabus", "", "Directory holding syllabus files (overrides REHEARSE_SYLLABUS_DIR)")
	pf.String("suffix", "", "File suffix of syllabus sources (default .toml)")
	pf.Bool("learning", false, "Also practice items that have not reached their goal yet")
	pf.Int("limit", 0, "Stop after practicing this many items (0 = no limit)")
	pf.String("prompt", "", "How scores are read: auto, line or tui")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
