package cmd

import (
	"github.com/lexiq/lexiq/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lexiq",
	Short: "Adaptive language placement in your terminal",
	Long:  "Lexiq — adaptive placement tests that find a learner's level in a handful of questions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEXIQ_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to an item bank JSON file (defaults to the bundled Spanish bank)")

	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(authorCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEXIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
