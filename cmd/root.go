package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foodverse/foodverse/internal/config"
	"github.com/foodverse/foodverse/internal/dataset"
)

var rootCmd = &cobra.Command{
	Use:   "foodverse",
	Short: "Explore which foods suit a health condition",
	Long:  "FoodVerse is a terminal journey through foods that help or hurt common health conditions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Path to a dataset JSON file (overrides FOODVERSE_DATA env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Path to the log file (overrides FOODVERSE_LOG env var)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(diseasesCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(validateCmd)
}

// resolveConfig loads .env and FOODVERSE_* settings, then applies the
// persistent flags on top (highest priority).
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load("")
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		cfg.DataPath = p
	}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.LogPath = p
	}
	if d, _ := cmd.Flags().GetBool("debug"); d {
		cfg.Debug = true
	}
	return cfg, nil
}

// openStore loads the configured dataset.
func openStore(cfg config.Config) (*dataset.Store, error) {
	store, err := dataset.Open(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	return store, nil
}
