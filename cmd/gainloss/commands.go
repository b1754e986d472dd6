package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "gainloss",
	Short: "Infer gain-loss scenarios and evolutionary networks over a lexical dataset",
	Long: `gainloss reconstructs, for every non-singleton cognate class in a wordlist,
the most parsimonious set of independent-origin and loss events on a given
tree, then assembles the resulting per-character scenarios into an
evolutionary network of lateral contact.`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full GLS inference and reporting pipeline for one dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		log := slog.New(slog.NewTextHandler(cmd.OutOrStdout(), nil))
		return RunDataset(cmd.Context(), log, cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the run configuration")
	rootCmd.AddCommand(runCmd)
}
