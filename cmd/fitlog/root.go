package main

import (
	"alcyxob/fitlog/internal/config"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "Workout tracker",
	Long: `Fitlog tracks the exercises users do each day.

Every command starts from a seed snapshot of users and workouts, chosen by
seed.source in config.yaml (bundled, file, s3 or mongo). Changes made while
the server runs live in memory only.

  $ fitlog serve                          # HTTP API on server.address
  $ fitlog users --search an              # Search the user directory
  $ fitlog workouts --user 1 --page 2     # Browse workouts, newest first
  $ fitlog seed generate --users 20 --out ./data`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("could not load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory containing config.yaml")
}
