package main

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/vigilia/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "vigilia",
	Short:         "Timetable extraction and standby-duty rostering",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (json or yaml)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configured file, or defaults when none was given.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgPath)
}
