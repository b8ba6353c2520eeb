package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/vigilia/roster"
	"github.com/tsawler/vigilia/sheet"
	"github.com/tsawler/vigilia/store"
)

var importSave bool

var importCmd = &cobra.Command{
	Use:   "import <schedule.xlsx>",
	Short: "Build weekly schedules from a tabular schedule export",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importSave, "save", false, "persist the schedules to the state directory")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	wb, err := sheet.Open(args[0])
	if err != nil {
		return err
	}
	ws := wb.First()
	if ws == nil {
		return fmt.Errorf("%s contains no worksheets", args[0])
	}

	schedules := roster.Schedules(ws)

	if importSave {
		st, err := store.New(cfg.StateDir)
		if err != nil {
			return err
		}
		if err := st.SaveSchedules(schedules); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(schedules)
}
