package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/vigilia/store"
	"github.com/tsawler/vigilia/timetable"
)

var extractSave bool

var extractCmd = &cobra.Command{
	Use:   "extract <fragment-dump.json>",
	Short: "Reconstruct weekly schedules from a timetable fragment dump",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractSave, "save", false, "persist the schedules to the state directory")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := cfg.Logging.NewLogger("extract")

	pages, err := store.LoadDocument(args[0])
	if err != nil {
		return err
	}

	schedules := timetable.NewAssembler(cfg.Tolerances, log).Assemble(pages)
	log.Info().Int("pages", len(pages)).Int("schedules", len(schedules)).Msg("extraction complete")

	if extractSave {
		st, err := store.New(cfg.StateDir)
		if err != nil {
			return err
		}
		if err := st.SaveSchedules(schedules); err != nil {
			// The extraction result is still live; only the save failed.
			log.Error().Err(err).Msg("schedules extracted but not saved")
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(schedules)
}
