package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/vigilia/standby"
	"github.com/tsawler/vigilia/store"
)

var planSelected []string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Allocate standby-duty slots for the selected people",
	Args:  cobra.NoArgs,
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringSliceVar(&planSelected, "select", nil, "people to plan for (default: saved selection, else everyone)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := cfg.Logging.NewLogger("plan")

	st, err := store.New(cfg.StateDir)
	if err != nil {
		return err
	}
	schedules, err := st.LoadSchedules()
	if err != nil {
		return err
	}
	if len(schedules) == 0 {
		return fmt.Errorf("no schedules in %s; run extract or import first", cfg.StateDir)
	}
	exclusions, err := st.LoadExclusions()
	if err != nil {
		return err
	}

	selected := planSelected
	if len(selected) == 0 {
		if selected, err = st.LoadSelection(schedules); err != nil {
			return err
		}
	} else if err := st.SaveSelection(selected); err != nil {
		return err
	}

	board := standby.NewBoard(cfg.Standby)
	board.SetExclusions(exclusions)
	assignments := board.Generate(selected, schedules)
	log.Info().Int("people", len(selected)).Int("assignments", len(assignments)).Msg("plan complete")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(assignments)
}
