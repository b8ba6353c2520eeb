package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/vigilia/roster"
	"github.com/tsawler/vigilia/sheet"
)

var summaryOut string

var summaryCmd = &cobra.Command{
	Use:   "summary <substitutions.xlsx>",
	Short: "Summarize a substitution log into per-teacher counts",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryOut, "out", "o", "", "write CSV to a file instead of stdout")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	wb, err := sheet.Open(args[0])
	if err != nil {
		return err
	}
	ws := wb.First()
	if ws == nil {
		return fmt.Errorf("%s contains no worksheets", args[0])
	}

	summaries := roster.Summarize(ws)

	out := os.Stdout
	if summaryOut != "" {
		f, err := os.Create(summaryOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return roster.ExportCSV(out, summaries)
}
