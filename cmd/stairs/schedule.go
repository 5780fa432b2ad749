package main

import (
	"github.com/spf13/cobra"

	"Stairwell/internal/calc/premium/schedule"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Write the run and landing schedule as an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := computeFlight(cmd)
		if err != nil {
			return err
		}
		w, closeOut, err := output(cmd)
		if err != nil {
			return err
		}
		return finish(schedule.Write(w, res), closeOut)
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}
