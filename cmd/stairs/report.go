package main

import (
	"github.com/spf13/cobra"

	"Stairwell/internal/calc/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a PDF report of a flight",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := computeFlight(cmd)
		if err != nil {
			return err
		}
		var meta report.Meta
		meta.Project, _ = cmd.Flags().GetString("project")
		meta.Author, _ = cmd.Flags().GetString("author")
		meta.Title, _ = cmd.Flags().GetString("title")

		w, closeOut, err := output(cmd)
		if err != nil {
			return err
		}
		return finish(report.Write(w, meta, res), closeOut)
	},
}

func init() {
	reportCmd.Flags().String("project", "", "Project name")
	reportCmd.Flags().String("author", "", "Report author")
	reportCmd.Flags().String("title", "", "Report title")
	rootCmd.AddCommand(reportCmd)
}
