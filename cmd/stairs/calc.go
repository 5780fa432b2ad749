package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"Stairwell/internal/calc/stairs"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute a flight and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := computeFlight(cmd)
		if err != nil {
			return err
		}
		w, closeOut, err := output(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return finish(writeCalc(w, format, res), closeOut)
	},
}

func writeCalc(w io.Writer, format string, res stairs.Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "summary":
		for i, r := range res.Runs {
			fmt.Fprintf(w, "run %d: %d steps, riser %.1f, tread %.1f, slope %.3f, valid %t\n",
				i+1, r.NumSteps, r.RiserMM, r.TreadMM, r.Slope, r.Valid)
		}
		for _, l := range res.Landings {
			status := "skipped"
			if l.Surface != nil {
				status = fmt.Sprintf("%s, area %.0f", l.Surface.Case, l.AreaMM2)
			}
			fmt.Fprintf(w, "landing %d-%d: %s\n", l.BottomRun+1, l.TopRun+1, status)
		}
		for _, d := range res.Diagnostics {
			fmt.Fprintln(w, d)
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

func init() {
	calcCmd.Flags().StringP("format", "f", "json", "Output format (json, summary)")
	rootCmd.AddCommand(calcCmd)
}
