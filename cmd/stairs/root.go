package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"Stairwell/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "stairs",
	Short:         "Compute stair runs and landings from a flight file",
	Long:          `Reads a flight (YAML, JSON or xlsx picks) and writes the computed geometry, a PDF report or a spreadsheet schedule.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("input", "i", "", "Flight file (.yaml, .yml, .json or .xlsx)")
	rootCmd.PersistentFlags().StringP("output", "o", "-", "Output file, - for stdout")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}

func commandLogger(cmd *cobra.Command) (*slog.Logger, error) {
	s, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(s)
	if err != nil {
		return nil, err
	}
	return logging.NewWriter(cmd.ErrOrStderr(), level), nil
}

// output opens the -o target; the returned close func is a no-op for stdout.
func output(cmd *cobra.Command) (io.Writer, func() error, error) {
	path, _ := cmd.Flags().GetString("output")
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// finish closes the output and returns err, or the close error when the
// write succeeded.
func finish(err error, closeOut func() error) error {
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	return err
}
