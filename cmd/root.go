// Package cmd wires the wil-store subcommands. Each subcommand decodes its
// input spreadsheets, runs one of the pure transformation engines, and
// prints a human-readable summary. All fatal conditions originate at the
// file-decode boundary; the engines themselves never fail.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lallafm1984/wil-store/internal/config"
)

// cfgFile is the configuration file path, overridable with --config. The
// default file is optional; the built-in defaults apply when it is absent.
var cfgFile string

// verbose enables drop-diagnostics and column-mapping details.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "wil-store",
	Short: "Spreadsheet utilities for retail sales, settlement, and inventory files",
	Long: `wil-store is a toolkit for the spreadsheet files a small retail operation
lives on: sales exports, settlement reports, and per-store inventory sheets.

It groups sold items into product families with recomputed revenue, matches
two settlement exports transaction by transaction, merges inventory sheets
across store locations, and compares or summarizes arbitrary sheets.

Example usage:
  wil-store sales --file sales.xlsx --stock stock.xlsx
  wil-store settle --report tobe.xlsx --admin admin.xlsx --only-mismatches
  wil-store merge --base nonhyeon.xlsx --overlay sinnonhyeon.xlsx`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (built-in defaults apply when absent)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Print column-mapping details and dropped-row diagnostics",
	)
}

// loadConfig loads the configured file, falling back to defaults when the
// file does not exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
