package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lallafm1984/wil-store/internal/sheet"
	"github.com/lallafm1984/wil-store/internal/stats"
)

var statsFile string

// statsTopValues caps the distinct values listed per column.
const statsTopValues = 10

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize a sheet column by column",
	Long: `The stats command prints per-column statistics for any sheet: distinct
value counts for every column and min/max/avg/sum for columns whose values
all parse as numbers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsFile, "file", "", "Sheet to summarize (.xlsx)")
	statsCmd.MarkFlagRequired("file")
}

func runStats() error {
	s, err := sheet.ReadFile(statsFile)
	if err != nil {
		return err
	}

	cols := stats.Summarize(s)
	fmt.Printf("=== %s: %d columns, %d rows ===\n", statsFile, len(cols), len(s.Rows))
	for _, c := range cols {
		fmt.Printf("\n%s (%d non-empty, %d distinct)\n", c.Header, c.NonEmpty, len(c.Values))
		if c.Numeric {
			fmt.Printf("  min %.2f  max %.2f  avg %.2f  sum %.2f\n", c.Min, c.Max, c.Avg, c.Sum)
		}
		for i, vc := range c.Values {
			if i == statsTopValues {
				fmt.Printf("  ... %d more\n", len(c.Values)-statsTopValues)
				break
			}
			fmt.Printf("  %6d  %s\n", vc.Count, vc.Value)
		}
	}
	return nil
}
