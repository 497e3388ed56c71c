package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lallafm1984/wil-store/internal/compare"
	"github.com/lallafm1984/wil-store/internal/sheet"
)

var (
	compareLeft  string
	compareRight string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the product names of two sheets",
	Long: `The compare command extracts the product-name column of each sheet
(falling back to the first column) and partitions the names into
left-only, shared, and right-only sets. Names compare equal after
whitespace and case normalization.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare()
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareLeft, "left", "", "Left sheet (.xlsx)")
	compareCmd.Flags().StringVar(&compareRight, "right", "", "Right sheet (.xlsx)")
	compareCmd.MarkFlagRequired("left")
	compareCmd.MarkFlagRequired("right")
}

func runCompare() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	left, err := sheet.ReadFile(compareLeft)
	if err != nil {
		return err
	}
	right, err := sheet.ReadFile(compareRight)
	if err != nil {
		return err
	}

	leftNames := compare.Names(left, cfg.CompareNameSynonyms)
	rightNames := compare.Names(right, cfg.CompareNameSynonyms)
	res := compare.Compare(leftNames, rightNames)

	fmt.Println("=== Name Comparison ===")
	fmt.Printf("Left only (%d):\n", len(res.LeftOnly))
	for _, name := range res.LeftOnly {
		fmt.Printf("  %s\n", name)
	}
	fmt.Printf("Both (%d):\n", len(res.Both))
	for _, name := range res.Both {
		fmt.Printf("  %s\n", name)
	}
	fmt.Printf("Right only (%d):\n", len(res.RightOnly))
	for _, name := range res.RightOnly {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
