package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lallafm1984/wil-store/internal/header"
	"github.com/lallafm1984/wil-store/internal/sheet"
	"github.com/lallafm1984/wil-store/internal/stockmerge"
	"github.com/lallafm1984/wil-store/pkg/fileutil"
)

var (
	mergeBase    string
	mergeOverlay string
	mergeOut     string
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Overlay one inventory sheet's values onto another",
	Long: `The merge command joins two inventory sheets by a detected key column
(product name, barcode, or product code, in that priority) and overwrites
the base sheet's quantity and location values with the overlay's.

Each base row's store-location value selects which overlay columns to read,
so the two stores' differently named columns route correctly in a single
pass. The merged sheet preserves the base sheet's column and row order;
changed cells are reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMerge()
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVar(&mergeBase, "base", "", "Base inventory sheet (.xlsx)")
	mergeCmd.Flags().StringVar(&mergeOverlay, "overlay", "", "Overlay inventory sheet (.xlsx)")
	mergeCmd.Flags().StringVar(&mergeOut, "out", "", "Output path (default: <output_dir>/merged_<timestamp>_<uuid>.xlsx)")
	mergeCmd.MarkFlagRequired("base")
	mergeCmd.MarkFlagRequired("overlay")
}

func runMerge() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	base, err := sheet.ReadFile(mergeBase)
	if err != nil {
		return err
	}
	overlay, err := sheet.ReadFile(mergeOverlay)
	if err != nil {
		return err
	}

	mapping := header.ComputeFieldMapping(base.Headers, overlay.Headers, cfg.Merge, cfg.JoinKeyGroups)
	if verbose {
		fmt.Printf("Join key:        %q\n", mapping.JoinKey)
		fmt.Printf("Base columns:    quantity=%q location=%q vendor=%q\n",
			mapping.BaseQuantity, mapping.BaseLocation, mapping.BaseVendor)
		fmt.Printf("Source columns:  quantity=%q location=%q\n", mapping.SourceQuantity, mapping.SourceLocation)
		for _, seg := range mapping.Segments {
			fmt.Printf("Segment %q: quantity=%q location=%q\n", seg.Vendor, seg.SourceQuantity, seg.SourceLocation)
		}
	}

	res := stockmerge.Merge(base, overlay, mapping)

	out := mergeOut
	if out == "" {
		if err := fileutil.EnsureDir(cfg.OutputDir); err != nil {
			return err
		}
		out = fileutil.DefaultOutputPath(cfg.OutputDir, "merged", mergeBase)
	}
	if err := sheet.WriteFile(out, base.Headers, res.Rows); err != nil {
		return err
	}

	fmt.Println("=== Merge Summary ===")
	fmt.Printf("Rows:          %d\n", len(res.Rows))
	fmt.Printf("Changed rows:  %d\n", res.ChangedRows)
	fmt.Printf("Changed cells: %d\n", res.ChangedCells)
	fmt.Printf("Output:        %s\n", out)

	if verbose && res.ChangedCells > 0 {
		fmt.Println()
		for _, row := range res.Rows {
			for _, col := range []string{mapping.BaseQuantity, mapping.BaseLocation} {
				if col == "" {
					continue
				}
				if prev, changed := stockmerge.Changed(row, col); changed {
					fmt.Printf("%s: %s %q -> %q\n", row[mapping.JoinKey], col, prev, row[col])
				}
			}
		}
	}
	return nil
}
