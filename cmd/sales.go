package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lallafm1984/wil-store/internal/grouping"
	"github.com/lallafm1984/wil-store/internal/refdata"
	"github.com/lallafm1984/wil-store/internal/sheet"
)

var (
	salesFile  string
	salesStock string
	salesDay   string
	salesRefs  string
	salesOut   string
)

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Group a sales export into product families with recomputed revenue",
	Long: `The sales command reads a sales export, aggregates rows by product name,
links size variants to their base product, and recomputes revenue from the
base product's unit price.

An optional inventory sheet is joined by product name; when a specific day
is selected, sales from later days are added back to the stock quantities
so the figures reflect that day. An optional reference CSV adds product
codes and item numbers to the output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSales()
	},
}

func init() {
	rootCmd.AddCommand(salesCmd)

	salesCmd.Flags().StringVar(&salesFile, "file", "", "Sales export to read (.xlsx)")
	salesCmd.Flags().StringVar(&salesStock, "stock", "", "Inventory sheet to join by product name (.xlsx)")
	salesCmd.Flags().StringVar(&salesDay, "day", "", "Restrict to one purchase day (YYYY-MM-DD)")
	salesCmd.Flags().StringVar(&salesRefs, "refs", "", "Reference CSV with product codes (name,code,item number)")
	salesCmd.Flags().StringVar(&salesOut, "out", "", "Write the grouped result to this .xlsx file")
	salesCmd.MarkFlagRequired("file")
}

func runSales() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := sheet.ReadFile(salesFile)
	if err != nil {
		return err
	}
	records, skipped := grouping.ExtractRecords(s, cfg.Sales)
	if verbose && skipped > 0 {
		fmt.Printf("Skipped %d rows without a product name\n", skipped)
	}

	days := grouping.AvailableDays(records)
	rows := grouping.FilterByDay(records, salesDay)
	if salesDay != "" && len(rows) == 0 {
		return fmt.Errorf("no sales rows on %s (available days: %s)", salesDay, strings.Join(days, ", "))
	}

	aggregated := grouping.Aggregate(rows)
	groups, droppedVariants := grouping.GroupBySize(aggregated, cfg.UnitPriceOverrides)
	if verbose && droppedVariants > 0 {
		fmt.Printf("Dropped %d variant rows matching no base product\n", droppedVariants)
	}

	paidTotal := grouping.PaidTotal(rows)
	bagAdjustment := grouping.BagPointAdjustment(rows, cfg.UnitPriceOverrides)
	saleTotal := 0.0
	for _, g := range groups {
		saleTotal += g.Base.Revenue
	}
	pointUsage := saleTotal - paidTotal + bagAdjustment

	var stock map[string]grouping.StockInfo
	if salesStock != "" {
		st, err := sheet.ReadFile(salesStock)
		if err != nil {
			return err
		}
		stock = grouping.ExtractStock(st, cfg.Stock)
		stock = grouping.AdjustStockForDay(stock, records, salesDay)
	}

	var refs *refdata.Table
	if salesRefs != "" {
		refs, err = refdata.Load(salesRefs)
		if err != nil {
			return err
		}
	}

	fmt.Println("=== Sales Summary ===")
	if salesDay != "" {
		fmt.Printf("Day:              %s\n", salesDay)
	} else if len(days) > 1 {
		fmt.Printf("Days:             %s\n", strings.Join(days, ", "))
	}
	fmt.Printf("Product groups:   %d\n", len(groups))
	fmt.Printf("Sale total:       %.0f\n", saleTotal)
	fmt.Printf("Paid total:       %.0f\n", paidTotal)
	fmt.Printf("Bag adjustment:   %.0f\n", bagAdjustment)
	fmt.Printf("Point usage:      %.0f\n", pointUsage)
	fmt.Println()

	for _, g := range groups {
		printGroupLine(g.Base, "", stock, refs, g.Base.Name)
		for _, v := range g.Variants {
			printGroupLine(v, "  ", stock, refs, g.Base.Name)
		}
	}

	if salesOut != "" {
		if err := writeGroups(salesOut, groups, stock, refs); err != nil {
			return err
		}
		fmt.Printf("\nWrote %s\n", salesOut)
	}
	return nil
}

func printGroupLine(r grouping.Record, indent string, stock map[string]grouping.StockInfo, refs *refdata.Table, baseName string) {
	line := fmt.Sprintf("%s%-30s qty %6.0f  revenue %10.0f", indent, r.Name, r.Quantity, r.Revenue)
	if info, ok := stock[r.Name]; ok {
		if info.HasQuantity {
			line += fmt.Sprintf("  stock %5.0f", info.Quantity)
		}
		if info.Location != "" {
			line += "  " + info.Location
		}
	}
	if refs != nil {
		if e, ok := refs.LookupWithFallback(r.Name, baseName); ok {
			line += "  " + e.Code
		}
	}
	fmt.Println(line)
}

// writeGroups exports grouped output as a flat sheet, one row per base or
// variant record.
func writeGroups(path string, groups []grouping.Group, stock map[string]grouping.StockInfo, refs *refdata.Table) error {
	headers := []string{"상품명", "수량", "매출금액", "재고", "위치", "상품코드", "품목번호"}
	var rows []sheet.Row
	appendRow := func(r grouping.Record, baseName string) {
		row := sheet.Row{
			"상품명":  r.Name,
			"수량":   fmt.Sprintf("%.0f", r.Quantity),
			"매출금액": fmt.Sprintf("%.0f", r.Revenue),
		}
		if info, ok := stock[r.Name]; ok {
			if info.HasQuantity {
				row["재고"] = fmt.Sprintf("%.0f", info.Quantity)
			}
			row["위치"] = info.Location
		}
		if refs != nil {
			if e, ok := refs.LookupWithFallback(r.Name, baseName); ok {
				row["상품코드"] = e.Code
				row["품목번호"] = e.ItemNumber
			}
		}
		rows = append(rows, row)
	}
	for _, g := range groups {
		appendRow(g.Base, g.Base.Name)
		for _, v := range g.Variants {
			appendRow(v, g.Base.Name)
		}
	}
	return sheet.WriteFile(path, headers, rows)
}
