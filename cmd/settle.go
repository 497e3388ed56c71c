package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lallafm1984/wil-store/internal/header"
	"github.com/lallafm1984/wil-store/internal/normalize"
	"github.com/lallafm1984/wil-store/internal/reconcile"
	"github.com/lallafm1984/wil-store/internal/sheet"
)

var (
	settleReport       string
	settleAdmin        string
	settleOnlyMismatch bool
	settleRemark       string
	settleExcludedKeys []string
)

var settleCmd = &cobra.Command{
	Use:   "settle",
	Short: "Reconcile a settlement report against the admin export",
	Long: `The settle command matches two settlement exports transaction by
transaction. Approval numbers are normalized to digits only, so dashed and
plain spellings of the same number compare equal; amounts within one unit
of each other count as matched.

Transactions present on one side only are reported separately from amount
mismatches. Keys passed with --exclude stay in the listing but leave the
totals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSettle()
	},
}

func init() {
	rootCmd.AddCommand(settleCmd)

	settleCmd.Flags().StringVar(&settleReport, "report", "", "Settlement report to read (.xlsx)")
	settleCmd.Flags().StringVar(&settleAdmin, "admin", "", "Admin export to read (.xlsx)")
	settleCmd.Flags().BoolVar(&settleOnlyMismatch, "only-mismatches", false, "List only rows that are not matched")
	settleCmd.Flags().StringVar(&settleRemark, "remark", "", "Keep only report rows with this remark value")
	settleCmd.Flags().StringSliceVar(&settleExcludedKeys, "exclude", nil, "Approval numbers to drop from totals (comma separated)")
	settleCmd.MarkFlagRequired("report")
	settleCmd.MarkFlagRequired("admin")
}

func runSettle() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sc := cfg.Settlement

	report, err := sheet.ReadFile(settleReport)
	if err != nil {
		return err
	}
	admin, err := sheet.ReadFile(settleAdmin)
	if err != nil {
		return err
	}

	reportKey, ok := header.ResolveContains(report.Headers, sc.Approval)
	if !ok {
		return fmt.Errorf("no approval-number column found in %s", settleReport)
	}
	adminKey, ok := header.ResolveContains(admin.Headers, sc.Approval)
	if !ok {
		return fmt.Errorf("no approval-number column found in %s", settleAdmin)
	}
	reportAmount, _ := header.ResolveContains(report.Headers, sc.ReportAmount)
	adminAmount, _ := header.ResolveContains(admin.Headers, sc.AdminAmount)
	if verbose {
		fmt.Printf("Report columns: key=%q amount=%q\n", reportKey, reportAmount)
		fmt.Printf("Admin columns:  key=%q amount=%q\n", adminKey, adminAmount)
	}

	reportRows := report.Rows
	if settleRemark != "" {
		remarkCol, ok := header.ResolveContains(report.Headers, sc.ReportRemark)
		if !ok {
			return fmt.Errorf("no remark column found in %s", settleReport)
		}
		reportRows = filterByValue(reportRows, remarkCol, settleRemark)
	}

	sideA, droppedA := reconcile.AggregateByKey(reportRows, reportKey, reportAmount)
	sideB, droppedB := reconcile.AggregateByKey(admin.Rows, adminKey, adminAmount)
	if verbose && droppedA+droppedB > 0 {
		fmt.Printf("Dropped rows without an approval number: report=%d admin=%d\n", droppedA, droppedB)
	}

	rows := reconcile.Reconcile(sideA, sideB)
	excluded := make(map[string]bool, len(settleExcludedKeys))
	for _, k := range settleExcludedKeys {
		if key := normalize.DigitsOnly(k); key != "" {
			excluded[key] = true
		}
	}
	summary := reconcile.Summarize(rows, excluded)

	reportDate, _ := header.ResolveContains(report.Headers, sc.ReportDate)
	adminDate, _ := header.ResolveContains(admin.Headers, sc.AdminDate)
	for _, r := range rows {
		if settleOnlyMismatch && r.Status == reconcile.StatusMatched {
			continue
		}
		line := fmt.Sprintf("%-20s %-10s report %12s  admin %12s  diff %10s",
			r.Key, r.Status, amountOrDash(r.AmountA.String(), r.InA), amountOrDash(r.AmountB.String(), r.InB), r.Difference.String())
		if d := sampleDate(r.SampleA, reportDate); d != "" {
			line += "  " + d
		} else if d := sampleDate(r.SampleB, adminDate); d != "" {
			line += "  " + d
		}
		if excluded[r.Key] {
			line += "  (excluded)"
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println("=== Reconciliation Summary ===")
	fmt.Printf("Matched:        %d\n", summary.Matched)
	fmt.Printf("Mismatched:     %d\n", summary.Mismatched)
	fmt.Printf("Report only:    %d\n", summary.OnlyA)
	fmt.Printf("Admin only:     %d\n", summary.OnlyB)
	if summary.Excluded > 0 {
		fmt.Printf("Excluded:       %d\n", summary.Excluded)
	}
	fmt.Printf("Report total:   %s\n", summary.TotalA.String())
	fmt.Printf("Admin total:    %s\n", summary.TotalB.String())
	fmt.Printf("Difference:     %s\n", summary.TotalDifference.String())
	return nil
}

func filterByValue(rows []sheet.Row, col, value string) []sheet.Row {
	var out []sheet.Row
	for _, row := range rows {
		if strings.TrimSpace(row[col]) == value {
			out = append(out, row)
		}
	}
	return out
}

func sampleDate(row sheet.Row, col string) string {
	if row == nil || col == "" {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func amountOrDash(amount string, present bool) string {
	if !present {
		return "-"
	}
	return amount
}
