// wil-store is a command line toolkit for a small retail operation. It
// ingests sales-export and inventory spreadsheets, reconciles product names
// across files, recomputes derived revenue figures, and produces merged or
// diffed spreadsheet outputs.
//
// USAGE:
//   wil-store sales    - Group a sales export by product family and recompute revenue
//   wil-store settle   - Reconcile two settlement exports by approval number
//   wil-store merge    - Overlay inventory values onto a base sheet with diff tracking
//   wil-store compare  - Compare the product-name sets of two spreadsheets
//   wil-store stats    - Summarize a spreadsheet's columns
//   wil-store version  - Display the application version
package main

import (
	"github.com/lallafm1984/wil-store/cmd"
)

func main() {
	cmd.Execute()
}
