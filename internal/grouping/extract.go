package grouping

import (
	"strings"

	"github.com/lallafm1984/wil-store/internal/config"
	"github.com/lallafm1984/wil-store/internal/datekey"
	"github.com/lallafm1984/wil-store/internal/header"
	"github.com/lallafm1984/wil-store/internal/normalize"
	"github.com/lallafm1984/wil-store/internal/sheet"
)

// ExtractRecords converts raw sales rows into Records using the configured
// column synonyms. Column resolution happens once per sheet; rows with an
// empty product name are skipped and counted.
func ExtractRecords(s *sheet.Sheet, sc config.SalesColumns) (records []Record, skipped int) {
	nameCol, _ := header.Resolve(s.Headers, sc.Name)
	qtyCol, _ := header.Resolve(s.Headers, sc.Quantity)
	revenueCol, _ := header.Resolve(s.Headers, sc.Revenue)
	unitPriceCol, _ := header.Resolve(s.Headers, sc.UnitPrice)
	txnCol, _ := header.Resolve(s.Headers, sc.TransactionID)
	paymentCol, _ := header.Resolve(s.Headers, sc.PaymentDate)
	purchaseCol, _ := header.Resolve(s.Headers, sc.PurchaseDate)

	for _, row := range s.Rows {
		name := strings.TrimSpace(row[nameCol])
		if name == "" {
			skipped++
			continue
		}
		r := Record{
			Name:          name,
			Quantity:      normalize.ParseAmount(row[qtyCol]),
			Revenue:       normalize.ParseAmount(row[revenueCol]),
			UnitPrice:     normalize.ParseAmount(row[unitPriceCol]),
			TransactionID: strings.TrimSpace(row[txnCol]),
		}
		if paymentCol != "" {
			if day, ok := datekey.DayKey(row[paymentCol]); ok {
				r.PaymentDay = day
			}
		}
		if purchaseCol != "" {
			raw := row[purchaseCol]
			if month, ok := datekey.MonthKeyFromPurchase(raw); ok {
				r.PurchaseMonth = month
			}
			if day, ok := datekey.DayKeyFromPurchase(raw); ok {
				r.PurchaseDay = day
			} else if day, ok := datekey.DayKey(raw); ok {
				r.PurchaseDay = day
			}
		}
		records = append(records, r)
	}
	return records, skipped
}
