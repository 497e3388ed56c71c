package grouping

import (
	"strings"

	"github.com/lallafm1984/wil-store/internal/config"
	"github.com/lallafm1984/wil-store/internal/header"
	"github.com/lallafm1984/wil-store/internal/normalize"
	"github.com/lallafm1984/wil-store/internal/sheet"
)

// StockInfo is the current inventory position for one product name.
type StockInfo struct {
	Quantity    float64
	HasQuantity bool
	Location    string
}

// ExtractStock reads a stock sheet into a name-keyed inventory map. Keys
// are trimmed raw product names so they join against Record.Name directly.
// HasQuantity reports whether the sheet carried a quantity column at all.
func ExtractStock(s *sheet.Sheet, sc config.StockColumns) map[string]StockInfo {
	nameCol, _ := header.Resolve(s.Headers, sc.Name)
	qtyCol, hasQty := header.Resolve(s.Headers, sc.Quantity)
	locCol, _ := header.Resolve(s.Headers, sc.Location)

	stock := make(map[string]StockInfo)
	for _, row := range s.Rows {
		name := strings.TrimSpace(row[nameCol])
		if name == "" {
			continue
		}
		info := StockInfo{HasQuantity: hasQty}
		if hasQty {
			info.Quantity = normalize.ParseAmount(row[qtyCol])
		}
		info.Location = strings.TrimSpace(row[locCol])
		stock[name] = info
	}
	return stock
}

// AdjustStockForDay projects inventory back to the end of the given day by
// adding back quantities sold on later days. The stock sheet reflects the
// present; viewing an earlier day's sales against present stock would
// double-count sales made in between. An empty day returns stock unchanged.
func AdjustStockForDay(stock map[string]StockInfo, allRows []Record, day string) map[string]StockInfo {
	if day == "" {
		return stock
	}
	laterByName := make(map[string]float64)
	for _, r := range allRows {
		if r.PurchaseDay > day {
			laterByName[r.Name] += r.Quantity
		}
	}
	adjusted := make(map[string]StockInfo, len(stock))
	for name, info := range stock {
		if info.HasQuantity {
			info.Quantity += laterByName[name]
		}
		adjusted[name] = info
	}
	return adjusted
}
