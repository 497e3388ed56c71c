// Package grouping reconstructs product-family rollups from a flat sales
// export. Source systems emit one row per SKU variant plus one aggregate row
// per product family, with per-unit prices only reliable on the family row;
// this package links variants to their family and recomputes revenue from
// the family's unit price despite inconsistent naming.
package grouping

import (
	"sort"
	"strings"
)

// Record is one product line derived from a raw sales row. After
// aggregation each distinct name appears exactly once.
type Record struct {
	Name          string
	Quantity      float64
	Revenue       float64
	UnitPrice     float64
	TransactionID string
	PaymentDay    string // YYYY-MM-DD
	PurchaseMonth string // YYYY-MM
	PurchaseDay   string // YYYY-MM-DD
}

// Group is one product family: the base record plus its matched size
// variants, both with recomputed revenue.
type Group struct {
	Base     Record
	Variants []Record
}

// sockMarker identifies sock products, which use a looser variant matching
// rule than other sized products.
const sockMarker = "양말"

// Aggregate merges records sharing an exact name, summing quantity and
// revenue; the first record seen for a name keeps its other fields. Output
// is sorted by revenue descending. Aggregating an already aggregated list
// is a no-op apart from the (stable) sort.
func Aggregate(records []Record) []Record {
	byName := make(map[string]int)
	var out []Record
	for _, r := range records {
		if i, ok := byName[r.Name]; ok {
			out[i].Quantity += r.Quantity
			out[i].Revenue += r.Revenue
			continue
		}
		byName[r.Name] = len(out)
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out
}

// GroupBySize splits aggregated records into base products and size
// variants, links each variant to its base, and recomputes revenue.
//
// A record is a variant iff its name contains an underscore; a sock variant
// additionally contains the sock marker. Non-sock variants derive a base
// name from the text before the last underscore and match a base record by
// normalized-name equality. Sock variants match by raw substring
// containment of the base name in the variant name; the normalized-prefix
// rule would split sock names at the wrong underscore, so the containment
// path must win for them.
//
// Variant revenue becomes base unit price times variant quantity,
// discarding the revenue the source recorded for the variant. Bases listed
// in unitPriceOverrides get revenue = override price times base quantity;
// any other base with at least one variant gets the sum of its recomputed
// variant revenues; a base with no variants keeps its aggregated revenue.
// Groups are ordered by the pre-recomputation base revenue descending;
// variants within a group by quantity descending.
//
// Variants matching no base are dropped from the output; the count of
// dropped variant records is returned for diagnostics.
func GroupBySize(records []Record, unitPriceOverrides map[string]float64) ([]Group, int) {
	var bases []Record
	var sockVariants []Record
	variantsByFamily := make(map[string][]Record)

	for _, r := range records {
		if !strings.Contains(r.Name, "_") {
			bases = append(bases, r)
			continue
		}
		if strings.Contains(r.Name, sockMarker) {
			sockVariants = append(sockVariants, r)
			continue
		}
		family := normalizeFamilyName(familyPrefix(r.Name))
		variantsByFamily[family] = append(variantsByFamily[family], r)
	}

	sort.SliceStable(bases, func(i, j int) bool { return bases[i].Revenue > bases[j].Revenue })

	matchedFamilies := make(map[string]bool)
	matchedSocks := make(map[string]bool)

	groups := make([]Group, 0, len(bases))
	for _, base := range bases {
		var raw []Record
		if strings.Contains(base.Name, sockMarker) {
			for _, v := range sockVariants {
				if strings.Contains(v.Name, base.Name) {
					raw = append(raw, v)
					matchedSocks[v.Name] = true
				}
			}
		} else {
			family := normalizeFamilyName(base.Name)
			raw = variantsByFamily[family]
			if len(raw) > 0 {
				matchedFamilies[family] = true
			}
		}

		variants := make([]Record, len(raw))
		for i, v := range raw {
			v.Revenue = base.UnitPrice * v.Quantity
			variants[i] = v
		}
		sort.SliceStable(variants, func(i, j int) bool { return variants[i].Quantity > variants[j].Quantity })

		recomputed := base
		if override, ok := unitPriceOverrides[base.Name]; ok {
			recomputed.UnitPrice = override
			recomputed.Revenue = override * base.Quantity
		} else if len(variants) > 0 {
			total := 0.0
			for _, v := range variants {
				total += v.Revenue
			}
			recomputed.Revenue = total
		}

		groups = append(groups, Group{Base: recomputed, Variants: variants})
	}

	dropped := 0
	for family, vs := range variantsByFamily {
		if !matchedFamilies[family] {
			dropped += len(vs)
		}
	}
	for _, v := range sockVariants {
		if !matchedSocks[v.Name] {
			dropped++
		}
	}
	return groups, dropped
}

// familyPrefix takes the text before the last underscore. A leading
// underscore does not split; the whole name is the prefix then.
func familyPrefix(name string) string {
	if i := strings.LastIndex(name, "_"); i > 0 {
		return strings.TrimSpace(name[:i])
	}
	return strings.TrimSpace(name)
}

// normalizeFamilyName folds a name for family matching: lower-case with
// every space, underscore, hyphen and slash removed.
func normalizeFamilyName(name string) string {
	lower := strings.ToLower(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '_', '-', '/':
			return -1
		}
		return r
	}, lower)
}

// BagPointAdjustment detects transactions whose per-item totals disagree
// with the paid amount and accounts for packaging items paid with points.
// Rows are grouped by transaction id (rows without one are ignored); when a
// group's sum of unit price times quantity differs from its positive paid
// revenue, every row in the group whose product has a unit price override
// contributes override times quantity to the adjustment.
func BagPointAdjustment(rows []Record, unitPriceOverrides map[string]float64) float64 {
	type txnGroup struct {
		sumIndividual float64
		paid          float64
		rows          []Record
	}
	groups := make(map[string]*txnGroup)
	var order []string
	for _, r := range rows {
		id := strings.TrimSpace(r.TransactionID)
		if id == "" {
			continue
		}
		g, ok := groups[id]
		if !ok {
			g = &txnGroup{}
			groups[id] = g
			order = append(order, id)
		}
		g.sumIndividual += r.UnitPrice * r.Quantity
		if r.Revenue > 0 {
			g.paid += r.Revenue
		}
		g.rows = append(g.rows, r)
	}

	adjustment := 0.0
	for _, id := range order {
		g := groups[id]
		if g.sumIndividual == g.paid {
			continue
		}
		for _, r := range g.rows {
			if override, ok := unitPriceOverrides[r.Name]; ok {
				adjustment += override * r.Quantity
			}
		}
	}
	return adjustment
}

// FilterByDay keeps the rows whose purchase day equals day. An empty day
// keeps everything.
func FilterByDay(rows []Record, day string) []Record {
	if day == "" {
		return rows
	}
	var out []Record
	for _, r := range rows {
		if r.PurchaseDay == day {
			out = append(out, r)
		}
	}
	return out
}

// AvailableDays lists the distinct purchase-day keys present, sorted.
func AvailableDays(rows []Record) []string {
	seen := make(map[string]bool)
	var days []string
	for _, r := range rows {
		if r.PurchaseDay != "" && !seen[r.PurchaseDay] {
			seen[r.PurchaseDay] = true
			days = append(days, r.PurchaseDay)
		}
	}
	sort.Strings(days)
	return days
}

// PaidTotal sums the recorded revenue over rows, before any recomputation.
func PaidTotal(rows []Record) float64 {
	total := 0.0
	for _, r := range rows {
		total += r.Revenue
	}
	return total
}
