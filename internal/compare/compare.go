// Package compare partitions the product names of two sheets into
// left-only, shared, and right-only sets. Comparison runs on normalized
// names so spacing and casing differences between exports do not show up
// as missing products.
package compare

import (
	"sort"
	"strings"

	"github.com/lallafm1984/wil-store/internal/header"
	"github.com/lallafm1984/wil-store/internal/normalize"
	"github.com/lallafm1984/wil-store/internal/sheet"
)

// Result holds the three partitions, each sorted ascending.
type Result struct {
	LeftOnly  []string
	Both      []string
	RightOnly []string
}

// Names extracts the de-duplicated product names of a sheet. The name
// column is resolved through the given synonyms, falling back to the first
// column when none match. Returned names are trimmed raw values; the
// de-duplication key is the normalized form, first spelling wins.
func Names(s *sheet.Sheet, synonyms []string) []string {
	if len(s.Headers) == 0 {
		return nil
	}
	col, ok := header.Resolve(s.Headers, synonyms)
	if !ok {
		col = s.Headers[0]
	}
	seen := make(map[string]bool)
	var names []string
	for _, row := range s.Rows {
		raw := strings.TrimSpace(row[col])
		if raw == "" {
			continue
		}
		key := normalize.Normalize(raw)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, raw)
	}
	return names
}

// Compare partitions two name lists by normalized equality.
func Compare(left, right []string) Result {
	rightByKey := make(map[string]bool, len(right))
	for _, name := range right {
		rightByKey[normalize.Normalize(name)] = true
	}
	leftByKey := make(map[string]bool, len(left))
	for _, name := range left {
		leftByKey[normalize.Normalize(name)] = true
	}

	var res Result
	for _, name := range left {
		if rightByKey[normalize.Normalize(name)] {
			res.Both = append(res.Both, name)
		} else {
			res.LeftOnly = append(res.LeftOnly, name)
		}
	}
	for _, name := range right {
		if !leftByKey[normalize.Normalize(name)] {
			res.RightOnly = append(res.RightOnly, name)
		}
	}
	sort.Strings(res.LeftOnly)
	sort.Strings(res.Both)
	sort.Strings(res.RightOnly)
	return res
}
