// Package refdata loads the product reference table: a 3-column CSV mapping
// product name to product code and item number. The table supplements
// grouped sales output; a variant without its own entry falls back to its
// base product's entry.
package refdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lallafm1984/wil-store/internal/normalize"
)

// Entry is one reference row.
type Entry struct {
	Name       string
	Code       string
	ItemNumber string
}

// Table indexes reference entries by normalized product name.
type Table struct {
	entries map[string]Entry
}

// Load reads the reference CSV at path. The first row is a header and is
// skipped; rows with a blank name are skipped. Extra columns beyond the
// first three are ignored.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference file: %w", err)
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reference file %s: %w", path, err)
	}
	return t, nil
}

// Parse reads reference rows from r. See Load for the format.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	t := &Table{entries: make(map[string]Entry)}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		e := Entry{
			Name:       strings.TrimSpace(field(rec, 0)),
			Code:       strings.TrimSpace(field(rec, 1)),
			ItemNumber: strings.TrimSpace(field(rec, 2)),
		}
		if e.Name == "" {
			continue
		}
		key := normalize.Normalize(e.Name)
		if _, seen := t.entries[key]; !seen {
			t.entries[key] = e
		}
	}
	return t, nil
}

// Lookup returns the entry for a product name, matched after
// normalization.
func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.entries[normalize.Normalize(name)]
	return e, ok
}

// LookupWithFallback returns the entry for name, or for fallbackName when
// name has no entry. Grouped output uses this so a size variant inherits
// its base product's code.
func (t *Table) LookupWithFallback(name, fallbackName string) (Entry, bool) {
	if e, ok := t.Lookup(name); ok {
		return e, true
	}
	return t.Lookup(fallbackName)
}

// Len reports the number of loaded entries.
func (t *Table) Len() int { return len(t.entries) }

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}
