// Package sheet is the spreadsheet file boundary. It decodes the first
// worksheet of an .xlsx file into header-keyed rows and encodes rows back,
// honoring a supplied header order. The transformation engines never touch
// files; they consume and produce the Row shape defined here.
package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row maps a column header to the raw cell value of one data row. Missing
// cells are present as "". Rows may additionally carry bookkeeping keys
// (see merge diff tracking); those are never written out because encoding
// iterates the header list, not the row keys.
type Row map[string]string

// Sheet is the decoded first worksheet of a spreadsheet file. Headers keeps
// the original column order, which map-keyed rows cannot.
type Sheet struct {
	Filename string
	Headers  []string
	Rows     []Row
}

// Column returns the position of the header spelled exactly name.
func (s *Sheet) Column(name string) (int, bool) {
	for i, h := range s.Headers {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

// ReadFile decodes the first worksheet of an .xlsx file. The first row is
// the header row; every following row becomes a Row keyed by those headers.
// Cell values are raw (unformatted), so date cells surface as serial
// numbers for the datekey package to decode.
func ReadFile(path string) (*Sheet, error) {
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no worksheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheets[0], err)
	}

	s := &Sheet{Filename: path}
	if len(rows) == 0 {
		return s, nil
	}
	s.Headers = append(s.Headers, rows[0]...)
	for _, raw := range rows[1:] {
		if isBlank(raw) {
			continue
		}
		row := make(Row, len(s.Headers))
		for i, h := range s.Headers {
			if h == "" {
				continue
			}
			if i < len(raw) {
				row[h] = raw[i]
			} else {
				row[h] = ""
			}
		}
		s.Rows = append(s.Rows, row)
	}
	return s, nil
}

// WriteFile encodes rows to a single-sheet .xlsx file. Column order follows
// headers exactly; row keys absent from headers (internal bookkeeping such
// as diff markers) are stripped by construction.
func WriteFile(path string, headers []string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)
	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i, row := range rows {
		cells := make([]interface{}, len(headers))
		for j, h := range headers {
			cells[j] = row[h]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet %s: %w", path, err)
	}
	return nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
