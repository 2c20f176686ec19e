package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gasline/internal/amount"
	"gasline/internal/customer"
	"gasline/internal/encoding"
)

// Importer reads customer book spreadsheet exports and produces customer
// import rows. It auto-detects which layout (ledger, register, contacts) is
// being used by matching column headers against known profiles.
type Importer struct{}

func New() *Importer {
	return &Importer{}
}

func (i *Importer) Parse(r io.Reader) ([]customer.ImportParams, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching roster format found: expected columns for ledger, register, or contacts")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts customers from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file (for error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]customer.ImportParams, error) {
	nameIdx := cols[p.NameCol]

	var params []customer.ImportParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		if blankRow(row) {
			continue
		}

		name := cellValue(row, nameIdx)
		if name == "" {
			return nil, fmt.Errorf("row %d: missing customer name", rowNum)
		}

		params = append(params, customer.ImportParams{
			CreateParams: customer.CreateParams{
				Name:         name,
				Address:      optionalValue(row, cols, colAddress),
				Phone:        optionalValue(row, cols, colPhone),
				Email:        optionalValue(row, cols, colEmail),
				CylinderRate: plainNumber(optionalValue(row, cols, colCylinderRate)),
				GasRate:      plainNumber(optionalValue(row, cols, colGasRate)),
			},
			OpeningBalance: parseBalance(p, cols, row),
		})
	}

	return params, nil
}

// parseBalance extracts the opening balance from a row based on the
// profile's balance mode. The value stays textual; the customer service
// normalizes it on import.
func parseBalance(p *Profile, cols colIndex, row []string) string {
	switch p.BalanceMode {
	case balanceSingle:
		return plainNumber(cellValue(row, cols[p.BalanceCol]))
	case balanceSplit:
		debit := amount.Parse(plainNumber(cellValue(row, cols[p.DebitCol])))
		credit := amount.Parse(plainNumber(cellValue(row, cols[p.CreditCol])))

		return strconv.FormatFloat(debit-credit, 'f', -1, 64)
	}

	return ""
}

// plainNumber strips the thousands separators spreadsheets like to add.
func plainNumber(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

// optionalValue gets a trimmed cell by column name, or "" when the column
// is not in this file.
func optionalValue(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok {
		return ""
	}

	return cellValue(row, idx)
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
