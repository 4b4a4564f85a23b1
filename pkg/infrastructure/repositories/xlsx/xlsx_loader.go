package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/transferplan/pkg/domain/entities"
)

// Loader handles loading the inventory table from Excel workbooks.
// The first sheet is read; columns are located by header name so the workbook
// may carry them in any order.
type Loader struct{}

// NewLoader creates a new Excel loader
func NewLoader() *Loader {
	return &Loader{}
}

// requiredColumns are matched case-insensitively against the header row
var requiredColumns = []string{"region", "depot", "item", "need", "available"}

// LoadRows loads inventory rows from the first sheet of an Excel workbook,
// applying the same quantity coercion as the CSV loader
func (l *Loader) LoadRows(filename string) ([]*entities.InventoryRow, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filename, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", filename)
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("inventory sheet must have header and at least one data row")
	}

	columns, err := locateColumns(records[0])
	if err != nil {
		return nil, err
	}

	var rows []*entities.InventoryRow
	for i, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}

		row, err := entities.NewInventoryRow(
			entities.RegionCode(strings.TrimSpace(cell(record, columns["region"]))),
			entities.DepotCode(strings.TrimSpace(cell(record, columns["depot"]))),
			entities.ItemCode(strings.TrimSpace(cell(record, columns["item"]))),
			entities.ParseQuantity(cell(record, columns["need"])),
			entities.ParseQuantity(cell(record, columns["available"])),
		)
		if err != nil {
			return nil, fmt.Errorf("inventory sheet row %d: %w", i+2, err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// locateColumns maps required column names to their positions in the header
func locateColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int)
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, exists := columns[name]; !exists {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("inventory sheet is missing required columns: %v", missing)
	}

	return columns, nil
}

// cell returns the value at idx. Trailing empty cells are not materialized by
// the sheet reader, so short records read as blanks.
func cell(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return record[idx]
}

func isBlankRecord(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
