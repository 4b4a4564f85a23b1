package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/vsinha/transferplan/pkg/domain/entities"
)

// Loader handles loading the inventory table from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// expectedHeader is the required column layout of the inventory table
var expectedHeader = []string{"region", "depot", "item", "need", "available"}

// LoadRows loads inventory rows from a CSV file. Need and available values
// are coerced: non-numeric cells become zero and negative values clamp to
// zero. Missing or misnamed columns are an error before any row is read.
func (l *Loader) LoadRows(filename string) ([]*entities.InventoryRow, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("inventory CSV must have header and at least one data row")
	}

	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("inventory CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var rows []*entities.InventoryRow
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("inventory CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		row, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("inventory CSV row %d: %w", i+2, err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseRow(record []string) (*entities.InventoryRow, error) {
	region := entities.RegionCode(strings.TrimSpace(record[0]))
	depot := entities.DepotCode(strings.TrimSpace(record[1]))
	item := entities.ItemCode(strings.TrimSpace(record[2]))

	need := entities.ParseQuantity(record[3])
	available := entities.ParseQuantity(record[4])

	return entities.NewInventoryRow(region, depot, item, need, available)
}
