package services

import (
	"fmt"

	"github.com/vsinha/transferplan/pkg/domain/entities"
)

// RowValidator provides pre-flight structural checks on an inventory table.
// It runs at the loading boundary so the allocation engine is never invoked
// on a malformed table.
type RowValidator struct{}

// NewRowValidator creates a new row validator
func NewRowValidator() *RowValidator {
	return &RowValidator{}
}

// ValidationResult contains the results of inventory table validation
type ValidationResult struct {
	BlankFieldRows []int
	DuplicateKeys  []entities.DepotItemKey
	SplitDepots    []entities.DepotCode
	Errors         []string
	Warnings       []string
}

// IsValid reports whether the table may be handed to the engine
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// ValidateRows performs structural validation on a set of inventory rows
func (v *RowValidator) ValidateRows(rows []*entities.InventoryRow) *ValidationResult {
	result := &ValidationResult{
		BlankFieldRows: make([]int, 0),
		DuplicateKeys:  make([]entities.DepotItemKey, 0),
		SplitDepots:    make([]entities.DepotCode, 0),
		Errors:         make([]string, 0),
		Warnings:       make([]string, 0),
	}

	seenKeys := make(map[entities.DepotItemKey]bool)
	depotRegion := make(map[entities.DepotCode]entities.RegionCode)
	splitSeen := make(map[entities.DepotCode]bool)

	for i, row := range rows {
		if row.Region == "" || row.Depot == "" || row.Item == "" {
			result.BlankFieldRows = append(result.BlankFieldRows, i+1)
			continue
		}

		key := row.Key()
		if seenKeys[key] {
			result.DuplicateKeys = append(result.DuplicateKeys, key)
		}
		seenKeys[key] = true

		// A depot belongs to exactly one region for the duration of a run
		if region, exists := depotRegion[row.Depot]; exists {
			if region != row.Region && !splitSeen[row.Depot] {
				result.SplitDepots = append(result.SplitDepots, row.Depot)
				splitSeen[row.Depot] = true
			}
		} else {
			depotRegion[row.Depot] = row.Region
		}
	}

	for _, rowNum := range result.BlankFieldRows {
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: blank region, depot or item", rowNum))
	}
	for _, depot := range result.SplitDepots {
		result.Errors = append(result.Errors, fmt.Sprintf("depot %s is assigned to more than one region", depot))
	}
	for _, key := range result.DuplicateKeys {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("duplicate row for depot %s item %s: the last occurrence wins", key.Depot, key.Item))
	}

	return result
}
