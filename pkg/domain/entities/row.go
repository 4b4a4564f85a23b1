package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DepotCode identifies a physical inventory location
type DepotCode string

// ItemCode identifies a stocked item
type ItemCode string

// RegionCode identifies the administrative region a depot reports to
type RegionCode string

// DepotItemKey identifies one (depot, item) pair in the ledger.
// Both components are opaque strings compared by exact match.
type DepotItemKey struct {
	Depot DepotCode
	Item  ItemCode
}

// InventoryRow represents one normalized row of the input table: what a depot
// needs of an item and how much of it the depot could send elsewhere.
type InventoryRow struct {
	Region    RegionCode
	Depot     DepotCode
	Item      ItemCode
	Need      decimal.Decimal
	Available decimal.Decimal
}

// NewInventoryRow creates a validated InventoryRow. Quantities are clamped to
// zero from below; identity fields must be non-blank.
func NewInventoryRow(region RegionCode, depot DepotCode, item ItemCode, need, available decimal.Decimal) (*InventoryRow, error) {
	if strings.TrimSpace(string(region)) == "" {
		return nil, fmt.Errorf("region cannot be empty")
	}
	if strings.TrimSpace(string(depot)) == "" {
		return nil, fmt.Errorf("depot code cannot be empty")
	}
	if strings.TrimSpace(string(item)) == "" {
		return nil, fmt.Errorf("item code cannot be empty")
	}

	return &InventoryRow{
		Region:    region,
		Depot:     depot,
		Item:      item,
		Need:      ClampQuantity(need),
		Available: ClampQuantity(available),
	}, nil
}

// Key returns the ledger key for this row
func (r *InventoryRow) Key() DepotItemKey {
	return DepotItemKey{Depot: r.Depot, Item: r.Item}
}

// ParseQuantity coerces free-form cell text into a usable quantity.
// Blank or non-numeric values coerce to zero and negative values clamp to
// zero; malformed quantities are normal input, not errors.
func ParseQuantity(raw string) decimal.Decimal {
	q, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return ClampQuantity(q)
}

// ClampQuantity clamps a quantity to zero from below
func ClampQuantity(q decimal.Decimal) decimal.Decimal {
	if q.IsNegative() {
		return decimal.Zero
	}
	return q
}
