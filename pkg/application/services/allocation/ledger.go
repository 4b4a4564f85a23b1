package allocation

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/transferplan/pkg/domain/entities"
)

// Ledger tracks the remaining need and remaining transferable availability for
// every (depot, item) pair. It is the single mutable state shared by both
// allocation stages and is owned by exactly one engine run: single-threaded,
// no locking.
type Ledger struct {
	need      map[entities.DepotItemKey]decimal.Decimal
	available map[entities.DepotItemKey]decimal.Decimal
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{
		need:      make(map[entities.DepotItemKey]decimal.Decimal),
		available: make(map[entities.DepotItemKey]decimal.Decimal),
	}
}

// BuildLedger populates a ledger from normalized input rows. Quantities are
// clamped to zero from below. When the same (depot, item) key appears more
// than once, the last row wins.
func BuildLedger(rows []*entities.InventoryRow) *Ledger {
	ledger := NewLedger()
	for _, row := range rows {
		key := row.Key()
		ledger.need[key] = entities.ClampQuantity(row.Need)
		ledger.available[key] = entities.ClampQuantity(row.Available)
	}
	return ledger
}

// NeedFor returns the remaining need for a key. Unknown keys have zero need:
// absence means nothing was reported, not an error.
func (l *Ledger) NeedFor(key entities.DepotItemKey) decimal.Decimal {
	return l.need[key]
}

// AvailableFor returns the remaining transferable availability for a key,
// zero for unknown keys
func (l *Ledger) AvailableFor(key entities.DepotItemKey) decimal.Decimal {
	return l.available[key]
}

// ConsumeNeed subtracts qty from the remaining need for a key. Callers must
// bound qty by the current value; the allocators do so via min().
func (l *Ledger) ConsumeNeed(key entities.DepotItemKey, qty decimal.Decimal) {
	l.need[key] = l.need[key].Sub(qty)
}

// ConsumeAvailable subtracts qty from the remaining availability for a key
func (l *Ledger) ConsumeAvailable(key entities.DepotItemKey, qty decimal.Decimal) {
	l.available[key] = l.available[key].Sub(qty)
}

// TotalUnmetNeed returns the sum of all remaining need across the ledger
func (l *Ledger) TotalUnmetNeed() decimal.Decimal {
	total := decimal.Zero
	for _, qty := range l.need {
		total = total.Add(qty)
	}
	return total
}
