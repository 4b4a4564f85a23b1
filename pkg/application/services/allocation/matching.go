package allocation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vsinha/transferplan/pkg/domain/entities"
)

// matchItem runs one greedy matching pass for a single item over the given
// depot pool. Receiver and sender candidate sets are ranked once from the
// ledger state at entry and their order is never refreshed mid-loop; only the
// live ledger quantities are re-read per sender iteration, so a sender drained
// earlier in the pass simply yields a zero quantity later on.
func matchItem(ledger *Ledger, recorder *Recorder, item entities.ItemCode, pool []entities.DepotCode, classification entities.TransferClassification) {
	receivers := rankCandidates(pool, func(depot entities.DepotCode) decimal.Decimal {
		return ledger.NeedFor(entities.DepotItemKey{Depot: depot, Item: item})
	})
	if len(receivers) == 0 {
		return
	}

	senders := rankCandidates(pool, func(depot entities.DepotCode) decimal.Decimal {
		return ledger.AvailableFor(entities.DepotItemKey{Depot: depot, Item: item})
	})
	if len(senders) == 0 {
		return
	}

	// Greedy double loop: highest need first, supplied from highest availability
	for _, receiver := range receivers {
		remaining := ledger.NeedFor(entities.DepotItemKey{Depot: receiver, Item: item})
		if !remaining.IsPositive() {
			continue
		}

		for _, sender := range senders {
			if sender == receiver {
				continue
			}

			available := ledger.AvailableFor(entities.DepotItemKey{Depot: sender, Item: item})
			if !available.IsPositive() || !remaining.IsPositive() {
				continue
			}

			qty := decimal.Min(remaining, available)
			recorder.Record(sender, receiver, item, qty, classification)
			remaining = remaining.Sub(qty)
		}
	}
}

// rankCandidates filters the pool down to depots with a positive metric and
// sorts them descending by it. The sort is stable: ties retain the pool's
// input-row order, with no secondary key.
func rankCandidates(pool []entities.DepotCode, metric func(entities.DepotCode) decimal.Decimal) []entities.DepotCode {
	ranked := make([]entities.DepotCode, 0, len(pool))
	for _, depot := range pool {
		if metric(depot).IsPositive() {
			ranked = append(ranked, depot)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return metric(ranked[i]).GreaterThan(metric(ranked[j]))
	})

	return ranked
}
