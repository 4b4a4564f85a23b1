package allocation

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/transferplan/pkg/domain/entities"
)

// Recorder accumulates transfer instructions in the exact order they are
// applied and keeps the ledger consistent with them: every recorded transfer
// consumes the sender's availability and the receiver's need in the same step,
// so quantities are conserved across the whole run.
type Recorder struct {
	ledger       *Ledger
	instructions []entities.TransferInstruction
	onRecord     func(entities.TransferInstruction)
}

// NewRecorder creates a recorder bound to the ledger it must keep consistent
func NewRecorder(ledger *Ledger) *Recorder {
	return &Recorder{
		ledger:       ledger,
		instructions: make([]entities.TransferInstruction, 0),
	}
}

// Observe registers a callback invoked for every recorded instruction.
// The callback must not mutate the ledger.
func (r *Recorder) Observe(fn func(entities.TransferInstruction)) {
	r.onRecord = fn
}

// Record appends a transfer instruction and consumes the matching availability
// and need. A qty of zero or less is silently dropped: nothing left to move is
// a normal outcome, not an error.
func (r *Recorder) Record(from, to entities.DepotCode, item entities.ItemCode, qty decimal.Decimal, classification entities.TransferClassification) {
	if !qty.IsPositive() {
		return
	}

	instruction := entities.TransferInstruction{
		Classification: classification,
		FromDepot:      from,
		ToDepot:        to,
		Item:           item,
		Quantity:       qty,
	}
	r.instructions = append(r.instructions, instruction)

	r.ledger.ConsumeAvailable(entities.DepotItemKey{Depot: from, Item: item}, qty)
	r.ledger.ConsumeNeed(entities.DepotItemKey{Depot: to, Item: item}, qty)

	if r.onRecord != nil {
		r.onRecord(instruction)
	}
}

// Instructions returns the accumulated transfer ledger in applied order
func (r *Recorder) Instructions() []entities.TransferInstruction {
	return r.instructions
}
