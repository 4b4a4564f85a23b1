package allocation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vsinha/transferplan/pkg/application/dto"
	"github.com/vsinha/transferplan/pkg/domain/entities"
	"github.com/vsinha/transferplan/pkg/domain/repositories"
	"github.com/vsinha/transferplan/pkg/infrastructure/events"
)

// Engine orchestrates one allocation run: it builds the ledger from the input
// rows, runs the regional pass and then the global pass against that same
// ledger and recorder, and returns the accumulated transfer plan. The engine
// owns the ledger and recorder for the lifetime of the run; a run is one-shot
// and not resumable.
type Engine struct {
	regional *RegionalAllocator
	global   *GlobalAllocator
	store    events.EventStore
}

// NewEngine creates an allocation engine without event emission
func NewEngine() *Engine {
	return NewEngineWithEvents(nil)
}

// NewEngineWithEvents creates an allocation engine that appends run events to
// the given store. A nil store disables emission; emission never alters
// allocation behavior.
func NewEngineWithEvents(store events.EventStore) *Engine {
	return &Engine{
		regional: NewRegionalAllocator(),
		global:   NewGlobalAllocator(),
		store:    store,
	}
}

// Allocate computes the transfer plan for a normalized inventory table.
// The returned instructions are in applied order: every intra-region
// instruction precedes every cross-region instruction.
func (e *Engine) Allocate(ctx context.Context, rows []*entities.InventoryRow) (*dto.TransferResult, error) {
	runID := uuid.New().String()

	ledger := BuildLedger(rows)
	plan := buildNetworkPlan(rows)
	recorder := NewRecorder(ledger)
	recorder.Observe(func(instruction entities.TransferInstruction) {
		e.emit(events.NewTransferRecordedEvent(runID, instruction))
	})

	e.emit(events.NewRunStartedEvent(runID, len(rows)))

	e.emit(events.NewStageStartedEvent(runID, events.RegionalStage))
	e.regional.Run(ledger, recorder, plan)
	regionalCount := len(recorder.Instructions())
	e.emit(events.NewStageCompletedEvent(runID, events.RegionalStage, regionalCount))

	e.emit(events.NewStageStartedEvent(runID, events.GlobalStage))
	e.global.Run(ledger, recorder, plan)
	e.emit(events.NewStageCompletedEvent(runID, events.GlobalStage, len(recorder.Instructions())-regionalCount))

	instructions := recorder.Instructions()
	result := &dto.TransferResult{
		RunID:        runID,
		GeneratedAt:  time.Now(),
		Instructions: instructions,
		Summary:      summarize(rows, instructions, ledger),
	}

	e.emit(events.NewRunCompletedEvent(runID, len(instructions), result.Summary.UnmetNeed.String()))

	return result, nil
}

// AllocateFromRepository runs the engine on all rows held by a repository
func (e *Engine) AllocateFromRepository(ctx context.Context, repo repositories.RowRepository) (*dto.TransferResult, error) {
	rows, err := repo.GetAllRows()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory rows: %w", err)
	}
	return e.Allocate(ctx, rows)
}

func (e *Engine) emit(event events.Event) {
	if e.store == nil {
		return
	}
	_ = e.store.AppendEvent(event.StreamID(), event)
}

func summarize(rows []*entities.InventoryRow, instructions []entities.TransferInstruction, ledger *Ledger) dto.TransferSummary {
	summary := dto.TransferSummary{
		RowCount:         len(rows),
		InstructionCount: len(instructions),
		TotalQuantity:    decimal.Zero,
		UnmetNeed:        ledger.TotalUnmetNeed(),
	}

	for _, instruction := range instructions {
		switch instruction.Classification {
		case entities.IntraRegion:
			summary.IntraRegionCount++
		case entities.CrossRegion:
			summary.CrossRegionCount++
		}
		summary.TotalQuantity = summary.TotalQuantity.Add(instruction.Quantity)
	}

	return summary
}
