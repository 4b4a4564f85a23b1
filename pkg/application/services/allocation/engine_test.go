package allocation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/transferplan/pkg/domain/entities"
	"github.com/vsinha/transferplan/pkg/infrastructure/events"
)

func TestEngine_Allocate_SingleIntraRegionTransfer(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine()

	result, err := engine.Allocate(ctx, []*entities.InventoryRow{
		testRow("R1", "DEPOT_A", "X001", 0, 10),
		testRow("R1", "DEPOT_B", "X001", 10, 0),
	})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	if len(result.Instructions) != 1 {
		t.Fatalf("Expected 1 instruction, got %d", len(result.Instructions))
	}

	instruction := result.Instructions[0]
	if instruction.Classification != entities.IntraRegion {
		t.Errorf("Expected intra-region, got %s", instruction.Classification)
	}
	if instruction.FromDepot != "DEPOT_A" || instruction.ToDepot != "DEPOT_B" || instruction.Item != "X001" {
		t.Errorf("Unexpected instruction: %+v", instruction)
	}
	if !instruction.Quantity.Equal(qty(10)) {
		t.Errorf("Expected quantity 10, got %s", instruction.Quantity)
	}
	if !result.Summary.UnmetNeed.IsZero() {
		t.Errorf("Expected no unmet need, got %s", result.Summary.UnmetNeed)
	}
}

func TestEngine_Allocate_CrossRegionFallback(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine()

	// No same-region partner exists for either depot
	result, err := engine.Allocate(ctx, []*entities.InventoryRow{
		testRow("R1", "DEPOT_A", "X002", 0, 5),
		testRow("R2", "DEPOT_C", "X002", 5, 0),
	})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	if result.Summary.IntraRegionCount != 0 {
		t.Errorf("Expected no intra-region transfers, got %d", result.Summary.IntraRegionCount)
	}
	if len(result.Instructions) != 1 {
		t.Fatalf("Expected 1 instruction, got %d", len(result.Instructions))
	}

	instruction := result.Instructions[0]
	if instruction.Classification != entities.CrossRegion {
		t.Errorf("Expected cross-region, got %s", instruction.Classification)
	}
	if instruction.FromDepot != "DEPOT_A" || instruction.ToDepot != "DEPOT_C" {
		t.Errorf("Unexpected endpoints: %+v", instruction)
	}
	if !instruction.Quantity.Equal(qty(5)) {
		t.Errorf("Expected quantity 5, got %s", instruction.Quantity)
	}
}

func TestEngine_Allocate_SplitAcrossSenders(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine()

	// Receiver needs 10; regional senders only hold 4 + 4
	result, err := engine.Allocate(ctx, []*entities.InventoryRow{
		testRow("R1", "DEPOT_B", "X001", 10, 0),
		testRow("R1", "DEPOT_A1", "X001", 0, 4),
		testRow("R1", "DEPOT_A2", "X001", 0, 4),
	})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	if len(result.Instructions) != 2 {
		t.Fatalf("Expected 2 instructions, got %d", len(result.Instructions))
	}

	total := decimal.Zero
	for _, instruction := range result.Instructions {
		if instruction.ToDepot != "DEPOT_B" {
			t.Errorf("Unexpected receiver: %+v", instruction)
		}
		if instruction.Classification != entities.IntraRegion {
			t.Errorf("Expected intra-region, got %s", instruction.Classification)
		}
		total = total.Add(instruction.Quantity)
	}
	if !total.Equal(qty(8)) {
		t.Errorf("Expected 8 transferred in total, got %s", total)
	}

	// Residual need of 2 has no sender anywhere: a terminal state, not an error
	if !result.Summary.UnmetNeed.Equal(qty(2)) {
		t.Errorf("Expected unmet need 2, got %s", result.Summary.UnmetNeed)
	}
}

func TestEngine_Allocate_ResidualPickedUpGlobally(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine()

	result, err := engine.Allocate(ctx, []*entities.InventoryRow{
		testRow("R1", "DEPOT_B", "X001", 10, 0),
		testRow("R1", "DEPOT_A1", "X001", 0, 4),
		testRow("R1", "DEPOT_A2", "X001", 0, 4),
		testRow("R2", "DEPOT_C", "X001", 0, 5),
	})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	if result.Summary.IntraRegionCount != 2 {
		t.Errorf("Expected 2 intra-region transfers, got %d", result.Summary.IntraRegionCount)
	}
	if result.Summary.CrossRegionCount != 1 {
		t.Errorf("Expected 1 cross-region transfer, got %d", result.Summary.CrossRegionCount)
	}

	last := result.Instructions[len(result.Instructions)-1]
	if last.Classification != entities.CrossRegion || last.FromDepot != "DEPOT_C" {
		t.Errorf("Expected residual covered by DEPOT_C, got %+v", last)
	}
	if !last.Quantity.Equal(qty(2)) {
		t.Errorf("Expected residual quantity 2, got %s", last.Quantity)
	}
	if !result.Summary.UnmetNeed.IsZero() {
		t.Errorf("Expected no unmet need, got %s", result.Summary.UnmetNeed)
	}
}

func TestEngine_Allocate_StageOrdering(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine()

	result, err := engine.Allocate(ctx, []*entities.InventoryRow{
		testRow("R1", "DEPOT_A", "X001", 0, 3),
		testRow("R1", "DEPOT_B", "X001", 8, 0),
		testRow("R2", "DEPOT_C", "X001", 0, 10),
		testRow("R2", "DEPOT_D", "X002", 4, 0),
		testRow("R1", "DEPOT_A", "X002", 0, 4),
	})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	sawCrossRegion := false
	for _, instruction := range result.Instructions {
		if instruction.Classification == entities.CrossRegion {
			sawCrossRegion = true
		}
		if sawCrossRegion && instruction.Classification == entities.IntraRegion {
			t.Fatalf("Intra-region instruction after cross-region: %+v", result.Instructions)
		}
	}
	if !sawCrossRegion {
		t.Error("Expected at least one cross-region instruction in this scenario")
	}
}

func TestEngine_Allocate_NoSelfTransfer(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine()

	// DEPOT_A reports both need and availability for the same item; its own
	// surplus must never cover its own need
	result, err := engine.Allocate(ctx, []*entities.InventoryRow{
		testRow("R1", "DEPOT_A", "X001", 5, 3),
		testRow("R1", "DEPOT_B", "X001", 0, 4),
	})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	for _, instruction := range result.Instructions {
		if instruction.FromDepot == instruction.ToDepot {
			t.Errorf("Self-transfer recorded: %+v", instruction)
		}
	}

	if len(result.Instructions) != 1 {
		t.Fatalf("Expected 1 instruction, got %d", len(result.Instructions))
	}
	if !result.Instructions[0].Quantity.Equal(qty(4)) {
		t.Errorf("Expected quantity 4 from DEPOT_B, got %s", result.Instructions[0].Quantity)
	}
	if !result.Summary.UnmetNeed.Equal(qty(1)) {
		t.Errorf("Expected unmet need 1, got %s", result.Summary.UnmetNeed)
	}
}

func TestEngine_Allocate_ZeroTablesYieldEmptyPlan(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine()

	tests := []struct {
		name string
		rows []*entities.InventoryRow
	}{
		{
			name: "no_need",
			rows: []*entities.InventoryRow{
				testRow("R1", "DEPOT_A", "X001", 0, 10),
				testRow("R2", "DEPOT_B", "X001", 0, 5),
			},
		},
		{
			name: "no_availability",
			rows: []*entities.InventoryRow{
				testRow("R1", "DEPOT_A", "X001", 10, 0),
				testRow("R2", "DEPOT_B", "X001", 5, 0),
			},
		},
		{
			name: "empty_table",
			rows: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Allocate(ctx, tt.rows)
			if err != nil {
				t.Fatalf("Allocate failed: %v", err)
			}
			if len(result.Instructions) != 0 {
				t.Errorf("Expected empty plan, got %d instructions", len(result.Instructions))
			}
		})
	}
}

func TestEngine_Allocate_Conservation(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine()

	rows := []*entities.InventoryRow{
		testRow("R1", "DEPOT_A", "X001", 12, 0),
		testRow("R1", "DEPOT_B", "X001", 0, 7),
		testRow("R1", "DEPOT_C", "X001", 3, 2),
		testRow("R2", "DEPOT_D", "X001", 0, 20),
		testRow("R2", "DEPOT_E", "X002", 6, 1),
		testRow("R2", "DEPOT_D", "X002", 0, 3),
		testRow("R3", "DEPOT_F", "X002", 2, 8),
	}

	initialNeed := make(map[entities.DepotItemKey]decimal.Decimal)
	initialAvailable := make(map[entities.DepotItemKey]decimal.Decimal)
	for _, row := range rows {
		initialNeed[row.Key()] = row.Need
		initialAvailable[row.Key()] = row.Available
	}

	result, err := engine.Allocate(ctx, rows)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	received := make(map[entities.DepotItemKey]decimal.Decimal)
	sent := make(map[entities.DepotItemKey]decimal.Decimal)
	for _, instruction := range result.Instructions {
		if !instruction.Quantity.IsPositive() {
			t.Errorf("Non-positive instruction quantity: %+v", instruction)
		}
		to := entities.DepotItemKey{Depot: instruction.ToDepot, Item: instruction.Item}
		from := entities.DepotItemKey{Depot: instruction.FromDepot, Item: instruction.Item}
		received[to] = received[to].Add(instruction.Quantity)
		sent[from] = sent[from].Add(instruction.Quantity)
	}

	// Every depot receives at most its reported need and sends at most its
	// reported availability
	remainingNeed := decimal.Zero
	for k, need := range initialNeed {
		if received[k].GreaterThan(need) {
			t.Errorf("Key %v received %s, more than initial need %s", k, received[k], need)
		}
		remainingNeed = remainingNeed.Add(need.Sub(received[k]))
	}
	for k, available := range initialAvailable {
		if sent[k].GreaterThan(available) {
			t.Errorf("Key %v sent %s, more than initial availability %s", k, sent[k], available)
		}
	}

	// The summary's unmet need is exactly the need left after all receipts
	if !result.Summary.UnmetNeed.Equal(remainingNeed) {
		t.Errorf("Summary unmet need %s does not match ledger remainder %s",
			result.Summary.UnmetNeed, remainingNeed)
	}
}

func TestEngine_Allocate_RegionalContainment(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine()

	rows := []*entities.InventoryRow{
		testRow("R1", "DEPOT_A", "X001", 0, 3),
		testRow("R1", "DEPOT_B", "X001", 8, 0),
		testRow("R2", "DEPOT_C", "X001", 0, 10),
		testRow("R2", "DEPOT_D", "X001", 1, 0),
	}

	depotRegion := make(map[entities.DepotCode]entities.RegionCode)
	for _, row := range rows {
		depotRegion[row.Depot] = row.Region
	}

	result, err := engine.Allocate(ctx, rows)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	for _, instruction := range result.Instructions {
		if instruction.Classification == entities.IntraRegion {
			if depotRegion[instruction.FromDepot] != depotRegion[instruction.ToDepot] {
				t.Errorf("Intra-region instruction crosses regions: %+v", instruction)
			}
		}
	}
}

func TestEngine_Allocate_RegionsIterateInAscendingOrder(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine()

	// ZULU appears first in the input but ALPHA's transfers must come first
	result, err := engine.Allocate(ctx, []*entities.InventoryRow{
		testRow("ZULU", "DEPOT_Z1", "X001", 0, 5),
		testRow("ZULU", "DEPOT_Z2", "X001", 5, 0),
		testRow("ALPHA", "DEPOT_A1", "X001", 0, 3),
		testRow("ALPHA", "DEPOT_A2", "X001", 3, 0),
	})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	if len(result.Instructions) != 2 {
		t.Fatalf("Expected 2 instructions, got %d", len(result.Instructions))
	}
	if result.Instructions[0].FromDepot != "DEPOT_A1" {
		t.Errorf("Expected ALPHA region first, got %+v", result.Instructions[0])
	}
	if result.Instructions[1].FromDepot != "DEPOT_Z1" {
		t.Errorf("Expected ZULU region second, got %+v", result.Instructions[1])
	}
}

func TestEngine_Allocate_StaleSenderOrderPreserved(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine()

	// Candidate order is fixed before the loop: after DEPOT_S1 is drained by
	// the first receiver, DEPOT_S2 keeps its second position and is never
	// promoted, it just supplies whatever it has left
	result, err := engine.Allocate(ctx, []*entities.InventoryRow{
		testRow("R1", "DEPOT_R1", "X001", 10, 0),
		testRow("R1", "DEPOT_R2", "X001", 6, 0),
		testRow("R1", "DEPOT_S1", "X001", 0, 8),
		testRow("R1", "DEPOT_S2", "X001", 0, 5),
	})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	expected := []struct {
		from     entities.DepotCode
		to       entities.DepotCode
		quantity int64
	}{
		{"DEPOT_S1", "DEPOT_R1", 8},
		{"DEPOT_S2", "DEPOT_R1", 2},
		{"DEPOT_S2", "DEPOT_R2", 3},
	}

	if len(result.Instructions) != len(expected) {
		t.Fatalf("Expected %d instructions, got %d: %+v", len(expected), len(result.Instructions), result.Instructions)
	}
	for i, want := range expected {
		got := result.Instructions[i]
		if got.FromDepot != want.from || got.ToDepot != want.to || !got.Quantity.Equal(qty(want.quantity)) {
			t.Errorf("Instruction %d: expected %s -> %s qty %d, got %+v", i, want.from, want.to, want.quantity, got)
		}
	}

	if !result.Summary.UnmetNeed.Equal(qty(3)) {
		t.Errorf("Expected unmet need 3, got %s", result.Summary.UnmetNeed)
	}
}

func TestEngine_Allocate_EmitsRunEvents(t *testing.T) {
	ctx := context.Background()
	store := events.NewInMemoryEventStore()
	engine := NewEngineWithEvents(store)

	result, err := engine.Allocate(ctx, []*entities.InventoryRow{
		testRow("R1", "DEPOT_A", "X001", 0, 10),
		testRow("R1", "DEPOT_B", "X001", 10, 0),
	})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	recorded, err := store.ReadEvents(result.RunID, 1)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}

	// run started + 2x stage started + 2x stage completed + run completed,
	// plus one transfer.recorded per instruction
	expectedCount := 6 + len(result.Instructions)
	if len(recorded) != expectedCount {
		t.Fatalf("Expected %d events, got %d", expectedCount, len(recorded))
	}
	if recorded[0].Type() != events.RunStartedEvent {
		t.Errorf("Expected first event %s, got %s", events.RunStartedEvent, recorded[0].Type())
	}
	if recorded[len(recorded)-1].Type() != events.RunCompletedEvent {
		t.Errorf("Expected last event %s, got %s", events.RunCompletedEvent, recorded[len(recorded)-1].Type())
	}

	transferCount := 0
	for _, event := range recorded {
		if event.Type() == events.TransferRecordedEvent {
			transferCount++
		}
	}
	if transferCount != len(result.Instructions) {
		t.Errorf("Expected %d transfer events, got %d", len(result.Instructions), transferCount)
	}
}
