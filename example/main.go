package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/transferplan/pkg/application/services/allocation"
	"github.com/vsinha/transferplan/pkg/domain/entities"
)

func main() {
	ctx := context.Background()

	// A small two-region network: the north region can cover most of its own
	// need for filters, but oil demand in the south exceeds regional surplus.
	rows := buildNetwork()

	fmt.Println("🚚 Running transfer planning for the depot network...")
	fmt.Printf("Input: %d rows across 2 regions\n\n", len(rows))

	engine := allocation.NewEngine()
	result, err := engine.Allocate(ctx, rows)
	if err != nil {
		fmt.Printf("❌ Planning failed: %v\n", err)
		return
	}

	fmt.Println("📊 Transfer Plan:")
	fmt.Printf("  Transfers: %d (intra-region: %d, cross-region: %d)\n",
		result.Summary.InstructionCount,
		result.Summary.IntraRegionCount,
		result.Summary.CrossRegionCount)
	fmt.Printf("  Total quantity moved: %s\n", result.Summary.TotalQuantity)
	fmt.Printf("  Unmet need: %s\n\n", result.Summary.UnmetNeed)

	for _, instruction := range result.Instructions {
		fmt.Printf("  %-13s %s -> %s  %s x %s\n",
			instruction.Classification,
			instruction.FromDepot,
			instruction.ToDepot,
			instruction.Item,
			instruction.Quantity)
	}
}

func buildNetwork() []*entities.InventoryRow {
	type entry struct {
		region    string
		depot     string
		item      string
		need      int64
		available int64
	}

	entries := []entry{
		{"NORTH", "DEP-N1", "FILTER-200", 0, 40},
		{"NORTH", "DEP-N2", "FILTER-200", 25, 0},
		{"NORTH", "DEP-N3", "FILTER-200", 30, 10},
		{"NORTH", "DEP-N1", "OIL-5W30", 0, 12},
		{"SOUTH", "DEP-S1", "OIL-5W30", 50, 0},
		{"SOUTH", "DEP-S2", "OIL-5W30", 0, 20},
		{"SOUTH", "DEP-S1", "FILTER-200", 5, 0},
	}

	rows := make([]*entities.InventoryRow, 0, len(entries))
	for _, s := range entries {
		row, err := entities.NewInventoryRow(
			entities.RegionCode(s.region),
			entities.DepotCode(s.depot),
			entities.ItemCode(s.item),
			decimal.NewFromInt(s.need),
			decimal.NewFromInt(s.available),
		)
		if err != nil {
			panic(err)
		}
		rows = append(rows, row)
	}
	return rows
}
