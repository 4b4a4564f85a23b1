package allocation

import (
	"sort"

	"github.com/vsinha/transferplan/pkg/domain/entities"
)

// networkPlan is the grouping derived from the input rows before any matching
// runs: which depots and items each region contains and the network-wide depot
// and item populations. All orderings are fixed here and reused by both
// stages. Regions iterate in ascending identifier order; items and depots keep
// their first-appearance order in the input.
type networkPlan struct {
	regions          []entities.RegionCode
	regionItems      map[entities.RegionCode][]entities.ItemCode
	regionItemDepots map[entities.RegionCode]map[entities.ItemCode][]entities.DepotCode
	allItems         []entities.ItemCode
	allDepots        []entities.DepotCode
}

// buildNetworkPlan derives the grouping structures from the input rows
func buildNetworkPlan(rows []*entities.InventoryRow) *networkPlan {
	plan := &networkPlan{
		regionItems:      make(map[entities.RegionCode][]entities.ItemCode),
		regionItemDepots: make(map[entities.RegionCode]map[entities.ItemCode][]entities.DepotCode),
	}

	seenRegion := make(map[entities.RegionCode]bool)
	seenRegionItem := make(map[entities.RegionCode]map[entities.ItemCode]bool)
	seenRegionItemDepot := make(map[entities.RegionCode]map[entities.DepotItemKey]bool)
	seenItem := make(map[entities.ItemCode]bool)
	seenDepot := make(map[entities.DepotCode]bool)

	for _, row := range rows {
		if !seenRegion[row.Region] {
			seenRegion[row.Region] = true
			plan.regions = append(plan.regions, row.Region)
			plan.regionItemDepots[row.Region] = make(map[entities.ItemCode][]entities.DepotCode)
			seenRegionItem[row.Region] = make(map[entities.ItemCode]bool)
			seenRegionItemDepot[row.Region] = make(map[entities.DepotItemKey]bool)
		}

		if !seenRegionItem[row.Region][row.Item] {
			seenRegionItem[row.Region][row.Item] = true
			plan.regionItems[row.Region] = append(plan.regionItems[row.Region], row.Item)
		}

		if !seenRegionItemDepot[row.Region][row.Key()] {
			seenRegionItemDepot[row.Region][row.Key()] = true
			plan.regionItemDepots[row.Region][row.Item] = append(plan.regionItemDepots[row.Region][row.Item], row.Depot)
		}

		if !seenItem[row.Item] {
			seenItem[row.Item] = true
			plan.allItems = append(plan.allItems, row.Item)
		}

		if !seenDepot[row.Depot] {
			seenDepot[row.Depot] = true
			plan.allDepots = append(plan.allDepots, row.Depot)
		}
	}

	sort.Slice(plan.regions, func(i, j int) bool {
		return plan.regions[i] < plan.regions[j]
	})

	return plan
}
