package allocation

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/transferplan/pkg/domain/entities"
)

// testRow builds an inventory row for tests, panicking on invalid input
func testRow(region, depot, item string, need, available int64) *entities.InventoryRow {
	row, err := entities.NewInventoryRow(
		entities.RegionCode(region),
		entities.DepotCode(depot),
		entities.ItemCode(item),
		decimal.NewFromInt(need),
		decimal.NewFromInt(available),
	)
	if err != nil {
		panic(err)
	}
	return row
}

// key builds a ledger key from raw strings
func key(depot, item string) entities.DepotItemKey {
	return entities.DepotItemKey{
		Depot: entities.DepotCode(depot),
		Item:  entities.ItemCode(item),
	}
}

// qty builds a decimal quantity from an integer
func qty(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}
