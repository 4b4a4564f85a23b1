package repositories

import "github.com/vsinha/transferplan/pkg/domain/entities"

// RowRepository provides access to the normalized inventory table
type RowRepository interface {
	LoadRows(rows []*entities.InventoryRow) error
	AddRow(row entities.InventoryRow)
	GetAllRows() ([]*entities.InventoryRow, error)
	GetRowsByRegion(region entities.RegionCode) ([]*entities.InventoryRow, error)
	GetRowsByItem(item entities.ItemCode) ([]*entities.InventoryRow, error)
}
