package memory

import (
	"github.com/vsinha/transferplan/pkg/domain/entities"
	"github.com/vsinha/transferplan/pkg/domain/repositories"
)

// RowRepository provides in-memory storage for the inventory table.
// Rows are returned in insertion order; the allocation engine depends on the
// input-row order for its tie-break behavior.
type RowRepository struct {
	rows []entities.InventoryRow
}

// NewRowRepository creates a new in-memory row repository
func NewRowRepository() *RowRepository {
	return &RowRepository{
		rows: []entities.InventoryRow{},
	}
}

// Verify interface compliance
var _ repositories.RowRepository = (*RowRepository)(nil)

// LoadRows loads inventory rows into the repository
func (r *RowRepository) LoadRows(rows []*entities.InventoryRow) error {
	for _, row := range rows {
		r.AddRow(*row)
	}
	return nil
}

// AddRow adds a single inventory row to the repository
func (r *RowRepository) AddRow(row entities.InventoryRow) {
	r.rows = append(r.rows, row)
}

// GetAllRows returns all rows in insertion order
func (r *RowRepository) GetAllRows() ([]*entities.InventoryRow, error) {
	rows := make([]*entities.InventoryRow, 0, len(r.rows))
	for i := range r.rows {
		rows = append(rows, &r.rows[i])
	}
	return rows, nil
}

// GetRowsByRegion returns the rows belonging to one region, in insertion order
func (r *RowRepository) GetRowsByRegion(region entities.RegionCode) ([]*entities.InventoryRow, error) {
	var rows []*entities.InventoryRow
	for i := range r.rows {
		if r.rows[i].Region == region {
			rows = append(rows, &r.rows[i])
		}
	}
	return rows, nil
}

// GetRowsByItem returns the rows mentioning one item, in insertion order
func (r *RowRepository) GetRowsByItem(item entities.ItemCode) ([]*entities.InventoryRow, error) {
	var rows []*entities.InventoryRow
	for i := range r.rows {
		if r.rows[i].Item == item {
			rows = append(rows, &r.rows[i])
		}
	}
	return rows, nil
}
