package model

import "github.com/shopspring/decimal"

// InventoryRecord tracks stock of one product in one warehouse.
// (ProductID, WarehouseID) should be unique per record but is not enforced.
type InventoryRecord struct {
	ID           int             `json:"id"`
	ProductID    int             `json:"product_id"`
	WarehouseID  string          `json:"warehouse_id"`
	Quantity     int             `json:"quantity"`
	Reserved     int             `json:"reserved"`
	ReorderLevel int             `json:"reorder_level"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
}

// Available is stock not held back for open orders.
func (r InventoryRecord) Available() int { return r.Quantity - r.Reserved }
