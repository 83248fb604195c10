package model

import "github.com/shopspring/decimal"

// Product is a catalog item sold to clients and purchased from suppliers.
type Product struct {
	ID           int             `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	CategoryID   int             `json:"category_id"`
	Cost         decimal.Decimal `json:"cost"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReorderLevel int             `json:"reorder_level"`
	Active       bool            `json:"active"`
}
