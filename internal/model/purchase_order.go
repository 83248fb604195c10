package model

import "github.com/shopspring/decimal"

const (
	PurchasePending   = "pending"
	PurchaseApproved  = "approved"
	PurchasePartial   = "partial"
	PurchaseReceived  = "received"
	PurchaseCancelled = "cancelled"
)

// PurchaseOrder is an inbound order placed with a supplier. Supplier and
// per-item Product are materialized snapshots.
type PurchaseOrder struct {
	ID        int                 `json:"id"`
	Number    string              `json:"number"`
	Supplier  SupplierSnapshot    `json:"supplier"`
	Items     []PurchaseOrderItem `json:"items"`
	Status    string              `json:"status"`
	Total     decimal.Decimal     `json:"total"`
	OrderDate string              `json:"order_date"` // YYYY-MM-DD
}

type PurchaseOrderItem struct {
	ProductID int             `json:"product_id"`
	Product   ProductSnapshot `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
