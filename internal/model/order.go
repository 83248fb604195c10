package model

import "github.com/shopspring/decimal"

// Order lifecycle. Statuses are advanced by explicit updates from the
// presentation layer; no transition checking happens here.
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Order is a client sale. Client and per-item Product are materialized
// snapshots, not live references (see snapshot.go).
type Order struct {
	ID        int             `json:"id"`
	Number    string          `json:"number"`
	Client    ClientSnapshot  `json:"client"`
	Items     []OrderItem     `json:"items"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	OrderDate string          `json:"order_date"` // YYYY-MM-DD
}

// OrderItem is one line of an order. Subtotal = Quantity × UnitPrice.
type OrderItem struct {
	ProductID int             `json:"product_id"`
	Product   ProductSnapshot `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
