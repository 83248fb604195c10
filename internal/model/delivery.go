package model

const (
	DeliveryPending   = "pending"
	DeliveryAssigned  = "assigned"
	DeliveryInTransit = "in-transit"
	DeliveryDelivered = "delivered"
	DeliveryFailed    = "failed"
	DeliveryReturned  = "returned"
)

// Delivery is one shipment fulfilling a single order. OrderID is a live
// reference, not a snapshot.
type Delivery struct {
	ID            int    `json:"id"`
	Number        string `json:"number"`
	OrderID       int    `json:"order_id"`
	Status        string `json:"status"`
	ScheduledDate string `json:"scheduled_date"` // YYYY-MM-DD
	Driver        string `json:"driver"`
	Address       string `json:"address"`
}
