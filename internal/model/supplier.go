package model

// Supplier provides goods via purchase orders.
type Supplier struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Contact      string `json:"contact"`
	PaymentTerms string `json:"payment_terms"`
}
