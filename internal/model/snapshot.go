package model

import "github.com/shopspring/decimal"

// Materialized snapshots are point-in-time copies taken when the referencing
// record is created. They are distinct from live references (plain *ID fields):
// editing the source entity afterwards must never change an embedded snapshot.
// Treating one as a live join is a bug.

// ClientSnapshot is embedded into an Order at creation time.
type ClientSnapshot struct {
	ClientID    int             `json:"client_id"`
	Name        string          `json:"name"`
	PricingTier string          `json:"pricing_tier"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// SupplierSnapshot is embedded into a PurchaseOrder at creation time.
type SupplierSnapshot struct {
	SupplierID   int    `json:"supplier_id"`
	Name         string `json:"name"`
	Contact      string `json:"contact"`
	PaymentTerms string `json:"payment_terms"`
}

// ProductSnapshot is embedded into order and purchase-order line items.
type ProductSnapshot struct {
	ProductID int             `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
