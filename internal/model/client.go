package model

import "github.com/shopspring/decimal"

// Client is a business customer. Balance may exceed CreditLimit — credit
// enforcement is presentation-side.
type Client struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	PricingTier string          `json:"pricing_tier"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Balance     decimal.Decimal `json:"balance"`
}

// PricingTier is one entry of the fixed tier catalog served by
// /clients/pricing-tiers.
type PricingTier struct {
	Name        string          `json:"name"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
}

// PricingTiers is the fixed tier list. It is configuration, not data: it never
// changes at runtime and is not part of the persisted graph.
var PricingTiers = []PricingTier{
	{Name: "standard", DiscountPct: decimal.Zero},
	{Name: "silver", DiscountPct: decimal.NewFromInt(5)},
	{Name: "gold", DiscountPct: decimal.NewFromInt(10)},
	{Name: "platinum", DiscountPct: decimal.NewFromInt(15)},
}
