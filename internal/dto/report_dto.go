package dto

import "github.com/shopspring/decimal"

type SalesReport struct {
	From              string          `json:"from"`
	To                string          `json:"to"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	OrderCount        int             `json:"order_count"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	ByCategory        []CategorySlice `json:"by_category"`
	TopClients        []RankedEntry   `json:"top_clients"`
}

type WarehouseStock struct {
	WarehouseID string          `json:"warehouse_id"`
	Units       int             `json:"units"`
	Value       decimal.Decimal `json:"value"`
}

type InventoryReport struct {
	TotalUnits  int              `json:"total_units"`
	TotalValue  decimal.Decimal  `json:"total_value"`
	LowStock    int              `json:"low_stock"`
	OutOfStock  int              `json:"out_of_stock"`
	ByCategory  []CategorySlice  `json:"by_category"`
	ByWarehouse []WarehouseStock `json:"by_warehouse"`
}

type DeliveryReport struct {
	Total          int                 `json:"total"`
	Delivered      int                 `json:"delivered"`
	Failed         int                 `json:"failed"`
	SuccessRatePct decimal.Decimal     `json:"success_rate_pct"`
	ByDriver       []DriverPerformance `json:"by_driver"`
}

// FinancialReport derives everything from orders and purchase orders.
// Receivables and payables are fixed proportions of the aggregate totals, not
// per-entity aging — a deliberate simplification of the demo data layer.
type FinancialReport struct {
	Revenue        decimal.Decimal `json:"revenue"`
	Expenses       decimal.Decimal `json:"expenses"`
	GrossProfit    decimal.Decimal `json:"gross_profit"`
	NetProfit      decimal.Decimal `json:"net_profit"`
	GrossMarginPct decimal.Decimal `json:"gross_margin_pct"`
	NetMarginPct   decimal.Decimal `json:"net_margin_pct"`
	Receivables    decimal.Decimal `json:"receivables"`
	Payables       decimal.Decimal `json:"payables"`
}

// ExportFile is the opaque blob returned by /reports/export/{format}/{type}.
type ExportFile struct {
	Filename string `json:"filename"`
	Content  []byte `json:"content"`
}
