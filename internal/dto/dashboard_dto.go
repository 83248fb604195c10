package dto

import "github.com/shopspring/decimal"

// Summary holds the headline KPIs for the dashboard landing screen.
type Summary struct {
	OrdersToday      int             `json:"orders_today"`
	RevenueToday     decimal.Decimal `json:"revenue_today"`
	OrdersThisMonth  int             `json:"orders_this_month"`
	RevenueThisMonth decimal.Decimal `json:"revenue_this_month"`
	PendingOrders    int             `json:"pending_orders"`
	LowStock         int             `json:"low_stock"`
	OutOfStock       int             `json:"out_of_stock"`
	ActiveDeliveries int             `json:"active_deliveries"`
}

// SeriesPoint is one calendar-day bucket of a chart series. Synthetic marks
// buckets that had no real data and were filled so charts never render empty.
type SeriesPoint struct {
	Date      string          `json:"date"`
	Value     decimal.Decimal `json:"value"`
	Synthetic bool            `json:"synthetic"`
}

// RankedEntry is one row of a top-N listing.
type RankedEntry struct {
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
	Count   int             `json:"count"`
}

// CategorySlice is one slice of a categorical breakdown.
type CategorySlice struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

type ActivityEntry struct {
	Type      string `json:"type"` // "order" | "delivery"
	Reference string `json:"reference"`
	Date      string `json:"date"`
	Detail    string `json:"detail"`
}

type PipelineStage struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DuplicateAlert flags orders for the same client with the same total on the
// same day, the usual symptom of a double-submitted form.
type DuplicateAlert struct {
	ClientName   string          `json:"client_name"`
	Date         string          `json:"date"`
	Total        decimal.Decimal `json:"total"`
	OrderNumbers []string        `json:"order_numbers"`
}

type TrackingEntry struct {
	Number        string `json:"number"`
	OrderID       int    `json:"order_id"`
	Status        string `json:"status"`
	Driver        string `json:"driver"`
	ScheduledDate string `json:"scheduled_date"`
}

type DriverPerformance struct {
	Driver    string `json:"driver"`
	Delivered int    `json:"delivered"`
	Failed    int    `json:"failed"`
	Total     int    `json:"total"`
}
