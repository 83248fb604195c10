package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"depot/internal/dto"
	"depot/internal/model"
	"depot/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardService derives KPI and chart data by scanning the repositories on
// every call. Nothing here is persisted — reports are pure functions of the
// current graph.
type DashboardService struct {
	store *repository.Store
}

func NewDashboardService(store *repository.Store) *DashboardService {
	return &DashboardService{store: store}
}

func dateOf(daysBack int) string {
	return time.Now().AddDate(0, 0, -daysBack).Format("2006-01-02")
}

// Summary computes the headline KPIs. Date matching is string
// equality/prefix on the YYYY-MM-DD order dates.
func (s *DashboardService) Summary() dto.Summary {
	today := dateOf(0)
	monthPrefix := time.Now().Format("2006-01")

	sum := dto.Summary{
		RevenueToday:     decimal.Zero,
		RevenueThisMonth: decimal.Zero,
	}
	for _, o := range s.store.ListOrders(nil) {
		if o.Status == model.OrderCancelled {
			continue
		}
		if o.OrderDate == today {
			sum.OrdersToday++
			sum.RevenueToday = sum.RevenueToday.Add(o.Total)
		}
		if strings.HasPrefix(o.OrderDate, monthPrefix) {
			sum.OrdersThisMonth++
			sum.RevenueThisMonth = sum.RevenueThisMonth.Add(o.Total)
		}
		if o.Status == model.OrderPending {
			sum.PendingOrders++
		}
	}
	for _, r := range s.store.ListInventory(nil) {
		switch {
		case r.Quantity == 0:
			sum.OutOfStock++
		case r.Quantity <= r.ReorderLevel:
			sum.LowStock++
		}
	}
	for _, d := range s.store.ListDeliveries(nil) {
		switch d.Status {
		case model.DeliveryPending, model.DeliveryAssigned, model.DeliveryInTransit:
			sum.ActiveDeliveries++
		}
	}
	return sum
}

// RevenueSeries buckets order revenue per calendar day over a trailing
// window. Buckets with no real orders get a deterministic synthetic value so
// charts never render empty.
func (s *DashboardService) RevenueSeries(days int) []dto.SeriesPoint {
	if days <= 0 {
		days = 7
	}
	buckets := make(map[string]decimal.Decimal, days)
	for _, o := range s.store.ListOrders(nil) {
		if o.Status == model.OrderCancelled {
			continue
		}
		buckets[o.OrderDate] = buckets[o.OrderDate].Add(o.Total)
	}

	out := make([]dto.SeriesPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := dateOf(i)
		if v, ok := buckets[date]; ok && !v.IsZero() {
			out = append(out, dto.SeriesPoint{Date: date, Value: v})
			continue
		}
		out = append(out, dto.SeriesPoint{Date: date, Value: syntheticRevenue(date), Synthetic: true})
	}
	return out
}

// DeliverySeries buckets delivery counts per calendar day over a trailing
// window, with the same synthetic fallback as RevenueSeries.
func (s *DashboardService) DeliverySeries(days int) []dto.SeriesPoint {
	if days <= 0 {
		days = 7
	}
	buckets := make(map[string]int, days)
	for _, d := range s.store.ListDeliveries(nil) {
		buckets[d.ScheduledDate]++
	}

	out := make([]dto.SeriesPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := dateOf(i)
		if n := buckets[date]; n > 0 {
			out = append(out, dto.SeriesPoint{Date: date, Value: decimal.NewFromInt(int64(n))})
			continue
		}
		out = append(out, dto.SeriesPoint{Date: date, Value: syntheticCount(date), Synthetic: true})
	}
	return out
}

// syntheticRevenue derives a plausible chart value from the bucket date so
// the fallback is stable across calls.
func syntheticRevenue(date string) decimal.Decimal {
	return decimal.NewFromInt(int64(150 + dateSeed(date)%300))
}

func syntheticCount(date string) decimal.Decimal {
	return decimal.NewFromInt(int64(1 + dateSeed(date)%5))
}

func dateSeed(date string) int {
	h := 0
	for _, c := range date {
		h = h*31 + int(c)
	}
	if h < 0 {
		h = -h
	}
	return h
}

// TopProducts ranks products by revenue across all order line items.
func (s *DashboardService) TopProducts(limit int) []dto.RankedEntry {
	revenue := make(map[string]decimal.Decimal)
	units := make(map[string]int)
	for _, o := range s.store.ListOrders(nil) {
		if o.Status == model.OrderCancelled {
			continue
		}
		for _, it := range o.Items {
			name := it.Product.Name
			revenue[name] = revenue[name].Add(it.Subtotal)
			units[name] += it.Quantity
		}
	}
	return rank(revenue, units, limit)
}

// TopClients ranks clients by revenue using the embedded order snapshots.
func (s *DashboardService) TopClients(limit int) []dto.RankedEntry {
	revenue := make(map[string]decimal.Decimal)
	orders := make(map[string]int)
	for _, o := range s.store.ListOrders(nil) {
		if o.Status == model.OrderCancelled {
			continue
		}
		revenue[o.Client.Name] = revenue[o.Client.Name].Add(o.Total)
		orders[o.Client.Name]++
	}
	return rank(revenue, orders, limit)
}

func rank(revenue map[string]decimal.Decimal, counts map[string]int, limit int) []dto.RankedEntry {
	if limit <= 0 {
		limit = 5
	}
	out := make([]dto.RankedEntry, 0, len(revenue))
	for name, rev := range revenue {
		out = append(out, dto.RankedEntry{Name: name, Revenue: rev, Count: counts[name]})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Revenue.Equal(out[j].Revenue) {
			return out[i].Revenue.GreaterThan(out[j].Revenue)
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CategoryDistribution groups order revenue by the line item's resolved
// category name.
func (s *DashboardService) CategoryDistribution() []dto.CategorySlice {
	totals := make(map[string]decimal.Decimal)
	for _, o := range s.store.ListOrders(nil) {
		if o.Status == model.OrderCancelled {
			continue
		}
		for _, it := range o.Items {
			name := "Uncategorized"
			if p := s.store.FindProduct(it.ProductID); p != nil {
				name = s.store.CategoryName(p.CategoryID)
			}
			totals[name] = totals[name].Add(it.Subtotal)
		}
	}
	return categorySlices(totals)
}

func categorySlices(totals map[string]decimal.Decimal) []dto.CategorySlice {
	out := make([]dto.CategorySlice, 0, len(totals))
	for name, v := range totals {
		out = append(out, dto.CategorySlice{Category: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Value.Equal(out[j].Value) {
			return out[i].Value.GreaterThan(out[j].Value)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// RecentActivity merges the latest orders and deliveries by date.
func (s *DashboardService) RecentActivity(limit int) []dto.ActivityEntry {
	if limit <= 0 {
		limit = 10
	}
	orders := s.store.ListOrders(nil)
	deliveries := s.store.ListDeliveries(nil)
	out := make([]dto.ActivityEntry, 0, len(orders)+len(deliveries))
	for _, o := range orders {
		out = append(out, dto.ActivityEntry{
			Type:      "order",
			Reference: o.Number,
			Date:      o.OrderDate,
			Detail:    fmt.Sprintf("%s — %s (%s)", o.Client.Name, o.Total.StringFixed(2), o.Status),
		})
	}
	for _, d := range deliveries {
		out = append(out, dto.ActivityEntry{
			Type:      "delivery",
			Reference: d.Number,
			Date:      d.ScheduledDate,
			Detail:    fmt.Sprintf("%s — %s", d.Driver, d.Status),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Reference > out[j].Reference
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// OrderPipeline counts orders per lifecycle stage, in lifecycle order.
func (s *DashboardService) OrderPipeline() []dto.PipelineStage {
	counts := make(map[string]int)
	for _, o := range s.store.ListOrders(nil) {
		counts[o.Status]++
	}
	stages := []string{
		model.OrderPending, model.OrderConfirmed, model.OrderProcessing,
		model.OrderShipped, model.OrderDelivered, model.OrderCancelled,
	}
	out := make([]dto.PipelineStage, 0, len(stages))
	for _, st := range stages {
		out = append(out, dto.PipelineStage{Status: st, Count: counts[st]})
	}
	return out
}

// DuplicateOrders flags same client, same total, same day.
func (s *DashboardService) DuplicateOrders() []dto.DuplicateAlert {
	groups := make(map[string][]model.Order)
	for _, o := range s.store.ListOrders(nil) {
		key := fmt.Sprintf("%d|%s|%s", o.Client.ClientID, o.OrderDate, o.Total.String())
		groups[key] = append(groups[key], o)
	}
	out := []dto.DuplicateAlert{}
	for _, orders := range groups {
		if len(orders) < 2 {
			continue
		}
		numbers := make([]string, 0, len(orders))
		for _, o := range orders {
			numbers = append(numbers, o.Number)
		}
		sort.Strings(numbers)
		out = append(out, dto.DuplicateAlert{
			ClientName:   orders[0].Client.Name,
			Date:         orders[0].OrderDate,
			Total:        orders[0].Total,
			OrderNumbers: numbers,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderNumbers[0] < out[j].OrderNumbers[0] })
	return out
}

// DeliveryTracking is the live snapshot of not-yet-terminal deliveries.
func (s *DashboardService) DeliveryTracking() []dto.TrackingEntry {
	out := []dto.TrackingEntry{}
	for _, d := range s.store.ListDeliveries(nil) {
		switch d.Status {
		case model.DeliveryPending, model.DeliveryAssigned, model.DeliveryInTransit:
			out = append(out, dto.TrackingEntry{
				Number:        d.Number,
				OrderID:       d.OrderID,
				Status:        d.Status,
				Driver:        d.Driver,
				ScheduledDate: d.ScheduledDate,
			})
		}
	}
	return out
}
