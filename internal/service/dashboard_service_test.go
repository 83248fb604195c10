package service

import (
	"testing"
	"time"

	"depot/internal/dto"
	"depot/internal/model"
	"depot/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(back int) string {
	return time.Now().AddDate(0, 0, -back).Format("2006-01-02")
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func order(id int, clientID int, clientName, date, status string, total string) model.Order {
	return model.Order{
		ID:        id,
		Number:    "ORD-" + date + "-" + status,
		Client:    model.ClientSnapshot{ClientID: clientID, Name: clientName},
		Status:    status,
		Total:     dec(total),
		OrderDate: date,
	}
}

func dashOver(g *model.Graph) *DashboardService {
	return NewDashboardService(repository.NewFromGraph(g, nil))
}

func TestSummaryHeadlineKPIs(t *testing.T) {
	g := &model.Graph{
		Orders: []model.Order{
			order(1, 1, "Acme", day(0), model.OrderPending, "100"),
			order(2, 1, "Acme", day(0), model.OrderDelivered, "40"),
			order(3, 2, "Besto", day(0), model.OrderCancelled, "500"), // excluded everywhere
		},
		Inventory: []model.InventoryRecord{
			{ID: 1, Quantity: 0, ReorderLevel: 10},  // out of stock
			{ID: 2, Quantity: 3, ReorderLevel: 10},  // low
			{ID: 3, Quantity: 80, ReorderLevel: 10}, // healthy
		},
		Deliveries: []model.Delivery{
			{ID: 1, Status: model.DeliveryInTransit},
			{ID: 2, Status: model.DeliveryDelivered},
			{ID: 3, Status: model.DeliveryPending},
		},
	}
	sum := dashOver(g).Summary()

	assert.Equal(t, 2, sum.OrdersToday)
	assert.True(t, sum.RevenueToday.Equal(dec("140")), "got %s", sum.RevenueToday)
	assert.Equal(t, 2, sum.OrdersThisMonth)
	assert.True(t, sum.RevenueThisMonth.Equal(dec("140")))
	assert.Equal(t, 1, sum.PendingOrders)
	assert.Equal(t, 1, sum.LowStock)
	assert.Equal(t, 1, sum.OutOfStock)
	assert.Equal(t, 2, sum.ActiveDeliveries)
}

func TestRevenueSeriesMixesRealAndSynthetic(t *testing.T) {
	g := &model.Graph{Orders: []model.Order{
		order(1, 1, "Acme", day(0), model.OrderDelivered, "500"),
		order(2, 1, "Acme", day(0), model.OrderDelivered, "250"),
	}}
	svc := dashOver(g)

	series := svc.RevenueSeries(3)
	require.Len(t, series, 3)

	// Oldest bucket first, today last.
	assert.Equal(t, day(2), series[0].Date)
	assert.Equal(t, day(0), series[2].Date)

	assert.False(t, series[2].Synthetic)
	assert.True(t, series[2].Value.Equal(dec("750")))

	for _, pt := range series[:2] {
		assert.True(t, pt.Synthetic)
		assert.True(t, pt.Value.GreaterThanOrEqual(dec("150")))
		assert.True(t, pt.Value.LessThan(dec("450")))
	}

	// Synthetic values are a function of the date, stable across calls.
	again := svc.RevenueSeries(3)
	assert.Equal(t, series, again)
}

func TestDeliverySeriesCountsPerDay(t *testing.T) {
	g := &model.Graph{Deliveries: []model.Delivery{
		{ID: 1, ScheduledDate: day(0), Status: model.DeliveryPending},
		{ID: 2, ScheduledDate: day(0), Status: model.DeliveryDelivered},
	}}
	series := dashOver(g).DeliverySeries(2)
	require.Len(t, series, 2)
	assert.True(t, series[0].Synthetic)
	assert.False(t, series[1].Synthetic)
	assert.True(t, series[1].Value.Equal(dec("2")))
}

func TestTopProductsRanksByRevenue(t *testing.T) {
	item := func(name string, qty int, subtotal string) model.OrderItem {
		return model.OrderItem{
			Product:  model.ProductSnapshot{Name: name},
			Quantity: qty,
			Subtotal: dec(subtotal),
		}
	}
	g := &model.Graph{Orders: []model.Order{
		{ID: 1, Status: model.OrderDelivered, Items: []model.OrderItem{
			item("Cola", 10, "100"), item("Chips", 2, "30"),
		}},
		{ID: 2, Status: model.OrderDelivered, Items: []model.OrderItem{
			item("Cola", 5, "50"), item("Rice", 1, "60"),
		}},
		{ID: 3, Status: model.OrderCancelled, Items: []model.OrderItem{
			item("Chips", 99, "9999"), // cancelled orders never count
		}},
	}}

	top := dashOver(g).TopProducts(2)
	require.Len(t, top, 2)
	assert.Equal(t, "Cola", top[0].Name)
	assert.True(t, top[0].Revenue.Equal(dec("150")))
	assert.Equal(t, 15, top[0].Count)
	assert.Equal(t, "Rice", top[1].Name)
}

func TestTopClientsTiebreakIsAlphabetical(t *testing.T) {
	g := &model.Graph{Orders: []model.Order{
		order(1, 1, "Zenith", day(0), model.OrderDelivered, "100"),
		order(2, 2, "Apex", day(0), model.OrderDelivered, "100"),
	}}
	top := dashOver(g).TopClients(5)
	require.Len(t, top, 2)
	assert.Equal(t, "Apex", top[0].Name)
	assert.Equal(t, "Zenith", top[1].Name)
}

func TestOrderPipelineFixedStageOrder(t *testing.T) {
	g := &model.Graph{Orders: []model.Order{
		order(1, 1, "Acme", day(0), model.OrderPending, "1"),
		order(2, 1, "Acme", day(0), model.OrderPending, "1"),
		order(3, 1, "Acme", day(0), model.OrderShipped, "1"),
	}}
	stages := dashOver(g).OrderPipeline()
	require.Len(t, stages, 6)

	want := []dto.PipelineStage{
		{Status: "pending", Count: 2},
		{Status: "confirmed", Count: 0},
		{Status: "processing", Count: 0},
		{Status: "shipped", Count: 1},
		{Status: "delivered", Count: 0},
		{Status: "cancelled", Count: 0},
	}
	assert.Equal(t, want, stages)
}

func TestDuplicateOrdersDetection(t *testing.T) {
	g := &model.Graph{Orders: []model.Order{
		{ID: 1, Number: "ORD-0001", Client: model.ClientSnapshot{ClientID: 1, Name: "Acme"}, OrderDate: day(0), Total: dec("200")},
		{ID: 2, Number: "ORD-0002", Client: model.ClientSnapshot{ClientID: 1, Name: "Acme"}, OrderDate: day(0), Total: dec("200")},
		{ID: 3, Number: "ORD-0003", Client: model.ClientSnapshot{ClientID: 1, Name: "Acme"}, OrderDate: day(0), Total: dec("201")},
		{ID: 4, Number: "ORD-0004", Client: model.ClientSnapshot{ClientID: 2, Name: "Besto"}, OrderDate: day(0), Total: dec("200")},
	}}
	alerts := dashOver(g).DuplicateOrders()
	require.Len(t, alerts, 1)
	assert.Equal(t, "Acme", alerts[0].ClientName)
	assert.Equal(t, []string{"ORD-0001", "ORD-0002"}, alerts[0].OrderNumbers)
}

func TestDeliveryTrackingSkipsTerminalStatuses(t *testing.T) {
	g := &model.Graph{Deliveries: []model.Delivery{
		{ID: 1, Number: "DLV-0001", Status: model.DeliveryPending, Driver: "A"},
		{ID: 2, Number: "DLV-0002", Status: model.DeliveryDelivered, Driver: "A"},
		{ID: 3, Number: "DLV-0003", Status: model.DeliveryFailed, Driver: "B"},
		{ID: 4, Number: "DLV-0004", Status: model.DeliveryInTransit, Driver: "B"},
	}}
	tracking := dashOver(g).DeliveryTracking()
	require.Len(t, tracking, 2)
	assert.Equal(t, "DLV-0001", tracking[0].Number)
	assert.Equal(t, "DLV-0004", tracking[1].Number)
}

func TestRecentActivityMergesAndLimits(t *testing.T) {
	g := &model.Graph{
		Orders: []model.Order{
			{ID: 1, Number: "ORD-0001", Client: model.ClientSnapshot{Name: "Acme"}, OrderDate: day(2), Total: dec("10")},
			{ID: 2, Number: "ORD-0002", Client: model.ClientSnapshot{Name: "Acme"}, OrderDate: day(0), Total: dec("10")},
		},
		Deliveries: []model.Delivery{
			{ID: 1, Number: "DLV-0001", ScheduledDate: day(1), Driver: "A", Status: model.DeliveryPending},
		},
	}
	feed := dashOver(g).RecentActivity(2)
	require.Len(t, feed, 2)
	assert.Equal(t, "ORD-0002", feed[0].Reference, "newest first")
	assert.Equal(t, "DLV-0001", feed[1].Reference)
}
