package service

import (
	"strings"
	"testing"

	"depot/internal/model"
	"depot/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportsOver(g *model.Graph) *ReportService {
	return NewReportService(repository.NewFromGraph(g, nil))
}

func TestFinancialReportArithmetic(t *testing.T) {
	g := &model.Graph{
		Orders: []model.Order{
			order(1, 1, "Acme", day(0), model.OrderDelivered, "600"),
			order(2, 1, "Acme", day(0), model.OrderPending, "400"),
			order(3, 2, "Besto", day(0), model.OrderCancelled, "9999"),
		},
		PurchaseOrders: []model.PurchaseOrder{
			{ID: 1, Status: model.PurchaseReceived, Total: dec("400")},
			{ID: 2, Status: model.PurchaseCancelled, Total: dec("7777")},
		},
	}
	r := reportsOver(g).Financial()

	assert.True(t, r.Revenue.Equal(dec("1000")), "got %s", r.Revenue)
	assert.True(t, r.Expenses.Equal(dec("400")))
	assert.True(t, r.GrossProfit.Equal(dec("600")))
	// Net deducts a flat 8% of revenue from gross: 600 − 80 = 520.
	assert.True(t, r.NetProfit.Equal(dec("520")), "got %s", r.NetProfit)
	assert.True(t, r.GrossMarginPct.Equal(dec("60")), "got %s", r.GrossMarginPct)
	assert.True(t, r.NetMarginPct.Equal(dec("52")))
	// Fixed proportions: 15% of revenue, 20% of expenses.
	assert.True(t, r.Receivables.Equal(dec("150")))
	assert.True(t, r.Payables.Equal(dec("80")))
}

func TestFinancialReportEmptyGraph(t *testing.T) {
	r := reportsOver(&model.Graph{}).Financial()
	assert.True(t, r.Revenue.IsZero())
	assert.True(t, r.GrossMarginPct.IsZero(), "margin guards division by zero")
	assert.True(t, r.NetMarginPct.IsZero())
}

func TestSalesReportAveragesAndGuards(t *testing.T) {
	g := &model.Graph{Orders: []model.Order{
		order(1, 1, "Acme", day(0), model.OrderDelivered, "100"),
		order(2, 1, "Acme", day(0), model.OrderDelivered, "50"),
		order(3, 2, "Besto", day(0), model.OrderCancelled, "500"),
	}}
	r := reportsOver(g).Sales(nil)

	assert.Equal(t, 2, r.OrderCount)
	assert.True(t, r.TotalSales.Equal(dec("150")))
	assert.True(t, r.AverageOrderValue.Equal(dec("75")))
	require.NotEmpty(t, r.TopClients)
	assert.Equal(t, "Acme", r.TopClients[0].Name)

	// No orders at all: totals and average stay at zero.
	empty := reportsOver(&model.Graph{}).Sales(nil)
	assert.Equal(t, 0, empty.OrderCount)
	assert.True(t, empty.AverageOrderValue.IsZero())
}

func TestSalesReportDateRangeFilter(t *testing.T) {
	g := &model.Graph{Orders: []model.Order{
		order(1, 1, "Acme", day(0), model.OrderDelivered, "100"),
		order(2, 1, "Acme", day(10), model.OrderDelivered, "50"),
	}}
	r := reportsOver(g).Sales(map[string]string{"from": day(5)})
	assert.Equal(t, 1, r.OrderCount)
	assert.True(t, r.TotalSales.Equal(dec("100")))
	assert.Equal(t, day(5), r.From)
}

func TestInventoryReportValuesAtCost(t *testing.T) {
	g := &model.Graph{
		Inventory: []model.InventoryRecord{
			{ID: 1, ProductID: 1, WarehouseID: "WH-01", Quantity: 10, ReorderLevel: 5, UnitCost: dec("2.50")},
			{ID: 2, ProductID: 2, WarehouseID: "WH-02", Quantity: 0, ReorderLevel: 5, UnitCost: dec("4")},
			{ID: 3, ProductID: 1, WarehouseID: "WH-02", Quantity: 3, ReorderLevel: 5, UnitCost: dec("2.50")},
		},
	}
	r := reportsOver(g).Inventory()

	assert.Equal(t, 13, r.TotalUnits)
	assert.True(t, r.TotalValue.Equal(dec("32.5")), "got %s", r.TotalValue)
	assert.Equal(t, 1, r.OutOfStock)
	assert.Equal(t, 1, r.LowStock)

	require.Len(t, r.ByWarehouse, 2)
	assert.Equal(t, "WH-01", r.ByWarehouse[0].WarehouseID)
	assert.Equal(t, 10, r.ByWarehouse[0].Units)
	assert.True(t, r.ByWarehouse[1].Value.Equal(dec("7.5")))
}

func TestDeliveryPerformancePerDriver(t *testing.T) {
	g := &model.Graph{Deliveries: []model.Delivery{
		{ID: 1, Driver: "Ana", Status: model.DeliveryDelivered},
		{ID: 2, Driver: "Ana", Status: model.DeliveryDelivered},
		{ID: 3, Driver: "Ana", Status: model.DeliveryFailed},
		{ID: 4, Driver: "Beto", Status: model.DeliveryDelivered},
		{ID: 5, Driver: "Beto", Status: model.DeliveryPending},
	}}
	r := reportsOver(g).DeliveryPerformance()

	assert.Equal(t, 5, r.Total)
	assert.Equal(t, 3, r.Delivered)
	assert.Equal(t, 1, r.Failed)
	assert.True(t, r.SuccessRatePct.Equal(dec("60")), "got %s", r.SuccessRatePct)

	require.Len(t, r.ByDriver, 2)
	assert.Equal(t, "Ana", r.ByDriver[0].Driver)
	assert.Equal(t, 2, r.ByDriver[0].Delivered)
	assert.Equal(t, 1, r.ByDriver[0].Failed)
}

func TestExportProducesNamedBlobs(t *testing.T) {
	svc := NewReportService(repository.New(nil))

	csv, err := svc.Export("csv", "financial")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(csv.Filename, "financial-report-"))
	assert.True(t, strings.HasSuffix(csv.Filename, ".csv"))
	assert.Contains(t, string(csv.Content), "Revenue")

	pdf, err := svc.Export("pdf", "sales")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(pdf.Filename, ".pdf"))
	assert.True(t, len(pdf.Content) > 0)
	assert.Equal(t, "%PDF", string(pdf.Content[:4]))

	// Unknown report types still export: an empty table, not an error.
	blob, err := svc.Export("csv", "wat")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(blob.Filename, "wat-report-"))
}
