package service

import (
	"fmt"
	"sort"
	"time"

	"depot/internal/dto"
	"depot/internal/infra"
	"depot/internal/model"
	"depot/internal/repository"

	"github.com/shopspring/decimal"
)

// Fixed proportions used by the financial report: receivables/payables in
// place of per-entity aging, overhead as a flat cut of revenue. Changing
// these changes observable report output.
var (
	receivableRate = decimal.RequireFromString("0.15")
	payableRate    = decimal.RequireFromString("0.20")
	overheadRate   = decimal.RequireFromString("0.08")
)

// ReportService computes the four dashboard reports and renders export blobs.
type ReportService struct {
	store *repository.Store
}

func NewReportService(store *repository.Store) *ReportService {
	return &ReportService{store: store}
}

// Sales aggregates orders inside the filter's optional from/to date range.
// Average order value guards the zero-order case.
func (s *ReportService) Sales(filter map[string]string) dto.SalesReport {
	orders := s.store.ListOrders(filter)

	total := decimal.Zero
	count := 0
	byClient := make(map[string]decimal.Decimal)
	clientOrders := make(map[string]int)
	byCategory := make(map[string]decimal.Decimal)
	for _, o := range orders {
		if o.Status == model.OrderCancelled {
			continue
		}
		total = total.Add(o.Total)
		count++
		byClient[o.Client.Name] = byClient[o.Client.Name].Add(o.Total)
		clientOrders[o.Client.Name]++
		for _, it := range o.Items {
			name := "Uncategorized"
			if p := s.store.FindProduct(it.ProductID); p != nil {
				name = s.store.CategoryName(p.CategoryID)
			}
			byCategory[name] = byCategory[name].Add(it.Subtotal)
		}
	}

	avg := decimal.Zero
	if count > 0 {
		avg = total.Div(decimal.NewFromInt(int64(count))).Round(2)
	}

	report := dto.SalesReport{
		TotalSales:        total,
		OrderCount:        count,
		AverageOrderValue: avg,
		ByCategory:        categorySlices(byCategory),
		TopClients:        rank(byClient, clientOrders, 5),
	}
	if filter != nil {
		report.From = filter["from"]
		report.To = filter["to"]
	}
	return report
}

// Inventory values current stock at unit cost, grouped by category and by
// warehouse.
func (s *ReportService) Inventory() dto.InventoryReport {
	report := dto.InventoryReport{TotalValue: decimal.Zero}
	byCategory := make(map[string]decimal.Decimal)
	warehouseUnits := make(map[string]int)
	warehouseValue := make(map[string]decimal.Decimal)
	for _, r := range s.store.ListInventory(nil) {
		value := r.UnitCost.Mul(decimal.NewFromInt(int64(r.Quantity)))
		report.TotalUnits += r.Quantity
		report.TotalValue = report.TotalValue.Add(value)
		switch {
		case r.Quantity == 0:
			report.OutOfStock++
		case r.Quantity <= r.ReorderLevel:
			report.LowStock++
		}

		name := "Uncategorized"
		if p := s.store.FindProduct(r.ProductID); p != nil {
			name = s.store.CategoryName(p.CategoryID)
		}
		byCategory[name] = byCategory[name].Add(value)
		warehouseUnits[r.WarehouseID] += r.Quantity
		warehouseValue[r.WarehouseID] = warehouseValue[r.WarehouseID].Add(value)
	}
	report.ByCategory = categorySlices(byCategory)

	ids := make([]string, 0, len(warehouseUnits))
	for id := range warehouseUnits {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		report.ByWarehouse = append(report.ByWarehouse, dto.WarehouseStock{
			WarehouseID: id,
			Units:       warehouseUnits[id],
			Value:       warehouseValue[id],
		})
	}
	return report
}

// DeliveryPerformance summarises outcomes per driver.
func (s *ReportService) DeliveryPerformance() dto.DeliveryReport {
	report := dto.DeliveryReport{SuccessRatePct: decimal.Zero}
	perDriver := make(map[string]*dto.DriverPerformance)
	for _, d := range s.store.ListDeliveries(nil) {
		report.Total++
		dp := perDriver[d.Driver]
		if dp == nil {
			dp = &dto.DriverPerformance{Driver: d.Driver}
			perDriver[d.Driver] = dp
		}
		dp.Total++
		switch d.Status {
		case model.DeliveryDelivered:
			report.Delivered++
			dp.Delivered++
		case model.DeliveryFailed, model.DeliveryReturned:
			report.Failed++
			dp.Failed++
		}
	}
	if report.Total > 0 {
		report.SuccessRatePct = decimal.NewFromInt(int64(report.Delivered)).
			Div(decimal.NewFromInt(int64(report.Total))).
			Mul(decimal.NewFromInt(100)).Round(1)
	}

	for _, dp := range perDriver {
		report.ByDriver = append(report.ByDriver, *dp)
	}
	sort.Slice(report.ByDriver, func(i, j int) bool {
		if report.ByDriver[i].Delivered != report.ByDriver[j].Delivered {
			return report.ByDriver[i].Delivered > report.ByDriver[j].Delivered
		}
		return report.ByDriver[i].Driver < report.ByDriver[j].Driver
	})
	return report
}

// Financial derives revenue from orders and expenses from purchase orders.
// Receivables/payables are fixed proportions of the aggregates (see package
// vars), not per-entity aging.
func (s *ReportService) Financial() dto.FinancialReport {
	revenue := decimal.Zero
	for _, o := range s.store.ListOrders(nil) {
		if o.Status == model.OrderCancelled {
			continue
		}
		revenue = revenue.Add(o.Total)
	}
	expenses := decimal.Zero
	for _, po := range s.store.ListPurchaseOrders(nil) {
		if po.Status == model.PurchaseCancelled {
			continue
		}
		expenses = expenses.Add(po.Total)
	}

	gross := revenue.Sub(expenses)
	net := gross.Sub(revenue.Mul(overheadRate)).Round(2)

	grossMargin := decimal.Zero
	netMargin := decimal.Zero
	if revenue.IsPositive() {
		hundred := decimal.NewFromInt(100)
		grossMargin = gross.Div(revenue).Mul(hundred).Round(1)
		netMargin = net.Div(revenue).Mul(hundred).Round(1)
	}

	return dto.FinancialReport{
		Revenue:        revenue,
		Expenses:       expenses,
		GrossProfit:    gross,
		NetProfit:      net,
		GrossMarginPct: grossMargin,
		NetMarginPct:   netMargin,
		Receivables:    revenue.Mul(receivableRate).Round(2),
		Payables:       expenses.Mul(payableRate).Round(2),
	}
}

// Export renders a report as an opaque downloadable blob. "csv" renders CSV;
// every other format value renders PDF — the format is not validated against
// a real document generator.
func (s *ReportService) Export(format, reportType string) (dto.ExportFile, error) {
	title, headers, rows := s.tabulate(reportType)

	date := time.Now().Format("2006-01-02")
	if format == "csv" {
		content, err := infra.RenderReportCSV(headers, rows)
		if err != nil {
			return dto.ExportFile{}, err
		}
		return dto.ExportFile{
			Filename: fmt.Sprintf("%s-report-%s.csv", reportType, date),
			Content:  content,
		}, nil
	}

	content, err := infra.RenderReportPDF(title, headers, rows)
	if err != nil {
		return dto.ExportFile{}, err
	}
	return dto.ExportFile{
		Filename: fmt.Sprintf("%s-report-%s.pdf", reportType, date),
		Content:  content,
	}, nil
}

// tabulate flattens a report into title/headers/rows for the renderers.
// Unknown report types export an empty table rather than failing.
func (s *ReportService) tabulate(reportType string) (string, []string, [][]string) {
	switch reportType {
	case "sales":
		r := s.Sales(nil)
		rows := [][]string{
			{"Total sales", r.TotalSales.StringFixed(2)},
			{"Orders", itoa(r.OrderCount)},
			{"Average order value", r.AverageOrderValue.StringFixed(2)},
		}
		for _, c := range r.ByCategory {
			rows = append(rows, []string{"Category: " + c.Category, c.Value.StringFixed(2)})
		}
		return "Sales Report", []string{"Metric", "Value"}, rows
	case "inventory":
		r := s.Inventory()
		rows := [][]string{
			{"Total units", itoa(r.TotalUnits)},
			{"Total value", r.TotalValue.StringFixed(2)},
			{"Low stock", itoa(r.LowStock)},
			{"Out of stock", itoa(r.OutOfStock)},
		}
		for _, w := range r.ByWarehouse {
			rows = append(rows, []string{"Warehouse: " + w.WarehouseID, w.Value.StringFixed(2)})
		}
		return "Inventory Report", []string{"Metric", "Value"}, rows
	case "delivery-performance":
		r := s.DeliveryPerformance()
		rows := [][]string{}
		for _, dp := range r.ByDriver {
			rows = append(rows, []string{dp.Driver, itoa(dp.Delivered), itoa(dp.Failed), itoa(dp.Total)})
		}
		return "Delivery Performance", []string{"Driver", "Delivered", "Failed", "Total"}, rows
	case "financial":
		r := s.Financial()
		rows := [][]string{
			{"Revenue", r.Revenue.StringFixed(2)},
			{"Expenses", r.Expenses.StringFixed(2)},
			{"Gross profit", r.GrossProfit.StringFixed(2)},
			{"Net profit", r.NetProfit.StringFixed(2)},
			{"Receivables", r.Receivables.StringFixed(2)},
			{"Payables", r.Payables.StringFixed(2)},
		}
		return "Financial Report", []string{"Metric", "Value"}, rows
	}
	return "Report", []string{}, nil
}

func itoa(n int) string { return fmt.Sprintf("%d", n) }
