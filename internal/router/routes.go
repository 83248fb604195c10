package router

import (
	"depot/internal/dto"
	"depot/internal/model"
	"depot/internal/repository"
	"depot/internal/service"
)

// register builds the rule table. Order matters: aggregate and sub-resource
// rules come before the generic collection rules they would otherwise shadow
// (e.g. /clients/pricing-tiers before /clients/{id}).
func (d *Dispatcher) register(store *repository.Store, auth service.AuthService, dash *service.DashboardService, reports *service.ReportService) {
	// ── Auth ─────────────────────────────────────────────────────────────────
	d.add(Create, "/auth/login", func(p Params) (any, error) {
		req := dto.LoginRequest{}
		if v, ok := p.Body["username"].(string); ok {
			req.Username = v
		}
		if v, ok := p.Body["password"].(string); ok {
			req.Password = v
		}
		resp, err := auth.Login(req)
		if err != nil {
			return nil, err
		}
		return resp, nil
	})
	d.add(Read, "/auth/me", func(p Params) (any, error) {
		return orEmpty(auth.Me())
	})
	d.add(Create, "/auth/logout", func(p Params) (any, error) {
		auth.Logout()
		return Empty(), nil
	})

	// ── Dashboard ────────────────────────────────────────────────────────────
	d.add(Read, "/dashboard/summary", func(p Params) (any, error) {
		return dash.Summary(), nil
	})
	d.add(Read, "/dashboard/revenue-series", func(p Params) (any, error) {
		return dash.RevenueSeries(atoiDefault(p.Query["days"], 7)), nil
	})
	d.add(Read, "/dashboard/delivery-series", func(p Params) (any, error) {
		return dash.DeliverySeries(atoiDefault(p.Query["days"], 7)), nil
	})
	d.add(Read, "/dashboard/top-products", func(p Params) (any, error) {
		return dash.TopProducts(atoiDefault(p.Query["limit"], 5)), nil
	})
	d.add(Read, "/dashboard/top-clients", func(p Params) (any, error) {
		return dash.TopClients(atoiDefault(p.Query["limit"], 5)), nil
	})
	d.add(Read, "/dashboard/category-distribution", func(p Params) (any, error) {
		return dash.CategoryDistribution(), nil
	})
	d.add(Read, "/dashboard/recent-activity", func(p Params) (any, error) {
		return dash.RecentActivity(atoiDefault(p.Query["limit"], 10)), nil
	})
	d.add(Read, "/dashboard/order-pipeline", func(p Params) (any, error) {
		return dash.OrderPipeline(), nil
	})
	d.add(Read, "/dashboard/duplicate-orders", func(p Params) (any, error) {
		return dash.DuplicateOrders(), nil
	})
	d.add(Read, "/dashboard/delivery-tracking", func(p Params) (any, error) {
		return dash.DeliveryTracking(), nil
	})

	// ── Reports ──────────────────────────────────────────────────────────────
	d.add(Read, "/reports/export/{format}/{type}", func(p Params) (any, error) {
		blob, err := reports.Export(p.Captures["format"], p.Captures["type"])
		if err != nil {
			// Render failures degrade to the empty result like any other
			// non-auth anomaly.
			return Empty(), nil
		}
		return blob, nil
	})
	d.add(Read, "/reports/sales", func(p Params) (any, error) {
		return reports.Sales(p.Query), nil
	})
	d.add(Read, "/reports/inventory", func(p Params) (any, error) {
		return reports.Inventory(), nil
	})
	d.add(Read, "/reports/delivery-performance", func(p Params) (any, error) {
		return reports.DeliveryPerformance(), nil
	})
	d.add(Read, "/reports/financial", func(p Params) (any, error) {
		return reports.Financial(), nil
	})

	// ── Clients — pricing tiers must precede the generic rules ───────────────
	d.add(Read, "/clients/pricing-tiers", func(p Params) (any, error) {
		return model.PricingTiers, nil
	})
	d.add(Read, "/clients/{id}", func(p Params) (any, error) {
		return orEmpty(store.FindClient(p.IntID()))
	})
	d.add(Read, "/clients", func(p Params) (any, error) {
		return store.ListClients(p.Query), nil
	})
	d.add(Create, "/clients", func(p Params) (any, error) {
		return store.CreateClient(p.Body), nil
	})
	d.add(Update, "/clients/{id}", func(p Params) (any, error) {
		return orEmpty(store.UpdateClient(p.IntID(), p.Body))
	})

	// ── Orders ───────────────────────────────────────────────────────────────
	d.add(Update, "/orders/{id}/status", func(p Params) (any, error) {
		return orEmpty(store.UpdateOrder(p.IntID(), map[string]any{"status": p.Body["status"]}))
	})
	d.add(Read, "/orders/{id}", func(p Params) (any, error) {
		return orEmpty(store.FindOrder(p.IntID()))
	})
	d.add(Read, "/orders", func(p Params) (any, error) {
		return store.ListOrders(p.Query), nil
	})
	d.add(Create, "/orders", func(p Params) (any, error) {
		return store.CreateOrder(p.Body), nil
	})
	d.add(Update, "/orders/{id}", func(p Params) (any, error) {
		return orEmpty(store.UpdateOrder(p.IntID(), p.Body))
	})

	// ── Purchase orders ──────────────────────────────────────────────────────
	d.add(Update, "/purchase-orders/{id}/receive", func(p Params) (any, error) {
		return orEmpty(store.ReceivePurchaseOrder(p.IntID()))
	})
	d.add(Read, "/purchase-orders/{id}", func(p Params) (any, error) {
		return orEmpty(store.FindPurchaseOrder(p.IntID()))
	})
	d.add(Read, "/purchase-orders", func(p Params) (any, error) {
		return store.ListPurchaseOrders(p.Query), nil
	})
	d.add(Create, "/purchase-orders", func(p Params) (any, error) {
		return store.CreatePurchaseOrder(p.Body), nil
	})
	d.add(Update, "/purchase-orders/{id}", func(p Params) (any, error) {
		return orEmpty(store.UpdatePurchaseOrder(p.IntID(), p.Body))
	})

	// ── Catalog ──────────────────────────────────────────────────────────────
	d.add(Read, "/products/{id}", func(p Params) (any, error) {
		return orEmpty(store.FindProduct(p.IntID()))
	})
	d.add(Read, "/products", func(p Params) (any, error) {
		return store.ListProducts(p.Query), nil
	})
	d.add(Create, "/products", func(p Params) (any, error) {
		return store.CreateProduct(p.Body), nil
	})
	d.add(Update, "/products/{id}", func(p Params) (any, error) {
		return orEmpty(store.UpdateProduct(p.IntID(), p.Body))
	})

	d.add(Read, "/categories/{id}", func(p Params) (any, error) {
		return orEmpty(store.FindCategory(p.IntID()))
	})
	d.add(Read, "/categories", func(p Params) (any, error) {
		return store.ListCategories(), nil
	})
	d.add(Create, "/categories", func(p Params) (any, error) {
		return store.CreateCategory(p.Body), nil
	})
	d.add(Update, "/categories/{id}", func(p Params) (any, error) {
		return orEmpty(store.UpdateCategory(p.IntID(), p.Body))
	})
	d.add(Delete, "/categories/{id}", func(p Params) (any, error) {
		return map[string]any{"deleted": store.RemoveCategory(p.IntID())}, nil
	})

	// ── Suppliers ────────────────────────────────────────────────────────────
	d.add(Read, "/suppliers/{id}", func(p Params) (any, error) {
		return orEmpty(store.FindSupplier(p.IntID()))
	})
	d.add(Read, "/suppliers", func(p Params) (any, error) {
		return store.ListSuppliers(), nil
	})
	d.add(Create, "/suppliers", func(p Params) (any, error) {
		return store.CreateSupplier(p.Body), nil
	})
	d.add(Update, "/suppliers/{id}", func(p Params) (any, error) {
		return orEmpty(store.UpdateSupplier(p.IntID(), p.Body))
	})

	// ── Warehouses & inventory (string warehouse ids pass through) ───────────
	d.add(Read, "/warehouses/{id}", func(p Params) (any, error) {
		return orEmpty(store.FindWarehouse(p.ID()))
	})
	d.add(Read, "/warehouses", func(p Params) (any, error) {
		return store.ListWarehouses(), nil
	})
	d.add(Create, "/warehouses", func(p Params) (any, error) {
		return store.CreateWarehouse(p.Body), nil
	})
	d.add(Update, "/warehouses/{id}", func(p Params) (any, error) {
		return orEmpty(store.UpdateWarehouse(p.ID(), p.Body))
	})

	d.add(Read, "/inventory/{id}", func(p Params) (any, error) {
		return orEmpty(store.FindInventoryRecord(p.IntID()))
	})
	d.add(Read, "/inventory", func(p Params) (any, error) {
		return store.ListInventory(p.Query), nil
	})
	d.add(Create, "/inventory", func(p Params) (any, error) {
		return store.CreateInventoryRecord(p.Body), nil
	})
	d.add(Update, "/inventory/{id}", func(p Params) (any, error) {
		return orEmpty(store.UpdateInventoryRecord(p.IntID(), p.Body))
	})

	// ── Deliveries ───────────────────────────────────────────────────────────
	d.add(Read, "/deliveries/{id}", func(p Params) (any, error) {
		return orEmpty(store.FindDelivery(p.IntID()))
	})
	d.add(Read, "/deliveries", func(p Params) (any, error) {
		return store.ListDeliveries(p.Query), nil
	})
	d.add(Create, "/deliveries", func(p Params) (any, error) {
		return store.CreateDelivery(p.Body), nil
	})
	d.add(Update, "/deliveries/{id}", func(p Params) (any, error) {
		return orEmpty(store.UpdateDelivery(p.IntID(), p.Body))
	})

	// ── Distribution plans ───────────────────────────────────────────────────
	d.add(Read, "/distribution-plans/{id}", func(p Params) (any, error) {
		return orEmpty(store.FindDistributionPlan(p.IntID()))
	})
	d.add(Read, "/distribution-plans", func(p Params) (any, error) {
		return store.ListDistributionPlans(p.Query), nil
	})
	d.add(Create, "/distribution-plans", func(p Params) (any, error) {
		return store.CreateDistributionPlan(p.Body), nil
	})
	d.add(Update, "/distribution-plans/{id}", func(p Params) (any, error) {
		return orEmpty(store.UpdateDistributionPlan(p.IntID(), p.Body))
	})

	// ── Users (string ids pass through) ──────────────────────────────────────
	d.add(Read, "/users/{id}", func(p Params) (any, error) {
		return orEmpty(store.FindUser(p.ID()))
	})
	d.add(Read, "/users", func(p Params) (any, error) {
		return store.ListUsers(p.Query), nil
	})
	d.add(Create, "/users", func(p Params) (any, error) {
		return store.CreateUser(p.Body), nil
	})
	d.add(Update, "/users/{id}", func(p Params) (any, error) {
		return orEmpty(store.UpdateUser(p.ID(), p.Body))
	})
	d.add(Delete, "/users/{id}", func(p Params) (any, error) {
		return map[string]any{"deleted": store.RemoveUser(p.ID())}, nil
	})
}
