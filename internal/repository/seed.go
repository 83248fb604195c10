package repository

import (
	"depot/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Seed builds the initial demo graph used when no trusted snapshot exists.
// Order and delivery dates are relative to the current day so the dashboard
// always has "today" and "this month" activity to aggregate.
func Seed() *model.Graph {
	g := &model.Graph{
		Warehouses: []model.Warehouse{
			{ID: "WH-01", Name: "Central Warehouse", Address: "1200 Industrial Ave", Capacity: 5000, Active: true},
			{ID: "WH-02", Name: "North Depot", Address: "45 Harbor Rd", Capacity: 2200, Active: true},
		},
		Categories: []model.Category{
			{ID: 1, Name: "Beverages", Description: "Drinks and juices"},
			{ID: 2, Name: "Soft Drinks", Description: "Carbonated beverages", ParentID: intPtr(1)},
			{ID: 3, Name: "Snacks", Description: "Packaged snacks"},
			{ID: 4, Name: "Dairy", Description: "Milk and derivatives"},
			{ID: 5, Name: "Cleaning", Description: "Household cleaning supplies"},
		},
		Products: []model.Product{
			{ID: 1, SKU: "BEV-0001", Name: "Orange Juice 1L", CategoryID: 1, Cost: d("1.20"), UnitPrice: d("2.50"), ReorderLevel: 40, Active: true},
			{ID: 2, SKU: "BEV-0002", Name: "Cola 2L", CategoryID: 2, Cost: d("0.90"), UnitPrice: d("1.80"), ReorderLevel: 60, Active: true},
			{ID: 3, SKU: "SNK-0001", Name: "Potato Chips 150g", CategoryID: 3, Cost: d("0.70"), UnitPrice: d("1.50"), ReorderLevel: 80, Active: true},
			{ID: 4, SKU: "SNK-0002", Name: "Salted Peanuts 250g", CategoryID: 3, Cost: d("1.10"), UnitPrice: d("2.20"), ReorderLevel: 50, Active: true},
			{ID: 5, SKU: "DRY-0001", Name: "Whole Milk 1L", CategoryID: 4, Cost: d("0.80"), UnitPrice: d("1.40"), ReorderLevel: 100, Active: true},
			{ID: 6, SKU: "DRY-0002", Name: "Cheddar Cheese 500g", CategoryID: 4, Cost: d("3.40"), UnitPrice: d("5.90"), ReorderLevel: 25, Active: true},
			{ID: 7, SKU: "CLN-0001", Name: "Bleach 1L", CategoryID: 5, Cost: d("0.60"), UnitPrice: d("1.30"), ReorderLevel: 30, Active: true},
			{ID: 8, SKU: "CLN-0002", Name: "Dish Soap 750ml", CategoryID: 5, Cost: d("0.95"), UnitPrice: d("1.95"), ReorderLevel: 30, Active: true},
		},
		Clients: []model.Client{
			{ID: 1, Name: "Martinez Grocery", PricingTier: "gold", CreditLimit: d("15000"), Balance: d("3200")},
			{ID: 2, Name: "Corner Market 24", PricingTier: "standard", CreditLimit: d("5000"), Balance: d("750")},
			{ID: 3, Name: "SuperMax Retail", PricingTier: "platinum", CreditLimit: d("40000"), Balance: d("12800")},
			{ID: 4, Name: "La Esquina Minimart", PricingTier: "silver", CreditLimit: d("8000"), Balance: d("1100")},
			{ID: 5, Name: "Riverside Kiosk", PricingTier: "standard", CreditLimit: d("3000"), Balance: d("0")},
		},
		Suppliers: []model.Supplier{
			{ID: 1, Name: "Andes Beverages SA", Contact: "ventas@andesbev.example", PaymentTerms: "net-30"},
			{ID: 2, Name: "Snackline Distributors", Contact: "orders@snackline.example", PaymentTerms: "net-15"},
			{ID: 3, Name: "CleanPro Supplies", Contact: "sales@cleanpro.example", PaymentTerms: "net-45"},
		},
		Counters: map[string]int{
			model.ColWarehouses:        3,
			model.ColCategories:        6,
			model.ColProducts:          9,
			model.ColClients:           6,
			model.ColSuppliers:         4,
			model.ColOrders:            5,
			model.ColPurchaseOrders:    3,
			model.ColInventory:         10,
			model.ColDeliveries:        4,
			model.ColDistributionPlans: 2,
			model.ColUsers:             4,
		},
	}

	g.Users = []model.User{
		seedUser("USR-001", "Ana Torres", "admin", "ana@depot.example", "admin", "WH-01", "admin123"),
		seedUser("USR-002", "Miguel Gonzalez", "mgonzalez", "miguel@depot.example", "manager", "WH-01", "manager123"),
		seedUser("USR-003", "Carlos Mendez", "cmendez", "carlos@depot.example", "driver", "WH-02", "driver123"),
	}

	clients := g.Clients
	products := g.Products
	g.Orders = []model.Order{
		seedOrder(1, clients[0], today(), model.OrderConfirmed,
			seedItem(products[0], 20), seedItem(products[2], 30)),
		seedOrder(2, clients[2], today(), model.OrderPending,
			seedItem(products[1], 50), seedItem(products[4], 40)),
		seedOrder(3, clients[1], daysAgo(3), model.OrderShipped,
			seedItem(products[3], 15)),
		seedOrder(4, clients[3], daysAgo(12), model.OrderDelivered,
			seedItem(products[5], 10), seedItem(products[7], 12)),
	}

	g.Inventory = []model.InventoryRecord{
		{ID: 1, ProductID: 1, WarehouseID: "WH-01", Quantity: 320, Reserved: 40, ReorderLevel: 40, UnitCost: d("1.20")},
		{ID: 2, ProductID: 2, WarehouseID: "WH-01", Quantity: 45, Reserved: 10, ReorderLevel: 60, UnitCost: d("0.90")},
		{ID: 3, ProductID: 3, WarehouseID: "WH-01", Quantity: 510, Reserved: 60, ReorderLevel: 80, UnitCost: d("0.70")},
		{ID: 4, ProductID: 4, WarehouseID: "WH-02", Quantity: 130, Reserved: 0, ReorderLevel: 50, UnitCost: d("1.10")},
		{ID: 5, ProductID: 5, WarehouseID: "WH-01", Quantity: 0, Reserved: 0, ReorderLevel: 100, UnitCost: d("0.80")},
		{ID: 6, ProductID: 6, WarehouseID: "WH-02", Quantity: 75, Reserved: 5, ReorderLevel: 25, UnitCost: d("3.40")},
		{ID: 7, ProductID: 7, WarehouseID: "WH-01", Quantity: 210, Reserved: 0, ReorderLevel: 30, UnitCost: d("0.60")},
		{ID: 8, ProductID: 8, WarehouseID: "WH-02", Quantity: 95, Reserved: 12, ReorderLevel: 30, UnitCost: d("0.95")},
		{ID: 9, ProductID: 1, WarehouseID: "WH-02", Quantity: 60, Reserved: 0, ReorderLevel: 20, UnitCost: d("1.20")},
	}

	g.Deliveries = []model.Delivery{
		{ID: 1, Number: "DLV-0001", OrderID: 4, Status: model.DeliveryDelivered, ScheduledDate: daysAgo(11), Driver: "Carlos Mendez", Address: "88 Market St"},
		{ID: 2, Number: "DLV-0002", OrderID: 3, Status: model.DeliveryInTransit, ScheduledDate: today(), Driver: "Carlos Mendez", Address: "24 Hill Ave"},
		{ID: 3, Number: "DLV-0003", OrderID: 1, Status: model.DeliveryPending, ScheduledDate: daysAgo(-1), Driver: "Lucia Fernandez", Address: "301 River Rd"},
	}

	g.PurchaseOrders = []model.PurchaseOrder{
		seedPurchaseOrder(1, g.Suppliers[0], daysAgo(9), model.PurchaseReceived,
			seedPOItem(products[0], 200), seedPOItem(products[1], 300)),
		seedPurchaseOrder(2, g.Suppliers[1], daysAgo(2), model.PurchasePending,
			seedPOItem(products[2], 400)),
	}

	g.DistributionPlans = []model.DistributionPlan{
		{
			ID: 1, Number: "DP-0001", Status: model.PlanExecuting,
			OrderIDs:   []int{1, 2},
			TotalValue: g.Orders[0].Total.Add(g.Orders[1].Total),
			OrderCount: 2,
			PlanDate:   today(),
		},
	}

	return g
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func intPtr(n int) *int { return &n }

func seedUser(id, name, username, email, role, warehouseID, password string) model.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Warn().Err(err).Str("user", username).Msg("seed: hash password failed")
	}
	return model.User{
		ID: id, Name: name, Username: username, Email: email,
		Role: role, WarehouseID: warehouseID, Active: true,
		PasswordHash: string(hash),
	}
}

func seedItem(p model.Product, qty int) model.OrderItem {
	return model.OrderItem{
		ProductID: p.ID,
		Product:   model.ProductSnapshot{ProductID: p.ID, SKU: p.SKU, Name: p.Name, UnitPrice: p.UnitPrice},
		Quantity:  qty,
		UnitPrice: p.UnitPrice,
		Subtotal:  p.UnitPrice.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func seedOrder(id int, c model.Client, date, status string, items ...model.OrderItem) model.Order {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return model.Order{
		ID:     id,
		Number: orderNumber(id),
		Client: model.ClientSnapshot{
			ClientID: c.ID, Name: c.Name, PricingTier: c.PricingTier, CreditLimit: c.CreditLimit,
		},
		Items:     items,
		Status:    status,
		Total:     total,
		OrderDate: date,
	}
}

func seedPOItem(p model.Product, qty int) model.PurchaseOrderItem {
	return model.PurchaseOrderItem{
		ProductID: p.ID,
		Product:   model.ProductSnapshot{ProductID: p.ID, SKU: p.SKU, Name: p.Name, UnitPrice: p.UnitPrice},
		Quantity:  qty,
		UnitCost:  p.Cost,
		Subtotal:  p.Cost.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func seedPurchaseOrder(id int, sp model.Supplier, date, status string, items ...model.PurchaseOrderItem) model.PurchaseOrder {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return model.PurchaseOrder{
		ID:     id,
		Number: poNumber(id),
		Supplier: model.SupplierSnapshot{
			SupplierID: sp.ID, Name: sp.Name, Contact: sp.Contact, PaymentTerms: sp.PaymentTerms,
		},
		Items:     items,
		Status:    status,
		Total:     total,
		OrderDate: date,
	}
}
