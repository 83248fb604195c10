package model

// SchemaVersion tags persisted snapshots. Bumping it invalidates (wipes) any
// previously stored graph on load — there is no field-level migration.
const SchemaVersion = "3"

// Collection names, used as counter keys and route segments.
const (
	ColWarehouses        = "warehouses"
	ColCategories        = "categories"
	ColProducts          = "products"
	ColClients           = "clients"
	ColSuppliers         = "suppliers"
	ColOrders            = "orders"
	ColPurchaseOrders    = "purchase-orders"
	ColInventory         = "inventory"
	ColDeliveries        = "deliveries"
	ColDistributionPlans = "distribution-plans"
	ColUsers             = "users"
)

// Graph is the entire entity set as one serialisable document. Snapshot
// persistence treats it opaquely; the repository layer owns its semantics.
type Graph struct {
	Warehouses        []Warehouse        `json:"warehouses"`
	Categories        []Category         `json:"categories"`
	Products          []Product          `json:"products"`
	Clients           []Client           `json:"clients"`
	Suppliers         []Supplier         `json:"suppliers"`
	Orders            []Order            `json:"orders"`
	PurchaseOrders    []PurchaseOrder    `json:"purchase_orders"`
	Inventory         []InventoryRecord  `json:"inventory"`
	Deliveries        []Delivery         `json:"deliveries"`
	DistributionPlans []DistributionPlan `json:"distribution_plans"`
	Users             []User             `json:"users"`

	// Counters holds the next identifier per collection.
	Counters map[string]int `json:"counters"`
}
