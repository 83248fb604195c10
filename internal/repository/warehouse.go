package repository

import (
	"fmt"

	"depot/internal/model"
)

// ── Warehouses (string identifiers) ──────────────────────────────────────────

func (s *Store) CreateWarehouse(fields map[string]any) model.Warehouse {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := model.Warehouse{Active: true}
	patch(&w, fields)
	w.ID = fmt.Sprintf("WH-%02d", s.nextID(model.ColWarehouses))
	s.graph.Warehouses = append(s.graph.Warehouses, w)
	s.persist()
	return w
}

func (s *Store) UpdateWarehouse(id string, fields map[string]any) *model.Warehouse {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.graph.Warehouses {
		if s.graph.Warehouses[i].ID == id {
			patch(&s.graph.Warehouses[i], fields)
			s.graph.Warehouses[i].ID = id
			s.persist()
			w := s.graph.Warehouses[i]
			return &w
		}
	}
	return nil
}

func (s *Store) FindWarehouse(id string) *model.Warehouse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.graph.Warehouses {
		if w.ID == id {
			w := w
			return &w
		}
	}
	return nil
}

func (s *Store) ListWarehouses() []model.Warehouse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Warehouse, 0, len(s.graph.Warehouses))
	return append(out, s.graph.Warehouses...)
}

// ── Inventory records ────────────────────────────────────────────────────────

// CreateInventoryRecord does not check that (product, warehouse) is unique —
// duplicate records are an accepted gap.
func (s *Store) CreateInventoryRecord(fields map[string]any) model.InventoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := model.InventoryRecord{ReorderLevel: 10}
	patch(&r, fields)
	r.ID = s.nextID(model.ColInventory)
	s.graph.Inventory = append(s.graph.Inventory, r)
	s.persist()
	return r
}

func (s *Store) UpdateInventoryRecord(id int, fields map[string]any) *model.InventoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.graph.Inventory {
		if s.graph.Inventory[i].ID == id {
			patch(&s.graph.Inventory[i], fields)
			s.graph.Inventory[i].ID = id
			s.persist()
			r := s.graph.Inventory[i]
			return &r
		}
	}
	return nil
}

func (s *Store) FindInventoryRecord(id int) *model.InventoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.graph.Inventory {
		if r.ID == id {
			r := r
			return &r
		}
	}
	return nil
}

func (s *Store) ListInventory(filter map[string]string) []model.InventoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.InventoryRecord, 0, len(s.graph.Inventory))
	for _, r := range s.graph.Inventory {
		if !wants(filter, "warehouse_id", r.WarehouseID) {
			continue
		}
		if pid, ok := filter["product_id"]; ok && pid != "" && pid != itoa(r.ProductID) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// addStock adds received quantity to the first record matching the product,
// creating one in the first warehouse when none exists. Caller holds the lock.
func (s *Store) addStock(productID, qty int) {
	for i := range s.graph.Inventory {
		if s.graph.Inventory[i].ProductID == productID {
			s.graph.Inventory[i].Quantity += qty
			return
		}
	}
	warehouseID := ""
	if len(s.graph.Warehouses) > 0 {
		warehouseID = s.graph.Warehouses[0].ID
	}
	s.graph.Inventory = append(s.graph.Inventory, model.InventoryRecord{
		ID:          s.nextID(model.ColInventory),
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    qty,
	})
}
