package repository

import (
	"depot/internal/model"

	"github.com/shopspring/decimal"
)

// ── Orders ───────────────────────────────────────────────────────────────────

// CreateOrder allocates the next order id, embeds a point-in-time snapshot of
// the referenced client and of each line item's product, computes
// total = Σ(qty × unit price) and persists. Later edits to the client or the
// products never touch the stored order.
func (s *Store) CreateOrder(fields map[string]any) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := model.Order{Status: model.OrderPending, OrderDate: today()}
	patch(&o, fields)
	o.ID = s.nextID(model.ColOrders)
	if o.Number == "" {
		o.Number = orderNumber(o.ID)
	}

	if cid, ok := intField(fields, "client_id"); ok {
		if c := s.findClient(cid); c != nil {
			o.Client = model.ClientSnapshot{
				ClientID:    c.ID,
				Name:        c.Name,
				PricingTier: c.PricingTier,
				CreditLimit: c.CreditLimit,
			}
		}
	}

	total := decimal.Zero
	for i := range o.Items {
		it := &o.Items[i]
		if p := s.findProduct(it.ProductID); p != nil {
			it.Product = model.ProductSnapshot{
				ProductID: p.ID,
				SKU:       p.SKU,
				Name:      p.Name,
				UnitPrice: p.UnitPrice,
			}
			if it.UnitPrice.IsZero() {
				it.UnitPrice = p.UnitPrice
			}
		}
		it.Subtotal = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(it.Subtotal)
	}
	o.Total = total

	s.graph.Orders = append(s.graph.Orders, o)
	s.persist()
	return o
}

// UpdateOrder shallow-merges fields into the order. The embedded client and
// product snapshots are only replaced when the caller explicitly sends them —
// foreign keys are not re-resolved on update.
func (s *Store) UpdateOrder(id int, fields map[string]any) *model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.graph.Orders {
		if s.graph.Orders[i].ID == id {
			patch(&s.graph.Orders[i], fields)
			s.graph.Orders[i].ID = id
			s.persist()
			o := s.graph.Orders[i]
			return &o
		}
	}
	return nil
}

func (s *Store) FindOrder(id int) *model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findOrder(id)
}

func (s *Store) findOrder(id int) *model.Order {
	for _, o := range s.graph.Orders {
		if o.ID == id {
			o := o
			return &o
		}
	}
	return nil
}

func (s *Store) ListOrders(filter map[string]string) []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Order, 0, len(s.graph.Orders))
	for _, o := range s.graph.Orders {
		if !wants(filter, "status", o.Status) {
			continue
		}
		if cid, ok := filter["client_id"]; ok && cid != "" && cid != itoa(o.Client.ClientID) {
			continue
		}
		if !inDateRange(filter, o.OrderDate) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// ── Purchase orders ──────────────────────────────────────────────────────────

func (s *Store) CreatePurchaseOrder(fields map[string]any) model.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	po := model.PurchaseOrder{Status: model.PurchasePending, OrderDate: today()}
	patch(&po, fields)
	po.ID = s.nextID(model.ColPurchaseOrders)
	if po.Number == "" {
		po.Number = poNumber(po.ID)
	}

	if sid, ok := intField(fields, "supplier_id"); ok {
		if sp := s.findSupplier(sid); sp != nil {
			po.Supplier = model.SupplierSnapshot{
				SupplierID:   sp.ID,
				Name:         sp.Name,
				Contact:      sp.Contact,
				PaymentTerms: sp.PaymentTerms,
			}
		}
	}

	total := decimal.Zero
	for i := range po.Items {
		it := &po.Items[i]
		if p := s.findProduct(it.ProductID); p != nil {
			it.Product = model.ProductSnapshot{
				ProductID: p.ID,
				SKU:       p.SKU,
				Name:      p.Name,
				UnitPrice: p.UnitPrice,
			}
			if it.UnitCost.IsZero() {
				it.UnitCost = p.Cost
			}
		}
		it.Subtotal = it.UnitCost.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(it.Subtotal)
	}
	po.Total = total

	s.graph.PurchaseOrders = append(s.graph.PurchaseOrders, po)
	s.persist()
	return po
}

func (s *Store) UpdatePurchaseOrder(id int, fields map[string]any) *model.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.graph.PurchaseOrders {
		if s.graph.PurchaseOrders[i].ID == id {
			patch(&s.graph.PurchaseOrders[i], fields)
			s.graph.PurchaseOrders[i].ID = id
			s.persist()
			po := s.graph.PurchaseOrders[i]
			return &po
		}
	}
	return nil
}

func (s *Store) FindPurchaseOrder(id int) *model.PurchaseOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, po := range s.graph.PurchaseOrders {
		if po.ID == id {
			po := po
			return &po
		}
	}
	return nil
}

func (s *Store) ListPurchaseOrders(filter map[string]string) []model.PurchaseOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.PurchaseOrder, 0, len(s.graph.PurchaseOrders))
	for _, po := range s.graph.PurchaseOrders {
		if !wants(filter, "status", po.Status) {
			continue
		}
		if !inDateRange(filter, po.OrderDate) {
			continue
		}
		out = append(out, po)
	}
	return out
}

// ReceivePurchaseOrder marks the order received and adds each line quantity
// into inventory. The two steps are separate mutations with separate persists
// — there is no transaction boundary, so a failure in between leaves partial
// state.
func (s *Store) ReceivePurchaseOrder(id int) *model.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	var po *model.PurchaseOrder
	for i := range s.graph.PurchaseOrders {
		if s.graph.PurchaseOrders[i].ID == id {
			s.graph.PurchaseOrders[i].Status = model.PurchaseReceived
			po = &s.graph.PurchaseOrders[i]
			break
		}
	}
	if po == nil {
		return nil
	}
	s.persist()

	for _, it := range po.Items {
		s.addStock(it.ProductID, it.Quantity)
		s.persist()
	}

	out := *po
	return &out
}
