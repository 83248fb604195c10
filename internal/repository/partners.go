package repository

import "depot/internal/model"

// ── Clients ──────────────────────────────────────────────────────────────────

func (s *Store) CreateClient(fields map[string]any) model.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := model.Client{PricingTier: "standard"}
	patch(&c, fields)
	c.ID = s.nextID(model.ColClients)
	s.graph.Clients = append(s.graph.Clients, c)
	s.persist()
	return c
}

func (s *Store) UpdateClient(id int, fields map[string]any) *model.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.graph.Clients {
		if s.graph.Clients[i].ID == id {
			patch(&s.graph.Clients[i], fields)
			s.graph.Clients[i].ID = id
			s.persist()
			c := s.graph.Clients[i]
			return &c
		}
	}
	return nil
}

func (s *Store) FindClient(id int) *model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findClient(id)
}

func (s *Store) findClient(id int) *model.Client {
	for _, c := range s.graph.Clients {
		if c.ID == id {
			c := c
			return &c
		}
	}
	return nil
}

func (s *Store) ListClients(filter map[string]string) []model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Client, 0, len(s.graph.Clients))
	for _, c := range s.graph.Clients {
		if !wants(filter, "pricing_tier", c.PricingTier) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ── Suppliers ────────────────────────────────────────────────────────────────

func (s *Store) CreateSupplier(fields map[string]any) model.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp := model.Supplier{PaymentTerms: "net-30"}
	patch(&sp, fields)
	sp.ID = s.nextID(model.ColSuppliers)
	s.graph.Suppliers = append(s.graph.Suppliers, sp)
	s.persist()
	return sp
}

func (s *Store) UpdateSupplier(id int, fields map[string]any) *model.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.graph.Suppliers {
		if s.graph.Suppliers[i].ID == id {
			patch(&s.graph.Suppliers[i], fields)
			s.graph.Suppliers[i].ID = id
			s.persist()
			sp := s.graph.Suppliers[i]
			return &sp
		}
	}
	return nil
}

func (s *Store) FindSupplier(id int) *model.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findSupplier(id)
}

func (s *Store) findSupplier(id int) *model.Supplier {
	for _, sp := range s.graph.Suppliers {
		if sp.ID == id {
			sp := sp
			return &sp
		}
	}
	return nil
}

func (s *Store) ListSuppliers() []model.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Supplier, 0, len(s.graph.Suppliers))
	return append(out, s.graph.Suppliers...)
}
