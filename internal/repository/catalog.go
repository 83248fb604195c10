package repository

import "depot/internal/model"

// ── Categories ───────────────────────────────────────────────────────────────

func (s *Store) CreateCategory(fields map[string]any) model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := model.Category{}
	patch(&c, fields)
	c.ID = s.nextID(model.ColCategories)
	s.graph.Categories = append(s.graph.Categories, c)
	s.persist()
	return c
}

func (s *Store) UpdateCategory(id int, fields map[string]any) *model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.graph.Categories {
		if s.graph.Categories[i].ID == id {
			patch(&s.graph.Categories[i], fields)
			s.graph.Categories[i].ID = id
			s.persist()
			c := s.graph.Categories[i]
			return &c
		}
	}
	return nil
}

// RemoveCategory deletes the first category with a matching id. Products
// referencing it keep their dangling category id — no cascade.
func (s *Store) RemoveCategory(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.graph.Categories {
		if s.graph.Categories[i].ID == id {
			s.graph.Categories = append(s.graph.Categories[:i], s.graph.Categories[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

func (s *Store) FindCategory(id int) *model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.graph.Categories {
		if c.ID == id {
			c := c
			return &c
		}
	}
	return nil
}

func (s *Store) ListCategories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Category, 0, len(s.graph.Categories))
	return append(out, s.graph.Categories...)
}

// CategoryName resolves an id for report grouping; unknown ids group under
// "Uncategorized" rather than failing.
func (s *Store) CategoryName(id int) string {
	if c := s.FindCategory(id); c != nil {
		return c.Name
	}
	return "Uncategorized"
}

// ── Products ─────────────────────────────────────────────────────────────────

func (s *Store) CreateProduct(fields map[string]any) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Product{Active: true}
	patch(&p, fields)
	p.ID = s.nextID(model.ColProducts)
	s.graph.Products = append(s.graph.Products, p)
	s.persist()
	return p
}

func (s *Store) UpdateProduct(id int, fields map[string]any) *model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.graph.Products {
		if s.graph.Products[i].ID == id {
			patch(&s.graph.Products[i], fields)
			s.graph.Products[i].ID = id
			s.persist()
			p := s.graph.Products[i]
			return &p
		}
	}
	return nil
}

func (s *Store) FindProduct(id int) *model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findProduct(id)
}

// findProduct is the lock-free lookup for create paths that already hold the
// write lock.
func (s *Store) findProduct(id int) *model.Product {
	for _, p := range s.graph.Products {
		if p.ID == id {
			p := p
			return &p
		}
	}
	return nil
}

func (s *Store) ListProducts(filter map[string]string) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Product, 0, len(s.graph.Products))
	for _, p := range s.graph.Products {
		if !wants(filter, "sku", p.SKU) {
			continue
		}
		if cid, ok := filter["category_id"]; ok && cid != "" && cid != itoa(p.CategoryID) {
			continue
		}
		out = append(out, p)
	}
	return out
}
