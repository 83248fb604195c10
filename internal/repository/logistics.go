package repository

import (
	"fmt"

	"depot/internal/model"

	"github.com/shopspring/decimal"
)

// ── Deliveries ───────────────────────────────────────────────────────────────

func (s *Store) CreateDelivery(fields map[string]any) model.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := model.Delivery{Status: model.DeliveryPending, ScheduledDate: today()}
	patch(&d, fields)
	d.ID = s.nextID(model.ColDeliveries)
	if d.Number == "" {
		d.Number = fmt.Sprintf("DLV-%04d", d.ID)
	}
	s.graph.Deliveries = append(s.graph.Deliveries, d)
	s.persist()
	return d
}

func (s *Store) UpdateDelivery(id int, fields map[string]any) *model.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.graph.Deliveries {
		if s.graph.Deliveries[i].ID == id {
			patch(&s.graph.Deliveries[i], fields)
			s.graph.Deliveries[i].ID = id
			s.persist()
			d := s.graph.Deliveries[i]
			return &d
		}
	}
	return nil
}

func (s *Store) FindDelivery(id int) *model.Delivery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.graph.Deliveries {
		if d.ID == id {
			d := d
			return &d
		}
	}
	return nil
}

func (s *Store) ListDeliveries(filter map[string]string) []model.Delivery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Delivery, 0, len(s.graph.Deliveries))
	for _, d := range s.graph.Deliveries {
		if !wants(filter, "status", d.Status) {
			continue
		}
		if !wants(filter, "driver", d.Driver) {
			continue
		}
		if !inDateRange(filter, d.ScheduledDate) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// ── Distribution plans ───────────────────────────────────────────────────────

// CreateDistributionPlan derives total value and order count from the
// referenced orders (live references — plans aggregate, they do not snapshot).
func (s *Store) CreateDistributionPlan(fields map[string]any) model.DistributionPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.DistributionPlan{Status: model.PlanDraft, PlanDate: today()}
	patch(&p, fields)
	p.ID = s.nextID(model.ColDistributionPlans)
	if p.Number == "" {
		p.Number = fmt.Sprintf("DP-%04d", p.ID)
	}

	total := decimal.Zero
	for _, oid := range p.OrderIDs {
		if o := s.findOrder(oid); o != nil {
			total = total.Add(o.Total)
		}
	}
	p.TotalValue = total
	p.OrderCount = len(p.OrderIDs)

	s.graph.DistributionPlans = append(s.graph.DistributionPlans, p)
	s.persist()
	return p
}

func (s *Store) UpdateDistributionPlan(id int, fields map[string]any) *model.DistributionPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.graph.DistributionPlans {
		if s.graph.DistributionPlans[i].ID == id {
			patch(&s.graph.DistributionPlans[i], fields)
			s.graph.DistributionPlans[i].ID = id
			s.persist()
			p := s.graph.DistributionPlans[i]
			return &p
		}
	}
	return nil
}

func (s *Store) FindDistributionPlan(id int) *model.DistributionPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.graph.DistributionPlans {
		if p.ID == id {
			p := p
			return &p
		}
	}
	return nil
}

func (s *Store) ListDistributionPlans(filter map[string]string) []model.DistributionPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.DistributionPlan, 0, len(s.graph.DistributionPlans))
	for _, p := range s.graph.DistributionPlans {
		if !wants(filter, "status", p.Status) {
			continue
		}
		out = append(out, p)
	}
	return out
}
