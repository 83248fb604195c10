package repository

import (
	"fmt"

	"depot/internal/model"
)

// ── Users (string identifiers) ───────────────────────────────────────────────

func (s *Store) CreateUser(fields map[string]any) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := model.User{Role: "driver", Active: true}
	patch(&u, fields)
	u.ID = fmt.Sprintf("USR-%03d", s.nextID(model.ColUsers))
	s.graph.Users = append(s.graph.Users, u)
	s.persist()
	return u
}

func (s *Store) UpdateUser(id string, fields map[string]any) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.graph.Users {
		if s.graph.Users[i].ID == id {
			patch(&s.graph.Users[i], fields)
			s.graph.Users[i].ID = id
			s.persist()
			u := s.graph.Users[i]
			return &u
		}
	}
	return nil
}

// RemoveUser deletes the first user with a matching id. Deliveries keep their
// driver name — no cascade.
func (s *Store) RemoveUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.graph.Users {
		if s.graph.Users[i].ID == id {
			s.graph.Users = append(s.graph.Users[:i], s.graph.Users[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

func (s *Store) FindUser(id string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.graph.Users {
		if u.ID == id {
			u := u
			return &u
		}
	}
	return nil
}

// FindUserByUsername is a linear scan; duplicates resolve to the first match.
func (s *Store) FindUserByUsername(username string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.graph.Users {
		if u.Username == username {
			u := u
			return &u
		}
	}
	return nil
}

func (s *Store) ListUsers(filter map[string]string) []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, 0, len(s.graph.Users))
	for _, u := range s.graph.Users {
		if !wants(filter, "role", u.Role) {
			continue
		}
		if !wants(filter, "warehouse_id", u.WarehouseID) {
			continue
		}
		out = append(out, u)
	}
	return out
}
