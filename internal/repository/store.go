// Package repository holds the in-memory entity collections behind the data
// service. A Store owns the whole entity graph plus one next-identifier
// counter per collection; every mutation rewrites the full graph into the
// durable snapshot slot. The store is an explicit dependency — it is built at
// the composition root and injected into the dispatcher, never a package
// singleton.
package repository

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"depot/internal/infra"
	"depot/internal/model"
)

// Store is the in-memory database. Mutations hold the write lock, lookups and
// listings hold the read lock: the original runs on one cooperative thread,
// Go callers may not.
type Store struct {
	mu    sync.RWMutex
	slots *infra.SlotStore
	graph *model.Graph
}

// New builds a Store from the persisted graph slot when one is present and
// trusted, falling back to the seed fixtures otherwise. slots may be nil for
// a memory-only store (tests).
func New(slots *infra.SlotStore) *Store {
	g := &model.Graph{}
	if slots == nil || !slots.Load(infra.SlotGraph, g) {
		g = Seed()
	}
	if g.Counters == nil {
		g.Counters = make(map[string]int)
	}
	return &Store{slots: slots, graph: g}
}

// NewFromGraph builds a store around an existing graph, bypassing both the
// snapshot slot and the seed fixtures. Counters missing from the graph start
// at 1, so callers providing pre-populated collections should provide
// counters too.
func NewFromGraph(g *model.Graph, slots *infra.SlotStore) *Store {
	if g.Counters == nil {
		g.Counters = make(map[string]int)
	}
	return &Store{slots: slots, graph: g}
}

// persist writes the entire graph to the snapshot slot. The result is
// swallowed: a failed write leaves the session running memory-only.
func (s *Store) persist() {
	if s.slots != nil {
		_ = s.slots.Save(infra.SlotGraph, s.graph)
	}
}

// nextID allocates the next identifier for a collection. Counters are part of
// the graph so they survive restarts and stay monotonic per collection.
func (s *Store) nextID(col string) int {
	n := s.graph.Counters[col]
	if n == 0 {
		n = 1
	}
	s.graph.Counters[col] = n + 1
	return n
}

// patch shallow-merges caller fields over the record, JSON-style: every
// provided key replaces the field it maps to, everything else is untouched.
// Type mismatches are ignored silently — business-rule validation is a
// presentation concern.
func patch[T any](rec *T, fields map[string]any) {
	if len(fields) == 0 {
		return
	}
	base, err := json.Marshal(rec)
	if err != nil {
		return
	}
	var m map[string]any
	if err := json.Unmarshal(base, &m); err != nil {
		return
	}
	for k, v := range fields {
		m[k] = v
	}
	merged, err := json.Marshal(m)
	if err != nil {
		return
	}
	// Unmarshal fills every well-typed field even when one key mismatches.
	_ = json.Unmarshal(merged, rec)
}

// intField reads an integer out of a loosely typed field map (JSON numbers
// arrive as float64).
func intField(fields map[string]any, key string) (int, bool) {
	switch v := fields[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

func stringField(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key].(string)
	return v, ok
}

func itoa(n int) string { return strconv.Itoa(n) }

// Document number formats shared by create paths and seed fixtures.
func orderNumber(id int) string { return fmt.Sprintf("ORD-%04d", id) }
func poNumber(id int) string    { return fmt.Sprintf("PO-%04d", id) }

// today is the default date stamped onto created records.
func today() string { return time.Now().Format("2006-01-02") }

func daysAgo(n int) string { return time.Now().AddDate(0, 0, -n).Format("2006-01-02") }

// wants reports whether a filter narrows on key and, if so, whether value
// passes. Absent filter keys match everything; unknown keys are ignored by
// the callers entirely.
func wants(filter map[string]string, key, value string) bool {
	if filter == nil {
		return true
	}
	want, ok := filter[key]
	if !ok || want == "" {
		return true
	}
	return want == value
}

// inDateRange applies optional from/to bounds (inclusive, YYYY-MM-DD —
// lexicographic comparison is date order).
func inDateRange(filter map[string]string, date string) bool {
	if filter == nil {
		return true
	}
	if from := filter["from"]; from != "" && date < from {
		return false
	}
	if to := filter["to"]; to != "" && date > to {
		return false
	}
	return true
}
