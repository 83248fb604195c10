package repository

import (
	"sync"
	"testing"

	"depot/internal/infra"
	"depot/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore returns a seeded, memory-only store.
func memStore() *Store { return New(nil) }

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	s := memStore()

	var clientIDs, productIDs []int
	// Interleave two collections: each keeps its own strictly increasing
	// sequence.
	for i := 0; i < 5; i++ {
		c := s.CreateClient(map[string]any{"name": "c"})
		p := s.CreateProduct(map[string]any{"name": "p"})
		clientIDs = append(clientIDs, c.ID)
		productIDs = append(productIDs, p.ID)
	}

	for i := 1; i < 5; i++ {
		assert.Equal(t, clientIDs[i-1]+1, clientIDs[i])
		assert.Equal(t, productIDs[i-1]+1, productIDs[i])
	}
}

func TestCreateOrderComputesTotalAndEmbedsSnapshot(t *testing.T) {
	s := memStore()
	client := s.CreateClient(map[string]any{"name": "Acme Retail", "credit_limit": 10000})

	order := s.CreateOrder(map[string]any{
		"client_id": client.ID,
		"items": []any{
			map[string]any{"product_id": 1, "quantity": 2, "unit_price": 50},
			map[string]any{"product_id": 2, "quantity": 1, "unit_price": 100},
		},
	})

	assert.True(t, order.Total.Equal(decimal.NewFromInt(200)), "total = Σ(qty×unit price), got %s", order.Total)
	assert.Equal(t, client.ID, order.Client.ClientID)
	assert.True(t, order.Client.CreditLimit.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, model.OrderPending, order.Status)
	assert.NotEmpty(t, order.Number)
	assert.NotEmpty(t, order.OrderDate)
}

func TestOrderSnapshotSurvivesClientEdit(t *testing.T) {
	s := memStore()
	client := s.CreateClient(map[string]any{"name": "Acme Retail", "credit_limit": 10000})
	order := s.CreateOrder(map[string]any{"client_id": client.ID})

	updated := s.UpdateClient(client.ID, map[string]any{"name": "Renamed Corp", "credit_limit": 99})
	require.NotNil(t, updated)
	assert.Equal(t, "Renamed Corp", updated.Name)

	// The embedded snapshot is a point-in-time copy, not a live join.
	stored := s.FindOrder(order.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "Acme Retail", stored.Client.Name)
	assert.True(t, stored.Client.CreditLimit.Equal(decimal.NewFromInt(10000)))
}

func TestUpdateMergesPartialFields(t *testing.T) {
	s := memStore()
	p := s.CreateProduct(map[string]any{"name": "Widget", "sku": "W-1", "reorder_level": 5})

	got := s.UpdateProduct(p.ID, map[string]any{"reorder_level": 20})
	require.NotNil(t, got)
	assert.Equal(t, 20, got.ReorderLevel)
	assert.Equal(t, "Widget", got.Name, "untouched fields survive the merge")
	assert.Equal(t, p.ID, got.ID)
}

func TestUpdateUnknownIDReturnsNil(t *testing.T) {
	s := memStore()
	assert.Nil(t, s.UpdateOrder(99999, map[string]any{"status": "shipped"}))
	assert.Nil(t, s.UpdateClient(99999, map[string]any{"name": "x"}))
}

func TestRemoveCategoryLeavesDanglingReferences(t *testing.T) {
	s := memStore()
	cat := s.CreateCategory(map[string]any{"name": "Doomed"})
	p := s.CreateProduct(map[string]any{"name": "Orphan", "category_id": cat.ID})

	require.True(t, s.RemoveCategory(cat.ID))
	assert.False(t, s.RemoveCategory(cat.ID), "second remove finds nothing")

	// No cascade: the product keeps its now-dangling category id and report
	// grouping falls back to Uncategorized.
	stored := s.FindProduct(p.ID)
	require.NotNil(t, stored)
	assert.Equal(t, cat.ID, stored.CategoryID)
	assert.Equal(t, "Uncategorized", s.CategoryName(cat.ID))
}

func TestRemoveUser(t *testing.T) {
	s := memStore()
	u := s.CreateUser(map[string]any{"name": "Temp", "username": "temp"})
	require.True(t, s.RemoveUser(u.ID))
	assert.Nil(t, s.FindUser(u.ID))
}

func TestStringIdentifierCollections(t *testing.T) {
	s := memStore()
	w := s.CreateWarehouse(map[string]any{"name": "South Depot"})
	u := s.CreateUser(map[string]any{"name": "New Driver", "username": "nd"})

	assert.Regexp(t, `^WH-\d{2}$`, w.ID)
	assert.Regexp(t, `^USR-\d{3}$`, u.ID)
	require.NotNil(t, s.FindWarehouse(w.ID))
	require.NotNil(t, s.FindUser(u.ID))
}

func TestReceivePurchaseOrderAddsStock(t *testing.T) {
	s := memStore()
	before := 0
	for _, r := range s.ListInventory(map[string]string{"product_id": "1"}) {
		before += r.Quantity
	}

	po := s.CreatePurchaseOrder(map[string]any{
		"supplier_id": 1,
		"items":       []any{map[string]any{"product_id": 1, "quantity": 50}},
	})
	got := s.ReceivePurchaseOrder(po.ID)
	require.NotNil(t, got)
	assert.Equal(t, model.PurchaseReceived, got.Status)

	after := 0
	for _, r := range s.ListInventory(map[string]string{"product_id": "1"}) {
		after += r.Quantity
	}
	assert.Equal(t, before+50, after)
}

func TestReceiveUnknownPurchaseOrder(t *testing.T) {
	s := memStore()
	assert.Nil(t, s.ReceivePurchaseOrder(424242))
}

func TestListOrdersFilters(t *testing.T) {
	s := memStore()
	s.CreateOrder(map[string]any{"client_id": 1, "status": "shipped"})

	for _, o := range s.ListOrders(map[string]string{"status": "shipped"}) {
		assert.Equal(t, "shipped", o.Status)
	}
	// Unrecognized filter keys are ignored, not rejected.
	all := s.ListOrders(nil)
	assert.Equal(t, len(all), len(s.ListOrders(map[string]string{"bogus": "x"})))
	// Impossible date range matches nothing.
	assert.Empty(t, s.ListOrders(map[string]string{"from": "2999-01-01"}))
}

func TestPersistAndReloadAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	slots := infra.NewSlotStore(dir, "depot_", model.SchemaVersion)

	s := New(slots)
	created := s.CreateOrder(map[string]any{
		"client_id": 1,
		"items":     []any{map[string]any{"product_id": 1, "quantity": 3, "unit_price": 10}},
	})
	wantOrders := len(s.ListOrders(nil))

	// Same schema version: the reloaded graph matches exactly.
	reloaded := New(infra.NewSlotStore(dir, "depot_", model.SchemaVersion))
	assert.Equal(t, wantOrders, len(reloaded.ListOrders(nil)))
	stored := reloaded.FindOrder(created.ID)
	require.NotNil(t, stored)
	assert.True(t, stored.Total.Equal(created.Total))
	assert.Equal(t, created.Client, stored.Client)
}

func TestSchemaBumpResetsToSeed(t *testing.T) {
	dir := t.TempDir()
	s := New(infra.NewSlotStore(dir, "depot_", "3"))
	created := s.CreateOrder(map[string]any{"client_id": 1})

	// Bumped schema version: stored data is discarded and the seed graph
	// comes back, with no residue from the old session.
	fresh := New(infra.NewSlotStore(dir, "depot_", "4"))
	assert.Nil(t, fresh.FindOrder(created.ID))
	assert.Equal(t, len(Seed().Orders), len(fresh.ListOrders(nil)))
}

func TestConcurrentReadsDuringWrites(t *testing.T) {
	s := memStore()
	before := len(s.ListOrders(nil))

	// Dispatchers may run on separate goroutines; readers and the writer
	// must not race on the graph.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.CreateOrder(map[string]any{"client_id": 1})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.ListOrders(nil)
			s.FindOrder(1)
			s.FindClient(1)
		}
	}()
	wg.Wait()

	assert.Equal(t, before+200, len(s.ListOrders(nil)))
}

func TestCountersSurviveRestart(t *testing.T) {
	dir := t.TempDir()
	slots := infra.NewSlotStore(dir, "depot_", model.SchemaVersion)

	first := New(slots).CreateClient(map[string]any{"name": "a"})
	second := New(infra.NewSlotStore(dir, "depot_", model.SchemaVersion)).
		CreateClient(map[string]any{"name": "b"})
	assert.Equal(t, first.ID+1, second.ID)
}
