package infra

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	slots := NewSlotStore(dir, "depot_", "3")

	saved := testDoc{Name: "orders", Count: 42}
	require.True(t, slots.Save(SlotGraph, saved))

	// Fresh SlotStore simulates a process restart.
	reopened := NewSlotStore(dir, "depot_", "3")
	var loaded testDoc
	require.True(t, reopened.Load(SlotGraph, &loaded))
	assert.Equal(t, saved, loaded)
}

func TestLoadMissingSlot(t *testing.T) {
	slots := NewSlotStore(t.TempDir(), "depot_", "3")

	var out testDoc
	assert.False(t, slots.Load(SlotGraph, &out))
	assert.Zero(t, out)
}

func TestLoadCorruptSlot(t *testing.T) {
	dir := t.TempDir()
	slots := NewSlotStore(dir, "depot_", "3")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "depot_store.json"), []byte("{not json"), 0o644))

	var out testDoc
	assert.False(t, slots.Load(SlotGraph, &out))
}

func TestVersionMismatchWipesNamespace(t *testing.T) {
	dir := t.TempDir()
	old := NewSlotStore(dir, "depot_", "2")
	require.True(t, old.Save(SlotGraph, testDoc{Name: "stale"}))
	require.True(t, old.Save(SlotToken, "depot-token-abc"))

	// New process runs schema version 3: the stored data is untrusted and the
	// whole namespace must be gone afterwards.
	current := NewSlotStore(dir, "depot_", "3")
	var out testDoc
	assert.False(t, current.Load(SlotGraph, &out))

	leftovers, err := filepath.Glob(filepath.Join(dir, "depot_*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestWipeRemovesOnlyPrefixedSlots(t *testing.T) {
	dir := t.TempDir()
	slots := NewSlotStore(dir, "depot_", "3")
	require.True(t, slots.Save(SlotGraph, testDoc{}))
	unrelated := filepath.Join(dir, "other.json")
	require.NoError(t, os.WriteFile(unrelated, []byte("{}"), 0o644))

	slots.Wipe()

	_, err := os.Stat(unrelated)
	assert.NoError(t, err)
	matches, _ := filepath.Glob(filepath.Join(dir, "depot_*"))
	assert.Empty(t, matches)
}

func TestSaveFailureReturnsFalse(t *testing.T) {
	// A file where the data dir should be makes MkdirAll fail.
	dir := t.TempDir()
	blocked := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(blocked, []byte(""), 0o644))

	slots := NewSlotStore(blocked, "depot_", "3")
	assert.False(t, slots.Save(SlotGraph, testDoc{}))
}
