package infra

// snapshot.go — durable slot storage for the data service.
// Every mutation persists the entire entity graph into one namespaced slot;
// two more slots hold the auth token and the sanitized user profile. Slots are
// plain JSON files under a shared prefix so the whole namespace can be
// enumerated and wiped as a unit. The store knows nothing about what the
// documents mean.

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

// Well-known slot names.
const (
	SlotGraph = "store"
	SlotToken = "token"
	SlotUser  = "user"
)

// SlotStore reads and writes versioned documents in namespaced slots.
// A stored document whose schema version differs from the running version is
// untrusted: the whole namespace is wiped and the caller falls back to its
// default. There is no field-level migration.
type SlotStore struct {
	dir     string
	prefix  string
	version string
}

func NewSlotStore(dir, prefix, version string) *SlotStore {
	return &SlotStore{dir: dir, prefix: prefix, version: version}
}

type envelope struct {
	Version string          `json:"version"`
	SavedAt time.Time       `json:"saved_at"`
	Data    json.RawMessage `json:"data"`
}

// Save serializes doc into the slot. Failures (quota, permissions, marshal)
// are reported as false and logged — never raised. The in-memory state and the
// durable snapshot are allowed to diverge silently.
func (s *SlotStore) Save(slot string, doc any) bool {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Warn().Err(err).Str("slot", slot).Msg("snapshot: create data dir failed")
		return false
	}
	data, err := json.Marshal(doc)
	if err != nil {
		log.Warn().Err(err).Str("slot", slot).Msg("snapshot: marshal failed")
		return false
	}
	env, err := json.Marshal(envelope{Version: s.version, SavedAt: time.Now(), Data: data})
	if err != nil {
		log.Warn().Err(err).Str("slot", slot).Msg("snapshot: marshal envelope failed")
		return false
	}

	// Temp file + rename so a crash mid-write cannot corrupt the slot.
	target := s.path(slot)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, env, 0o644); err != nil {
		log.Warn().Err(err).Str("slot", slot).Msg("snapshot: write failed")
		return false
	}
	if err := os.Rename(tmp, target); err != nil {
		log.Warn().Err(err).Str("slot", slot).Msg("snapshot: rename failed")
		return false
	}
	return true
}

// Load reads the slot into out. Returns false when the slot is absent,
// corrupt, or carries a different schema version; a version mismatch also
// wipes every slot in the namespace. The caller keeps its default document.
func (s *SlotStore) Load(slot string, out any) bool {
	raw, err := os.ReadFile(s.path(slot))
	if err != nil {
		return false
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Warn().Err(err).Str("slot", slot).Msg("snapshot: corrupt slot, ignoring")
		return false
	}
	if env.Version != s.version {
		log.Info().
			Str("stored", env.Version).
			Str("running", s.version).
			Msg("snapshot: schema version mismatch, wiping namespace")
		s.Wipe()
		return false
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		log.Warn().Err(err).Str("slot", slot).Msg("snapshot: corrupt document, ignoring")
		return false
	}
	return true
}

// Delete removes a single slot. Missing slots are fine.
func (s *SlotStore) Delete(slot string) {
	_ = os.Remove(s.path(slot))
}

// Wipe removes every slot carrying the namespace prefix.
func (s *SlotStore) Wipe() {
	matches, err := filepath.Glob(filepath.Join(s.dir, s.prefix+"*"))
	if err != nil {
		return
	}
	for _, m := range matches {
		_ = os.Remove(m)
	}
}

func (s *SlotStore) path(slot string) string {
	return filepath.Join(s.dir, s.prefix+slot+".json")
}
