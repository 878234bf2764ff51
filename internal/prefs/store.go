package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/courtside-labs/courtside/internal/model"
)

// Store persists one preference blob per user. The scorer and allocator
// only ever see model.Preferences, so they run the same against Redis, the
// in-memory store, or preferences passed straight in a request body.
type Store interface {
	Load(ctx context.Context, userID int) (model.Preferences, error)
	Save(ctx context.Context, userID int, p model.Preferences) error
}

// KV is the slice of the key-value client the Redis-backed store needs.
type KV interface {
	GetBytes(ctx context.Context, key string) ([]byte, error)
	SetBytes(ctx context.Context, key string, value []byte, expiration time.Duration) error
}

// KVStore keeps preference blobs in a key-value store, one JSON document
// per user under preferences:<id>. Blobs never expire.
type KVStore struct {
	kv KV
}

func NewKVStore(kv KV) *KVStore {
	return &KVStore{kv: kv}
}

func prefsKey(userID int) string {
	return fmt.Sprintf("preferences:%d", userID)
}

// Load returns the stored blob, or defaults when the user has none yet.
func (s *KVStore) Load(ctx context.Context, userID int) (model.Preferences, error) {
	raw, err := s.kv.GetBytes(ctx, prefsKey(userID))
	if err != nil {
		return model.Preferences{}, fmt.Errorf("prefs: load: %w", err)
	}
	if len(raw) == 0 {
		return model.DefaultPreferences(), nil
	}

	var p model.Preferences
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.Preferences{}, fmt.Errorf("prefs: decode: %w", err)
	}
	return p, nil
}

func (s *KVStore) Save(ctx context.Context, userID int, p model.Preferences) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := s.kv.SetBytes(ctx, prefsKey(userID), raw, 0); err != nil {
		return fmt.Errorf("prefs: save: %w", err)
	}
	return nil
}

// MemoryStore holds preferences in a map; used in tests and when no Redis
// is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[int]model.Preferences
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[int]model.Preferences)}
}

func (s *MemoryStore) Load(_ context.Context, userID int) (model.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.data[userID]; ok {
		return p, nil
	}
	return model.DefaultPreferences(), nil
}

func (s *MemoryStore) Save(_ context.Context, userID int, p model.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = p
	return nil
}
