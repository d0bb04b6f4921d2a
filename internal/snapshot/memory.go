package snapshot

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/verdantworks/idlefarm/internal/domain"
)

// MemoryStore holds the snapshot in process memory. Intended for tests and
// ephemeral runs; it round-trips through JSON so serialization bugs still
// surface.
type MemoryStore struct {
	mu      sync.Mutex
	payload []byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (*domain.FarmState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.payload == nil {
		return nil, ErrNoSnapshot
	}
	var state domain.FarmState
	if err := json.Unmarshal(m.payload, &state); err != nil {
		return nil, ErrNoSnapshot
	}
	state.Repair(time.Now())
	return &state, nil
}

func (m *MemoryStore) Save(_ context.Context, state *domain.FarmState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.payload = payload
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
