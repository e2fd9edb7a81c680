package profile

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ascendlabs/coach-roadmap-service/types"
)

// Memory is an in-process ReadWriter used by tests and local development
// without Redis. Documents round-trip through JSON so it shares the Store's
// serialization behavior.
type Memory struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, userID string) (*types.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(userID)
}

func (m *Memory) get(userID string) (*types.Profile, error) {
	data, ok := m.docs[userID]
	if !ok {
		return nil, ErrNotFound
	}
	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *Memory) Save(ctx context.Context, p *types.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.save(p)
}

func (m *Memory) save(p *types.Profile) error {
	now := time.Now().Unix()
	if p.CreatedAt == 0 {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	m.docs[p.UserID] = data
	return nil
}

func (m *Memory) Update(ctx context.Context, userID string, mutate func(*types.Profile)) (*types.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.get(userID)
	if err != nil {
		return nil, err
	}
	mutate(p)
	if err := m.save(p); err != nil {
		return nil, err
	}
	return p, nil
}
