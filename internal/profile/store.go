// Package profile persists the per-user profile document. The profile is the
// single source of truth for plan inputs, completion flags, customization
// overlays and entitlement counters; all mutations go through a serialized
// read-modify-write cycle so concurrent in-process writes cannot lose updates.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ascendlabs/coach-roadmap-service/types"
)

const (
	KeyPrefix = "profile:data:"
	IndexAll  = "profile:index:all"
)

// ErrNotFound is returned when no profile exists for a user.
var ErrNotFound = errors.New("profile not found")

// ReadWriter is the profile store contract consumed by the entitlement gate
// and the HTTP endpoints.
type ReadWriter interface {
	Get(ctx context.Context, userID string) (*types.Profile, error)
	Save(ctx context.Context, p *types.Profile) error
	Update(ctx context.Context, userID string, mutate func(*types.Profile)) (*types.Profile, error)
}

// Store keeps profiles as JSON documents in Redis.
type Store struct {
	client *redis.Client
	mu     sync.Mutex // serializes read-modify-write cycles
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get retrieves a profile by user ID.
func (s *Store) Get(ctx context.Context, userID string) (*types.Profile, error) {
	data, err := s.client.Get(ctx, KeyPrefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes the full profile document and indexes it.
func (s *Store) Save(ctx context.Context, p *types.Profile) error {
	now := time.Now().Unix()
	if p.CreatedAt == 0 {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, KeyPrefix+p.UserID, data, 0)
	pipe.SAdd(ctx, IndexAll, p.UserID)
	_, err = pipe.Exec(ctx)
	return err
}

// Update runs a read-modify-write cycle under the store mutex. The mutate
// function receives the freshly loaded profile and edits it in place.
func (s *Store) Update(ctx context.Context, userID string, mutate func(*types.Profile)) (*types.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	mutate(p)

	if err := s.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns every stored user ID.
func (s *Store) List(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, IndexAll).Result()
}
