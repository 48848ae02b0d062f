// Package store provides match store adapters. The in-memory adapter is the
// reference one: matches live only as long as the process and their 24h
// retention window, which is the accepted durability model for in-progress
// games.
package store

import (
	"context"
	"sync"
	"time"

	"escoba/internal/domain"
	"escoba/internal/ports"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultRetention is how long a match survives after its last save.
	DefaultRetention = 24 * time.Hour
	// maxMatches bounds the cache; far above anything a single node hosts.
	maxMatches = 100_000
)

// Memory is a TTL'd in-memory MatchStore. Every save refreshes the
// retention window; loads of expired ids return nil.
type Memory struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *domain.Match]
}

// NewMemory builds a store with the given retention window, or
// DefaultRetention when zero.
func NewMemory(retention time.Duration) *Memory {
	if retention == 0 {
		retention = DefaultRetention
	}
	return &Memory{
		cache: expirable.NewLRU[string, *domain.Match](maxMatches, nil, retention),
	}
}

// Save overwrites the stored match and refreshes its expiry. It fails with
// ports.ErrVersionConflict when the stored copy is already at or past the
// incoming version, which surfaces lost-update races instead of hiding them.
func (s *Memory) Save(_ context.Context, m *domain.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.cache.Get(m.ID); ok && existing.Version >= m.Version {
		return ports.ErrVersionConflict
	}
	s.cache.Add(m.ID, m.Clone())
	return nil
}

// Load returns a copy of the stored match, or nil when unknown or expired.
func (s *Memory) Load(_ context.Context, matchID string) (*domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.cache.Get(matchID)
	if !ok {
		return nil, nil
	}
	return m.Clone(), nil
}

// Delete removes a match. Deleting an unknown id is a no-op.
func (s *Memory) Delete(_ context.Context, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Remove(matchID)
	return nil
}

// ListActive returns summaries of stored matches with status active.
func (s *Memory) ListActive(_ context.Context) ([]ports.MatchSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []ports.MatchSummary
	for _, m := range s.cache.Values() {
		if m.Status != domain.StatusActive {
			continue
		}
		out = append(out, ports.MatchSummary{
			ID:         m.ID,
			Players:    m.Players,
			Status:     m.Status,
			Turn:       m.Turn,
			LastMoveAt: m.LastMoveAt,
		})
	}
	return out, nil
}
