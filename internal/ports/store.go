package ports

import (
	"context"
	"errors"
	"time"

	"escoba/internal/domain"
)

// ErrVersionConflict is returned by Save when the stored match carries a
// version at or past the one being written. It signals a concurrent writer,
// not a caller mistake.
var ErrVersionConflict = errors.New("match version conflict")

// MatchSummary is the listing view of a stored match.
type MatchSummary struct {
	ID         string        `json:"match_id"`
	Players    [2]string     `json:"players"`
	Status     domain.Status `json:"status"`
	Turn       string        `json:"current_turn"`
	LastMoveAt time.Time     `json:"last_move_at"`
}

// MatchStore is the authoritative record of matches between requests.
//
// Save is a full-state overwrite that refreshes the retention window; it
// fails with ErrVersionConflict when a newer version was stored since the
// caller loaded. Load returns nil for unknown or expired ids. Every
// implementation must hand out copies, never shared state.
type MatchStore interface {
	Save(ctx context.Context, m *domain.Match) error
	Load(ctx context.Context, matchID string) (*domain.Match, error)
	Delete(ctx context.Context, matchID string) error
	ListActive(ctx context.Context) ([]MatchSummary, error)
}
