package ports

import (
	"context"
	"time"

	"escoba/internal/domain"
)

// MatchRecord is the settlement payload sent to the match-history recorder.
type MatchRecord struct {
	MatchID   string              `json:"match_id"`
	Player1   string              `json:"player1"`
	Player2   string              `json:"player2"`
	Winner    string              `json:"winner"`
	Scores    map[string]int      `json:"scores"`
	Moves     []domain.MoveRecord `json:"moves,omitempty"`
	StartedAt time.Time           `json:"started_at"`
	EndedAt   time.Time           `json:"ended_at"`
}

// HistoryRecorder receives finished matches. Calls are fire-and-forget at
// settlement: failures are logged by the caller and never roll back a
// finished match.
type HistoryRecorder interface {
	RecordMatch(ctx context.Context, rec MatchRecord) error
}
