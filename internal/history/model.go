package history

import (
	"time"

	"escoba/internal/domain"

	"github.com/uptrace/bun"
)

// MatchRow is one finished match in the history table.
type MatchRow struct {
	bun.BaseModel `bun:"table:match_history"`

	MatchID   string              `bun:"match_id,pk" json:"match_id"`
	Player1   string              `bun:"player1,notnull" json:"player1"`
	Player2   string              `bun:"player2,notnull" json:"player2"`
	Winner    string              `bun:"winner,notnull" json:"winner"`
	Scores    map[string]int      `bun:"scores,type:jsonb" json:"scores"`
	Moves     []domain.MoveRecord `bun:"moves,type:jsonb" json:"moves,omitempty"`
	StartedAt time.Time           `bun:"started_at,notnull" json:"started_at"`
	EndedAt   time.Time           `bun:"ended_at,notnull" json:"ended_at"`
}
