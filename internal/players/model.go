package players

import (
	"time"

	"github.com/uptrace/bun"
)

// PlayerStats is one player's profile row, auto-initialized on first touch.
type PlayerStats struct {
	bun.BaseModel `bun:"table:player_stats"`

	Username      string    `bun:"username,pk" json:"username"`
	PlayerID      string    `bun:"player_id,notnull" json:"player_id"`
	TotalScore    int       `bun:"total_score,notnull,default:0" json:"total_score"`
	Level         int       `bun:"level,notnull,default:1" json:"level"`
	MatchesPlayed int       `bun:"matches_played,notnull,default:0" json:"matches_played"`
	MatchesWon    int       `bun:"matches_won,notnull,default:0" json:"matches_won"`
	MatchesLost   int       `bun:"matches_lost,notnull,default:0" json:"matches_lost"`
	WinRate       float64   `bun:"win_rate,notnull,default:0" json:"win_rate"`
	CreatedAt     time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,notnull" json:"updated_at"`
}
