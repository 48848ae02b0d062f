package players

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"escoba/internal/ports"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository persists player profiles.
type Repository interface {
	// GetOrInit returns the player's stats, creating a fresh row on first
	// touch.
	GetOrInit(ctx context.Context, username string) (*PlayerStats, error)
	// ApplyResult records one match outcome. The total score never drops
	// below zero and the win rate is kept to two decimals.
	ApplyResult(ctx context.Context, upd ports.StatsUpdate) (*PlayerStats, error)
}

type repository struct {
	db *bun.DB
}

// NewRepository wraps a bun handle.
func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

// CreateSchema creates the player_stats table when missing.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*PlayerStats)(nil)).IfNotExists().Exec(ctx)
	return err
}

func (r *repository) GetOrInit(ctx context.Context, username string) (*PlayerStats, error) {
	stats := new(PlayerStats)
	err := r.db.NewSelect().Model(stats).Where("username = ?", username).Scan(ctx)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("select player %s: %w", username, err)
	}

	now := time.Now().UTC()
	stats = &PlayerStats{
		Username:  username,
		PlayerID:  uuid.NewString(),
		Level:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.db.NewInsert().Model(stats).Exec(ctx); err != nil {
		return nil, fmt.Errorf("init player %s: %w", username, err)
	}
	return stats, nil
}

func (r *repository) ApplyResult(ctx context.Context, upd ports.StatsUpdate) (*PlayerStats, error) {
	stats, err := r.GetOrInit(ctx, upd.Player)
	if err != nil {
		return nil, err
	}

	applyOutcome(stats, upd)

	if _, err := r.db.NewUpdate().Model(stats).WherePK().Exec(ctx); err != nil {
		return nil, fmt.Errorf("update player %s: %w", upd.Player, err)
	}
	return stats, nil
}

// applyOutcome folds one match outcome into the stats row.
func applyOutcome(stats *PlayerStats, upd ports.StatsUpdate) {
	stats.MatchesPlayed++
	switch upd.Result {
	case ports.ResultWin:
		stats.MatchesWon++
	case ports.ResultDraw:
		// Draws count as played only.
	default:
		stats.MatchesLost++
	}
	stats.WinRate = math.Round(float64(stats.MatchesWon)/float64(stats.MatchesPlayed)*100) / 100
	stats.TotalScore += upd.ScoreDelta
	if stats.TotalScore < 0 {
		stats.TotalScore = 0
	}
	stats.UpdatedAt = time.Now().UTC()
}
