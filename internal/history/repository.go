package history

import (
	"context"
	"fmt"

	"escoba/internal/ports"

	"github.com/uptrace/bun"
)

// Repository persists finished matches.
type Repository interface {
	// Record inserts a finished match. Re-recording the same match id is
	// idempotent: the original row wins.
	Record(ctx context.Context, rec ports.MatchRecord) error
	// ForPlayer lists matches the player took part in, most recent first.
	ForPlayer(ctx context.Context, username string) ([]MatchRow, error)
}

type repository struct {
	db *bun.DB
}

// NewRepository wraps a bun handle.
func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

// CreateSchema creates the match_history table when missing.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*MatchRow)(nil)).IfNotExists().Exec(ctx)
	return err
}

func (r *repository) Record(ctx context.Context, rec ports.MatchRecord) error {
	row := &MatchRow{
		MatchID:   rec.MatchID,
		Player1:   rec.Player1,
		Player2:   rec.Player2,
		Winner:    rec.Winner,
		Scores:    rec.Scores,
		Moves:     rec.Moves,
		StartedAt: rec.StartedAt,
		EndedAt:   rec.EndedAt,
	}
	_, err := r.db.NewInsert().
		Model(row).
		On("CONFLICT (match_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert match %s: %w", rec.MatchID, err)
	}
	return nil
}

func (r *repository) ForPlayer(ctx context.Context, username string) ([]MatchRow, error) {
	var rows []MatchRow
	err := r.db.NewSelect().
		Model(&rows).
		Where("player1 = ? OR player2 = ?", username, username).
		Order("ended_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select history for %s: %w", username, err)
	}
	return rows, nil
}
