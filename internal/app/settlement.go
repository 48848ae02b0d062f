package app

import (
	"context"

	"escoba/internal/domain"
	"escoba/internal/ports"
)

// settle notifies the history recorder and the profile updater about a
// finished match. Notification failures never fail or roll back the match
// itself; they are logged and dropped.
func (s *Service) settle(ctx context.Context, m *domain.Match) {
	if s.history != nil {
		rec := ports.MatchRecord{
			MatchID:   m.ID,
			Player1:   m.Players[0],
			Player2:   m.Players[1],
			Winner:    m.Winner,
			Scores:    m.Scores,
			Moves:     m.Moves,
			StartedAt: m.CreatedAt,
			EndedAt:   s.now(),
		}
		if err := s.history.RecordMatch(ctx, rec); err != nil {
			s.log.Warnw("history notification failed", "match_id", m.ID, "error", err)
		}
	}

	if s.profiles != nil {
		for _, p := range m.Players {
			upd := ports.StatsUpdate{
				Player:     p,
				Result:     resultFor(m, p),
				ScoreDelta: m.Scores[p],
			}
			if err := s.profiles.UpdateStats(ctx, upd); err != nil {
				s.log.Warnw("profile notification failed", "match_id", m.ID, "player", p, "error", err)
			}
		}
	}
}

func resultFor(m *domain.Match, player string) ports.MatchResult {
	switch m.Winner {
	case player:
		return ports.ResultWin
	case domain.WinnerDraw:
		return ports.ResultDraw
	default:
		return ports.ResultLoss
	}
}
