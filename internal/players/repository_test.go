package players

import (
	"testing"

	"escoba/internal/ports"
)

func TestApplyOutcome(t *testing.T) {
	stats := &PlayerStats{Username: "alice", Level: 1}

	applyOutcome(stats, ports.StatsUpdate{Player: "alice", Result: ports.ResultWin, ScoreDelta: 3})
	if stats.MatchesPlayed != 1 || stats.MatchesWon != 1 || stats.MatchesLost != 0 {
		t.Errorf("after win: played=%d won=%d lost=%d", stats.MatchesPlayed, stats.MatchesWon, stats.MatchesLost)
	}
	if stats.WinRate != 1.0 {
		t.Errorf("win rate = %v, want 1.0", stats.WinRate)
	}
	if stats.TotalScore != 3 {
		t.Errorf("total score = %d, want 3", stats.TotalScore)
	}

	applyOutcome(stats, ports.StatsUpdate{Player: "alice", Result: ports.ResultLoss, ScoreDelta: 1})
	if stats.MatchesPlayed != 2 || stats.MatchesLost != 1 {
		t.Errorf("after loss: played=%d lost=%d", stats.MatchesPlayed, stats.MatchesLost)
	}
	if stats.WinRate != 0.5 {
		t.Errorf("win rate = %v, want 0.5", stats.WinRate)
	}

	// Draws count as played only.
	applyOutcome(stats, ports.StatsUpdate{Player: "alice", Result: ports.ResultDraw, ScoreDelta: 2})
	if stats.MatchesPlayed != 3 || stats.MatchesWon != 1 || stats.MatchesLost != 1 {
		t.Errorf("after draw: played=%d won=%d lost=%d", stats.MatchesPlayed, stats.MatchesWon, stats.MatchesLost)
	}
	if stats.WinRate != 0.33 {
		t.Errorf("win rate = %v, want 0.33", stats.WinRate)
	}
	if stats.TotalScore != 6 {
		t.Errorf("total score = %d, want 6", stats.TotalScore)
	}
}

func TestApplyOutcomeScoreFloor(t *testing.T) {
	stats := &PlayerStats{Username: "bob", TotalScore: 1}

	applyOutcome(stats, ports.StatsUpdate{Player: "bob", Result: ports.ResultLoss, ScoreDelta: -5})
	if stats.TotalScore != 0 {
		t.Errorf("total score = %d, want floor at 0", stats.TotalScore)
	}
}
