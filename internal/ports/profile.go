package ports

import "context"

// MatchResult is the per-player outcome reported to the profile updater.
type MatchResult string

const (
	ResultWin  MatchResult = "win"
	ResultLoss MatchResult = "loss"
	ResultDraw MatchResult = "draw"
)

// StatsUpdate is the settlement payload sent once per player.
type StatsUpdate struct {
	Player     string      `json:"player"`
	Result     MatchResult `json:"match_result"`
	ScoreDelta int         `json:"score_delta"`
}

// ProfileUpdater applies post-match stat changes to player profiles.
// Like HistoryRecorder, it is best-effort only.
type ProfileUpdater interface {
	UpdateStats(ctx context.Context, upd StatsUpdate) error
}
