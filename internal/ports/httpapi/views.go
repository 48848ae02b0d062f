package httpapi

import "escoba/internal/domain"

// GameView is the per-player projection of a match: the caller sees their
// own hand and capture pile but only the opponent's counts.
type GameView struct {
	MatchID          string          `json:"match_id"`
	Players          [2]string       `json:"players"`
	CurrentPlayer    string          `json:"current_player"`
	Status           domain.Status   `json:"status"`
	TableCards       []domain.CardID `json:"table_cards"`
	YourHand         []domain.CardID `json:"your_hand"`
	YourCaptured     []domain.CardID `json:"your_captured"`
	OpponentCaptured int             `json:"opponent_captured_count"`
	DeckRemaining    int             `json:"deck_remaining"`
	Scores           map[string]int  `json:"scores"`
	Escobas          map[string]int  `json:"escobas"`
	Winner           string          `json:"winner,omitempty"`
}

// NewGameView projects a match for the given player.
func NewGameView(m *domain.Match, player string) GameView {
	return GameView{
		MatchID:          m.ID,
		Players:          m.Players,
		CurrentPlayer:    m.Turn,
		Status:           m.Status,
		TableCards:       m.Table,
		YourHand:         m.Hands[player],
		YourCaptured:     m.Captured[player],
		OpponentCaptured: len(m.Captured[m.Opponent(player)]),
		DeckRemaining:    len(m.Deck),
		Scores:           m.Scores,
		Escobas:          m.Escobas,
		Winner:           m.Winner,
	}
}
