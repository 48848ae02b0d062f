package domain

import (
	"fmt"
	"time"
)

// Status represents the lifecycle stage of a match.
type Status string

const (
	// StatusActive indicates the match is in progress and accepts plays.
	StatusActive Status = "active"
	// StatusFinished is terminal; no transition leaves it.
	StatusFinished Status = "finished"
)

const (
	// HandSize is the number of cards each player holds while the deck lasts.
	HandSize = 3
	// InitialTableSize is the number of cards dealt face-up at creation.
	InitialTableSize = 4
)

// MoveKind classifies the outcome of a play.
type MoveKind string

const (
	// MovePlaced means the card joined the table without capturing.
	MovePlaced MoveKind = "placed"
	// MoveCaptured means the card took a table subset.
	MoveCaptured MoveKind = "captured"
	// MoveGameOver means the play was the last one and the match finished.
	MoveGameOver MoveKind = "game_over"
)

// MoveOutcome describes what a single play did.
type MoveOutcome struct {
	Kind     MoveKind `json:"kind"`
	Captured []CardID `json:"captured,omitempty"`
	Escoba   bool     `json:"escoba,omitempty"`
}

// MoveRecord is one entry in the match's move log, kept for the history
// record at settlement.
type MoveRecord struct {
	Player   string    `json:"player"`
	Card     CardID    `json:"card"`
	Outcome  MoveKind  `json:"outcome"`
	Captured []CardID  `json:"captured,omitempty"`
	Escoba   bool      `json:"escoba,omitempty"`
	PlayedAt time.Time `json:"played_at"`
}

// Match is the aggregate root for a single Escoba game between two players.
// It is mutated only through the app service's Play transition and frozen
// once Status is finished.
type Match struct {
	ID            string              `json:"match_id"`
	Players       [2]string           `json:"players"`
	Deck          []CardID            `json:"deck"`
	Hands         map[string][]CardID `json:"hands"`
	Table         []CardID            `json:"table"`
	Captured      map[string][]CardID `json:"captured"`
	Scores        map[string]int      `json:"scores"`
	Escobas       map[string]int      `json:"escobas"`
	Moves         []MoveRecord        `json:"moves"`
	Turn          string              `json:"current_turn"`
	Status        Status              `json:"status"`
	Winner        string              `json:"winner,omitempty"`
	LastCaptureBy string              `json:"last_capture_by,omitempty"`
	Version       int64               `json:"version"`
	CreatedAt     time.Time           `json:"created_at"`
	LastMoveAt    time.Time           `json:"last_move_at"`
}

// IsParticipant reports whether the given player id belongs to the match.
func (m *Match) IsParticipant(player string) bool {
	return player == m.Players[0] || player == m.Players[1]
}

// Opponent returns the other player's id.
func (m *Match) Opponent(player string) string {
	if player == m.Players[0] {
		return m.Players[1]
	}
	return m.Players[0]
}

// HandContains reports whether the player currently holds the card.
func (m *Match) HandContains(player string, id CardID) bool {
	for _, c := range m.Hands[player] {
		if c == id {
			return true
		}
	}
	return false
}

// RemoveFromHand removes one occurrence of the card from the player's hand.
func (m *Match) RemoveFromHand(player string, id CardID) {
	hand := m.Hands[player]
	for i, c := range hand {
		if c == id {
			m.Hands[player] = append(hand[:i], hand[i+1:]...)
			return
		}
	}
}

// RemoveFromTable removes the given cards from the table, preserving the
// order of the remaining ones.
func (m *Match) RemoveFromTable(cards []CardID) {
	taken := make(map[CardID]bool, len(cards))
	for _, c := range cards {
		taken[c] = true
	}
	kept := m.Table[:0]
	for _, c := range m.Table {
		if !taken[c] {
			kept = append(kept, c)
		}
	}
	m.Table = kept
}

// Draw pops one card off the deck. The deck must be non-empty.
func (m *Match) Draw() CardID {
	id := m.Deck[len(m.Deck)-1]
	m.Deck = m.Deck[:len(m.Deck)-1]
	return id
}

// Clone returns a deep copy of the match. Stores hand out clones so callers
// never share mutable state with the authoritative record.
func (m *Match) Clone() *Match {
	out := *m
	out.Deck = append([]CardID(nil), m.Deck...)
	out.Table = append([]CardID(nil), m.Table...)
	out.Hands = cloneCardMap(m.Hands)
	out.Captured = cloneCardMap(m.Captured)
	out.Scores = cloneIntMap(m.Scores)
	out.Escobas = cloneIntMap(m.Escobas)
	out.Moves = append([]MoveRecord(nil), m.Moves...)
	return &out
}

// CheckConservation verifies every card id 1-40 sits in exactly one zone.
// Returns an error naming the first violation found.
func (m *Match) CheckConservation() error {
	seen := make(map[CardID]int, DeckSize)
	zones := [][]CardID{
		m.Deck,
		m.Hands[m.Players[0]],
		m.Hands[m.Players[1]],
		m.Table,
		m.Captured[m.Players[0]],
		m.Captured[m.Players[1]],
	}
	total := 0
	for _, zone := range zones {
		for _, id := range zone {
			seen[id]++
			total++
		}
	}
	if total != DeckSize {
		return fmt.Errorf("expected %d cards across all zones, found %d", DeckSize, total)
	}
	for id := CardID(1); id <= DeckSize; id++ {
		if seen[id] != 1 {
			return fmt.Errorf("card %d appears %d times", id, seen[id])
		}
	}
	return nil
}

func cloneCardMap(in map[string][]CardID) map[string][]CardID {
	out := make(map[string][]CardID, len(in))
	for k, v := range in {
		out[k] = append([]CardID(nil), v...)
	}
	return out
}

func cloneIntMap(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
