package app

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"escoba/internal/domain"
	"escoba/internal/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidPlayers = errors.New("both players are required and must differ")
	ErrMatchNotFound  = errors.New("match not found")
	ErrNotParticipant = errors.New("player is not part of this match")
	ErrMatchNotActive = errors.New("match is not active")
	ErrWrongTurn      = errors.New("not your turn")
	ErrCardNotInHand  = errors.New("card not in hand")
)

// Service contains the Escoba use-cases. It is stateless per request: every
// play is a load-mutate-save cycle against the match store, serialized per
// match id so concurrent plays against the same match cannot interleave.
type Service struct {
	store    ports.MatchStore
	history  ports.HistoryRecorder
	profiles ports.ProfileUpdater
	log      *zap.SugaredLogger

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time

	locks sync.Map // match id -> *sync.Mutex
}

// NewService constructs a Service. rng may be nil for a time-seeded default;
// history and profiles may be nil when no collaborator is wired (settlement
// then only logs).
func NewService(store ports.MatchStore, history ports.HistoryRecorder, profiles ports.ProfileUpdater, log *zap.SugaredLogger, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{
		store:    store,
		history:  history,
		profiles: profiles,
		log:      log,
		rng:      rng,
		now:      time.Now,
	}
}

// Create builds a fresh match: shuffled 40-card deck, four cards on the
// table, three per hand, player1 on turn.
func (s *Service) Create(ctx context.Context, player1, player2 string) (*domain.Match, error) {
	if player1 == "" || player2 == "" || player1 == player2 {
		return nil, ErrInvalidPlayers
	}

	deck := domain.NewDeck()
	s.shuffle(deck)

	now := s.now()
	m := &domain.Match{
		ID:      uuid.NewString(),
		Players: [2]string{player1, player2},
		Deck:    deck,
		Hands:   map[string][]domain.CardID{},
		Captured: map[string][]domain.CardID{
			player1: {},
			player2: {},
		},
		Scores:     map[string]int{player1: 0, player2: 0},
		Escobas:    map[string]int{player1: 0, player2: 0},
		Turn:       player1,
		Status:     domain.StatusActive,
		Version:    1,
		CreatedAt:  now,
		LastMoveAt: now,
	}

	for _, p := range m.Players {
		hand := make([]domain.CardID, 0, domain.HandSize)
		for len(hand) < domain.HandSize {
			hand = append(hand, m.Draw())
		}
		m.Hands[p] = hand
	}
	table := make([]domain.CardID, 0, domain.InitialTableSize)
	for len(table) < domain.InitialTableSize {
		table = append(table, m.Draw())
	}
	m.Table = table

	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Play applies one card play. Validation failures leave the stored match
// untouched; only a fully applied transition is written back.
func (s *Service) Play(ctx context.Context, matchID, player string, cardID domain.CardID) (*domain.Match, domain.MoveOutcome, error) {
	unlock := s.lockMatch(matchID)
	defer unlock()

	m, err := s.store.Load(ctx, matchID)
	if err != nil {
		return nil, domain.MoveOutcome{}, err
	}
	if m == nil {
		return nil, domain.MoveOutcome{}, ErrMatchNotFound
	}
	if !m.IsParticipant(player) {
		return nil, domain.MoveOutcome{}, ErrNotParticipant
	}
	if m.Status != domain.StatusActive {
		return nil, domain.MoveOutcome{}, ErrMatchNotActive
	}
	if m.Turn != player {
		return nil, domain.MoveOutcome{}, ErrWrongTurn
	}
	if !m.HandContains(player, cardID) {
		return nil, domain.MoveOutcome{}, ErrCardNotInHand
	}

	outcome := s.applyPlay(m, player, cardID)

	if m.Status == domain.StatusFinished {
		outcome.Kind = domain.MoveGameOver
		s.settle(ctx, m)
	}

	m.Version++
	m.LastMoveAt = s.now()
	if err := s.store.Save(ctx, m); err != nil {
		return nil, domain.MoveOutcome{}, err
	}
	return m, outcome, nil
}

// applyPlay mutates the match for a validated play and returns the outcome.
func (s *Service) applyPlay(m *domain.Match, player string, cardID domain.CardID) domain.MoveOutcome {
	m.RemoveFromHand(player, cardID)

	outcome := domain.MoveOutcome{Kind: domain.MovePlaced}
	captured := domain.FindCapture(domain.GameValue(cardID), m.Table)
	if captured != nil {
		m.RemoveFromTable(captured)
		m.Captured[player] = append(m.Captured[player], captured...)
		m.Captured[player] = append(m.Captured[player], cardID)
		m.LastCaptureBy = player

		outcome.Kind = domain.MoveCaptured
		outcome.Captured = captured

		// An escoba clears the table while cards remain in the deck; a
		// sweep on the deck's final play earns nothing.
		if len(m.Table) == 0 && len(m.Deck) > 0 {
			m.Escobas[player]++
			outcome.Escoba = true
		}
	} else {
		m.Table = append(m.Table, cardID)
	}

	m.Moves = append(m.Moves, domain.MoveRecord{
		Player:   player,
		Card:     cardID,
		Outcome:  outcome.Kind,
		Captured: outcome.Captured,
		Escoba:   outcome.Escoba,
		PlayedAt: s.now(),
	})

	m.Turn = m.Opponent(player)

	for len(m.Deck) > 0 && len(m.Hands[player]) < domain.HandSize {
		m.Hands[player] = append(m.Hands[player], m.Draw())
	}

	if len(m.Deck) == 0 && len(m.Hands[m.Players[0]]) == 0 && len(m.Hands[m.Players[1]]) == 0 {
		s.finish(m)
	}
	return outcome
}

// finish runs the terminal transition: the last capturer takes whatever is
// left on the table, scores are fixed and the winner is set. When nobody
// ever captured, the table remainder stays where it is, uncounted.
func (s *Service) finish(m *domain.Match) {
	if m.LastCaptureBy != "" && len(m.Table) > 0 {
		m.Captured[m.LastCaptureBy] = append(m.Captured[m.LastCaptureBy], m.Table...)
		m.Table = nil
	}
	m.Scores, m.Winner = domain.FinalScores(m)
	m.Status = domain.StatusFinished
}

// Get loads a match by id.
func (s *Service) Get(ctx context.Context, matchID string) (*domain.Match, error) {
	m, err := s.store.Load(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMatchNotFound
	}
	return m, nil
}

// Delete removes a match from the store regardless of status.
func (s *Service) Delete(ctx context.Context, matchID string) error {
	return s.store.Delete(ctx, matchID)
}

// ListActive lists stored matches still accepting plays.
func (s *Service) ListActive(ctx context.Context) ([]ports.MatchSummary, error) {
	return s.store.ListActive(ctx)
}

func (s *Service) shuffle(deck []domain.CardID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}

// lockMatch acquires the per-match mutex that serializes load-play-save.
func (s *Service) lockMatch(matchID string) func() {
	mu, _ := s.locks.LoadOrStore(matchID, &sync.Mutex{})
	lock := mu.(*sync.Mutex)
	lock.Lock()
	return lock.Unlock
}
