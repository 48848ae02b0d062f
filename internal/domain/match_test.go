package domain

import (
	"reflect"
	"testing"
)

func fullMatch() *Match {
	// Cards 1-30 in the deck, 31-33 and 34-36 in hands, 37-40 on the table.
	deck := make([]CardID, 0, 30)
	for id := CardID(1); id <= 30; id++ {
		deck = append(deck, id)
	}
	return &Match{
		ID:      "m1",
		Players: [2]string{"alice", "bob"},
		Deck:    deck,
		Hands: map[string][]CardID{
			"alice": {31, 32, 33},
			"bob":   {34, 35, 36},
		},
		Table:    []CardID{37, 38, 39, 40},
		Captured: map[string][]CardID{"alice": {}, "bob": {}},
		Scores:   map[string]int{"alice": 0, "bob": 0},
		Escobas:  map[string]int{"alice": 0, "bob": 0},
		Turn:     "alice",
		Status:   StatusActive,
	}
}

func TestCheckConservation(t *testing.T) {
	m := fullMatch()
	if err := m.CheckConservation(); err != nil {
		t.Fatalf("intact match failed conservation: %v", err)
	}

	t.Run("lost card", func(t *testing.T) {
		lost := fullMatch()
		lost.Table = lost.Table[:3]
		if lost.CheckConservation() == nil {
			t.Error("expected conservation failure after dropping a card")
		}
	})

	t.Run("duplicated card", func(t *testing.T) {
		dup := fullMatch()
		dup.Table[0] = dup.Table[1]
		if dup.CheckConservation() == nil {
			t.Error("expected conservation failure after duplicating a card")
		}
	})
}

func TestCloneIsDeep(t *testing.T) {
	m := fullMatch()
	c := m.Clone()

	c.Hands["alice"][0] = 40
	c.Table = append(c.Table, 1)
	c.Captured["bob"] = append(c.Captured["bob"], 2)
	c.Escobas["alice"] = 9

	if m.Hands["alice"][0] != 31 {
		t.Error("clone shares hand storage with original")
	}
	if len(m.Table) != 4 {
		t.Error("clone shares table storage with original")
	}
	if len(m.Captured["bob"]) != 0 {
		t.Error("clone shares capture pile with original")
	}
	if m.Escobas["alice"] != 0 {
		t.Error("clone shares escoba map with original")
	}
}

func TestRemoveFromTable(t *testing.T) {
	m := fullMatch()
	m.RemoveFromTable([]CardID{38, 40})
	if !reflect.DeepEqual(m.Table, []CardID{37, 39}) {
		t.Errorf("table = %v, want [37 39]", m.Table)
	}
}

func TestDrawPopsFromEnd(t *testing.T) {
	m := fullMatch()
	if got := m.Draw(); got != 30 {
		t.Errorf("Draw() = %d, want 30", got)
	}
	if len(m.Deck) != 29 {
		t.Errorf("deck size = %d, want 29", len(m.Deck))
	}
}

func TestOpponent(t *testing.T) {
	m := fullMatch()
	if m.Opponent("alice") != "bob" || m.Opponent("bob") != "alice" {
		t.Error("Opponent mapping broken")
	}
}
