package domain

import "testing"

func TestDeckComposition(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(deck))
	}

	suitCounts := map[Suit]int{}
	valueCounts := map[int]int{}
	for _, id := range deck {
		suitCounts[SuitOf(id)]++
		valueCounts[GameValue(id)]++
	}

	for _, suit := range []Suit{SuitOros, SuitCopas, SuitEspadas, SuitBastos} {
		if suitCounts[suit] != CardsPerSuit {
			t.Errorf("suit %s has %d cards, want %d", suit, suitCounts[suit], CardsPerSuit)
		}
	}
	for v := 1; v <= 10; v++ {
		if valueCounts[v] != 4 {
			t.Errorf("value %d appears %d times, want 4", v, valueCounts[v])
		}
	}
}

func TestCardAttributes(t *testing.T) {
	tests := []struct {
		id    CardID
		suit  Suit
		value int
		face  int
		name  string
	}{
		{1, SuitOros, 1, 1, "1 de Oros"},
		{7, SuitOros, 7, 7, "7 de Oros"},
		{8, SuitOros, 8, 10, "Sota de Oros"},
		{9, SuitOros, 9, 11, "Caballo de Oros"},
		{10, SuitOros, 10, 12, "Rey de Oros"},
		{11, SuitCopas, 1, 1, "1 de Copas"},
		{17, SuitCopas, 7, 7, "7 de Copas"},
		{25, SuitEspadas, 5, 5, "5 de Espadas"},
		{40, SuitBastos, 10, 12, "Rey de Bastos"},
	}

	for _, tt := range tests {
		if got := SuitOf(tt.id); got != tt.suit {
			t.Errorf("SuitOf(%d) = %s, want %s", tt.id, got, tt.suit)
		}
		if got := GameValue(tt.id); got != tt.value {
			t.Errorf("GameValue(%d) = %d, want %d", tt.id, got, tt.value)
		}
		if got := FaceValue(tt.id); got != tt.face {
			t.Errorf("FaceValue(%d) = %d, want %d", tt.id, got, tt.face)
		}
		if got := CardName(tt.id); got != tt.name {
			t.Errorf("CardName(%d) = %q, want %q", tt.id, got, tt.name)
		}
	}
}

func TestSuitOfPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for id 41")
		}
	}()
	SuitOf(41)
}
