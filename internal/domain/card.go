package domain

import "fmt"

// CardID identifies one of the 40 cards in the Spanish deck. Valid ids run
// from 1 to 40, grouped in blocks of ten per suit.
type CardID int

// Suit is one of the four Spanish-deck suits.
type Suit string

const (
	SuitOros    Suit = "Oros"
	SuitCopas   Suit = "Copas"
	SuitEspadas Suit = "Espadas"
	SuitBastos  Suit = "Bastos"
)

const (
	// DeckSize is the total number of cards in play.
	DeckSize = 40
	// CardsPerSuit is the number of cards in each suit block.
	CardsPerSuit = 10
)

var suitOrder = [4]Suit{SuitOros, SuitCopas, SuitEspadas, SuitBastos}

var faceNames = map[int]string{8: "Sota", 9: "Caballo", 10: "Rey"}

// SuitOf returns the suit of a card. Panics on an out-of-range id: callers
// inside the engine only ever hold ids produced by NewDeck.
func SuitOf(id CardID) Suit {
	if id < 1 || id > DeckSize {
		panic(fmt.Sprintf("card id out of range: %d", id))
	}
	return suitOrder[(int(id)-1)/CardsPerSuit]
}

// GameValue returns the capture value of a card (1-10). Face cards weigh
// 8, 9 and 10 regardless of suit.
func GameValue(id CardID) int {
	if id < 1 || id > DeckSize {
		panic(fmt.Sprintf("card id out of range: %d", id))
	}
	return (int(id)-1)%CardsPerSuit + 1
}

// FaceValue returns the printed rank of a card. It matches GameValue for
// 1-7 and diverges to 10/11/12 for Sota, Caballo and Rey.
func FaceValue(id CardID) int {
	v := GameValue(id)
	if v >= 8 {
		return v + 2
	}
	return v
}

// CardName returns the display name of a card, e.g. "7 de Oros".
func CardName(id CardID) string {
	v := GameValue(id)
	if name, ok := faceNames[v]; ok {
		return fmt.Sprintf("%s de %s", name, SuitOf(id))
	}
	return fmt.Sprintf("%d de %s", v, SuitOf(id))
}

// NewDeck produces the ordered 40-card deck, ids 1 through 40.
func NewDeck() []CardID {
	deck := make([]CardID, 0, DeckSize)
	for id := CardID(1); id <= DeckSize; id++ {
		deck = append(deck, id)
	}
	return deck
}

// SumValues adds up the capture values of the given cards.
func SumValues(cards []CardID) int {
	total := 0
	for _, id := range cards {
		total += GameValue(id)
	}
	return total
}
