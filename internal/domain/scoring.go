package domain

// WinnerDraw is the winner value recorded when both totals are equal.
const WinnerDraw = "draw"

// Special cards worth one settlement point each to whoever captured them.
const (
	SieteDeOros  CardID = 7
	SieteDeCopas CardID = 17
)

// ScoreBreakdown itemizes one player's settlement points.
type ScoreBreakdown struct {
	Escobas    int `json:"escobas"`
	SieteOros  int `json:"siete_oros"`
	SieteCopas int `json:"siete_copas"`
	MostCards  int `json:"most_cards"`
	MostOros   int `json:"most_oros"`
}

// Total sums the breakdown.
func (b ScoreBreakdown) Total() int {
	return b.Escobas + b.SieteOros + b.SieteCopas + b.MostCards + b.MostOros
}

// FinalScores computes both players' settlement totals and the winner from
// the final captured piles and escoba tallies. It is a pure function:
// recomputing on the same finished match yields identical results.
//
// Points: one per escoba, one for holding the 7 de Oros, one for the 7 de
// Copas, one for strictly more captured cards, one for strictly more
// captured Oros. Totals are independent per player; the strictly higher
// total wins, equal totals are a draw.
func FinalScores(m *Match) (scores map[string]int, winner string) {
	p1, p2 := m.Players[0], m.Players[1]

	b1 := breakdownFor(m, p1)
	b2 := breakdownFor(m, p2)

	if len(m.Captured[p1]) > len(m.Captured[p2]) {
		b1.MostCards = 1
	} else if len(m.Captured[p2]) > len(m.Captured[p1]) {
		b2.MostCards = 1
	}

	o1, o2 := countOros(m.Captured[p1]), countOros(m.Captured[p2])
	if o1 > o2 {
		b1.MostOros = 1
	} else if o2 > o1 {
		b2.MostOros = 1
	}

	scores = map[string]int{p1: b1.Total(), p2: b2.Total()}
	switch {
	case scores[p1] > scores[p2]:
		winner = p1
	case scores[p2] > scores[p1]:
		winner = p2
	default:
		winner = WinnerDraw
	}
	return scores, winner
}

func breakdownFor(m *Match, player string) ScoreBreakdown {
	b := ScoreBreakdown{Escobas: m.Escobas[player]}
	for _, id := range m.Captured[player] {
		switch id {
		case SieteDeOros:
			b.SieteOros = 1
		case SieteDeCopas:
			b.SieteCopas = 1
		}
	}
	return b
}

func countOros(cards []CardID) int {
	n := 0
	for _, id := range cards {
		if SuitOf(id) == SuitOros {
			n++
		}
	}
	return n
}
