package httpapi

import (
	"net/http"
	"strconv"

	"escoba/internal/domain"

	"github.com/gin-gonic/gin"
)

// cardView is the catalog representation of one card.
type cardView struct {
	ID     domain.CardID `json:"id"`
	Name   string        `json:"name"`
	Suit   domain.Suit   `json:"suit"`
	Value  int           `json:"value"`
	Points int           `json:"points"`
}

func newCardView(id domain.CardID) cardView {
	return cardView{
		ID:     id,
		Name:   domain.CardName(id),
		Suit:   domain.SuitOf(id),
		Value:  domain.FaceValue(id),
		Points: domain.GameValue(id),
	}
}

// CardsRouter assembles the gin engine for the static catalog service.
func CardsRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Cards service is running"})
	})

	r.GET("/cards", func(c *gin.Context) {
		cards := make([]cardView, 0, domain.DeckSize)
		for _, id := range domain.NewDeck() {
			cards = append(cards, newCardView(id))
		}
		c.JSON(http.StatusOK, gin.H{"count": len(cards), "cards": cards})
	})

	r.GET("/cards/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id < 1 || id > domain.DeckSize {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		c.JSON(http.StatusOK, newCardView(domain.CardID(id)))
	})

	return r
}
