package httpapi

import (
	"errors"
	"net/http"

	"escoba/internal/app"
	"escoba/internal/domain"
	"escoba/internal/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MatchHandler exposes the match engine over HTTP.
type MatchHandler struct {
	svc *app.Service
	log *zap.SugaredLogger
}

// NewMatchHandler builds the handler set for the match service.
func NewMatchHandler(svc *app.Service, log *zap.SugaredLogger) *MatchHandler {
	return &MatchHandler{svc: svc, log: log}
}

// Router assembles the gin engine for matchd.
func (h *MatchHandler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Matches service is running"})
	})

	r.POST("/matches", h.createMatch)
	r.GET("/matches", h.listMatches)
	r.GET("/matches/:id", h.getMatch)
	r.POST("/matches/:id/play", h.playCard)
	r.DELETE("/matches/:id", h.deleteMatch)

	return r
}

type createMatchRequest struct {
	Player1 string `json:"player1" binding:"required"`
	Player2 string `json:"player2" binding:"required"`
}

func (h *MatchHandler) createMatch(c *gin.Context) {
	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player1 and player2 required"})
		return
	}

	m, err := h.svc.Create(c.Request.Context(), req.Player1, req.Player2)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.log.Infow("match created", "match_id", m.ID, "player1", req.Player1, "player2", req.Player2)
	c.JSON(http.StatusCreated, gin.H{
		"match_id":    m.ID,
		"players":     m.Players,
		"table_cards": m.Table,
	})
}

func (h *MatchHandler) getMatch(c *gin.Context) {
	player := c.Query("player")
	if player == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player parameter required"})
		return
	}

	m, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !m.IsParticipant(player) {
		c.JSON(http.StatusForbidden, gin.H{"error": app.ErrNotParticipant.Error()})
		return
	}
	c.JSON(http.StatusOK, NewGameView(m, player))
}

func (h *MatchHandler) listMatches(c *gin.Context) {
	summaries, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(summaries), "matches": summaries})
}

type playCardRequest struct {
	Player string        `json:"player" binding:"required"`
	CardID domain.CardID `json:"card_id" binding:"required"`
}

func (h *MatchHandler) playCard(c *gin.Context) {
	var req playCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player and card_id required"})
		return
	}
	if req.CardID < 1 || req.CardID > domain.DeckSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card_id out of range"})
		return
	}

	m, outcome, err := h.svc.Play(c.Request.Context(), c.Param("id"), req.Player, req.CardID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"outcome":    outcome,
		"game_state": NewGameView(m, req.Player),
	})
}

func (h *MatchHandler) deleteMatch(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "match deleted"})
}

// writeError maps service errors onto status codes: caller mistakes are 4xx
// with a specific reason, store failures are 5xx and retryable.
func (h *MatchHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, app.ErrInvalidPlayers),
		errors.Is(err, app.ErrWrongTurn),
		errors.Is(err, app.ErrCardNotInHand),
		errors.Is(err, app.ErrMatchNotActive):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, app.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ports.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Errorw("match store failure", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure, retry the request"})
	}
}
