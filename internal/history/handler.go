package history

import (
	"net/http"

	"escoba/internal/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes match history over HTTP.
type Handler struct {
	repo Repository
	log  *zap.SugaredLogger
}

// NewHandler builds the history-service handler set.
func NewHandler(repo Repository, log *zap.SugaredLogger) *Handler {
	return &Handler{repo: repo, log: log}
}

// Router assembles the gin engine for historyd.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "History service is running"})
	})
	r.GET("/history/:username", h.playerHistory)
	r.POST("/history/matches", h.saveMatch)

	return r
}

func (h *Handler) playerHistory(c *gin.Context) {
	username := c.Param("username")
	rows, err := h.repo.ForPlayer(c.Request.Context(), username)
	if err != nil {
		h.log.Errorw("history lookup failed", "username", username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "history lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username":    username,
		"match_count": len(rows),
		"matches":     rows,
	})
}

func (h *Handler) saveMatch(c *gin.Context) {
	var rec ports.MatchRecord
	if err := c.ShouldBindJSON(&rec); err != nil || rec.MatchID == "" || rec.Player1 == "" || rec.Player2 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "match_id, player1, player2, winner and scores required"})
		return
	}
	if err := h.repo.Record(c.Request.Context(), rec); err != nil {
		h.log.Errorw("history insert failed", "match_id", rec.MatchID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "history insert failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Match saved to history"})
}
