package players

import (
	"net/http"

	"escoba/internal/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes player profiles over HTTP.
type Handler struct {
	repo Repository
	log  *zap.SugaredLogger
}

// NewHandler builds the player-service handler set.
func NewHandler(repo Repository, log *zap.SugaredLogger) *Handler {
	return &Handler{repo: repo, log: log}
}

// Router assembles the gin engine for playerd.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Player service is running"})
	})
	r.GET("/players/:username", h.getProfile)
	r.PUT("/players/:username/stats", h.updateStats)

	return r
}

func (h *Handler) getProfile(c *gin.Context) {
	stats, err := h.repo.GetOrInit(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.log.Errorw("profile lookup failed", "username", c.Param("username"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile lookup failed"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

type statsRequest struct {
	MatchResult ports.MatchResult `json:"match_result" binding:"required"`
	ScoreDelta  int               `json:"score_delta"`
}

func (h *Handler) updateStats(c *gin.Context) {
	var req statsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON data required"})
		return
	}

	username := c.Param("username")

	// An init request only ensures the row exists.
	if req.MatchResult == "init" {
		stats, err := h.repo.GetOrInit(c.Request.Context(), username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "init failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Player initialized", "stats": stats})
		return
	}

	stats, err := h.repo.ApplyResult(c.Request.Context(), ports.StatsUpdate{
		Player:     username,
		Result:     req.MatchResult,
		ScoreDelta: req.ScoreDelta,
	})
	if err != nil {
		h.log.Errorw("stats update failed", "username", username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stats updated", "stats": stats})
}
