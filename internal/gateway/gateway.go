// Package gateway is the public entry point: it proxies path-prefixed
// requests to the backing services and enforces session tokens on match
// routes. It holds no game logic.
package gateway

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"escoba/internal/auth"
	"escoba/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Router assembles the gateway engine.
func Router(cfg config.Service, tokens *auth.TokenService, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "API Gateway is running"})
	})

	r.Any("/auth/*path", proxy("/auth", cfg.AuthURL, log))
	r.GET("/cards/*path", proxy("/cards", cfg.CardsURL, log))

	matches := r.Group("/matches")
	matches.Use(requireToken(tokens))
	matches.Any("/*path", proxy("", cfg.MatchURL, log))

	return r
}

// proxy forwards the request to the upstream, stripping the given route
// prefix. Unreachable upstreams answer 503, matching the contract that a
// downed backing service is the caller's signal to retry later.
func proxy(prefix, upstream string, log *zap.SugaredLogger) gin.HandlerFunc {
	target, err := url.Parse(upstream)
	if err != nil {
		panic(err)
	}

	rp := &httputil.ReverseProxy{
		Director: func(req *http.Request) {
			req.URL.Scheme = target.Scheme
			req.URL.Host = target.Host
			req.Host = target.Host
			if prefix != "" {
				req.URL.Path = strings.TrimPrefix(req.URL.Path, prefix)
				if req.URL.Path == "" {
					req.URL.Path = "/"
				}
			}
		},
		ErrorHandler: func(w http.ResponseWriter, req *http.Request, err error) {
			log.Warnw("upstream unreachable", "upstream", upstream, "path", req.URL.Path, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"service unavailable"}`))
		},
	}

	return func(c *gin.Context) {
		rp.ServeHTTP(c.Writer, c.Request)
	}
}

// requireToken rejects match traffic without a valid session token.
func requireToken(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token required"})
			return
		}
		username, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Request.Header.Set("X-Escoba-User", username)
		c.Next()
	}
}
