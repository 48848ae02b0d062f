package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"escoba/internal/auth"
	"escoba/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// upstream answers every request with its own name and the path it saw, so
// tests can assert routing and prefix stripping.
func upstream(t *testing.T, name string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"service": name,
			"path":    r.URL.Path,
			"user":    r.Header.Get("X-Escoba-User"),
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestGateway(t *testing.T, tokens *auth.TokenService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Service{
		AuthURL:  upstream(t, "auth").URL,
		CardsURL: upstream(t, "cards").URL,
		MatchURL: upstream(t, "matches").URL,
	}
	return Router(cfg, tokens, zap.NewNop().Sugar())
}

func get(r *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	// httptest requests carry context.Background(), whose nil Done channel
	// sends ReverseProxy down the CloseNotifier path, which panics on a bare
	// ResponseRecorder. A cancellable context matches a real server request.
	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()
	req = req.WithContext(ctx)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not JSON: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestProxyStripsRoutePrefix(t *testing.T) {
	r := newTestGateway(t, auth.NewTokenService("test-secret"))

	w := get(r, "/auth/login", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decode(t, w)
	if body["service"] != "auth" || body["path"] != "/login" {
		t.Errorf("routed to %s%s, want auth /login", body["service"], body["path"])
	}

	w = get(r, "/cards/7", nil)
	body = decode(t, w)
	if body["service"] != "cards" || body["path"] != "/7" {
		t.Errorf("routed to %s%s, want cards /7", body["service"], body["path"])
	}
}

func TestMatchRoutesRequireToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	r := newTestGateway(t, tokens)

	if w := get(r, "/matches/abc", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", w.Code)
	}
	if w := get(r, "/matches/abc", map[string]string{"Authorization": "Bearer junk"}); w.Code != http.StatusUnauthorized {
		t.Errorf("bad token status = %d, want 401", w.Code)
	}

	token, err := tokens.Generate("alice")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	w := get(r, "/matches/abc", map[string]string{"Authorization": "Bearer " + token})
	if w.Code != http.StatusOK {
		t.Fatalf("valid token status = %d, want 200", w.Code)
	}
	body := decode(t, w)
	if body["service"] != "matches" || body["path"] != "/matches/abc" {
		t.Errorf("routed to %s%s, want matches /matches/abc", body["service"], body["path"])
	}
	// The gateway stamps the verified identity for the upstream.
	if body["user"] != "alice" {
		t.Errorf("forwarded user = %q, want alice", body["user"])
	}
}

func TestDownUpstreamAnswers503(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Service{
		AuthURL:  "http://127.0.0.1:1",
		CardsURL: "http://127.0.0.1:1",
		MatchURL: "http://127.0.0.1:1",
	}
	r := Router(cfg, auth.NewTokenService("test-secret"), zap.NewNop().Sugar())

	if w := get(r, "/cards/7", nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}
