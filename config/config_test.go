package config

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	middlewares "hotel-client/middleware"
	"hotel-client/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/olahol/melody"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "BACKEND_URL", "BACKEND_TIMEOUT", "REDIS_ADDR", "ROOM_CACHE_TTL", "LOG_LEVEL", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != DefaultPort || cfg.BackendURL != DefaultBackendURL {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.BackendTimeout != DefaultBackendTimeout || cfg.RoomCacheTTL != DefaultRoomCacheTTL {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
	if cfg.RedisAddr != "" || len(cfg.AllowedOrigins) != 0 || cfg.LogLevel != "info" {
		t.Fatalf("unexpected optional values: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BACKEND_URL", "http://hotel.local:8080/")
	t.Setenv("BACKEND_TIMEOUT", "3")
	t.Setenv("ROOM_CACHE_TTL", "bogus")
	t.Setenv("REFRESH_SPEC", "")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg := Load()
	if cfg.Port != "9000" || cfg.BackendURL != "http://hotel.local:8080" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.BackendTimeout != 3*time.Second {
		t.Fatalf("timeout = %v", cfg.BackendTimeout)
	}
	if cfg.RoomCacheTTL != DefaultRoomCacheTTL {
		t.Fatalf("invalid ttl must fall back, got %v", cfg.RoomCacheTTL)
	}
	if cfg.RefreshSpec != "" {
		t.Fatalf("empty REFRESH_SPEC must disable the job, got %q", cfg.RefreshSpec)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.test" {
		t.Fatalf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestCorsOrigins(t *testing.T) {
	if !corsConfig(nil).AllowOriginFunc("http://anything.test") {
		t.Fatalf("no configured origins must allow any origin")
	}
	c := corsConfig([]string{"http://a.test"})
	if !c.AllowOriginFunc("http://a.test") || c.AllowOriginFunc("http://b.test") {
		t.Fatalf("origin list not enforced")
	}
}

func TestWebSocketRequiresSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	session := services.NewSession(nil)
	m := melody.New()
	defer m.Close()

	router := gin.New()
	InitWebSocket(router, m, middlewares.RequireSession(session))
	srv := httptest.NewServer(router)
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatalf("logged-out dial must be refused")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", resp)
	}

	session.Login("tok", "ROLE_USER", "alice")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial with a session: %v", err)
	}
	conn.Close()
}
