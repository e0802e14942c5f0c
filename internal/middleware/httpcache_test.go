package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func TestShouldSkipCachePath(t *testing.T) {
	patterns := []string{
		"/api/v1/auth*",
		"/api/v1/users*",
		"/api/v1/health*",
		"/api/v1/blocks",
	}

	cases := []struct {
		path string
		skip bool
	}{
		{"/api/v1/auth", true},
		{"/api/v1/auth/me", true},
		{"/api/v1/auth/sessions", true},
		{"/api/v1/users", true},
		{"/api/v1/users/42", true},
		{"/api/v1/health", true},
		{"/api/v1/health/cron", true},
		{"/api/v1/health/log", true},
		{"/api/v1/blocks", true},
		{"/api/v1/blocks/42", false},
		{"/api/v1/display/frame", false},
		{"/api/v1/settings", false},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			if got := shouldSkipCachePath(tc.path, patterns); got != tc.skip {
				t.Errorf("shouldSkipCachePath(%q) = %v, want %v", tc.path, got, tc.skip)
			}
		})
	}
}

func newCacheTestRouter(t *testing.T) (*gin.Engine, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Stands in for OptionalAuth: sets claims without blocking, so the
	// cache layer can tell authenticated requests apart.
	r.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set(ContextKeyUserID, "user-1")
		}
		c.Next()
	})
	r.Use(HTTPCache(rdb, HTTPCacheOptions{TTL: time.Minute}))
	r.GET("/api/v1/profile", func(c *gin.Context) {
		if !IsAuthenticated(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": "alice", "mail": "alice@example.edu"})
	})
	hits := 0
	r.GET("/api/v1/display/frame", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"render": hits})
	})
	return r, rdb
}

func TestHTTPCacheNeverStoresAuthenticatedResponses(t *testing.T) {
	r, rdb := newCacheTestRouter(t)

	authed := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	authed.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authed)
	if w.Code != http.StatusOK {
		t.Fatalf("authenticated request status = %d, want 200", w.Code)
	}

	keys, err := rdb.Keys(t.Context(), APICachePrefix+"*").Result()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("authenticated response was cached under %v", keys)
	}

	// An anonymous caller right after must get its own 401, not the
	// authenticated caller's payload.
	anon := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, anon)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous request status = %d, want 401", w.Code)
	}
	if w.Header().Get("x-bb-cache") == "hit" {
		t.Error("anonymous request served from cache")
	}
}

func TestHTTPCacheServesAnonymousHits(t *testing.T) {
	r, _ := newCacheTestRouter(t)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/display/frame", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", first.Code)
	}
	if first.Header().Get("x-bb-cache") == "hit" {
		t.Error("first request unexpectedly served from cache")
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/display/frame", nil))
	if second.Header().Get("x-bb-cache") != "hit" {
		t.Error("second anonymous request missed the cache")
	}
	if second.Body.String() != first.Body.String() {
		t.Errorf("cached body = %q, want %q", second.Body.String(), first.Body.String())
	}
}

func TestHTTPCacheSkipsNon200(t *testing.T) {
	r, rdb := newCacheTestRouter(t)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil))

	if second.Header().Get("x-bb-cache") == "hit" {
		t.Error("401 response served from cache")
	}
	keys, err := rdb.Keys(t.Context(), APICachePrefix+"*").Result()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("401 response was cached under %v", keys)
	}
}
