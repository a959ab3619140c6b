package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/login", RateLimit(1, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request should be limited, got %v", codes)
	}
}

func TestRateLimit_TracksClientsIndependently(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/login", RateLimit(1, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRequest(http.MethodGet, "/login", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, first)
	if w.Code != http.StatusOK {
		t.Fatalf("first client should pass, got %d", w.Code)
	}

	blocked := httptest.NewRequest(http.MethodGet, "/login", nil)
	blocked.RemoteAddr = "10.0.0.1:1234"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, blocked)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("exhausted client should be limited, got %d", w.Code)
	}

	other := httptest.NewRequest(http.MethodGet, "/login", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, other)
	if w.Code != http.StatusOK {
		t.Fatalf("other client should have its own bucket, got %d", w.Code)
	}
}
