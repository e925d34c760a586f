package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// countingLimiter libera as primeiras n requisições de cada chave
type countingLimiter struct {
	n    int
	seen map[string]int
}

func (l *countingLimiter) Allow(key string) bool {
	l.seen[key]++
	return l.seen[key] <= l.n
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := &countingLimiter{n: 2, seen: map[string]int{}}
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-Test-Caller"); id != "" {
			c.Set(CallerIDContextKey, id)
		}
		c.Next()
	})
	router.Use(RateLimit(limiter))
	router.POST("/vote", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	do := func(caller string) int {
		req := httptest.NewRequest("POST", "/vote", nil)
		if caller != "" {
			req.Header.Set("X-Test-Caller", caller)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("bloqueia depois da cota", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if code := do("alice"); code != http.StatusNoContent {
				t.Fatalf("requisição %d: esperava 204, obteve %d", i, code)
			}
		}
		if code := do("alice"); code != http.StatusTooManyRequests {
			t.Errorf("esperava 429, obteve %d", code)
		}
	})

	t.Run("cota é separada por usuário", func(t *testing.T) {
		if code := do("bob"); code != http.StatusNoContent {
			t.Errorf("esperava 204, obteve %d", code)
		}
	})

	t.Run("anônimos usam o IP como chave", func(t *testing.T) {
		do("")
		if limiter.seen["ip:192.0.2.1"] != 1 {
			t.Errorf("esperava chave por IP, chaves vistas: %v", limiter.seen)
		}
	})
}
