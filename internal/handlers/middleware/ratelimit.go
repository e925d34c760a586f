package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/threaddate-backend/internal/domain/errors"
)

// Limiter decide se uma chave ainda tem cota
type Limiter interface {
	Allow(key string) bool
}

// RateLimit limita requisições por usuário autenticado ou, sem sessão, por IP.
// Deve vir depois de Authenticate.
func RateLimit(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if id := CallerID(c); id != "" {
			key = "user:" + id
		}

		if !limiter.Allow(key) {
			c.Header("Retry-After", "1")
			abortProblem(c, http.StatusTooManyRequests, domainerrors.ProblemTypeRateLimited,
				"error.rate_limited.title", "error.rate_limited")
			return
		}

		c.Next()
	}
}
