package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger verifica a conexão com o banco
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler responde ao health check
type HealthHandler struct {
	db  Pinger
	env string
}

// NewHealthHandler cria um novo HealthHandler
func NewHealthHandler(db Pinger, env string) *HealthHandler {
	return &HealthHandler{db: db, env: env}
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"database": "unreachable",
			"env":      h.env,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "ok",
		"env":      h.env,
	})
}
