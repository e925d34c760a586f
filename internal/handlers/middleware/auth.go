package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
)

const (
	// CallerIDContextKey guarda o id do perfil autenticado
	CallerIDContextKey = "caller_id"
	// CallerRoleContextKey guarda o papel declarado no token
	CallerRoleContextKey = "caller_role"
)

// Authenticate lê o Bearer token quando presente. Requisições sem token
// seguem anônimas; quem exige sessão são os serviços.
func Authenticate(tokens ports.TokenIssuer, logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortProblem(c, http.StatusUnauthorized, domainerrors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			logger.Debug("rejected session token", "error", err.Error(), "path", c.FullPath())
			abortProblem(c, http.StatusUnauthorized, domainerrors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		c.Set(CallerIDContextKey, claims.ProfileID)
		c.Set(CallerRoleContextKey, string(claims.Role))
		c.Next()
	}
}

// CallerID retorna o id do perfil autenticado ou "" para anônimos
func CallerID(c *gin.Context) string {
	return c.GetString(CallerIDContextKey)
}
