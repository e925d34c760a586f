package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/threaddate-backend/internal/infrastructure/i18n"
)

// abortProblem interrompe a requisição com um problema RFC 7807 traduzido
func abortProblem(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	p := problems.NewDetailedProblem(status, translate(c, detailKey))
	p.Type = baseURL + problemType
	p.Title = translate(c, titleKey)
	p.Instance = c.Request.URL.Path

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, p)
}

func translate(c *gin.Context, key string) string {
	service, ok := c.Value(I18nServiceContextKey).(*i18n.Service)
	if !ok {
		return key
	}
	lang, _ := c.Value(LanguageContextKey).(string)
	return service.T(lang, key)
}
