package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/threaddate-backend/internal/handlers/middleware"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/i18n"
)

// T traduz key no idioma da requisição.
// Sem serviço i18n no contexto (ex.: testes de handler isolados) devolve a própria chave.
//
//	dto.T(c, "error.brand_already_exists", map[string]interface{}{"Name": "Lee", "Status": "verified"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	service := i18nService(c)
	if service == nil {
		return key
	}
	return service.T(language(c, service), key, params...)
}

func i18nService(c *gin.Context) *i18n.Service {
	value, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return nil
	}
	service, _ := value.(*i18n.Service)
	return service
}

func language(c *gin.Context, service *i18n.Service) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}
	if service != nil {
		return service.GetDefaultLanguage()
	}
	return "en"
}
