package middleware

import (
	"sort"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/rafabene/threaddate-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware escolhe o idioma das mensagens de cada requisição
type I18nMiddleware struct {
	i18nService *i18n.Service
	matcher     language.Matcher
	// languages[i] é o código de locale correspondente à tag i do matcher
	languages []string
}

// NewI18nMiddleware cria um novo middleware de i18n.
// O idioma padrão fica na primeira posição do matcher, que é o que
// language.Matcher devolve quando nada combina.
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	def := i18nService.GetDefaultLanguage()

	others := make([]string, 0)
	for _, lang := range i18nService.GetSupportedLanguages() {
		if lang != def {
			others = append(others, lang)
		}
	}
	sort.Strings(others)

	languages := append([]string{def}, others...)
	tags := make([]language.Tag, 0, len(languages))
	known := make([]string, 0, len(languages))
	for _, lang := range languages {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		known = append(known, lang)
	}

	return &I18nMiddleware{
		i18nService: i18nService,
		matcher:     language.NewMatcher(tags),
		languages:   known,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=pt-BR
// 2. Accept-Language
// 3. Idioma padrão
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.resolve(c.Query("lang"), c.GetHeader("Accept-Language"))

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

func (m *I18nMiddleware) resolve(query, acceptLanguage string) string {
	if query != "" {
		if m.i18nService.IsLanguageSupported(query) {
			return query
		}
		if tag, err := language.Parse(query); err == nil {
			if lang, ok := m.match(tag); ok {
				return lang
			}
		}
	}

	if acceptLanguage != "" {
		// Ex.: "pt-BR,pt;q=0.9,en-US;q=0.8" -> pt-BR
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			if lang, ok := m.match(tags...); ok {
				return lang
			}
		}
	}

	return m.i18nService.GetDefaultLanguage()
}

func (m *I18nMiddleware) match(tags ...language.Tag) (string, bool) {
	if len(m.languages) == 0 {
		return "", false
	}
	_, idx, confidence := m.matcher.Match(tags...)
	if confidence == language.No || idx >= len(m.languages) {
		return "", false
	}
	return m.languages[idx], true
}
