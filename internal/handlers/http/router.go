package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/handlers/middleware"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/i18n"
)

// RouterConfig reúne as dependências transversais do roteador
type RouterConfig struct {
	BaseURL        string
	AllowedOrigins string
	I18n           *i18n.Service
	Tokens         ports.TokenIssuer
	Limiter        middleware.Limiter
	Logger         ports.Logger
	// UploadDir é servido em /uploads quando o driver de storage é local
	UploadDir string
}

// Handlers agrupa os handlers registrados nas rotas
type Handlers struct {
	Auth     *AuthHandler
	Brand    *BrandHandler
	Tag      *TagHandler
	Item     *ItemHandler
	SEO      *SEOHandler
	Realtime *RealtimeHandler
	Health   *HealthHandler
}

// NewRouter monta o engine com middlewares globais e todas as rotas
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})

	router.Use(middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Authenticate(cfg.Tokens, cfg.Logger))

	router.GET("/health", h.Health.Health)
	router.GET("/robots.txt", h.SEO.Robots)
	router.GET("/sitemap.xml", h.SEO.Sitemap)

	if cfg.UploadDir != "" {
		router.Static("/uploads", cfg.UploadDir)
	}

	// Escritas passam pelo rate limit por usuário (ou IP)
	limited := middleware.RateLimit(cfg.Limiter)

	v1 := router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/signup", limited, h.Auth.SignUp)
			authGroup.POST("/login", limited, h.Auth.Login)
			authGroup.POST("/password/forgot", limited, h.Auth.ForgotPassword)
			authGroup.POST("/password/reset", limited, h.Auth.ResetPassword)
			authGroup.GET("/oauth/:provider", h.Auth.OAuthLogin)
			authGroup.GET("/callback/:provider", h.Auth.OAuthCallback)
			authGroup.GET("/me", h.Auth.Me)
		}

		brands := v1.Group("/brands")
		{
			brands.GET("", h.Brand.ListBrands)
			brands.GET("/search", h.Brand.SearchBrands)
			brands.POST("", limited, h.Brand.CreateBrand)
			brands.GET("/:slug", h.Brand.GetBrand)
			brands.GET("/:slug/tags", h.Tag.ListBrandTags)
		}

		tags := v1.Group("/tags")
		{
			tags.POST("", limited, h.Tag.SubmitTag)
			tags.GET("/:id", h.Tag.GetTag)
			tags.GET("/:id/vote", h.Tag.MyVote)
			tags.POST("/:id/vote", limited, h.Tag.CastVote)
			tags.DELETE("/:id/vote", limited, h.Tag.RemoveVote)
			tags.GET("/:id/evidence", h.Tag.ListEvidence)
			tags.POST("/:id/evidence", limited, h.Tag.AddEvidence)
		}

		v1.DELETE("/uploads", limited, h.Tag.DeleteUpload)

		items := v1.Group("/items")
		{
			items.GET("", h.Item.ListItems)
			items.POST("", limited, h.Item.CreateItem)
			items.GET("/:slug", h.Item.GetItem)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/brands/:id/verify", h.Brand.VerifyBrand)
			admin.POST("/brands/:id/reject", h.Brand.RejectBrand)
			admin.POST("/items/:id/approve", h.Item.ApproveItem)
			admin.POST("/items/:id/reject", h.Item.RejectItem)
		}

		v1.GET("/ws/tags/:id", h.Realtime.SubscribeTag)
	}

	return router
}
