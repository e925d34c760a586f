package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/threaddate-backend/docs"
	"github.com/rafabene/threaddate-backend/internal/handlers/dto"
	httphandlers "github.com/rafabene/threaddate-backend/internal/handlers/http"
	"github.com/rafabene/threaddate-backend/internal/handlers/middleware"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/auth"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/cache"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/config"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/i18n"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/logging"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/mail"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/ratelimit"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/realtime"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/storage"
	"github.com/rafabene/threaddate-backend/internal/services"
)

// @title                       ThreadDate API
// @version                     1.0
// @description                 Catálogo colaborativo de etiquetas de roupas vintage para datação de peças.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting threaddate backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	// Inicializar i18n
	var i18nService *i18n.Service
	if cfg.I18n.LocalesDir != "" {
		i18nService, err = i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	} else {
		i18nService, err = i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
	}
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	if err := dto.RegisterValidators(); err != nil {
		log.Fatal(err)
	}

	// Infraestrutura compartilhada
	ctx := context.Background()
	objectStorage, err := storage.New(ctx, &cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to initialize storage", "driver", cfg.Storage.Driver, "error", err)
		log.Fatal(err)
	}
	if closer, ok := objectStorage.(io.Closer); ok {
		defer closer.Close()
	}

	tagCache, err := cache.NewTagDetailCache(cfg.Cache.MaxEntries, cfg.Cache.TTL)
	if err != nil {
		log.Fatal(err)
	}
	defer tagCache.Close()

	limiter := ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute)
	defer limiter.Stop()

	hub := realtime.NewHub(middleware.OriginChecker(cfg.CORS.AllowedOrigins), logger)
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	oauthService := auth.NewOAuthService(&cfg.OAuth)
	logger.Info("oauth providers configured", "providers", oauthService.Providers())

	// Inicializar repositories
	profileRepo := postgres.NewProfileRepository(db, logger)
	resetRepo := postgres.NewPasswordResetRepository(db, logger)
	brandRepo := postgres.NewBrandRepository(db, logger)
	tagRepo := postgres.NewTagRepository(db, logger)
	voteRepo := postgres.NewVoteRepository(db, logger)
	evidenceRepo := postgres.NewEvidenceRepository(db, logger)
	itemRepo := postgres.NewClothingItemRepository(db, logger)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	brandService := services.NewBrandService(brandRepo, profileRepo, logger)
	tagService := services.NewTagService(tagRepo, brandRepo, itemRepo, evidenceRepo, voteRepo, profileRepo,
		objectStorage, tagCache, logger, cfg.Storage.MaxImageBytes)
	voteService := services.NewVoteService(voteRepo, tagRepo, uow, tagCache, hub, logger)
	itemService := services.NewClothingItemService(itemRepo, brandRepo, profileRepo, logger)
	authService := services.NewAuthService(profileRepo, resetRepo, uow,
		auth.NewBcryptHasher(bcrypt.DefaultCost), jwtService, oauthService, mail.NewLogMailer(logger), logger,
		cfg.Server.FrontendURL, cfg.JWT.ResetExpiry)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	uploadDir := ""
	if strings.EqualFold(cfg.Storage.Driver, "local") {
		uploadDir = cfg.Storage.LocalDir
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		I18n:           i18nService,
		Tokens:         jwtService,
		Limiter:        limiter,
		Logger:         logger,
		UploadDir:      uploadDir,
	}, httphandlers.Handlers{
		Auth:     httphandlers.NewAuthHandler(authService, logger, cfg.Env == "production"),
		Brand:    httphandlers.NewBrandHandler(brandService, logger),
		Tag:      httphandlers.NewTagHandler(tagService, voteService, logger),
		Item:     httphandlers.NewItemHandler(itemService, logger),
		SEO:      httphandlers.NewSEOHandler(brandService, cfg.Server.FrontendURL, logger),
		Realtime: httphandlers.NewRealtimeHandler(tagService, hub, logger),
		Health:   httphandlers.NewHealthHandler(sqlDB, cfg.Env),
	})

	// Swagger
	docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.Server.BaseURL, "https://"), "http://")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
