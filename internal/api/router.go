package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/reelspro/reels-api/docs"
	"github.com/reelspro/reels-api/internal/api/handler"
	"github.com/reelspro/reels-api/internal/api/middleware"
	"github.com/reelspro/reels-api/internal/core/service"
	"github.com/reelspro/reels-api/internal/infrastructure/config"
	mongodb "github.com/reelspro/reels-api/internal/infrastructure/db/mongo"
	redisdb "github.com/reelspro/reels-api/internal/infrastructure/db/redis"
)

// NewRouter wires repositories, services, and handlers onto a fresh Echo
// instance. The storage handles are created once by the composition root and
// passed in; nothing here opens connections.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("reels"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	videoRepo := mongodb.NewVideoRepository(db)
	sessionRepo := redisdb.NewSessionRepository(rdb)

	authService := service.NewAuthService(userRepo, log)
	sessionService := service.NewSessionService(sessionRepo, cfg.SessionTTL, log)
	videoService := service.NewVideoService(videoRepo, log)
	mediaService := service.NewMediaService(cfg.Media)

	authHandler := handler.NewAuthHandler(authService, sessionService)
	videoHandler := handler.NewVideoHandler(videoService)
	mediaHandler := handler.NewMediaHandler(mediaService)

	// Session resolution runs on every request; it only annotates the
	// context, gated handlers enforce the actual gate.
	e.Use(middleware.Session(sessionService))

	// --- API routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)

	e.GET("/api/videos", videoHandler.List)
	e.POST("/api/videos", videoHandler.Create)

	e.GET("/api/media/upload-credentials", mediaHandler.UploadCredentials)

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
