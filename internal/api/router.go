package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/blog-platform/blog-api/internal/api/handler"
	"github.com/blog-platform/blog-api/internal/api/middleware"
	"github.com/blog-platform/blog-api/internal/core/domain"
	"github.com/blog-platform/blog-api/internal/core/service"
	"github.com/blog-platform/blog-api/internal/infrastructure/config"
	mongodb "github.com/blog-platform/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/blog-platform/blog-api/internal/infrastructure/db/redis"
	"github.com/blog-platform/blog-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Production())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	// Base64 images travel in the JSON body, so the limit is generous.
	e.Use(echomiddleware.BodyLimit(cfg.BodyLimit))
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	limiter := redisdb.NewLoginLimiter(rdb)

	authService := service.NewAuthService(userRepo, tokens, limiter, log)
	postService := service.NewPostService(postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	blogHandler := handler.NewBlogHandler(postService)
	adminHandler := handler.NewAdminHandler(userRepo, postRepo)

	authGate := middleware.Auth(tokens, userRepo)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authGate)

	// --- Blog routes (reads public, mutations gated) ---
	e.GET("/blogs", blogHandler.List)
	e.GET("/blogs/categories/list", blogHandler.Categories)
	e.GET("/blogs/user/:userId", blogHandler.ListByUser)
	e.GET("/blogs/:id", blogHandler.Get)
	e.POST("/blogs", blogHandler.Create, authGate)
	e.PUT("/blogs/:id", blogHandler.Update, authGate)
	e.DELETE("/blogs/:id", blogHandler.Delete, authGate)

	// --- Admin ---
	e.GET("/admin/stats", adminHandler.Stats, authGate, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
