package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/airbean/order-system/docs"
	"github.com/airbean/order-system/internal/api/handler"
	"github.com/airbean/order-system/internal/api/middleware"
	"github.com/airbean/order-system/internal/core/domain"
	"github.com/airbean/order-system/internal/core/ports"
	"github.com/airbean/order-system/internal/core/service"
	"github.com/airbean/order-system/internal/core/token"
	mongodb "github.com/airbean/order-system/internal/infrastructure/db/mongo"
	redisdb "github.com/airbean/order-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// This is the single authoritative route table; every protected route chains
// Auth strictly before RBAC.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	tokens *token.Manager,
	events ports.EventPublisher,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("airbean"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	campaignRepo := mongodb.NewCampaignRepository(db)
	menuCache := redisdb.NewMenuCache(rdb)

	authService := service.NewAuthService(userRepo, tokens, log)
	productService := service.NewProductService(productRepo, menuCache, events, log)
	campaignService := service.NewCampaignService(campaignRepo, productRepo, events, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	campaignHandler := handler.NewCampaignHandler(campaignService)

	authenticated := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Catalog routes (reads public, writes admin) ---
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)
	e.POST("/products", productHandler.Create, authenticated, adminOnly)
	e.PUT("/products/:id", productHandler.Update, authenticated, adminOnly)
	e.DELETE("/products/:id", productHandler.Delete, authenticated, adminOnly)

	// --- Campaign routes (admin) ---
	e.POST("/campaigns", campaignHandler.Create, authenticated, adminOnly)
	e.GET("/campaigns", campaignHandler.List, authenticated, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
