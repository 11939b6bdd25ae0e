package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/househunt/marketplace-api/internal/api/handler"
	"github.com/househunt/marketplace-api/internal/api/middleware"
	"github.com/househunt/marketplace-api/internal/core/service"
	"github.com/househunt/marketplace-api/internal/infrastructure/db/postgres"
	"github.com/househunt/marketplace-api/internal/infrastructure/db/redis"
	"github.com/househunt/marketplace-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Repositories ---
	users := postgres.NewUserRepository(db)
	properties := postgres.NewPropertyRepository(db)
	listings := postgres.NewListingRepository(db)
	penalties := postgres.NewPenaltyRepository(db)
	disputes := postgres.NewDisputeRepository(db)
	reviews := postgres.NewReviewRepository(db)
	lifecycle := postgres.NewLifecycleRepository(db)

	// --- Services ---
	authService := service.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL)
	propertyService := service.NewPropertyService(properties, log)
	trustService := service.NewTrustService(penalties, log)
	listingService := service.NewListingService(listings, properties, trustService, log)
	reviewService := service.NewReviewService(reviews, listings, log)
	disputeService := service.NewDisputeService(disputes, listings, log)
	lifecycleService := service.NewLifecycleService(lifecycle, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userProfileHandler := handler.NewUserProfileHandler(authService, lifecycleService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	listingHandler := handler.NewListingHandler(listingService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	disputeHandler := handler.NewDisputeHandler(disputeService)
	lifecycleHandler := handler.NewLifecycleHandler(lifecycleService)

	// --- Shared middleware ---
	auth := middleware.Auth(cfg.JWTSecret, users)
	limiter := redis.NewRateLimiter(rdb, cfg.RateLimit.Window, cfg.RateLimit.Limit)
	writeLimit := middleware.RateLimit(limiter, "write", log)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register, middleware.RateLimit(limiter, "auth", log))
	e.POST("/auth/login", authHandler.Login, middleware.RateLimit(limiter, "auth", log))

	// --- Account self-management ---
	me := e.Group("/auth/me", auth)
	me.GET("", authHandler.Me)
	me.PATCH("", authHandler.UpdateMe)
	me.PATCH("/roles", authHandler.UpdateRoles)

	e.GET("/users/profile", userProfileHandler.Get, auth)

	// --- Properties (any authenticated user can register a location) ---
	props := e.Group("/properties", auth)
	props.POST("", propertyHandler.Create, writeLimit)
	props.GET("", propertyHandler.List)
	props.GET("/:id", propertyHandler.Get)
	props.PATCH("/:id", propertyHandler.Update, writeLimit)

	// --- Listings (search and detail are public) ---
	e.GET("/listings", listingHandler.Search)
	e.GET("/listings/:id", listingHandler.Get)

	agentListings := e.Group("/listings", auth, middleware.Require(middleware.CapAgent))
	agentListings.POST("", listingHandler.Create, writeLimit)
	agentListings.PATCH("/:id", listingHandler.Update, writeLimit)
	agentListings.POST("/:id/media", listingHandler.AttachMedia, writeLimit)

	// --- Reviews ---
	e.GET("/reviews", reviewHandler.ListByListing)
	e.POST("/reviews", reviewHandler.Create, auth, middleware.Require(middleware.CapTenant), writeLimit)

	// --- Disputes ---
	disputesGroup := e.Group("/disputes", auth)
	disputesGroup.POST("", disputeHandler.Create, writeLimit)
	disputesGroup.GET("", disputeHandler.List)
	disputesGroup.PATCH("/:id", disputeHandler.StartInvestigation)
	disputesGroup.PATCH("/:id/resolve", disputeHandler.Resolve)

	// --- Tenant lifecycle ---
	lc := e.Group("/lifecycle", auth, middleware.Require(middleware.CapTenant))
	lc.GET("/profile", lifecycleHandler.GetProfile)
	lc.PUT("/profile", lifecycleHandler.UpdateProfile)
	lc.GET("/lease-reminders", lifecycleHandler.LeaseReminder)
	lc.POST("/saved-searches", lifecycleHandler.CreateSavedSearch)
	lc.GET("/saved-searches", lifecycleHandler.ListSavedSearches)
	lc.POST("/rent-history", lifecycleHandler.CreateRentEntry)
	lc.GET("/rent-history", lifecycleHandler.ListRentEntries)
	lc.POST("/checklists", lifecycleHandler.CreateChecklist)
	lc.GET("/checklists", lifecycleHandler.ListChecklists)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
