package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/toyshare/toyshare-api/internal/api/handler"
	"github.com/toyshare/toyshare-api/internal/api/middleware"
	"github.com/toyshare/toyshare-api/internal/core/domain"
	"github.com/toyshare/toyshare-api/internal/core/ports"
)

// Dependencies carries the constructed stores and services the router wires
// into handlers. Stores are built once at process start and passed by
// reference; nothing is reached as ambient global state.
type Dependencies struct {
	Listings    ports.ListingService
	Sessions    ports.SessionService
	Suggestions ports.SuggestionService
	Geolocation ports.GeolocationService
	Store       ports.SlotStore
	JWTSecret   string
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("toyshare"))

	// --- Handlers ---
	listingHandler := handler.NewListingHandler(deps.Listings)
	sessionHandler := handler.NewSessionHandler(deps.Sessions)
	locationHandler := handler.NewLocationHandler(deps.Suggestions, deps.Geolocation)
	categoryHandler := handler.NewCategoryHandler()
	adminHandler := handler.NewAdminHandler(deps.Listings)

	authMiddleware := middleware.Auth(deps.JWTSecret)
	authLimiter := middleware.RateLimit(rate.Limit(5), 10)

	// --- Auth routes ---
	e.POST("/auth/login", sessionHandler.Login, authLimiter)
	e.POST("/auth/signup", sessionHandler.Signup, authLimiter)
	e.POST("/auth/logout", sessionHandler.Logout, authMiddleware)
	e.GET("/auth/me", sessionHandler.Me, authMiddleware)

	// --- Listings ---
	v1 := e.Group("/v1")
	v1.GET("/listings", listingHandler.Browse)
	v1.GET("/listings/featured", listingHandler.Featured)
	v1.GET("/listings/:id", listingHandler.Get)
	v1.GET("/users/:user_id/listings", listingHandler.ByUser)
	v1.POST("/listings", listingHandler.Create, authMiddleware)
	v1.PATCH("/listings/:id", listingHandler.Update, authMiddleware)
	v1.DELETE("/listings/:id", listingHandler.Delete, authMiddleware)

	// --- Categories & locations ---
	v1.GET("/categories", categoryHandler.List)
	v1.GET("/locations/suggestions", locationHandler.Suggest)
	v1.GET("/locations/current", locationHandler.Current)

	// --- Admin ---
	v1.GET("/admin/stats", adminHandler.Stats, authMiddleware, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes & metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Store)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
