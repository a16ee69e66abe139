package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/siriart/billing-admin/internal/api/handler"
	"github.com/siriart/billing-admin/internal/api/middleware"
	"github.com/siriart/billing-admin/internal/core/domain"
	"github.com/siriart/billing-admin/internal/core/ports"
	"github.com/siriart/billing-admin/internal/core/service"
	"github.com/siriart/billing-admin/internal/infrastructure/changelog"
	"github.com/siriart/billing-admin/internal/infrastructure/config"
	redisinfra "github.com/siriart/billing-admin/internal/infrastructure/db/redis"
	"github.com/siriart/billing-admin/internal/infrastructure/jsonstore"
	"github.com/siriart/billing-admin/internal/pkg/cipher"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// sessions may be nil; revocation is then disabled and logout is cookie-only.
func NewRouter(cfg *config.Config, store *jsonstore.Store, changes *changelog.Logger, ciph *cipher.Cipher, sessions *redisinfra.SessionRevoker, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("billing_admin"))

	// --- Dependencies ---
	var revoker ports.SessionRevoker
	var rdb *goredis.Client
	if sessions != nil {
		revoker = sessions
		rdb = sessions.Client()
	}

	userRepo := jsonstore.NewUserRepository(store)
	authService := service.NewAuthService(userRepo, ciph, revoker, service.DefaultSessionTTL, log)
	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())

	productHandler := handler.NewProductHandler(service.NewProductService(jsonstore.NewProductRepository(store), changes))
	storeHandler := handler.NewStoreHandler(service.NewStoreService(jsonstore.NewStoreRepository(store), changes))
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo, ciph, changes))
	settingsHandler := handler.NewSettingsHandler(service.NewSettingsService(jsonstore.NewSettingsRepository(store), changes))
	billHandler := handler.NewBillHandler(service.NewBillService(jsonstore.NewBillRepository(store), changes))
	notificationHandler := handler.NewNotificationHandler(service.NewNotificationService(jsonstore.NewNotificationRepository(store), changes))

	sessionRequired := middleware.Session(authService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)

	// --- Resource routes (session-protected) ---
	apiGroup := e.Group("/api", sessionRequired)

	apiGroup.GET("/products", productHandler.List)
	apiGroup.POST("/products", productHandler.Create)
	apiGroup.GET("/products/:id", productHandler.Get)
	apiGroup.PUT("/products/:id", productHandler.Update)
	apiGroup.DELETE("/products/:id", productHandler.Delete)

	apiGroup.GET("/stores", storeHandler.List)
	apiGroup.POST("/stores", storeHandler.Create)
	apiGroup.GET("/stores/:id", storeHandler.Get)
	apiGroup.PUT("/stores/:id", storeHandler.Update)
	apiGroup.DELETE("/stores/:id", storeHandler.Delete)

	apiGroup.GET("/settings", settingsHandler.Get)
	apiGroup.POST("/settings", settingsHandler.Replace)

	apiGroup.GET("/users", userHandler.List, adminOnly)
	apiGroup.POST("/users", userHandler.Create, adminOnly)
	apiGroup.GET("/users/:id", userHandler.Get, adminOnly)
	apiGroup.PUT("/users/:id", userHandler.Update, adminOnly)
	apiGroup.DELETE("/users/:id", userHandler.Delete, adminOnly)
	apiGroup.GET("/users/:id/password", authHandler.Password, adminOnly)

	apiGroup.GET("/bills", billHandler.List)
	apiGroup.POST("/bills", billHandler.Create)
	apiGroup.POST("/bills/import", billHandler.Import)
	apiGroup.DELETE("/bills/:id", billHandler.Delete)

	apiGroup.GET("/notifications", notificationHandler.List)
	apiGroup.POST("/notifications", notificationHandler.Create)
	apiGroup.PUT("/notifications", notificationHandler.MarkAllRead)
	apiGroup.GET("/notifications/:id", notificationHandler.Get)
	apiGroup.PUT("/notifications/:id", notificationHandler.MarkRead)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(store.Dir(), rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
