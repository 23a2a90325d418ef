package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoply/storefront-api/internal/api/handler"
	"github.com/shoply/storefront-api/internal/api/middleware"
	"github.com/shoply/storefront-api/internal/core/ports"
	"github.com/shoply/storefront-api/internal/core/service"
	mongostore "github.com/shoply/storefront-api/internal/infrastructure/db/mongo"
	redisstore "github.com/shoply/storefront-api/internal/infrastructure/db/redis"
	"github.com/shoply/storefront-api/internal/infrastructure/http/handlers"
)

const sessionTokenTTL = 7 * 24 * time.Hour

// Options carries the router's non-infrastructure settings.
type Options struct {
	JWTSecret     string
	Currency      string
	SecureCookies bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	payments ports.PaymentProvider,
	media ports.MediaStore,
	opts Options,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	productRepo := mongostore.NewProductRepository(db)
	orderRepo := mongostore.NewOrderRepository(db)
	cartStore := redisstore.NewCartStore(rdb)
	guard := redisstore.NewConfirmationGuard(rdb)

	authService := service.NewAuthService(userRepo, opts.JWTSecret, sessionTokenTTL)
	productService := service.NewProductService(productRepo, log)
	cartService := service.NewCartService(cartStore, log)
	checkoutService := service.NewCheckoutService(cartStore, orderRepo, payments, guard, opts.Currency, log)

	authHandler := handler.NewAuthHandler(authService, opts.SecureCookies)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	uploadHandler := handler.NewUploadHandler(media)

	requireAuth := middleware.Auth(authService, userRepo)
	optionalAuth := middleware.OptionalAuth(authService, userRepo)
	requireAdmin := middleware.RequireAdmin()
	cartCookie := middleware.CartID()

	// --- Auth ---
	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, requireAuth)

	// --- Catalog: public reads, admin-gated mutations ---
	products := e.Group("/v1/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, requireAuth, requireAdmin)
	products.PATCH("/:id", productHandler.Update, requireAuth, requireAdmin)
	products.DELETE("/:id", productHandler.Delete, requireAuth, requireAdmin)

	// --- Cart: keyed by the cart cookie; login optional while shopping ---
	cart := e.Group("/v1/cart", cartCookie, optionalAuth)
	cart.GET("", cartHandler.Get)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items", cartHandler.AddItem)
	cart.PATCH("/items/:productId", cartHandler.UpdateItem)
	cart.DELETE("/items/:productId", cartHandler.RemoveItem)

	// --- Checkout ---
	e.POST("/v1/payments/intent", checkoutHandler.CreateIntent, requireAuth)
	e.POST("/v1/checkout/confirm", checkoutHandler.Confirm, requireAuth, cartCookie)
	e.GET("/v1/orders", checkoutHandler.ListOrders, requireAuth)

	// --- Uploads ---
	e.POST("/v1/uploads/image", uploadHandler.UploadImage, requireAuth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
