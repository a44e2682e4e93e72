package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"gerry-coffee/internal/state"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, app *state.App) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", metricsHandler())

	h := &handlers{app: app, logger: logger}

	api := router.Group("/api")
	{
		api.GET("/menu", h.menu)
		api.GET("/promotions/active", h.activePromotions)

		api.GET("/cart", h.cart)
		api.POST("/cart/items", h.addCartItem)
		api.POST("/cart/combos", h.addCartCombo)
		api.PATCH("/cart/items/:lineId/quantity", h.updateCartItem)
		api.DELETE("/cart/items/:lineId", h.removeCartItem)

		api.POST("/discounts/preview", h.previewDiscount)
		api.POST("/checkout", h.checkout)

		api.GET("/loyalty/:userId", h.loyalty)
		api.POST("/reservations", h.createReservation)
		api.GET("/tables/availability", h.tableAvailability)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/products", h.listProducts)
		admin.PUT("/products", h.upsertProduct)
		admin.DELETE("/products/:id", h.deleteProduct)

		admin.GET("/toppings", h.listToppings)
		admin.PUT("/toppings", h.upsertTopping)
		admin.DELETE("/toppings/:id", h.deleteTopping)

		admin.GET("/categories", h.listCategories)
		admin.PUT("/categories", h.upsertCategory)
		admin.DELETE("/categories/:id", h.deleteCategory)

		admin.GET("/combos", h.listCombos)
		admin.PUT("/combos", h.upsertCombo)
		admin.DELETE("/combos/:id", h.deleteCombo)

		admin.GET("/promotions", h.listPromotions)
		admin.POST("/promotions", h.addPromotion)
		admin.DELETE("/promotions/:id", h.deletePromotion)

		admin.GET("/banners", h.listBanners)
		admin.PUT("/banners", h.upsertBanner)
		admin.DELETE("/banners/:id", h.deleteBanner)

		admin.GET("/orders", h.listOrders)
		admin.PATCH("/orders/:id/status", h.updateOrderStatus)

		admin.GET("/reservations", h.listReservations)
		admin.PATCH("/reservations/:id/status", h.updateReservationStatus)

		admin.GET("/users", h.listUsers)
		admin.PATCH("/users/:id/role", h.updateUserRole)

		admin.GET("/settings", h.getSettings)
		admin.PUT("/settings", h.updateSettings)
	}

	return router
}

type handlers struct {
	app    *state.App
	logger *log.Logger
}
