package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/config"
	"github.com/yeremiapane/restaurant-ordering/controllers"
	"github.com/yeremiapane/restaurant-ordering/database"
	"github.com/yeremiapane/restaurant-ordering/kds"
	"github.com/yeremiapane/restaurant-ordering/middlewares"
	"github.com/yeremiapane/restaurant-ordering/repositories"
	"github.com/yeremiapane/restaurant-ordering/services"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

// SetupRouter builds the engine around an already opened store.
func SetupRouter(cfg *config.Config, store *database.Store, hub *kds.Hub) *gin.Engine {
	utils.RegisterJSONFieldNames()
	if hub == nil {
		hub = kds.NewHub()
	}

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.ErrorLogger.Printf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		utils.RespondDetail(c, http.StatusInternalServerError, "Internal server error")
	}))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders(cfg.HTTP.SecurityHeaders))
	r.Use(middlewares.CORSMiddlewares(cfg.HTTP.AllowOrigins))
	r.Use(middlewares.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst).RateLimit())

	menuRepo := repositories.NewMenuItemRepository(store)
	orderRepo := repositories.NewOrderRepository(store)

	healthCtrl := controllers.NewHealthController(store, cfg.DB)
	menuCtrl := controllers.NewMenuController(services.NewMenuService(menuRepo))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(menuRepo, orderRepo, hub))
	kdsCtrl := controllers.NewKDSController(hub)

	r.GET("/", healthCtrl.Root)
	r.GET("/test", healthCtrl.Diagnostics)

	api := r.Group("/api")
	{
		api.GET("/menu", menuCtrl.ListMenu)
		api.POST("/menu", menuCtrl.CreateMenuItem)
		api.POST("/menu/seed", menuCtrl.SeedMenu)

		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders", orderCtrl.ListOrders)
	}

	// kitchen display feed
	r.GET("/kds/ws", kdsCtrl.Stream)

	return r
}
