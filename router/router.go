package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-order-app/config"
	"github.com/yeremiapane/food-order-app/controllers"
	"github.com/yeremiapane/food-order-app/middlewares"
	"github.com/yeremiapane/food-order-app/realtime"
	"github.com/yeremiapane/food-order-app/store"
	"github.com/yeremiapane/food-order-app/web"
)

// SetupRouter wires pages, the JSON API and the websocket endpoint around s.
// Mutations made through any route are published on hub.
func SetupRouter(cfg *config.Config, s store.Store, hub *realtime.Hub, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware(log))
	r.Use(middlewares.SecurityHeaders())
	r.SetHTMLTemplate(web.Templates())

	s = store.WithEvents(s, hub)
	limiter := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	pageCtrl := controllers.NewFoodOrderController(s, cfg.ListingRoute, log)
	apiCtrl := controllers.NewFoodOrderAPIController(s)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ----------------------------------------------------------------
	//                            PAGES
	// ----------------------------------------------------------------
	if cfg.ListingRoute != "/" {
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, cfg.ListingRoute)
		})
	}
	r.GET(cfg.ListingRoute, pageCtrl.ListFoodItems)
	r.GET("/FoodSingle/:slug/:id", pageCtrl.ShowEditForm)
	r.POST("/FoodSingle/:slug/:id", limiter.RateLimit(), pageCtrl.SubmitEditForm)

	// ----------------------------------------------------------------
	//                             API
	// ----------------------------------------------------------------
	api := r.Group("/api/food-orders")
	api.GET("", apiCtrl.GetAllFoodOrders)
	api.GET("/:id", apiCtrl.GetFoodOrderByID)
	api.PATCH("/:id", limiter.RateLimit(), apiCtrl.UpdateFoodOrder)
	api.DELETE("/:id", limiter.RateLimit(), apiCtrl.DeleteFoodOrder)

	r.GET("/ws", hub.ServeWS)

	return r
}
