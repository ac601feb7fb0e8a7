package routes

import (
	"net/http"
	"time"

	"seatwise/config"
	"seatwise/handlers"
	"seatwise/middleware"
	"seatwise/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterSettingsRoutes registers the per-site reservation rule endpoints.
func RegisterSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sites/:siteId")
	{
		api.GET("/settings", hb.GetSettingsHandler)

		// Mutating endpoints require a channel token.
		protected := api.Group("")
		protected.Use(middleware.ChannelAuthMiddleware())
		protected.POST("/settings", hb.InitializeSettingsHandler)
		protected.PATCH("/settings", hb.UpdateSettingsHandler)
	}
}

// RegisterCalendarRoutes registers day ledger and availability endpoints.
// Availability is open; the caller's booking source rides the query string.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sites/:siteId/days/:date")
	{
		api.GET("/availability", hb.GetAvailabilityHandler)
		api.GET("/bookings", hb.GetBookingsHandler)

		protected := api.Group("")
		protected.Use(middleware.ChannelAuthMiddleware())
		protected.POST("", hb.InitializeDayHandler)
		protected.POST("/bookings", hb.AddBookingHandler)
		protected.PATCH("/bookings/:bookingId/status", hb.UpdateBookingStatusHandler)
	}
}

// RegisterTableRoutes registers the table registry and recommendation
// endpoints.
func RegisterTableRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sites/:siteId/tables")
	{
		api.GET("", hb.GetTableIDsHandler)
		api.POST("/recommendations", hb.GetRecommendationsHandler)

		protected := api.Group("")
		protected.Use(middleware.ChannelAuthMiddleware())
		protected.POST("", hb.RegisterTableHandler)
	}
}

// RegisterAuthRoutes registers the development-only channel token mint.
func RegisterAuthRoutes(r *gin.Engine) {
	if config.IsProduction() {
		return
	}
	r.POST("/api/auth/channel-token", handlers.MintChannelTokenHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterMetricsRoute exposes the Prometheus counters.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSettingsRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterTableRoutes(r, hb)
	RegisterAuthRoutes(r)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
