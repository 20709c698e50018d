package routes

import (
	"net/http"
	"time"

	"busadmin/handlers"
	"busadmin/middleware"
	"busadmin/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the login/logout endpoints. These stay outside
// the admin gate so the operator can obtain the session cookie.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
		api.GET("/logout", hb.LogoutHandler)
	}
}

// RegisterDashboardRoutes registers the analytics and booking listing
// endpoints behind the admin cookie gate.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.AdminAuthMiddleware())
		api.GET("/analytics", hb.GetAnalyticsHandler)
		api.GET("/bookings", hb.ListBookingsHandler)
	}
}

// RegisterRefundRoutes registers the refund queue and processing endpoints.
func RegisterRefundRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/refunds")
	{
		api.Use(middleware.AdminAuthMiddleware())
		api.GET("", hb.ListPendingRefundsHandler)
		api.POST("", hb.ProcessRefundHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterRefundRoutes(r, hb)
	RegisterHealthRoute(r)
}
