package routes

import (
	"net/http"
	"time"

	"infinity8/handlers"
	"infinity8/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAuthRoutes registers identity endpoints. Sign-in itself happens
// at the identity provider; these endpoints only resolve and provision
// profiles for tokens the provider issued.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/sync", hb.SyncUser)

		api.Use(middleware.AuthMiddleware(hb.Identity))
		api.GET("/me", hb.GetCurrentUser)
	}
}

// RegisterSpaceRoutes registers the space catalog. Browsing is public;
// catalog management requires an admin.
func RegisterSpaceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/spaces")
	{
		api.GET("", hb.ListSpaces)
		api.GET("/:id", hb.GetSpace)
		api.GET("/:id/availability", hb.GetSpaceAvailability)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(hb.Identity), middleware.AdminOnlyMiddleware())
		protected.POST("", hb.CreateSpace)
		protected.PUT("/:id", hb.UpdateSpace)
		protected.DELETE("/:id", hb.DeleteSpace)
	}
}

// RegisterWorkflowRoutes registers the booking panel session endpoints.
// Auth is optional on the group: anonymous users can browse dates and
// pick slots, and the submit step itself refuses anonymous callers
// without touching the booking service.
func RegisterWorkflowRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/workflow")
	{
		api.Use(middleware.OptionalAuthMiddleware(hb.Identity))
		api.POST("/sessions", hb.CreateWorkflowSession)
		api.GET("/sessions/:sessionID", hb.GetWorkflowState)
		api.PUT("/sessions/:sessionID/date", hb.SetWorkflowDate)
		api.PUT("/sessions/:sessionID/slots", hb.ToggleWorkflowSlot)
		api.POST("/sessions/:sessionID/refresh", hb.RefreshWorkflowAvailability)
		api.POST("/sessions/:sessionID/submit", hb.SubmitWorkflowBooking)
		api.DELETE("/sessions/:sessionID", hb.DeleteWorkflowSession)
	}
}

// RegisterBookingRoutes registers booking management for signed-in users.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware(hb.Identity))
		api.GET("", hb.ListMyBookings)
		api.GET("/:id", hb.GetBooking)
		api.DELETE("/:id", hb.CancelBooking)
	}
}

// RegisterAssistantRoutes registers the booking assistant endpoints. The
// widget works for anonymous visitors too, so auth is optional.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.OptionalAuthMiddleware(hb.Identity))
		api.POST("/chat", hb.ChatWithAssistant)
		api.GET("/status", hb.GetAssistantStatus)
		api.DELETE("/conversation", hb.ResetAssistantConversation)
	}
}

// RegisterAdminRoutes registers the admin dashboard endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AuthMiddleware(hb.Identity), middleware.AdminOnlyMiddleware())
		api.GET("/stats", hb.GetDashboardStats)
		api.GET("/bookings", hb.ListAllBookings)
		api.GET("/users", hb.ListUsers)
		api.PUT("/users/:id/role", hb.UpdateUserRole)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Infinity8"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, requestsPerMin int) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Conversation-Id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.RateLimitMiddleware(requestsPerMin))

	RegisterHealthRoute(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterAuthRoutes(r, hb)
	RegisterSpaceRoutes(r, hb)
	RegisterWorkflowRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
