package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"salonbook/handlers"
	"salonbook/middleware"
)

// RegisterWizardRoutes registers the booking wizard endpoints. Every
// session route requires the signed token issued when the session was
// started.
func RegisterWizardRoutes(r *gin.Engine, wh *handlers.WizardHandler) {
	api := r.Group("/api/wizard")
	{
		api.POST("/session", wh.StartSession)

		session := api.Group("/session/:sessionID")
		session.Use(middleware.SessionTokenMiddleware())
		session.GET("", wh.GetSession)
		session.DELETE("", wh.CancelSession)
		session.POST("/services/toggle", wh.ToggleService)
		session.GET("/calendar", wh.MonthGrid)
		session.PUT("/date", wh.SelectDate)
		session.PUT("/time", wh.SelectTime)
		session.PUT("/stylist", wh.SelectStaff)
		session.POST("/advance", wh.Advance)
		session.POST("/back", wh.Back)
		session.POST("/submit", wh.Submit)
	}
}

// RegisterCatalogRoutes registers the read-only reference-data endpoints.
func RegisterCatalogRoutes(r *gin.Engine, ch *handlers.CatalogHandler) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", ch.ListServices)
		api.GET("/stylists", ch.ListStylists)
	}
	r.GET("/api/outlet/hours", ch.OutletHours)
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes applies shared middleware and mounts all route groups.
func RegisterRoutes(r *gin.Engine, wh *handlers.WizardHandler, ch *handlers.CatalogHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterWizardRoutes(r, wh)
	RegisterCatalogRoutes(r, ch)
	RegisterHealthRoute(r)
}
