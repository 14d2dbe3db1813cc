package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrined/proProjectWineStore/internal/container"
	"github.com/dmitrined/proProjectWineStore/internal/handlers"
	"github.com/dmitrined/proProjectWineStore/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	// Set Gin mode for production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "winestore-api",
			})
		})
	}

	// admin gate for catalog and event management
	auth := middleware.AuthMiddleware(container.Logger)
	admin := middleware.RequireAdmin()

	wineRoutes := v1.Group("/wines")
	{
		wineRoutes.GET("", handlers.ListWines(container.WineService))
		wineRoutes.GET("/featured", handlers.ListFeaturedWines(container.WineService))
		wineRoutes.GET("/top-rated", handlers.ListTopRatedWines(container.WineService))
		wineRoutes.GET("/filters/grapes", handlers.ListGrapeVarieties(container.WineService))
		wineRoutes.GET("/:slug", handlers.GetWineBySlug(container.WineService))

		wineRoutes.POST("", auth, admin, handlers.CreateWine(container.WineService))
		wineRoutes.PUT("/:slug", auth, admin, handlers.UpdateWine(container.WineService))
		wineRoutes.DELETE("/:slug", auth, admin, handlers.DeleteWine(container.WineService))
	}

	eventRoutes := v1.Group("/events")
	{
		eventRoutes.GET("", handlers.ListUpcomingEvents(container.EventService))
		eventRoutes.GET("/:slug", handlers.GetEventBySlug(container.EventService))
		eventRoutes.POST("/bookings", handlers.CreateBooking(container.EventService))

		eventRoutes.POST("", auth, admin, handlers.CreateEvent(container.EventService))
		eventRoutes.PUT("/:slug", auth, admin, handlers.UpdateEvent(container.EventService))
		eventRoutes.DELETE("/:slug", auth, admin, handlers.DeleteEvent(container.EventService))
		eventRoutes.GET("/:slug/bookings", auth, admin, handlers.ListBookingsForEvent(container.EventService))
	}

	v1.POST("/cart/calculate", handlers.CalculateCart(container.CartService))

	aiRoutes := v1.Group("/ai")
	{
		aiRoutes.POST("/recommend", handlers.RecommendWines(container.SommelierService))
		aiRoutes.GET("/search", handlers.SearchWinesAI())
	}

	return r
}
