package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stagepass/api/internal/container"
	"github.com/stagepass/api/internal/handlers"
	"github.com/stagepass/api/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(gin.Recovery())

	api := r.Group("/api")

	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"status":  "OK",
			"service": "stagepass-api",
		})
	})

	auth := middleware.Auth(c.Config.JWTSecret)

	clients := api.Group("/clients")
	{
		clients.POST("/register", handlers.RegisterUser(c.UserService))
		clients.POST("/login", handlers.LoginUser(c.UserService))
		clients.GET("/me", auth, handlers.Me(c.UserService))
		clients.POST("/purchase", auth, handlers.MakePurchase(c.PurchaseService))
		clients.GET("/purchases", auth, handlers.ListMyPurchases(c.PurchaseService))
	}

	shows := api.Group("/shows")
	{
		shows.GET("/concerts", handlers.ListConcerts(c.CatalogService))
		shows.GET("/historical", handlers.ListConcerts(c.CatalogService))
		shows.GET("/artists", handlers.ListArtists(c.CatalogService))
		shows.GET("/venues", handlers.ListVenues(c.CatalogService))
		shows.GET("/unavailable-seats/:id", handlers.UnavailableSeats(c.CatalogService))
	}

	admin := api.Group("/admin")
	admin.Use(auth, middleware.RequireAdmin())
	{
		admin.POST("/venues", handlers.CreateVenue(c.CatalogService))
		admin.PUT("/venues/:id", handlers.UpdateVenue(c.CatalogService))
		admin.DELETE("/venues/:id", handlers.DeleteVenue(c.CatalogService))

		admin.POST("/artists", handlers.CreateArtist(c.CatalogService))
		admin.PUT("/artists/:id", handlers.UpdateArtist(c.CatalogService))
		admin.DELETE("/artists/:id", handlers.DeleteArtist(c.CatalogService))

		admin.POST("/concerts", handlers.CreateConcert(c.CatalogService))
		admin.PUT("/concerts/:id", handlers.UpdateConcert(c.CatalogService))
		admin.DELETE("/concerts/:id", handlers.DeleteConcert(c.CatalogService))

		admin.GET("/sales/:id", handlers.ViewSales(c.CatalogService))
		admin.POST("/recommend-pricing", handlers.RecommendPricing(c.CatalogService))
		admin.GET("/purchases", handlers.ListAllPurchases(c.CatalogService))
	}

	return r
}
