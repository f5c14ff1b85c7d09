package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoplocal/backend-go/internal/config"
	"github.com/shoplocal/backend-go/internal/handler"
	"github.com/shoplocal/backend-go/internal/middleware"
)

// Handlers bundles the handlers the router wires up
type Handlers struct {
	Shop      *handler.ShopHandler
	Seller    *handler.SellerHandler
	Assistant *handler.AssistantHandler
	Auth      *handler.AuthHandler
}

// SetupRouter builds the HTTP routing table
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimit(120, time.Minute))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
		}

		api.GET("/shops", h.Shop.GetShops)

		assistant := api.Group("/assistant")
		{
			assistant.POST("/customer", h.Assistant.CustomerInsights)
			assistant.POST("/seller", h.Assistant.SellerInsights)
		}

		seller := api.Group("/seller")
		{
			seller.POST("/register", h.Seller.RegisterShop)
			seller.GET("/:id/inventory", h.Seller.GetInventory)
			seller.PUT("/:id/inventory", middleware.RequireAuth(cfg.JWTSecret), h.Seller.UpdateInventory)
		}
	}

	return r
}
