package routes

import (
	"net/http"
	"time"

	"framelight/config"
	"framelight/handlers"
	"framelight/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversation endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/chat", hb.ChatHandler)
		api.GET("/messages/:session_id", hb.GetMessagesHandler)
	}
}

// RegisterLeadRoutes registers the lead endpoints.
func RegisterLeadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/leads", hb.CreateLeadHandler)
		api.GET("/leads", hb.ListLeadsHandler)
	}
}

// RegisterCatalogRoutes registers the static content endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/portfolio", hb.GetPortfolioHandler)
		api.GET("/packages", hb.GetPackagesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"service":    "photography-chatbot-backend",
			"datastores": utils.GetHealthStatus(),
		})
	})
}

// RegisterIndexRoute registers the API index endpoint.
func RegisterIndexRoute(r *gin.Engine) {
	r.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Photography Studio API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"chat":      "/api/chat",
				"messages":  "/api/messages/:session_id",
				"leads":     "/api/leads",
				"portfolio": "/api/portfolio",
				"packages":  "/api/packages",
			},
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.CORSOriginList(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterLeadRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterIndexRoute(r)
}
