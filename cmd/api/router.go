package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parking-backend/internal/shared/middleware"
	"parking-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupVisitorRoutes(v1, c)
		setupChatRoutes(v1, c)
	}

	return router
}

// ========================================
// VISITOR ROUTES
// ========================================
func setupVisitorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	visitors := v1.Group("/visitors")
	{
		visitors.POST("", c.VisitorHandler.Register)
		visitors.GET("", c.VisitorHandler.GetAll)
		visitors.GET("/stats", c.VisitorHandler.Stats)
		visitors.GET("/export", c.VisitorHandler.Export)
		visitors.GET("/:id", c.VisitorHandler.GetByID)
		visitors.PUT("/:id", c.VisitorHandler.Update)
		visitors.PATCH("/:id/status", c.VisitorHandler.UpdateStatus)
		visitors.DELETE("/:id", c.VisitorHandler.Delete)
	}
}

// ========================================
// CHAT ROUTES
// ========================================
func setupChatRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/chat", c.ChatHandler.Chat)
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.Ping(ctx.Request.Context()); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":   dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
			"env":      c.Config.App.Environment,
			"llm":      c.LLM.Available(),
			"capacity": c.Config.Parking.Capacity,
		})
	}
}
