package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, handler *Handler) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", handler.Analyze) // POST /api/v1/analyze

		// Knowledge base endpoints
		knowledge := v1.Group("/knowledge")
		{
			knowledge.GET("", handler.GetKnowledge)                // GET /api/v1/knowledge
			knowledge.POST("/:doc/append", handler.AppendPatterns) // POST /api/v1/knowledge/:doc/append
		}

		// Learning endpoints
		learning := v1.Group("/learning")
		{
			learning.POST("/apply", handler.ApplyProposal) // POST /api/v1/learning/apply
		}

		// Audit history endpoints
		v1.GET("/history", handler.GetHistory) // GET /api/v1/history
	}
}
