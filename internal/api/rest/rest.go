package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Coin catalog endpoints
		v1.GET("/coins", handler.SearchCoins)
		v1.GET("/coins/rank", handler.GetCoinsByRank)

		// Quote endpoints
		v1.GET("/coins/historical", handler.GetHistorical)
		v1.GET("/coins/latest", handler.GetLatest)
	}
}
