// internal/api/routes.go
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agarwalaashrut/JobAppREST/internal/handlers"
)

// SetupRoutes registers the HTML flow, the JSON API, and the operational
// endpoints on the router.
func SetupRoutes(
	router *gin.Engine,
	searchHandler *handlers.SearchHandler,
	appsHandler *handlers.ApplicationsHandler,
	healthHandler *handlers.HealthHandler,
) {
	// HTML form flow
	router.GET("/", searchHandler.Index)
	router.POST("/submit", searchHandler.Submit)
	router.POST("/apply", appsHandler.ApplyForm)
	router.GET("/applications", appsHandler.ListPage)

	// JSON API
	apiGroup := router.Group("/api")
	apiGroup.GET("/applications", appsHandler.ListJSON)
	apiGroup.POST("/applications", appsHandler.CreateJSON)
	apiGroup.PATCH("/applications/:id", appsHandler.PatchStatus)

	// Operational endpoints
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
