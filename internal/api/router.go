package api

import "github.com/gin-gonic/gin"

// SetupRouter configures the API routes for the application.
func SetupRouter(router *gin.Engine, h *Handlers) {
	// Group all API routes under /api
	api := router.Group("/api")
	{
		components := api.Group("/components")
		{
			components.GET("", h.ListComponents)
			components.GET("/:id", h.GetComponent)
		}

		steps := api.Group("/steps")
		{
			steps.GET("", h.ListSteps)
			steps.GET("/:number", h.GetStep)
		}

		api.POST("/calculate-capacity", h.CalculateCapacity)
		api.GET("/overview", h.Overview)
	}
}
