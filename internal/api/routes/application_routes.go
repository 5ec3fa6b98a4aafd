// internal/api/routes/application_routes.go
package routes

import (
	"job-board-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers the candidate-facing application routes.
// Job-scoped application listing lives under /jobs/:id/applications.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api)
	applicationHandler handlers.ApplicationHandlerInterface, // Use interface
	requireAuth gin.HandlerFunc,
) {
	rg.POST("/applications", requireAuth, applicationHandler.CreateApplication) // Apply to a job
	rg.GET("/my-applications", requireAuth, applicationHandler.ListMyApplications) // Applications submitted by the signed-in user
}
