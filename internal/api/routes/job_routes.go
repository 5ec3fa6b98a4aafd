// internal/api/routes/job_routes.go
package routes

import (
	"job-board-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs.
// Browsing jobs is public; posting, editing, deleting, and viewing a
// job's applications require a session.
func RegisterJobRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api)
	jobHandler handlers.JobHandlerInterface, // Use interface
	applicationHandler handlers.ApplicationHandlerInterface,
	requireAuth gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)         // List jobs with optional filters
		jobs.GET("/:id", jobHandler.GetJobByID)   // Get a specific job by ID
		jobs.POST("", requireAuth, jobHandler.CreateJob)        // Post a new job for the employer's company
		jobs.PUT("/:id", requireAuth, jobHandler.UpdateJob)     // Update a job owned by the employer's company
		jobs.DELETE("/:id", requireAuth, jobHandler.DeleteJob)  // Delete a job owned by the employer's company
		jobs.GET("/:id/applications", requireAuth, applicationHandler.ListApplicationsByJob) // Applications for an owned job
	}
}
