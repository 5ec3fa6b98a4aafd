// internal/api/routes/company_routes.go
package routes

import (
	"job-board-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCompanyRoutes registers all routes related to companies.
// Reading a company is public; creating one requires a session.
func RegisterCompanyRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api)
	companyHandler handlers.CompanyHandlerInterface, // Use interface
	requireAuth gin.HandlerFunc,
) {
	companies := rg.Group("/companies")
	{
		companies.POST("", requireAuth, companyHandler.CreateCompany) // Create a company and become its employer
		companies.GET("/:id", companyHandler.GetCompanyByID)          // Get a specific company by ID
	}
}
