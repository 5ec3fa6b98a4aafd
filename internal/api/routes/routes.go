// internal/api/routes/routes.go
package routes

import (
	"log"

	"job-board-api/internal/api/handlers"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/app"
	"job-board-api/internal/identity"
	"job-board-api/internal/services"
	"job-board-api/internal/storage/postgres"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	api := router.Group("/api")

	// --- Repositories ---
	userRepo := postgres.NewUserRepo(app.DBPool)
	companyRepo := postgres.NewCompanyRepo(app.DBPool)
	jobRepo := postgres.NewJobRepo(app.DBPool)
	applicationRepo := postgres.NewApplicationRepo(app.DBPool)

	// --- Services ---
	userService := services.NewUserService(userRepo)
	companyService := services.NewCompanyService(app.DBPool, companyRepo, userRepo)
	jobService := services.NewJobService(app.DBPool, jobRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, app.Validator)
	companyHandler := handlers.NewCompanyHandler(companyService, app.Validator)
	jobHandler := handlers.NewJobHandler(jobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(applicationService, app.Validator)

	// --- Middleware ---
	resolver := identity.NewResolver(userRepo)
	requireAuth := middleware.RequireAuth(resolver, app.Config.Auth.SessionSecret, app.Config.Auth.SessionCookie)
	optionalAuth := middleware.OptionalAuth(resolver, app.Config.Auth.SessionSecret, app.Config.Auth.SessionCookie)

	// --- Register Resource Routes ---
	RegisterUserRoutes(api, userHandler, requireAuth, optionalAuth)
	RegisterCompanyRoutes(api, companyHandler, requireAuth)
	RegisterJobRoutes(api, jobHandler, applicationHandler, requireAuth)
	RegisterApplicationRoutes(api, applicationHandler, requireAuth)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
