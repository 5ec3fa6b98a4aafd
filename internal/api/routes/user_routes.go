// internal/api/routes/user_routes.go
package routes

import (
	"job-board-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the current-user profile routes.
// GET uses optional auth so an anonymous request yields a null body
// instead of a 401; PUT always requires a session.
func RegisterUserRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api)
	userHandler handlers.UserHandlerInterface, // Use interface
	requireAuth gin.HandlerFunc,
	optionalAuth gin.HandlerFunc,
) {
	rg.GET("/user", optionalAuth, userHandler.GetCurrentUser) // Current user profile (or null when signed out)
	rg.PUT("/user", requireAuth, userHandler.UpdateProfile)   // Update the signed-in user's profile
}
