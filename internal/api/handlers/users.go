// internal/api/handlers/users.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"job-board-api/internal/api/middleware"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserHandler holds dependencies for user operations.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{
		service:   service,
		validator: validate,
	}
}

// GetCurrentUser godoc
// @Summary      Get the authenticated user
// @Description  Returns the user bound to the current session, or null when unauthenticated.
// @Tags         users
// @Produce      json
// @Success      200 {object}  models.User "Current user or null"
// @Router       /user [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		// No session; the contract is 200 with a null body, not 401.
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary      Update the authenticated user's profile
// @Description  Applies a partial update to the requester's own row. Role and company binding are not client-writable.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        profile body      dto.UpdateProfileRequest true  "Profile fields to update"
// @Success      200 {object}  models.User "Updated user"
// @Failure      400 {object}  ErrorResponse "Bad Request - Invalid input"
// @Failure      401 {object}  ErrorResponse "Unauthorized"
// @Failure      500 {object}  ErrorResponse "Internal Server Error"
// @Router       /user [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		log.Printf("UpdateProfile: Error getting user from context: %v", err)
		respondUnauthorized(c)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	// Operate only on the requester's own row.
	req.UserID = user.ID

	updated, err := h.service.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondNotFound(c, "User not found")
			return
		}
		log.Printf("Error updating profile for user %d: %v", user.ID, err)
		respondInternal(c, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, updated)
}
