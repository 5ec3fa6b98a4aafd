package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the JSON body for every failed request: a human-readable
// message, plus the offending field for validation failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// respondBadRequest writes a 400 with a plain message.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// respondValidationError writes a 400 for a failed bind or struct validation,
// naming the first offending field when the error carries one.
func respondValidationError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fieldErr := validationErrors[0]
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed on field '" + fieldErr.Field() + "' (" + fieldErr.Tag() + ")",
			Field:   fieldErr.Field(),
		})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body: " + err.Error()})
}

// respondUnauthorized writes the uniform 401 body. Ownership mismatches and
// missing-role conditions intentionally look identical to the caller.
func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
}

// respondNotFound writes a 404 with the entity-specific message.
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: message})
}

// respondInternal writes a generic 500.
func respondInternal(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: message})
}
