// internal/api/handlers/companies.go
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"job-board-api/internal/api/middleware"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CompanyHandler holds dependencies for company operations.
type CompanyHandler struct {
	service   services.CompanyService
	validator *validator.Validate
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(service services.CompanyService, validate *validator.Validate) *CompanyHandler {
	return &CompanyHandler{
		service:   service,
		validator: validate,
	}
}

// CreateCompany godoc
// @Summary      Create a company
// @Description  Creates an employer organization. The creator is promoted to employer and bound to the new company atomically.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company body      dto.CreateCompanyRequest true  "Company details"
// @Success      201 {object}  models.Company "Company created successfully"
// @Failure      400 {object}  ErrorResponse "Bad Request - Invalid input"
// @Failure      401 {object}  ErrorResponse "Unauthorized"
// @Failure      500 {object}  ErrorResponse "Internal Server Error"
// @Router       /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		log.Printf("CreateCompany: Error getting user from context: %v", err)
		respondUnauthorized(c)
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	company, err := h.service.CreateCompany(c.Request.Context(), user, &req)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			respondUnauthorized(c)
			return
		}
		log.Printf("Error creating company for user %d: %v", user.ID, err)
		respondInternal(c, "Failed to create company")
		return
	}

	c.JSON(http.StatusCreated, company)
}

// GetCompanyByID godoc
// @Summary      Get a company by ID
// @Description  Retrieves a single company. Public, no authentication required.
// @Tags         companies
// @Produce      json
// @Param        id path      int true  "Company ID"
// @Success      200 {object}  models.Company "Successfully retrieved company"
// @Failure      404 {object}  ErrorResponse "Company Not Found"
// @Failure      500 {object}  ErrorResponse "Internal Server Error"
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetCompanyByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// A non-numeric id can never name an existing row.
		respondNotFound(c, "Company not found")
		return
	}

	company, err := h.service.GetCompanyByID(c.Request.Context(), &dto.GetCompanyByIDRequest{ID: id})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondNotFound(c, "Company not found")
			return
		}
		log.Printf("Error fetching company %d: %v", id, err)
		respondInternal(c, "Failed to retrieve company")
		return
	}

	c.JSON(http.StatusOK, company)
}
