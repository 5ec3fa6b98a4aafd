// internal/api/handlers/applications.go
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

// ApplicationHandler holds dependencies for application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// CreateApplication godoc
// @Summary      Apply to a job
// @Description  Submits an application on behalf of the requester. Any candidateId in the payload is ignored.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application body      dto.CreateApplicationRequest true  "Application details"
// @Success      201 {object}  models.Application "Application created successfully"
// @Failure      400 {object}  ErrorResponse "Bad Request - Invalid input or job reference"
// @Failure      401 {object}  ErrorResponse "Unauthorized"
// @Failure      500 {object}  ErrorResponse "Internal Server Error"
// @Router       /applications [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		log.Printf("CreateApplication: Error getting user from context: %v", err)
		respondUnauthorized(c)
		return
	}

	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	app, err := h.service.Apply(c.Request.Context(), user, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthorized):
			respondUnauthorized(c)
		case errors.Is(err, services.ErrConflict):
			// The referenced job does not exist.
			respondBadRequest(c, "Invalid job reference")
		default:
			log.Printf("Error creating application for user %d: %v", user.ID, err)
			respondInternal(c, "Failed to create application")
		}
		return
	}

	c.JSON(http.StatusCreated, app)
}

// ListApplicationsByJob godoc
// @Summary      List a job's applications
// @Description  Employer view: each application with its candidate. Requires ownership of the job's company; a missing job is indistinguishable from an ownership mismatch.
// @Tags         applications
// @Produce      json
// @Param        id path      int true  "Job ID"
// @Success      200 {array}   models.ApplicationWithCandidate "Successfully retrieved applications"
// @Failure      401 {object}  ErrorResponse "Unauthorized"
// @Failure      500 {object}  ErrorResponse "Internal Server Error"
// @Router       /jobs/{id}/applications [get]
func (h *ApplicationHandler) ListApplicationsByJob(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		log.Printf("ListApplicationsByJob: Error getting user from context: %v", err)
		respondUnauthorized(c)
		return
	}

	jobID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// Same outcome as a job that does not exist.
		respondUnauthorized(c)
		return
	}

	apps, err := h.service.ListByJob(c.Request.Context(), user, &dto.ListApplicationsByJobRequest{JobID: jobID})
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			respondUnauthorized(c)
			return
		}
		log.Printf("Error listing applications for job %d: %v", jobID, err)
		respondInternal(c, "Failed to retrieve applications")
		return
	}

	c.JSON(http.StatusOK, apps)
}

// ListMyApplications godoc
// @Summary      List the requester's applications
// @Description  Self view: each application with its job and the job's company, newest first.
// @Tags         applications
// @Produce      json
// @Success      200 {array}   models.ApplicationDetail "Successfully retrieved applications"
// @Failure      401 {object}  ErrorResponse "Unauthorized"
// @Failure      500 {object}  ErrorResponse "Internal Server Error"
// @Router       /my-applications [get]
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		log.Printf("ListMyApplications: Error getting user from context: %v", err)
		respondUnauthorized(c)
		return
	}

	apps, err := h.service.ListMine(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			respondUnauthorized(c)
			return
		}
		log.Printf("Error listing applications for user %d: %v", user.ID, err)
		respondInternal(c, "Failed to retrieve applications")
		return
	}

	c.JSON(http.StatusOK, apps)
}
