// internal/api/handlers/jobs.go
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

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// ListJobs godoc
// @Summary      List job postings
// @Description  Retrieves postings with their companies, newest first. location and type are exact-match filters; search is accepted but currently has no effect.
// @Tags         jobs
// @Produce      json
// @Param        search query string false "Accepted for contract compatibility; not applied"
// @Param        location query string false "Exact-match location filter"
// @Param        type query string false "Exact-match job type filter"
// @Success      200 {array}   models.JobWithCompany "Successfully retrieved jobs"
// @Failure      500 {object}  ErrorResponse "Internal Server Error"
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	jobs, err := h.service.ListJobs(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error listing jobs: %v", err)
		respondInternal(c, "Failed to retrieve jobs")
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Description  Retrieves a single posting with its company. Public, no authentication required.
// @Tags         jobs
// @Produce      json
// @Param        id path      int true  "Job ID"
// @Success      200 {object}  models.JobWithCompany "Successfully retrieved job"
// @Failure      404 {object}  ErrorResponse "Job Not Found"
// @Failure      500 {object}  ErrorResponse "Internal Server Error"
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondNotFound(c, "Job not found")
		return
	}

	job, err := h.service.GetJobByID(c.Request.Context(), &dto.GetJobByIDRequest{ID: id})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondNotFound(c, "Job not found")
			return
		}
		log.Printf("Error fetching job %d: %v", id, err)
		respondInternal(c, "Failed to retrieve job")
		return
	}

	c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary      Create a job posting
// @Description  Creates a posting for the employer's own company. Any companyId in the payload is ignored; the creator's company always owns the job.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Job details"
// @Success      201 {object}  models.Job "Job created successfully"
// @Failure      400 {object}  ErrorResponse "Bad Request - Invalid input"
// @Failure      401 {object}  ErrorResponse "Unauthorized - Employer role and company required"
// @Failure      500 {object}  ErrorResponse "Internal Server Error"
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		log.Printf("CreateJob: Error getting user from context: %v", err)
		respondUnauthorized(c)
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), user, &req)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			respondUnauthorized(c)
			return
		}
		log.Printf("Error creating job for user %d: %v", user.ID, err)
		respondInternal(c, "Failed to create job")
		return
	}

	c.JSON(http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Description  Applies a partial update. Only the company that owns the job may mutate it; the company binding itself is immutable.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      int true  "Job ID"
// @Param        job body      dto.UpdateJobRequest true  "Fields to update"
// @Success      200 {object}  models.Job "Updated job"
// @Failure      400 {object}  ErrorResponse "Bad Request - Invalid input"
// @Failure      401 {object}  ErrorResponse "Unauthorized - Ownership required"
// @Failure      404 {object}  ErrorResponse "Job Not Found"
// @Failure      500 {object}  ErrorResponse "Internal Server Error"
// @Router       /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		log.Printf("UpdateJob: Error getting user from context: %v", err)
		respondUnauthorized(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondNotFound(c, "Job not found")
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	req.ID = id

	job, err := h.service.UpdateJob(c.Request.Context(), user, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondNotFound(c, "Job not found")
		case errors.Is(err, services.ErrUnauthorized):
			respondUnauthorized(c)
		default:
			log.Printf("Error updating job %d: %v", id, err)
			respondInternal(c, "Failed to update job")
		}
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary      Delete a job posting
// @Description  Physically removes the posting. Same ownership gate as update.
// @Tags         jobs
// @Produce      json
// @Param        id path      int true  "Job ID"
// @Success      204 "Job deleted"
// @Failure      401 {object}  ErrorResponse "Unauthorized - Ownership required"
// @Failure      404 {object}  ErrorResponse "Job Not Found"
// @Failure      500 {object}  ErrorResponse "Internal Server Error"
// @Router       /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		log.Printf("DeleteJob: Error getting user from context: %v", err)
		respondUnauthorized(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondNotFound(c, "Job not found")
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), user, &dto.DeleteJobRequest{ID: id}); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondNotFound(c, "Job not found")
		case errors.Is(err, services.ErrUnauthorized):
			respondUnauthorized(c)
		default:
			log.Printf("Error deleting job %d: %v", id, err)
			respondInternal(c, "Failed to delete job")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
