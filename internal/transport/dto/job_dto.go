package dto

import "job-board-api/internal/models"

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a job posting.
// CompanyID is never taken from the payload: the handler sets it from the
// creator's company, so anything the client sends for it is dropped.
type CreateJobRequest struct {
	CompanyID    int               `json:"-"` // Set internally by handler from auth context
	Title        string            `json:"title" validate:"required,max=200"`
	Location     string            `json:"location" validate:"required,max=200"`
	JobType      string            `json:"jobType" validate:"required,max=100"`
	SalaryMin    *int              `json:"salaryMin" validate:"omitempty,gte=0"`
	SalaryMax    *int              `json:"salaryMax" validate:"omitempty,gte=0"`
	Description  string            `json:"description" validate:"required"`
	Requirements *string           `json:"requirements"`
	Status       *models.JobStatus `json:"status" validate:"omitempty,oneof=active closed"`
}

// GetJobByIDRequest defines the structure for getting a job by id.
type GetJobByIDRequest struct {
	ID int `json:"-" validate:"required"`
}

// ListJobsRequest defines query parameters for listing jobs. Location and
// JobType are exact-match filters, ANDed together. Search is accepted for
// contract compatibility but has no effect on results.
type ListJobsRequest struct {
	Search   string `form:"search"`
	Location string `form:"location"`
	JobType  string `form:"type"`
}

// UpdateJobRequest defines the structure for a partial job update. CompanyID
// is immutable after creation and so has no field here.
type UpdateJobRequest struct {
	ID           int               `json:"-"` // From URL path
	Title        *string           `json:"title" validate:"omitempty,max=200"`
	Location     *string           `json:"location" validate:"omitempty,max=200"`
	JobType      *string           `json:"jobType" validate:"omitempty,max=100"`
	SalaryMin    *int              `json:"salaryMin" validate:"omitempty,gte=0"`
	SalaryMax    *int              `json:"salaryMax" validate:"omitempty,gte=0"`
	Description  *string           `json:"description"`
	Requirements *string           `json:"requirements"`
	Status       *models.JobStatus `json:"status" validate:"omitempty,oneof=active closed"`
}

// DeleteJobRequest defines the structure for deleting a job.
type DeleteJobRequest struct {
	ID int `json:"-" validate:"required"`
}
