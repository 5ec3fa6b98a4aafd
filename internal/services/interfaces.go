package services

import (
	"context"

	"job-board-api/internal/models"
	"job-board-api/internal/transport/dto"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
}

// CompanyService defines the interface for company-related business logic.
type CompanyService interface {
	CreateCompany(ctx context.Context, user *models.User, req *dto.CreateCompanyRequest) (*models.Company, error)
	GetCompanyByID(ctx context.Context, req *dto.GetCompanyByIDRequest) (*models.Company, error)
}

// JobService defines the interface for job-related business logic. Operations
// that require authorization take the resolved user explicitly; there is no
// ambient request state below the handlers.
type JobService interface {
	CreateJob(ctx context.Context, user *models.User, req *dto.CreateJobRequest) (*models.Job, error)
	GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.JobWithCompany, error)
	ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobWithCompany, error)
	UpdateJob(ctx context.Context, user *models.User, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, user *models.User, req *dto.DeleteJobRequest) error
}

// ApplicationService defines the interface for application business logic.
type ApplicationService interface {
	Apply(ctx context.Context, user *models.User, req *dto.CreateApplicationRequest) (*models.Application, error)
	ListByJob(ctx context.Context, user *models.User, req *dto.ListApplicationsByJobRequest) ([]models.ApplicationWithCandidate, error)
	ListMine(ctx context.Context, user *models.User) ([]models.ApplicationDetail, error)
}
