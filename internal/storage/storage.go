package storage

import (
	"context"

	"job-board-api/internal/models"
	"job-board-api/internal/transport/dto"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	SyncProfile(ctx context.Context, req *dto.SyncProfileRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
	// AssignCompany promotes the user to employer and binds the company in one statement.
	AssignCompany(ctx context.Context, userID, companyID int) (*models.User, error)
	WithTx(tx pgx.Tx) UserRepository
}

// CompanyRepository defines the interface for company data operations.
type CompanyRepository interface {
	Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error)
	GetByID(ctx context.Context, id int) (*models.Company, error)
	WithTx(tx pgx.Tx) CompanyRepository
}

// JobRepository defines the interface for job data operations. Reads return
// the owning company joined in, so callers never need a second round trip.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id int) (*models.JobWithCompany, error)
	List(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobWithCompany, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id int) error
	WithTx(tx pgx.Tx) JobRepository
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	ListByJob(ctx context.Context, jobID int) ([]models.ApplicationWithCandidate, error)
	ListByCandidate(ctx context.Context, candidateID int) ([]models.ApplicationDetail, error)
	WithTx(tx pgx.Tx) ApplicationRepository
}
