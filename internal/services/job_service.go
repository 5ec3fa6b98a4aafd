package services

import (
	"context"
	"fmt"
	"log"

	"job-board-api/internal/authz"
	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"
)

type jobService struct {
	db      TxBeginner
	jobRepo storage.JobRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(db TxBeginner, jobRepo storage.JobRepository) JobService {
	return &jobService{db: db, jobRepo: jobRepo}
}

// CreateJob creates a posting for the employer's own company. The company id
// is forced from the creator regardless of anything in the request payload.
func (s *jobService) CreateJob(ctx context.Context, user *models.User, req *dto.CreateJobRequest) (*models.Job, error) {
	if !authz.CanPostJobs(user) {
		log.Printf("CreateJob: Unauthorized attempt by user %d (role %s)", userID(user), userRole(user))
		return nil, ErrUnauthorized
	}

	req.CompanyID = *user.CompanyID

	job, err := s.jobRepo.Create(ctx, req)
	if err != nil {
		log.Printf("JobService: Error creating job: %v", err)
		return nil, mapRepoError(err, "creating job")
	}
	return job, nil
}

// GetJobByID retrieves a job with its company. Public.
func (s *jobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.JobWithCompany, error) {
	job, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		log.Printf("JobService: Error getting job %d: %v", req.ID, err)
		return nil, mapRepoError(err, "getting job by ID")
	}
	return job, nil
}

// ListJobs retrieves postings with optional exact-match filters. Public.
func (s *jobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobWithCompany, error) {
	jobs, err := s.jobRepo.List(ctx, req)
	if err != nil {
		log.Printf("JobService: Error listing jobs: %v", err)
		return nil, fmt.Errorf("internal error listing jobs: %w", err)
	}
	return jobs, nil
}

// UpdateJob applies a partial update after the ownership gate: a missing job
// is not-found, a job owned by another company is unauthorized.
func (s *jobService) UpdateJob(ctx context.Context, user *models.User, req *dto.UpdateJobRequest) (*models.Job, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("UpdateJob: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if anything fails

	txJobRepo := s.jobRepo.WithTx(tx)

	existing, err := txJobRepo.GetByID(ctx, req.ID)
	if err != nil {
		log.Printf("UpdateJob: Error fetching job %d: %v", req.ID, err)
		return nil, mapRepoError(err, "fetching job for update")
	}

	if !authz.CanManageJob(user, &existing.Job) {
		log.Printf("UpdateJob: Unauthorized attempt on job %d by user %d", req.ID, userID(user))
		return nil, ErrUnauthorized
	}

	updated, err := txJobRepo.Update(ctx, req)
	if err != nil {
		log.Printf("UpdateJob: Error updating job %d in repo: %v", req.ID, err)
		return nil, mapRepoError(err, "updating job")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("UpdateJob: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing changes: %w", err)
	}
	return updated, nil
}

// DeleteJob removes a posting behind the same ownership gate as UpdateJob.
func (s *jobService) DeleteJob(ctx context.Context, user *models.User, req *dto.DeleteJobRequest) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("DeleteJob: Error beginning transaction: %v", err)
		return fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if anything fails

	txJobRepo := s.jobRepo.WithTx(tx)

	existing, err := txJobRepo.GetByID(ctx, req.ID)
	if err != nil {
		log.Printf("DeleteJob: Error fetching job %d for delete check: %v", req.ID, err)
		return mapRepoError(err, "fetching job for delete check")
	}

	if !authz.CanManageJob(user, &existing.Job) {
		log.Printf("DeleteJob: Unauthorized attempt on job %d by user %d", req.ID, userID(user))
		return ErrUnauthorized
	}

	if err := txJobRepo.Delete(ctx, req.ID); err != nil {
		log.Printf("DeleteJob: Error deleting job %d in repo: %v", req.ID, err)
		return mapRepoError(err, "deleting job")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("DeleteJob: Error committing transaction: %v", err)
		return fmt.Errorf("internal error committing job deletion: %w", err)
	}
	return nil
}

func userID(user *models.User) int {
	if user == nil {
		return 0
	}
	return user.ID
}

func userRole(user *models.User) models.UserRole {
	if user == nil {
		return ""
	}
	return user.Role
}
