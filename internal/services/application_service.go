package services

import (
	"context"
	"errors"
	"log"

	"job-board-api/internal/authz"
	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"
)

type applicationService struct {
	applicationRepo storage.ApplicationRepository
	jobRepo         storage.JobRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(applicationRepo storage.ApplicationRepository, jobRepo storage.JobRepository) ApplicationService {
	return &applicationService{applicationRepo: applicationRepo, jobRepo: jobRepo}
}

// Apply submits an application on behalf of the requester. The candidate id
// is always the requester's own id, never taken from the payload.
func (s *applicationService) Apply(ctx context.Context, user *models.User, req *dto.CreateApplicationRequest) (*models.Application, error) {
	if !authz.CanApply(user) {
		return nil, ErrUnauthorized
	}

	req.CandidateID = user.ID

	app, err := s.applicationRepo.Create(ctx, req)
	if err != nil {
		log.Printf("ApplicationService: Error creating application for user %d: %v", user.ID, err)
		return nil, mapRepoError(err, "creating application")
	}
	return app, nil
}

// ListByJob returns a job's applications for the employer that owns it. A
// missing job and an ownership mismatch are deliberately indistinguishable to
// the caller: both are unauthorized.
func (s *applicationService) ListByJob(ctx context.Context, user *models.User, req *dto.ListApplicationsByJobRequest) ([]models.ApplicationWithCandidate, error) {
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// A missing job surfaces as unauthorized on this route, not as
			// not-found.
			log.Printf("ListByJob: job %d does not exist", req.JobID)
			return nil, ErrUnauthorized
		}
		log.Printf("ListByJob: Error fetching job %d: %v", req.JobID, err)
		return nil, mapRepoError(err, "fetching job for application listing")
	}

	if !authz.CanViewJobApplications(user, &job.Job) {
		log.Printf("ListByJob: Unauthorized attempt on job %d by user %d", req.JobID, userID(user))
		return nil, ErrUnauthorized
	}

	apps, err := s.applicationRepo.ListByJob(ctx, req.JobID)
	if err != nil {
		log.Printf("ApplicationService: Error listing applications for job %d: %v", req.JobID, err)
		return nil, mapRepoError(err, "listing applications by job")
	}
	return apps, nil
}

// ListMine returns the requester's own applications with jobs and companies
// joined in. Always scoped to the requester; no further check needed.
func (s *applicationService) ListMine(ctx context.Context, user *models.User) ([]models.ApplicationDetail, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}

	apps, err := s.applicationRepo.ListByCandidate(ctx, user.ID)
	if err != nil {
		log.Printf("ApplicationService: Error listing applications for candidate %d: %v", user.ID, err)
		return nil, mapRepoError(err, "listing applications by candidate")
	}
	return apps, nil
}
