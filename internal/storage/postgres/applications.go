package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationColumns = `a.id, a.job_id, a.candidate_id, a.resume_url, a.cover_letter, a.status, a.applied_at`

// ApplicationRepo implements the storage.ApplicationRepository interface using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// WithTx creates a new ApplicationRepo bound to the transaction.
func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

// Create saves a new application. CandidateID arrives already forced to the
// requester's id by the service layer.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	query := `
		INSERT INTO applications (job_id, candidate_id, resume_url, cover_letter, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, job_id, candidate_id, resume_url, cover_letter, status, applied_at
	`

	row := r.db.QueryRow(ctx, query,
		req.JobID,
		req.CandidateID,
		req.ResumeURL,
		req.CoverLetter,
		models.ApplicationStatusApplied,
	)

	var app models.Application
	err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.CandidateID,
		&app.ResumeURL,
		&app.CoverLetter,
		&app.Status,
		&app.AppliedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			log.Printf("Error creating application: Foreign key violation (job_id: %d): %v\n", req.JobID, err)
			return nil, fmt.Errorf("failed to create application: invalid job ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %d", app.ID)
	return &app, nil
}

// ListByJob retrieves a job's applications with each candidate joined in,
// newest first. This is the employer view.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID int) ([]models.ApplicationWithCandidate, error) {
	query := `
		SELECT ` + applicationColumns + `,
		       u.id, u.external_id, u.username, u.email, u.name, u.role, u.bio, u.profile_image_url, u.resume_url, u.skills, u.company_id, u.created_at
		FROM applications a
		JOIN users u ON u.id = a.candidate_id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC
	`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		log.Printf("Error querying applications by job ID %d: %v\n", jobID, err)
		return nil, fmt.Errorf("failed to list applications by job: %w", err)
	}
	defer rows.Close()

	apps := []models.ApplicationWithCandidate{}
	for rows.Next() {
		var ac models.ApplicationWithCandidate
		err := rows.Scan(
			&ac.ID,
			&ac.JobID,
			&ac.CandidateID,
			&ac.ResumeURL,
			&ac.CoverLetter,
			&ac.Status,
			&ac.AppliedAt,
			&ac.Candidate.ID,
			&ac.Candidate.ExternalID,
			&ac.Candidate.Username,
			&ac.Candidate.Email,
			&ac.Candidate.Name,
			&ac.Candidate.Role,
			&ac.Candidate.Bio,
			&ac.Candidate.ProfileImageURL,
			&ac.Candidate.ResumeURL,
			&ac.Candidate.Skills,
			&ac.Candidate.CompanyID,
			&ac.Candidate.CreatedAt,
		)
		if err != nil {
			log.Printf("Error scanning application row for job %d: %v\n", jobID, err)
			return nil, fmt.Errorf("failed to scan applications by job: %w", err)
		}
		apps = append(apps, ac)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications by job: %w", err)
	}

	return apps, nil
}

// ListByCandidate retrieves a candidate's applications with each job and the
// job's company joined in, newest first. This is the self view.
func (r *ApplicationRepo) ListByCandidate(ctx context.Context, candidateID int) ([]models.ApplicationDetail, error) {
	query := `
		SELECT ` + applicationColumns + `,
		       j.id, j.title, j.company_id, j.location, j.job_type, j.salary_min, j.salary_max, j.description, j.requirements, j.status, j.created_at,
		       c.id, c.name, c.description, c.logo_url, c.website, c.created_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE a.candidate_id = $1
		ORDER BY a.applied_at DESC
	`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		log.Printf("Error querying applications by candidate ID %d: %v\n", candidateID, err)
		return nil, fmt.Errorf("failed to list applications by candidate: %w", err)
	}
	defer rows.Close()

	apps := []models.ApplicationDetail{}
	for rows.Next() {
		var ad models.ApplicationDetail
		err := rows.Scan(
			&ad.ID,
			&ad.JobID,
			&ad.CandidateID,
			&ad.ResumeURL,
			&ad.CoverLetter,
			&ad.Status,
			&ad.AppliedAt,
			&ad.Job.ID,
			&ad.Job.Title,
			&ad.Job.CompanyID,
			&ad.Job.Location,
			&ad.Job.JobType,
			&ad.Job.SalaryMin,
			&ad.Job.SalaryMax,
			&ad.Job.Description,
			&ad.Job.Requirements,
			&ad.Job.Status,
			&ad.Job.CreatedAt,
			&ad.Job.Company.ID,
			&ad.Job.Company.Name,
			&ad.Job.Company.Description,
			&ad.Job.Company.LogoURL,
			&ad.Job.Company.Website,
			&ad.Job.Company.CreatedAt,
		)
		if err != nil {
			log.Printf("Error scanning application row for candidate %d: %v\n", candidateID, err)
			return nil, fmt.Errorf("failed to scan applications by candidate: %w", err)
		}
		apps = append(apps, ad)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications by candidate: %w", err)
	}

	return apps, nil
}
