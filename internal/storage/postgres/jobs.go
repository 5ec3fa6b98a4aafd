package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `j.id, j.title, j.company_id, j.location, j.job_type, j.salary_min, j.salary_max, j.description, j.requirements, j.status, j.created_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(
		&j.ID,
		&j.Title,
		&j.CompanyID,
		&j.Location,
		&j.JobType,
		&j.SalaryMin,
		&j.SalaryMax,
		&j.Description,
		&j.Requirements,
		&j.Status,
		&j.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func scanJobWithCompany(rows pgx.Rows) (models.JobWithCompany, error) {
	var jc models.JobWithCompany
	err := rows.Scan(
		&jc.ID,
		&jc.Title,
		&jc.CompanyID,
		&jc.Location,
		&jc.JobType,
		&jc.SalaryMin,
		&jc.SalaryMax,
		&jc.Description,
		&jc.Requirements,
		&jc.Status,
		&jc.CreatedAt,
		&jc.Company.ID,
		&jc.Company.Name,
		&jc.Company.Description,
		&jc.Company.LogoURL,
		&jc.Company.Website,
		&jc.Company.CreatedAt,
	)
	return jc, err
}

// Create saves a new job posting. CompanyID arrives already forced to the
// creator's company by the service layer.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	status := models.JobStatusActive
	if req.Status != nil {
		status = *req.Status
	}

	query := `
		INSERT INTO jobs (title, company_id, location, job_type, salary_min, salary_max, description, requirements, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, title, company_id, location, job_type, salary_min, salary_max, description, requirements, status, created_at
	`

	row := r.db.QueryRow(ctx, query,
		req.Title,
		req.CompanyID,
		req.Location,
		req.JobType,
		req.SalaryMin,
		req.SalaryMax,
		req.Description,
		req.Requirements,
		status,
	)

	job, err := scanJob(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			log.Printf("Error creating job: Foreign key violation (company_id: %d): %v\n", req.CompanyID, err)
			return nil, fmt.Errorf("failed to create job: invalid company ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %d", job.ID)
	return job, nil
}

// GetByID retrieves a specific job with its owning company joined in.
func (r *JobRepo) GetByID(ctx context.Context, id int) (*models.JobWithCompany, error) {
	query := `
		SELECT ` + jobColumns + `,
		       c.id, c.name, c.description, c.logo_url, c.website, c.created_at
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1
	`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		log.Printf("Error querying job by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job by ID %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get job by ID %d: %w", id, err)
		}
		log.Printf("Job not found with ID: %d\n", id)
		return nil, storage.ErrNotFound
	}

	jc, err := scanJobWithCompany(rows)
	if err != nil {
		log.Printf("Error scanning job by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to scan job by ID %d: %w", id, err)
	}
	return &jc, nil
}

// List retrieves jobs with their companies, newest first. Location and
// job type are exact-match filters, ANDed when both are present. The search
// parameter is intentionally not applied; see dto.ListJobsRequest.
func (r *JobRepo) List(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobWithCompany, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT ` + jobColumns + `,
		       c.id, c.name, c.description, c.logo_url, c.website, c.created_at
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
	`)

	var conditions []string
	args := []interface{}{}

	if req.Location != "" {
		args = append(args, req.Location)
		conditions = append(conditions, fmt.Sprintf("j.location = $%d", len(args)))
	}
	if req.JobType != "" {
		args = append(args, req.JobType)
		conditions = append(conditions, fmt.Sprintf("j.job_type = $%d", len(args)))
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY j.created_at DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		log.Printf("Error querying jobs: %v\n", err)
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.JobWithCompany{}
	for rows.Next() {
		jc, err := scanJobWithCompany(rows)
		if err != nil {
			log.Printf("Error scanning job row: %v\n", err)
			return nil, fmt.Errorf("failed to scan jobs: %w", err)
		}
		jobs = append(jobs, jc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}

	return jobs, nil
}

// Update modifies an existing job based on non-nil fields in the request DTO.
// The company binding is immutable and never part of the SET clause.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	var setClauses []string
	args := []interface{}{}
	argID := 1

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		argID++
	}

	if req.Title != nil {
		appendSet("title", *req.Title)
	}
	if req.Location != nil {
		appendSet("location", *req.Location)
	}
	if req.JobType != nil {
		appendSet("job_type", *req.JobType)
	}
	if req.SalaryMin != nil {
		appendSet("salary_min", *req.SalaryMin)
	}
	if req.SalaryMax != nil {
		appendSet("salary_max", *req.SalaryMax)
	}
	if req.Description != nil {
		appendSet("description", *req.Description)
	}
	if req.Requirements != nil {
		appendSet("requirements", *req.Requirements)
	}
	if req.Status != nil {
		appendSet("status", *req.Status)
	}

	if len(setClauses) == 0 {
		log.Printf("Update called for job %d with no fields to change.", req.ID)
		jc, err := r.GetByID(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		return &jc.Job, nil
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`
		UPDATE jobs
		SET %s
		WHERE id = $%d
		RETURNING id, title, company_id, location, job_type, salary_min, salary_max, description, requirements, status, created_at
	`, strings.Join(setClauses, ", "), argID)

	job, err := scanJob(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found for update with ID: %d\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job %d: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update job %d: %w", req.ID, err)
	}

	log.Printf("Job updated successfully: %d", job.ID)
	return job, nil
}

// Delete removes a job by its id. Physical removal, no soft-delete.
func (r *JobRepo) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM jobs WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting job %d: %v\n", id, err)
		return fmt.Errorf("failed to delete job %d: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Job not found for deletion with ID: %d\n", id)
		return storage.ErrNotFound
	}

	log.Printf("Job deleted successfully: %d", id)
	return nil
}
