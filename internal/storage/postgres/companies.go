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
	"github.com/jackc/pgx/v5/pgxpool"
)

const companyColumns = `id, name, description, logo_url, website, created_at`

// CompanyRepo implements the storage.CompanyRepository interface using PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepo creates a new CompanyRepo.
func NewCompanyRepo(db *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// WithTx creates a new CompanyRepo bound to the transaction.
func (r *CompanyRepo) WithTx(tx pgx.Tx) storage.CompanyRepository {
	return &CompanyRepo{db: tx}
}

// Compile-time check to ensure CompanyRepo implements CompanyRepository
var _ storage.CompanyRepository = (*CompanyRepo)(nil)

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.LogoURL,
		&c.Website,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create saves a new company.
func (r *CompanyRepo) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	query := `
		INSERT INTO companies (name, description, logo_url, website, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + companyColumns

	company, err := scanCompany(r.db.QueryRow(ctx, query, req.Name, req.Description, req.LogoURL, req.Website))
	if err != nil {
		log.Printf("Error creating company %q: %v\n", req.Name, err)
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	log.Printf("Company created successfully with ID: %d", company.ID)
	return company, nil
}

// GetByID retrieves a specific company by its id.
func (r *CompanyRepo) GetByID(ctx context.Context, id int) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	company, err := scanCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Company not found with ID: %d\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning company by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get company by ID %d: %w", id, err)
	}
	return company, nil
}
