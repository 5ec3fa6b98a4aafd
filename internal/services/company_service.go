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

type companyService struct {
	db          TxBeginner
	companyRepo storage.CompanyRepository
	userRepo    storage.UserRepository
}

// NewCompanyService creates a new instance of CompanyService.
func NewCompanyService(db TxBeginner, companyRepo storage.CompanyRepository, userRepo storage.UserRepository) CompanyService {
	return &companyService{db: db, companyRepo: companyRepo, userRepo: userRepo}
}

// CreateCompany inserts the company and promotes the creator to employer in
// the same transaction: either both commit or neither does.
func (s *companyService) CreateCompany(ctx context.Context, user *models.User, req *dto.CreateCompanyRequest) (*models.Company, error) {
	if !authz.CanCreateCompany(user) {
		return nil, ErrUnauthorized
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("CreateCompany: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if anything fails

	company, err := s.companyRepo.WithTx(tx).Create(ctx, req)
	if err != nil {
		log.Printf("CreateCompany: Error creating company: %v", err)
		return nil, mapRepoError(err, "creating company")
	}

	if _, err := s.userRepo.WithTx(tx).AssignCompany(ctx, user.ID, company.ID); err != nil {
		log.Printf("CreateCompany: Error promoting user %d for company %d: %v", user.ID, company.ID, err)
		return nil, mapRepoError(err, "promoting company creator")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("CreateCompany: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing changes: %w", err)
	}

	return company, nil
}

// GetCompanyByID retrieves a company. Public, no authorization involved.
func (s *companyService) GetCompanyByID(ctx context.Context, req *dto.GetCompanyByIDRequest) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, req.ID)
	if err != nil {
		log.Printf("CompanyService: Error getting company %d: %v", req.ID, err)
		return nil, mapRepoError(err, "getting company by ID")
	}
	return company, nil
}
