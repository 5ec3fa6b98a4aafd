// Package mocks provides hand-rolled testify mocks for the storage
// interfaces, shared by the service and identity tests.
package mocks

import (
	"context"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// UserRepository mocks storage.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	args := m.Called(ctx, externalID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) SyncProfile(ctx context.Context, req *dto.SyncProfileRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) AssignCompany(ctx context.Context, userID, companyID int) (*models.User, error) {
	args := m.Called(ctx, userID, companyID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) WithTx(tx pgx.Tx) storage.UserRepository {
	m.Called(tx)
	return m
}

// CompanyRepository mocks storage.CompanyRepository.
type CompanyRepository struct {
	mock.Mock
}

func (m *CompanyRepository) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, req)
	company, _ := args.Get(0).(*models.Company)
	return company, args.Error(1)
}

func (m *CompanyRepository) GetByID(ctx context.Context, id int) (*models.Company, error) {
	args := m.Called(ctx, id)
	company, _ := args.Get(0).(*models.Company)
	return company, args.Error(1)
}

func (m *CompanyRepository) WithTx(tx pgx.Tx) storage.CompanyRepository {
	m.Called(tx)
	return m
}

// JobRepository mocks storage.JobRepository.
type JobRepository struct {
	mock.Mock
}

func (m *JobRepository) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *JobRepository) GetByID(ctx context.Context, id int) (*models.JobWithCompany, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*models.JobWithCompany)
	return job, args.Error(1)
}

func (m *JobRepository) List(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobWithCompany, error) {
	args := m.Called(ctx, req)
	jobs, _ := args.Get(0).([]models.JobWithCompany)
	return jobs, args.Error(1)
}

func (m *JobRepository) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *JobRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *JobRepository) WithTx(tx pgx.Tx) storage.JobRepository {
	m.Called(tx)
	return m
}

// ApplicationRepository mocks storage.ApplicationRepository.
type ApplicationRepository struct {
	mock.Mock
}

func (m *ApplicationRepository) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	application, _ := args.Get(0).(*models.Application)
	return application, args.Error(1)
}

func (m *ApplicationRepository) ListByJob(ctx context.Context, jobID int) ([]models.ApplicationWithCandidate, error) {
	args := m.Called(ctx, jobID)
	applications, _ := args.Get(0).([]models.ApplicationWithCandidate)
	return applications, args.Error(1)
}

func (m *ApplicationRepository) ListByCandidate(ctx context.Context, candidateID int) ([]models.ApplicationDetail, error) {
	args := m.Called(ctx, candidateID)
	applications, _ := args.Get(0).([]models.ApplicationDetail)
	return applications, args.Error(1)
}

func (m *ApplicationRepository) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	m.Called(tx)
	return m
}

// Compile-time checks
var _ storage.UserRepository = (*UserRepository)(nil)
var _ storage.CompanyRepository = (*CompanyRepository)(nil)
var _ storage.JobRepository = (*JobRepository)(nil)
var _ storage.ApplicationRepository = (*ApplicationRepository)(nil)

// Tx is a pgx.Tx stand-in for transaction-scoped service tests. Only
// Commit and Rollback are implemented; anything else panics through the
// embedded nil interface.
type Tx struct {
	pgx.Tx
	Committed  bool
	RolledBack bool
}

func (t *Tx) Commit(ctx context.Context) error {
	t.Committed = true
	return nil
}

func (t *Tx) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// TxBeginner hands out the same stub transaction on every Begin call.
type TxBeginner struct {
	TxStub   *Tx
	BeginErr error
}

func (b *TxBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if b.BeginErr != nil {
		return nil, b.BeginErr
	}
	if b.TxStub == nil {
		b.TxStub = &Tx{}
	}
	return b.TxStub, nil
}
