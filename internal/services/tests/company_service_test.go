package services_test

import (
	"context"
	"errors"
	"testing"

	"job-board-api/internal/mocks"
	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCompanyServiceTest(t *testing.T) (context.Context, services.CompanyService, *mocks.CompanyRepository, *mocks.UserRepository, *mocks.TxBeginner) {
	t.Helper()
	mockCompanyRepo := new(mocks.CompanyRepository)
	mockUserRepo := new(mocks.UserRepository)
	db := &mocks.TxBeginner{TxStub: &mocks.Tx{}}
	companyService := services.NewCompanyService(db, mockCompanyRepo, mockUserRepo)
	return context.Background(), companyService, mockCompanyRepo, mockUserRepo, db
}

func TestCompanyService_CreateCompany_Success(t *testing.T) {
	ctx, companyService, mockCompanyRepo, mockUserRepo, db := setupCompanyServiceTest(t)

	user := candidateUser()
	req := &dto.CreateCompanyRequest{Name: "TechCorp Inc."}
	created := &models.Company{ID: 10, Name: "TechCorp Inc."}
	promoted := &models.User{ID: user.ID, Role: models.UserRoleEmployer, CompanyID: ptrInt(10)}

	mockCompanyRepo.On("WithTx", db.TxStub).Return(mockCompanyRepo)
	mockUserRepo.On("WithTx", db.TxStub).Return(mockUserRepo)
	mockCompanyRepo.On("Create", ctx, req).Return(created, nil).Once()
	mockUserRepo.On("AssignCompany", ctx, user.ID, 10).Return(promoted, nil).Once()

	company, err := companyService.CreateCompany(ctx, user, req)

	require.NoError(t, err)
	assert.Equal(t, created, company)
	assert.True(t, db.TxStub.Committed)
	mockCompanyRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestCompanyService_CreateCompany_AnonymousUnauthorized(t *testing.T) {
	ctx, companyService, mockCompanyRepo, _, _ := setupCompanyServiceTest(t)

	_, err := companyService.CreateCompany(ctx, nil, &dto.CreateCompanyRequest{Name: "X"})

	require.ErrorIs(t, err, services.ErrUnauthorized)
	mockCompanyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompanyService_CreateCompany_PromotionFailureRollsBack(t *testing.T) {
	ctx, companyService, mockCompanyRepo, mockUserRepo, db := setupCompanyServiceTest(t)

	user := candidateUser()
	req := &dto.CreateCompanyRequest{Name: "TechCorp Inc."}
	created := &models.Company{ID: 10, Name: "TechCorp Inc."}
	repoErr := errors.New("db connection failed")

	mockCompanyRepo.On("WithTx", db.TxStub).Return(mockCompanyRepo)
	mockUserRepo.On("WithTx", db.TxStub).Return(mockUserRepo)
	mockCompanyRepo.On("Create", ctx, req).Return(created, nil).Once()
	mockUserRepo.On("AssignCompany", ctx, user.ID, 10).Return(nil, repoErr).Once()

	_, err := companyService.CreateCompany(ctx, user, req)

	require.Error(t, err)
	assert.False(t, db.TxStub.Committed)
	assert.True(t, db.TxStub.RolledBack)
}

func TestCompanyService_GetCompanyByID_Success(t *testing.T) {
	ctx, companyService, mockCompanyRepo, _, _ := setupCompanyServiceTest(t)

	expected := &models.Company{ID: 10, Name: "TechCorp Inc."}
	mockCompanyRepo.On("GetByID", ctx, 10).Return(expected, nil).Once()

	company, err := companyService.GetCompanyByID(ctx, &dto.GetCompanyByIDRequest{ID: 10})

	require.NoError(t, err)
	assert.Equal(t, expected, company)
}

func TestCompanyService_GetCompanyByID_NotFound(t *testing.T) {
	ctx, companyService, mockCompanyRepo, _, _ := setupCompanyServiceTest(t)

	mockCompanyRepo.On("GetByID", ctx, 404).Return(nil, storage.ErrNotFound).Once()

	_, err := companyService.GetCompanyByID(ctx, &dto.GetCompanyByIDRequest{ID: 404})

	require.ErrorIs(t, err, services.ErrNotFound)
}
