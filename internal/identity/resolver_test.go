package identity_test

import (
	"context"
	"errors"
	"testing"

	"job-board-api/internal/identity"
	"job-board-api/internal/mocks"
	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupResolverTest(t *testing.T) (context.Context, *identity.Resolver, *mocks.UserRepository) {
	t.Helper()
	mockUserRepo := new(mocks.UserRepository)
	return context.Background(), identity.NewResolver(mockUserRepo), mockUserRepo
}

func TestResolver_Resolve_EmptySubject(t *testing.T) {
	ctx, resolver, mockUserRepo := setupResolverTest(t)

	_, err := resolver.Resolve(ctx, identity.ExternalProfile{})

	require.Error(t, err)
	mockUserRepo.AssertNotCalled(t, "GetByExternalID", mock.Anything, mock.Anything)
}

func TestResolver_Resolve_FirstSightCreatesUser(t *testing.T) {
	ctx, resolver, mockUserRepo := setupResolverTest(t)

	profile := identity.ExternalProfile{
		Subject:   "ext|abc123",
		Username:  "jane",
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	}

	mockUserRepo.On("GetByExternalID", ctx, "ext|abc123").Return(nil, storage.ErrNotFound).Once()
	mockUserRepo.On("Create", ctx, mock.MatchedBy(func(req *dto.CreateUserRequest) bool {
		return req.Username == "jane" &&
			req.ExternalID != nil && *req.ExternalID == "ext|abc123" &&
			req.Name != nil && *req.Name == "Jane Doe"
	})).Return(&models.User{ID: 1, Username: "jane"}, nil).Once()

	user, err := resolver.Resolve(ctx, profile)

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	mockUserRepo.AssertExpectations(t)
}

func TestResolver_Resolve_ExistingUserSyncsProfileOnly(t *testing.T) {
	ctx, resolver, mockUserRepo := setupResolverTest(t)

	profile := identity.ExternalProfile{Subject: "ext|abc123", FirstName: "Jane"}
	existing := &models.User{ID: 1, Username: "jane", Role: models.UserRoleEmployer}
	synced := &models.User{ID: 1, Username: "jane", Role: models.UserRoleEmployer}

	mockUserRepo.On("GetByExternalID", ctx, "ext|abc123").Return(existing, nil).Once()
	mockUserRepo.On("SyncProfile", ctx, mock.MatchedBy(func(req *dto.SyncProfileRequest) bool {
		return req.ExternalID == "ext|abc123" && req.Name != nil && *req.Name == "Jane"
	})).Return(synced, nil).Once()

	user, err := resolver.Resolve(ctx, profile)

	require.NoError(t, err)
	assert.Equal(t, models.UserRoleEmployer, user.Role)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResolver_Resolve_UsernameFallsBackToEmailLocalPart(t *testing.T) {
	ctx, resolver, mockUserRepo := setupResolverTest(t)

	profile := identity.ExternalProfile{Subject: "ext|abc123", Email: "jane.doe@example.com"}

	mockUserRepo.On("GetByExternalID", ctx, "ext|abc123").Return(nil, storage.ErrNotFound).Once()
	mockUserRepo.On("Create", ctx, mock.MatchedBy(func(req *dto.CreateUserRequest) bool {
		return req.Username == "jane.doe"
	})).Return(&models.User{ID: 1, Username: "jane.doe"}, nil).Once()

	_, err := resolver.Resolve(ctx, profile)

	require.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}

func TestResolver_Resolve_UsernameFallsBackToSubject(t *testing.T) {
	ctx, resolver, mockUserRepo := setupResolverTest(t)

	profile := identity.ExternalProfile{Subject: "abcdefghijklmnop"}

	mockUserRepo.On("GetByExternalID", ctx, "abcdefghijklmnop").Return(nil, storage.ErrNotFound).Once()
	mockUserRepo.On("Create", ctx, mock.MatchedBy(func(req *dto.CreateUserRequest) bool {
		return req.Username == "user_abcdefgh" && req.Name != nil && *req.Name == "User"
	})).Return(&models.User{ID: 1}, nil).Once()

	_, err := resolver.Resolve(ctx, profile)

	require.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}

func TestResolver_Resolve_DuplicateUsernameRetriesWithSuffix(t *testing.T) {
	ctx, resolver, mockUserRepo := setupResolverTest(t)

	profile := identity.ExternalProfile{Subject: "abcdefghijklmnop", Username: "jane"}

	mockUserRepo.On("GetByExternalID", ctx, "abcdefghijklmnop").Return(nil, storage.ErrNotFound).Once()
	mockUserRepo.On("Create", ctx, mock.MatchedBy(func(req *dto.CreateUserRequest) bool {
		return req.Username == "jane"
	})).Return(nil, storage.ErrDuplicateUsername).Once()
	mockUserRepo.On("Create", ctx, mock.MatchedBy(func(req *dto.CreateUserRequest) bool {
		return req.Username == "jane_abcdefgh"
	})).Return(&models.User{ID: 2, Username: "jane_abcdefgh"}, nil).Once()

	user, err := resolver.Resolve(ctx, profile)

	require.NoError(t, err)
	assert.Equal(t, "jane_abcdefgh", user.Username)
	mockUserRepo.AssertExpectations(t)
}

func TestResolver_Resolve_InsertRaceFallsBackToSync(t *testing.T) {
	ctx, resolver, mockUserRepo := setupResolverTest(t)

	profile := identity.ExternalProfile{Subject: "ext|abc123", Username: "jane"}
	winner := &models.User{ID: 9, Username: "jane"}

	mockUserRepo.On("GetByExternalID", ctx, "ext|abc123").Return(nil, storage.ErrNotFound).Once()
	mockUserRepo.On("Create", ctx, mock.Anything).Return(nil, storage.ErrConflict).Once()
	mockUserRepo.On("SyncProfile", ctx, mock.MatchedBy(func(req *dto.SyncProfileRequest) bool {
		return req.ExternalID == "ext|abc123"
	})).Return(winner, nil).Once()

	user, err := resolver.Resolve(ctx, profile)

	require.NoError(t, err)
	assert.Equal(t, 9, user.ID)
	mockUserRepo.AssertExpectations(t)
}

func TestResolver_Resolve_LookupError(t *testing.T) {
	ctx, resolver, mockUserRepo := setupResolverTest(t)

	repoErr := errors.New("db connection failed")
	mockUserRepo.On("GetByExternalID", ctx, "ext|abc123").Return(nil, repoErr).Once()

	_, err := resolver.Resolve(ctx, identity.ExternalProfile{Subject: "ext|abc123"})

	require.Error(t, err)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
