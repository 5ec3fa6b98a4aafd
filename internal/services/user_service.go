package services

import (
	"context"
	"log"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"
)

type userService struct {
	userRepo storage.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo storage.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// UpdateProfile applies a partial update to the requester's own row. The
// handler has already pinned req.UserID to the authenticated user, so no
// further ownership check is needed here.
func (s *userService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.UpdateProfile(ctx, req)
	if err != nil {
		log.Printf("UserService: Error updating profile for user %d: %v", req.UserID, err)
		return nil, mapRepoError(err, "updating profile")
	}
	return user, nil
}
